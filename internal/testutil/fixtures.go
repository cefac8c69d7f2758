package testutil

import "github.com/allanninal/recipe-finder/internal/models"

// TestRecipes returns a small ordered fixture list for result assertions.
func TestRecipes() []models.Recipe {
	return []models.Recipe{
		{ID: 1, Title: "Chicken Rice Bowl", Image: "https://img.example.com/x.jpg"},
		{ID: 2, Title: "Garlic Fried Rice", Image: "https://img.example.com/y.jpg"},
		{ID: 3, Title: "Chicken Congee", Image: "https://img.example.com/z.jpg"},
	}
}
