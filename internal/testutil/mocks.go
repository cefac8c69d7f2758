package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/allanninal/recipe-finder/internal/models"
)

// SearchCall records a single invocation of FindByIngredients.
type SearchCall struct {
	Ingredients string
	Number      int
}

// MockRecipeSearcher is a mock implementation of spoonacular.RecipeSearcher.
// It records every call; concurrent use is safe so tests can exercise
// overlapping submissions.
type MockRecipeSearcher struct {
	FindByIngredientsFunc func(ctx context.Context, ingredients string, number int) ([]models.Recipe, error)

	mu    sync.Mutex
	calls []SearchCall
}

func (m *MockRecipeSearcher) FindByIngredients(ctx context.Context, ingredients string, number int) ([]models.Recipe, error) {
	m.mu.Lock()
	m.calls = append(m.calls, SearchCall{Ingredients: ingredients, Number: number})
	m.mu.Unlock()

	if m.FindByIngredientsFunc != nil {
		return m.FindByIngredientsFunc(ctx, ingredients, number)
	}
	return nil, fmt.Errorf("FindByIngredients not configured")
}

// Calls returns a copy of the recorded invocations in order.
func (m *MockRecipeSearcher) Calls() []SearchCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SearchCall, len(m.calls))
	copy(out, m.calls)
	return out
}
