package router

import (
	"time"

	"github.com/allanninal/recipe-finder/internal/config"
	"github.com/allanninal/recipe-finder/internal/handlers"
	"github.com/allanninal/recipe-finder/internal/logger"
	"github.com/allanninal/recipe-finder/internal/middleware"
	"github.com/allanninal/recipe-finder/internal/search"
	"github.com/allanninal/recipe-finder/internal/spoonacular"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter sets up the Gin router.
func SetupRouter(cfg *config.Config) *gin.Engine {
	// Create default Gin router
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origins := cfg.AllowedOriginList(); len(origins) > 0 {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	} else {
		// Local single-user tool default.
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))

	// Add request ID middleware for request correlation
	r.Use(logger.RequestIDMiddleware())

	// Ping route for testing
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Search routes setup: one controller for the whole process, matching
	// the single-user session state the UI exposes.
	client := spoonacular.NewClient(cfg.EnvVars.SpoonacularAPIKey, cfg.EnvVars.SpoonacularBaseURL)
	controller := search.NewController(client)
	searchHandler := handlers.NewSearchHandler(controller)

	// The outbound API is metered per key, so the routes that trigger a
	// request are rate limited per IP.
	searchLimited := middleware.RateLimitByIP(5, 10*time.Minute, time.Hour)

	// Serve the page from current state
	r.GET("/", searchHandler.ShowPage)
	// Form target: run a search cycle, then re-render the page
	r.GET("/search", searchLimited, searchHandler.Search)
	// Same cycle as JSON
	r.GET("/api/recipes/search", searchLimited, searchHandler.SearchRecipes)

	return r
}
