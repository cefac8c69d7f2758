package handlers

import (
	"net/http"

	"github.com/allanninal/recipe-finder/internal/logger"
	"github.com/allanninal/recipe-finder/internal/render"
	"github.com/allanninal/recipe-finder/internal/search"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler serves the ingredient-search page and the JSON search API.
type SearchHandler struct {
	Controller *search.Controller
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(controller *search.Controller) *SearchHandler {
	return &SearchHandler{Controller: controller}
}

// ShowPage handles GET /. It renders the page from the controller's current
// state without triggering a search.
func (h *SearchHandler) ShowPage(c *gin.Context) {
	h.renderPage(c)
}

// Search handles GET /search?ingredients=... — the form target. An absent
// parameter is the same as blank text and is rejected by the controller.
func (h *SearchHandler) Search(c *gin.Context) {
	h.Controller.SetQuery(c.Query("ingredients"))
	h.Controller.Submit(c.Request.Context())
	h.renderPage(c)
}

// SearchRecipes handles GET /api/recipes/search?ingredients=... and returns
// the same cycle's outcome as JSON.
func (h *SearchHandler) SearchRecipes(c *gin.Context) {
	h.Controller.SetQuery(c.Query("ingredients"))
	h.Controller.Submit(c.Request.Context())

	if msg := h.Controller.ErrorMessage(); msg != "" {
		status := http.StatusBadGateway
		if msg == search.EmptyInputMessage {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": h.Controller.Results()})
}

func (h *SearchHandler) renderPage(c *gin.Context) {
	data := render.PageData{
		Query:   h.Controller.Query(),
		Error:   h.Controller.ErrorMessage(),
		Recipes: h.Controller.Results(),
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := render.Page(c.Writer, data); err != nil {
		logger.WithRequestID(c.GetString("request_id")).Error("failed to render page", zap.Error(err))
	}
}
