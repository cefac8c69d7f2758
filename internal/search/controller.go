package search

import (
	"context"
	"strings"
	"sync"

	"github.com/allanninal/recipe-finder/internal/logger"
	"github.com/allanninal/recipe-finder/internal/models"
	"github.com/allanninal/recipe-finder/internal/spoonacular"
	"go.uber.org/zap"
)

// The only two error strings the UI ever shows. Underlying failure detail
// goes to the log, never to the user.
const (
	EmptyInputMessage  = "Please enter some ingredients."
	FetchFailedMessage = "Failed to fetch recipes. Please try again."
)

// ResultLimit caps each request to at most this many recipes.
const ResultLimit = 5

// Controller owns the three pieces of search state: the raw query text, the
// current result list, and the current error message. Both outcome cells are
// cleared before each request and exactly one is populated when it completes,
// so a non-empty result list never coexists with a request-failure message.
type Controller struct {
	searcher spoonacular.RecipeSearcher

	mu      sync.Mutex
	query   string
	results []models.Recipe
	errMsg  string
	seq     uint64 // submission counter; completions of older submissions are discarded
}

// NewController creates a Controller backed by the given searcher. All state
// starts empty and lives for the duration of the process.
func NewController(searcher spoonacular.RecipeSearcher) *Controller {
	return &Controller{
		searcher: searcher,
		results:  []models.Recipe{},
	}
}

// SetQuery replaces the stored query text unconditionally. No validation
// happens here; Submit performs the emptiness check.
func (c *Controller) SetQuery(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = text
}

// Submit runs one search cycle: validate, clear the prior outcome, issue the
// request, and write exactly one of the result list or the error message.
//
// A query that is empty after trimming is rejected with EmptyInputMessage
// before any request is made, leaving the result list untouched. Otherwise
// the raw, untrimmed text goes out with the fixed result limit.
//
// Each submission takes a sequence number. If another Submit starts while
// this one is in flight, the older completion is discarded, so a stale
// response can never overwrite a newer outcome.
func (c *Controller) Submit(ctx context.Context) {
	c.mu.Lock()
	query := c.query
	if strings.TrimSpace(query) == "" {
		c.errMsg = EmptyInputMessage
		c.mu.Unlock()
		return
	}
	c.seq++
	seq := c.seq
	c.errMsg = ""
	c.results = []models.Recipe{}
	c.mu.Unlock()

	recipes, err := c.searcher.FindByIngredients(ctx, query, ResultLimit)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		// A newer submission superseded this one while it was in flight.
		return
	}
	if err != nil {
		logger.Get().Error("recipe search failed",
			zap.String("ingredients", query),
			zap.Error(err))
		c.results = []models.Recipe{}
		c.errMsg = FetchFailedMessage
		return
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	c.results = recipes
	c.errMsg = ""
}

// Query returns the current raw query text.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Results returns a copy of the current result list in API order.
func (c *Controller) Results() []models.Recipe {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Recipe, len(c.results))
	copy(out, c.results)
	return out
}

// ErrorMessage returns the current user-visible error message, or "".
func (c *Controller) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}
