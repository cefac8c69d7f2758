package spoonacular

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/allanninal/recipe-finder/internal/models"
)

// DefaultBaseURL is the find-by-ingredients endpoint of the Spoonacular API.
const DefaultBaseURL = "https://api.spoonacular.com/recipes/findByIngredients"

// RecipeSearcher is the seam between the search controller and the outbound
// recipe-search API.
type RecipeSearcher interface {
	FindByIngredients(ctx context.Context, ingredients string, number int) ([]models.Recipe, error)
}

// Client queries the Spoonacular find-by-ingredients endpoint.
//
// The underlying http.Client carries no timeout: each submission runs to
// completion or failure exactly once, with no retry, backoff, or
// cancellation of an in-flight call.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given API key. An empty baseURL selects
// DefaultBaseURL; tests and deployments point it elsewhere via config.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// FindByIngredients issues a single GET for recipes matching the given
// comma-separated ingredient text. The text is passed through exactly as
// entered; splitting and normalization are delegated entirely to the API.
// A `null` or absent body decodes to an empty slice, never nil: zero
// matches is a success, not a failure.
func (c *Client) FindByIngredients(ctx context.Context, ingredients string, number int) ([]models.Recipe, error) {
	params := url.Values{}
	params.Set("ingredients", ingredients)
	params.Set("number", fmt.Sprintf("%d", number))
	params.Set("apiKey", c.apiKey)

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create spoonacular request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spoonacular request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read spoonacular response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("spoonacular API returned status %d: %s", resp.StatusCode, string(body))
	}

	recipes := []models.Recipe{}
	if len(bytes.TrimSpace(body)) == 0 {
		return recipes, nil
	}
	if err := json.Unmarshal(body, &recipes); err != nil {
		return nil, fmt.Errorf("failed to parse spoonacular response: %w", err)
	}
	if recipes == nil {
		// Body was the JSON literal null.
		recipes = []models.Recipe{}
	}
	return recipes, nil
}
