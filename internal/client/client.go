// Package client talks to the recipe API the way the browser front end
// does, and drives list and detail views from its responses.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pageza/recettes/backend/internal/types"
)

// DefaultTimeout bounds every API call
const DefaultTimeout = 10 * time.Second

// ErrNotFound matches an APIError with a 404 status
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx answer from the API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Is reports 404 answers as ErrNotFound
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Client is a recipe API client
type Client struct {
	baseURL string
	client  *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// New creates a client for the API rooted at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListRecipes fetches one filtered page of recipes
func (c *Client) ListRecipes(ctx context.Context, filters types.FilterSpec) (*types.RecipeList, error) {
	var list types.RecipeList
	if err := c.get(ctx, "/api/recipes", filters.Normalize().Values(), &list); err != nil {
		return nil, err
	}
	if list.Recipes == nil {
		list.Recipes = []types.Recipe{}
	}
	return &list, nil
}

// GetRecipe fetches a published recipe; a missing one yields ErrNotFound
func (c *Client) GetRecipe(ctx context.Context, slug string) (*types.Recipe, error) {
	var resp struct {
		Recipe *types.Recipe `json:"recipe"`
	}
	if err := c.get(ctx, "/api/recipes/"+url.PathEscape(slug), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Recipe == nil {
		return nil, &APIError{StatusCode: http.StatusNotFound, Message: "empty recipe"}
	}
	return resp.Recipe, nil
}

// ListCategories fetches every category
func (c *Client) ListCategories(ctx context.Context) ([]types.Category, error) {
	var resp struct {
		Categories []types.Category `json:"categories"`
	}
	if err := c.get(ctx, "/api/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// Stats fetches the catalog figures
func (c *Client) Stats(ctx context.Context) (*types.Stats, error) {
	var stats types.Stats
	if err := c.get(ctx, "/api/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope struct {
			Error string `json:"error"`
		}
		msg := strings.TrimSpace(string(body))
		if json.Unmarshal(body, &envelope) == nil && envelope.Error != "" {
			msg = envelope.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
