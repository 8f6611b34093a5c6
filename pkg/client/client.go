// Package client is a typed Go client for the cardwise backend REST API.
// It mirrors the behavior the web frontend relies on: bearer token auth, a
// distinct error for an unreachable backend, and no automatic retries.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cardwise/cardwise_backend/internal/dto"
)

var (
	// ErrUnauthorized is returned on a 401. The stored token is cleared
	// before it is returned; callers should re-run the login flow.
	ErrUnauthorized = errors.New("client: unauthorized")

	// ErrBackendUnavailable is returned when the backend cannot be reached
	// at all, as opposed to the backend answering with an error status.
	ErrBackendUnavailable = errors.New("client: backend unavailable")
)

// APIError is a non-401 error response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("client: api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to the backend API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken seeds the bearer token, e.g. one restored from storage.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a client for the API at baseURL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the current bearer token, empty when logged out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the stored bearer token.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) clearToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

// do performs one request. There is no retry: a failed request surfaces
// immediately so the caller can show the unavailable state.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.clearToken()
		return ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if errBody.Error == "" {
			errBody.Error = resp.Status
		}
		return &APIError{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("client: decode response: %w", err)
		}
	}
	return nil
}

// Login authenticates with email and password and stores the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	req := dto.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/login", nil, req, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.Token)
	return &resp, nil
}

// Signup registers a new account and stores the returned token.
func (c *Client) Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/signup", nil, req, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.Token)
	return &resp, nil
}

// ExchangeGoogleCode trades a Google authorization code for an application
// token and stores it.
func (c *Client) ExchangeGoogleCode(ctx context.Context, code string) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	req := dto.ExchangeCodeRequest{Code: code}
	if err := c.do(ctx, http.MethodPost, "/api/oauth/google/exchange-code", nil, req, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.Token)
	return &resp, nil
}

// Logout drops the stored token. Purely client-side; the token simply expires
// server-side.
func (c *Client) Logout() {
	c.clearToken()
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*dto.UserResponse, error) {
	var resp dto.UserResponse
	if err := c.do(ctx, http.MethodGet, "/api/me", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetSettings fetches the user's settings.
func (c *Client) GetSettings(ctx context.Context) (*dto.SettingsResponse, error) {
	var resp dto.SettingsResponse
	if err := c.do(ctx, http.MethodGet, "/api/settings", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateSettings replaces the user's settings record.
func (c *Client) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	var resp dto.SettingsResponse
	if err := c.do(ctx, http.MethodPut, "/api/settings", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListCategories fetches the user's categories with usage totals.
func (c *Client) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	var resp []dto.CategoryResponse
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	var resp dto.CategoryResponse
	if err := c.do(ctx, http.MethodPost, "/api/categories", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateCategory updates a category.
func (c *Client) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	var resp dto.CategoryResponse
	if err := c.do(ctx, http.MethodPut, "/api/categories/"+url.PathEscape(categoryID), nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteCategory deletes a category; its transactions become uncategorized.
func (c *Client) DeleteCategory(ctx context.Context, categoryID string) error {
	return c.do(ctx, http.MethodDelete, "/api/categories/"+url.PathEscape(categoryID), nil, nil, nil)
}

// ListCreditCards fetches the user's cards with per-currency expense totals.
func (c *Client) ListCreditCards(ctx context.Context) ([]dto.CreditCardResponse, error) {
	var resp []dto.CreditCardResponse
	if err := c.do(ctx, http.MethodGet, "/api/credit_cards", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateCreditCard adds a card.
func (c *Client) CreateCreditCard(ctx context.Context, req dto.CreateCreditCardRequest) (*dto.CreditCardResponse, error) {
	var resp dto.CreditCardResponse
	if err := c.do(ctx, http.MethodPost, "/api/credit_cards", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateCreditCard updates a card.
func (c *Client) UpdateCreditCard(ctx context.Context, cardID string, req dto.UpdateCreditCardRequest) (*dto.CreditCardResponse, error) {
	var resp dto.CreditCardResponse
	if err := c.do(ctx, http.MethodPut, "/api/credit_cards/"+url.PathEscape(cardID), nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteCreditCard removes a card.
func (c *Client) DeleteCreditCard(ctx context.Context, cardID string) error {
	return c.do(ctx, http.MethodDelete, "/api/credit_cards/"+url.PathEscape(cardID), nil, nil, nil)
}

// ListTransactions fetches one page of transactions for the given query.
func (c *Client) ListTransactions(ctx context.Context, query url.Values) (*dto.ListTransactionsResponse, error) {
	var resp dto.ListTransactionsResponse
	if err := c.do(ctx, http.MethodGet, "/api/transactions", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateTransaction records a transaction.
func (c *Client) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	var resp dto.TransactionResponse
	if err := c.do(ctx, http.MethodPost, "/api/transactions", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateTransaction updates a transaction, including refund fields.
func (c *Client) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	var resp dto.TransactionResponse
	if err := c.do(ctx, http.MethodPut, "/api/transactions/"+url.PathEscape(transactionID), nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteTransaction removes a transaction.
func (c *Client) DeleteTransaction(ctx context.Context, transactionID string) error {
	return c.do(ctx, http.MethodDelete, "/api/transactions/"+url.PathEscape(transactionID), nil, nil, nil)
}

// DashboardStats fetches aggregated stats for [from, to] in the display
// currency. Dates are YYYY-MM-DD.
func (c *Client) DashboardStats(ctx context.Context, from, to, currency string) (*dto.DashboardStatsResponse, error) {
	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)
	if currency != "" {
		query.Set("currency", currency)
	}
	var resp dto.DashboardStatsResponse
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/stats", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
