package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/cardwise/cardwise_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_LoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/login", r.URL.Path)

		var req dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ana@example.com", req.Email)

		json.NewEncoder(w).Encode(dto.AuthResponse{
			Token: "jwt-token",
			User:  dto.UserResponse{ID: "u1", Email: req.Email},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Login(context.Background(), "ana@example.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", resp.Token)
	assert.Equal(t, "jwt-token", c.Token())
}

func TestClient_AttachesBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(dto.UserResponse{ID: "u1"})
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("stored-token"))
	_, err := c.Me(context.Background())

	require.NoError(t, err)
}

func TestClient_UnauthorizedClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("expired-token"))
	_, err := c.Me(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, c.Token(), "a 401 must drop the stored token")
}

func TestClient_BackendUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	c := New(srv.URL)
	_, err := c.Me(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestClient_APIErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "Email already registered"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Signup(context.Background(), dto.SignupRequest{Email: "dup@example.com", Password: "password123"})

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Email already registered", apiErr.Message)
	assert.Empty(t, c.Token())
}

func TestClient_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(srv.URL)
	_, err := c.Me(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_ListTransactionsPassesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/transactions", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "null", r.URL.Query().Get("category_id"))
		json.NewEncoder(w).Encode(dto.ListTransactionsResponse{
			Pagination: dto.Pagination{TotalCount: 0, CurrentPage: 2, PerPage: 20},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok"))
	query := url.Values{"page": {"2"}, "category_id": {"null"}}
	resp, err := c.ListTransactions(context.Background(), query)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Pagination.CurrentPage)
}

func TestClient_DeleteHandlesNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/categories/cat-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok"))
	err := c.DeleteCategory(context.Background(), "cat-1")

	require.NoError(t, err)
}

func TestClient_LogoutDropsToken(t *testing.T) {
	c := New("http://localhost:0", WithToken("tok"))

	c.Logout()

	assert.Empty(t, c.Token())
}

func TestClient_DashboardStatsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dashboard/stats", r.URL.Path)
		assert.Equal(t, "2026-03-01", r.URL.Query().Get("from"))
		assert.Equal(t, "2026-03-31", r.URL.Query().Get("to"))
		assert.Equal(t, "CRC", r.URL.Query().Get("currency"))
		json.NewEncoder(w).Encode(dto.DashboardStatsResponse{Currency: "CRC"})
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok"))
	resp, err := c.DashboardStats(context.Background(), "2026-03-01", "2026-03-31", "CRC")

	require.NoError(t, err)
	assert.Equal(t, "CRC", resp.Currency)
}
