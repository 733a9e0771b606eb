package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"boipoka-storefront/internal/domain"
	infracache "boipoka-storefront/internal/infrastructure/cache"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.Handler, opts Options) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, opts)
}

func TestClientSendsAuthAndClientHeaders(t *testing.T) {
	var gotAuth, gotClientID string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotClientID = r.Header.Get("X-Client-ID")
		_ = json.NewEncoder(w).Encode([]domain.Book{})
	}), Options{Tokens: staticTokens("tok-1"), ClientID: "device-7"})

	_, err := client.ListBooks(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.Equal(t, "device-7", gotClientID)
}

func TestClientOmitsAuthHeaderWhenAnonymous(t *testing.T) {
	var sawAuth bool
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		_ = json.NewEncoder(w).Encode([]domain.Book{})
	}), Options{Tokens: staticTokens("")})

	_, err := client.ListBooks(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, sawAuth)
}

func TestClientDecodesErrorBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "admins only"})
	}), Options{})

	_, err := client.ListBooks(context.Background(), "")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "admins only", apiErr.Message)
	assert.True(t, IsUnauthorized(err))
}

func TestClientFallsBackToStatusText(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}), Options{})

	_, err := client.ListBooks(context.Background(), "")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.NotEmpty(t, apiErr.Message)
	assert.False(t, IsUnauthorized(err))
}

func TestListBooksUsesCache(t *testing.T) {
	var hits int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_ = json.NewEncoder(w).Encode([]domain.Book{{ID: "b1", Title: "Dune"}})
	}), Options{Cache: infracache.NewMemoryCache(0, 0)})

	ctx := context.Background()
	first, err := client.ListBooks(ctx, "")
	require.NoError(t, err)
	second, err := client.ListBooks(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	// A different search term is a different cache key.
	_, err = client.ListBooks(ctx, "dune")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestListBooksPassesSearchQuery(t *testing.T) {
	var gotSearch string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSearch = r.URL.Query().Get("search")
		_ = json.NewEncoder(w).Encode([]domain.Book{})
	}), Options{})

	_, err := client.ListBooks(context.Background(), "go programming")
	require.NoError(t, err)
	assert.Equal(t, "go programming", gotSearch)
}

func TestAdminMutationInvalidatesCatalogCache(t *testing.T) {
	var listHits int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/books":
			atomic.AddInt32(&listHits, 1)
			_ = json.NewEncoder(w).Encode([]domain.Book{{ID: "b1"}})
		case r.Method == http.MethodPut:
			_ = json.NewEncoder(w).Encode(domain.Book{ID: "b1", Title: "Updated"})
		default:
			http.NotFound(w, r)
		}
	}), Options{Cache: infracache.NewMemoryCache(0, 0)})

	ctx := context.Background()
	_, err := client.ListBooks(ctx, "")
	require.NoError(t, err)
	_, err = client.ListBooks(ctx, "")
	require.NoError(t, err)
	require.Equal(t, int32(1), atomic.LoadInt32(&listHits))

	_, err = client.UpdateBook(ctx, "b1", domain.BookInput{Title: "Updated"})
	require.NoError(t, err)

	_, err = client.ListBooks(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&listHits), "cache should be flushed after mutation")
}

func TestLoginDecodesFlattenedResponse(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token":    "tok-9",
			"id":       "u1",
			"username": "reader",
			"email":    "reader@example.com",
			"role":     domain.RoleAdmin,
		})
	}), Options{})

	result, err := client.Login(context.Background(), "reader@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "tok-9", result.Token)
	assert.Equal(t, "u1", result.User.ID)
	assert.Equal(t, domain.RoleAdmin, result.User.Role)
}

func TestCreateOrderSendsFreshIdempotencyKey(t *testing.T) {
	var keys []string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keys = append(keys, r.Header.Get("Idempotency-Key"))
		_ = json.NewEncoder(w).Encode(domain.Order{ID: "o1"})
	}), Options{})

	req := domain.CreateOrderRequest{
		Items: []domain.OrderItemInput{{BookID: "b1", FormatType: domain.FormatPhysical, Quantity: 1}},
	}
	ctx := context.Background()
	_, err := client.CreateOrder(ctx, req)
	require.NoError(t, err)
	_, err = client.CreateOrder(ctx, req)
	require.NoError(t, err)

	require.Len(t, keys, 2)
	assert.NotEmpty(t, keys[0])
	assert.NotEmpty(t, keys[1])
	assert.NotEqual(t, keys[0], keys[1])
}
