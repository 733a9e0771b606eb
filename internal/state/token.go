package state

import (
	"boipoka-storefront/internal/storage"
	"boipoka-storefront/pkg/logger"

	"github.com/google/uuid"
)

// Local store namespaces. The cart and wishlist keys match what the web
// storefront historically used, so a migrated state dir hydrates cleanly.
const (
	cartStoreKey     = "cart"
	wishlistStoreKey = "bookstore_wishlist"
	tokenStoreKey    = "token"
	clientIDStoreKey = "client_id"
)

// TokenCache holds the bearer token and mirrors it to the local store.
// It satisfies the API client's TokenSource.
type TokenCache struct {
	store *storage.Store
	token string
}

// NewTokenCache hydrates the cached token, if any.
func NewTokenCache(store *storage.Store) *TokenCache {
	t := &TokenCache{store: store}
	var token string
	if store.Get(tokenStoreKey, &token) {
		t.token = token
	}
	return t
}

// Token returns the current bearer token, or "" when logged out.
func (t *TokenCache) Token() string {
	return t.token
}

// Set replaces the token and persists it.
func (t *TokenCache) Set(token string) {
	t.token = token
	logger.StoreWrite(tokenStoreKey, t.store.Set(tokenStoreKey, token))
}

// Clear drops the token from memory and the local store.
func (t *TokenCache) Clear() {
	t.token = ""
	if err := t.store.Delete(tokenStoreKey); err != nil {
		logger.StoreWrite(tokenStoreKey, err)
	}
}

// EnsureClientID returns the per-install client identifier, minting and
// persisting one on first run.
func EnsureClientID(store *storage.Store) string {
	var id string
	if store.Get(clientIDStoreKey, &id) && id != "" {
		return id
	}
	id = uuid.NewString()
	logger.StoreWrite(clientIDStoreKey, store.Set(clientIDStoreKey, id))
	return id
}
