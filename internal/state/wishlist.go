package state

import (
	"slices"

	"boipoka-storefront/internal/storage"
	"boipoka-storefront/pkg/logger"
)

// Wishlist tracks the set of book IDs the user has marked, independent of
// anything purchased. Set semantics over canonical IDs; insertion order is
// kept for display but carries no meaning. Persisted under its own
// namespace on every mutation.
//
// Callers normalize books to their canonical ID (Book.CanonicalID) before
// touching the wishlist; only the one string form is stored.
type Wishlist struct {
	store *storage.Store
	ids   []string
}

// NewWishlist hydrates the wishlist from the local store. Missing or
// corrupt snapshots yield an empty set.
func NewWishlist(store *storage.Store) *Wishlist {
	w := &Wishlist{store: store}
	var ids []string
	if store.Get(wishlistStoreKey, &ids) {
		w.ids = ids
	}
	return w
}

// Add marks a book. Empty IDs and duplicates are no-ops.
func (w *Wishlist) Add(bookID string) {
	if bookID == "" || w.Has(bookID) {
		return
	}
	w.ids = append(w.ids, bookID)
	w.persist()
}

// Remove unmarks a book. Absent IDs are a no-op.
func (w *Wishlist) Remove(bookID string) {
	idx := slices.Index(w.ids, bookID)
	if idx < 0 {
		return
	}
	w.ids = append(w.ids[:idx], w.ids[idx+1:]...)
	w.persist()
}

// Has reports membership.
func (w *Wishlist) Has(bookID string) bool {
	return bookID != "" && slices.Contains(w.ids, bookID)
}

// Toggle removes a marked book, or marks an unmarked one.
func (w *Wishlist) Toggle(bookID string) {
	if w.Has(bookID) {
		w.Remove(bookID)
		return
	}
	w.Add(bookID)
}

// IDs returns a copy of the marked book IDs in insertion order.
func (w *Wishlist) IDs() []string {
	out := make([]string, len(w.ids))
	copy(out, w.ids)
	return out
}

func (w *Wishlist) persist() {
	ids := w.ids
	if ids == nil {
		ids = []string{}
	}
	logger.StoreWrite(wishlistStoreKey, w.store.Set(wishlistStoreKey, ids))
}
