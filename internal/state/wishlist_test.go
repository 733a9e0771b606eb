package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistSetSemantics(t *testing.T) {
	w := NewWishlist(newTestStore(t))

	w.Add("b1")
	w.Add("b1")
	w.Add("b2")

	assert.Equal(t, []string{"b1", "b2"}, w.IDs())
	assert.True(t, w.Has("b1"))
	assert.False(t, w.Has("b3"))
}

func TestWishlistRemoveAbsentIsNoop(t *testing.T) {
	w := NewWishlist(newTestStore(t))
	w.Add("b1")

	w.Remove("b2")

	assert.Equal(t, []string{"b1"}, w.IDs())
}

func TestWishlistToggleIsItsOwnInverse(t *testing.T) {
	w := NewWishlist(newTestStore(t))
	w.Add("b1")

	for _, id := range []string{"b1", "b2"} {
		before := w.Has(id)
		w.Toggle(id)
		w.Toggle(id)
		assert.Equal(t, before, w.Has(id), "membership of %s should be restored", id)
	}
}

func TestWishlistEmptyIDIsNoop(t *testing.T) {
	w := NewWishlist(newTestStore(t))

	w.Add("")
	w.Toggle("")

	assert.Empty(t, w.IDs())
	assert.False(t, w.Has(""))
}

func TestWishlistPersistsAcrossContainers(t *testing.T) {
	store := newTestStore(t)
	w := NewWishlist(store)
	w.Add("b1")
	w.Add("b2")
	w.Remove("b1")

	rehydrated := NewWishlist(store)
	require.Equal(t, []string{"b2"}, rehydrated.IDs())
}
