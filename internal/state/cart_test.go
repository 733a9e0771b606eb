package state

import (
	"testing"

	"boipoka-storefront/internal/domain"
	"boipoka-storefront/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func testBook(id, title string) domain.Book {
	return domain.Book{ID: id, Title: title}
}

func TestCartAddSamePairIncrementsQuantity(t *testing.T) {
	cart := NewCart(newTestStore(t))
	book := testBook("b1", "The Go Programming Language")
	format := domain.BookFormat{Type: domain.FormatPhysical, Price: 9.99}

	for i := 0; i < 3; i++ {
		cart.AddItem(book, format)
	}

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, cart.TotalItemCount())
}

func TestCartDistinctFormatsAreDistinctLines(t *testing.T) {
	cart := NewCart(newTestStore(t))
	book := testBook("b1", "Dune")

	cart.AddItem(book, domain.BookFormat{Type: domain.FormatPhysical, Price: 12})
	cart.AddItem(book, domain.BookFormat{Type: domain.FormatDigital, Price: 8})

	assert.Len(t, cart.Items(), 2)
	assert.Equal(t, 2, cart.TotalItemCount())
}

func TestCartSnapshotsPriceAndTitleAtAddTime(t *testing.T) {
	cart := NewCart(newTestStore(t))
	book := testBook("b1", "Original Title")
	cart.AddItem(book, domain.BookFormat{Type: domain.FormatDigital, Price: 5})

	// Later catalog changes must not leak into the cart line.
	book.Title = "Renamed"
	cart.AddItem(book, domain.BookFormat{Type: domain.FormatDigital, Price: 50})

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Original Title", items[0].BookTitle)
	assert.InDelta(t, 5.0, items[0].UnitPrice, 1e-9)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -1} {
		cart := NewCart(newTestStore(t))
		cart.AddItem(testBook("b1", "X"), domain.BookFormat{Type: domain.FormatPhysical, Price: 1})

		cart.UpdateQuantity("b1", domain.FormatPhysical, qty)
		assert.Empty(t, cart.Items(), "quantity %d should remove the line", qty)
	}
}

func TestCartUpdateQuantitySetsExactValue(t *testing.T) {
	cart := NewCart(newTestStore(t))
	cart.AddItem(testBook("b1", "X"), domain.BookFormat{Type: domain.FormatPhysical, Price: 2.5})

	cart.UpdateQuantity("b1", domain.FormatPhysical, 7)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
	assert.InDelta(t, 17.5, cart.TotalPrice(0), 1e-9)
}

func TestCartRemoveAbsentIsNoop(t *testing.T) {
	cart := NewCart(newTestStore(t))
	cart.AddItem(testBook("b1", "X"), domain.BookFormat{Type: domain.FormatPhysical, Price: 1})

	cart.RemoveItem("b1", domain.FormatDigital)
	cart.RemoveItem("b2", domain.FormatPhysical)

	assert.Len(t, cart.Items(), 1)
}

func TestCartTotalPriceDiscount(t *testing.T) {
	cart := NewCart(newTestStore(t))
	cart.AddItem(testBook("b1", "X"), domain.BookFormat{Type: domain.FormatPhysical, Price: 9.99})
	cart.AddItem(testBook("b1", "X"), domain.BookFormat{Type: domain.FormatPhysical, Price: 9.99})
	cart.AddItem(testBook("b2", "Y"), domain.BookFormat{Type: domain.FormatDigital, Price: 4.50})

	full := cart.TotalPrice(0)
	assert.InDelta(t, 9.99*2+4.50, full, 1e-9)
	assert.InDelta(t, 0.9*full, cart.TotalPrice(10), 1e-9)
}

func TestCartTotalsInvariantUnderAddOrder(t *testing.T) {
	a := NewCart(newTestStore(t))
	b := NewCart(newTestStore(t))
	physical := domain.BookFormat{Type: domain.FormatPhysical, Price: 3}
	digital := domain.BookFormat{Type: domain.FormatDigital, Price: 7}

	a.AddItem(testBook("b1", "X"), physical)
	a.AddItem(testBook("b2", "Y"), digital)
	a.AddItem(testBook("b1", "X"), physical)

	b.AddItem(testBook("b2", "Y"), digital)
	b.AddItem(testBook("b1", "X"), physical)
	b.AddItem(testBook("b1", "X"), physical)

	assert.Equal(t, a.TotalItemCount(), b.TotalItemCount())
	assert.InDelta(t, a.TotalPrice(0), b.TotalPrice(0), 1e-9)
}

func TestCartClear(t *testing.T) {
	cart := NewCart(newTestStore(t))
	cart.AddItem(testBook("b1", "X"), domain.BookFormat{Type: domain.FormatPhysical, Price: 1})

	cart.Clear()

	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.TotalItemCount())
	assert.Zero(t, cart.TotalPrice(0))
}

func TestCartPersistsAcrossContainers(t *testing.T) {
	store := newTestStore(t)
	cart := NewCart(store)
	cart.AddItem(testBook("b1", "Persisted"), domain.BookFormat{Type: domain.FormatPhysical, Price: 9.99})
	cart.AddItem(testBook("b1", "Persisted"), domain.BookFormat{Type: domain.FormatPhysical, Price: 9.99})

	rehydrated := NewCart(store)
	assert.Equal(t, cart.Items(), rehydrated.Items())
	assert.Equal(t, 2, rehydrated.TotalItemCount())
	assert.InDelta(t, 19.98, rehydrated.TotalPrice(0), 1e-9)
}

func TestCartIgnoresBookWithoutID(t *testing.T) {
	cart := NewCart(newTestStore(t))
	cart.AddItem(domain.Book{Title: "No ID"}, domain.BookFormat{Type: domain.FormatPhysical, Price: 1})
	assert.Empty(t, cart.Items())
}

func TestCartUsesLegacyIDWhenPrimaryMissing(t *testing.T) {
	cart := NewCart(newTestStore(t))
	format := domain.BookFormat{Type: domain.FormatPhysical, Price: 1}

	cart.AddItem(domain.Book{LegacyID: "b9", Title: "Old Shape"}, format)
	cart.AddItem(domain.Book{ID: "b9", Title: "Old Shape"}, format)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "b9", items[0].BookID)
	assert.Equal(t, 2, items[0].Quantity)
}
