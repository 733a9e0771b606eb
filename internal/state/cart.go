package state

import (
	"boipoka-storefront/internal/domain"
	"boipoka-storefront/internal/storage"
	"boipoka-storefront/pkg/logger"
)

// Cart is the shopping cart state container. Line items are keyed by
// (book ID, format type); adding the same pair again bumps the quantity.
// Every mutation persists the full snapshot before returning, and
// hydration treats a missing or corrupt snapshot as an empty cart.
type Cart struct {
	store *storage.Store
	items []domain.CartLineItem
}

// NewCart hydrates the cart from the local store.
func NewCart(store *storage.Store) *Cart {
	c := &Cart{store: store}
	var items []domain.CartLineItem
	if store.Get(cartStoreKey, &items) {
		c.items = items
	}
	return c
}

// AddItem puts one unit of the given format in the cart, snapshotting the
// format price and book title at this moment. An existing line for the
// same (book, format type) gains a unit instead of duplicating. Items
// without an identifier are ignored; the caller validates upstream.
func (c *Cart) AddItem(book domain.Book, format domain.BookFormat) {
	bookID := book.CanonicalID()
	if bookID == "" || format.Type == "" {
		return
	}
	for i := range c.items {
		if c.items[i].BookID == bookID && c.items[i].FormatType == format.Type {
			c.items[i].Quantity++
			c.persist()
			return
		}
	}
	c.items = append(c.items, domain.CartLineItem{
		BookID:     bookID,
		FormatType: format.Type,
		UnitPrice:  format.Price,
		Quantity:   1,
		BookTitle:  book.Title,
	})
	c.persist()
}

// RemoveItem deletes the line with the given identity. Absent lines are
// a no-op.
func (c *Cart) RemoveItem(bookID, formatType string) {
	for i := range c.items {
		if c.items[i].BookID == bookID && c.items[i].FormatType == formatType {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return
		}
	}
}

// UpdateQuantity sets the line's quantity. Zero or negative removes the
// line. No upper bound is enforced here; views cap against config.
func (c *Cart) UpdateQuantity(bookID, formatType string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(bookID, formatType)
		return
	}
	for i := range c.items {
		if c.items[i].BookID == bookID && c.items[i].FormatType == formatType {
			c.items[i].Quantity = quantity
			c.persist()
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
	c.persist()
}

// Items returns a copy of the current line items in insertion order.
func (c *Cart) Items() []domain.CartLineItem {
	out := make([]domain.CartLineItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalPrice sums unit price times quantity across the cart, then applies
// the given percentage discount. Whether a discount applies (e.g. premium
// membership) is the caller's call; the cart just does the arithmetic.
func (c *Cart) TotalPrice(discountPercent float64) float64 {
	var total float64
	for _, li := range c.items {
		total += li.Subtotal()
	}
	return total * (1 - discountPercent/100)
}

// TotalItemCount sums quantities across all lines.
func (c *Cart) TotalItemCount() int {
	var count int
	for _, li := range c.items {
		count += li.Quantity
	}
	return count
}

func (c *Cart) persist() {
	// Persist an empty array rather than null so older readers of the
	// snapshot keep working.
	items := c.items
	if items == nil {
		items = []domain.CartLineItem{}
	}
	logger.StoreWrite(cartStoreKey, c.store.Set(cartStoreKey, items))
}
