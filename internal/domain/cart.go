package domain

// CartLineItem is one cart entry, uniquely identified by (BookID, FormatType).
// UnitPrice and BookTitle are snapshotted when the item is added; the cart
// never re-fetches them, so the price shown is the price checkout submits.
type CartLineItem struct {
	BookID     string  `json:"book_id"`
	FormatType string  `json:"format_type"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
	BookTitle  string  `json:"book_title"`
}

// Subtotal is the line contribution to the cart total.
func (li CartLineItem) Subtotal() float64 {
	return li.UnitPrice * float64(li.Quantity)
}
