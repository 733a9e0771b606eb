package domain

import "time"

// Order is a placed order as served by the API.
type Order struct {
	ID              string      `json:"id"`
	LegacyID        string      `json:"_id,omitempty"`
	UserID          string      `json:"user_id"`
	OrderDate       time.Time   `json:"order_date"`
	Status          string      `json:"status"`
	DeliveryStatus  string      `json:"delivery_status,omitempty"`
	DeliveryAddress string      `json:"delivery_address,omitempty"`
	TotalAmount     float64     `json:"total_amount"`
	Items           []OrderItem `json:"items,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// CanonicalID returns the one identifier the rest of the client uses.
func (o Order) CanonicalID() string {
	if o.ID != "" {
		return o.ID
	}
	return o.LegacyID
}

// OrderItem is a line of a placed order. The price here is what was
// charged, snapshotted by the server at purchase time.
type OrderItem struct {
	ID              string    `json:"id"`
	BookID          string    `json:"book_id"`
	BookTitle       string    `json:"book_title,omitempty"`
	FormatType      string    `json:"format_type"`
	Quantity        int       `json:"quantity"`
	PriceAtPurchase float64   `json:"price_at_purchase"`
	CreatedAt       time.Time `json:"created_at"`
}

// OrderItemInput is one checkout line sent to the API. Pricing and stock
// are re-validated server-side; the client only names what it wants.
type OrderItemInput struct {
	BookID     string `json:"book_id"`
	FormatType string `json:"format_type"`
	Quantity   int    `json:"quantity"`
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	Items           []OrderItemInput `json:"items"`
	DeliveryAddress string           `json:"delivery_address,omitempty"`
}
