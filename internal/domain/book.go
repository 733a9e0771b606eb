package domain

import "time"

// Book is a catalog entry as served by the bookstore API.
// The API has historically emitted both "id" and "_id"; keep both fields
// and always go through CanonicalID.
type Book struct {
	ID          string       `json:"id"`
	LegacyID    string       `json:"_id,omitempty"`
	Title       string       `json:"title"`
	Author      string       `json:"author"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	ISBN        string       `json:"isbn"`
	ImageURL    string       `json:"image_url"`
	Formats     []BookFormat `json:"formats"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// BookFormat is a purchasable variant of a book.
type BookFormat struct {
	ID            string  `json:"id"`
	BookID        string  `json:"book_id"`
	Type          string  `json:"type"` // physical, digital, or both
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
}

// CanonicalID returns the one identifier the rest of the client stores.
func (b Book) CanonicalID() string {
	if b.ID != "" {
		return b.ID
	}
	return b.LegacyID
}

// FormatByType returns the format with the given type, if the book has one.
func (b Book) FormatByType(formatType string) (BookFormat, bool) {
	for _, f := range b.Formats {
		if f.Type == formatType {
			return f, true
		}
	}
	return BookFormat{}, false
}

// FormatInput is the admin payload for a single format.
type FormatInput struct {
	Type          string  `json:"type"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	AccessURL     string  `json:"access_url,omitempty"`
}

// BookInput is the admin payload for creating or updating a book.
type BookInput struct {
	Title       string        `json:"title"`
	Author      string        `json:"author"`
	Description string        `json:"description"`
	Category    string        `json:"category,omitempty"`
	ISBN        string        `json:"isbn,omitempty"`
	ImageURL    string        `json:"image_url,omitempty"`
	Formats     []FormatInput `json:"formats,omitempty"`
}
