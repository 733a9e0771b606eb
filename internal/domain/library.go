package domain

import "time"

// LibraryEntry is one digital or audio book the user owns access to.
type LibraryEntry struct {
	ID           string    `json:"id"`
	BookID       string    `json:"book_id"`
	BookTitle    string    `json:"book_title"`
	BookAuthor   string    `json:"book_author"`
	Format       string    `json:"format"`
	AccessURL    string    `json:"access_url"`
	AccessedDate time.Time `json:"accessed_date"`
}

// PersonalLibrary is the user's digital library as served by the API.
type PersonalLibrary struct {
	UserID string         `json:"user_id"`
	Books  []LibraryEntry `json:"books"`
}

// DigitalAccess carries the access grant for a single format.
type DigitalAccess struct {
	ID                string     `json:"id"`
	FormatID          string     `json:"format_id"`
	AccessURL         string     `json:"access_url"`
	AccessGrantedDate time.Time  `json:"access_granted_date"`
	ExpiryDate        *time.Time `json:"expiry_date,omitempty"`
}
