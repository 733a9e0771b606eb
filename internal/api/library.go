package api

import (
	"context"
	"net/http"
	"net/url"

	"boipoka-storefront/internal/domain"
)

// Library fetches the current user's digital library.
func (c *Client) Library(ctx context.Context) (domain.PersonalLibrary, error) {
	var lib domain.PersonalLibrary
	if err := c.doJSON(ctx, http.MethodGet, "/library", nil, &lib); err != nil {
		return domain.PersonalLibrary{}, err
	}
	return lib, nil
}

// FormatAccess fetches the access grant for one owned format.
func (c *Client) FormatAccess(ctx context.Context, formatID string) (domain.DigitalAccess, error) {
	var access domain.DigitalAccess
	if err := c.doJSON(ctx, http.MethodGet, "/library/"+url.PathEscape(formatID), nil, &access); err != nil {
		return domain.DigitalAccess{}, err
	}
	return access, nil
}

// DigitalBooks lists every book available in a digital format.
func (c *Client) DigitalBooks(ctx context.Context) ([]domain.Book, error) {
	var books []domain.Book
	if err := c.doJSON(ctx, http.MethodGet, "/digital-books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}
