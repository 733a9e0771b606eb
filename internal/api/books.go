package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"boipoka-storefront/internal/domain"
)

// ListBooks fetches the catalog, optionally filtered by a search term.
// Results are cached briefly so browsing back and forth stays cheap.
func (c *Client) ListBooks(ctx context.Context, search string) ([]domain.Book, error) {
	key := "books:list:" + search
	if c.cache != nil {
		if val, found := c.cache.Get(key); found {
			return val.([]domain.Book), nil
		}
	}

	path := "/books"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	var books []domain.Book
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &books); err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Set(key, books, c.listTTL)
	}
	return books, nil
}

// GetBook fetches a single book with its formats.
func (c *Client) GetBook(ctx context.Context, id string) (domain.Book, error) {
	key := "books:id:" + id
	if c.cache != nil {
		if val, found := c.cache.Get(key); found {
			return val.(domain.Book), nil
		}
	}

	var book domain.Book
	if err := c.doJSON(ctx, http.MethodGet, "/books/"+url.PathEscape(id), nil, &book); err != nil {
		return domain.Book{}, err
	}

	if c.cache != nil {
		c.cache.Set(key, book, c.bookTTL)
	}
	return book, nil
}

// CreateBook adds a catalog entry (admin only).
func (c *Client) CreateBook(ctx context.Context, input domain.BookInput) (domain.Book, error) {
	var book domain.Book
	if err := c.doJSON(ctx, http.MethodPost, "/admin/books", input, &book); err != nil {
		return domain.Book{}, err
	}
	c.invalidateCatalogCache("")
	return book, nil
}

// UpdateBook rewrites a catalog entry (admin only).
func (c *Client) UpdateBook(ctx context.Context, id string, input domain.BookInput) (domain.Book, error) {
	var book domain.Book
	if err := c.doJSON(ctx, http.MethodPut, "/admin/books/"+url.PathEscape(id), input, &book); err != nil {
		return domain.Book{}, err
	}
	c.invalidateCatalogCache(id)
	return book, nil
}

// DeleteBook removes a catalog entry (admin only).
func (c *Client) DeleteBook(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/admin/books/"+url.PathEscape(id), nil, nil); err != nil {
		return err
	}
	c.invalidateCatalogCache(id)
	return nil
}

// invalidateCatalogCache drops cached catalog responses after an admin
// mutation. List keys vary by search term, so the whole cache goes.
func (c *Client) invalidateCatalogCache(id string) {
	if c.cache == nil {
		return
	}
	if id != "" {
		c.cache.Delete(fmt.Sprintf("books:id:%s", id))
	}
	c.cache.Flush()
}
