package views

import (
	"context"
	"strings"
)

// Books renders the catalog, optionally filtered. The search term comes
// from the prompt, like the search box on the web storefront.
func (a *App) Books(ctx context.Context, _ string) string {
	a.header("Catalog")
	search := a.prompt("Search (enter for all)")

	books, err := a.API.ListBooks(ctx, search)
	if err != nil {
		return a.apiFailure(err, "Failed to load books")
	}
	if len(books) == 0 {
		a.printf("No books found.")
		return ""
	}

	for _, b := range books {
		marker := " "
		if a.Wishlist.Has(b.CanonicalID()) {
			marker = "♥"
		}
		a.printf("%s %-10s %-40s %s", marker, b.CanonicalID(), b.Title, b.Author)
	}
	a.printf("\nOpen a book with /books/<id>")
	return ""
}

// BookDetail renders one book with its formats and offers the cart and
// wishlist actions.
func (a *App) BookDetail(ctx context.Context, id string) string {
	book, err := a.API.GetBook(ctx, id)
	if err != nil {
		if next := a.apiFailure(err, "Failed to load book"); next != "" {
			return next
		}
		return "/books"
	}

	a.header(book.Title)
	a.printf("by %s", book.Author)
	if book.Description != "" {
		a.printf("%s", book.Description)
	}
	for _, f := range book.Formats {
		stock := "in stock"
		if f.StockQuantity <= 0 {
			stock = "out of stock"
		}
		a.printf("  [%s] $%.2f (%s)", f.Type, f.Price, stock)
	}
	if a.Wishlist.Has(book.CanonicalID()) {
		a.printf("♥ On your wishlist")
	}

	action := a.prompt("Action (add <format> | wish | enter to go back)")
	switch {
	case strings.HasPrefix(action, "add "):
		formatType := strings.TrimSpace(strings.TrimPrefix(action, "add "))
		format, ok := book.FormatByType(formatType)
		if !ok {
			a.errorf("No %q format for this book", formatType)
			return ""
		}
		a.Cart.AddItem(book, format)
		a.successf("Added %s (%s) to cart — %d item(s) total", book.Title, format.Type, a.Cart.TotalItemCount())
		return ""
	case action == "wish":
		a.Wishlist.Toggle(book.CanonicalID())
		if a.Wishlist.Has(book.CanonicalID()) {
			a.successf("Added to wishlist")
		} else {
			a.successf("Removed from wishlist")
		}
		return ""
	default:
		return "/books"
	}
}
