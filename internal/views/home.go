package views

import "context"

// Home is the landing page: a greeting plus a slice of the catalog.
func (a *App) Home(ctx context.Context, _ string) string {
	a.header("Boipoka Bookstore")
	if user := a.Session.User(); user != nil {
		a.printf("Welcome back, %s.", user.Username)
	} else {
		a.printf("Welcome. Log in at /login or browse as a guest.")
	}

	books, err := a.API.ListBooks(ctx, "")
	if err != nil {
		// The storefront still renders; the shelf is just empty.
		return a.apiFailure(err, "Could not load featured books")
	}

	limit := min(len(books), 5)
	if limit > 0 {
		a.printf("\nFeatured:")
		for _, b := range books[:limit] {
			a.printf("  %-40s %s", b.Title, b.Author)
		}
	}
	a.printf("\nPages: /books /cart /wishlist /orders /library /profile /admin")
	return ""
}
