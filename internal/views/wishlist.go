package views

import (
	"context"
	"strings"
)

// WishlistView renders the marked books. Each book is fetched on its own;
// one missing or failing lookup degrades that line only.
func (a *App) WishlistView(ctx context.Context, _ string) string {
	a.header("Wishlist")
	ids := a.Wishlist.IDs()
	if len(ids) == 0 {
		a.printf("Your wishlist is empty.")
		return ""
	}

	for _, id := range ids {
		book, err := a.API.GetBook(ctx, id)
		if err != nil {
			a.printf("%-10s (unavailable: %v)", id, err)
			continue
		}
		a.printf("%-10s %-40s %s", book.CanonicalID(), book.Title, book.Author)
	}

	action := a.prompt("Action (remove <id> | open <id> | enter to go back)")
	switch {
	case strings.HasPrefix(action, "remove "):
		a.Wishlist.Remove(strings.TrimSpace(strings.TrimPrefix(action, "remove ")))
		return "/wishlist"
	case strings.HasPrefix(action, "open "):
		return "/books/" + strings.TrimSpace(strings.TrimPrefix(action, "open "))
	default:
		return ""
	}
}
