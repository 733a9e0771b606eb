package views

import (
	"context"
	"strings"
)

// Library renders the user's digital library with access links.
func (a *App) Library(ctx context.Context, _ string) string {
	a.header("My Library")
	lib, err := a.API.Library(ctx)
	if err != nil {
		return a.apiFailure(err, "Failed to load library")
	}
	if len(lib.Books) == 0 {
		a.printf("Your library is empty. Digital purchases appear here.")
		if digital, err := a.API.DigitalBooks(ctx); err == nil && len(digital) > 0 {
			a.printf("\nAvailable digitally:")
			for _, b := range digital {
				a.printf("  %-10s %-40s %s", b.CanonicalID(), b.Title, b.Author)
			}
		}
		return ""
	}

	for _, entry := range lib.Books {
		a.printf("%-10s %-30s %s [%s]", entry.ID, entry.BookTitle, entry.BookAuthor, entry.Format)
	}

	action := a.prompt("Action (read <id> | enter to go back)")
	if id, ok := strings.CutPrefix(action, "read "); ok {
		access, err := a.API.FormatAccess(ctx, strings.TrimSpace(id))
		if err != nil {
			return a.apiFailure(err, "Failed to fetch access")
		}
		a.successf("Access URL: %s", access.AccessURL)
		if access.ExpiryDate != nil {
			a.printf("Expires: %s", access.ExpiryDate.Format("2006-01-02"))
		}
	}
	return ""
}
