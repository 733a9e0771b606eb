package views

import (
	"context"

	"boipoka-storefront/internal/router"
)

// Profile shows the session user and offers logout.
func (a *App) Profile(ctx context.Context, _ string) string {
	user := a.Session.User()
	if user == nil {
		return router.LoginPath
	}

	a.header("Profile")
	a.printf("Username: %s", user.Username)
	a.printf("Email:    %s", user.Email)
	a.printf("Role:     %s", user.Role)
	if a.Session.IsPremium() {
		if user.PremiumUntil != nil {
			a.printf("Premium:  until %s", user.PremiumUntil.Format("2006-01-02"))
		} else {
			a.printf("Premium:  active")
		}
	}

	if a.prompt("Action (logout | enter to go back)") == "logout" {
		a.Session.Logout()
		a.successf("Logged out")
		return router.HomePath
	}
	return ""
}
