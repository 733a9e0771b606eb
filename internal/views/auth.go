package views

import (
	"context"
	"strings"

	"boipoka-storefront/internal/router"
)

// Login renders the login form. Validation failures show inline before any
// network call; API failures show the server's message and keep the user
// on the page.
func (a *App) Login(ctx context.Context, _ string) string {
	a.header("Log In")
	email := a.prompt("Email")
	password := a.prompt("Password")

	if !validEmail(email) {
		a.errorf("Please enter a valid email address")
		return ""
	}
	if password == "" {
		a.errorf("Password is required")
		return ""
	}

	result := a.Session.Login(ctx, email, password)
	if !result.Success {
		a.errorf("%s", result.Message)
		return ""
	}
	a.successf("Logged in as %s", a.Session.User().Username)
	return router.HomePath
}

// Register renders the registration form and sends new accounts to login.
func (a *App) Register(ctx context.Context, _ string) string {
	a.header("Register")
	username := a.prompt("Username")
	email := a.prompt("Email")
	password := a.prompt("Password")

	if username == "" {
		a.errorf("Username is required")
		return ""
	}
	if !validEmail(email) {
		a.errorf("Please enter a valid email address")
		return ""
	}
	if len(password) < 6 {
		a.errorf("Password must be at least 6 characters")
		return ""
	}

	result := a.Session.Register(ctx, username, email, password)
	if !result.Success {
		a.errorf("%s", result.Message)
		return ""
	}
	a.successf("Account created. Please log in.")
	return router.LoginPath
}

// validEmail is a light sanity check; the server validates properly.
func validEmail(s string) bool {
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t")
}
