package views

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"boipoka-storefront/config"
	"boipoka-storefront/internal/api"
	"boipoka-storefront/internal/router"
	"boipoka-storefront/internal/state"
	"boipoka-storefront/pkg/utils"
)

// App bundles the state containers, API client and terminal streams every
// page works against. One App exists per running client; it is constructed
// at startup and handed to the route table.
type App struct {
	Config   *config.Config
	API      *api.Client
	Session  *state.Session
	Cart     *state.Cart
	Wishlist *state.Wishlist

	In  *bufio.Reader
	Out io.Writer
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.Out, format+"\n", args...)
}

func (a *App) header(title string) {
	fmt.Fprintf(a.Out, "\n== %s ==\n", title)
}

// errorf renders a dismissible failure message near the point of action.
func (a *App) errorf(format string, args ...any) {
	fmt.Fprintf(a.Out, "! "+format+"\n", args...)
}

func (a *App) successf(format string, args ...any) {
	fmt.Fprintf(a.Out, "✓ "+format+"\n", args...)
}

// prompt reads one trimmed line of input. EOF reads as "".
func (a *App) prompt(label string) string {
	fmt.Fprintf(a.Out, "%s: ", label)
	line, err := a.In.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func (a *App) promptInt(label string, fallback int) int {
	return utils.ParseInt(a.prompt(label), fallback)
}

// apiFailure handles a failed API call. Authorization failures clear the
// session and send the user to login; anything else is shown inline and
// the user stays put. Returns the redirect path, or "".
func (a *App) apiFailure(err error, action string) string {
	if api.IsUnauthorized(err) {
		a.Session.Logout()
		a.errorf("Your session has expired. Please log in again.")
		return router.LoginPath
	}
	a.errorf("%s: %v", action, err)
	return ""
}
