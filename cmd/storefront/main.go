package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"boipoka-storefront/config"
	"boipoka-storefront/internal/api"
	"boipoka-storefront/internal/domain"
	"boipoka-storefront/internal/infrastructure/cache"
	"boipoka-storefront/internal/router"
	"boipoka-storefront/internal/state"
	"boipoka-storefront/internal/storage"
	"boipoka-storefront/internal/views"
	"boipoka-storefront/pkg/logger"
)

const appName = "boipoka-storefront"
const appVersion = "1.0.0"

func main() {
	cfg := config.LoadConfig()

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Local persistent store (the cart/wishlist/token mirror)
	store, err := storage.NewStore(cfg.StateDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open local state store")
	}

	// Initialize Cache (In-Memory)
	// Default expiration 5m, cleanup every 10m
	memCache := cache.NewMemoryCache(5*time.Minute, 10*time.Minute)

	// Token cache feeds the API client's Authorization header
	tokens := state.NewTokenCache(store)

	client := api.NewClient(cfg.APIBaseURL, api.Options{
		Timeout:           cfg.RequestTimeout,
		Tokens:            tokens,
		ClientID:          state.EnsureClientID(store),
		RequestsPerSecond: cfg.APIRequestsPerSecond,
		Burst:             cfg.APIBurst,
		Cache:             memCache,
		BookListTTL:       cfg.CacheBookListTTL,
		BookTTL:           cfg.CacheBookTTL,
	})

	// State containers: one each for the lifetime of the client
	sess := state.NewSession(client, tokens)
	cart := state.NewCart(store)
	wishlist := state.NewWishlist(store)

	app := &views.App{
		Config:   cfg,
		API:      client,
		Session:  sess,
		Cart:     cart,
		Wishlist: wishlist,
		In:       bufio.NewReader(os.Stdin),
		Out:      os.Stdout,
	}

	// Route table. Trailing-slash paths take an argument (book/order ID).
	r := router.New()
	r.Handle(router.Route{Path: "/", Title: "Home", Handler: app.Home})
	r.Handle(router.Route{Path: "/login", Title: "Log In", Handler: app.Login})
	r.Handle(router.Route{Path: "/register", Title: "Register", Handler: app.Register})
	r.Handle(router.Route{Path: "/books", Title: "Catalog", Handler: app.Books})
	r.Handle(router.Route{Path: "/books/", Title: "Book", Handler: app.BookDetail})
	r.Handle(router.Route{Path: "/cart", Title: "Cart", Handler: app.CartView})
	r.Handle(router.Route{Path: "/wishlist", Title: "Wishlist", Handler: app.WishlistView})
	r.Handle(router.Route{Path: "/orders", Title: "My Orders", RequireAuth: true, Handler: app.Orders})
	r.Handle(router.Route{Path: "/orders/", Title: "Order", RequireAuth: true, Handler: app.OrderDetails})
	r.Handle(router.Route{Path: "/library", Title: "My Library", RequireAuth: true, Handler: app.Library})
	r.Handle(router.Route{Path: "/profile", Title: "Profile", RequireAuth: true, Handler: app.Profile})
	r.Handle(router.Route{Path: "/admin", Title: "Dashboard", RequireAuth: true, MinRole: domain.RoleModerator, Handler: app.Admin})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.AppStart(appName, appVersion)

	// One restore at startup; guaranteed to land in a terminal state.
	sess.Restore(ctx)

	runShell(ctx, app, r, sess)

	logger.AppStop(appName)
}

// runShell drives navigation: render the current page, then read the next
// path. Views run one at a time; there is no concurrent mutation of any
// state container.
func runShell(ctx context.Context, app *views.App, r *router.Router, sess *state.Session) {
	path := router.HomePath
	for ctx.Err() == nil {
		decision := r.Resolve(path, sess.Status(), sess.User())
		switch decision.Outcome {
		case router.OutcomePlaceholder:
			// Session not resolved yet: neutral placeholder, no redirect.
			fmt.Fprintln(app.Out, "Loading...")
		case router.OutcomeRedirect:
			path = decision.RedirectTo
			continue
		case router.OutcomeRender:
			if next := decision.Route.Handler(ctx, decision.Arg); next != "" {
				path = next
				continue
			}
		}

		fmt.Fprintf(app.Out, "\n[%s] go to (path, or quit): ", path)
		line, err := app.In.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "quit" || line == "exit":
			return
		case line == "":
			// re-render current page
		case strings.HasPrefix(line, "/"):
			path = line
		default:
			fmt.Fprintf(app.Out, "Paths start with /. Try /books.\n")
		}
	}
}
