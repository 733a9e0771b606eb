package views

import (
	"context"
	"strconv"
	"strings"

	"boipoka-storefront/internal/domain"
	"boipoka-storefront/pkg/utils"
)

// section wraps one independent dashboard fetch. Each fetch fails on its
// own; a dead stats endpoint must not take the book table down with it.
type section[T any] struct {
	val T
	err error
}

func load[T any](enabled bool, f func() (T, error)) section[T] {
	var s section[T]
	if !enabled {
		return s
	}
	s.val, s.err = f()
	return s
}

// Admin renders the dashboard. Moderators manage books and see users;
// admins additionally get stats, orders and user administration.
func (a *App) Admin(ctx context.Context, _ string) string {
	isAdmin := a.Session.IsAdmin()

	books := load(true, func() ([]domain.Book, error) { return a.API.ListBooks(ctx, "") })
	users := load(a.Session.IsModerator(), func() ([]domain.User, error) { return a.API.AllUsers(ctx) })
	stats := load(isAdmin, func() (domain.AdminStats, error) { return a.API.Stats(ctx) })
	orders := load(isAdmin, func() ([]domain.Order, error) { return a.API.AllOrders(ctx) })

	a.header("Dashboard")
	if !isAdmin {
		a.printf("Moderator dashboard: book management and user overview.")
	}

	if isAdmin {
		if stats.err != nil {
			a.errorf("Stats unavailable: %v", stats.err)
		} else {
			s := stats.val
			a.printf("Users: %d (premium %d, moderators %d, admins %d)",
				s.TotalUsers, s.PremiumUsers, s.Moderators, s.Admins)
			a.printf("Books: %d  Orders: %d (pending %d, completed %d, cancelled %d)",
				s.TotalBooks, s.TotalOrders, s.PendingOrders, s.CompletedOrders, s.CancelledOrders)
			a.printf("Revenue: $%.2f", s.TotalRevenue)
		}
	}

	a.printf("\nBooks:")
	if books.err != nil {
		a.errorf("Books unavailable: %v", books.err)
	} else {
		for _, b := range books.val {
			a.printf("  %-10s %-40s %s", b.CanonicalID(), b.Title, b.Author)
		}
	}

	if users.err != nil {
		a.errorf("Users unavailable: %v", users.err)
	} else if len(users.val) > 0 {
		a.printf("\nUsers:")
		for _, u := range users.val {
			flags := u.Role
			if u.IsPremium {
				flags += ", premium"
			}
			if !u.IsActive {
				flags += ", deactivated"
			}
			a.printf("  %-10s %-20s %s (%s)", u.ID, u.Username, u.Email, flags)
		}
	}

	if isAdmin {
		if orders.err != nil {
			a.errorf("Orders unavailable: %v", orders.err)
		} else if len(orders.val) > 0 {
			a.printf("\nOrders:")
			for _, o := range orders.val {
				a.printf("  %-10s $%.2f  %s / %s", o.CanonicalID(), o.TotalAmount, o.Status, o.DeliveryStatus)
			}
		}
	}

	return a.adminAction(ctx)
}

func (a *App) adminAction(ctx context.Context) string {
	action := a.prompt("\nAction (addbook | editbook <id> | delbook <id> | status <order> <status> | delivery <order> <status> | deactivate <user> | premium <user> <days> | role <user> <role> | enter to go back)")
	if action == "" {
		return ""
	}
	fields := strings.Fields(action)

	switch fields[0] {
	case "addbook":
		input, ok := a.bookForm()
		if !ok {
			return "/admin"
		}
		if _, err := a.API.CreateBook(ctx, input); err != nil {
			return a.apiFailure(err, "Failed to create book")
		}
		a.successf("Book created")
	case "editbook":
		if len(fields) != 2 {
			a.errorf("Usage: editbook <id>")
			return "/admin"
		}
		input, ok := a.bookForm()
		if !ok {
			return "/admin"
		}
		if _, err := a.API.UpdateBook(ctx, fields[1], input); err != nil {
			return a.apiFailure(err, "Failed to update book")
		}
		a.successf("Book updated")
	case "delbook":
		if len(fields) != 2 {
			a.errorf("Usage: delbook <id>")
			return "/admin"
		}
		if err := a.API.DeleteBook(ctx, fields[1]); err != nil {
			return a.apiFailure(err, "Failed to delete book")
		}
		a.successf("Book deleted")
	case "status":
		if len(fields) != 3 {
			a.errorf("Usage: status <order> <status>")
			return "/admin"
		}
		if err := a.API.UpdateOrderStatus(ctx, fields[1], fields[2]); err != nil {
			return a.apiFailure(err, "Failed to update order")
		}
		a.successf("Order updated")
	case "delivery":
		if len(fields) != 3 {
			a.errorf("Usage: delivery <order> <status>")
			return "/admin"
		}
		address := a.prompt("Delivery address (enter to keep)")
		if err := a.API.UpdateDeliveryStatus(ctx, fields[1], fields[2], address); err != nil {
			return a.apiFailure(err, "Failed to update delivery")
		}
		a.successf("Delivery updated")
	case "deactivate":
		// There is no hard delete; removal means deactivation.
		if len(fields) != 2 {
			a.errorf("Usage: deactivate <user>")
			return "/admin"
		}
		if err := a.API.DeactivateUser(ctx, fields[1]); err != nil {
			return a.apiFailure(err, "Failed to deactivate user")
		}
		a.successf("User deactivated")
	case "premium":
		if len(fields) != 3 {
			a.errorf("Usage: premium <user> <days>")
			return "/admin"
		}
		days := utils.ParseInt(fields[2], 0)
		if days <= 0 {
			a.errorf("Days must be a positive number")
			return "/admin"
		}
		until, err := a.API.UpgradeToPremium(ctx, fields[1], days)
		if err != nil {
			return a.apiFailure(err, "Failed to upgrade user")
		}
		a.successf("Premium until %s", until.Format("2006-01-02"))
	case "role":
		if len(fields) != 3 {
			a.errorf("Usage: role <user> <role>")
			return "/admin"
		}
		if err := a.API.UpdateUserRole(ctx, fields[1], fields[2]); err != nil {
			return a.apiFailure(err, "Failed to update role")
		}
		a.successf("Role updated")
	default:
		a.errorf("Unknown action %q", fields[0])
	}
	return "/admin"
}

// bookForm prompts the admin book fields. Prices left blank skip that
// format entirely.
func (a *App) bookForm() (domain.BookInput, bool) {
	input := domain.BookInput{
		Title:       a.prompt("Title"),
		Author:      a.prompt("Author"),
		Description: a.prompt("Description"),
	}
	if input.Title == "" || input.Author == "" {
		a.errorf("Title and author are required")
		return domain.BookInput{}, false
	}

	for _, formatType := range []string{domain.FormatPhysical, domain.FormatDigital} {
		raw := a.prompt(formatType + " price (enter to skip)")
		if raw == "" {
			continue
		}
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil || price < 0 {
			a.errorf("Invalid price %q", raw)
			return domain.BookInput{}, false
		}
		format := domain.FormatInput{Type: formatType, Price: price}
		if formatType == domain.FormatPhysical {
			format.StockQuantity = a.promptInt("stock quantity", 0)
		}
		input.Formats = append(input.Formats, format)
	}
	return input, true
}
