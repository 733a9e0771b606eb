package views

import (
	"context"
	"strings"

	"boipoka-storefront/internal/domain"
	"boipoka-storefront/internal/router"
	"boipoka-storefront/pkg/utils"
)

// CartView renders the cart with totals and handles quantity edits and
// checkout. The premium discount is applied here, at the edge: the cart
// container itself knows nothing about eligibility.
func (a *App) CartView(ctx context.Context, _ string) string {
	a.header("Shopping Cart")
	items := a.Cart.Items()
	if len(items) == 0 {
		a.printf("Your cart is empty. Browse /books to fill it.")
		return ""
	}

	for _, li := range items {
		a.printf("%-10s %-30s [%s] $%.2f x%d = $%.2f",
			li.BookID, li.BookTitle, li.FormatType, li.UnitPrice, li.Quantity, li.Subtotal())
	}

	discount := 0.0
	if a.Session.IsPremium() {
		discount = a.Config.PremiumDiscountPct
	}
	a.printf("Items: %d", a.Cart.TotalItemCount())
	if discount > 0 {
		a.printf("Subtotal: $%.2f", a.Cart.TotalPrice(0))
		a.printf("Total (premium -%.0f%%): $%.2f", discount, a.Cart.TotalPrice(discount))
	} else {
		a.printf("Total: $%.2f", a.Cart.TotalPrice(0))
	}

	action := a.prompt("Action (qty <book> <format> <n> | remove <book> <format> | checkout | clear | enter to go back)")
	switch {
	case strings.HasPrefix(action, "qty "):
		a.editQuantity(action)
		return "/cart"
	case strings.HasPrefix(action, "remove "):
		fields := strings.Fields(action)
		if len(fields) != 3 {
			a.errorf("Usage: remove <book> <format>")
			return "/cart"
		}
		a.Cart.RemoveItem(fields[1], fields[2])
		return "/cart"
	case action == "clear":
		a.Cart.Clear()
		return "/cart"
	case action == "checkout":
		return a.checkout(ctx)
	default:
		return ""
	}
}

func (a *App) editQuantity(action string) {
	fields := strings.Fields(action)
	if len(fields) != 4 {
		a.errorf("Usage: qty <book> <format> <n>")
		return
	}
	// Unparseable input reads as zero, which removes the line.
	qty := utils.ParseInt(fields[3], 0)
	if qty > a.Config.MaxCartQuantity {
		a.errorf("Quantity is capped at %d", a.Config.MaxCartQuantity)
		qty = a.Config.MaxCartQuantity
	}
	a.Cart.UpdateQuantity(fields[1], fields[2], qty)
}

// checkout submits the cart as an order. Anonymous users go to login
// first; a successful order clears the cart and lands on the orders page.
func (a *App) checkout(ctx context.Context) string {
	if a.Session.User() == nil {
		a.errorf("Please log in to check out")
		return router.LoginPath
	}

	items := a.Cart.Items()
	if len(items) == 0 {
		a.errorf("Cart is empty")
		return ""
	}

	req := domain.CreateOrderRequest{}
	for _, li := range items {
		req.Items = append(req.Items, domain.OrderItemInput{
			BookID:     li.BookID,
			FormatType: li.FormatType,
			Quantity:   li.Quantity,
		})
	}
	if hasPhysical(items) {
		req.DeliveryAddress = a.prompt("Delivery address")
	}

	order, err := a.API.CreateOrder(ctx, req)
	if err != nil {
		return a.apiFailure(err, "Failed to place order")
	}
	a.Cart.Clear()
	a.successf("Order %s placed — total $%.2f", order.CanonicalID(), order.TotalAmount)
	return "/orders"
}

func hasPhysical(items []domain.CartLineItem) bool {
	for _, li := range items {
		if li.FormatType == domain.FormatPhysical || li.FormatType == domain.FormatBoth {
			return true
		}
	}
	return false
}

