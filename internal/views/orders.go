package views

import (
	"context"
	"strings"

	"boipoka-storefront/internal/domain"
)

// Orders lists the user's orders and offers cancellation for the ones
// still pending.
func (a *App) Orders(ctx context.Context, _ string) string {
	a.header("My Orders")
	orders, err := a.API.MyOrders(ctx)
	if err != nil {
		return a.apiFailure(err, "Failed to load orders")
	}
	if len(orders) == 0 {
		a.printf("No orders yet.")
		return ""
	}

	for _, o := range orders {
		line := "%-10s %s  $%.2f  %s"
		a.printf(line, o.CanonicalID(), o.OrderDate.Format("2006-01-02"), o.TotalAmount, o.Status)
		if o.DeliveryStatus != "" {
			a.printf("           delivery: %s", o.DeliveryStatus)
		}
	}

	action := a.prompt("Action (open <id> | cancel <id> | enter to go back)")
	switch {
	case strings.HasPrefix(action, "open "):
		return "/orders/" + strings.TrimSpace(strings.TrimPrefix(action, "open "))
	case strings.HasPrefix(action, "cancel "):
		id := strings.TrimSpace(strings.TrimPrefix(action, "cancel "))
		if err := a.API.CancelOrder(ctx, id); err != nil {
			return a.apiFailure(err, "Failed to cancel order")
		}
		a.successf("Order %s cancelled", id)
		return "/orders"
	default:
		return ""
	}
}

// OrderDetails shows a single order with its lines. The order comes out
// of the user's own list; there is no per-order endpoint.
func (a *App) OrderDetails(ctx context.Context, id string) string {
	orders, err := a.API.MyOrders(ctx)
	if err != nil {
		return a.apiFailure(err, "Failed to load order")
	}

	var order *domain.Order
	for i := range orders {
		if orders[i].CanonicalID() == id {
			order = &orders[i]
			break
		}
	}
	if order == nil {
		a.errorf("Order %s not found", id)
		return "/orders"
	}

	a.header("Order " + order.CanonicalID())
	a.printf("Placed: %s", order.OrderDate.Format("2006-01-02 15:04"))
	a.printf("Status: %s", order.Status)
	if order.DeliveryStatus != "" {
		a.printf("Delivery: %s (%s)", order.DeliveryStatus, order.DeliveryAddress)
	}
	for _, item := range order.Items {
		a.printf("  %-30s [%s] $%.2f x%d", item.BookTitle, item.FormatType, item.PriceAtPurchase, item.Quantity)
	}
	a.printf("Total: $%.2f", order.TotalAmount)
	return ""
}
