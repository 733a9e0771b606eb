package api

import (
	"context"
	"net/http"
	"net/url"

	"boipoka-storefront/internal/domain"

	"github.com/google/uuid"
)

// CreateOrder submits a checkout. An Idempotency-Key header guards against
// double-submits when the connection drops mid-checkout.
func (c *Client) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	header := http.Header{}
	header.Set("Idempotency-Key", uuid.NewString())

	var order domain.Order
	if err := c.do(ctx, http.MethodPost, "/orders", req, &order, header); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// MyOrders lists the current user's orders.
func (c *Client) MyOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.doJSON(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CancelOrder cancels one of the current user's orders.
func (c *Client) CancelOrder(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/orders/"+url.PathEscape(id), nil, nil)
}

// AllOrders lists every order (admin only).
func (c *Client) AllOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.doJSON(ctx, http.MethodGet, "/admin/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus sets an order's status (admin only).
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) error {
	payload := map[string]string{"status": status}
	return c.doJSON(ctx, http.MethodPut, "/admin/orders/"+url.PathEscape(id), payload, nil)
}

// UpdateDeliveryStatus sets an order's delivery progress (admin only).
func (c *Client) UpdateDeliveryStatus(ctx context.Context, id, status, address string) error {
	payload := map[string]string{
		"delivery_status":  status,
		"delivery_address": address,
	}
	return c.doJSON(ctx, http.MethodPut, "/admin/orders/"+url.PathEscape(id)+"/delivery", payload, nil)
}
