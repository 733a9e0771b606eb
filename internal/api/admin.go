package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"boipoka-storefront/internal/domain"
)

// Stats fetches the aggregate dashboard numbers (admin only).
func (c *Client) Stats(ctx context.Context) (domain.AdminStats, error) {
	var stats domain.AdminStats
	if err := c.doJSON(ctx, http.MethodGet, "/admin/stats", nil, &stats); err != nil {
		return domain.AdminStats{}, err
	}
	return stats, nil
}

// AllUsers lists every account (admin or moderator).
func (c *Client) AllUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.doJSON(ctx, http.MethodGet, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeactivateUser disables an account. There is deliberately no hard
// delete; "delete" in the dashboard routes here.
func (c *Client) DeactivateUser(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(id)+"/deactivate", nil, nil)
}

// UpgradeToPremium grants premium for the given number of days and
// returns the resulting expiry.
func (c *Client) UpgradeToPremium(ctx context.Context, id string, days int) (time.Time, error) {
	payload := map[string]int{"days": days}
	var resp struct {
		PremiumUntil time.Time `json:"premium_until"`
	}
	if err := c.doJSON(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(id)+"/premium", payload, &resp); err != nil {
		return time.Time{}, err
	}
	return resp.PremiumUntil, nil
}

// UpdateUserRole changes an account's role (admin only).
func (c *Client) UpdateUserRole(ctx context.Context, id, role string) error {
	payload := map[string]string{"role": role}
	return c.doJSON(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(id)+"/role", payload, nil)
}
