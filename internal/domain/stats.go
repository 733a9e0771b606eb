package domain

// AdminStats is the aggregate snapshot behind the admin dashboard.
type AdminStats struct {
	TotalUsers      int64   `json:"total_users"`
	TotalBooks      int64   `json:"total_books"`
	TotalOrders     int64   `json:"total_orders"`
	PremiumUsers    int64   `json:"premium_users"`
	Admins          int64   `json:"admins"`
	Moderators      int64   `json:"moderators"`
	PendingOrders   int64   `json:"pending_orders"`
	CompletedOrders int64   `json:"completed_orders"`
	CancelledOrders int64   `json:"cancelled_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
}
