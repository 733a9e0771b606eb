package domain

// Roles
const (
	RoleCustomer  = "Customer"
	RoleModerator = "Moderator"
	RoleAdmin     = "Admin"
)

// Format Types
const (
	FormatPhysical = "physical"
	FormatDigital  = "digital"
	FormatBoth     = "both"
)

// Order Statuses
const (
	OrderStatusPending   = "Pending"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
)

// Delivery Statuses
const (
	DeliveryStatusPending   = "pending"
	DeliveryStatusAccepted  = "accepted"
	DeliveryStatusInTransit = "in_transit"
	DeliveryStatusDelivered = "delivered"
)

// List Exports for views
var Roles = []string{
	RoleCustomer,
	RoleModerator,
	RoleAdmin,
}

var FormatTypes = []string{
	FormatPhysical,
	FormatDigital,
	FormatBoth,
}

var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

var DeliveryStatuses = []string{
	DeliveryStatusPending,
	DeliveryStatusAccepted,
	DeliveryStatusInTransit,
	DeliveryStatusDelivered,
}

// roleLevels orders roles by privilege. Admin satisfies every requirement.
var roleLevels = map[string]int{
	RoleCustomer:  0,
	RoleModerator: 1,
	RoleAdmin:     2,
}

// RoleAtLeast reports whether role meets the required privilege level.
// An empty requirement is always met; unknown required roles never are.
func RoleAtLeast(role, required string) bool {
	if required == "" {
		return true
	}
	reqLevel, ok := roleLevels[required]
	if !ok {
		return false
	}
	return roleLevels[role] >= reqLevel
}
