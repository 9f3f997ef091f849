package model

// Order lifecycle statuses as named in order_statuses.status_name.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Test-drive lifecycle statuses stored directly in test_drives.status.
const (
	TestDrivePending   = "pending"
	TestDriveConfirmed = "confirmed"
	TestDriveCancelled = "cancelled"
	TestDriveCompleted = "completed"
)

// orderStatuses is the order of the literals as they appear in the
// allowed-status error message; it doubles as the membership set.
var orderStatuses = []string{
	OrderPending,
	OrderConfirmed,
	OrderShipped,
	OrderDelivered,
	OrderCancelled,
}

var testDriveStatuses = []string{
	TestDrivePending,
	TestDriveConfirmed,
	TestDriveCancelled,
	TestDriveCompleted,
}

// OrderTransitions is the transition table for the order lifecycle.
// The table is deliberately fully connected: status changes come from
// the manager dashboard and the API applies whatever it is told, so
// every known status is reachable from every other, including out of
// the conventionally terminal delivered/cancelled states. Only the
// membership of the status set is enforced.
var OrderTransitions = map[string][]string{
	OrderPending:   {OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled},
	OrderConfirmed: {OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled},
	OrderShipped:   {OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled},
	OrderDelivered: {OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled},
	OrderCancelled: {OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled},
}

// TestDriveTransitions mirrors OrderTransitions for test drives. The
// typical forward path is pending -> confirmed -> completed, but that
// is dashboard convention: skipping confirmed or reviving a cancelled
// booking is accepted.
var TestDriveTransitions = map[string][]string{
	TestDrivePending:   {TestDrivePending, TestDriveConfirmed, TestDriveCancelled, TestDriveCompleted},
	TestDriveConfirmed: {TestDrivePending, TestDriveConfirmed, TestDriveCancelled, TestDriveCompleted},
	TestDriveCancelled: {TestDrivePending, TestDriveConfirmed, TestDriveCancelled, TestDriveCompleted},
	TestDriveCompleted: {TestDrivePending, TestDriveConfirmed, TestDriveCancelled, TestDriveCompleted},
}

// ValidOrderStatus reports whether s is one of the five order status
// literals.
func ValidOrderStatus(s string) bool {
	for _, v := range orderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ValidTestDriveStatus reports whether s is a known test-drive status.
func ValidTestDriveStatus(s string) bool {
	for _, v := range testDriveStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// CanTransitionOrder reports whether from -> to is present in the
// order transition table. Unknown literals on either side are
// rejected; any pair of known statuses is allowed.
func CanTransitionOrder(from, to string) bool {
	allowed, ok := OrderTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// CanTransitionTestDrive is CanTransitionOrder for the test-drive table.
func CanTransitionTestDrive(from, to string) bool {
	allowed, ok := TestDriveTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// OrderStatusNames returns the allowed order status literals for use
// in validation error messages.
func OrderStatusNames() []string { return orderStatuses }

// TestDriveStatusNames returns the allowed test-drive status literals.
func TestDriveStatusNames() []string { return testDriveStatuses }
