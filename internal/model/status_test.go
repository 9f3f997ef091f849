package model

import "testing"

func TestValidOrderStatus(t *testing.T) {
	for _, s := range OrderStatusNames() {
		if !ValidOrderStatus(s) {
			t.Fatalf("expected %q to be a valid order status", s)
		}
	}
	for _, s := range []string{"", "paid", "PENDING", "returned"} {
		if ValidOrderStatus(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestOrderTransitionsFullyConnected(t *testing.T) {
	names := OrderStatusNames()
	for _, from := range names {
		for _, to := range names {
			if !CanTransitionOrder(from, to) {
				t.Fatalf("expected %s -> %s to be allowed", from, to)
			}
		}
	}
	// Terminal states are convention only: delivered and cancelled
	// must still transition anywhere.
	if !CanTransitionOrder(OrderDelivered, OrderPending) {
		t.Fatalf("expected delivered -> pending to be allowed")
	}
	if CanTransitionOrder(OrderPending, "unknown") {
		t.Fatalf("expected transition to unknown status to be rejected")
	}
	if CanTransitionOrder("unknown", OrderPending) {
		t.Fatalf("expected transition from unknown status to be rejected")
	}
}

func TestTestDriveTransitions(t *testing.T) {
	// The documented forward path.
	if !CanTransitionTestDrive(TestDrivePending, TestDriveConfirmed) {
		t.Fatalf("expected pending -> confirmed")
	}
	if !CanTransitionTestDrive(TestDriveConfirmed, TestDriveCompleted) {
		t.Fatalf("expected confirmed -> completed")
	}
	// Skipping confirmation is accepted as well.
	if !CanTransitionTestDrive(TestDrivePending, TestDriveCompleted) {
		t.Fatalf("expected pending -> completed shortcut to be allowed")
	}
	if CanTransitionTestDrive(TestDrivePending, "shipped") {
		t.Fatalf("shipped is an order status, not a test-drive status")
	}
	if ValidTestDriveStatus("delivered") {
		t.Fatalf("delivered is not a test-drive status")
	}
}
