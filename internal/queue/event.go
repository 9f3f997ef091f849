// Package queue defines the domain events exchanged over the message
// broker and the background consumer that records them. All events
// travel through a single durable queue; the Event field names the
// kind.
package queue

// EventsQueueName is the durable queue all showroom events go through.
const EventsQueueName = "showroom.events"

// Event kinds.
const (
	EventOrderCreated       = "order.created"
	EventPaymentRecorded    = "payment.recorded"
	EventTestDriveScheduled = "testdrive.scheduled"
)

// OrderCreatedEvent is published after a customer order is stored.
type OrderCreatedEvent struct {
	Event     string `json:"event"`
	OrderID   uint64 `json:"order_id"`
	UserID    uint64 `json:"user_id"`
	CarID     uint64 `json:"car_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// PaymentRecordedEvent is published after a simulated payment lands.
type PaymentRecordedEvent struct {
	Event   string  `json:"event"`
	ID      uint64  `json:"payment_id"`
	OrderID uint64  `json:"order_id"`
	Amount  float64 `json:"amount"`
	Method  string  `json:"method"`
	Status  string  `json:"status"`
	PaidAt  string  `json:"paid_at"`
}

// TestDriveScheduledEvent is published after a booking is created.
type TestDriveScheduledEvent struct {
	Event         string `json:"event"`
	ID            uint64 `json:"test_drive_id"`
	UserID        uint64 `json:"user_id"`
	CarID         uint64 `json:"car_id"`
	ScheduledDate string `json:"scheduled_date"`
	Status        string `json:"status"`
}
