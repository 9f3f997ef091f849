package model

import "time"

// TestDrive is a scheduled appointment to trial a car. Its lifecycle
// is independent of orders; there is no link between the two. The
// scheduled date is stored exactly as submitted; the booking window
// is enforced by the client, not the API.
type TestDrive struct {
	ID            uint64    `json:"id"`             // test_drives.id
	UserID        uint64    `json:"user_id"`        // test_drives.user_id
	CarID         uint64    `json:"car_id"`         // test_drives.car_id
	ScheduledDate time.Time `json:"scheduled_date"` // test_drives.scheduled_date
	Status        string    `json:"status"`         // test_drives.status
}

// Review is a free-form rating tied to a user+car pair. A user may
// review the same car any number of times; there is no verified
// purchase link to orders.
type Review struct {
	ID        uint64    `json:"id"`         // reviews.id
	UserID    uint64    `json:"user_id"`    // reviews.user_id
	CarID     uint64    `json:"car_id"`     // reviews.car_id
	Rating    int       `json:"rating"`     // reviews.rating, 1..5
	Comment   string    `json:"comment"`    // reviews.comment
	CreatedAt time.Time `json:"created_at"` // reviews.created_at
}
