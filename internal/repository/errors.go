// Package repository defines error values that are reused across
// multiple repositories. These sentinels allow handlers to translate
// database outcomes into HTTP responses without inspecting SQL errors:
// ErrNotFound covers ids that do not resolve to a row, ErrConflict
// covers deletes blocked by dependent records (e.g. removing a dealer
// that still has cars in the catalog).
package repository

import "errors"

// ErrNotFound is returned when an entity id does not resolve to an
// existing row. Handlers translate it into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a delete cannot proceed because other
// rows still reference the entity. Handlers translate it into HTTP 400
// with an explanatory message.
var ErrConflict = errors.New("conflict")

// ErrStatusNotConfigured is returned when the 'pending' row is missing
// from the order_statuses table. Orders cannot be created without it,
// so this is a configuration error and maps to HTTP 500.
var ErrStatusNotConfigured = errors.New("order status not configured")
