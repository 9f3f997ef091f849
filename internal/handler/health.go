// Package handler contains the HTTP handlers for the showroom API.
// Every handler catches errors at its own boundary and maps them to a
// JSON {"error": "..."} body; database error detail never reaches the
// client.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is the liveness endpoint used by load balancers.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
