package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is the health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Hello is the root greeting, kept for clients that probe the service
// by hand.
func Hello(c echo.Context) error {
	return c.String(http.StatusOK, "Canine Convention coming through!")
}
