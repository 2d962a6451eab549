// Package handler holds the echo handlers of the public API.
package handler

import (
	"strconv"

	"adreach/internal/delivery/api/middleware"
	"adreach/internal/delivery/api/response"
	"adreach/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parseID parses a uuid path parameter.
func parseID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))

	return id, err == nil
}

// pageQuery reads ?page and ?limit. Missing or malformed values are left at zero
// so the usecase applies its defaults.
func pageQuery(c echo.Context) usecase.Page {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return usecase.Page{Page: page, Limit: limit}
}

// daysQuery reads ?days, falling back to def.
func daysQuery(c echo.Context, def int) (int, bool) {
	raw := c.QueryParam("days")
	if raw == "" {
		return def, true
	}
	days, err := strconv.Atoi(raw)

	return days, err == nil
}

func invalidToken(c echo.Context) error {
	return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
}

func invalidID(c echo.Context, what string) error {
	return response.BadRequest(c, "INVALID_ID", "Invalid "+what+" ID")
}

// currentUser returns the authenticated user id.
func currentUser(c echo.Context) (uuid.UUID, bool) {
	return middleware.GetUserID(c)
}
