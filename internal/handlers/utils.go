package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// getUserID reads the user_id query parameter. Authentication is handled
// upstream; this API trusts the identity it is handed.
func getUserID(c echo.Context) (uuid.UUID, error) {
	raw := c.QueryParam("user_id")
	if raw == "" {
		return uuid.Nil, fmt.Errorf("user_id is required")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("user_id is not a valid UUID")
	}
	return userID, nil
}

// getIntParam parses a required integer query parameter
func getIntParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return value, nil
}

// getExpandedCategories parses the comma-separated expanded query parameter
// into the expansion set the matrix builder expects.
func getExpandedCategories(c echo.Context) map[string]bool {
	raw := c.QueryParam("expanded")
	if raw == "" {
		return nil
	}

	expanded := make(map[string]bool)
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			expanded[name] = true
		}
	}
	return expanded
}
