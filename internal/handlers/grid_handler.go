package handlers

import (
	stderrors "errors"
	"net/http"

	"lunargrid/internal/errors"
	"lunargrid/internal/services"

	"github.com/labstack/echo/v4"
)

// GridHandler handles grid view HTTP requests
type GridHandler struct {
	gridService services.GridServiceInterface
}

// NewGridHandler creates a new grid handler
func NewGridHandler(gridService services.GridServiceInterface) *GridHandler {
	return &GridHandler{gridService: gridService}
}

// GetGrid returns the full month grid for a user.
//
// GET /api/v1/grid?user_id=...&year=2025&month=6&expanded=Food,Transport
func (h *GridHandler) GetGrid(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	year, err := getIntParam(c, "year")
	if err != nil {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails(err.Error()))
	}
	month, err := getIntParam(c, "month")
	if err != nil {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails(err.Error()))
	}

	grid, err := h.gridService.GetGrid(c.Request().Context(), userID, year, month, getExpandedCategories(c))
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidMonth) || stderrors.Is(err, services.ErrInvalidYear) {
			return SendError(c, errors.GridInvalidMonth, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: grid})
}
