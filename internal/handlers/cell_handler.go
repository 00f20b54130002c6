package handlers

import (
	stderrors "errors"
	"net/http"

	"lunargrid/internal/errors"
	"lunargrid/internal/repositories"
	"lunargrid/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CellHandler handles inline cell mutations
type CellHandler struct {
	cellEditService services.CellEditServiceInterface
}

// NewCellHandler creates a new cell handler
func NewCellHandler(cellEditService services.CellEditServiceInterface) *CellHandler {
	return &CellHandler{cellEditService: cellEditService}
}

// SaveCellRequest is the inbound payload for an inline cell save.
// TransactionID is present when the cell already held a transaction.
type SaveCellRequest struct {
	UserID        string `json:"user_id" validate:"required,uuid"`
	Year          int    `json:"year" validate:"required"`
	Month         int    `json:"month" validate:"required,min=1,max=12"`
	Day           int    `json:"day" validate:"required,min=1,max=31"`
	Category      string `json:"category" validate:"required"`
	Subcategory   string `json:"subcategory"`
	Value         string `json:"value"`
	TransactionID string `json:"transaction_id" validate:"omitempty,uuid"`
	Description   string `json:"description"`
	Confirmed     bool   `json:"confirmed"`
}

// SaveCell saves one grid cell: create, update, delete or no-op depending on
// the value and whether the cell already held a transaction.
//
// PUT /api/v1/grid/cell
func (h *CellHandler) SaveCell(c echo.Context) error {
	var req SaveCellRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("user_id is not a valid UUID"))
	}

	transactionID := uuid.Nil
	if req.TransactionID != "" {
		transactionID, err = uuid.Parse(req.TransactionID)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("transaction_id is not a valid UUID"))
		}
	}

	result, err := h.cellEditService.HandleCellSave(c.Request().Context(), services.CellSaveRequest{
		UserID:        userID,
		Year:          req.Year,
		Month:         req.Month,
		Day:           req.Day,
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		RawValue:      req.Value,
		TransactionID: transactionID,
		Description:   req.Description,
		Confirmed:     req.Confirmed,
	})
	if err != nil {
		return h.sendCellError(c, result, err)
	}

	if result.Outcome == services.OutcomeConfirmationRequired {
		return SendError(c, errors.MutationNotConfirmed)
	}
	status := http.StatusOK
	if result.Outcome == services.OutcomeCreated {
		status = http.StatusCreated
	}
	return c.JSON(status, SuccessResponse{Data: result})
}

// DeleteTransaction removes one transaction.
//
// DELETE /api/v1/transactions/:id?user_id=...&year=2025&month=6&confirmed=true
func (h *CellHandler) DeleteTransaction(c echo.Context) error {
	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

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

	result, err := h.cellEditService.DeleteTransaction(c.Request().Context(), services.DeleteRequest{
		UserID:        userID,
		Year:          year,
		Month:         month,
		TransactionID: transactionID,
		Confirmed:     c.QueryParam("confirmed") == "true",
	})
	if err != nil {
		return h.sendCellError(c, result, err)
	}

	if result.Outcome == services.OutcomeConfirmationRequired {
		return SendError(c, errors.MutationNotConfirmed)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: result})
}

// sendCellError maps cell edit service errors onto the error code registry.
// A dispatch failure after the optimistic patch maps to the mutation code of
// the attempted operation.
func (h *CellHandler) sendCellError(c echo.Context, result services.CellSaveResult, err error) error {
	switch {
	case stderrors.Is(err, services.ErrValueNotNumeric), stderrors.Is(err, services.ErrValueNegative):
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrInvalidMonth), stderrors.Is(err, services.ErrInvalidYear):
		return SendError(c, errors.GridInvalidMonth, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrDayOutOfRange):
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrUnknownCategory):
		return SendError(c, errors.GridCategoryNotFound, errors.WithDetails(err.Error()))
	case stderrors.Is(err, repositories.ErrTransactionNotFound):
		return SendError(c, errors.MutationTransactionNotFound)
	}

	switch result.Outcome {
	case services.OutcomeCreated:
		return SendError(c, errors.MutationCreateFailed, errors.WithDetails(err.Error()))
	case services.OutcomeUpdated:
		return SendError(c, errors.MutationUpdateFailed, errors.WithDetails(err.Error()))
	case services.OutcomeDeleted:
		return SendError(c, errors.MutationDeleteFailed, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}
