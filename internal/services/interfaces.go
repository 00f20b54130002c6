package services

import (
	"context"
	"time"

	"lunargrid/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AggregationServiceInterface computes per-day sums over a month's
// transactions. All amounts are decimal; results are memoized until
// Invalidate is called.
type AggregationServiceInterface interface {
	// AmountsForCategory returns a sparse day -> sum map of the magnitudes of
	// every transaction in the category, subcategorized or not.
	AmountsForCategory(category string, transactions []models.Transaction) map[int]decimal.Decimal
	// AmountsForSubcategory returns a sparse day -> sum map scoped to one
	// (category, subcategory) pair.
	AmountsForSubcategory(category, subcategory string, transactions []models.Transaction) map[int]decimal.Decimal
	// DailyBalance returns the signed daily balance across all categories:
	// income and saving add, expense subtracts.
	DailyBalance(transactions []models.Transaction) map[int]decimal.Decimal
	// SumForCell resolves a single cell value, defaulting absent days to zero.
	// The daily balance row is addressed by models.BalanceRowCategory.
	SumForCell(category, subcategory string, day int, transactions []models.Transaction) decimal.Decimal
	// Invalidate drops every memoized result. Must be called after any
	// transaction mutation.
	Invalidate()
}

// MatrixServiceInterface builds the renderable grid structure from
// transactions and category definitions.
type MatrixServiceInterface interface {
	BuildRows(transactions []models.Transaction, categories []models.CategoryDefinition, expanded map[string]bool, year, month int) []models.MatrixRow
	BuildBalanceRow(transactions []models.Transaction, year, month int) models.DailyBalanceRow
	DayColumns(year, month int) []models.DayColumn
	BuildGrid(transactions []models.Transaction, categories []models.CategoryDefinition, expanded map[string]bool, year, month int) models.Grid
}

// NavigationServiceInterface is the pure reducer for grid keyboard and
// pointer interaction. Transition never mutates its inputs and never
// performs I/O; mutations requested by the user surface as effects.
type NavigationServiceInterface interface {
	Transition(state models.NavigationState, event models.NavigationEvent, grid models.Grid) (models.NavigationState, *models.NavigationEffect, error)
	Reset() models.NavigationState
}

// CellEditServiceInterface handles inline cell saves and deletions with
// optimistic local application: the working set is patched and caches are
// invalidated before the repository call is dispatched.
type CellEditServiceInterface interface {
	HandleCellSave(ctx context.Context, req CellSaveRequest) (CellSaveResult, error)
	DeleteTransaction(ctx context.Context, req DeleteRequest) (CellSaveResult, error)
}

// GridServiceInterface orchestrates fetching, reconciliation and matrix
// building for one (user, year, month) view.
type GridServiceInterface interface {
	GetGrid(ctx context.Context, userID uuid.UUID, year, month int, expanded map[string]bool) (models.Grid, error)
}

// DeleteConfirmerInterface gates destructive deletes. Implementations decide
// whether a delete may proceed given whether the caller already confirmed it.
type DeleteConfirmerInterface interface {
	ShouldDelete(confirmed bool) bool
}

// MetricsRecorderInterface records engine metrics.
type MetricsRecorderInterface interface {
	RecordCacheHit(kind string)
	RecordCacheMiss(kind string)
	RecordGridBuild(duration time.Duration, rows int)
	RecordMutation(operation, status string)
	RecordWorkingSetPending(ops int)
}
