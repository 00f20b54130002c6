package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"lunargrid/internal/models"
	"lunargrid/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrValueNotNumeric = errors.New("cell value is not numeric")
	ErrValueNegative   = errors.New("cell value must not be negative")
	ErrDayOutOfRange   = errors.New("day outside the month")
	ErrUnknownCategory = errors.New("unknown category")
)

// Cell save outcomes
const (
	OutcomeNoop                 = "noop"
	OutcomeCreated              = "created"
	OutcomeUpdated              = "updated"
	OutcomeDeleted              = "deleted"
	OutcomeConfirmationRequired = "confirmation_required"
)

// CellSaveRequest is one inline cell edit. TransactionID is Nil when the
// cell held no transaction before the edit.
type CellSaveRequest struct {
	UserID        uuid.UUID
	Year          int
	Month         int
	Day           int
	Category      string
	Subcategory   string
	RawValue      string
	TransactionID uuid.UUID
	Description   string
	Confirmed     bool
}

// DeleteRequest is a direct deletion of a known transaction.
type DeleteRequest struct {
	UserID        uuid.UUID
	Year          int
	Month         int
	TransactionID uuid.UUID
	Confirmed     bool
}

// CellSaveResult reports what the save did. On a dispatch failure the
// accompanying error is non-nil while Outcome still reflects the optimistic
// local application, which stays visible until the next reconcile.
type CellSaveResult struct {
	Outcome     string              `json:"outcome"`
	Transaction *models.Transaction `json:"transaction,omitempty"`
}

// deleteConfirmer gates deletes on a config switch: when confirmations are
// enabled, only requests the caller already confirmed may proceed.
type deleteConfirmer struct {
	confirmDeletes bool
}

// NewDeleteConfirmer creates the config-driven delete confirmer
func NewDeleteConfirmer(confirmDeletes bool) DeleteConfirmerInterface {
	return &deleteConfirmer{confirmDeletes: confirmDeletes}
}

func (c *deleteConfirmer) ShouldDelete(confirmed bool) bool {
	return confirmed || !c.confirmDeletes
}

// cellEditService implements CellEditServiceInterface. Mutations are
// applied to the working set and the aggregation caches are invalidated
// BEFORE the repository call is dispatched, so readers see the change
// immediately; a failed dispatch surfaces as an error with the patch
// retained until the next authoritative fetch supersedes it.
//
// Saves to the same cell are serialized through a per-cell mutex; edits to
// different cells proceed independently.
type cellEditService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	workingSet      *WorkingSet
	aggregator      AggregationServiceInterface
	confirmer       DeleteConfirmerInterface
	metrics         MetricsRecorderInterface

	mu        sync.Mutex
	cellLocks map[string]*cellLock
}

// cellLock is a per-cell mutex with a holder-plus-waiter count, so the lock
// table stays proportional to in-flight edits rather than growing with
// every cell ever touched.
type cellLock struct {
	sync.Mutex
	refs int
}

// NewCellEditService creates a new cell edit service
func NewCellEditService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	workingSet *WorkingSet,
	aggregator AggregationServiceInterface,
	confirmer DeleteConfirmerInterface,
	metrics MetricsRecorderInterface,
) CellEditServiceInterface {
	return &cellEditService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		workingSet:      workingSet,
		aggregator:      aggregator,
		confirmer:       confirmer,
		metrics:         metrics,
		cellLocks:       make(map[string]*cellLock),
	}
}

func (s *cellEditService) HandleCellSave(ctx context.Context, req CellSaveRequest) (CellSaveResult, error) {
	if err := validateMonth(req.Year, req.Month); err != nil {
		return CellSaveResult{}, err
	}
	if req.Day < 1 || req.Day > models.DaysInMonth(req.Year, req.Month) {
		return CellSaveResult{}, fmt.Errorf("%w: day %d of %d-%02d", ErrDayOutOfRange, req.Day, req.Year, req.Month)
	}

	key := cellKey(req.UserID, req.Year, req.Month, req.Category, req.Subcategory, req.Day)
	lock := s.lockCell(key)
	defer s.releaseCell(key, lock)

	value, err := parseCellValue(req.RawValue)
	if err != nil {
		return CellSaveResult{}, err
	}

	switch {
	case value.IsZero() && req.TransactionID == uuid.Nil:
		// Clearing an already-empty cell changes nothing.
		return CellSaveResult{Outcome: OutcomeNoop}, nil
	case value.IsZero():
		return s.deleteByID(ctx, req.UserID, req.Year, req.Month, req.TransactionID, req.Confirmed)
	case req.TransactionID != uuid.Nil:
		return s.update(ctx, req, value)
	default:
		return s.create(ctx, req, value)
	}
}

// DeleteTransaction removes a transaction by id, locating its cell through
// the working set (or the repository if the view was never fetched) so the
// delete serializes with concurrent saves to the same cell.
func (s *cellEditService) DeleteTransaction(ctx context.Context, req DeleteRequest) (CellSaveResult, error) {
	if err := validateMonth(req.Year, req.Month); err != nil {
		return CellSaveResult{}, err
	}

	existing, err := s.resolveTransaction(ctx, req.UserID, req.Year, req.Month, req.TransactionID)
	if err != nil {
		return CellSaveResult{}, err
	}

	key := cellKey(req.UserID, req.Year, req.Month, existing.Category, existing.Subcategory, existing.Day())
	lock := s.lockCell(key)
	defer s.releaseCell(key, lock)

	return s.deleteByID(ctx, req.UserID, req.Year, req.Month, req.TransactionID, req.Confirmed)
}

func (s *cellEditService) create(ctx context.Context, req CellSaveRequest, value decimal.Decimal) (CellSaveResult, error) {
	categoryType, err := s.categoryType(ctx, req.UserID, req.Category)
	if err != nil {
		return CellSaveResult{}, err
	}

	now := time.Now().UTC()
	tx := models.Transaction{
		ID:          uuid.New(),
		UserID:      req.UserID,
		Type:        categoryType,
		Amount:      value,
		Date:        time.Date(req.Year, time.Month(req.Month), req.Day, 0, 0, 0, 0, time.UTC),
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.workingSet.ApplyCreate(tx)
	s.aggregator.Invalidate()

	result := CellSaveResult{Outcome: OutcomeCreated, Transaction: &tx}
	if err := s.transactionRepo.Create(ctx, &tx); err != nil {
		s.metrics.RecordMutation("create", "failure")
		slog.Error("transaction create dispatch failed",
			"transaction_id", tx.ID, "category", tx.Category, "error", err)
		return result, fmt.Errorf("transaction create failed: %w", err)
	}

	s.metrics.RecordMutation("create", "success")
	return result, nil
}

func (s *cellEditService) update(ctx context.Context, req CellSaveRequest, value decimal.Decimal) (CellSaveResult, error) {
	existing, err := s.resolveTransaction(ctx, req.UserID, req.Year, req.Month, req.TransactionID)
	if err != nil {
		return CellSaveResult{}, err
	}

	updated := *existing
	updated.Amount = value
	if req.Description != "" {
		updated.Description = req.Description
	}
	updated.UpdatedAt = time.Now().UTC()

	s.workingSet.ApplyUpdate(updated)
	s.aggregator.Invalidate()

	result := CellSaveResult{Outcome: OutcomeUpdated, Transaction: &updated}
	if err := s.transactionRepo.Update(ctx, &updated); err != nil {
		s.metrics.RecordMutation("update", "failure")
		slog.Error("transaction update dispatch failed",
			"transaction_id", updated.ID, "error", err)
		return result, fmt.Errorf("transaction update failed: %w", err)
	}

	s.metrics.RecordMutation("update", "success")
	return result, nil
}

func (s *cellEditService) deleteByID(ctx context.Context, userID uuid.UUID, year, month int, id uuid.UUID, confirmed bool) (CellSaveResult, error) {
	if !s.confirmer.ShouldDelete(confirmed) {
		return CellSaveResult{Outcome: OutcomeConfirmationRequired}, nil
	}

	s.workingSet.ApplyDelete(userID, year, month, id)
	s.aggregator.Invalidate()

	result := CellSaveResult{Outcome: OutcomeDeleted}
	if err := s.transactionRepo.Delete(ctx, id); err != nil {
		s.metrics.RecordMutation("delete", "failure")
		slog.Error("transaction delete dispatch failed", "transaction_id", id, "error", err)
		return result, fmt.Errorf("transaction delete failed: %w", err)
	}

	s.metrics.RecordMutation("delete", "success")
	return result, nil
}

// resolveTransaction finds the transaction as currently visible in the
// working set, falling back to the repository when the view has never been
// fetched in this process.
func (s *cellEditService) resolveTransaction(ctx context.Context, userID uuid.UUID, year, month int, id uuid.UUID) (*models.Transaction, error) {
	if tx, ok := s.workingSet.Find(userID, year, month, id); ok {
		return tx, nil
	}
	tx, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *cellEditService) categoryType(ctx context.Context, userID uuid.UUID, category string) (string, error) {
	categories, err := s.categoryRepo.GetByUserID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve category type: %w", err)
	}
	for _, definition := range categories {
		if definition.Name == category {
			return definition.Type, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownCategory, category)
}

func (s *cellEditService) lockCell(key string) *cellLock {
	s.mu.Lock()
	lock, ok := s.cellLocks[key]
	if !ok {
		lock = &cellLock{}
		s.cellLocks[key] = lock
	}
	lock.refs++
	s.mu.Unlock()

	lock.Lock()
	return lock
}

// releaseCell unlocks the cell and drops the table entry once no holder or
// waiter remains.
func (s *cellEditService) releaseCell(key string, lock *cellLock) {
	lock.Unlock()

	s.mu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(s.cellLocks, key)
	}
	s.mu.Unlock()
}

func cellKey(userID uuid.UUID, year, month int, category, subcategory string, day int) string {
	return fmt.Sprintf("%s|%d-%02d-%02d|%s|%s", userID, year, month, day, category, subcategory)
}

// parseCellValue normalizes and parses raw cell input. Empty input means
// zero; a decimal comma is accepted; anything non-numeric or negative is
// rejected, never coerced.
func parseCellValue(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, nil
	}

	normalized := strings.ReplaceAll(trimmed, ",", ".")
	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrValueNotNumeric, raw)
	}
	if value.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrValueNegative, value)
	}
	return value, nil
}
