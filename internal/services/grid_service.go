package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"lunargrid/internal/models"
	"lunargrid/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("year outside supported range")
)

// gridService implements GridServiceInterface: it fetches the month's
// transactions and the user's category definitions concurrently, reconciles
// the working set with the authoritative result, and builds the grid from
// the reconciled snapshot.
type gridService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	workingSet      *WorkingSet
	aggregator      AggregationServiceInterface
	matrix          MatrixServiceInterface
}

// NewGridService creates a new grid service
func NewGridService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	workingSet *WorkingSet,
	aggregator AggregationServiceInterface,
	matrix MatrixServiceInterface,
) GridServiceInterface {
	return &gridService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		workingSet:      workingSet,
		aggregator:      aggregator,
		matrix:          matrix,
	}
}

func (s *gridService) GetGrid(ctx context.Context, userID uuid.UUID, year, month int, expanded map[string]bool) (models.Grid, error) {
	if err := validateMonth(year, month); err != nil {
		return models.Grid{}, err
	}

	var (
		transactions []models.Transaction
		categories   []models.CategoryDefinition
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		transactions, err = s.transactionRepo.GetByMonth(groupCtx, userID, year, month)
		return err
	})
	group.Go(func() error {
		var err error
		categories, err = s.categoryRepo.GetByUserID(groupCtx, userID)
		return err
	})
	if err := group.Wait(); err != nil {
		return models.Grid{}, fmt.Errorf("grid fetch failed: %w", err)
	}

	// The refetch may change transaction contents without changing the
	// list's length or first id, which is all the memo key fingerprints.
	// Installing a new base therefore always invalidates the aggregation
	// caches before the grid is rebuilt.
	s.workingSet.Reconcile(userID, year, month, transactions)
	s.aggregator.Invalidate()
	snapshot := s.workingSet.Snapshot(userID, year, month)

	grid := s.matrix.BuildGrid(snapshot, categories, expanded, year, month)
	slog.Debug("grid built",
		"user_id", userID, "year", year, "month", month,
		"transactions", len(snapshot), "rows", len(grid.Rows))
	return grid, nil
}

func validateMonth(year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}
	if year < 1970 || year > 2200 {
		return fmt.Errorf("%w: got %d", ErrInvalidYear, year)
	}
	return nil
}
