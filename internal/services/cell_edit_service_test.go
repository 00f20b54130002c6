package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"lunargrid/internal/models"
	"lunargrid/internal/repositories"
	"lunargrid/internal/repositories/repository_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CellEditServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	categoryRepo    *repository_mocks.MockCategoryRepositoryInterface
	workingSet      *WorkingSet
	aggregator      AggregationServiceInterface
	service         CellEditServiceInterface
	ctx             context.Context
	userID          uuid.UUID
}

func TestCellEditServiceSuite(t *testing.T) {
	suite.Run(t, new(CellEditServiceSuite))
}

func (s *CellEditServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.workingSet = NewWorkingSet(NewNoopMetrics())
	s.aggregator = NewAggregationService(NewNoopMetrics())
	s.service = NewCellEditService(
		s.transactionRepo, s.categoryRepo, s.workingSet, s.aggregator,
		NewDeleteConfirmer(true), NewNoopMetrics())
	s.ctx = context.Background()
	s.userID = uuid.New()
}

func (s *CellEditServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CellEditServiceSuite) foodDefinitions() []models.CategoryDefinition {
	return []models.CategoryDefinition{
		{
			ID:     uuid.New(),
			UserID: s.userID,
			Name:   "Food",
			Type:   models.TransactionTypeExpense,
			Subcategories: []models.SubcategoryDefinition{
				{ID: uuid.New(), Name: "Groceries"},
			},
		},
	}
}

func (s *CellEditServiceSuite) saveRequest(raw string) CellSaveRequest {
	return CellSaveRequest{
		UserID:      s.userID,
		Year:        2025,
		Month:       6,
		Day:         1,
		Category:    "Food",
		Subcategory: "Groceries",
		RawValue:    raw,
	}
}

func (s *CellEditServiceSuite) seedTransaction(amount float64) models.Transaction {
	tx := models.Transaction{
		ID:          uuid.New(),
		UserID:      s.userID,
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.NewFromFloat(amount),
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Category:    "Food",
		Subcategory: "Groceries",
	}
	s.workingSet.Reconcile(s.userID, 2025, 6, []models.Transaction{tx})
	return tx
}

func (s *CellEditServiceSuite) cellSum() decimal.Decimal {
	return s.aggregator.SumForCell("Food", "Groceries", 1,
		s.workingSet.Snapshot(s.userID, 2025, 6))
}

func (s *CellEditServiceSuite) TestHandleCellSave_EmptyCellClearedIsNoop() {
	result, err := s.service.HandleCellSave(s.ctx, s.saveRequest(""))
	s.Require().NoError(err)
	s.Equal(OutcomeNoop, result.Outcome)
}

func (s *CellEditServiceSuite) TestHandleCellSave_RejectsBadInput() {
	tests := []struct {
		name    string
		mutate  func(*CellSaveRequest)
		wantErr error
	}{
		{"non-numeric value", func(r *CellSaveRequest) { r.RawValue = "abc" }, ErrValueNotNumeric},
		{"negative value", func(r *CellSaveRequest) { r.RawValue = "-5" }, ErrValueNegative},
		{"month out of range", func(r *CellSaveRequest) { r.Month = 13 }, ErrInvalidMonth},
		{"day past month end", func(r *CellSaveRequest) { r.Day = 31 }, ErrDayOutOfRange},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := s.saveRequest("10")
			tt.mutate(&req)
			_, err := s.service.HandleCellSave(s.ctx, req)
			s.ErrorIs(err, tt.wantErr)
		})
	}
}

func (s *CellEditServiceSuite) TestHandleCellSave_Create() {
	s.workingSet.Reconcile(s.userID, 2025, 6, nil)
	s.categoryRepo.EXPECT().GetByUserID(gomock.Any(), s.userID).Return(s.foodDefinitions(), nil)

	// The optimistic patch must already be readable when the repository
	// call is dispatched.
	s.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *models.Transaction) error {
			s.True(decimal.NewFromInt(100).Equal(s.cellSum()))
			s.Equal(models.TransactionTypeExpense, tx.Type)
			return nil
		})

	req := s.saveRequest("100")
	req.Description = gofakeit.Sentence(3)
	result, err := s.service.HandleCellSave(s.ctx, req)

	s.Require().NoError(err)
	s.Equal(OutcomeCreated, result.Outcome)
	s.Require().NotNil(result.Transaction)
	s.Equal(models.TransactionTypeExpense, result.Transaction.Type)
	s.NotEqual(uuid.Nil, result.Transaction.ID)
	s.True(decimal.NewFromInt(100).Equal(s.cellSum()))
}

func (s *CellEditServiceSuite) TestHandleCellSave_Create_DecimalComma() {
	s.categoryRepo.EXPECT().GetByUserID(gomock.Any(), s.userID).Return(s.foodDefinitions(), nil)
	s.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.service.HandleCellSave(s.ctx, s.saveRequest("12,50"))

	s.Require().NoError(err)
	s.True(decimal.NewFromFloat(12.50).Equal(result.Transaction.Amount))
}

func (s *CellEditServiceSuite) TestHandleCellSave_Create_UnknownCategory() {
	s.categoryRepo.EXPECT().GetByUserID(gomock.Any(), s.userID).Return(nil, nil)

	req := s.saveRequest("100")
	req.Category = "Nonsense"
	_, err := s.service.HandleCellSave(s.ctx, req)

	s.ErrorIs(err, ErrUnknownCategory)
}

func (s *CellEditServiceSuite) TestHandleCellSave_Create_DispatchFailureRetainsPatch() {
	s.workingSet.Reconcile(s.userID, 2025, 6, nil)
	s.categoryRepo.EXPECT().GetByUserID(gomock.Any(), s.userID).Return(s.foodDefinitions(), nil)
	s.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	result, err := s.service.HandleCellSave(s.ctx, s.saveRequest("100"))

	s.Require().Error(err)
	s.Equal(OutcomeCreated, result.Outcome)
	s.True(decimal.NewFromInt(100).Equal(s.cellSum()),
		"failed dispatch keeps the optimistic value until the next reconcile")
}

func (s *CellEditServiceSuite) TestHandleCellSave_Update() {
	existing := s.seedTransaction(40)
	s.transactionRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	req := s.saveRequest("250")
	req.TransactionID = existing.ID
	result, err := s.service.HandleCellSave(s.ctx, req)

	s.Require().NoError(err)
	s.Equal(OutcomeUpdated, result.Outcome)
	s.Equal(existing.ID, result.Transaction.ID)
	s.True(decimal.NewFromInt(250).Equal(s.cellSum()))
}

func (s *CellEditServiceSuite) TestHandleCellSave_Update_NotFound() {
	missing := uuid.New()
	s.transactionRepo.EXPECT().GetByID(gomock.Any(), missing).
		Return(nil, repositories.ErrTransactionNotFound)

	req := s.saveRequest("250")
	req.TransactionID = missing
	_, err := s.service.HandleCellSave(s.ctx, req)

	s.ErrorIs(err, repositories.ErrTransactionNotFound)
}

func (s *CellEditServiceSuite) TestHandleCellSave_EmptyValueWithID_RequiresConfirmation() {
	existing := s.seedTransaction(40)

	req := s.saveRequest("")
	req.TransactionID = existing.ID
	result, err := s.service.HandleCellSave(s.ctx, req)

	s.Require().NoError(err)
	s.Equal(OutcomeConfirmationRequired, result.Outcome)
	s.True(decimal.NewFromInt(40).Equal(s.cellSum()), "unconfirmed delete changes nothing")
}

func (s *CellEditServiceSuite) TestHandleCellSave_EmptyValueWithID_ConfirmedDeletes() {
	existing := s.seedTransaction(40)
	s.transactionRepo.EXPECT().Delete(gomock.Any(), existing.ID).Return(nil)

	req := s.saveRequest("")
	req.TransactionID = existing.ID
	req.Confirmed = true
	result, err := s.service.HandleCellSave(s.ctx, req)

	s.Require().NoError(err)
	s.Equal(OutcomeDeleted, result.Outcome)
	s.True(s.cellSum().IsZero(), "deleted cell aggregates to zero")
}

func (s *CellEditServiceSuite) TestHandleCellSave_DeleteWithoutGateWhenDisabled() {
	service := NewCellEditService(
		s.transactionRepo, s.categoryRepo, s.workingSet, s.aggregator,
		NewDeleteConfirmer(false), NewNoopMetrics())
	existing := s.seedTransaction(40)
	s.transactionRepo.EXPECT().Delete(gomock.Any(), existing.ID).Return(nil)

	req := s.saveRequest("")
	req.TransactionID = existing.ID
	result, err := service.HandleCellSave(s.ctx, req)

	s.Require().NoError(err)
	s.Equal(OutcomeDeleted, result.Outcome)
}

func (s *CellEditServiceSuite) TestDeleteTransaction() {
	existing := s.seedTransaction(40)
	s.transactionRepo.EXPECT().Delete(gomock.Any(), existing.ID).Return(nil)

	result, err := s.service.DeleteTransaction(s.ctx, DeleteRequest{
		UserID:        s.userID,
		Year:          2025,
		Month:         6,
		TransactionID: existing.ID,
		Confirmed:     true,
	})

	s.Require().NoError(err)
	s.Equal(OutcomeDeleted, result.Outcome)
	s.True(s.cellSum().IsZero())
}

func (s *CellEditServiceSuite) TestDeleteTransaction_NotFound() {
	missing := uuid.New()
	s.transactionRepo.EXPECT().GetByID(gomock.Any(), missing).
		Return(nil, repositories.ErrTransactionNotFound)

	_, err := s.service.DeleteTransaction(s.ctx, DeleteRequest{
		UserID:        s.userID,
		Year:          2025,
		Month:         6,
		TransactionID: missing,
		Confirmed:     true,
	})

	s.ErrorIs(err, repositories.ErrTransactionNotFound)
}

func (s *CellEditServiceSuite) TestHandleCellSave_ReleasesCellLock() {
	impl := s.service.(*cellEditService)

	s.categoryRepo.EXPECT().GetByUserID(gomock.Any(), s.userID).Return(s.foodDefinitions(), nil)
	s.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *models.Transaction) error {
			// Held for the duration of the save only.
			impl.mu.Lock()
			defer impl.mu.Unlock()
			s.Len(impl.cellLocks, 1)
			return nil
		})

	_, err := s.service.HandleCellSave(s.ctx, s.saveRequest("100"))
	s.Require().NoError(err)

	impl.mu.Lock()
	defer impl.mu.Unlock()
	s.Empty(impl.cellLocks)
}

func (s *CellEditServiceSuite) TestParseCellValue() {
	tests := []struct {
		name  string
		raw   string
		want  string
		isErr bool
	}{
		{"plain integer", "100", "100", false},
		{"decimal point", "12.5", "12.5", false},
		{"decimal comma", "12,5", "12.5", false},
		{"whitespace trimmed", "  7 ", "7", false},
		{"empty means zero", "", "0", false},
		{"explicit zero", "0", "0", false},
		{"garbage", "12abc", "", true},
		{"negative", "-3", "", true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			value, err := parseCellValue(tt.raw)
			if tt.isErr {
				s.Error(err)
				return
			}
			s.Require().NoError(err)
			want, parseErr := decimal.NewFromString(tt.want)
			s.Require().NoError(parseErr)
			s.True(want.Equal(value))
		})
	}
}
