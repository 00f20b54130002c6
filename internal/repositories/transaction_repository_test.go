package repositories

import (
	"context"
	"testing"
	"time"

	"lunargrid/internal/database"
	"lunargrid/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   TransactionRepositoryInterface
	ctx    context.Context
	userID uuid.UUID
}

func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.ctx = context.Background()
	s.userID = uuid.New()
}

func (s *TransactionRepositorySuite) createTransaction(day int, category string, amount float64) *models.Transaction {
	return database.CreateTestTransaction(s.T(), s.db, s.userID,
		models.TransactionTypeExpense, category, "",
		amount, time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC))
}

func (s *TransactionRepositorySuite) TestCreateAndGetByID() {
	tx := &models.Transaction{
		UserID:   s.userID,
		Type:     models.TransactionTypeIncome,
		Amount:   decimal.NewFromFloat(1200.50),
		Date:     time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		Category: "Salary",
	}

	s.Require().NoError(s.repo.Create(s.ctx, tx))
	s.NotEqual(uuid.Nil, tx.ID, "BeforeCreate must assign an id")

	fetched, err := s.repo.GetByID(s.ctx, tx.ID)
	s.Require().NoError(err)
	s.Equal("Salary", fetched.Category)
	s.True(decimal.NewFromFloat(1200.50).Equal(fetched.Amount))
}

func (s *TransactionRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestGetByMonth_FiltersToMonthAndUser() {
	s.createTransaction(1, "Food", 10)
	s.createTransaction(30, "Food", 20)

	// Adjacent month, must not appear
	database.CreateTestTransaction(s.T(), s.db, s.userID,
		models.TransactionTypeExpense, "Food", "",
		99, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))

	// Another user, must not appear
	database.CreateTestTransaction(s.T(), s.db, uuid.New(),
		models.TransactionTypeExpense, "Food", "",
		99, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))

	transactions, err := s.repo.GetByMonth(s.ctx, s.userID, 2025, 6)
	s.Require().NoError(err)
	s.Len(transactions, 2)
	s.Equal(1, transactions[0].Day())
	s.Equal(30, transactions[1].Day())
}

func (s *TransactionRepositorySuite) TestUpdate() {
	tx := s.createTransaction(10, "Food", 15)

	tx.Amount = decimal.NewFromFloat(22.75)
	tx.Subcategory = "Groceries"
	s.Require().NoError(s.repo.Update(s.ctx, tx))

	fetched, err := s.repo.GetByID(s.ctx, tx.ID)
	s.Require().NoError(err)
	s.True(decimal.NewFromFloat(22.75).Equal(fetched.Amount))
	s.Equal("Groceries", fetched.Subcategory)
}

func (s *TransactionRepositorySuite) TestUpdate_NotFound() {
	tx := &models.Transaction{
		ID:       uuid.New(),
		UserID:   s.userID,
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(5),
		Date:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Category: "Food",
	}

	s.ErrorIs(s.repo.Update(s.ctx, tx), ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestDelete() {
	tx := s.createTransaction(10, "Food", 15)

	s.Require().NoError(s.repo.Delete(s.ctx, tx.ID))

	_, err := s.repo.GetByID(s.ctx, tx.ID)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestDelete_NotFound() {
	s.ErrorIs(s.repo.Delete(s.ctx, uuid.New()), ErrTransactionNotFound)
}

type CategoryRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   CategoryRepositoryInterface
	ctx    context.Context
	userID uuid.UUID
}

func TestCategoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
	s.ctx = context.Background()
	s.userID = uuid.New()
}

func (s *CategoryRepositorySuite) TestGetByUserID_OrderAndPreload() {
	second := database.CreateTestCategory(s.T(), s.db, s.userID, "Transport", models.TransactionTypeExpense, "Fuel")
	second.Position = 2
	s.Require().NoError(s.db.Save(second).Error)

	first := database.CreateTestCategory(s.T(), s.db, s.userID, "Food", models.TransactionTypeExpense, "Groceries", "Dining")
	first.Position = 1
	s.Require().NoError(s.db.Save(first).Error)

	// Another user's definitions are invisible
	database.CreateTestCategory(s.T(), s.db, uuid.New(), "Other", models.TransactionTypeExpense)

	categories, err := s.repo.GetByUserID(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(categories, 2)
	s.Equal("Food", categories[0].Name)
	s.Equal("Transport", categories[1].Name)
	s.Require().Len(categories[0].Subcategories, 2)
	s.Equal("Groceries", categories[0].Subcategories[0].Name)
}
