package services

import (
	"testing"
	"time"

	"lunargrid/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type MatrixServiceSuite struct {
	suite.Suite
	service MatrixServiceInterface
	userID  uuid.UUID
}

func TestMatrixServiceSuite(t *testing.T) {
	suite.Run(t, new(MatrixServiceSuite))
}

func (s *MatrixServiceSuite) SetupTest() {
	s.service = NewMatrixService(NewAggregationService(NewNoopMetrics()), NewNoopMetrics())
	s.userID = uuid.New()
}

func (s *MatrixServiceSuite) transaction(txType, category, subcategory string, amount float64, day int) models.Transaction {
	return models.Transaction{
		ID:          uuid.New(),
		UserID:      s.userID,
		Type:        txType,
		Amount:      decimal.NewFromFloat(amount),
		Date:        time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
		Category:    category,
		Subcategory: subcategory,
	}
}

func (s *MatrixServiceSuite) category(name, catType string, position int, subcategories ...string) models.CategoryDefinition {
	category := models.CategoryDefinition{
		ID:       uuid.New(),
		UserID:   s.userID,
		Name:     name,
		Type:     catType,
		Position: position,
	}
	for i, sub := range subcategories {
		category.Subcategories = append(category.Subcategories, models.SubcategoryDefinition{
			ID:         uuid.New(),
			CategoryID: category.ID,
			Name:       sub,
			Position:   i,
		})
	}
	return category
}

func (s *MatrixServiceSuite) TestBuildRows_OrderAndExpansion() {
	categories := []models.CategoryDefinition{
		s.category("Food", models.TransactionTypeExpense, 1, "Groceries", "Dining"),
		s.category("Transport", models.TransactionTypeExpense, 2, "Fuel"),
	}
	transactions := []models.Transaction{
		s.transaction(models.TransactionTypeExpense, "Food", "Groceries", 10, 1),
		// Subcategory not in the definition: must surface as an orphan row.
		s.transaction(models.TransactionTypeExpense, "Food", "Takeaway", 8, 2),
	}

	rows := s.service.BuildRows(transactions, categories, map[string]bool{"Food": true}, 2025, 6)

	s.Require().Len(rows, 5)
	s.Equal("Food", rows[0].Category)
	s.True(rows[0].IsCategory)

	s.Equal("Groceries", rows[1].Subcategory)
	s.Equal("Dining", rows[2].Subcategory)
	s.Equal("Takeaway", rows[3].Subcategory)
	s.True(rows[3].IsOrphan)
	s.True(rows[3].IsLastSubcategory)
	s.False(rows[1].IsLastSubcategory)
	s.False(rows[2].IsLastSubcategory)

	s.Equal("Transport", rows[4].Category)
	s.True(rows[4].IsCategory)
}

func (s *MatrixServiceSuite) TestBuildRows_DenseDayMaps() {
	categories := []models.CategoryDefinition{
		s.category("Food", models.TransactionTypeExpense, 1),
	}
	transactions := []models.Transaction{
		s.transaction(models.TransactionTypeExpense, "Food", "", 10, 15),
	}

	rows := s.service.BuildRows(transactions, categories, nil, 2025, 6)

	s.Require().Len(rows, 1)
	s.Len(rows[0].DailyAmounts, 30)
	s.True(rows[0].DailyAmounts[1].IsZero())
	s.True(decimal.NewFromInt(10).Equal(rows[0].DailyAmounts[15]))
}

func (s *MatrixServiceSuite) TestBuildRows_ZeroTransactionCategoryEmitsZeroRow() {
	categories := []models.CategoryDefinition{
		s.category("Hobbies", models.TransactionTypeExpense, 1, "Books"),
	}

	rows := s.service.BuildRows(nil, categories, map[string]bool{"Hobbies": true}, 2025, 6)

	s.Require().Len(rows, 2)
	s.True(rows[0].Total.IsZero())
	s.True(rows[1].Total.IsZero())
	s.Len(rows[0].DailyAmounts, 30)
}

func (s *MatrixServiceSuite) TestBuildRows_CollapsedCategoryStillAggregates() {
	categories := []models.CategoryDefinition{
		s.category("Food", models.TransactionTypeExpense, 1, "Groceries"),
	}
	transactions := []models.Transaction{
		s.transaction(models.TransactionTypeExpense, "Food", "Groceries", 33, 4),
	}

	rows := s.service.BuildRows(transactions, categories, nil, 2025, 6)

	s.Require().Len(rows, 1, "collapsed category emits no subcategory rows")
	s.True(decimal.NewFromInt(33).Equal(rows[0].DailyAmounts[4]))
	s.True(decimal.NewFromInt(33).Equal(rows[0].Total))
}

func (s *MatrixServiceSuite) TestBuildRows_Idempotent() {
	categories := []models.CategoryDefinition{
		s.category("Food", models.TransactionTypeExpense, 1, "Groceries", "Dining"),
	}
	transactions := []models.Transaction{
		s.transaction(models.TransactionTypeExpense, "Food", "Groceries", 10, 1),
		s.transaction(models.TransactionTypeExpense, "Food", "Dining", 20, 2),
	}
	expanded := map[string]bool{"Food": true}

	first := s.service.BuildRows(transactions, categories, expanded, 2025, 6)
	second := s.service.BuildRows(transactions, categories, expanded, 2025, 6)

	s.Equal(first, second)
}

func (s *MatrixServiceSuite) TestBuildBalanceRow_RunningTotal() {
	transactions := []models.Transaction{
		s.transaction(models.TransactionTypeIncome, "Salary", "", 1000, 1),
		s.transaction(models.TransactionTypeExpense, "Rent", "", 600, 2),
		s.transaction(models.TransactionTypeSaving, "Emergency", "", 100, 3),
	}

	balance := s.service.BuildBalanceRow(transactions, 2025, 6)

	s.Len(balance.DailyAmounts, 30)
	s.True(decimal.NewFromInt(1000).Equal(balance.DailyAmounts[1]))
	s.True(decimal.NewFromInt(-600).Equal(balance.DailyAmounts[2]))
	s.True(decimal.NewFromInt(500).Equal(balance.Total), "1000 - 600 + 100, got %s", balance.Total)
}

func (s *MatrixServiceSuite) TestDayColumns() {
	columns := s.service.DayColumns(2025, 6)

	s.Require().Len(columns, 30)
	s.Equal(1, columns[0].Day)
	s.Equal("Sunday", columns[0].Weekday)
	s.True(columns[0].IsWeekend)
	s.Equal("Monday", columns[1].Weekday)
	s.False(columns[1].IsWeekend)

	s.Run("leap february", func() {
		s.Len(s.service.DayColumns(2024, 2), 29)
	})
}

func (s *MatrixServiceSuite) TestBuildGrid_FoodScenario() {
	categories := []models.CategoryDefinition{
		s.category("Food", models.TransactionTypeExpense, 1, "Groceries"),
	}
	transactions := []models.Transaction{
		s.transaction(models.TransactionTypeExpense, "Food", "Groceries", 100, 1),
	}

	grid := s.service.BuildGrid(transactions, categories, nil, 2025, 6)

	s.Equal(2025, grid.Year)
	s.Equal(6, grid.Month)
	s.Require().Len(grid.Rows, 1)
	s.True(decimal.NewFromInt(100).Equal(grid.Rows[0].DailyAmounts[1]))
	s.True(decimal.NewFromInt(100).Equal(grid.Rows[0].Total))
	s.True(decimal.NewFromInt(-100).Equal(grid.Balance.DailyAmounts[1]))
	s.Len(grid.Columns, 30)
}
