package services

import (
	"sort"
	"time"

	"lunargrid/internal/models"

	"github.com/shopspring/decimal"
)

// matrixService implements MatrixServiceInterface. Building is a pure
// function of its inputs: identical transactions, definitions and expansion
// state always produce an identical grid.
type matrixService struct {
	aggregator AggregationServiceInterface
	metrics    MetricsRecorderInterface
}

// NewMatrixService creates a new matrix service
func NewMatrixService(aggregator AggregationServiceInterface, metrics MetricsRecorderInterface) MatrixServiceInterface {
	return &matrixService{
		aggregator: aggregator,
		metrics:    metrics,
	}
}

// BuildRows emits one category row per definition in canonical order, and
// for expanded categories one row per subcategory: defined subcategories in
// definition order, then orphans (present in transactions but absent from
// the definition) alphabetically. Category rows aggregate the full
// transaction set whether or not the category is expanded; categories with
// no transactions still emit all-zero rows.
func (s *matrixService) BuildRows(transactions []models.Transaction, categories []models.CategoryDefinition, expanded map[string]bool, year, month int) []models.MatrixRow {
	days := models.DaysInMonth(year, month)
	rows := make([]models.MatrixRow, 0, len(categories))

	for _, category := range categories {
		rows = append(rows, s.categoryRow(category.Name, transactions, days))

		if !expanded[category.Name] {
			continue
		}

		defined := category.SubcategoryNames()
		orphans := s.orphanSubcategories(category.Name, defined, transactions)
		all := make([]string, 0, len(defined)+len(orphans))
		all = append(all, defined...)
		all = append(all, orphans...)

		for i, name := range all {
			rows = append(rows, s.subcategoryRow(category.Name, name, transactions, days,
				i >= len(defined), i == len(all)-1))
		}
	}

	return rows
}

// BuildBalanceRow computes the daily balance row; Total is the running
// monthly total, the algebraic sum over every day.
func (s *matrixService) BuildBalanceRow(transactions []models.Transaction, year, month int) models.DailyBalanceRow {
	days := models.DaysInMonth(year, month)
	amounts := dense(s.aggregator.DailyBalance(transactions), days)
	return models.DailyBalanceRow{
		DailyAmounts: amounts,
		Total:        sumAmounts(amounts),
	}
}

// DayColumns returns exactly one column per calendar day of the month,
// 1-indexed, with weekday metadata.
func (s *matrixService) DayColumns(year, month int) []models.DayColumn {
	days := models.DaysInMonth(year, month)
	columns := make([]models.DayColumn, 0, days)
	for day := 1; day <= days; day++ {
		weekday := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday()
		columns = append(columns, models.DayColumn{
			Day:       day,
			Weekday:   weekday.String(),
			IsWeekend: weekday == time.Saturday || weekday == time.Sunday,
		})
	}
	return columns
}

// BuildGrid assembles the full grid payload for one month view.
func (s *matrixService) BuildGrid(transactions []models.Transaction, categories []models.CategoryDefinition, expanded map[string]bool, year, month int) models.Grid {
	start := time.Now()

	grid := models.Grid{
		Year:    year,
		Month:   month,
		Rows:    s.BuildRows(transactions, categories, expanded, year, month),
		Balance: s.BuildBalanceRow(transactions, year, month),
		Columns: s.DayColumns(year, month),
	}

	s.metrics.RecordGridBuild(time.Since(start), len(grid.Rows))
	return grid
}

func (s *matrixService) categoryRow(category string, transactions []models.Transaction, days int) models.MatrixRow {
	amounts := dense(s.aggregator.AmountsForCategory(category, transactions), days)
	return models.MatrixRow{
		Category:     category,
		IsCategory:   true,
		DailyAmounts: amounts,
		Total:        sumAmounts(amounts),
	}
}

func (s *matrixService) subcategoryRow(category, subcategory string, transactions []models.Transaction, days int, orphan, last bool) models.MatrixRow {
	amounts := dense(s.aggregator.AmountsForSubcategory(category, subcategory, transactions), days)
	return models.MatrixRow{
		Category:          category,
		Subcategory:       subcategory,
		IsOrphan:          orphan,
		IsLastSubcategory: last,
		DailyAmounts:      amounts,
		Total:             sumAmounts(amounts),
	}
}

// orphanSubcategories collects subcategory names that appear in the
// category's transactions but not in its definition, sorted for stable
// output.
func (s *matrixService) orphanSubcategories(category string, defined []string, transactions []models.Transaction) []string {
	known := make(map[string]bool, len(defined))
	for _, name := range defined {
		known[name] = true
	}

	seen := make(map[string]bool)
	var orphans []string
	for _, tx := range transactions {
		if tx.Category != category || tx.Subcategory == "" {
			continue
		}
		if known[tx.Subcategory] || seen[tx.Subcategory] {
			continue
		}
		seen[tx.Subcategory] = true
		orphans = append(orphans, tx.Subcategory)
	}

	sort.Strings(orphans)
	return orphans
}

// dense fills a sparse day map out to a full 1..days map defaulting to zero.
// The sparse input is never mutated; it may be a shared memo entry.
func dense(sparse map[int]decimal.Decimal, days int) map[int]decimal.Decimal {
	amounts := make(map[int]decimal.Decimal, days)
	for day := 1; day <= days; day++ {
		amounts[day] = sparse[day]
	}
	return amounts
}

func sumAmounts(amounts map[int]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total
}
