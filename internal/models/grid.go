package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceRowCategory is the distinguished category key of the daily balance
// row. It never collides with user categories, which cannot be empty and are
// validated upstream.
const BalanceRowCategory = "__daily_balance__"

// MatrixRow is one line of the grid: either a category row (aggregate of all
// its subcategory rows, expandable) or a subcategory row (leaf).
//
// Invariant: a category row's DailyAmounts[d] equals the sum over all of its
// subcategory rows' DailyAmounts[d] for every day d, whether or not those
// rows are currently emitted (collapsed categories still aggregate the full
// transaction set).
type MatrixRow struct {
	Category    string                  `json:"category"`
	Subcategory string                  `json:"subcategory,omitempty"`
	IsCategory  bool                    `json:"is_category"`
	// IsOrphan marks a subcategory present in transactions but missing from
	// the category definition; the UI offers a cleanup action for these.
	IsOrphan bool `json:"is_orphan,omitempty"`
	// IsLastSubcategory is true on the final subcategory row emitted for a
	// category group; the add-subcategory control renders only there.
	IsLastSubcategory bool                    `json:"is_last_subcategory,omitempty"`
	DailyAmounts      map[int]decimal.Decimal `json:"daily_amounts"`
	Total             decimal.Decimal         `json:"total"`
}

// DailyBalanceRow is the distinguished bottom row: the algebraic daily
// balance across all categories (income and saving add, expense subtracts).
type DailyBalanceRow struct {
	DailyAmounts map[int]decimal.Decimal `json:"daily_amounts"`
	Total        decimal.Decimal         `json:"total"`
}

// DayColumn is the column metadata for one day of the selected month.
type DayColumn struct {
	Day       int    `json:"day"`
	Weekday   string `json:"weekday"`
	IsWeekend bool   `json:"is_weekend"`
}

// Grid is the full outbound payload for one (user, year, month) view.
type Grid struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Rows    []MatrixRow     `json:"rows"`
	Balance DailyBalanceRow `json:"balance"`
	Columns []DayColumn     `json:"columns"`
}

// GridBounds describes the navigable extent of a grid.
type GridBounds struct {
	RowCount int
	DayCount int
}

// Contains reports whether the coordinate's positional indexes fall inside
// the bounds.
func (b GridBounds) Contains(coord CellCoordinate) bool {
	return coord.RowIndex >= 0 && coord.RowIndex < b.RowCount &&
		coord.Day >= 1 && coord.Day <= b.DayCount
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
