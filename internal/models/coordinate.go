package models

import "github.com/google/uuid"

// CellCoordinate addresses one grid cell. Identity is the
// (Category, Subcategory, Day) triple; RowIndex and ColIndex are positional
// caches used only for bounds arithmetic and must never enter comparisons.
type CellCoordinate struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
	Day         int    `json:"day"`
	RowIndex    int    `json:"row_index"`
	ColIndex    int    `json:"col_index"`
}

// Equal compares coordinates by identity, ignoring positional caches.
func (c CellCoordinate) Equal(other CellCoordinate) bool {
	return c.Category == other.Category &&
		c.Subcategory == other.Subcategory &&
		c.Day == other.Day
}

// Navigation modes
const (
	NavModeIdle    = "idle"
	NavModeFocused = "focused"
	NavModeEditing = "editing"
)

// PendingEdit is the ephemeral value bound to a cell while it is in edit
// mode. TransactionID is Nil when the edit would create a new transaction.
type PendingEdit struct {
	Coordinate    CellCoordinate
	RawValue      string
	TransactionID uuid.UUID
}

// NavigationState is the full state of the grid navigation machine. It is
// created when a month's grid first renders, mutated only through the
// navigation reducer, and discarded on unmount or month change.
type NavigationState struct {
	Mode                string           `json:"mode"`
	FocusedCoordinate   *CellCoordinate  `json:"focused_coordinate,omitempty"`
	SelectedCoordinates []CellCoordinate `json:"selected_coordinates,omitempty"`
	Pending             *PendingEdit     `json:"-"`
}

// IdleNavigationState returns the initial (and reset) state.
func IdleNavigationState() NavigationState {
	return NavigationState{Mode: NavModeIdle}
}

// IsFocused reports whether the coordinate is the focused cell, compared by
// identity, never by reference.
func (s NavigationState) IsFocused(coord CellCoordinate) bool {
	return s.FocusedCoordinate != nil && s.FocusedCoordinate.Equal(coord)
}

// IsSelected reports whether the coordinate is in the selection set.
func (s NavigationState) IsSelected(coord CellCoordinate) bool {
	for _, selected := range s.SelectedCoordinates {
		if selected.Equal(coord) {
			return true
		}
	}
	return false
}

// Navigation event kinds
const (
	NavEventMoveUp      = "move_up"
	NavEventMoveDown    = "move_down"
	NavEventMoveLeft    = "move_left"
	NavEventMoveRight   = "move_right"
	NavEventEnter       = "enter"
	NavEventEscape      = "escape"
	NavEventDelete      = "delete"
	NavEventClick       = "click"
	NavEventDoubleClick = "double_click"
)

// NavigationEvent is one input to the navigation reducer. Target is set for
// pointer events only.
type NavigationEvent struct {
	Kind   string
	Target *CellCoordinate
}

// Navigation effect kinds
const (
	NavEffectRequestDelete = "request_delete"
)

// NavigationEffect is a side request emitted by the reducer for the caller
// to act on; the reducer itself never mutates transactions.
type NavigationEffect struct {
	Kind       string
	Coordinate CellCoordinate
}
