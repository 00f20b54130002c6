package services

import (
	"errors"
	"fmt"

	"lunargrid/internal/models"
)

var (
	ErrCoordinateOutOfBounds = errors.New("coordinate outside grid bounds")
	ErrMissingEventTarget    = errors.New("pointer event without target coordinate")
)

// navigationService implements the grid interaction state machine as a pure
// reducer. It holds no state of its own; callers own the NavigationState and
// thread it through Transition.
type navigationService struct{}

// NewNavigationService creates a new navigation service
func NewNavigationService() NavigationServiceInterface {
	return &navigationService{}
}

// Reset returns the initial idle state, used on mount and on month change.
func (s *navigationService) Reset() models.NavigationState {
	return models.IdleNavigationState()
}

// Transition applies one event to the state against the given grid and
// returns the next state plus an optional effect for the caller to execute.
// Unknown events and events that do not apply in the current mode leave the
// state unchanged. A focused coordinate that falls outside the grid is an
// invariant violation and returns ErrCoordinateOutOfBounds rather than being
// silently clamped.
func (s *navigationService) Transition(state models.NavigationState, event models.NavigationEvent, grid models.Grid) (models.NavigationState, *models.NavigationEffect, error) {
	bounds := models.GridBounds{RowCount: len(grid.Rows), DayCount: len(grid.Columns)}

	switch event.Kind {
	case models.NavEventEscape:
		// Escape bails out of editing without an intermediate focused step.
		return models.IdleNavigationState(), nil, nil

	case models.NavEventClick:
		target, err := s.eventTarget(event, bounds)
		if err != nil {
			return state, nil, err
		}
		return focusedState(target), nil, nil

	case models.NavEventDoubleClick:
		coord, err := s.editTarget(state, event, bounds)
		if err != nil || coord == nil {
			return state, nil, err
		}
		return editingState(*coord), nil, nil

	case models.NavEventEnter:
		switch state.Mode {
		case models.NavModeFocused:
			if state.FocusedCoordinate == nil {
				return state, nil, nil
			}
			return editingState(*state.FocusedCoordinate), nil, nil
		case models.NavModeEditing:
			// Commit is the caller's job; the machine just drops back to focus.
			if state.Pending == nil {
				return models.IdleNavigationState(), nil, nil
			}
			return focusedState(state.Pending.Coordinate), nil, nil
		default:
			return state, nil, nil
		}

	case models.NavEventDelete:
		if state.Mode != models.NavModeFocused || state.FocusedCoordinate == nil {
			return state, nil, nil
		}
		effect := &models.NavigationEffect{
			Kind:       models.NavEffectRequestDelete,
			Coordinate: *state.FocusedCoordinate,
		}
		return state, effect, nil

	case models.NavEventMoveUp, models.NavEventMoveDown, models.NavEventMoveLeft, models.NavEventMoveRight:
		// Directional keys while editing are text input, not navigation.
		if state.Mode != models.NavModeFocused || state.FocusedCoordinate == nil {
			return state, nil, nil
		}
		if !bounds.Contains(*state.FocusedCoordinate) {
			return state, nil, fmt.Errorf("%w: focused row %d day %d",
				ErrCoordinateOutOfBounds, state.FocusedCoordinate.RowIndex, state.FocusedCoordinate.Day)
		}
		candidate := s.moved(*state.FocusedCoordinate, event.Kind, bounds, grid)
		return focusedState(candidate), nil, nil

	default:
		return state, nil, nil
	}
}

// moved computes the clamped candidate coordinate one step away, refreshing
// the identity fields from the row it lands on. Moves never wrap.
func (s *navigationService) moved(current models.CellCoordinate, kind string, bounds models.GridBounds, grid models.Grid) models.CellCoordinate {
	row, day := current.RowIndex, current.Day
	switch kind {
	case models.NavEventMoveUp:
		row--
	case models.NavEventMoveDown:
		row++
	case models.NavEventMoveLeft:
		day--
	case models.NavEventMoveRight:
		day++
	}

	row = clamp(row, 0, bounds.RowCount-1)
	day = clamp(day, 1, bounds.DayCount)
	return coordinateAt(grid, row, day)
}

func (s *navigationService) eventTarget(event models.NavigationEvent, bounds models.GridBounds) (models.CellCoordinate, error) {
	if event.Target == nil {
		return models.CellCoordinate{}, ErrMissingEventTarget
	}
	if !bounds.Contains(*event.Target) {
		return models.CellCoordinate{}, fmt.Errorf("%w: row %d day %d",
			ErrCoordinateOutOfBounds, event.Target.RowIndex, event.Target.Day)
	}
	return *event.Target, nil
}

// editTarget resolves the coordinate a double-click edits: the pointer
// target when present, otherwise the focused cell. Nil means the event does
// not apply.
func (s *navigationService) editTarget(state models.NavigationState, event models.NavigationEvent, bounds models.GridBounds) (*models.CellCoordinate, error) {
	if event.Target != nil {
		target, err := s.eventTarget(event, bounds)
		if err != nil {
			return nil, err
		}
		return &target, nil
	}
	if state.FocusedCoordinate != nil {
		return state.FocusedCoordinate, nil
	}
	return nil, nil
}

// focusedState focuses a single cell, collapsing any selection to it.
func focusedState(coord models.CellCoordinate) models.NavigationState {
	return models.NavigationState{
		Mode:                models.NavModeFocused,
		FocusedCoordinate:   &coord,
		SelectedCoordinates: []models.CellCoordinate{coord},
	}
}

func editingState(coord models.CellCoordinate) models.NavigationState {
	return models.NavigationState{
		Mode:                models.NavModeEditing,
		FocusedCoordinate:   &coord,
		SelectedCoordinates: []models.CellCoordinate{coord},
		Pending:             &models.PendingEdit{Coordinate: coord},
	}
}

func coordinateAt(grid models.Grid, rowIndex, day int) models.CellCoordinate {
	row := grid.Rows[rowIndex]
	return models.CellCoordinate{
		Category:    row.Category,
		Subcategory: row.Subcategory,
		Day:         day,
		RowIndex:    rowIndex,
		ColIndex:    day,
	}
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
