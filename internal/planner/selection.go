package planner

import (
	"time"

	"github.com/username/vacation-planner/pkg/dateutil"
)

// SelectionState is one of Empty, Pending or Complete
type SelectionState interface {
	selectionState()
}

// Empty means no date has been picked
type Empty struct{}

// Pending holds the first picked date. Hover is an optional preview end
// used only for display; the zero time means no hover.
type Pending struct {
	Start time.Time
	Hover time.Time
}

// Complete holds both endpoints, already normalized
type Complete struct {
	Range DateRange
}

func (Empty) selectionState()    {}
func (Pending) selectionState()  {}
func (Complete) selectionState() {}

// HasHover reports whether a preview end is set
func (p Pending) HasHover() bool {
	return !p.Hover.IsZero()
}

// Selection is the two-click range picker
type Selection struct {
	state SelectionState
}

// State returns the current state
func (s *Selection) State() SelectionState {
	if s.state == nil {
		return Empty{}
	}
	return s.state
}

// PickDate advances the machine with a clicked date.
// A pick after Complete starts a new selection instead of extending the old one.
func (s *Selection) PickDate(date time.Time) SelectionState {
	date = dateutil.StartOfDay(date)

	switch st := s.State().(type) {
	case Pending:
		s.state = Complete{Range: NewDateRange(st.Start, date)}
	default:
		s.state = Pending{Start: date}
	}

	return s.state
}

// Hover sets the preview end while Pending. Returns false when ignored.
func (s *Selection) Hover(date time.Time) bool {
	st, ok := s.State().(Pending)
	if !ok {
		return false
	}

	st.Hover = dateutil.StartOfDay(date)
	s.state = st
	return true
}

// Cancel drops whatever is selected
func (s *Selection) Cancel() {
	s.state = Empty{}
}

// Preview returns the range to show live metrics for: Complete's range, or
// the start-to-hover range while Pending with a hover set.
func (s *Selection) Preview() (DateRange, bool) {
	switch st := s.State().(type) {
	case Pending:
		if !st.HasHover() {
			return DateRange{}, false
		}
		return NewDateRange(st.Start, st.Hover), true
	case Complete:
		return st.Range, true
	default:
		return DateRange{}, false
	}
}

// Highlights reports whether the date is part of the visible selection and
// whether it is one of the picked endpoints.
func (s *Selection) Highlights(date time.Time) (selected, endpoint bool) {
	date = dateutil.StartOfDay(date)

	switch st := s.State().(type) {
	case Pending:
		endpoint = date.Equal(st.Start)
		if !st.HasHover() {
			return endpoint, endpoint
		}
		return NewDateRange(st.Start, st.Hover).Contains(date), endpoint
	case Complete:
		endpoint = date.Equal(st.Range.Start) || date.Equal(st.Range.End)
		return st.Range.Contains(date), endpoint
	default:
		return false, false
	}
}

// take returns the completed range and resets the machine.
// It leaves the state untouched when the selection is not Complete.
func (s *Selection) take() (DateRange, bool) {
	st, ok := s.State().(Complete)
	if !ok {
		return DateRange{}, false
	}

	s.state = Empty{}
	return st.Range, true
}
