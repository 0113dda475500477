package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/username/vacation-planner/internal/calendar"
	"github.com/username/vacation-planner/pkg/dateutil"
	"github.com/username/vacation-planner/pkg/random"
	"go.uber.org/zap"
)

// ErrNoCompleteSelection is returned by Commit when both endpoints are not picked yet
var ErrNoCompleteSelection = errors.New("no complete selection to commit")

// ColorSource produces an opaque display color for a new period
type ColorSource func() string

// Option configures a Session
type Option func(*Session)

// WithAllowance sets the initial allowance
func WithAllowance(days int) Option {
	return func(s *Session) {
		s.allowance = days
	}
}

// WithColorSource replaces the default green-blue color generator
func WithColorSource(colors ColorSource) Option {
	return func(s *Session) {
		s.colors = colors
	}
}

// WithIDGenerator replaces the default UUID period ids
func WithIDGenerator(newID func() string) Option {
	return func(s *Session) {
		s.newID = newID
	}
}

// Preview is the live range and its metrics shown before commit
type Preview struct {
	Range DateRange
	Metrics
}

// DayView is everything a calendar cell needs to know about a date
type DayView struct {
	calendar.DayInfo
	Selected bool
	Endpoint bool
	Period   *Period // first period covering the date, nil if none
}

// Session owns one user's planning state: the selection in progress,
// the committed periods and the allowance. It is not safe for concurrent use.
type Session struct {
	calendar  calendar.Classifier
	selection Selection
	store     *PeriodStore
	allowance int
	colors    ColorSource
	newID     func() string
	logger    *zap.Logger
}

// NewSession creates a session over the given calendar
func NewSession(cal calendar.Classifier, logger *zap.Logger, opts ...Option) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		calendar:  cal,
		store:     NewPeriodStore(),
		allowance: DefaultAllowance,
		colors:    random.GreenBlueColor,
		newID:     uuid.NewString,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// PickDate handles a date click
func (s *Session) PickDate(date time.Time) SelectionState {
	st := s.selection.PickDate(date)

	s.logger.Debug("Date picked",
		zap.String("date", dateutil.FormatISO(date)),
		zap.String("state", StateName(st)))

	return st
}

// Hover handles a date hover. Only has an effect while a start is pending.
func (s *Session) Hover(date time.Time) bool {
	return s.selection.Hover(date)
}

// Cancel discards the selection in progress
func (s *Session) Cancel() {
	s.selection.Cancel()
	s.logger.Debug("Selection cancelled")
}

// Selection returns the current selection state
func (s *Session) Selection() SelectionState {
	return s.selection.State()
}

// Preview returns the live range and metrics, if there is one to show
func (s *Session) Preview() (Preview, bool) {
	r, ok := s.selection.Preview()
	if !ok {
		return Preview{}, false
	}

	return Preview{Range: r, Metrics: ComputeMetrics(s.calendar, r)}, true
}

// Commit stores the completed selection as a new period and resets the selection.
// Returns ErrNoCompleteSelection, leaving everything untouched, unless the
// selection is Complete.
func (s *Session) Commit() (Period, error) {
	st, ok := s.selection.State().(Complete)
	if !ok {
		return Period{}, ErrNoCompleteSelection
	}

	period := Period{
		ID:      s.newID(),
		Range:   st.Range,
		Metrics: ComputeMetrics(s.calendar, st.Range),
		Color:   s.colors(),
	}

	if err := s.store.Add(period); err != nil {
		return Period{}, fmt.Errorf("failed to commit period: %w", err)
	}
	s.selection.take()

	s.logger.Info("Vacation period added",
		zap.String("id", period.ID),
		zap.String("range", period.Range.String()),
		zap.Int("vacation_days", period.VacationDays),
		zap.Int("working_days", period.WorkingDays),
		zap.Int("calendar_days", period.CalendarDays))

	return period, nil
}

// RemovePeriod deletes a period by id. Unknown ids are ignored.
func (s *Session) RemovePeriod(id string) bool {
	removed := s.store.Remove(id)
	if removed {
		s.logger.Info("Vacation period removed", zap.String("id", id))
	}
	return removed
}

// Periods returns committed periods in the order they were added
func (s *Session) Periods() []Period {
	return s.store.List()
}

// Period returns a committed period by id
func (s *Session) Period(id string) (Period, bool) {
	return s.store.Get(id)
}

// SetAllowance applies user input as the new allowance. Invalid input falls
// back to DefaultAllowance. Returns the value now in effect.
func (s *Session) SetAllowance(raw any) int {
	days, ok := ParseAllowance(raw)
	if !ok {
		s.logger.Warn("Invalid allowance, using default",
			zap.Any("input", raw),
			zap.Int("default", DefaultAllowance))
	}

	s.allowance = days
	s.logger.Info("Allowance updated", zap.Int("days", days))

	return days
}

// Allowance returns the current allowance
func (s *Session) Allowance() int {
	return s.allowance
}

// Balance returns allowance usage across all periods
func (s *Session) Balance() Balance {
	return ComputeBalance(s.allowance, s.store.UsedDays())
}

// DayView returns the display flags of a single date
func (s *Session) DayView(date time.Time) DayView {
	view := DayView{DayInfo: s.calendar.Classify(date)}
	view.Selected, view.Endpoint = s.selection.Highlights(date)

	if p, ok := s.store.Covering(date); ok {
		view.Period = &p
	}

	return view
}

// StateName returns "empty", "pending" or "complete"
func StateName(st SelectionState) string {
	switch st.(type) {
	case Pending:
		return "pending"
	case Complete:
		return "complete"
	default:
		return "empty"
	}
}
