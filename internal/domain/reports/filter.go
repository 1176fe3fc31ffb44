package reports

import (
	"sync"
	"time"

	"accountease/internal/core/apperror"
)

// Timeframe is the reporting window selector.
type Timeframe string

const (
	TimeframeDaily   Timeframe = "daily"
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
	TimeframeYearly  Timeframe = "yearly"
	TimeframeCustom  Timeframe = "custom"
)

// ParseTimeframe validates a timeframe string.
func ParseTimeframe(s string) (Timeframe, error) {
	switch Timeframe(s) {
	case TimeframeDaily, TimeframeWeekly, TimeframeMonthly, TimeframeYearly, TimeframeCustom:
		return Timeframe(s), nil
	}
	return "", apperror.NewInvalidArgument("invalid timeframe").WithDetail("timeframe", s)
}

// Filter is a reporting window: a timeframe plus the resolved concrete range.
// Start and End are both inclusive, Start <= End. Filters are passed and
// stored by value; a generation pass works on the snapshot it was given and
// is unaffected by later selection changes.
type Filter struct {
	Timeframe Timeframe `json:"timeframe"`
	Start     time.Time `json:"startDate"`
	End       time.Time `json:"endDate"`
}

// DefaultFilter returns the initial window: one month back through now.
func DefaultFilter(now time.Time) Filter {
	return Filter{
		Timeframe: TimeframeMonthly,
		Start:     now.AddDate(0, -1, 0),
		End:       now,
	}
}

// ResolveTimeframe produces the concrete range for a non-custom timeframe.
func ResolveTimeframe(tf Timeframe, now time.Time) (time.Time, time.Time) {
	end := endOfDay(now)
	switch tf {
	case TimeframeDaily:
		return startOfDay(now), end
	case TimeframeWeekly:
		return startOfDay(now.AddDate(0, 0, -7)), end
	case TimeframeYearly:
		// Same month one year back, from the first of that month.
		start := time.Date(now.Year()-1, now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, end
	default:
		// Monthly: first of the previous month through today.
		start := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		return start, end
	}
}

// PreviousPeriod derives the window of identical duration immediately
// preceding the filter's range.
func PreviousPeriod(f Filter) (time.Time, time.Time) {
	duration := f.End.Sub(f.Start)
	return f.Start.Add(-duration), f.Start
}

// Contains reports whether t falls inside the filter's inclusive range.
func (f Filter) Contains(t time.Time) bool {
	return !t.Before(f.Start) && !t.After(f.End)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// FilterState holds the current reporting window shared by every report
// panel, so one timeframe selection updates all report types consistently.
// Readers always get a by-value snapshot; reads never block on generation.
type FilterState struct {
	mu      sync.RWMutex
	current Filter

	subMu sync.Mutex
	subs  []chan Filter
}

// NewFilterState creates filter state populated with the default window.
func NewFilterState() *FilterState {
	return &FilterState{current: DefaultFilter(time.Now())}
}

// Current returns a snapshot of the current filter. Never blocks, never fails.
func (s *FilterState) Current() Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetTimeframe resolves and installs a non-custom timeframe.
// Custom ranges go through SetCustomRange.
func (s *FilterState) SetTimeframe(tf Timeframe) (Filter, error) {
	if tf == TimeframeCustom {
		return Filter{}, apperror.NewInvalidArgument("custom timeframe requires an explicit date range")
	}
	if _, err := ParseTimeframe(string(tf)); err != nil {
		return Filter{}, err
	}

	start, end := ResolveTimeframe(tf, time.Now())
	return s.replace(Filter{Timeframe: tf, Start: start, End: end}), nil
}

// SetCustomRange installs an explicit range, stored verbatim.
func (s *FilterState) SetCustomRange(start, end time.Time) (Filter, error) {
	if start.After(end) {
		return Filter{}, apperror.NewInvalidArgument("start date must not be after end date").
			WithDetail("start", start).
			WithDetail("end", end)
	}
	return s.replace(Filter{Timeframe: TimeframeCustom, Start: start, End: end}), nil
}

// replace swaps the filter wholesale and notifies subscribers.
func (s *FilterState) replace(f Filter) Filter {
	s.mu.Lock()
	s.current = f
	s.mu.Unlock()

	s.subMu.Lock()
	for _, ch := range s.subs {
		select {
		case ch <- f:
		default:
			// Slow subscriber keeps only the latest change.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- f:
			default:
			}
		}
	}
	s.subMu.Unlock()

	return f
}

// Subscribe returns a channel receiving filter changes and a cancel func.
func (s *FilterState) Subscribe() (<-chan Filter, func()) {
	ch := make(chan Filter, 1)

	s.subMu.Lock()
	s.subs = append(s.subs, ch)
	s.subMu.Unlock()

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, sub := range s.subs {
			if sub == ch {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				break
			}
		}
	}
	return ch, cancel
}
