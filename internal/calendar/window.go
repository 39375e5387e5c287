package calendar

import (
	"fmt"
	"time"

	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/kirinyoku/adslot-go/internal/pkg/clock"
)

const DefaultHorizonDays = 56

// Window is the bookable date range: today through today plus the horizon, inclusive.
type Window struct {
	clock       clock.Clock
	loc         *time.Location
	horizonDays int
}

func NewWindow(c clock.Clock, loc *time.Location, horizonDays int) Window {
	if c == nil {
		c = clock.NewRealClock()
	}

	if loc == nil {
		loc = time.UTC
	}

	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	return Window{clock: c, loc: loc, horizonDays: horizonDays}
}

// Today is the current calendar date in the booking timezone.
func (w Window) Today() time.Time {
	return domain.DateOf(w.clock.Now(), w.loc)
}

func (w Window) Last() time.Time {
	return w.Today().AddDate(0, 0, w.horizonDays)
}

func (w Window) Now() time.Time {
	return w.clock.Now()
}

func (w Window) Contains(d time.Time) bool {
	return !d.Before(w.Today()) && !d.After(w.Last())
}

// Validate checks a requested date set before any mutation.
//
// Returns:
//   - []time.Time: the dates normalized and sorted ascending.
//   - error: domain.ErrInvalidDates if dates is empty or has duplicates.
//   - error: domain.WindowExceededError listing every out-of-window date.
func (w Window) Validate(dates []time.Time) ([]time.Time, error) {
	const op = "calendar.Window.Validate"

	if len(dates) == 0 {
		return nil, fmt.Errorf("%s:%w", op, domain.ErrInvalidDates)
	}

	seen := make(map[time.Time]struct{}, len(dates))
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		d = domain.DateOf(d, nil)
		if _, dup := seen[d]; dup {
			return nil, fmt.Errorf("%s:%w", op, domain.ErrInvalidDates)
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}

	out = domain.SortDates(out)

	var outside []time.Time
	for _, d := range out {
		if !w.Contains(d) {
			outside = append(outside, d)
		}
	}
	if len(outside) > 0 {
		return nil, fmt.Errorf("%s:%w", op, domain.WindowExceededError{Dates: outside})
	}

	return out, nil
}

// Clamp narrows [from, to] to the window. ok is false when nothing is left.
func (w Window) Clamp(from, to time.Time) (time.Time, time.Time, bool) {
	today, last := w.Today(), w.Last()

	from = domain.DateOf(from, nil)
	to = domain.DateOf(to, nil)

	if from.Before(today) {
		from = today
	}

	if to.After(last) {
		to = last
	}

	return from, to, !from.After(to)
}

// Days lists every date in [from, to].
func Days(from, to time.Time) []time.Time {
	var out []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}
