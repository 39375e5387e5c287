//go:build unit

package calendar_test

import (
	"errors"
	"testing"
	"time"

	"github.com/kirinyoku/adslot-go/internal/calendar"
	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/kirinyoku/adslot-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

func newWindow() calendar.Window {
	return calendar.NewWindow(clock.NewMockClock(today.Add(9*time.Hour)), time.UTC, 56)
}

func TestWindow_Validate(t *testing.T) {
	w := newWindow()

	testCases := []struct {
		name        string
		dates       []time.Time
		wantErr     error
		wantOutside []time.Time
	}{
		{name: "today is accepted", dates: []time.Time{today}},
		{name: "last day of horizon is accepted", dates: []time.Time{today.AddDate(0, 0, 56)}},
		{
			name:        "one day past horizon is rejected",
			dates:       []time.Time{today.AddDate(0, 0, 57)},
			wantErr:     domain.ErrWindowExceeded,
			wantOutside: []time.Time{today.AddDate(0, 0, 57)},
		},
		{
			name:        "yesterday is rejected",
			dates:       []time.Time{today.AddDate(0, 0, -1), today},
			wantErr:     domain.ErrWindowExceeded,
			wantOutside: []time.Time{today.AddDate(0, 0, -1)},
		},
		{
			name:        "every outside date is reported",
			dates:       []time.Time{today.AddDate(0, 0, 60), today.AddDate(0, 0, 1), today.AddDate(0, 0, -2)},
			wantErr:     domain.ErrWindowExceeded,
			wantOutside: []time.Time{today.AddDate(0, 0, -2), today.AddDate(0, 0, 60)},
		},
		{name: "empty is invalid", dates: nil, wantErr: domain.ErrInvalidDates},
		{name: "duplicates are invalid", dates: []time.Time{today, today}, wantErr: domain.ErrInvalidDates},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := w.Validate(tc.dates)

			if tc.wantErr == nil {
				require.NoError(t, err)
				assert.Len(t, got, len(tc.dates))
				return
			}

			require.ErrorIs(t, err, tc.wantErr)

			if tc.wantOutside != nil {
				var we domain.WindowExceededError
				require.True(t, errors.As(err, &we))
				assert.Equal(t, tc.wantOutside, we.Dates)
			}
		})
	}
}

func TestWindow_Validate_SortsAndNormalizes(t *testing.T) {
	w := newWindow()

	got, err := w.Validate([]time.Time{
		today.AddDate(0, 0, 3).Add(13 * time.Hour),
		today.AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	assert.Equal(t, []time.Time{today.AddDate(0, 0, 1), today.AddDate(0, 0, 3)}, got)
}

func TestWindow_TodayUsesBookingTimezone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 02:00 UTC on the 7th is still the 6th in New York
	c := clock.NewMockClock(time.Date(2025, 1, 7, 2, 0, 0, 0, time.UTC))

	assert.Equal(t, today, calendar.NewWindow(c, ny, 56).Today())
	assert.Equal(t, today.AddDate(0, 0, 1), calendar.NewWindow(c, time.UTC, 56).Today())
}

func TestWindow_Clamp(t *testing.T) {
	w := newWindow()

	from, to, ok := w.Clamp(today.AddDate(0, 0, -3), today.AddDate(0, 0, 90))
	require.True(t, ok)
	assert.Equal(t, today, from)
	assert.Equal(t, today.AddDate(0, 0, 56), to)

	_, _, ok = w.Clamp(today.AddDate(0, 0, -9), today.AddDate(0, 0, -1))
	assert.False(t, ok)

	from, to, ok = w.Clamp(today.AddDate(0, 0, 2), today.AddDate(0, 0, 4))
	require.True(t, ok)
	assert.Equal(t, today.AddDate(0, 0, 2), from)
	assert.Equal(t, today.AddDate(0, 0, 4), to)
}

func TestDays(t *testing.T) {
	assert.Len(t, calendar.Days(today, today.AddDate(0, 0, 6)), 7)
	assert.Empty(t, calendar.Days(today.AddDate(0, 0, 1), today))
}
