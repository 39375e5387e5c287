//go:build unit

package alternates_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kirinyoku/adslot-go/internal/calendar"
	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/kirinyoku/adslot-go/internal/geo"
	"github.com/kirinyoku/adslot-go/internal/pkg/clock"
	"github.com/kirinyoku/adslot-go/internal/service/alternates"
	"github.com/kirinyoku/adslot-go/internal/service/alternates/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var today = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return today.AddDate(0, 0, offset)
}

func newService(t *testing.T, cfg alternates.Config) (*alternates.Service, *mocks.MockGeo, *mocks.MockAvailability) {
	ctrl := gomock.NewController(t)
	g := mocks.NewMockGeo(ctrl)
	a := mocks.NewMockAvailability(ctrl)
	window := calendar.NewWindow(clock.NewMockClock(today), time.UTC, 56)

	return alternates.New(g, a, window, cfg, nil), g, a
}

func TestService_Find(t *testing.T) {
	ctx := context.Background()

	nearby := []domain.NearbyZone{
		{Zone: "07030", DistanceMiles: 1.9},
		{Zone: "11201", DistanceMiles: 4.0},
		{Zone: "10451", DistanceMiles: 6.1},
		{Zone: "07302", DistanceMiles: 7.5},
	}

	t.Run("filters by availability and keeps distance order", func(t *testing.T) {
		svc, g, a := newService(t, alternates.Config{MaxResults: 5})
		g.EXPECT().NearbyZones(gomock.Any(), domain.Zone("10001"), 20).Return(nearby, nil)
		a.EXPECT().AvailableOnAny(gomock.Any(),
			[]domain.Zone{"07030", "11201", "10451", "07302"},
			[]time.Time{day(1), day(2)},
		).Return(map[domain.Zone]bool{"11201": true, "07302": true}, nil)

		got, err := svc.Find(ctx, "10001", []time.Time{day(1), day(2)})
		require.NoError(t, err)
		assert.Equal(t, []domain.Alternative{
			{Zone: "11201", DistanceMiles: 4.0},
			{Zone: "07302", DistanceMiles: 7.5},
		}, got)
	})

	t.Run("caps the result", func(t *testing.T) {
		svc, g, a := newService(t, alternates.Config{MaxResults: 2, CandidateFactor: 2})
		g.EXPECT().NearbyZones(gomock.Any(), gomock.Any(), 4).Return(nearby, nil)
		a.EXPECT().AvailableOnAny(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[domain.Zone]bool{"07030": true, "11201": true, "10451": true}, nil)

		got, err := svc.Find(ctx, "10001", []time.Time{day(1)})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, domain.Zone("07030"), got[0].Zone)
	})

	t.Run("nothing open is an empty list", func(t *testing.T) {
		svc, g, a := newService(t, alternates.Config{})
		g.EXPECT().NearbyZones(gomock.Any(), gomock.Any(), gomock.Any()).Return(nearby, nil)
		a.EXPECT().AvailableOnAny(gomock.Any(), gomock.Any(), gomock.Any()).Return(map[domain.Zone]bool{}, nil)

		got, err := svc.Find(ctx, "10001", []time.Time{day(1)})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("no neighbours skips the availability read", func(t *testing.T) {
		svc, g, _ := newService(t, alternates.Config{})
		g.EXPECT().NearbyZones(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		got, err := svc.Find(ctx, "10001", []time.Time{day(1)})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("dates outside the window are ignored", func(t *testing.T) {
		svc, _, _ := newService(t, alternates.Config{})

		got, err := svc.Find(ctx, "10001", []time.Time{day(-1), day(57)})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown origin is an empty list", func(t *testing.T) {
		svc, g, _ := newService(t, alternates.Config{})
		g.EXPECT().NearbyZones(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, geo.ErrUnknownZone)

		got, err := svc.Find(ctx, "00000", []time.Time{day(1)})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		svc, g, a := newService(t, alternates.Config{})
		g.EXPECT().NearbyZones(gomock.Any(), gomock.Any(), gomock.Any()).Return(nearby, nil)
		a.EXPECT().AvailableOnAny(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		_, err := svc.Find(ctx, "10001", []time.Time{day(1)})
		require.Error(t, err)
	})
}
