//go:build integration

package redis_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/kirinyoku/adslot-go/internal/pkg/clock"
	redisrepo "github.com/kirinyoku/adslot-go/internal/repository/redis"
	"github.com/kirinyoku/adslot-go/internal/testsupport"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

var (
	jan13 = time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	jan14 = time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC)
)

type RedisIntegrationSuite struct {
	suite.Suite
	ctx context.Context
	rdb *goredis.Client
}

func (s *RedisIntegrationSuite) SetupTest() {
	s.ctx = context.Background()
	s.rdb = testsupport.Redis(s.T())
}

func (s *RedisIntegrationSuite) TestZoneRange_ReloadsAfterInvalidation() {
	cache := redisrepo.New(s.rdb)

	loads := 0
	loader := func(context.Context) (domain.AvailabilityRange, error) {
		loads++
		return domain.AvailabilityRange{
			Zone: "10001", From: jan13, To: jan14, Capacity: 3,
			Days: []domain.DayAvailability{
				{Date: jan13, Used: loads, Remaining: 3 - loads},
				{Date: jan14, Used: 0, Remaining: 3},
			},
		}, nil
	}

	first, err := cache.ZoneRange(s.ctx, "10001", jan13, jan14, time.Minute, loader)
	s.Require().NoError(err)
	s.Equal(1, first.Days[0].Used)

	cached, err := cache.ZoneRange(s.ctx, "10001", jan13, jan14, time.Minute, loader)
	s.Require().NoError(err)
	s.Equal(1, loads)
	s.Equal(first.Days[0].Remaining, cached.Days[0].Remaining)
	s.True(cached.Days[0].Date.Equal(jan13))

	s.Require().NoError(cache.InvalidateZone(s.ctx, "10001"))

	ver, err := cache.ZoneVersion(s.ctx, "10001")
	s.Require().NoError(err)
	s.Equal(int64(1), ver)

	fresh, err := cache.ZoneRange(s.ctx, "10001", jan13, jan14, time.Minute, loader)
	s.Require().NoError(err)
	s.Equal(2, loads)
	s.Equal(2, fresh.Days[0].Used)

	// other zones keep their version
	ver, err = cache.ZoneVersion(s.ctx, "07030")
	s.Require().NoError(err)
	s.Zero(ver)
}

func (s *RedisIntegrationSuite) TestIdempotency_LockSaveReplay() {
	store := redisrepo.NewIdempotencyStore(s.rdb, time.Hour, 10*time.Second)

	res, acquired, err := store.Begin(s.ctx, "key-1")
	s.Require().NoError(err)
	s.True(acquired)
	s.Nil(res)

	res, acquired, err = store.Begin(s.ctx, "key-1")
	s.Require().NoError(err)
	s.False(acquired)
	s.Nil(res)

	s.Require().NoError(store.Save(s.ctx, "key-1", 201, []byte(`{"free":true}`)))

	res, acquired, err = store.Begin(s.ctx, "key-1")
	s.Require().NoError(err)
	s.False(acquired)
	s.Require().NotNil(res)
	s.Equal(201, res.Status)
	s.JSONEq(`{"free":true}`, string(res.Body))
}

func (s *RedisIntegrationSuite) TestIdempotency_AbortFreesKey() {
	store := redisrepo.NewIdempotencyStore(s.rdb, time.Hour, 10*time.Second)

	_, acquired, err := store.Begin(s.ctx, "key-2")
	s.Require().NoError(err)
	s.Require().True(acquired)

	s.Require().NoError(store.Abort(s.ctx, "key-2"))

	res, acquired, err := store.Begin(s.ctx, "key-2")
	s.Require().NoError(err)
	s.True(acquired)
	s.Nil(res)
}

func (s *RedisIntegrationSuite) TestIdempotency_OneOwnerUnderConcurrency() {
	store := redisrepo.NewIdempotencyStore(s.rdb, time.Hour, 10*time.Second)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		owners int
	)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, acquired, err := store.Begin(s.ctx, "key-3")
			s.NoError(err)
			if acquired {
				mu.Lock()
				owners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(1, owners)
}

func (s *RedisIntegrationSuite) TestSlidingWindowLimiter() {
	limiter := redisrepo.NewSlidingWindowLimiter(s.rdb, nil, "checkout", 3, time.Minute)

	for i := range 3 {
		allowed, current, _, err := limiter.Allow(s.ctx, "ip:10.0.0.1")
		s.Require().NoError(err)
		s.True(allowed)
		s.Equal(int64(i+1), current)
	}

	allowed, current, retryAfter, err := limiter.Allow(s.ctx, "ip:10.0.0.1")
	s.Require().NoError(err)
	s.False(allowed)
	s.Equal(int64(3), current)
	s.Positive(retryAfter)
	s.LessOrEqual(retryAfter, time.Minute)

	// clients and scopes are counted apart
	allowed, _, _, err = limiter.Allow(s.ctx, "ip:10.0.0.2")
	s.Require().NoError(err)
	s.True(allowed)

	promo := redisrepo.NewSlidingWindowLimiter(s.rdb, nil, "promo", 3, time.Minute)
	allowed, _, _, err = promo.Allow(s.ctx, "ip:10.0.0.1")
	s.Require().NoError(err)
	s.True(allowed)
}

func (s *RedisIntegrationSuite) TestSlidingWindowLimiter_RejectedHitsDoNotExtendTheWait() {
	clk := clock.NewMockClock(time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC))
	limiter := redisrepo.NewSlidingWindowLimiter(s.rdb, clk, "promo", 2, time.Minute)

	for range 2 {
		allowed, _, _, err := limiter.Allow(s.ctx, "ip:10.0.0.9")
		s.Require().NoError(err)
		s.True(allowed)
	}

	clk.Add(20 * time.Second)
	allowed, _, retryAfter, err := limiter.Allow(s.ctx, "ip:10.0.0.9")
	s.Require().NoError(err)
	s.False(allowed)
	s.Equal(40*time.Second, retryAfter)

	clk.Add(30 * time.Second)
	allowed, _, retryAfter, err = limiter.Allow(s.ctx, "ip:10.0.0.9")
	s.Require().NoError(err)
	s.False(allowed)
	s.Equal(10*time.Second, retryAfter)

	clk.Add(11 * time.Second)
	allowed, current, _, err := limiter.Allow(s.ctx, "ip:10.0.0.9")
	s.Require().NoError(err)
	s.True(allowed)
	s.Equal(int64(1), current)
}

func (s *RedisIntegrationSuite) TestZonesPubSub_RoundTrip() {
	ps := redisrepo.NewZonesPubSub(s.rdb)

	ctx, cancel := context.WithTimeout(s.ctx, 10*time.Second)
	defer cancel()

	got := make(chan domain.ZoneChange, 1)
	done := make(chan error, 1)
	go func() {
		done <- ps.Subscribe(ctx, func(_ context.Context, c domain.ZoneChange) {
			select {
			case got <- c:
			default:
			}
		})
	}()

	want := domain.ZoneChange{Zone: "10001", Dates: []time.Time{jan13, jan14}}

	// publish until the subscription is live
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	var change domain.ZoneChange
loop:
	for {
		select {
		case change = <-got:
			break loop
		case <-tick.C:
			s.Require().NoError(ps.PublishZoneChanged(ctx, want))
		case <-ctx.Done():
			s.FailNow("no zone change received")
		}
	}

	s.Equal(want.Zone, change.Zone)
	s.Require().Len(change.Dates, 2)
	s.True(change.Dates[0].Equal(jan13))
	s.True(change.Dates[1].Equal(jan14))

	cancel()
	s.ErrorIs(<-done, context.Canceled)
}

func TestRedisIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RedisIntegrationSuite))
}
