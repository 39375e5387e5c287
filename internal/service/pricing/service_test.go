//go:build unit

package pricing_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/kirinyoku/adslot-go/internal/service/pricing"
	"github.com/kirinyoku/adslot-go/internal/service/pricing/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func day(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCalculator_Subtotal(t *testing.T) {
	calc := pricing.New(nil, pricing.Config{}, nil)

	testCases := []struct {
		name  string
		dates []time.Time
		want  int64
	}{
		{name: "monday and friday", dates: []time.Time{day("2025-01-06"), day("2025-01-10")}, want: 1800},
		{name: "order does not matter", dates: []time.Time{day("2025-01-10"), day("2025-01-06")}, want: 1800},
		{name: "thursday is weekday", dates: []time.Time{day("2025-01-09")}, want: 800},
		{name: "full week", dates: []time.Time{
			day("2025-01-06"), day("2025-01-07"), day("2025-01-08"), day("2025-01-09"),
			day("2025-01-10"), day("2025-01-11"), day("2025-01-12"),
		}, want: 4*800 + 3*1000},
		{name: "empty", dates: nil, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, calc.Subtotal(tc.dates))
			assert.Equal(t, tc.want, calc.Subtotal(tc.dates), "repeat call")
		})
	}
}

func TestCalculator_Lines(t *testing.T) {
	calc := pricing.New(nil, pricing.Config{}, nil)

	got := calc.Lines([]time.Time{day("2025-01-10"), day("2025-01-06")})

	want := []domain.PriceLine{
		{Date: day("2025-01-06"), Kind: domain.RateWeekday, Cents: 800},
		{Date: day("2025-01-10"), Kind: domain.RateWeekend, Cents: 1000},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculator_Quote(t *testing.T) {
	ctx := context.Background()
	dates := []time.Time{day("2025-01-06"), day("2025-01-10")}

	t.Run("flat tax without collaborator", func(t *testing.T) {
		calc := pricing.New(nil, pricing.Config{}, nil)

		q := calc.Quote(ctx, "10001", dates, 0, "")

		assert.Equal(t, int64(1800), q.SubtotalCents)
		assert.Equal(t, int64(117), q.TaxCents)
		assert.Equal(t, int64(1917), q.TotalCents)
		assert.Empty(t, q.PromoCode)
	})

	t.Run("collaborator taxes the discounted amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		taxer := mocks.NewMockTaxEstimator(ctrl)
		taxer.EXPECT().EstimateTax(gomock.Any(), domain.Zone("10001"), int64(1300)).Return(int64(52), nil)

		calc := pricing.New(taxer, pricing.Config{}, nil)

		q := calc.Quote(ctx, "10001", dates, 500, "SPRING")

		assert.Equal(t, int64(500), q.DiscountCents)
		assert.Equal(t, int64(52), q.TaxCents)
		assert.Equal(t, int64(1352), q.TotalCents)
		assert.Equal(t, "SPRING", q.PromoCode)
	})

	t.Run("collaborator failure falls back to flat rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		taxer := mocks.NewMockTaxEstimator(ctrl)
		taxer.EXPECT().EstimateTax(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("boom"))

		calc := pricing.New(taxer, pricing.Config{}, nil)

		q := calc.Quote(ctx, "00000", dates, 0, "")

		assert.Equal(t, int64(117), q.TaxCents)
	})

	t.Run("negative estimate falls back to flat rate and is logged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		taxer := mocks.NewMockTaxEstimator(ctrl)
		taxer.EXPECT().EstimateTax(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(-40), nil)

		var logs bytes.Buffer
		calc := pricing.New(taxer, pricing.Config{}, slog.New(slog.NewTextHandler(&logs, nil)))

		q := calc.Quote(ctx, "10001", dates, 0, "")

		assert.Equal(t, int64(117), q.TaxCents)
		assert.Contains(t, logs.String(), "tax_cents=-40")
		assert.NotContains(t, logs.String(), "error=")
	})

	t.Run("full discount is free and never asks for tax", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		taxer := mocks.NewMockTaxEstimator(ctrl)

		calc := pricing.New(taxer, pricing.Config{}, nil)

		q := calc.Quote(ctx, "10001", []time.Time{day("2025-01-06")}, 5000, "FREEBIE")

		assert.Equal(t, int64(800), q.DiscountCents)
		assert.Zero(t, q.TaxCents)
		assert.Zero(t, q.TotalCents)
	})

	t.Run("custom rates", func(t *testing.T) {
		calc := pricing.New(nil, pricing.Config{WeekdayRateCents: 100, WeekendRateCents: 200, FlatTaxRate: 0.1}, nil)

		q := calc.Quote(ctx, "10001", dates, 0, "")

		assert.Equal(t, int64(300), q.SubtotalCents)
		assert.Equal(t, int64(30), q.TaxCents)
	})
}
