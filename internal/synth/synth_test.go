package synth

import (
	"context"
	"testing"

	"github.com/Veraticus/ecomforge/internal/common"
	"github.com/Veraticus/ecomforge/internal/config"
	"github.com/Veraticus/ecomforge/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(rows int, seed int64) config.Config {
	cfg := config.Default()
	cfg.Rows = rows
	cfg.Seed = seed
	return cfg
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(0, 42)

	_, err := New(cfg)

	assert.ErrorIs(t, err, common.ErrInvalidConfiguration)
}

func TestSynthesizeTransactionIDsContiguous(t *testing.T) {
	s, err := New(testConfig(1000, 42))
	require.NoError(t, err)

	cols, err := s.Synthesize(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1000, cols.Len())
	for i := 0; i < cols.Len(); i++ {
		assert.Equal(t, int64(i+1), cols.TransactionID[i])
	}
}

func TestSynthesizeDomains(t *testing.T) {
	cfg := testConfig(5000, 42)
	s, err := New(cfg)
	require.NoError(t, err)

	cols, err := s.Synthesize(context.Background())
	require.NoError(t, err)

	categories := toSet(cfg.Categories)
	payments := toSet(cfg.PaymentMethods)
	countries := toSet(cfg.Countries)

	for i := 0; i < cols.Len(); i++ {
		assert.Contains(t, categories, cols.Category[i])
		assert.Contains(t, payments, cols.PaymentMethod[i])
		assert.Contains(t, countries, cols.Country[i])

		assert.GreaterOrEqual(t, cols.CustomerID[i], cfg.CustomerIDRange.Min)
		assert.Less(t, cols.CustomerID[i], cfg.CustomerIDRange.Max)

		assert.GreaterOrEqual(t, cols.Quantity[i], cfg.QuantityRange.Min)
		assert.Less(t, cols.Quantity[i], cfg.QuantityRange.Max)

		// Price is a rounded continuous draw from [5, 500), held as cents.
		assert.GreaterOrEqual(t, cols.PriceCents[i], int64(500))
		assert.LessOrEqual(t, cols.PriceCents[i], int64(50000))

		assert.GreaterOrEqual(t, cols.DayOffset[i], int32(0))
		assert.Less(t, cols.DayOffset[i], int32(cfg.WindowDays))
	}
}

func TestSynthesizeDatesInsideWindow(t *testing.T) {
	cfg := testConfig(2000, 42)
	s, err := New(cfg)
	require.NoError(t, err)

	cols, err := s.Synthesize(context.Background())
	require.NoError(t, err)

	windowEnd := cfg.StartDate.AddDate(0, 0, cfg.WindowDays)
	for i := 0; i < cols.Len(); i++ {
		date := cols.Date(i)
		assert.False(t, date.Before(cfg.StartDate), "date %s before window start", date)
		assert.False(t, date.After(windowEnd), "date %s after window end", date)
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	run := func() *columnsSnapshot {
		s, err := New(testConfig(3000, 42))
		require.NoError(t, err)
		cols, err := s.Synthesize(context.Background())
		require.NoError(t, err)
		return snapshot(cols)
	}

	first := run()
	second := run()

	assert.Equal(t, first, second)
}

func TestSynthesizeSeedsDiffer(t *testing.T) {
	synthesize := func(seed int64) *columnsSnapshot {
		s, err := New(testConfig(3000, seed))
		require.NoError(t, err)
		cols, err := s.Synthesize(context.Background())
		require.NoError(t, err)
		return snapshot(cols)
	}

	assert.NotEqual(t, synthesize(42), synthesize(43))
}

func TestSynthesizeCanceledContext(t *testing.T) {
	s, err := New(testConfig(500_000, 42))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Synthesize(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

type columnsSnapshot struct {
	customerID []int64
	category   []string
	priceCents []int64
	quantity   []int64
	dayOffset  []int32
	payment    []string
	country    []string
}

func snapshot(c *model.Columns) *columnsSnapshot {
	return &columnsSnapshot{
		customerID: c.CustomerID,
		category:   c.Category,
		priceCents: c.PriceCents,
		quantity:   c.Quantity,
		dayOffset:  c.DayOffset,
		payment:    c.PaymentMethod,
		country:    c.Country,
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
