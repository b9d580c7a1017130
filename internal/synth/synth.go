// Package synth implements the record synthesizer: column-wise, seeded,
// independent draws for the base transaction fields.
package synth

import (
	"context"
	"math"

	"github.com/Veraticus/ecomforge/internal/config"
	"github.com/Veraticus/ecomforge/internal/model"
	"golang.org/x/sync/errgroup"
)

// Synthesizer produces the base columns of a dataset. It holds no state
// between runs; the same configuration always yields the same columns.
type Synthesizer struct {
	cfg config.Config
}

// New creates a synthesizer, validating the configuration first. No
// generation work happens until Synthesize is called.
func New(cfg config.Config) (*Synthesizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Synthesizer{cfg: cfg}, nil
}

// Synthesize fills every base column. Columns are generated concurrently,
// one goroutine per column, each on its own seeded stream, so the output is
// byte-identical regardless of scheduling. TotalCents is left nil; deriving
// it is the next stage's job.
func (s *Synthesizer) Synthesize(ctx context.Context) (*model.Columns, error) {
	cfg := s.cfg
	cols := model.NewColumns(cfg.Rows, cfg.StartDate)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return fillSequential(ctx, cols.TransactionID)
	})
	g.Go(func() error {
		return fillInts(ctx, stream(cfg.Seed, colCustomerID), cols.CustomerID, cfg.CustomerIDRange)
	})
	g.Go(func() error {
		return fillCategorical(ctx, stream(cfg.Seed, colCategory), cols.Category, cfg.Categories)
	})
	g.Go(func() error {
		return fillPriceCents(ctx, stream(cfg.Seed, colPrice), cols.PriceCents, cfg.PriceRange)
	})
	g.Go(func() error {
		return fillInts(ctx, stream(cfg.Seed, colQuantity), cols.Quantity, cfg.QuantityRange)
	})
	g.Go(func() error {
		return fillDayOffsets(ctx, stream(cfg.Seed, colDate), cols.DayOffset, cfg.WindowDays)
	})
	g.Go(func() error {
		return fillCategorical(ctx, stream(cfg.Seed, colPaymentMethod), cols.PaymentMethod, cfg.PaymentMethods)
	})
	g.Go(func() error {
		return fillCategorical(ctx, stream(cfg.Seed, colCountry), cols.Country, cfg.Countries)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return cols, nil
}

func fillSequential(ctx context.Context, dst []int64) error {
	for i := range dst {
		if err := checkCancel(ctx, i); err != nil {
			return err
		}
		dst[i] = int64(i) + 1
	}
	return nil
}

func fillInts(ctx context.Context, r *columnStream, dst []int64, rng config.IntRange) error {
	span := rng.Max - rng.Min
	for i := range dst {
		if err := checkCancel(ctx, i); err != nil {
			return err
		}
		dst[i] = rng.Min + r.Int64N(span)
	}
	return nil
}

func fillCategorical(ctx context.Context, r *columnStream, dst, set []string) error {
	for i := range dst {
		if err := checkCancel(ctx, i); err != nil {
			return err
		}
		dst[i] = set[r.IntN(len(set))]
	}
	return nil
}

func fillPriceCents(ctx context.Context, r *columnStream, dst []int64, rng config.FloatRange) error {
	span := rng.Max - rng.Min
	for i := range dst {
		if err := checkCancel(ctx, i); err != nil {
			return err
		}
		v := rng.Min + r.Float64()*span
		dst[i] = int64(math.Round(v * 100))
	}
	return nil
}

func fillDayOffsets(ctx context.Context, r *columnStream, dst []int32, windowDays int) error {
	for i := range dst {
		if err := checkCancel(ctx, i); err != nil {
			return err
		}
		dst[i] = int32(r.IntN(windowDays))
	}
	return nil
}

// checkCancel polls for cancellation every 64k rows; per-row checks would
// dominate the fill loops.
func checkCancel(ctx context.Context, i int) error {
	if i&0xFFFF == 0 {
		return ctx.Err()
	}
	return nil
}
