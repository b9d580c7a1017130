// Package generate orchestrates the batch run: synthesize base columns,
// derive dependent columns, write the output file.
package generate

import (
	"context"
	"log/slog"
	"time"

	"github.com/Veraticus/ecomforge/internal/config"
	"github.com/Veraticus/ecomforge/internal/csvout"
	"github.com/Veraticus/ecomforge/internal/model"
	"github.com/Veraticus/ecomforge/internal/synth"
)

// State is the pipeline's lifecycle position. A failed run cannot be
// resumed; it must be restarted from StateConfigured.
type State string

// Pipeline states.
const (
	StateConfigured   State = "configured"
	StateSynthesizing State = "synthesizing"
	StateDeriving     State = "deriving"
	StateWriting      State = "writing"
	StateDone         State = "done"
	StateFailed       State = "failed"
)

// Pipeline runs one batch generation pass. It is single-use: Run may be
// called once per Pipeline.
type Pipeline struct {
	cfg   config.Config
	state State
}

// Result summarizes a completed run.
type Result struct {
	Path    string
	Elapsed time.Duration
	Rows    int
	Columns int
	Bytes   int64
}

// New creates a pipeline, validating the configuration up front so bad
// config never reaches the synthesis stage.
func New(cfg config.Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{cfg: cfg, state: StateConfigured}, nil
}

// State reports the pipeline's current lifecycle position.
func (p *Pipeline) State() State {
	return p.state
}

// Run executes the full pass. onRows, if set, receives the number of rows
// written so far as the output file grows.
func (p *Pipeline) Run(ctx context.Context, onRows func(written int)) (*Result, error) {
	start := time.Now()
	cfg := p.cfg

	p.state = StateSynthesizing
	slog.Info("Synthesizing base columns",
		"rows", cfg.Rows,
		"seed", cfg.Seed,
		"start_date", cfg.StartDate.Format("2006-01-02"),
		"window_days", cfg.WindowDays)

	synthesizer, err := synth.New(cfg)
	if err != nil {
		p.state = StateFailed
		return nil, err
	}
	cols, err := synthesizer.Synthesize(ctx)
	if err != nil {
		p.state = StateFailed
		return nil, err
	}

	// Barrier: every base column is fully populated before any derived
	// value is computed.
	p.state = StateDeriving
	slog.Info("Deriving totals", "rows", cols.Len())
	DeriveTotals(cols)

	p.state = StateWriting
	slog.Info("Writing dataset", "path", cfg.Output, "chunk_size", cfg.ChunkSize)
	bytes, err := csvout.Write(cfg.Output, cols, csvout.Options{
		ChunkSize: cfg.ChunkSize,
		OnRows:    onRows,
	})
	if err != nil {
		p.state = StateFailed
		return nil, err
	}

	p.state = StateDone
	result := &Result{
		Rows:    cols.Len(),
		Columns: len(model.FieldNames),
		Bytes:   bytes,
		Path:    cfg.Output,
		Elapsed: time.Since(start),
	}
	slog.Info("Generation complete",
		"rows", result.Rows,
		"bytes", result.Bytes,
		"elapsed", result.Elapsed.Round(time.Millisecond))
	return result, nil
}

// DeriveTotals computes total = product_price * quantity for every row.
// Prices are integer cents, so the product is exact.
func DeriveTotals(cols *model.Columns) {
	totals := make([]int64, cols.Len())
	for i := range totals {
		totals[i] = cols.PriceCents[i] * cols.Quantity[i]
	}
	cols.TotalCents = totals
}
