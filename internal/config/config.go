// Package config provides the generation configuration and its validation.
package config

import (
	"fmt"
	"time"

	"github.com/Veraticus/ecomforge/internal/common"
	"github.com/spf13/viper"
)

// Default generation constants, matching the standard 5M-row fixture.
const (
	DefaultRows       = 5_000_000
	DefaultSeed       = 42
	DefaultWindowDays = 730
	DefaultChunkSize  = 100_000
	DefaultOutput     = "ecommerce_5m.csv"
)

// DefaultStartDate is the first day of the two-year transaction window.
var DefaultStartDate = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

// IntRange is a half-open integer interval [Min, Max).
type IntRange struct {
	Min int64
	Max int64
}

// FloatRange is a half-open continuous interval [Min, Max).
type FloatRange struct {
	Min float64
	Max float64
}

// Config holds everything a generation run needs. It is immutable once
// validated; the pipeline never writes it back.
type Config struct {
	StartDate       time.Time
	Output          string
	Categories      []string
	PaymentMethods  []string
	Countries       []string
	CustomerIDRange IntRange
	QuantityRange   IntRange
	PriceRange      FloatRange
	Rows            int
	WindowDays      int
	ChunkSize       int
	Seed            int64
}

// Default returns the standard fixture configuration.
func Default() Config {
	return Config{
		Rows:            DefaultRows,
		Seed:            DefaultSeed,
		StartDate:       DefaultStartDate,
		WindowDays:      DefaultWindowDays,
		ChunkSize:       DefaultChunkSize,
		Output:          DefaultOutput,
		Categories:      []string{"Electronics", "Fashion", "Home", "Sports", "Books"},
		PaymentMethods:  []string{"Credit Card", "PayPal", "Bank Transfer", "Cash"},
		Countries:       []string{"Germany", "Austria", "Switzerland", "Netherlands", "Belgium"},
		CustomerIDRange: IntRange{Min: 1000, Max: 50000},
		QuantityRange:   IntRange{Min: 1, Max: 10},
		PriceRange:      FloatRange{Min: 5, Max: 500},
	}
}

// Validate checks the configuration before any generation work begins.
// Every failure wraps common.ErrInvalidConfiguration.
func (c Config) Validate() error {
	if c.Rows <= 0 {
		return fmt.Errorf("%w: row count must be positive, got %d", common.ErrInvalidConfiguration, c.Rows)
	}
	if c.WindowDays <= 0 {
		return fmt.Errorf("%w: date window must be positive, got %d days", common.ErrInvalidConfiguration, c.WindowDays)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be positive, got %d", common.ErrInvalidConfiguration, c.ChunkSize)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output path is required", common.ErrInvalidConfiguration)
	}

	sets := map[string][]string{
		"product_category": c.Categories,
		"payment_method":   c.PaymentMethods,
		"country":          c.Countries,
	}
	for field, set := range sets {
		if len(set) == 0 {
			return fmt.Errorf("%w: categorical set for %s is empty", common.ErrInvalidConfiguration, field)
		}
	}

	if c.CustomerIDRange.Min >= c.CustomerIDRange.Max {
		return fmt.Errorf("%w: customer_id range [%d, %d) is inverted or empty",
			common.ErrInvalidConfiguration, c.CustomerIDRange.Min, c.CustomerIDRange.Max)
	}
	if c.QuantityRange.Min >= c.QuantityRange.Max {
		return fmt.Errorf("%w: quantity range [%d, %d) is inverted or empty",
			common.ErrInvalidConfiguration, c.QuantityRange.Min, c.QuantityRange.Max)
	}
	if c.PriceRange.Min >= c.PriceRange.Max {
		return fmt.Errorf("%w: product_price range [%.2f, %.2f) is inverted or empty",
			common.ErrInvalidConfiguration, c.PriceRange.Min, c.PriceRange.Max)
	}

	return nil
}

// FromViper builds a Config from bound flags, environment, and config file,
// starting from the defaults.
func FromViper() (Config, error) {
	cfg := Default()

	if viper.IsSet("generate.rows") {
		cfg.Rows = viper.GetInt("generate.rows")
	}
	if viper.IsSet("generate.seed") {
		cfg.Seed = viper.GetInt64("generate.seed")
	}
	if viper.IsSet("generate.output") {
		cfg.Output = viper.GetString("generate.output")
	}
	if viper.IsSet("generate.chunk_size") {
		cfg.ChunkSize = viper.GetInt("generate.chunk_size")
	}
	if viper.IsSet("generate.window_days") {
		cfg.WindowDays = viper.GetInt("generate.window_days")
	}
	if raw := viper.GetString("generate.start_date"); raw != "" {
		start, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			return Config{}, fmt.Errorf("%w: start date %q is not YYYY-MM-DD", common.ErrInvalidConfiguration, raw)
		}
		cfg.StartDate = start
	}
	if viper.IsSet("generate.categories") {
		cfg.Categories = viper.GetStringSlice("generate.categories")
	}
	if viper.IsSet("generate.payment_methods") {
		cfg.PaymentMethods = viper.GetStringSlice("generate.payment_methods")
	}
	if viper.IsSet("generate.countries") {
		cfg.Countries = viper.GetStringSlice("generate.countries")
	}

	cfg.Output = ExpandPath(cfg.Output)

	return cfg, nil
}
