package main

import (
	"fmt"

	"github.com/Veraticus/ecomforge/internal/chart"
	"github.com/Veraticus/ecomforge/internal/cli"
	"github.com/Veraticus/ecomforge/internal/config"
	"github.com/Veraticus/ecomforge/internal/generate"
	"github.com/Veraticus/ecomforge/internal/synth"
	"github.com/Veraticus/ecomforge/internal/theme"
	"github.com/spf13/cobra"
)

func previewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Synthesize a small sample and render a themed summary chart",
		Long: `Synthesize a small in-memory sample of the dataset, aggregate revenue by
product category, and render a themed bar chart plus sample rows. Nothing is
written to disk.

Examples:
  ecomforge preview
  ecomforge preview --rows 5000 --seed 7`,
		Args: cobra.NoArgs,
		RunE: runPreview,
	}

	cmd.Flags().IntP("rows", "n", 1000, "sample size")
	cmd.Flags().Int64("seed", config.DefaultSeed, "random seed")

	return cmd
}

func runPreview(cmd *cobra.Command, _ []string) error {
	rows, _ := cmd.Flags().GetInt("rows")
	seed, _ := cmd.Flags().GetInt64("seed")

	cfg := config.Default()
	cfg.Rows = rows
	cfg.Seed = seed

	synthesizer, err := synth.New(cfg)
	if err != nil {
		return err
	}
	cols, err := synthesizer.Synthesize(cmd.Context())
	if err != nil {
		return err
	}
	generate.DeriveTotals(cols)

	// Revenue per category, in the declared category order.
	revenue := make(map[string]int64, len(cfg.Categories))
	for i := 0; i < cols.Len(); i++ {
		revenue[cols.Category[i]] += cols.TotalCents[i]
	}
	bars := make([]chart.Bar, len(cfg.Categories))
	for i, cat := range cfg.Categories {
		bars[i] = chart.Bar{Label: cat, Value: float64(revenue[cat]) / 100}
	}

	c := chart.New(fmt.Sprintf("%s Revenue by Product Category (%d rows)", cli.ChartIcon, rows), bars)
	c.XLabel = "revenue"

	theme.ArrakisNight().Apply(c)
	fmt.Println(c.Render())

	// Sample rows, like an import preview.
	fmt.Println("📝 Sample transactions (first 5):")
	fmt.Println("──────────────────────────────────────────────────────")
	for i := 0; i < cols.Len() && i < 5; i++ {
		row := cols.Row(i)
		fmt.Printf("ID: %d | Date: %s | %s | %.2f x %d = %.2f | %s | %s\n",
			row.ID,
			row.Date.Format("2006-01-02"),
			row.Category,
			row.Price(),
			row.Quantity,
			row.Total(),
			row.PaymentMethod,
			row.Country)
	}
	fmt.Println("──────────────────────────────────────────────────────")

	return nil
}
