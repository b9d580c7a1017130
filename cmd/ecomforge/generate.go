package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Veraticus/ecomforge/internal/cli"
	"github.com/Veraticus/ecomforge/internal/common"
	"github.com/Veraticus/ecomforge/internal/config"
	"github.com/Veraticus/ecomforge/internal/generate"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the transaction dataset and write it as CSV",
		Long: `Generate a synthetic e-commerce transaction dataset and write it to a
single CSV file. The run is fully determined by the seed: the same seed and
row count always produce a byte-identical file.

Examples:
  # The standard 5M-row fixture
  ecomforge generate

  # A small fixture with a custom seed
  ecomforge generate --rows 10000 --seed 7 --output fixtures/small.csv

  # A different date window
  ecomforge generate --start-date 2023-01-01 --window-days 365`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	cmd.Flags().IntP("rows", "n", config.DefaultRows, "number of rows to generate")
	cmd.Flags().Int64("seed", config.DefaultSeed, "random seed")
	cmd.Flags().StringP("output", "o", config.DefaultOutput, "output CSV path")
	cmd.Flags().String("start-date", "", "first day of the date window (YYYY-MM-DD)")
	cmd.Flags().Int("window-days", config.DefaultWindowDays, "date window length in days")
	cmd.Flags().Int("chunk-size", config.DefaultChunkSize, "rows per write chunk")

	_ = viper.BindPFlag("generate.rows", cmd.Flags().Lookup("rows"))
	_ = viper.BindPFlag("generate.seed", cmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("generate.output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("generate.start_date", cmd.Flags().Lookup("start-date"))
	_ = viper.BindPFlag("generate.window_days", cmd.Flags().Lookup("window-days"))
	_ = viper.BindPFlag("generate.chunk_size", cmd.Flags().Lookup("chunk-size"))

	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromViper()
	if err != nil {
		return err
	}

	pipeline, err := generate.New(cfg)
	if err != nil {
		return common.NewUserError("configuration rejected", err)
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Generating %d e-commerce transactions...", cfg.Rows)))

	bar := newProgressBar(cfg.Rows)
	result, err := pipeline.Run(cmd.Context(), func(written int) {
		_ = bar.Set(written)
	})
	if err != nil {
		fmt.Println(cli.FormatError("Generation failed"))
		return err
	}

	summary := fmt.Sprintf("  • Rows: %d\n", result.Rows) +
		fmt.Sprintf("  • Columns: %d\n", result.Columns) +
		fmt.Sprintf("  • File size: %.1f MB\n", float64(result.Bytes)/(1024*1024)) +
		fmt.Sprintf("  • Time taken: %s\n", result.Elapsed.Round(time.Second)) +
		fmt.Sprintf("  • File: %s %s\n", result.Path, cli.SaveIcon)

	fmt.Println(cli.RenderBox("Generation Complete", summary))

	return nil
}

func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Writing transactions...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
