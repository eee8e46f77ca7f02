// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tajiklex/farhang/internal/lexicon"
	"github.com/tajiklex/farhang/internal/parse"
	"github.com/tajiklex/farhang/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse <cleaned.txt>",
	Short: "Parse cleaned text into structured dictionary rows",
	Long: `Parse segments cleaned text into dictionary entries and extracts
structured fields from each: headword, etymology marker, Perso-Arabic
gloss, register marker, and numbered senses. Output is one row per sense,
written as YAML (the store stage's input) or CSV.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringP("output", "o", "", "output file (default: <input>-rows.yaml)")
	parseCmd.Flags().String("format", "yaml", "output format: yaml or csv")
	parseCmd.Flags().String("tables", "", "YAML file overriding the built-in abbreviation tables")
	parseCmd.Flags().Int("lookahead", 0, "boundary-validation window in characters (default 100)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	format, _ := cmd.Flags().GetString("format")
	if format != "yaml" && format != "csv" {
		return fmt.Errorf("unknown output format %q: use yaml or csv", format)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outputPath = base + "-rows." + format
	}

	cfg := parseConfig(cmd)
	tables, err := loadTables(cfg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input %s: %w", inputPath, err)
	}

	rows, report := parse.Document(string(data), tables, cfg.LookaheadWindow)

	switch format {
	case "csv":
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating output %s: %w", outputPath, err)
		}
		defer f.Close()
		if err := parse.WriteCSV(f, rows); err != nil {
			return err
		}
	default:
		set := types.RowSet{Source: filepath.Base(inputPath), Rows: rows}
		if err := parse.WriteRows(outputPath, set); err != nil {
			return err
		}
	}

	printParseReport(cmd, rows, report)
	fmt.Fprintf(cmd.OutOrStdout(), "Rows written to %s\n", outputPath)
	return nil
}

// parseConfig resolves parsing settings from flags and the config file.
// Segmentation applies its own default when the window stays zero.
func parseConfig(cmd *cobra.Command) types.ParseConfig {
	var cfg types.ParseConfig
	cfg.TablesFile, _ = cmd.Flags().GetString("tables")
	if cfg.TablesFile == "" {
		cfg.TablesFile = viper.GetString("parse.tables_file")
	}
	cfg.LookaheadWindow, _ = cmd.Flags().GetInt("lookahead")
	if cfg.LookaheadWindow <= 0 {
		cfg.LookaheadWindow = viper.GetInt("parse.lookahead_window")
	}
	return cfg
}

// loadTables reads the configured abbreviation-table file, falling back to
// the built-in tables.
func loadTables(cfg types.ParseConfig) (lexicon.Tables, error) {
	if cfg.TablesFile == "" {
		return lexicon.Defaults(), nil
	}
	return lexicon.Load(cfg.TablesFile)
}

func printParseReport(cmd *cobra.Command, rows []types.Row, report parse.Report) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "entries: %d (false positives skipped: %d, noise lines: %d, page markers: %d)\n",
		report.Segmentation.Entries, report.Segmentation.FalsePositives,
		report.Segmentation.Discarded, report.Segmentation.PageMarkers)
	fmt.Fprintf(out, "rows: %d (contamination repairs: %d, skipped blocks: %d)\n",
		report.Extraction.Rows, report.Extraction.Repairs, report.Extraction.SkippedBlocks)

	if len(rows) == 0 {
		return
	}

	var gloss, etymology, register, numbered int
	for _, r := range rows {
		if r.Gloss != "" {
			gloss++
		}
		if r.EtymologyMarker != "" {
			etymology++
		}
		if r.RegisterMarker != "" {
			register++
		}
		if r.Numbered() {
			numbered++
		}
	}

	total := len(rows)
	fmt.Fprintf(out, "coverage: gloss %.1f%%, etymology %.1f%%, register %.1f%%, numbered %.1f%%\n",
		percent(gloss, total), percent(etymology, total),
		percent(register, total), percent(numbered, total))
}

func percent(n, total int) float64 {
	return float64(n) / float64(total) * 100
}
