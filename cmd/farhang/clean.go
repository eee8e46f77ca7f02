// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tajiklex/farhang/internal/normalize"
	"github.com/tajiklex/farhang/pkg/types"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <input.txt>",
	Short: "Repair encoding and RTL ordering in extracted text",
	Long: `Clean rewrites the known encoding damage in a raw text extraction:
script-crossed Cyrillic homoglyphs become the six Tajik-specific letters,
Arabic Presentation Forms glyphs collapse to base letters, and every
Arabic-script run is reversed back to logical order.

The cleaned file is the input for the parse stage.`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().StringP("output", "o", "", "cleaned output file (default: <input>.cleaned.txt)")
	cleanCmd.Flags().String("char-maps", "", "YAML file overriding the built-in character maps")

	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = inputPath + ".cleaned.txt"
	}

	var cfg types.CleanConfig
	cfg.CharMapFile, _ = cmd.Flags().GetString("char-maps")
	if cfg.CharMapFile == "" {
		cfg.CharMapFile = viper.GetString("clean.char_map_file")
	}

	cyrillic := normalize.TajikCyrillicMap()
	arabic := normalize.ArabicPresentationMap()
	if cfg.CharMapFile != "" {
		var err error
		cyrillic, arabic, err = normalize.LoadCharacterMaps(cfg.CharMapFile)
		if err != nil {
			return err
		}
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input %s: %w", inputPath, err)
	}

	cleaned, result := normalize.Clean(string(data), cyrillic, arabic)

	if err := os.WriteFile(outputPath, []byte(cleaned), 0o644); err != nil {
		return fmt.Errorf("writing output %s: %w", outputPath, err)
	}

	printStats(cmd, "Cyrillic homoglyphs", result.Cyrillic)
	fmt.Fprintf(cmd.OutOrStdout(), "Arabic presentation forms: %d replacements\n", result.Arabic.Total)
	fmt.Fprintf(cmd.OutOrStdout(), "RTL runs reversed: %d\n", result.RTLRuns)
	fmt.Fprintf(cmd.OutOrStdout(), "Cleaned text written to %s\n", outputPath)
	return nil
}

// printStats lists per-key replacement counts in deterministic order.
func printStats(cmd *cobra.Command, label string, stats normalize.Stats) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d replacements\n", label, stats.Total)

	keys := make([]string, 0, len(stats.Replacements))
	for k := range stats.Replacements {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %d\n", k, stats.Replacements[k])
	}
}
