// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tajiklex/farhang/internal/diagnose"
	"github.com/tajiklex/farhang/internal/parse"
	"github.com/tajiklex/farhang/internal/store"
	"github.com/tajiklex/farhang/pkg/types"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose [rows.yaml]",
	Short: "Report data-quality issues in parsed rows",
	Long: `Diagnose scans dictionary rows for signs of reconstruction damage:
residual header contamination, duplicate or gapped sense numbers, foreign
script in marker fields, unexpanded abbreviations, and suspiciously long
senses. It reads a parsed row file when given one, otherwise the stored
database. Findings are reported, never repaired.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDiagnose,
}

func init() {
	diagnoseCmd.Flags().String("data-dir", "", "directory holding the dictionary database (default: ./data)")
	diagnoseCmd.Flags().String("tables", "", "YAML file overriding the built-in abbreviation tables")
	diagnoseCmd.Flags().Int("samples", 5, "example findings to print per issue class")
	diagnoseCmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")

	rootCmd.AddCommand(diagnoseCmd)
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	tables, err := loadTables(parseConfig(cmd))
	if err != nil {
		return err
	}

	var rows []types.Row
	if len(args) == 1 {
		set, err := parse.ReadRows(args[0])
		if err != nil {
			return err
		}
		rows = set.Rows
	} else {
		s, err := store.Open(storeConfig(cmd))
		if err != nil {
			return err
		}
		defer s.Close()

		rows, err = s.All(cmd.Context())
		if err != nil {
			return err
		}
	}

	samples, _ := cmd.Flags().GetInt("samples")
	report := diagnose.Run(rows, tables)

	out := cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating report file %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}
	diagnose.Write(out, report, len(rows), samples)
	return nil
}
