// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tajiklex/farhang/internal/store"
	"github.com/tajiklex/farhang/pkg/types"
)

var queryCmd = &cobra.Command{
	Use:   "query [search terms]",
	Short: "Query the dictionary database",
	Long: `Query looks entries up in the stored dictionary. Positional arguments
run a full-text search over headwords and sense texts; --headword filters
exactly (or by prefix with --prefix), and --etymology and --register
filter by expanded marker. With --stats, query prints coverage statistics
instead of entries.`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().String("data-dir", "", "directory holding the dictionary database (default: ./data)")
	queryCmd.Flags().String("headword", "", "filter by headword")
	queryCmd.Flags().Bool("prefix", false, "make the headword filter a prefix match")
	queryCmd.Flags().String("etymology", "", "filter by expanded etymology marker")
	queryCmd.Flags().String("register", "", "filter by expanded register marker")
	queryCmd.Flags().IntP("limit", "n", 0, "maximum number of results")
	queryCmd.Flags().Bool("stats", false, "print coverage statistics instead of entries")

	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	s, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	if showStats, _ := cmd.Flags().GetBool("stats"); showStats {
		stats, err := s.CollectStats(cmd.Context())
		if err != nil {
			return err
		}
		printStoreStats(cmd, stats)
		return nil
	}

	opts := queryOptions(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("nothing to query: give search terms or a filter flag")
	}

	results, err := s.Retrieve(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no entries found")
		return nil
	}
	for _, r := range results {
		printRow(cmd, r)
	}
	return nil
}

func queryOptions(cmd *cobra.Command, args []string) store.QueryOptions {
	var opts store.QueryOptions
	if len(args) > 0 {
		search := args[0]
		for _, a := range args[1:] {
			search += " " + a
		}
		opts.Search = search
	}
	opts.Headword, _ = cmd.Flags().GetString("headword")
	opts.Prefix, _ = cmd.Flags().GetBool("prefix")
	opts.Etymology, _ = cmd.Flags().GetString("etymology")
	opts.Register, _ = cmd.Flags().GetString("register")
	opts.MaxResults, _ = cmd.Flags().GetInt("limit")
	return opts
}

// printRow renders one dictionary row: the header line carries the
// headword and whatever optional fields the entry has, the sense follows
// indented.
func printRow(cmd *cobra.Command, r types.Row) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s", r.Headword)
	if r.Gloss != "" {
		fmt.Fprintf(out, " [%s]", r.Gloss)
	}
	if r.EtymologyMarker != "" {
		fmt.Fprintf(out, " (%s)", r.EtymologyMarker)
	}
	if r.RegisterMarker != "" {
		fmt.Fprintf(out, " <%s>", r.RegisterMarker)
	}
	fmt.Fprintln(out)

	if r.Numbered() {
		fmt.Fprintf(out, "  %d. %s\n", r.SenseNumber, r.SenseText)
	} else {
		fmt.Fprintf(out, "  %s\n", r.SenseText)
	}
}

func printStoreStats(cmd *cobra.Command, stats store.Stats) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "rows: %d across %d headwords\n", stats.TotalRows, stats.Headwords)
	if stats.TotalRows > 0 {
		fmt.Fprintf(out, "coverage: gloss %.1f%%, etymology %.1f%%, register %.1f%%, numbered %.1f%%\n",
			percent(stats.WithGloss, stats.TotalRows),
			percent(stats.WithEtymology, stats.TotalRows),
			percent(stats.WithRegister, stats.TotalRows),
			percent(stats.Numbered, stats.TotalRows))
	}

	fmt.Fprintln(out, "top etymology markers:")
	for _, mc := range stats.TopEtymology {
		fmt.Fprintf(out, "  %-24s %d\n", mc.Marker, mc.Count)
	}
	fmt.Fprintln(out, "top register markers:")
	for _, mc := range stats.TopRegister {
		fmt.Fprintf(out, "  %-24s %d\n", mc.Marker, mc.Count)
	}
}
