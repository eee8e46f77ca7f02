// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tajiklex/farhang/internal/parse"
	"github.com/tajiklex/farhang/internal/store"
	"github.com/tajiklex/farhang/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store <rows.yaml>",
	Short: "Ingest parsed rows into the dictionary database",
	Long: `Store loads a parsed row file into the SQLite dictionary database.
Ingestion is transactional and replaces any rows previously loaded from
the same source file, so re-running a corrected parse is safe.`,
	Args: cobra.ExactArgs(1),
	RunE: runStore,
}

func init() {
	storeCmd.Flags().String("data-dir", "", "directory holding the dictionary database (default: ./data)")

	rootCmd.AddCommand(storeCmd)
}

// storeConfig resolves the database location from the flag, the config
// file, or the default.
func storeConfig(cmd *cobra.Command) types.StoreConfig {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = viper.GetString("store.data_dir")
	}
	if dataDir == "" {
		dataDir = "data"
	}
	return types.StoreConfig{
		DataDir:    dataDir,
		MaxResults: viper.GetInt("store.max_results"),
	}
}

func runStore(cmd *cobra.Command, args []string) error {
	set, err := parse.ReadRows(args[0])
	if err != nil {
		return err
	}

	s, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	_, err = s.Ingest(cmd.Context(), set, cmd.OutOrStdout())
	return err
}
