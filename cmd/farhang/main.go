// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the farhang CLI, the pipeline that
// reconstructs a structured Tajik dictionary from a mangled PDF text
// extraction. Each pipeline stage is a subcommand: clean, parse, store,
// query, and diagnose.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the farhang CLI.
var rootCmd = &cobra.Command{
	Use:   "farhang",
	Short: "Reconstruct a structured Tajik dictionary from scanned-PDF text",
	Long: `farhang rebuilds structured dictionary entries from the display-order,
encoding-mangled text that PDF extraction produces for the Nazarzoda
Tajik dictionary.

The pipeline runs in stages, each a subcommand: clean repairs encodings
and right-to-left ordering, parse segments entries and extracts fields,
store ingests parsed rows into SQLite, and query and diagnose read the
result back.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./farhang.yaml or ~/.config/farhang/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("farhang")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "farhang"))
		}
	}

	viper.SetEnvPrefix("FARHANG")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
