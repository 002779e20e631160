// SPDX-License-Identifier: MIT

// Command regio runs the multi-region input-output model from CSV
// inputs: build the dated model, run import/export convergence, print
// or persist the results. All algorithmic content lives in the library
// packages.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spatialecon/regio/config"
)

var (
	configPath string
	dataDir    string
	verbose    bool
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "regio",
	Short: "Multi-region input-output model with gravity trade flows",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "regio.toml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "Directory for the run database")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
