// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/spatialecon/regio/model"
	"github.com/spatialecon/regio/store"
)

var (
	runInputsDir string
	runDate      string
	runSave      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build the model for one date, run convergence and report the final exports",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := time.Parse(time.DateOnly, runDate)
		if err != nil {
			return fmt.Errorf("parsing --date: %w", err)
		}

		in, err := loadInputs(runInputsDir, date)
		if err != nil {
			return fmt.Errorf("loading inputs: %w", err)
		}
		logVerbose("loaded inputs from %s", runInputsDir)

		m, err := model.Build(in, cfg.ModelOptions())
		if err != nil {
			return fmt.Errorf("building model: %w", err)
		}
		logVerbose("spatial model: %s", m.Spatial().Name())

		result, err := m.RunConvergence()
		if err != nil {
			return fmt.Errorf("running convergence: %w", err)
		}

		keys, values, err := m.FinalExports()
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d iterations, %d region-sector pairs\n",
			date.Format(time.DateOnly), result.Iterations, len(keys))
		for i, k := range keys {
			fmt.Printf("  %-12s %-48s %14.4f\n", k.Region, k.Sector, values[i])
		}

		deltas, err := result.Deltas()
		if err != nil {
			return err
		}
		last := deltas[len(deltas)-1]
		fmt.Printf("final pass movement: mean %.6g, max %.6g\n", last.Mean, last.Max)

		if runSave {
			s, err := store.New(dataDir)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.SaveRun(date, m.Spatial().Name(), result); err != nil {
				return fmt.Errorf("saving run: %w", err)
			}
			fmt.Printf("saved run %s to %s\n", date.Format(time.DateOnly), dataDir)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runInputsDir, "inputs", "inputs", "Directory holding the CSV input files")
	runCmd.Flags().StringVar(&runDate, "date", "2017-12-01", "Run date (YYYY-MM-DD)")
	runCmd.Flags().BoolVar(&runSave, "save", false, "Persist the run history to the run database")
	rootCmd.AddCommand(runCmd)
}
