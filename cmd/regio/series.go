// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/spatialecon/regio/model"
	"github.com/spatialecon/regio/store"
)

var (
	seriesInputsDir string
	seriesYears     string
	seriesSave      bool
)

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Run the model for several years in one go",
	Long: `Run the model for several years. Each year reads its CSV inputs
from <inputs>/<year>/ and is dated 1 December of that year, matching
the reference employment snapshots.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		years, err := parseYears(seriesYears)
		if err != nil {
			return err
		}

		ts, err := model.NewAnnualSeries(years, func(year int) (*model.Model, error) {
			date := time.Date(year, time.December, 1, 0, 0, 0, 0, time.UTC)
			in, err := loadInputs(filepath.Join(seriesInputsDir, strconv.Itoa(year)), date)
			if err != nil {
				return nil, err
			}
			return model.Build(in, cfg.ModelOptions())
		})
		if err != nil {
			return fmt.Errorf("building series: %w", err)
		}

		if err := ts.CalcModels(); err != nil {
			return fmt.Errorf("running series: %w", err)
		}

		var s *store.Store
		if seriesSave {
			if s, err = store.New(dataDir); err != nil {
				return err
			}
			defer s.Close()
		}

		for i := 0; i < ts.Len(); i++ {
			m := ts.At(i)
			result, err := m.Result()
			if err != nil {
				return err
			}
			keys, _, err := m.FinalExports()
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d iterations, %d region-sector pairs\n",
				m.Date().Format(time.DateOnly), result.Iterations, len(keys))
			if s != nil {
				if err := s.SaveRun(m.Date(), m.Spatial().Name(), result); err != nil {
					return fmt.Errorf("saving %s: %w", m.Date().Format(time.DateOnly), err)
				}
			}
		}
		return nil
	},
}

func parseYears(spec string) ([]int, error) {
	parts := strings.Split(spec, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		y, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parsing --years %q: %w", p, err)
		}
		out = append(out, y)
	}
	return out, nil
}

func init() {
	seriesCmd.Flags().StringVar(&seriesInputsDir, "inputs", "inputs", "Directory holding one CSV input directory per year")
	seriesCmd.Flags().StringVar(&seriesYears, "years", "", "Comma-separated years to run (required)")
	seriesCmd.MarkFlagRequired("years")
	seriesCmd.Flags().BoolVar(&seriesSave, "save", false, "Persist each run to the run database")
	rootCmd.AddCommand(seriesCmd)
}
