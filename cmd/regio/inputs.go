// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/spatialecon/regio/distances"
	"github.com/spatialecon/regio/iotable"
	"github.com/spatialecon/regio/model"
	"github.com/spatialecon/regio/table"
)

var errBadCSV = errors.New("regio: malformed csv input")

// inputFiles names the per-run CSV inputs inside one directory.
const (
	ioTableFile            = "io_table.csv"
	employmentFile         = "employment.csv"
	nationalEmploymentFile = "national_employment.csv"
	centroidsFile          = "centroids.csv"
)

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) < 2 || len(records[0]) < 2 {
		return nil, fmt.Errorf("%s: %w", path, errBadCSV)
	}
	return records, nil
}

func parseFloat(path, cell string) (float64, error) {
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q: %w", path, cell, errBadCSV)
	}
	return v, nil
}

// loadMatrixCSV reads a labelled matrix: header row of column labels
// (first cell ignored), one label-led row per matrix row.
func loadMatrixCSV(path string) (*table.Matrix, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	cols := records[0][1:]
	rows := make([]string, 0, len(records)-1)
	values := make([]float64, 0, (len(records)-1)*len(cols))
	for _, rec := range records[1:] {
		if len(rec) != len(cols)+1 {
			return nil, fmt.Errorf("%s: row %q: %w", path, rec[0], errBadCSV)
		}
		rows = append(rows, rec[0])
		for _, cell := range rec[1:] {
			v, err := parseFloat(path, cell)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}
	return table.NewMatrixFrom(rows, cols, values)
}

// loadVectorCSV reads a two-column label,value file with a header row.
func loadVectorCSV(path string) (*table.Vector, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(records)-1)
	values := make([]float64, 0, len(records)-1)
	for _, rec := range records[1:] {
		v, err := parseFloat(path, rec[1])
		if err != nil {
			return nil, err
		}
		labels = append(labels, rec[0])
		values = append(values, v)
	}
	return table.NewVectorFrom(labels, values)
}

// loadIOTableCSV reads the national table: the sector block is the
// leading square of row/column labels that agree; everything past it
// becomes dog-leg rows and columns.
func loadIOTableCSV(path string) (*iotable.Table, error) {
	full, err := loadMatrixCSV(path)
	if err != nil {
		return nil, err
	}
	rows, cols := full.Rows(), full.Cols()
	n := 0
	for n < len(rows) && n < len(cols) && rows[n] == cols[n] {
		n++
	}
	if n == 0 {
		return nil, fmt.Errorf("%s: no sector block: %w", path, errBadCSV)
	}
	sectors := rows[:n]

	core, err := table.NewMatrix(sectors, sectors)
	if err != nil {
		return nil, err
	}
	for _, r := range sectors {
		for _, c := range sectors {
			v, err := full.At(r, c)
			if err != nil {
				return nil, err
			}
			if err := core.Set(r, c, v); err != nil {
				return nil, err
			}
		}
	}
	nat, err := iotable.New(core)
	if err != nil {
		return nil, err
	}

	for _, name := range rows[n:] {
		v, err := sectorSlice(full, sectors, name, true)
		if err != nil {
			return nil, err
		}
		if err := nat.AddDogLegRow(name, v); err != nil {
			return nil, err
		}
	}
	for _, name := range cols[n:] {
		v, err := sectorSlice(full, sectors, name, false)
		if err != nil {
			return nil, err
		}
		if err := nat.AddDogLegColumn(name, v); err != nil {
			return nil, err
		}
	}
	return nat, nil
}

func sectorSlice(full *table.Matrix, sectors []string, name string, isRow bool) (*table.Vector, error) {
	out, err := table.NewVector(sectors)
	if err != nil {
		return nil, err
	}
	for _, s := range sectors {
		var v float64
		if isRow {
			v, err = full.At(name, s)
		} else {
			v, err = full.At(s, name)
		}
		if err != nil {
			return nil, err
		}
		if err := out.Set(s, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// loadCentroidsCSV reads region,x,y projected coordinates and returns
// the km distance matrix over exactly the given regions; a configured
// region without a centroid fails the whole table.
func loadCentroidsCSV(path string, regions []string, unitFactor float64) (*table.Matrix, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	points := make(map[string]distances.Point, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 3 {
			return nil, fmt.Errorf("%s: row %q: %w", path, rec[0], errBadCSV)
		}
		x, err := parseFloat(path, rec[1])
		if err != nil {
			return nil, err
		}
		y, err := parseFloat(path, rec[2])
		if err != nil {
			return nil, err
		}
		points[rec[0]] = distances.Point{X: x, Y: y}
	}
	return distances.Table(points, regions, unitFactor)
}

// loadInputs assembles the model inputs from one directory of CSVs and
// applies the configured region set and sector aggregation: the
// national table is collapsed into the configured aggregate sectors
// when it arrives with fine-grained codes, and the employment and
// distance tables are restricted to exactly the configured regions. A
// configured region absent from the inputs fails the load.
func loadInputs(dir string, date time.Time) (model.Inputs, error) {
	join := func(name string) string { return filepath.Join(dir, name) }
	regions := cfg.RegionNames()

	national, err := loadIOTableCSV(join(ioTableFile))
	if err != nil {
		return model.Inputs{}, err
	}
	if !slices.Equal(national.Sectors(), cfg.SectorNames()) {
		if national, err = iotable.Aggregate(national, cfg.Aggregation()); err != nil {
			return model.Inputs{}, fmt.Errorf("aggregating %s into configured [[sectors]]: %w", ioTableFile, err)
		}
	}
	employment, err := loadMatrixCSV(join(employmentFile))
	if err != nil {
		return model.Inputs{}, err
	}
	if employment, err = employment.Select(regions, employment.Cols()); err != nil {
		return model.Inputs{}, fmt.Errorf("restricting %s to configured [regions]: %w", employmentFile, err)
	}
	nationalEmployment, err := loadVectorCSV(join(nationalEmploymentFile))
	if err != nil {
		return model.Inputs{}, err
	}
	dist, err := loadCentroidsCSV(join(centroidsFile), regions, cfg.Model.DistanceUnitFactor)
	if err != nil {
		return model.Inputs{}, fmt.Errorf("building distances for configured [regions]: %w", err)
	}
	return model.Inputs{
		Date:               date,
		National:           national,
		Employment:         employment,
		NationalEmployment: nationalEmployment,
		Distances:          dist,
	}, nil
}
