// SPDX-License-Identifier: MIT

// Package store persists finished convergence runs in an embedded
// DuckDB database: one row set per dated run, holding the full
// iteration history of the export, import and flow frames so a run
// can be reloaded without re-solving.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"

	"github.com/spatialecon/regio/convergence"
	"github.com/spatialecon/regio/indices"
	"github.com/spatialecon/regio/table"
)

// ErrRunNotFound is returned when no run exists for the requested
// date.
var ErrRunNotFound = errors.New("store: run not found")

// Store manages run persistence via DuckDB.
type Store struct {
	DB *sql.DB
}

// New opens (or creates) the run database at the given directory.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("duckdb", filepath.Join(dataDir, "regio.duckdb"))
	if err != nil {
		return nil, fmt.Errorf("opening duckdb: %w", err)
	}

	s := &Store{DB: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			run_date TEXT PRIMARY KEY,
			spatial TEXT NOT NULL,
			iterations INTEGER NOT NULL,
			saved_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS export_history (
			run_date TEXT NOT NULL,
			col_idx INTEGER NOT NULL,
			col_name TEXT NOT NULL,
			row_idx INTEGER NOT NULL,
			region TEXT NOT NULL,
			sector TEXT NOT NULL,
			value DOUBLE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS import_history (
			run_date TEXT NOT NULL,
			col_idx INTEGER NOT NULL,
			col_name TEXT NOT NULL,
			row_idx INTEGER NOT NULL,
			region TEXT NOT NULL,
			sector TEXT NOT NULL,
			value DOUBLE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS flow_history (
			run_date TEXT NOT NULL,
			col_idx INTEGER NOT NULL,
			col_name TEXT NOT NULL,
			row_idx INTEGER NOT NULL,
			region TEXT NOT NULL,
			other_region TEXT NOT NULL,
			sector TEXT NOT NULL,
			value DOUBLE NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("executing migration %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// SaveRun inserts or replaces one dated run's full history.
func (s *Store) SaveRun(date time.Time, spatialName string, result *convergence.Result) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	day := date.Format(time.DateOnly)
	for _, del := range []string{
		"DELETE FROM runs WHERE run_date = ?",
		"DELETE FROM export_history WHERE run_date = ?",
		"DELETE FROM import_history WHERE run_date = ?",
		"DELETE FROM flow_history WHERE run_date = ?",
	} {
		if _, err := tx.Exec(del, day); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO runs (run_date, spatial, iterations, saved_at) VALUES (?, ?, ?, ?)",
		day, spatialName, result.Iterations, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	if err := saveRegionSectorFrame(tx, "export_history", day, result.Exports); err != nil {
		return err
	}
	// Imports may be nil on results injected from elsewhere.
	if result.Imports != nil {
		if err := saveRegionSectorFrame(tx, "import_history", day, result.Imports); err != nil {
			return err
		}
	}

	yStmt, err := tx.Prepare(`INSERT INTO flow_history
		(run_date, col_idx, col_name, row_idx, region, other_region, sector, value)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer yStmt.Close()
	yKeys := result.Flows.Keys()
	for ci, name := range result.Flows.Columns() {
		values, err := result.Flows.Column(name)
		if err != nil {
			return err
		}
		for ri, k := range yKeys {
			if _, err := yStmt.Exec(day, ci, name, ri, k.Region, k.Other, k.Sector, values[ri]); err != nil {
				return fmt.Errorf("inserting flow row %d: %w", ri, err)
			}
		}
	}

	return tx.Commit()
}

// LoadRun reconstructs one dated run's history frames.
// Errors: ErrRunNotFound.
func (s *Store) LoadRun(date time.Time) (*convergence.Result, error) {
	day := date.Format(time.DateOnly)

	var iterations int
	err := s.DB.QueryRow("SELECT iterations FROM runs WHERE run_date = ?", day).Scan(&iterations)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", day, ErrRunNotFound)
	}
	if err != nil {
		return nil, err
	}

	exports, err := loadRegionSectorFrame(s.DB, "export_history", day)
	if err != nil {
		return nil, err
	}
	// Nil when the run was saved without an import history.
	imports, err := loadRegionSectorFrame(s.DB, "import_history", day)
	if err != nil {
		return nil, err
	}
	flows, err := loadFlowFrame(s.DB, day)
	if err != nil {
		return nil, err
	}
	return &convergence.Result{Exports: exports, Imports: imports, Flows: flows, Iterations: iterations}, nil
}

// ListRuns returns the saved run dates in order.
func (s *Store) ListRuns() ([]time.Time, error) {
	rows, err := s.DB.Query("SELECT run_date FROM runs ORDER BY run_date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		d, err := time.Parse(time.DateOnly, day)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func saveRegionSectorFrame(tx *sql.Tx, tableName, day string, frame *table.Frame[indices.RegionSector]) error {
	stmt, err := tx.Prepare(`INSERT INTO ` + tableName + `
		(run_date, col_idx, col_name, row_idx, region, sector, value)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	keys := frame.Keys()
	for ci, name := range frame.Columns() {
		values, err := frame.Column(name)
		if err != nil {
			return err
		}
		for ri, k := range keys {
			if _, err := stmt.Exec(day, ci, name, ri, k.Region, k.Sector, values[ri]); err != nil {
				return fmt.Errorf("inserting %s row %d: %w", tableName, ri, err)
			}
		}
	}
	return nil
}

// loadRegionSectorFrame returns nil (not an error) when the table has
// no rows for the day.
func loadRegionSectorFrame(db *sql.DB, tableName, day string) (*table.Frame[indices.RegionSector], error) {
	rows, err := db.Query(`SELECT col_idx, col_name, region, sector, value
		FROM `+tableName+` WHERE run_date = ? ORDER BY col_idx, row_idx`, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []indices.RegionSector
	var names []string
	var columns [][]float64
	for rows.Next() {
		var ci int
		var name, region, sector string
		var value float64
		if err := rows.Scan(&ci, &name, &region, &sector, &value); err != nil {
			return nil, err
		}
		if ci == len(names) {
			names = append(names, name)
			columns = append(columns, nil)
		}
		if ci == 0 {
			keys = append(keys, indices.RegionSector{Region: region, Sector: sector})
		}
		columns[ci] = append(columns[ci], value)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	frame, err := table.NewFrame(keys)
	if err != nil {
		return nil, err
	}
	for i, name := range names {
		if err := frame.AddColumn(name, columns[i]); err != nil {
			return nil, err
		}
	}
	return frame, nil
}

func loadFlowFrame(db *sql.DB, day string) (*table.Frame[indices.RegionPairSector], error) {
	rows, err := db.Query(`SELECT col_idx, col_name, region, other_region, sector, value
		FROM flow_history WHERE run_date = ? ORDER BY col_idx, row_idx`, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []indices.RegionPairSector
	var names []string
	var columns [][]float64
	for rows.Next() {
		var ci int
		var name, region, other, sector string
		var value float64
		if err := rows.Scan(&ci, &name, &region, &other, &sector, &value); err != nil {
			return nil, err
		}
		if ci == len(names) {
			names = append(names, name)
			columns = append(columns, nil)
		}
		if ci == 0 {
			keys = append(keys, indices.RegionPairSector{Region: region, Other: other, Sector: sector})
		}
		columns[ci] = append(columns[ci], value)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	frame, err := table.NewFrame(keys)
	if err != nil {
		return nil, err
	}
	for i, name := range names {
		if err := frame.AddColumn(name, columns[i]); err != nil {
			return nil, err
		}
	}
	return frame, nil
}
