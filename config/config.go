// SPDX-License-Identifier: MIT

// Package config holds the user-facing run configuration: the model
// constants, the region set with parent macro-region labels, and the
// sector aggregation. Values are plain TOML, immutable after Load.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/spatialecon/regio/convergence"
	"github.com/spatialecon/regio/distances"
	"github.com/spatialecon/regio/gravity"
	"github.com/spatialecon/regio/iotable"
	"github.com/spatialecon/regio/model"
	"github.com/spatialecon/regio/regional"
)

var (
	// ErrNoRegions is returned when validation finds an empty region
	// set.
	ErrNoRegions = errors.New("config: no regions configured")

	// ErrNoSectors is returned when validation finds an empty sector
	// aggregation.
	ErrNoSectors = errors.New("config: no sector aggregation configured")

	// ErrBadValue is returned for out-of-range numeric settings.
	ErrBadValue = errors.New("config: value out of range")
)

// Config holds one run's configuration.
type Config struct {
	Model ModelConfig `toml:"model"`

	// Regions maps each modelled region to its parent macro-region
	// label (e.g. Leeds → "Yorkshire and the Humber").
	Regions map[string]string `toml:"regions"`

	// Sectors is the ordered sector aggregation: each aggregate owns a
	// set of fine-grained code prefixes.
	Sectors []SectorGroup `toml:"sectors"`
}

type ModelConfig struct {
	// Beta is the gravity distance-decay coefficient.
	Beta float64 `toml:"beta"`

	// Iterations is the fixed convergence pass count.
	Iterations int `toml:"iterations"`

	// InitialExportProportion seeds the convergence engine.
	InitialExportProportion float64 `toml:"initial_export_proportion"`

	// DistanceUnitFactor divides source distances into km (1000 for
	// metre-based projections).
	DistanceUnitFactor float64 `toml:"distance_unit_factor"`
}

type SectorGroup struct {
	Name  string   `toml:"name"`
	Codes []string `toml:"codes"`
}

// Defaults returns the built-in configuration: the three-city UK
// region set and the SNA/ISIC A*10 sector aggregation.
func Defaults() *Config {
	cfg := &Config{
		Model: ModelConfig{
			Beta:                    gravity.DefaultBeta,
			Iterations:              convergence.DefaultIterations,
			InitialExportProportion: regional.DefaultInitialExportProportion,
			DistanceUnitFactor:      distances.DefaultUnitFactor,
		},
		Regions: map[string]string{
			"Leeds":      "Yorkshire and the Humber",
			"Liverpool":  "North West",
			"Manchester": "North West",
		},
	}
	for _, g := range iotable.AggregationA10 {
		cfg.Sectors = append(cfg.Sectors, SectorGroup{
			Name:  g.Name,
			Codes: append([]string(nil), g.Codes...),
		})
	}
	return cfg
}

// Load reads a TOML config file over the defaults. A missing file
// returns the defaults without error.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and non-empty region/sector sets.
// Errors: ErrNoRegions, ErrNoSectors, ErrBadValue.
func (c *Config) Validate() error {
	if len(c.Regions) == 0 {
		return ErrNoRegions
	}
	if len(c.Sectors) == 0 {
		return ErrNoSectors
	}
	if c.Model.Beta < 0 {
		return fmt.Errorf("beta %v: %w", c.Model.Beta, ErrBadValue)
	}
	if c.Model.Iterations <= 0 {
		return fmt.Errorf("iterations %d: %w", c.Model.Iterations, ErrBadValue)
	}
	if c.Model.InitialExportProportion <= 0 {
		return fmt.Errorf("initial_export_proportion %v: %w",
			c.Model.InitialExportProportion, ErrBadValue)
	}
	if c.Model.DistanceUnitFactor <= 0 {
		return fmt.Errorf("distance_unit_factor %v: %w",
			c.Model.DistanceUnitFactor, ErrBadValue)
	}
	return nil
}

// RegionNames returns the configured regions in sorted order.
func (c *Config) RegionNames() []string {
	out := make([]string, 0, len(c.Regions))
	for name := range c.Regions {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// SectorNames returns the aggregate sector names in configured order.
func (c *Config) SectorNames() []string {
	out := make([]string, len(c.Sectors))
	for i, g := range c.Sectors {
		out[i] = g.Name
	}
	return out
}

// Aggregation converts the configured sector groups into the
// aggregation applied to national tables.
func (c *Config) Aggregation() iotable.Aggregation {
	out := make(iotable.Aggregation, len(c.Sectors))
	for i, g := range c.Sectors {
		out[i] = iotable.SectorGroup{
			Name:  g.Name,
			Codes: append([]string(nil), g.Codes...),
		}
	}
	return out
}

// ModelOptions translates the configuration into run options.
func (c *Config) ModelOptions() *model.Options {
	return &model.Options{
		Beta:                    c.Model.Beta,
		InitialExportProportion: c.Model.InitialExportProportion,
		Iterations:              c.Model.Iterations,
	}
}
