// SPDX-License-Identifier: MIT

package iotable

import (
	"fmt"
	"strings"

	"github.com/spatialecon/regio/table"
)

// SectorGroup maps one aggregate sector name to the fine-grained code
// prefixes it absorbs.
type SectorGroup struct {
	Name  string
	Codes []string
}

// Aggregation is an ordered list of sector groups. Order matters: the
// aggregated table's sector order follows the group order.
type Aggregation []SectorGroup

// Names returns the aggregate sector names in group order.
func (a Aggregation) Names() []string {
	out := make([]string, len(a))
	for i, g := range a {
		out[i] = g.Name
	}
	return out
}

// Validate checks the aggregation is non-empty and no code prefix is
// claimed twice. Codes absent from a particular source table are
// permitted (a source may not carry every section).
// Errors: ErrEmptyAggregation, ErrCodeReused.
func (a Aggregation) Validate() error {
	if len(a) == 0 {
		return ErrEmptyAggregation
	}
	seen := make(map[string]string)
	for _, g := range a {
		for _, c := range g.Codes {
			if prior, dup := seen[c]; dup {
				return fmt.Errorf("code %q in %q and %q: %w", c, prior, g.Name, ErrCodeReused)
			}
			seen[c] = g.Name
		}
	}
	return nil
}

// groupOf returns the index of the group whose code prefix matches the
// fine-grained sector label, or -1 when no group claims it. A label
// matched by two groups is a partition violation.
func (a Aggregation) groupOf(label string) (int, error) {
	found := -1
	for gi, g := range a {
		for _, c := range g.Codes {
			if strings.HasPrefix(label, c) {
				if found >= 0 && found != gi {
					return 0, fmt.Errorf("label %q: %w", label, ErrCodeReused)
				}
				found = gi
			}
		}
	}
	return found, nil
}

// Aggregate collapses a fine-grained Table into the aggregate sector
// space: core cells, dog-leg rows and dog-leg columns are summed per
// group. Fine sectors claimed by no group are dropped.
// Errors: ErrEmptyAggregation, ErrCodeReused.
func Aggregate(t *Table, agg Aggregation) (*Table, error) {
	if err := agg.Validate(); err != nil {
		return nil, err
	}
	fine := t.Sectors()
	groups := make([]int, len(fine))
	for i, label := range fine {
		gi, err := agg.groupOf(label)
		if err != nil {
			return nil, err
		}
		groups[i] = gi
	}

	names := agg.Names()
	core, err := table.NewMatrix(names, names)
	if err != nil {
		return nil, err
	}
	for i, from := range fine {
		if groups[i] < 0 {
			continue
		}
		for j, to := range fine {
			if groups[j] < 0 {
				continue
			}
			v, err := t.core.At(from, to)
			if err != nil {
				return nil, err
			}
			prior, err := core.At(names[groups[i]], names[groups[j]])
			if err != nil {
				return nil, err
			}
			if err := core.Set(names[groups[i]], names[groups[j]], prior+v); err != nil {
				return nil, err
			}
		}
	}

	out, err := New(core)
	if err != nil {
		return nil, err
	}
	if err := aggregateDogLegs(t, out, agg, groups, fine); err != nil {
		return nil, err
	}
	return out, nil
}

func aggregateDogLegs(src, dst *Table, agg Aggregation, groups []int, fine []string) error {
	names := agg.Names()
	sumInto := func(v *table.Vector) (*table.Vector, error) {
		out, err := table.NewVector(names)
		if err != nil {
			return nil, err
		}
		for i, label := range fine {
			if groups[i] < 0 {
				continue
			}
			x, err := v.At(label)
			if err != nil {
				return nil, err
			}
			prior, err := out.At(names[groups[i]])
			if err != nil {
				return nil, err
			}
			if err := out.Set(names[groups[i]], prior+x); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
	for _, name := range src.DogLegRowNames() {
		v, err := src.DogLegRow(name)
		if err != nil {
			return err
		}
		summed, err := sumInto(v)
		if err != nil {
			return err
		}
		if err := dst.AddDogLegRow(name, summed); err != nil {
			return err
		}
	}
	for _, name := range src.DogLegColumnNames() {
		v, err := src.DogLegColumn(name)
		if err != nil {
			return err
		}
		summed, err := sumInto(v)
		if err != nil {
			return err
		}
		if err := dst.AddDogLegColumn(name, summed); err != nil {
			return err
		}
	}
	return nil
}
