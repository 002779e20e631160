// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"sort"
	"time"
)

// TimeSeries is an ordered sequence of independent single-date Models.
// There is no cross-date coupling; it exists for bulk construction and
// bulk runs.
type TimeSeries struct {
	models []*Model
}

// NewTimeSeries orders the given models by date.
// Errors: ErrDuplicateDate.
func NewTimeSeries(models ...*Model) (*TimeSeries, error) {
	ts := &TimeSeries{}
	for _, m := range models {
		if err := ts.Insert(m); err != nil {
			return nil, err
		}
	}
	return ts, nil
}

// NewAnnualSeries builds one Model per year via the build callback,
// which receives each year in the given order (per-year configuration
// overrides happen inside the callback).
// Errors: ErrDuplicateDate; the first build error, wrapped with its
// year.
func NewAnnualSeries(years []int, build func(year int) (*Model, error)) (*TimeSeries, error) {
	ts := &TimeSeries{}
	for _, y := range years {
		m, err := build(y)
		if err != nil {
			return nil, fmt.Errorf("year %d: %w", y, err)
		}
		if err := ts.Insert(m); err != nil {
			return nil, err
		}
	}
	return ts, nil
}

// Len returns the number of models.
func (ts *TimeSeries) Len() int { return len(ts.models) }

// At returns the i-th model in date order. It panics when i is out of
// range, like a slice.
func (ts *TimeSeries) At(i int) *Model { return ts.models[i] }

// Insert adds a model, keeping date order.
// Errors: ErrNilInput, ErrDuplicateDate.
func (ts *TimeSeries) Insert(m *Model) error {
	if m == nil {
		return ErrNilInput
	}
	i := sort.Search(len(ts.models), func(i int) bool {
		return !ts.models[i].Date().Before(m.Date())
	})
	if i < len(ts.models) && ts.models[i].Date().Equal(m.Date()) {
		return fmt.Errorf("%s: %w", m.Date().Format(time.DateOnly), ErrDuplicateDate)
	}
	ts.models = append(ts.models, nil)
	copy(ts.models[i+1:], ts.models[i:])
	ts.models[i] = m
	return nil
}

// Slice returns a new series over the models in [from, to). The
// backing storage is copied, so inserting into the result never
// disturbs the parent.
func (ts *TimeSeries) Slice(from, to int) *TimeSeries {
	return &TimeSeries{models: append([]*Model(nil), ts.models[from:to]...)}
}

// Dates returns the model dates in order.
func (ts *TimeSeries) Dates() []time.Time {
	out := make([]time.Time, len(ts.models))
	for i, m := range ts.models {
		out[i] = m.Date()
	}
	return out
}

// Years returns the model years in order.
func (ts *TimeSeries) Years() []int {
	out := make([]int, len(ts.models))
	for i, m := range ts.models {
		out[i] = m.Date().Year()
	}
	return out
}

// CalcModels runs convergence on every model in date order, stopping
// at the first failure.
func (ts *TimeSeries) CalcModels() error {
	for _, m := range ts.models {
		if _, err := m.RunConvergence(); err != nil {
			return fmt.Errorf("%s: %w", m.Date().Format(time.DateOnly), err)
		}
	}
	return nil
}
