// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"math"
)

// Vector is an ordered label → float64 series. The label order is
// fixed at construction and shared by all derived vectors.
type Vector struct {
	ax   *axis
	data []float64
}

// NewVector builds a zero-valued Vector over labels.
// Errors: ErrNoLabels, ErrDuplicateLabel.
func NewVector(labels []string) (*Vector, error) {
	ax, err := newAxis(labels)
	if err != nil {
		return nil, err
	}
	return &Vector{ax: ax, data: make([]float64, ax.len())}, nil
}

// NewVectorFrom builds a Vector over labels with the given values.
// Errors: ErrNoLabels, ErrDuplicateLabel, ErrLengthMismatch.
func NewVectorFrom(labels []string, values []float64) (*Vector, error) {
	v, err := NewVector(labels)
	if err != nil {
		return nil, err
	}
	if len(values) != v.Len() {
		return nil, fmt.Errorf("%d values for %d labels: %w", len(values), v.Len(), ErrLengthMismatch)
	}
	copy(v.data, values)
	return v, nil
}

// Len returns the number of labels.
func (v *Vector) Len() int { return v.ax.len() }

// Labels returns the label order as a copy.
func (v *Vector) Labels() []string { return v.ax.list() }

// At returns the value for label.
// Errors: ErrUnknownLabel.
func (v *Vector) At(label string) (float64, error) {
	i, ok := v.ax.index(label)
	if !ok {
		return 0, fmt.Errorf("%q: %w", label, ErrUnknownLabel)
	}
	return v.data[i], nil
}

// Set assigns the value for label.
// Errors: ErrUnknownLabel.
func (v *Vector) Set(label string, value float64) error {
	i, ok := v.ax.index(label)
	if !ok {
		return fmt.Errorf("%q: %w", label, ErrUnknownLabel)
	}
	v.data[i] = value
	return nil
}

// Values returns the values in label order as a copy.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)
	return out
}

// Sum returns the total of all values.
func (v *Vector) Sum() float64 {
	var s float64
	for _, x := range v.data {
		s += x
	}
	return s
}

// Scale returns a new Vector with every value multiplied by k.
func (v *Vector) Scale(k float64) *Vector {
	out := v.Clone()
	for i := range out.data {
		out.data[i] *= k
	}
	return out
}

// Add returns v + other elementwise. Label sets must match in order.
// Errors: ErrShapeMismatch.
func (v *Vector) Add(other *Vector) (*Vector, error) {
	if !v.ax.equal(other.ax) {
		return nil, ErrShapeMismatch
	}
	out := v.Clone()
	for i := range out.data {
		out.data[i] += other.data[i]
	}
	return out, nil
}

// Sub returns v - other elementwise. Label sets must match in order.
// Errors: ErrShapeMismatch.
func (v *Vector) Sub(other *Vector) (*Vector, error) {
	if !v.ax.equal(other.ax) {
		return nil, ErrShapeMismatch
	}
	out := v.Clone()
	for i := range out.data {
		out.data[i] -= other.data[i]
	}
	return out, nil
}

// Clone returns an independent copy sharing no mutable state.
func (v *Vector) Clone() *Vector {
	out := &Vector{ax: v.ax, data: make([]float64, len(v.data))}
	copy(out.data, v.data)
	return out
}

// CheckFinite reports ErrNotFinite if any value is NaN or ±Inf.
// The fidelity path never calls this; it is an opt-in guard.
func (v *Vector) CheckFinite() error {
	for i, x := range v.data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%q: %w", v.ax.labels[i], ErrNotFinite)
		}
	}
	return nil
}
