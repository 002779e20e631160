// SPDX-License-Identifier: MIT

package distances

import (
	"errors"
	"fmt"
	"math"

	"github.com/spatialecon/regio/indices"
	"github.com/spatialecon/regio/table"
)

// DefaultUnitFactor converts projected metres to kilometres.
const DefaultUnitFactor = 1000.0

// DistanceColumn names the distance column of the pair frame.
const DistanceColumn = "Distance"

// earthRadiusKm is the mean Earth radius used by Haversine.
const earthRadiusKm = 6371.0

// ErrMissingGeometry is returned when a requested region has no point
// geometry.
var ErrMissingGeometry = errors.New("distances: missing geometry")

// Point is a projected coordinate in metres.
type Point struct {
	X float64
	Y float64
}

// Euclidean returns the straight-line distance between two projected
// points, in the points' unit (metres).
func Euclidean(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Haversine returns the great-circle distance in kilometres between
// two geographic coordinates given in decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const degToRad = math.Pi / 180
	dLat := (lat2 - lat1) * degToRad
	dLon := (lon2 - lon1) * degToRad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// Table builds the region × region distance matrix from point
// geometries, dividing by unitFactor (pass DefaultUnitFactor for km).
// The diagonal is zero. Regions without a geometry fail the whole
// table; there is no partial fill.
// Errors: ErrMissingGeometry.
func Table(points map[string]Point, regions []string, unitFactor float64) (*table.Matrix, error) {
	out, err := table.NewMatrix(regions, regions)
	if err != nil {
		return nil, err
	}
	for _, r := range regions {
		if _, ok := points[r]; !ok {
			return nil, fmt.Errorf("region %q: %w", r, ErrMissingGeometry)
		}
	}
	for _, r := range regions {
		for _, o := range regions {
			if r == o {
				continue
			}
			d := Euclidean(points[r], points[o]) / unitFactor
			if err := out.Set(r, o, d); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Pairs flattens a distance matrix into a (region, other region)
// frame with a single Distance column, dropping zero-distance self
// pairs.
func Pairs(dist *table.Matrix) (*table.Frame[indices.RegionPair], error) {
	var keys []indices.RegionPair
	var values []float64
	for _, k := range indices.RegionPairIndex(dist.Rows(), dist.Cols()) {
		d, err := dist.At(k.Region, k.Other)
		if err != nil {
			return nil, err
		}
		if d == 0 {
			continue
		}
		keys = append(keys, k)
		values = append(values, d)
	}
	f, err := table.NewFrame(keys)
	if err != nil {
		return nil, err
	}
	if err := f.AddColumn(DistanceColumn, values); err != nil {
		return nil, err
	}
	return f, nil
}
