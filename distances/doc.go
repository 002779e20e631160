// SPDX-License-Identifier: MIT

// Package distances computes region-to-region distance tables from
// point geometries.
//
// The model works in a projected metric coordinate reference system:
// each region is a Point in metres, pairwise distances are Euclidean
// and divided by a unit factor (default 1000, metres → kilometres).
// Table returns the full region × region matrix with a zero diagonal;
// Pairs flattens it to a (region, other region) frame with the
// zero-distance self pairs dropped, the shape the spatial interaction
// model consumes.
//
// Haversine is provided for sources that only carry geographic
// (latitude/longitude) coordinates and cannot be reprojected upstream.
package distances
