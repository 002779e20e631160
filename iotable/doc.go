// SPDX-License-Identifier: MIT

// Package iotable defines the canonical national input-output table
// contract the model consumes, and the calculations derived directly
// from it.
//
// A Table is a square sector × sector matrix of intermediate flows
// plus named "dog-leg" rows and columns: aggregate rows (Total Sales,
// Imports, Gross Value Added, Net subsidies) indexed by sector
// column, and aggregate columns (final demand and export categories)
// indexed by sector row. Format-specific sources (ONS spreadsheets,
// OECD tables, historical reconstructions) are converted to this one
// struct by adapter code; the model never deals with raw source
// layouts.
//
// Derived calculations:
//
//   - TechnicalCoefficients — a[m,n] = flow[m,n] / finalOutput[n],
//     the per-unit input requirement of consuming sector n. A zero
//     final output yields Inf/NaN, which is deliberately not trapped.
//   - Aggregate — collapses a fine-grained sector classification
//     (e.g. SNA/ISIC letter codes) into aggregate sectors via a
//     prefix mapping that must not assign a code to two aggregates.
//   - National totals — X_m production, GVA, subsidies and investment
//     row/column aggregations, and the residual of national
//     production over the regional sum.
package iotable
