// SPDX-License-Identifier: MIT

// Package regio is a multi-region, multi-sector economic input-output
// model with gravity-style trade-flow estimation.
//
// It reconciles regional production, consumption and inter-city trade
// flows against a national input-output table: national sector totals
// are allocated to regions by employment share, a distance-decay
// spatial interaction model distributes flows across the region
// network, and a fixed-iteration import/export engine balances the
// whole system while retaining the full iteration history.
//
// The packages layer bottom-up:
//
//	table/       — labelled vectors, matrices and keyed column frames
//	indices/     — region × sector composite key spaces
//	iotable/     — the national IO table, aggregation, coefficients
//	regional/    — employment-share allocation of national totals
//	distances/   — centroid distance tables
//	gravity/     — singly and doubly constrained interaction models
//	convergence/ — exogenous constraints and the fixed-point engine
//	model/       — single-date orchestration and time series
//	config/      — TOML run configuration
//	store/       — DuckDB run persistence
//	cmd/regio/   — the command-line front end
//
// Numeric degeneracy (zero sector output, zero employment) propagates
// Inf/NaN untrapped to stay faithful to the reference economic model;
// the table package offers explicit CheckFinite guards for callers who
// want them.
package regio
