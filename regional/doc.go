// SPDX-License-Identifier: MIT

// Package regional scales national per-sector totals down to regions
// in proportion to regional employment share:
//
//	value[region, sector] = national[sector] ·
//	    employment[region, sector] / nationalEmployment[sector]
//
// The same rule serves production (X_i^m), imports (M_i^m), final
// demand (F_i^m) and exports (E_i^m); named wrappers exist for each so
// call sites read like the model equations. No check forces regional
// employment to sum to the national series — that is an assumption of
// the source data, and a shortfall simply allocates less than the
// national total.
//
// IntermediateDemand implements the summed intermediate demand term
// x_i^{mn}: for each region the production vector is pushed through
// the technical-coefficient matrix, x[i,m] = Σ_n a[n,m]·X[i,n].
package regional
