// SPDX-License-Identifier: MIT

// Package gravity implements the spatial interaction submodels that
// distribute economic flows across a distance-weighted network of
// regions and sectors.
//
// AttractionConstrained is the load-bearing variant: a singly
// (destination) constrained gravity model. For every origin i,
// destination j and sector m it computes an exponential distance
// decay exp(-β·c_ij), weights it by origin employment Q_i^m, and
// normalises by destination so that the balancing factor
//
//	B_j^m = 1 / Σ_i Q_i^m · exp(-β·c_ij)
//
// makes the baseline flow weights B_j^m · Q_i^m · exp(-β·c_ij) sum to
// one over origins for each (destination, sector). The convergence
// engine later scales these fixed weights by the evolving import
// estimates.
//
// DoublyConstrained balances both margins by iterative proportional
// fitting of the A_i^m and B_j^m factors under a power-law decay
// c_ij^-β, following the historical formulation (equation 16 and its
// transpose); it is retained for experimentation and is not used by
// the default model configuration.
//
// Both models compute everything in one deterministic pass at
// construction. A missing distance or employment entry fails
// construction outright; there is no partial fill.
package gravity
