// SPDX-License-Identifier: MIT

// Package indices builds the composite key spaces that address every
// table in the model:
//
//   - RegionSector     — region × sector (production, imports,
//     exports, final demand, convergence e/m series).
//   - RegionPair       — region × region (distance tables). The second
//     axis is labelled with the "Other_" prefix.
//   - RegionPairSector — region × region × sector (trade flows). Self
//     pairs (origin == destination) are excluded: no region trades
//     with itself in the flow table, and every consumer of the key
//     space relies on that exclusion.
//
// Key generation is pure and deterministic: outer loop region, inner
// loop sector, in the caller-supplied order. Empty inputs yield empty
// key spaces without error.
package indices
