// SPDX-License-Identifier: MIT

package indices

// Axis label conventions shared with downstream consumers (result
// printers, the run store). The second region axis of a pair key is
// prefixed to distinguish destination from origin.
const (
	RegionAxis  = "Region"
	SectorAxis  = "Sector"
	OtherPrefix = "Other_"
)

// OtherAxis returns the label of the second region axis,
// e.g. OtherAxis(RegionAxis) == "Other_Region".
func OtherAxis(label string) string { return OtherPrefix + label }

// RegionSector keys a (region, sector) cell.
type RegionSector struct {
	Region string
	Sector string
}

// RegionPair keys a (region, other region) cell.
type RegionPair struct {
	Region string
	Other  string
}

// RegionPairSector keys an (origin region, destination region, sector)
// flow.
type RegionPairSector struct {
	Region string
	Other  string
	Sector string
}

// RegionSectorIndex returns the cartesian product of regions and
// sectors, region-major.
func RegionSectorIndex(regions, sectors []string) []RegionSector {
	out := make([]RegionSector, 0, len(regions)*len(sectors))
	for _, r := range regions {
		for _, s := range sectors {
			out = append(out, RegionSector{Region: r, Sector: s})
		}
	}
	return out
}

// RegionSectorIndexWithNational appends a synthetic national region
// after the regular regions, keyed under national.
func RegionSectorIndexWithNational(regions, sectors []string, national string) []RegionSector {
	return RegionSectorIndex(append(append([]string(nil), regions...), national), sectors)
}

// RegionPairIndex returns the cartesian product of regions with
// others. Self pairs are NOT excluded here; distance tables carry a
// zero diagonal that callers drop separately.
func RegionPairIndex(regions, others []string) []RegionPair {
	out := make([]RegionPair, 0, len(regions)*len(others))
	for _, r := range regions {
		for _, o := range others {
			out = append(out, RegionPair{Region: r, Other: o})
		}
	}
	return out
}

// RegionPairSectorIndex returns the region × region × sector key
// space, excluding origin == destination. The exclusion is a
// correctness invariant of the flow table: self flows must never be
// keyed.
func RegionPairSectorIndex(regions, sectors []string) []RegionPairSector {
	n := len(regions)
	if n > 0 {
		n--
	}
	out := make([]RegionPairSector, 0, len(regions)*n*len(sectors))
	for _, i := range regions {
		for _, j := range regions {
			if i == j {
				continue
			}
			for _, m := range sectors {
				out = append(out, RegionPairSector{Region: i, Other: j, Sector: m})
			}
		}
	}
	return out
}

// RegionPairSectorIndexWithNational appends a synthetic national
// region before building the flow key space; the national region
// participates in flows like any other, still excluding self pairs.
func RegionPairSectorIndexWithNational(regions, sectors []string, national string) []RegionPairSector {
	return RegionPairSectorIndex(append(append([]string(nil), regions...), national), sectors)
}
