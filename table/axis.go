// SPDX-License-Identifier: MIT

package table

// axis is an ordered, duplicate-free label set with O(1) position
// lookup. It is the shared index machinery behind Vector and Matrix.
type axis struct {
	labels []string
	pos    map[string]int
}

// newAxis copies labels and builds the position map.
// Returns ErrNoLabels on an empty set and ErrDuplicateLabel on repeats.
func newAxis(labels []string) (*axis, error) {
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	a := &axis{
		labels: make([]string, len(labels)),
		pos:    make(map[string]int, len(labels)),
	}
	for i, l := range labels {
		if _, dup := a.pos[l]; dup {
			return nil, ErrDuplicateLabel
		}
		a.labels[i] = l
		a.pos[l] = i
	}
	return a, nil
}

func (a *axis) index(label string) (int, bool) {
	i, ok := a.pos[label]
	return i, ok
}

func (a *axis) len() int { return len(a.labels) }

// list returns a defensive copy of the label order.
func (a *axis) list() []string {
	out := make([]string, len(a.labels))
	copy(out, a.labels)
	return out
}

func (a *axis) equal(b *axis) bool {
	if a.len() != b.len() {
		return false
	}
	for i, l := range a.labels {
		if b.labels[i] != l {
			return false
		}
	}
	return true
}
