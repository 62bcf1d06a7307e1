package life

// Cell identifies one position on the unbounded plane.
type Cell struct {
	Row, Col int
}

// Set holds the live cells of a single generation. Membership means alive.
type Set map[Cell]struct{}

// NewSet builds a Set from the provided cells, deduplicating as it goes.
func NewSet(cells ...Cell) Set {
	s := make(Set, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Has reports whether the cell is alive.
func (s Set) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Toggle flips the cell's membership and reports whether it is now alive.
func (s Set) Toggle(c Cell) bool {
	if s.Has(c) {
		delete(s, c)
		return false
	}
	s[c] = struct{}{}
	return true
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Cells returns the live cells in unspecified order.
func (s Set) Cells() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	return out
}

// Step advances the set by one generation. It is pure: the input is left
// untouched and equal inputs always produce equal outputs. Only coordinates
// adjacent to a live cell are ever considered, so the cost is proportional to
// the number of live cells regardless of how far apart they sit on the plane.
func Step(current Set) Set {
	counts := make(map[Cell]int, len(current)*4)
	for c := range current {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				counts[Cell{Row: c.Row + dr, Col: c.Col + dc}]++
			}
		}
	}
	next := make(Set, len(current))
	for c, n := range counts {
		if n == 3 || (n == 2 && current.Has(c)) {
			next[c] = struct{}{}
		}
	}
	return next
}

// Translate returns a copy of cells shifted by (dr, dc).
func Translate(cells []Cell, dr, dc int) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = Cell{Row: c.Row + dr, Col: c.Col + dc}
	}
	return out
}
