package life

import "math/rand/v2"

// RandomSoup fills the rows×cols rectangle anchored at (row, col) with live
// cells at the given density using a deterministic seeded generator, so a
// seed always reproduces the same board.
func RandomSoup(seed int64, row, col, rows, cols int, density float64) Set {
	if rows <= 0 || cols <= 0 {
		return Set{}
	}
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	s := make(Set)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rng.Float64() < density {
				s[Cell{Row: row + r, Col: col + c}] = struct{}{}
			}
		}
	}
	return s
}
