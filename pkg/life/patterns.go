package life

import "sort"

// Patterns is the built-in catalog of named shapes. Each shape is a list of
// (row, col) offsets relative to an insertion anchor.
var Patterns = map[string][]Cell{
	"block": {
		{0, 0}, {0, 1},
		{1, 0}, {1, 1},
	},
	"blinker": {
		{0, -1}, {0, 0}, {0, 1},
	},
	"toad": {
		{0, 0}, {0, 1}, {0, 2},
		{1, -1}, {1, 0}, {1, 1},
	},
	"beacon": {
		{0, 0}, {0, 1},
		{1, 0}, {1, 1},
		{2, 2}, {2, 3},
		{3, 2}, {3, 3},
	},
	"glider": {
		{0, 1},
		{1, 2},
		{2, 0}, {2, 1}, {2, 2},
	},
	"lwss": {
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 0}, {1, 4},
		{2, 4},
		{3, 0}, {3, 3},
	},
	"pulsar": {
		{-6, -4}, {-6, -3}, {-6, -2}, {-6, 2}, {-6, 3}, {-6, 4},
		{-4, -6}, {-4, -1}, {-4, 1}, {-4, 6},
		{-3, -6}, {-3, -1}, {-3, 1}, {-3, 6},
		{-2, -6}, {-2, -1}, {-2, 1}, {-2, 6},
		{-1, -4}, {-1, -3}, {-1, -2}, {-1, 2}, {-1, 3}, {-1, 4},
		{1, -4}, {1, -3}, {1, -2}, {1, 2}, {1, 3}, {1, 4},
		{2, -6}, {2, -1}, {2, 1}, {2, 6},
		{3, -6}, {3, -1}, {3, 1}, {3, 6},
		{4, -6}, {4, -1}, {4, 1}, {4, 6},
		{6, -4}, {6, -3}, {6, -2}, {6, 2}, {6, 3}, {6, 4},
	},
	"gosper-gun": {
		{0, 24},
		{1, 22}, {1, 24},
		{2, 12}, {2, 13}, {2, 20}, {2, 21}, {2, 34}, {2, 35},
		{3, 11}, {3, 15}, {3, 20}, {3, 21}, {3, 34}, {3, 35},
		{4, 0}, {4, 1}, {4, 10}, {4, 16}, {4, 20}, {4, 21},
		{5, 0}, {5, 1}, {5, 10}, {5, 14}, {5, 16}, {5, 17}, {5, 22}, {5, 24},
		{6, 10}, {6, 16}, {6, 24},
		{7, 11}, {7, 15},
		{8, 12}, {8, 13},
	},
}

// PatternNames returns the catalog keys in sorted order so key bindings and
// menus stay stable across runs.
func PatternNames() []string {
	names := make([]string, 0, len(Patterns))
	for name := range Patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
