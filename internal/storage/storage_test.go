package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HanzPo/gameoflife/pkg/life"
)

func TestSeedRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	cells := life.NewSet(
		life.Cell{Row: -2, Col: 5},
		life.Cell{Row: 0, Col: 0},
		life.Cell{Row: 7, Col: -7},
	)

	if err := SaveSeed(path, cells); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, ok := LoadSeed(path)
	if !ok {
		t.Fatal("load of just-saved seed failed")
	}
	got := life.NewSet(loaded...)
	if len(got) != len(cells) {
		t.Fatalf("loaded %d cells, expected %d", len(got), len(cells))
	}
	for c := range cells {
		if !got.Has(c) {
			t.Fatalf("cell (%d,%d) missing after round trip", c.Row, c.Col)
		}
	}
}

func TestLoadSeedMissingFile(t *testing.T) {
	if _, ok := LoadSeed(filepath.Join(t.TempDir(), "nope.json")); ok {
		t.Fatal("missing file reported cells")
	}
}

func TestLoadSeedMalformed(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"garbage.json":  "not json at all",
		"no-cells.json": `{"board":[[1,2]]}`,
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, ok := LoadSeed(path); ok {
			t.Fatalf("%s reported cells", name)
		}
	}
}

func TestExportEnforcesSuffixAndIndents(t *testing.T) {
	dir := t.TempDir()
	if err := Export(filepath.Join(dir, "board"), life.NewSet(life.Cell{Row: 1, Col: 2})); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "board.json"))
	if err != nil {
		t.Fatalf("export file missing .json suffix: %v", err)
	}
	if !strings.Contains(string(data), "\n") {
		t.Fatal("export is not pretty-printed")
	}

	cells, ok := Import(filepath.Join(dir, "board.json"))
	if !ok || len(cells) != 1 || (cells[0] != life.Cell{Row: 1, Col: 2}) {
		t.Fatalf("import of export gave %v (ok=%v)", cells, ok)
	}
}

func TestDocumentDeterministicOrder(t *testing.T) {
	cells := life.NewSet(
		life.Cell{Row: 1, Col: 1},
		life.Cell{Row: -1, Col: 3},
		life.Cell{Row: 1, Col: -4},
	)
	want := [][2]int{{-1, 3}, {1, -4}, {1, 1}}
	for i := 0; i < 10; i++ {
		doc := NewDocument(cells)
		for j, pair := range doc.Cells {
			if pair != want[j] {
				t.Fatalf("document order %v, expected %v", doc.Cells, want)
			}
		}
	}
}
