// Package storage reads and writes the JSON board documents shared with the
// original web client: the persisted generation-0 seed and export/import
// files. Every operation here is best-effort; the simulation never depends
// on it succeeding.
package storage

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/HanzPo/gameoflife/pkg/life"
)

// Document is the on-disk shape: {"cells": [[row, col], ...]}.
type Document struct {
	Cells [][2]int `json:"cells"`
}

// NewDocument captures a live set in row-major order so equal boards always
// serialize to the same bytes.
func NewDocument(cells life.Set) Document {
	list := cells.Cells()
	sort.Slice(list, func(i, j int) bool {
		if list[i].Row != list[j].Row {
			return list[i].Row < list[j].Row
		}
		return list[i].Col < list[j].Col
	})
	doc := Document{Cells: make([][2]int, len(list))}
	for i, c := range list {
		doc.Cells[i] = [2]int{c.Row, c.Col}
	}
	return doc
}

// CellList converts the document back into coordinates.
func (d Document) CellList() []life.Cell {
	cells := make([]life.Cell, len(d.Cells))
	for i, pair := range d.Cells {
		cells[i] = life.Cell{Row: pair[0], Col: pair[1]}
	}
	return cells
}

// LoadSeed reads a persisted seed. Any failure, including a missing file or
// a document without a cells array, reports no cells.
func LoadSeed(path string) ([]life.Cell, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil || doc.Cells == nil {
		return nil, false
	}
	return doc.CellList(), true
}

// SaveSeed writes the seed document. The caller decides whether the error is
// worth logging; it never reaches the simulation.
func SaveSeed(path string, cells life.Set) error {
	data, err := json.Marshal(NewDocument(cells))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Export writes a pretty-printed board document, enforcing a .json suffix on
// the chosen filename.
func Export(path string, cells life.Set) error {
	if !strings.HasSuffix(path, ".json") {
		path += ".json"
	}
	data, err := json.MarshalIndent(NewDocument(cells), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Import reads a board document. Malformed content reports no cells so the
// caller leaves the current board untouched.
func Import(path string) ([]life.Cell, bool) {
	return LoadSeed(path)
}
