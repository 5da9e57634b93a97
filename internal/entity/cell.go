package entity

import (
	"encoding/json"
	"fmt"
	"math/bits"
	"strings"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
)

// Cell is a grid position labelled by row (a-c) and column (1-3).
type Cell string

const (
	A1 Cell = "a1"
	A2 Cell = "a2"
	A3 Cell = "a3"
	B1 Cell = "b1"
	B2 Cell = "b2"
	B3 Cell = "b3"
	C1 Cell = "c1"
	C2 Cell = "c2"
	C3 Cell = "c3"
)

// Cells lists the board in row-major order.
var Cells = [9]Cell{A1, A2, A3, B1, B2, B3, C1, C2, C3}

// Lines are the 8 winning triples: rows, columns, diagonals.
var Lines = [8][3]Cell{
	{A1, A2, A3},
	{B1, B2, B3},
	{C1, C2, C3},
	{A1, B1, C1},
	{A2, B2, C2},
	{A3, B3, C3},
	{A1, B2, C3},
	{C1, B2, A3},
}

// ParseCell converts raw input into a Cell.
func ParseCell(raw string) (Cell, error) {
	cell := Cell(strings.ToLower(strings.TrimSpace(raw)))
	if !cell.Valid() {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidCell, raw)
	}

	return cell, nil
}

func (that Cell) Valid() bool {
	return that.index() >= 0
}

func (that Cell) index() int {
	if len(that) != 2 {
		return -1
	}

	row, col := int(that[0]-'a'), int(that[1]-'1')
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return -1
	}

	return row*3 + col
}

// CellSet is a set of cells stored as a 9-bit mask.
type CellSet uint16

func (that CellSet) Has(cell Cell) bool {
	idx := cell.index()
	return idx >= 0 && that&(1<<idx) != 0
}

// With returns the set extended by cell. Invalid cells are ignored.
func (that CellSet) With(cell Cell) CellSet {
	idx := cell.index()
	if idx < 0 {
		return that
	}

	return that | 1<<idx
}

func (that CellSet) Len() int {
	return bits.OnesCount16(uint16(that))
}

func (that CellSet) Overlaps(other CellSet) bool {
	return that&other != 0
}

// Cells returns the members in board order.
func (that CellSet) Cells() []Cell {
	cells := make([]Cell, 0, that.Len())
	for _, cell := range Cells {
		if that.Has(cell) {
			cells = append(cells, cell)
		}
	}

	return cells
}

// countIn reports how many cells of line belong to the set.
func (that CellSet) countIn(line [3]Cell) int {
	count := 0
	for _, cell := range line {
		if that.Has(cell) {
			count++
		}
	}

	return count
}

func (that CellSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.Cells())
}

func (that *CellSet) UnmarshalJSON(data []byte) error {
	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return fmt.Errorf("failed to unmarshal cells: %w", err)
	}

	var set CellSet
	for _, label := range labels {
		cell, err := ParseCell(label)
		if err != nil {
			return fmt.Errorf("%w: %w", apperror.ErrCorruptState, err)
		}

		if set.Has(cell) {
			return fmt.Errorf("%w: duplicate cell %s", apperror.ErrCorruptState, cell)
		}

		set = set.With(cell)
	}

	*that = set

	return nil
}
