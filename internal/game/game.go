package game

import (
	"errors"
	"fmt"
)

// CellState represents the content of a board cell.
type CellState uint8

const (
	Empty CellState = iota
	X
	O
)

// Board boundaries
const (
	BorderMin = 0
	BorderMax = 2
	Size      = BorderMax + 1
)

var ErrInvalidCoordinate = errors.New("invalid coordinate")

func (s CellState) String() string {
	switch s {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// MarshalText lets the board travel as ["X","O",""] in JSON.
func (s CellState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Side is one of the two participants of a single-player game.
type Side uint8

const (
	Player Side = iota
	Computer
)

// Mark is the symbol a side writes on the board. The human always plays X.
func (s Side) Mark() CellState {
	if s == Player {
		return X
	}
	return O
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Player {
		return Computer
	}
	return Player
}

func (s Side) String() string {
	if s == Player {
		return "player"
	}
	return "computer"
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Center is the middle cell of the board.
var Center = Coord{Row: 1, Col: 1}

func (c Coord) Valid() bool {
	return c.Row >= BorderMin && c.Row <= BorderMax && c.Col >= BorderMin && c.Col <= BorderMax
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Board is the 3x3 grid, indexed directly by row and column.
type Board struct {
	cells [Size][Size]CellState
}

// Get returns the state of the cell at c.
func (b *Board) Get(c Coord) (CellState, error) {
	if !c.Valid() {
		return Empty, fmt.Errorf("%w: %s", ErrInvalidCoordinate, c)
	}
	return b.cells[c.Row][c.Col], nil
}

// Set overwrites the cell at c. Legality is the caller's concern.
func (b *Board) Set(c Coord, state CellState) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinate, c)
	}
	b.cells[c.Row][c.Col] = state
	return nil
}

// Clear resets every cell to Empty.
func (b *Board) Clear() {
	b.cells = [Size][Size]CellState{}
}

// at is Get for coordinates that are known to be valid.
func (b *Board) at(c Coord) CellState {
	return b.cells[c.Row][c.Col]
}

// EmptyCells lists the empty coordinates in row-major order.
func (b *Board) EmptyCells() []Coord {
	var empty []Coord
	for r := range Size {
		for c := range Size {
			if b.cells[r][c] == Empty {
				empty = append(empty, Coord{Row: r, Col: c})
			}
		}
	}
	return empty
}

// Count returns how many cells hold the given state.
func (b *Board) Count(state CellState) int {
	n := 0
	for r := range Size {
		for c := range Size {
			if b.cells[r][c] == state {
				n++
			}
		}
	}
	return n
}

// Rows converts the board to a slice of slices for rendering.
func (b *Board) Rows() [][]CellState {
	rows := make([][]CellState, Size)
	for r := range Size {
		rows[r] = make([]CellState, Size)
		copy(rows[r], b.cells[r][:])
	}
	return rows
}

// BoardFromRows builds a board from a row-major literal, mostly for tests.
func BoardFromRows(rows [Size][Size]CellState) *Board {
	return &Board{cells: rows}
}
