package game

// Line is a triple of coordinates that wins when one side holds all three.
type Line [Size]Coord

// Lines holds the 8 winning lines in scan order: rows, columns, main
// diagonal, anti-diagonal.
var Lines = buildLines()

func buildLines() []Line {
	lines := make([]Line, 0, 2*Size+2)
	for r := range Size {
		lines = append(lines, Line{{r, 0}, {r, 1}, {r, 2}})
	}
	for c := range Size {
		lines = append(lines, Line{{0, c}, {1, c}, {2, c}})
	}
	lines = append(lines, Line{{0, 0}, {1, 1}, {2, 2}})
	lines = append(lines, Line{{0, 2}, {1, 1}, {2, 0}})
	return lines
}

// CheckWinThrough reports whether the mark at last completes a row, column,
// diagonal or anti-diagonal passing through it.
func CheckWinThrough(b *Board, last Coord) bool {
	if !last.Valid() {
		return false
	}
	mark := b.at(last)
	if mark == Empty {
		return false
	}

	if uniform(b, mark, func(i int) Coord { return Coord{last.Row, i} }) {
		return true
	}
	if uniform(b, mark, func(i int) Coord { return Coord{i, last.Col} }) {
		return true
	}
	if last.Row == last.Col && uniform(b, mark, func(i int) Coord { return Coord{i, i} }) {
		return true
	}
	if last.Row+last.Col == BorderMax && uniform(b, mark, func(i int) Coord { return Coord{i, BorderMax - i} }) {
		return true
	}
	return false
}

// uniform walks one line and stops at the first cell that differs from mark.
func uniform(b *Board, mark CellState, cell func(i int) Coord) bool {
	for i := range Size {
		if b.at(cell(i)) != mark {
			return false
		}
	}
	return true
}

// FindFinishingMove returns the empty cell of the first line, in scan order,
// where side already holds two cells and the opponent none.
func FindFinishingMove(b *Board, side Side) (Coord, bool) {
	for _, line := range Lines {
		if c, ok := finishingCell(b, line, side.Mark()); ok {
			return c, true
		}
	}
	return Coord{}, false
}

func finishingCell(b *Board, line Line, mark CellState) (Coord, bool) {
	var (
		own, other int
		free       Coord
		empty      int
	)
	for _, c := range line {
		switch b.at(c) {
		case Empty:
			empty++
			free = c
		case mark:
			own++
		default:
			other++
		}
	}
	if empty == 1 && own == Size-1 && other == 0 {
		return free, true
	}
	return Coord{}, false
}

// IsFull reports whether no empty cell remains.
func IsFull(b *Board) bool {
	return b.Count(Empty) == 0
}
