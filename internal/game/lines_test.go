package game

import (
	"testing"
)

func TestLinesScanOrder(t *testing.T) {
	if len(Lines) != 8 {
		t.Fatalf("len(Lines) got %d, want 8", len(Lines))
	}
	want := []Line{
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	}
	for i := range want {
		if Lines[i] != want[i] {
			t.Errorf("Lines[%d] got %v, want %v", i, Lines[i], want[i])
		}
	}
}

func TestCheckWinThrough(t *testing.T) {
	tests := []struct {
		name  string
		board [Size][Size]CellState
		last  Coord
		want  bool
	}{
		{
			name:  "empty cell never wins",
			board: [Size][Size]CellState{},
			last:  Coord{1, 1},
			want:  false,
		},
		{
			name: "X wins - first row",
			board: [Size][Size]CellState{
				{X, X, X},
				{Empty, O, Empty},
				{Empty, Empty, O},
			},
			last: Coord{0, 1},
			want: true,
		},
		{
			name: "O wins - second column",
			board: [Size][Size]CellState{
				{X, O, Empty},
				{X, O, Empty},
				{Empty, O, Empty},
			},
			last: Coord{2, 1},
			want: true,
		},
		{
			name: "X wins - main diagonal",
			board: [Size][Size]CellState{
				{X, Empty, Empty},
				{Empty, X, Empty},
				{O, O, X},
			},
			last: Coord{2, 2},
			want: true,
		},
		{
			name: "O wins - anti-diagonal",
			board: [Size][Size]CellState{
				{Empty, Empty, O},
				{Empty, O, Empty},
				{O, X, X},
			},
			last: Coord{1, 1},
			want: true,
		},
		{
			name: "win elsewhere does not count for an unrelated cell",
			board: [Size][Size]CellState{
				{X, X, X},
				{Empty, O, Empty},
				{O, Empty, Empty},
			},
			last: Coord{2, 0},
			want: false,
		},
		{
			name: "diagonal only checked for diagonal cells",
			board: [Size][Size]CellState{
				{X, O, Empty},
				{O, X, Empty},
				{Empty, Empty, X},
			},
			last: Coord{0, 1},
			want: false,
		},
		{
			name: "full board without a line",
			board: [Size][Size]CellState{
				{X, O, X},
				{X, O, O},
				{O, X, X},
			},
			last: Coord{2, 2},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BoardFromRows(tt.board)
			if got := CheckWinThrough(b, tt.last); got != tt.want {
				t.Errorf("CheckWinThrough() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckWinThroughEveryLine(t *testing.T) {
	for _, line := range Lines {
		for _, mark := range []CellState{X, O} {
			for _, last := range line {
				var b Board
				for _, c := range line {
					_ = b.Set(c, mark)
				}
				if !CheckWinThrough(&b, last) {
					t.Errorf("line %v for %v not detected through %v", line, mark, last)
				}
			}
		}
	}
}

func TestFindFinishingMove(t *testing.T) {
	tests := []struct {
		name      string
		board     [Size][Size]CellState
		side      Side
		want      Coord
		wantFound bool
	}{
		{
			name:      "no finishing move - empty board",
			board:     [Size][Size]CellState{},
			side:      Player,
			wantFound: false,
		},
		{
			name: "player can finish first row",
			board: [Size][Size]CellState{
				{X, X, Empty},
				{O, O, Empty},
				{Empty, Empty, Empty},
			},
			side:      Player,
			want:      Coord{0, 2},
			wantFound: true,
		},
		{
			name: "rows are scanned before columns",
			board: [Size][Size]CellState{
				{O, Empty, O},
				{O, Empty, X},
				{Empty, X, X},
			},
			side:      Computer,
			want:      Coord{0, 1},
			wantFound: true,
		},
		{
			name: "computer can finish second column",
			board: [Size][Size]CellState{
				{X, O, Empty},
				{X, O, Empty},
				{Empty, Empty, X},
			},
			side:      Computer,
			want:      Coord{2, 1},
			wantFound: true,
		},
		{
			name: "gap in the middle of the main diagonal",
			board: [Size][Size]CellState{
				{X, O, Empty},
				{Empty, Empty, O},
				{Empty, Empty, X},
			},
			side:      Player,
			want:      Coord{1, 1},
			wantFound: true,
		},
		{
			name: "anti-diagonal",
			board: [Size][Size]CellState{
				{X, Empty, O},
				{X, O, Empty},
				{Empty, Empty, Empty},
			},
			side:      Computer,
			want:      Coord{2, 0},
			wantFound: true,
		},
		{
			name: "blocked line is not a finishing move",
			board: [Size][Size]CellState{
				{X, X, O},
				{Empty, O, Empty},
				{Empty, Empty, Empty},
			},
			side:      Player,
			wantFound: false,
		},
		{
			name: "opponent's pair is not ours",
			board: [Size][Size]CellState{
				{X, X, Empty},
				{Empty, O, Empty},
				{Empty, Empty, Empty},
			},
			side:      Computer,
			wantFound: false,
		},
		{
			name: "full board",
			board: [Size][Size]CellState{
				{X, O, X},
				{X, O, O},
				{O, X, X},
			},
			side:      Player,
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindFinishingMove(BoardFromRows(tt.board), tt.side)
			if found != tt.wantFound || (found && got != tt.want) {
				t.Errorf("FindFinishingMove() got (%v, %v), want (%v, %v)", got, found, tt.want, tt.wantFound)
			}
		})
	}
}
