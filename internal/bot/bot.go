package bot

import (
	"ctchen222/solo-tic-tac-toe/internal/game"
	"math/rand/v2"
)

// MoveCalculator picks computer moves with its own random source.
// It is not safe for concurrent use; each session owns one.
type MoveCalculator struct {
	rng *rand.Rand
}

// NewMoveCalculator creates a calculator. A nil rng falls back to the
// global source.
func NewMoveCalculator(rng *rand.Rand) *MoveCalculator {
	return &MoveCalculator{rng: rng}
}

// NewSeededMoveCalculator creates a calculator with a deterministic source.
func NewSeededMoveCalculator(seed uint64) *MoveCalculator {
	return NewMoveCalculator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// SelectMove calls the package-level function to satisfy engine.MoveSelector.
func (c *MoveCalculator) SelectMove(board *game.Board, smart bool) (game.Coord, error) {
	return SelectMove(board, smart, c.rng)
}

