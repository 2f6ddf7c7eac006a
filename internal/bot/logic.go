package bot

import (
	"ctchen222/solo-tic-tac-toe/internal/game"
	"errors"
	"math/rand/v2"
)

var ErrNoMovesAvailable = errors.New("no moves available")

// SelectMove picks the computer's next cell. A dumb computer always moves at
// random. A smart one takes the center, then wins, then blocks, and only
// then moves at random. It looks one move ahead and no further.
func SelectMove(board *game.Board, smart bool, rng *rand.Rand) (game.Coord, error) {
	if smart {
		return smartMove(board, rng)
	}
	return randomMove(board, rng)
}

// randomMove picks a uniformly random empty cell.
func randomMove(board *game.Board, rng *rand.Rand) (game.Coord, error) {
	available := board.EmptyCells()
	if len(available) == 0 {
		return game.Coord{}, ErrNoMovesAvailable
	}
	return available[intN(rng, len(available))], nil
}

func smartMove(board *game.Board, rng *rand.Rand) (game.Coord, error) {
	if game.IsFull(board) {
		return game.Coord{}, ErrNoMovesAvailable
	}

	// 1. Center
	if state, _ := board.Get(game.Center); state == game.Empty {
		return game.Center, nil
	}

	// 2. Win
	if c, ok := game.FindFinishingMove(board, game.Computer); ok {
		return c, nil
	}

	// 3. Block
	if c, ok := game.FindFinishingMove(board, game.Player); ok {
		return c, nil
	}

	// 4. Random
	return randomMove(board, rng)
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
