package engine

import "ctchen222/solo-tic-tac-toe/internal/game"

// earlyTie reports a position in which no remaining sequence of moves can
// complete a line. Only positions after 7 or 8 moves are considered: with
// fewer moves played, some line is always still open for one side.
//
// The player moves on odd counts. After move 7 both sides have a move left;
// after move 8 only the player does.
func earlyTie(b *game.Board, moveCount int) bool {
	switch moveCount {
	case 7:
		if _, ok := game.FindFinishingMove(b, game.Computer); ok {
			return false
		}
		_, ok := game.FindFinishingMove(b, game.Player)
		return !ok
	case 8:
		_, ok := game.FindFinishingMove(b, game.Player)
		return !ok
	default:
		return false
	}
}
