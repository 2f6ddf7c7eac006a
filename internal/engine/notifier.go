package engine

//go:generate mockgen -destination=mocks/mock_notifier.go -package=mocks ctchen222/solo-tic-tac-toe/internal/engine Notifier

import (
	"ctchen222/solo-tic-tac-toe/internal/game"
	"time"
)

// Texts shown by the host.
const (
	TextYourTurn      = "Your turn"
	TextComputersTurn = "Computers turn"

	HeaderPlayerWon   = "YOU WON!"
	HeaderComputerWon = "YOU LOST!"
	HeaderTie         = "ITS A TIE!"
)

// Notifier is implemented by the presentation host.
type Notifier interface {
	OnTurnTextChanged(text string)
	OnHeaderTextChanged(text string)
	OnShowSetupPanel()
}

// MoveSelector chooses the computer's cell.
type MoveSelector interface {
	SelectMove(board *game.Board, smart bool) (game.Coord, error)
}

// Scheduler runs task once after delay, on the same logical flow that
// drives the engine. The returned func cancels a task that has not run yet.
type Scheduler interface {
	Schedule(delay time.Duration, task func() error) (cancel func())
}
