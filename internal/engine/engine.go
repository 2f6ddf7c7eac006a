package engine

import (
	"ctchen222/solo-tic-tac-toe/internal/game"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"
)

var ErrIllegalMove = errors.New("illegal move")

// Default pacing of the computer's reply.
const (
	DefaultDelayMin = 300 * time.Millisecond
	DefaultDelayMax = 800 * time.Millisecond
)

type State uint8

const (
	InProgress State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "in_progress"
}

type Outcome uint8

const (
	NoOutcome Outcome = iota
	PlayerWon
	ComputerWon
	Tie
)

func (o Outcome) String() string {
	switch o {
	case PlayerWon:
		return "player_won"
	case ComputerWon:
		return "computer_won"
	case Tie:
		return "tie"
	default:
		return ""
	}
}

// Config wires an Engine to its collaborators.
type Config struct {
	Notifier  Notifier
	Selector  MoveSelector
	Scheduler Scheduler

	// Smart is the initial value of the smarter-computer toggle.
	Smart bool

	// DelayMin and DelayMax bound the computer's reply delay. Zero values
	// fall back to the defaults.
	DelayMin time.Duration
	DelayMax time.Duration

	// Jitter returns a value in [0, 1). Defaults to math/rand/v2.
	Jitter func() float64

	// OnMoveApplied and OnFinished observe the game; both are optional.
	OnMoveApplied func(side game.Side, c game.Coord)
	OnFinished    func(Outcome)
}

// Engine is the turn state machine of one single-player game. It is not safe
// for concurrent use: every call, including scheduled tasks, must come from
// one logical flow.
type Engine struct {
	cfg Config

	board        game.Board
	isPlayerTurn bool
	moveCount    int
	gameOver     bool
	outcome      Outcome
	smart        bool

	// generation changes on every StartGame; scheduled computer moves carry
	// the value they were created under.
	generation uint64
	cancel     func()
}

// New creates an engine with an empty board and the player to move.
func New(cfg Config) *Engine {
	if cfg.DelayMin <= 0 && cfg.DelayMax <= 0 {
		cfg.DelayMin, cfg.DelayMax = DefaultDelayMin, DefaultDelayMax
	}
	if cfg.DelayMax < cfg.DelayMin {
		cfg.DelayMax = cfg.DelayMin
	}
	if cfg.Jitter == nil {
		cfg.Jitter = rand.Float64
	}
	return &Engine{
		cfg:          cfg,
		isPlayerTurn: true,
		smart:        cfg.Smart,
	}
}

// StartGame clears the board and hands the first move to the player.
// A computer move still pending from the previous game is discarded.
func (e *Engine) StartGame() {
	e.generation++
	e.cancelPending()

	e.board.Clear()
	e.moveCount = 0
	e.gameOver = false
	e.outcome = NoOutcome
	e.isPlayerTurn = true

	slog.Debug("game started", "game.generation", e.generation, "game.smart", e.smart)
	e.cfg.Notifier.OnTurnTextChanged(TextYourTurn)
}

// CanPlayerAct is true only while it is the player's turn and the game is
// not over.
func (e *Engine) CanPlayerAct() bool {
	return e.isPlayerTurn && !e.gameOver
}

// ApplyPlayerMove applies a move on behalf of the human.
func (e *Engine) ApplyPlayerMove(c game.Coord) error {
	if !e.CanPlayerAct() {
		return fmt.Errorf("%w: player may not act", ErrIllegalMove)
	}
	return e.ApplyMove(c, game.Player)
}

// ApplyMove marks c for side and advances the game. A rejected move leaves
// the engine untouched and fires no notification.
func (e *Engine) ApplyMove(c game.Coord, side game.Side) error {
	if err := e.validate(c, side); err != nil {
		return err
	}
	if side == game.Computer {
		e.cancelPending()
	}

	_ = e.board.Set(c, side.Mark())
	e.moveCount++
	if e.cfg.OnMoveApplied != nil {
		e.cfg.OnMoveApplied(side, c)
	}

	switch {
	case game.CheckWinThrough(&e.board, c):
		if side == game.Player {
			e.finish(PlayerWon)
		} else {
			e.finish(ComputerWon)
		}
	case e.moveCount >= game.Size*game.Size:
		// Unreachable in practice; the early tie fires first.
		e.finish(Tie)
	case earlyTie(&e.board, e.moveCount):
		e.finish(Tie)
	default:
		e.isPlayerTurn = !e.isPlayerTurn
		if side == game.Player {
			e.cfg.Notifier.OnTurnTextChanged(TextComputersTurn)
			e.scheduleComputerMove()
		} else {
			e.cfg.Notifier.OnTurnTextChanged(TextYourTurn)
		}
	}
	return nil
}

func (e *Engine) validate(c game.Coord, side game.Side) error {
	if e.gameOver {
		return fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	if side != e.turn() {
		return fmt.Errorf("%w: not %s's turn", ErrIllegalMove, side)
	}
	state, err := e.board.Get(c)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIllegalMove, err)
	}
	if state != game.Empty {
		return fmt.Errorf("%w: cell %s already occupied", ErrIllegalMove, c)
	}
	return nil
}

func (e *Engine) turn() game.Side {
	if e.isPlayerTurn {
		return game.Player
	}
	return game.Computer
}

func (e *Engine) finish(outcome Outcome) {
	e.gameOver = true
	e.outcome = outcome
	e.cancelPending()

	switch outcome {
	case PlayerWon:
		e.cfg.Notifier.OnHeaderTextChanged(HeaderPlayerWon)
	case ComputerWon:
		e.cfg.Notifier.OnHeaderTextChanged(HeaderComputerWon)
	default:
		e.cfg.Notifier.OnHeaderTextChanged(HeaderTie)
	}
	e.cfg.Notifier.OnShowSetupPanel()

	slog.Debug("game finished", "game.outcome", outcome.String(), "game.moves", e.moveCount)
	if e.cfg.OnFinished != nil {
		e.cfg.OnFinished(outcome)
	}
}

func (e *Engine) scheduleComputerMove() {
	generation := e.generation
	e.cancel = e.cfg.Scheduler.Schedule(e.delay(), func() error {
		return e.computerMove(generation)
	})
}

// computerMove runs when the scheduled reply fires. Tasks from an older
// generation, or arriving when the computer is not on move, are dropped.
func (e *Engine) computerMove(generation uint64) error {
	if generation != e.generation || e.gameOver || e.isPlayerTurn {
		slog.Debug("stale computer move discarded", "task.generation", generation, "game.generation", e.generation)
		return nil
	}
	e.cancel = nil

	c, err := e.cfg.Selector.SelectMove(&e.board, e.smart)
	if err != nil {
		return fmt.Errorf("computer failed to select a move: %w", err)
	}
	if err := e.ApplyMove(c, game.Computer); err != nil {
		return fmt.Errorf("computer failed to apply move %s: %w", c, err)
	}
	return nil
}

func (e *Engine) cancelPending() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

func (e *Engine) delay() time.Duration {
	span := e.cfg.DelayMax - e.cfg.DelayMin
	return e.cfg.DelayMin + time.Duration(float64(span)*e.cfg.Jitter())
}

// CellState returns the state of the cell at c.
func (e *Engine) CellState(c game.Coord) (game.CellState, error) {
	return e.board.Get(c)
}

// Board returns a copy of the board.
func (e *Engine) Board() game.Board {
	return e.board
}

func (e *Engine) SmarterComputerEnabled() bool {
	return e.smart
}

// SetSmarterComputerEnabled takes effect from the computer's next move.
func (e *Engine) SetSmarterComputerEnabled(enabled bool) {
	e.smart = enabled
}

func (e *Engine) State() State {
	if e.gameOver {
		return GameOver
	}
	return InProgress
}

// Outcome is NoOutcome while the game is in progress.
func (e *Engine) Outcome() Outcome {
	return e.outcome
}

func (e *Engine) MoveCount() int {
	return e.moveCount
}

func (e *Engine) IsPlayerTurn() bool {
	return e.isPlayerTurn
}

func (e *Engine) Generation() uint64 {
	return e.generation
}
