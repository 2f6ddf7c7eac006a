package engine

import (
	"ctchen222/solo-tic-tac-toe/internal/game"
	"time"
)

type scheduledTask struct {
	delay     time.Duration
	fn        func() error
	cancelled bool
}

// manualScheduler queues tasks until the test decides to run them.
type manualScheduler struct {
	tasks []*scheduledTask
}

func (s *manualScheduler) Schedule(delay time.Duration, fn func() error) func() {
	t := &scheduledTask{delay: delay, fn: fn}
	s.tasks = append(s.tasks, t)
	return func() { t.cancelled = true }
}

// runPending runs every task that has not been cancelled, including tasks
// scheduled while running.
func (s *manualScheduler) runPending() error {
	for len(s.tasks) > 0 {
		t := s.tasks[0]
		s.tasks = s.tasks[1:]
		if t.cancelled {
			continue
		}
		if err := t.fn(); err != nil {
			return err
		}
	}
	return nil
}

func (s *manualScheduler) pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// recorder captures notifications as flat strings.
type recorder struct {
	events []string
}

func (r *recorder) OnTurnTextChanged(text string)   { r.events = append(r.events, "turn:"+text) }
func (r *recorder) OnHeaderTextChanged(text string) { r.events = append(r.events, "header:"+text) }
func (r *recorder) OnShowSetupPanel()               { r.events = append(r.events, "setup") }

func (r *recorder) reset() { r.events = nil }

// scriptedSelector returns its moves in order.
type scriptedSelector struct {
	moves []game.Coord
	err   error
	smart []bool
}

func (s *scriptedSelector) SelectMove(_ *game.Board, smart bool) (game.Coord, error) {
	s.smart = append(s.smart, smart)
	if s.err != nil {
		return game.Coord{}, s.err
	}
	c := s.moves[0]
	s.moves = s.moves[1:]
	return c, nil
}

func newTestEngine(n Notifier, sel MoveSelector) (*Engine, *manualScheduler) {
	sched := &manualScheduler{}
	e := New(Config{Notifier: n, Selector: sel, Scheduler: sched})
	return e, sched
}

// loadPosition puts the engine in the middle of a game.
func loadPosition(e *Engine, rows [3][3]game.CellState, playerTurn bool) {
	e.board = *game.BoardFromRows(rows)
	e.moveCount = game.Size*game.Size - e.board.Count(game.Empty)
	e.isPlayerTurn = playerTurn
	e.gameOver = false
	e.outcome = NoOutcome
}

func at(row, col int) game.Coord {
	return game.Coord{Row: row, Col: col}
}
