package session

import (
	"context"
	"ctchen222/solo-tic-tac-toe/internal/bot"
	"ctchen222/solo-tic-tac-toe/internal/engine"
	"ctchen222/solo-tic-tac-toe/internal/game"
	"ctchen222/solo-tic-tac-toe/internal/player"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("session")

var ErrSessionClosed = errors.New("session closed")

// Recorder receives game telemetry.
type Recorder interface {
	RecordMove(ctx context.Context, side string)
	RecordGameFinished(ctx context.Context, outcome string)
}

type noopRecorder struct{}

func (noopRecorder) RecordMove(context.Context, string)         {}
func (noopRecorder) RecordGameFinished(context.Context, string) {}

// Options configures new sessions.
type Options struct {
	Smart    bool
	DelayMin time.Duration
	DelayMax time.Duration
	Recorder Recorder

	// Seed makes the computer and its pacing deterministic when non-zero.
	Seed uint64
}

// Snapshot is a read-only view of a session's game.
type Snapshot struct {
	ID        string             `json:"id"`
	PlayerID  string             `json:"player_id"`
	Board     [][]game.CellState `json:"board"`
	CanAct    bool               `json:"can_act"`
	GameOver  bool               `json:"game_over"`
	Outcome   string             `json:"outcome,omitempty"`
	MoveCount int                `json:"move_count"`
	Smart     bool               `json:"smart"`
}

// Session is one single-player game bound to one connection. The engine is
// only touched from the goroutine running Run.
type Session struct {
	ID     string
	Player *player.Player

	engine   *engine.Engine
	recorder Recorder
	ctx      context.Context

	incoming chan []byte
	tasks    chan func() error
	queries  chan chan Snapshot

	Done      chan struct{}
	closeOnce sync.Once
}

// New creates a session for p. Call Run to start it.
func New(id string, p *player.Player, opts Options) *Session {
	s := &Session{
		ID:       id,
		Player:   p,
		recorder: opts.Recorder,
		ctx:      context.Background(),
		incoming: make(chan []byte, 10),
		tasks:    make(chan func() error, 1),
		queries:  make(chan chan Snapshot),
		Done:     make(chan struct{}),
	}
	if s.recorder == nil {
		s.recorder = noopRecorder{}
	}

	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewPCG(opts.Seed, opts.Seed+1))
	}
	jitter := rand.Float64
	if rng != nil {
		jitter = rng.Float64
	}

	s.engine = engine.New(engine.Config{
		Notifier:  s,
		Selector:  bot.NewMoveCalculator(rng),
		Scheduler: loopScheduler{s},
		Smart:     opts.Smart,
		DelayMin:  opts.DelayMin,
		DelayMax:  opts.DelayMax,
		Jitter:    jitter,
		OnMoveApplied: func(side game.Side, _ game.Coord) {
			s.recorder.RecordMove(s.ctx, side.String())
		},
		OnFinished: func(o engine.Outcome) {
			s.recorder.RecordGameFinished(s.ctx, o.String())
		},
	})
	return s
}

// Run shows the setup panel and serves the session until the connection
// drops or ctx is cancelled.
func (s *Session) Run(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "session.Run", trace.WithAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("player.id", s.Player.ID),
	))
	defer span.End()
	s.ctx = ctx

	go s.ReadPump(ctx)

	s.OnShowSetupPanel()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Session context done, closing", "session.id", s.ID)
			s.Close()
			return

		case <-s.Done:
			slog.InfoContext(ctx, "Session closed", "session.id", s.ID)
			return

		case raw := <-s.incoming:
			s.HandleMessage(ctx, raw)

		case task := <-s.tasks:
			s.runTask(ctx, task)

		case reply := <-s.queries:
			reply <- s.snapshot()
		}
	}
}

func (s *Session) runTask(ctx context.Context, task func() error) {
	ctx, span := tracer.Start(ctx, "session.computerMove", trace.WithAttributes(
		attribute.String("session.id", s.ID),
	))
	defer span.End()

	moves := s.engine.MoveCount()
	if err := task(); err != nil {
		slog.ErrorContext(ctx, "computer move failed", "session.id", s.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Computer move failed")
		return
	}
	if s.engine.MoveCount() != moves {
		s.sendBoard(ctx)
	}
}

// ReadPump pumps messages from the connection into the session loop.
func (s *Session) ReadPump(ctx context.Context) {
	defer s.Close()

	for {
		_, msg, err := s.Player.Conn.ReadMessage()
		if err != nil {
			slog.WarnContext(ctx, "Player connection error", "player.id", s.Player.ID, "session.id", s.ID, "error", err)
			return
		}
		select {
		case s.incoming <- msg:
		case <-s.Done:
			return
		}
	}
}

// Close stops the session and closes the connection. It is idempotent.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.Done)
		if err := s.Player.Conn.Close(); err != nil {
			slog.Debug("error closing connection", "session.id", s.ID, "error", err)
		}
	})
}

// Snapshot asks the session loop for the current game state.
func (s *Session) Snapshot(ctx context.Context) (Snapshot, error) {
	reply := make(chan Snapshot, 1)
	select {
	case s.queries <- reply:
	case <-s.Done:
		return Snapshot{}, ErrSessionClosed
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}

	select {
	case snap := <-reply:
		return snap, nil
	case <-s.Done:
		return Snapshot{}, ErrSessionClosed
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}

func (s *Session) snapshot() Snapshot {
	board := s.engine.Board()
	return Snapshot{
		ID:        s.ID,
		PlayerID:  s.Player.ID,
		Board:     board.Rows(),
		CanAct:    s.engine.CanPlayerAct(),
		GameOver:  s.engine.State() == engine.GameOver,
		Outcome:   s.engine.Outcome().String(),
		MoveCount: s.engine.MoveCount(),
		Smart:     s.engine.SmarterComputerEnabled(),
	}
}

// loopScheduler fires engine tasks on the session loop.
type loopScheduler struct {
	s *Session
}

func (l loopScheduler) Schedule(delay time.Duration, task func() error) func() {
	timer := time.AfterFunc(delay, func() {
		select {
		case l.s.tasks <- task:
		case <-l.s.Done:
		}
	})
	return func() { timer.Stop() }
}
