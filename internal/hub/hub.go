package hub

import (
	"context"
	"ctchen222/solo-tic-tac-toe/internal/player"
	"ctchen222/solo-tic-tac-toe/internal/session"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("hub")

var ErrSessionNotFound = errors.New("session not found")

// Hub keeps track of the live sessions on this instance.
type Hub struct {
	ctx  context.Context
	opts session.Options

	mu       sync.RWMutex
	sessions map[string]*session.Session
}

// NewHub creates a hub. Sessions it serves stop when ctx is cancelled.
func NewHub(ctx context.Context, opts session.Options) *Hub {
	return &Hub{
		ctx:      ctx,
		opts:     opts,
		sessions: make(map[string]*session.Session),
	}
}

// Serve runs a new session for p and blocks until it ends.
func (h *Hub) Serve(ctx context.Context, p *player.Player) {
	id := uuid.New().String()
	ctx, span := tracer.Start(ctx, "hub.Serve", trace.WithAttributes(
		attribute.String("session.id", id),
		attribute.String("player.id", p.ID),
	))
	defer span.End()

	s := session.New(id, p, h.opts)
	h.register(s)
	defer h.unregister(s)

	slog.InfoContext(ctx, "Session started", "session.id", id, "player.id", p.ID)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(h.ctx, cancel)
	defer stop()

	s.Run(runCtx)

	slog.InfoContext(ctx, "Session ended", "session.id", id, "player.id", p.ID)
}

// Get returns the live session with the given id.
func (h *Hub) Get(id string) (*session.Session, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s, ok := h.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// IDs lists the live sessions, sorted.
func (h *Hub) IDs() []string {
	h.mu.RLock()
	ids := make([]string, 0, len(h.sessions))
	for id := range h.sessions {
		ids = append(ids, id)
	}
	h.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

func (h *Hub) register(s *session.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[s.ID] = s
}

func (h *Hub) unregister(s *session.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, s.ID)
}
