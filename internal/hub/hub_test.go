package hub

import (
	"context"
	"ctchen222/solo-tic-tac-toe/internal/player"
	"ctchen222/solo-tic-tac-toe/internal/session"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubConn struct {
	closed chan struct{}
	once   sync.Once
}

func newStubConn() *stubConn {
	return &stubConn{closed: make(chan struct{})}
}

func (c *stubConn) ReadMessage() (int, []byte, error) {
	<-c.closed
	return 0, nil, io.EOF
}

func (c *stubConn) WriteMessage(int, []byte) error { return nil }

func (c *stubConn) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

func serve(h *Hub, p *player.Player) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		h.Serve(context.Background(), p)
		close(done)
	}()
	return done
}

func waitClosed(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Serve did not return")
	}
}

func TestHub_RegistersSessionWhileServing(t *testing.T) {
	h := NewHub(context.Background(), session.Options{})
	conn := newStubConn()

	done := serve(h, player.NewPlayer("player-1", conn))

	require.Eventually(t, func() bool { return len(h.IDs()) == 1 }, time.Second, 5*time.Millisecond)

	s, err := h.Get(h.IDs()[0])
	require.NoError(t, err)
	assert.Equal(t, "player-1", s.Player.ID)

	snap, err := s.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, snap.MoveCount)
	assert.True(t, snap.CanAct)

	conn.Close()
	waitClosed(t, done)

	assert.Empty(t, h.IDs())
	_, err = h.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestHub_SessionsAreIndependent(t *testing.T) {
	h := NewHub(context.Background(), session.Options{})
	a, b := newStubConn(), newStubConn()

	doneA := serve(h, player.NewPlayer("a", a))
	doneB := serve(h, player.NewPlayer("b", b))

	require.Eventually(t, func() bool { return len(h.IDs()) == 2 }, time.Second, 5*time.Millisecond)
	ids := h.IDs()
	assert.NotEqual(t, ids[0], ids[1])
	assert.IsNonDecreasing(t, ids)

	a.Close()
	waitClosed(t, doneA)
	assert.Len(t, h.IDs(), 1)

	b.Close()
	waitClosed(t, doneB)
	assert.Empty(t, h.IDs())
}

func TestHub_ShutdownStopsSessions(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub(ctx, session.Options{})
	conn := newStubConn()

	done := serve(h, player.NewPlayer("player-1", conn))
	require.Eventually(t, func() bool { return len(h.IDs()) == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	waitClosed(t, done)

	select {
	case <-conn.closed:
	default:
		t.Fatal("connection left open after shutdown")
	}
	assert.Empty(t, h.IDs())
}

func TestHub_GetUnknown(t *testing.T) {
	h := NewHub(context.Background(), session.Options{})

	_, err := h.Get("missing")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}
