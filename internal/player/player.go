package player

import "time"

// Connection is an interface that abstracts the websocket connection.
type Connection interface {
	WriteMessage(messageType int, data []byte) error
	ReadMessage() (int, []byte, error)
	Close() error
}

// Player is the human on the other side of a session.
type Player struct {
	ID          string
	Conn        Connection
	ConnectedAt time.Time
}

// NewPlayer creates a player bound to a connection.
func NewPlayer(id string, conn Connection) *Player {
	return &Player{
		ID:          id,
		Conn:        conn,
		ConnectedAt: time.Now(),
	}
}
