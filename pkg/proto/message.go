package proto

import "ctchen222/solo-tic-tac-toe/internal/game"

// Client message types
const (
	TypeStart       = "start"
	TypeMove        = "move"
	TypeSmart       = "smart"
	TypeToggleSmart = "toggle_smart"
)

// Server message types
const (
	TypeTurn   = "turn"
	TypeHeader = "header"
	TypeSetup  = "setup"
	TypeBoard  = "board"
	TypeError  = "error"
)

// ClientMessage represents a message from the client to the server.
type ClientMessage struct {
	Type     string `json:"type" validate:"required,oneof=start move smart toggle_smart"`
	Position []int  `json:"position,omitempty" validate:"omitempty,len=2,dive,cell"`
	Enabled  *bool  `json:"enabled,omitempty" validate:"required_if=Type smart"`
}

// TextMessage carries the turn line or the header line.
type TextMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// SetupMessage shows the setup panel, or refreshes its smart switch when
// Type is "smart".
type SetupMessage struct {
	Type      string `json:"type"`
	Smart     bool   `json:"smart"`
	SmartText string `json:"smart_text"`
}

// BoardMessage lets a thin client render the grid.
type BoardMessage struct {
	Type      string             `json:"type"`
	Board     [][]game.CellState `json:"board"`
	CanAct    bool               `json:"can_act"`
	MoveCount int                `json:"move_count"`
}

type ErrorMessage struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// SmartText is the label of the smart switch.
func SmartText(enabled bool) string {
	if enabled {
		return "ON"
	}
	return "OFF"
}
