package session

import (
	"context"
	"ctchen222/solo-tic-tac-toe/internal/engine"
	"ctchen222/solo-tic-tac-toe/internal/game"
	"ctchen222/solo-tic-tac-toe/internal/validator"
	"ctchen222/solo-tic-tac-toe/pkg/proto"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// HandleMessage handles a message from the player. It acts as a dispatcher.
func (s *Session) HandleMessage(ctx context.Context, rawMessage []byte) {
	ctx, span := tracer.Start(ctx, "session.HandleMessage", trace.WithAttributes(
		attribute.String("session.id", s.ID),
	))
	defer span.End()

	var message proto.ClientMessage
	if err := json.Unmarshal(rawMessage, &message); err != nil {
		slog.ErrorContext(ctx, "error unmarshalling message", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error unmarshalling message")
		s.sendError(ctx, "malformed message")
		return
	}

	if err := validator.GetValidator().Struct(message); err != nil {
		slog.WarnContext(ctx, "invalid message from player", "player.id", s.Player.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid message format")
		s.sendError(ctx, err.Error())
		return
	}

	span.SetAttributes(attribute.String("message.type", message.Type))

	switch message.Type {
	case proto.TypeStart:
		s.engine.StartGame()
		s.sendBoard(ctx)
	case proto.TypeMove:
		s.handleMove(ctx, &message)
	case proto.TypeSmart:
		s.engine.SetSmarterComputerEnabled(*message.Enabled)
		s.sendSmart(ctx, proto.TypeSmart)
	case proto.TypeToggleSmart:
		s.engine.SetSmarterComputerEnabled(!s.engine.SmarterComputerEnabled())
		s.sendSmart(ctx, proto.TypeSmart)
	}
}

// handleMove processes a player's click. Illegal moves are dropped without
// a reply; the client is expected to check can_act and the cell first.
func (s *Session) handleMove(ctx context.Context, message *proto.ClientMessage) {
	if len(message.Position) != 2 {
		s.sendError(ctx, "move requires a position")
		return
	}
	c := game.Coord{Row: message.Position[0], Col: message.Position[1]}

	ctx, span := tracer.Start(ctx, "session.handleMove", trace.WithAttributes(
		attribute.String("session.id", s.ID),
		attribute.Int("move.row", c.Row),
		attribute.Int("move.col", c.Col),
	))
	defer span.End()

	if err := s.engine.ApplyPlayerMove(c); err != nil {
		if errors.Is(err, engine.ErrIllegalMove) {
			slog.DebugContext(ctx, "ignoring illegal move", "session.id", s.ID, "move.row", c.Row, "move.col", c.Col, "error", err)
			span.SetAttributes(attribute.Bool("move.valid", false))
			return
		}
		slog.ErrorContext(ctx, "move failed", "session.id", s.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Move failed")
		return
	}
	span.SetAttributes(attribute.Bool("move.valid", true))
	s.sendBoard(ctx)
}

// OnTurnTextChanged implements engine.Notifier.
func (s *Session) OnTurnTextChanged(text string) {
	s.send(s.ctx, &proto.TextMessage{Type: proto.TypeTurn, Text: text})
}

// OnHeaderTextChanged implements engine.Notifier.
func (s *Session) OnHeaderTextChanged(text string) {
	s.send(s.ctx, &proto.TextMessage{Type: proto.TypeHeader, Text: text})
}

// OnShowSetupPanel implements engine.Notifier. The client clears the turn
// line when the panel shows.
func (s *Session) OnShowSetupPanel() {
	s.sendSmart(s.ctx, proto.TypeSetup)
}

func (s *Session) sendSmart(ctx context.Context, msgType string) {
	smart := s.engine.SmarterComputerEnabled()
	s.send(ctx, &proto.SetupMessage{Type: msgType, Smart: smart, SmartText: proto.SmartText(smart)})
}

func (s *Session) sendBoard(ctx context.Context) {
	board := s.engine.Board()
	s.send(ctx, &proto.BoardMessage{
		Type:      proto.TypeBoard,
		Board:     board.Rows(),
		CanAct:    s.engine.CanPlayerAct(),
		MoveCount: s.engine.MoveCount(),
	})
}

func (s *Session) sendError(ctx context.Context, reason string) {
	s.send(ctx, &proto.ErrorMessage{Type: proto.TypeError, Reason: reason})
}

func (s *Session) send(ctx context.Context, message any) {
	data, err := json.Marshal(message)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling message", "error", err)
		return
	}
	if err := s.Player.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
		slog.ErrorContext(ctx, "error writing message to player", "player.id", s.Player.ID, "error", err)
	}
}
