package server

import (
	"context"
	"ctchen222/solo-tic-tac-toe/internal/api/response"
	"ctchen222/solo-tic-tac-toe/internal/hub"
	"ctchen222/solo-tic-tac-toe/internal/player"
	"ctchen222/solo-tic-tac-toe/internal/session"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

type Server struct {
	hub      *hub.Hub
	upgrader websocket.Upgrader
	engine   *gin.Engine
}

func NewServer(h *hub.Hub) *Server {
	s := &Server{
		hub: h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery())
	s.registerHandlers()
	return s
}

// Engine exposes the router for http.Server and tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerHandlers() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		response.SuccessResponseContent(c, "ok")
	})
	s.engine.GET("/ws", s.handleWebSocket)

	api := s.engine.Group("/api")
	api.GET("/sessions", s.listSessions)
	api.GET("/sessions/:id", s.getSession)
}

// handleWebSocket upgrades the connection and serves one game session on it
// until the player leaves.
func (s *Server) handleWebSocket(c *gin.Context) {
	r := c.Request
	ctx, span := tracer.Start(r.Context(), "server.handleWebSocket", trace.WithAttributes(
		attribute.String("http.url", r.URL.String()),
		attribute.String("http.method", r.Method),
	))

	conn, err := s.upgrader.Upgrade(c.Writer, r, nil)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to upgrade connection", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to upgrade connection")
		span.End()
		return
	}

	// Get playerID from URL, or generate a new one.
	playerID := c.Query("playerId")
	if playerID == "" {
		playerID = uuid.New().String()
	}
	span.SetAttributes(attribute.String("player.id", playerID))
	span.End()

	p := player.NewPlayer(playerID, conn)
	s.hub.Serve(context.WithoutCancel(ctx), p)
}

func (s *Server) listSessions(c *gin.Context) {
	response.SuccessResponseList(c, s.hub.IDs())
}

func (s *Server) getSession(c *gin.Context) {
	id := c.Param("id")
	ctx, span := tracer.Start(c.Request.Context(), "server.getSession", trace.WithAttributes(
		attribute.String("session.id", id),
	))
	defer span.End()

	sess, err := s.hub.Get(id)
	if err != nil {
		response.FromError(c, notFound(err))
		return
	}

	snap, err := sess.Snapshot(ctx)
	if err != nil {
		span.RecordError(err)
		response.FromError(c, notFound(err))
		return
	}
	response.SuccessResponse(c, snap)
}

func notFound(err error) error {
	if errors.Is(err, hub.ErrSessionNotFound) || errors.Is(err, session.ErrSessionClosed) {
		return response.NewError(http.StatusNotFound, err.Error())
	}
	return err
}
