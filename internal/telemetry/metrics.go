package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "ctchen222/solo-tic-tac-toe/session"

// GameMetrics counts moves and finished games.
type GameMetrics struct {
	finished metric.Int64Counter
	moves    metric.Int64Counter
}

func NewGameMetrics(mp metric.MeterProvider) (*GameMetrics, error) {
	meter := mp.Meter(meterName)

	finished, err := meter.Int64Counter("tictactoe.games.finished",
		metric.WithDescription("Games that reached a result"),
		metric.WithUnit("{game}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create games counter: %w", err)
	}

	moves, err := meter.Int64Counter("tictactoe.moves.applied",
		metric.WithDescription("Moves placed on the board"),
		metric.WithUnit("{move}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create moves counter: %w", err)
	}

	return &GameMetrics{finished: finished, moves: moves}, nil
}

func (m *GameMetrics) RecordMove(ctx context.Context, side string) {
	m.moves.Add(ctx, 1, metric.WithAttributes(attribute.String("side", side)))
}

func (m *GameMetrics) RecordGameFinished(ctx context.Context, outcome string) {
	m.finished.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
