package processor

import (
	"context"

	"github.com/mauv0809/clubrank/internal/notifier"
	"github.com/mauv0809/clubrank/internal/ranking"
)

// Store defines the database operations required by the processor.
type Store interface {
	GetGame(ctx context.Context, gameID string) (*ranking.Game, error)
	UpdateGameStatus(ctx context.Context, gameID string, status ranking.GameStatus) error
}

// Notifier defines the notification operations required by the processor.
// This is now an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}
