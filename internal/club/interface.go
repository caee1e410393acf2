package club

import (
	"context"
	"time"

	"github.com/mauv0809/clubrank/internal/ranking"
)

// ClubStore reads and writes the rows the rankings are computed from.
type ClubStore interface {
	UpsertClub(ctx context.Context, id, name string) error

	UpsertMember(ctx context.Context, member ranking.Member) (ranking.Member, error)
	GetMember(ctx context.Context, memberID string) (*ranking.Member, error)
	ListMembers(ctx context.Context, clubID string) ([]ranking.Member, error)
	GetGodchildren(ctx context.Context, sponsorID string) ([]ranking.Member, error)

	CreateGame(ctx context.Context, clubID string, date time.Time) (ranking.Game, error)
	GetGame(ctx context.Context, gameID string) (*ranking.Game, error)
	ListGames(ctx context.Context, clubID string) ([]ranking.Game, error)
	UpdateGameStatus(ctx context.Context, gameID string, status ranking.GameStatus) error

	AddEvent(ctx context.Context, event ranking.GameEvent) (ranking.GameEvent, error)
	ListEvents(ctx context.Context, gameIDs []string) ([]ranking.GameEvent, error)

	UpsertTeamConfig(ctx context.Context, team ranking.TeamConfig) error
	ListTeamConfigs(ctx context.Context, clubID string) ([]ranking.TeamConfig, error)
}
