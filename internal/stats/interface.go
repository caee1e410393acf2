package stats

import (
	"context"

	"github.com/mauv0809/clubrank/internal/ranking"
)

// ClubReader is the part of the club store the rankings read from.
type ClubReader interface {
	GetMember(ctx context.Context, memberID string) (*ranking.Member, error)
	ListMembers(ctx context.Context, clubID string) ([]ranking.Member, error)
	ListGames(ctx context.Context, clubID string) ([]ranking.Game, error)
	ListEvents(ctx context.Context, gameIDs []string) ([]ranking.GameEvent, error)
	ListTeamConfigs(ctx context.Context, clubID string) ([]ranking.TeamConfig, error)
}

// ParticipationReader reads RSVP rows.
type ParticipationReader interface {
	ListParticipations(ctx context.Context, gameIDs []string) ([]ranking.Participation, error)
}

// Ranker is what the transports need from the service.
type Ranker interface {
	FetchTeamStats(ctx context.Context, clubID string, w ranking.Window) ([]ranking.TeamStats, error)
	FetchPlayerStats(ctx context.Context, clubID string, w ranking.Window) ([]ranking.PlayerStats, error)
	FetchParticipationRanking(ctx context.Context, clubID string, w ranking.Window) ([]ranking.ParticipationRankingStats, error)
	FetchCompletionRate(ctx context.Context, clubID string, w ranking.Window) (ranking.CompletionRate, error)
	FetchMemberGames(ctx context.Context, memberID string, w ranking.Window) ([]ranking.MemberGame, error)
	Invalidate(clubID string)
}
