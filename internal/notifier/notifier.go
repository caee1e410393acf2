package notifier

import (
	"github.com/mauv0809/clubrank/internal/ranking"
)

// Notifier posts rankings to the club channel and renders slash-command replies.
type Notifier interface {
	// Posted to the club channel, e.g. after a game is completed
	SendPlayerLeaderboard(stats []ranking.PlayerStats, w ranking.Window, dryRun bool) error
	SendTeamStandings(stats []ranking.TeamStats, w ranking.Window, dryRun bool) error
	SendParticipationRanking(stats []ranking.ParticipationRankingStats, w ranking.Window, dryRun bool) error

	// For formatting responses for slash commands
	FormatPlayerLeaderboardResponse(stats []ranking.PlayerStats, w ranking.Window) (any, error)
	FormatTeamStandingsResponse(stats []ranking.TeamStats, w ranking.Window) (any, error)
	FormatParticipationRankingResponse(stats []ranking.ParticipationRankingStats, w ranking.Window) (any, error)
	FormatPlayerStatsResponse(stats *ranking.PlayerStats, games []ranking.MemberGame, w ranking.Window) (any, error)
	FormatPlayerNotFoundResponse(query string) (any, error)
}
