package notifier

import (
	"sync"

	"github.com/mauv0809/clubrank/internal/ranking"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for send functions
	SendPlayerLeaderboardFunc func(stats []ranking.PlayerStats, w ranking.Window) error
	SendTeamStandingsFunc     func(stats []ranking.TeamStats, w ranking.Window) error

	// Call records
	SendPlayerLeaderboardCalls []struct {
		Stats  []ranking.PlayerStats
		Window ranking.Window
		DryRun bool
	}
	SendTeamStandingsCalls []struct {
		Stats  []ranking.TeamStats
		Window ranking.Window
		DryRun bool
	}
	SendParticipationRankingCalls [][]ranking.ParticipationRankingStats

	// Call records for format functions
	FormatPlayerStatsCalls []struct {
		Stats *ranking.PlayerStats
		Games []ranking.MemberGame
	}
	FormatPlayerNotFoundCalls []string
	LastWindow                ranking.Window
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPlayerLeaderboardCalls = nil
	m.SendTeamStandingsCalls = nil
	m.SendParticipationRankingCalls = nil
	m.FormatPlayerStatsCalls = nil
	m.FormatPlayerNotFoundCalls = nil
}

func (m *Mock) SendPlayerLeaderboard(stats []ranking.PlayerStats, w ranking.Window, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPlayerLeaderboardCalls = append(m.SendPlayerLeaderboardCalls, struct {
		Stats  []ranking.PlayerStats
		Window ranking.Window
		DryRun bool
	}{stats, w, dryRun})
	if m.SendPlayerLeaderboardFunc != nil {
		return m.SendPlayerLeaderboardFunc(stats, w)
	}
	return nil
}

func (m *Mock) SendTeamStandings(stats []ranking.TeamStats, w ranking.Window, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendTeamStandingsCalls = append(m.SendTeamStandingsCalls, struct {
		Stats  []ranking.TeamStats
		Window ranking.Window
		DryRun bool
	}{stats, w, dryRun})
	if m.SendTeamStandingsFunc != nil {
		return m.SendTeamStandingsFunc(stats, w)
	}
	return nil
}

func (m *Mock) SendParticipationRanking(stats []ranking.ParticipationRankingStats, w ranking.Window, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendParticipationRankingCalls = append(m.SendParticipationRankingCalls, stats)
	return nil
}

func (m *Mock) FormatPlayerLeaderboardResponse(stats []ranking.PlayerStats, w ranking.Window) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastWindow = w
	return "formatted_player_leaderboard", nil
}

func (m *Mock) FormatTeamStandingsResponse(stats []ranking.TeamStats, w ranking.Window) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastWindow = w
	return "formatted_team_standings", nil
}

func (m *Mock) FormatParticipationRankingResponse(stats []ranking.ParticipationRankingStats, w ranking.Window) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastWindow = w
	return "formatted_participation_ranking", nil
}

func (m *Mock) FormatPlayerStatsResponse(stats *ranking.PlayerStats, games []ranking.MemberGame, w ranking.Window) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastWindow = w
	m.FormatPlayerStatsCalls = append(m.FormatPlayerStatsCalls, struct {
		Stats *ranking.PlayerStats
		Games []ranking.MemberGame
	}{stats, games})
	return "formatted_player_stats", nil
}

func (m *Mock) FormatPlayerNotFoundResponse(query string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FormatPlayerNotFoundCalls = append(m.FormatPlayerNotFoundCalls, query)
	return "formatted_player_not_found", nil
}
