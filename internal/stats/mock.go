package stats

import (
	"context"
	"sync"

	"github.com/mauv0809/clubrank/internal/ranking"
)

// MockRanker is a mock implementation of Ranker for testing.
type MockRanker struct {
	mu sync.Mutex

	FetchTeamStatsFunc            func(clubID string, w ranking.Window) ([]ranking.TeamStats, error)
	FetchPlayerStatsFunc          func(clubID string, w ranking.Window) ([]ranking.PlayerStats, error)
	FetchParticipationRankingFunc func(clubID string, w ranking.Window) ([]ranking.ParticipationRankingStats, error)
	FetchCompletionRateFunc       func(clubID string, w ranking.Window) (ranking.CompletionRate, error)
	FetchMemberGamesFunc          func(memberID string, w ranking.Window) ([]ranking.MemberGame, error)

	// Call records
	FetchCalls      []FetchCall
	InvalidateCalls []string
}

// FetchCall records one Fetch* call.
type FetchCall struct {
	Kind   string
	ID     string
	Window ranking.Window
}

func NewMock() *MockRanker {
	return &MockRanker{}
}

func (m *MockRanker) record(kind, id string, w ranking.Window) {
	m.FetchCalls = append(m.FetchCalls, FetchCall{Kind: kind, ID: id, Window: w})
}

func (m *MockRanker) FetchTeamStats(_ context.Context, clubID string, w ranking.Window) ([]ranking.TeamStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("teams", clubID, w)
	if m.FetchTeamStatsFunc != nil {
		return m.FetchTeamStatsFunc(clubID, w)
	}
	return []ranking.TeamStats{}, nil
}

func (m *MockRanker) FetchPlayerStats(_ context.Context, clubID string, w ranking.Window) ([]ranking.PlayerStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("players", clubID, w)
	if m.FetchPlayerStatsFunc != nil {
		return m.FetchPlayerStatsFunc(clubID, w)
	}
	return []ranking.PlayerStats{}, nil
}

func (m *MockRanker) FetchParticipationRanking(_ context.Context, clubID string, w ranking.Window) ([]ranking.ParticipationRankingStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("participation", clubID, w)
	if m.FetchParticipationRankingFunc != nil {
		return m.FetchParticipationRankingFunc(clubID, w)
	}
	return []ranking.ParticipationRankingStats{}, nil
}

func (m *MockRanker) FetchCompletionRate(_ context.Context, clubID string, w ranking.Window) (ranking.CompletionRate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("completion", clubID, w)
	if m.FetchCompletionRateFunc != nil {
		return m.FetchCompletionRateFunc(clubID, w)
	}
	return ranking.CompletionRate{}, nil
}

func (m *MockRanker) FetchMemberGames(_ context.Context, memberID string, w ranking.Window) ([]ranking.MemberGame, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("member_games", memberID, w)
	if m.FetchMemberGamesFunc != nil {
		return m.FetchMemberGamesFunc(memberID, w)
	}
	return []ranking.MemberGame{}, nil
}

func (m *MockRanker) Invalidate(clubID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InvalidateCalls = append(m.InvalidateCalls, clubID)
}
