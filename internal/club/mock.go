package club

import (
	"context"
	"sync"
	"time"

	"github.com/mauv0809/clubrank/internal/ranking"
)

// MockStore is a mock implementation of the ClubStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	UpsertClubFunc       func(id, name string) error
	UpsertMemberFunc     func(member ranking.Member) (ranking.Member, error)
	GetMemberFunc        func(memberID string) (*ranking.Member, error)
	ListMembersFunc      func(clubID string) ([]ranking.Member, error)
	GetGodchildrenFunc   func(sponsorID string) ([]ranking.Member, error)
	CreateGameFunc       func(clubID string, date time.Time) (ranking.Game, error)
	GetGameFunc          func(gameID string) (*ranking.Game, error)
	ListGamesFunc        func(clubID string) ([]ranking.Game, error)
	UpdateGameStatusFunc func(gameID string, status ranking.GameStatus) error
	AddEventFunc         func(event ranking.GameEvent) (ranking.GameEvent, error)
	ListEventsFunc       func(gameIDs []string) ([]ranking.GameEvent, error)
	UpsertTeamConfigFunc func(team ranking.TeamConfig) error
	ListTeamConfigsFunc  func(clubID string) ([]ranking.TeamConfig, error)

	// Call records
	UpsertMemberCalls     []ranking.Member
	ListGamesCalls        []string
	ListEventsCalls       [][]string
	AddEventCalls         []ranking.GameEvent
	UpdateGameStatusCalls []struct {
		GameID string
		Status ranking.GameStatus
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertMemberCalls = nil
	m.ListGamesCalls = nil
	m.ListEventsCalls = nil
	m.AddEventCalls = nil
	m.UpdateGameStatusCalls = nil
}

func (m *MockStore) UpsertClub(_ context.Context, id, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpsertClubFunc != nil {
		return m.UpsertClubFunc(id, name)
	}
	return nil
}

func (m *MockStore) UpsertMember(_ context.Context, member ranking.Member) (ranking.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertMemberCalls = append(m.UpsertMemberCalls, member)
	if m.UpsertMemberFunc != nil {
		return m.UpsertMemberFunc(member)
	}
	return member, nil
}

func (m *MockStore) GetMember(_ context.Context, memberID string) (*ranking.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMemberFunc != nil {
		return m.GetMemberFunc(memberID)
	}
	return nil, ErrMemberNotFound
}

func (m *MockStore) ListMembers(_ context.Context, clubID string) ([]ranking.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListMembersFunc != nil {
		return m.ListMembersFunc(clubID)
	}
	return nil, nil
}

func (m *MockStore) GetGodchildren(_ context.Context, sponsorID string) ([]ranking.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetGodchildrenFunc != nil {
		return m.GetGodchildrenFunc(sponsorID)
	}
	return nil, nil
}

func (m *MockStore) CreateGame(_ context.Context, clubID string, date time.Time) (ranking.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateGameFunc != nil {
		return m.CreateGameFunc(clubID, date)
	}
	return ranking.Game{ClubID: clubID, Date: date, Status: ranking.GameScheduled}, nil
}

func (m *MockStore) GetGame(_ context.Context, gameID string) (*ranking.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetGameFunc != nil {
		return m.GetGameFunc(gameID)
	}
	return nil, ErrGameNotFound
}

func (m *MockStore) ListGames(_ context.Context, clubID string) ([]ranking.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListGamesCalls = append(m.ListGamesCalls, clubID)
	if m.ListGamesFunc != nil {
		return m.ListGamesFunc(clubID)
	}
	return nil, nil
}

func (m *MockStore) UpdateGameStatus(_ context.Context, gameID string, status ranking.GameStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateGameStatusCalls = append(m.UpdateGameStatusCalls, struct {
		GameID string
		Status ranking.GameStatus
	}{gameID, status})
	if m.UpdateGameStatusFunc != nil {
		return m.UpdateGameStatusFunc(gameID, status)
	}
	return nil
}

func (m *MockStore) AddEvent(_ context.Context, event ranking.GameEvent) (ranking.GameEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddEventCalls = append(m.AddEventCalls, event)
	if m.AddEventFunc != nil {
		return m.AddEventFunc(event)
	}
	return event, nil
}

func (m *MockStore) ListEvents(_ context.Context, gameIDs []string) ([]ranking.GameEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListEventsCalls = append(m.ListEventsCalls, gameIDs)
	if m.ListEventsFunc != nil {
		return m.ListEventsFunc(gameIDs)
	}
	return nil, nil
}

func (m *MockStore) UpsertTeamConfig(_ context.Context, team ranking.TeamConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpsertTeamConfigFunc != nil {
		return m.UpsertTeamConfigFunc(team)
	}
	return nil
}

func (m *MockStore) ListTeamConfigs(_ context.Context, clubID string) ([]ranking.TeamConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListTeamConfigsFunc != nil {
		return m.ListTeamConfigsFunc(clubID)
	}
	return nil, nil
}
