package attendance

import (
	"context"
	"sync"

	"github.com/mauv0809/clubrank/internal/ranking"
)

// MockStore is a mock implementation of AttendanceStore for testing.
type MockStore struct {
	mu sync.Mutex

	RespondFunc            func(gameID, memberID string, status ranking.ParticipationStatus) error
	RecordRosterFunc       func(gameID string, responses []Response) error
	ListParticipationsFunc func(gameIDs []string) ([]ranking.Participation, error)
	SummaryFunc            func(gameID string) (Summary, error)

	RespondCalls []struct {
		GameID   string
		MemberID string
		Status   ranking.ParticipationStatus
	}
	ListParticipationsCalls [][]string
}

func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Respond(_ context.Context, gameID, memberID string, status ranking.ParticipationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RespondCalls = append(m.RespondCalls, struct {
		GameID   string
		MemberID string
		Status   ranking.ParticipationStatus
	}{gameID, memberID, status})
	if m.RespondFunc != nil {
		return m.RespondFunc(gameID, memberID, status)
	}
	return nil
}

func (m *MockStore) RecordRoster(_ context.Context, gameID string, responses []Response) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RecordRosterFunc != nil {
		return m.RecordRosterFunc(gameID, responses)
	}
	return nil
}

func (m *MockStore) ListParticipations(_ context.Context, gameIDs []string) ([]ranking.Participation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListParticipationsCalls = append(m.ListParticipationsCalls, gameIDs)
	if m.ListParticipationsFunc != nil {
		return m.ListParticipationsFunc(gameIDs)
	}
	return nil, nil
}

func (m *MockStore) Summary(_ context.Context, gameID string) (Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SummaryFunc != nil {
		return m.SummaryFunc(gameID)
	}
	return Summary{GameID: gameID}, nil
}
