package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	rankingRequests  map[string]int
	rankingCacheHits map[string]int
	durations        map[string][]float64
	gamesCompleted   int
	gamesCanceled    int
	slackNotifSent   int
	slackNotifFailed int
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		rankingRequests:  make(map[string]int),
		rankingCacheHits: make(map[string]int),
		durations:        make(map[string][]float64),
	}
}

func (m *Mock) IncRankingRequests(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rankingRequests[kind]++
}

func (m *Mock) IncRankingCacheHits(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rankingCacheHits[kind]++
}

func (m *Mock) ObserveAggregationDuration(kind string, duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.durations[kind] = append(m.durations[kind], duration)
}

func (m *Mock) IncGamesCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gamesCompleted++
}

func (m *Mock) IncGamesCanceled() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gamesCanceled++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// RankingRequests returns how often IncRankingRequests was called for kind.
func (m *Mock) RankingRequests(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rankingRequests[kind]
}

// RankingCacheHits returns how often IncRankingCacheHits was called for kind.
func (m *Mock) RankingCacheHits(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rankingCacheHits[kind]
}

// AggregationDurations returns the durations observed for kind.
func (m *Mock) AggregationDurations(kind string) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.durations[kind]...)
}

func (m *Mock) GamesCompleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gamesCompleted
}

func (m *Mock) GamesCanceled() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gamesCanceled
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
