package metrics

import "github.com/prometheus/client_golang/prometheus"

// Ranking kinds used as the "kind" label.
const (
	KindTeams         = "teams"
	KindPlayers       = "players"
	KindParticipation = "participation"
	KindCompletion    = "completion"
	KindMemberGames   = "member_games"
)

// Service holds all the Prometheus metrics for the application.
type Service struct {
	RankingRequests     *prometheus.CounterVec
	RankingCacheHits    *prometheus.CounterVec
	AggregationDuration *prometheus.HistogramVec
	GamesCompleted      prometheus.Counter
	GamesCanceled       prometheus.Counter
	SlackNotifSent      prometheus.Counter
	SlackNotifFailed    prometheus.Counter
	StartupTimeSeconds  prometheus.Gauge
}
