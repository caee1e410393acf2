package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RankingRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clubrank_ranking_requests_total",
			Help: "The total number of ranking requests by kind.",
		}, []string{"kind"}),
		RankingCacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clubrank_ranking_cache_hits_total",
			Help: "The total number of ranking requests answered from cache.",
		}, []string{"kind"}),
		AggregationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clubrank_aggregation_duration_seconds",
			Help:    "Time spent fetching rows and computing a ranking.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"kind"}),
		GamesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubrank_games_completed_total",
			Help: "The total number of games marked completed.",
		}),
		GamesCanceled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubrank_games_canceled_total",
			Help: "The total number of games marked canceled.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubrank_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubrank_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "clubrank_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.RankingRequests,
		s.RankingCacheHits,
		s.AggregationDuration,
		s.GamesCompleted,
		s.GamesCanceled,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRankingRequests(kind string) {
	s.RankingRequests.WithLabelValues(kind).Inc()
}

func (s *Service) IncRankingCacheHits(kind string) {
	s.RankingCacheHits.WithLabelValues(kind).Inc()
}

func (s *Service) ObserveAggregationDuration(kind string, duration float64) {
	s.AggregationDuration.WithLabelValues(kind).Observe(duration)
}

func (s *Service) IncGamesCompleted() {
	s.GamesCompleted.Inc()
}

func (s *Service) IncGamesCanceled() {
	s.GamesCanceled.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
