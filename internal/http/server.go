package http

import (
	"net/http"

	"github.com/mauv0809/clubrank/internal/attendance"
	"github.com/mauv0809/clubrank/internal/club"
	"github.com/mauv0809/clubrank/internal/config"
	"github.com/mauv0809/clubrank/internal/http/handlers"
	"github.com/mauv0809/clubrank/internal/metrics"
	"github.com/mauv0809/clubrank/internal/notifier"
	"github.com/mauv0809/clubrank/internal/processor"
	"github.com/mauv0809/clubrank/internal/pubsub"
	"github.com/mauv0809/clubrank/internal/stats"
)

func NewServer(store club.ClubStore, att attendance.AttendanceStore, ranker stats.Ranker, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, processor *processor.Processor, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Attendance:     att,
		Ranker:         ranker,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Processor:      processor,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	clubID := s.Cfg.ClubID
	slackVerified := slackVerificationMiddleware(s.Cfg.Slack.SigningSecret)
	finder := club.NewMemberFinder(s.Store)

	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(handlers.HealthCheckHandler(), paramsMiddleware))

	s.Router.Handle("GET /api/team-stats", Chain(handlers.TeamStatsHandler(s.Ranker, clubID), paramsMiddleware))
	s.Router.Handle("GET /api/player-stats", Chain(handlers.PlayerStatsHandler(s.Ranker, clubID), paramsMiddleware))
	s.Router.Handle("GET /api/participation-ranking", Chain(handlers.ParticipationRankingHandler(s.Ranker, clubID), paramsMiddleware))
	s.Router.Handle("GET /api/completion-rate", Chain(handlers.CompletionRateHandler(s.Ranker, clubID), paramsMiddleware))
	s.Router.Handle("GET /api/member-games", Chain(handlers.MemberGamesHandler(s.Ranker), paramsMiddleware))
	s.Router.Handle("GET /api/members", Chain(handlers.ListMembersHandler(s.Store, clubID), paramsMiddleware))
	s.Router.Handle("GET /api/members/godchildren", Chain(handlers.GodchildrenHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /api/games", Chain(handlers.ListGamesHandler(s.Store, clubID), paramsMiddleware))

	s.Router.Handle("POST /api/games/complete", Chain(handlers.CompleteGameHandler(s.Processor), paramsMiddleware))
	s.Router.Handle("POST /api/games/cancel", Chain(handlers.CancelGameHandler(s.Processor), paramsMiddleware))
	s.Router.Handle("POST /api/attendance", Chain(handlers.AttendanceHandler(s.Store, s.Attendance, s.Ranker), paramsMiddleware))

	s.Router.Handle("POST /pubsub/game-completed", Chain(handlers.GameEventHandler(s.Processor, s.pubsub), paramsMiddleware))

	s.Router.Handle("POST /slack/command/leaderboard", Chain(handlers.LeaderboardCommandHandler(s.Ranker, s.Notifier, clubID), paramsMiddleware, slackVerified))
	s.Router.Handle("POST /slack/command/standings", Chain(handlers.StandingsCommandHandler(s.Ranker, s.Notifier, clubID), paramsMiddleware, slackVerified))
	s.Router.Handle("POST /slack/command/ranking", Chain(handlers.RankingCommandHandler(s.Ranker, s.Notifier, clubID), paramsMiddleware, slackVerified))
	s.Router.Handle("POST /slack/command/player-stats", Chain(handlers.PlayerStatsCommandHandler(s.Ranker, finder, s.Notifier, clubID), paramsMiddleware, slackVerified))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
