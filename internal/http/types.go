package http

import (
	"net/http"

	"github.com/mauv0809/clubrank/internal/attendance"
	"github.com/mauv0809/clubrank/internal/club"
	"github.com/mauv0809/clubrank/internal/config"
	"github.com/mauv0809/clubrank/internal/metrics"
	"github.com/mauv0809/clubrank/internal/notifier"
	"github.com/mauv0809/clubrank/internal/processor"
	"github.com/mauv0809/clubrank/internal/pubsub"
	"github.com/mauv0809/clubrank/internal/stats"
)

type Server struct {
	Store          club.ClubStore
	Attendance     attendance.AttendanceStore
	Ranker         stats.Ranker
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Processor      *processor.Processor
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
