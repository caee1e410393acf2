package processor

import (
	"errors"

	"github.com/mauv0809/clubrank/internal/metrics"
	"github.com/mauv0809/clubrank/internal/pubsub"
	"github.com/mauv0809/clubrank/internal/stats"
)

// ErrGameDecided is returned when completing or canceling a game that is no longer scheduled.
var ErrGameDecided = errors.New("game is already completed or canceled")

// Processor drives games through their lifecycle and reacts to the resulting events.
type Processor struct {
	store    Store
	ranker   stats.Ranker
	pubsub   pubsub.PubSubClient
	notifier Notifier
	metrics  metrics.Metrics
}
