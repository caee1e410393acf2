package stats

import (
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/mauv0809/clubrank/internal/metrics"
	"github.com/mauv0809/clubrank/internal/ranking"
)

// Service answers ranking requests. It fetches the rows of a club concurrently,
// hands them to the ranking package and keeps recent results in an LRU cache.
type Service struct {
	clubs      ClubReader
	attendance ParticipationReader
	metrics    metrics.Metrics
	cache      *lru.Cache
	ttl        time.Duration
	now        func() time.Time
}

// cacheEntry is a computed ranking and the moment it stops being served.
// A zero expires never expires.
type cacheEntry struct {
	value   any
	expires time.Time
}

// need selects which row sets a ranking requires beyond the games.
type need struct {
	members        bool
	teams          bool
	events         bool
	participations bool
}

// snapshot is one consistent-enough read of a club's rows for a window.
type snapshot struct {
	games          []ranking.Game
	members        []ranking.Member
	teams          []ranking.TeamConfig
	events         []ranking.GameEvent
	participations []ranking.Participation
}
