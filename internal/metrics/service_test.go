package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CountsByKind(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncRankingRequests(KindPlayers)
	s.IncRankingRequests(KindPlayers)
	s.IncRankingRequests(KindTeams)
	s.IncRankingCacheHits(KindPlayers)
	s.IncGamesCompleted()
	s.ObserveAggregationDuration(KindTeams, 0.02)

	assert.Equal(t, 2.0, testutil.ToFloat64(s.RankingRequests.WithLabelValues(KindPlayers)))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.RankingRequests.WithLabelValues(KindTeams)))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.RankingCacheHits.WithLabelValues(KindPlayers)))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.GamesCompleted))
	assert.Equal(t, 1, testutil.CollectAndCount(s.AggregationDuration))
}

func TestMetricsHandler_ServesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)
	s.SetStartupTime(1.5)

	rr := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "clubrank_startup_duration_seconds 1.5")
}
