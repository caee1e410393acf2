package metrics

// Metrics collects ranking, lifecycle and Slack counters.
type Metrics interface {
	IncRankingRequests(kind string)
	IncRankingCacheHits(kind string)
	ObserveAggregationDuration(kind string, duration float64)
	IncGamesCompleted()
	IncGamesCanceled()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
