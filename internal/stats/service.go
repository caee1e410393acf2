package stats

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru"
	"github.com/mauv0809/clubrank/internal/metrics"
	"github.com/mauv0809/clubrank/internal/ranking"
	"golang.org/x/sync/errgroup"
)

var _ Ranker = (*Service)(nil)

// New creates the ranking service. A cacheSize of 0 disables caching. Cached
// rankings are recomputed once they are older than cacheTTL; a cacheTTL of 0
// keeps them until invalidated or evicted. now defaults to time.Now.
func New(clubs ClubReader, attendance ParticipationReader, m metrics.Metrics, cacheSize int, cacheTTL time.Duration, now func() time.Time) (*Service, error) {
	if now == nil {
		now = time.Now
	}
	s := &Service{
		clubs:      clubs,
		attendance: attendance,
		metrics:    m,
		ttl:        cacheTTL,
		now:        now,
	}
	if cacheSize > 0 {
		cache, err := lru.New(cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create ranking cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

// FetchTeamStats returns the team standings of a club for the window.
func (s *Service) FetchTeamStats(ctx context.Context, clubID string, w ranking.Window) ([]ranking.TeamStats, error) {
	return cached(s, metrics.KindTeams, clubID, w, true, func() ([]ranking.TeamStats, error) {
		snap, err := s.load(ctx, clubID, w, need{teams: true, events: true})
		if err != nil {
			return nil, err
		}
		return ranking.AggregateTeams(snap.games, snap.events, snap.teams), nil
	})
}

// FetchPlayerStats returns the player leaderboard of a club for the window.
func (s *Service) FetchPlayerStats(ctx context.Context, clubID string, w ranking.Window) ([]ranking.PlayerStats, error) {
	return cached(s, metrics.KindPlayers, clubID, w, true, func() ([]ranking.PlayerStats, error) {
		snap, err := s.load(ctx, clubID, w, need{members: true, events: true, participations: true})
		if err != nil {
			return nil, err
		}
		return ranking.AggregatePlayers(snap.games, snap.members, snap.participations, snap.events), nil
	})
}

// FetchParticipationRanking returns the participation ranking of a club for
// the window. Results for an open-ended year depend on today's date and are
// never cached.
func (s *Service) FetchParticipationRanking(ctx context.Context, clubID string, w ranking.Window) ([]ranking.ParticipationRankingStats, error) {
	return cached(s, metrics.KindParticipation, clubID, w, !w.IsAll(), func() ([]ranking.ParticipationRankingStats, error) {
		snap, err := s.load(ctx, clubID, w, need{members: true, participations: true})
		if err != nil {
			return nil, err
		}
		return ranking.AggregateParticipation(snap.members, snap.games, snap.participations, w.ReferenceDate(s.now())), nil
	})
}

// FetchCompletionRate returns how many of the club's decided games were played.
func (s *Service) FetchCompletionRate(ctx context.Context, clubID string, w ranking.Window) (ranking.CompletionRate, error) {
	rates, err := cached(s, metrics.KindCompletion, clubID, w, true, func() ([]ranking.CompletionRate, error) {
		snap, err := s.load(ctx, clubID, w, need{})
		if err != nil {
			return nil, err
		}
		return []ranking.CompletionRate{ranking.ComputeCompletionRate(snap.games)}, nil
	})
	if err != nil {
		return ranking.CompletionRate{}, err
	}
	return rates[0], nil
}

// FetchMemberGames returns a member's personal game log for the window. The
// member's club is looked up from the member.
func (s *Service) FetchMemberGames(ctx context.Context, memberID string, w ranking.Window) ([]ranking.MemberGame, error) {
	s.metrics.IncRankingRequests(metrics.KindMemberGames)
	start := time.Now()

	member, err := s.clubs.GetMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member %s: %w", memberID, err)
	}
	snap, err := s.load(ctx, member.ClubID, w, need{events: true, participations: true})
	if err != nil {
		return nil, err
	}
	games := ranking.MemberGames(memberID, snap.games, snap.participations, snap.events)
	s.metrics.ObserveAggregationDuration(metrics.KindMemberGames, time.Since(start).Seconds())
	return games, nil
}

// Invalidate drops every cached ranking of a club.
func (s *Service) Invalidate(clubID string) {
	if s.cache == nil {
		return
	}
	prefix := clubID + "|"
	removed := 0
	for _, k := range s.cache.Keys() {
		if key, ok := k.(string); ok && strings.HasPrefix(key, prefix) {
			s.cache.Remove(key)
			removed++
		}
	}
	log.Debug("Invalidated cached rankings", "club_id", clubID, "entries", removed)
}

// cached serves compute from the cache when allowed. Callers always get their
// own copy of the slice, so re-sorting a result never touches the cache.
func cached[T any](s *Service, kind, clubID string, w ranking.Window, cacheable bool, compute func() ([]T, error)) ([]T, error) {
	s.metrics.IncRankingRequests(kind)
	key := fmt.Sprintf("%s|%s|%s", clubID, kind, w)

	if cacheable && s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			entry := v.(cacheEntry)
			if entry.expires.IsZero() || s.now().Before(entry.expires) {
				s.metrics.IncRankingCacheHits(kind)
				log.Debug("Ranking cache hit", "key", key)
				return slices.Clone(entry.value.([]T)), nil
			}
			s.cache.Remove(key)
			log.Debug("Ranking cache entry expired", "key", key)
		}
	}

	start := time.Now()
	result, err := compute()
	if err != nil {
		log.Error("Failed to compute ranking", "kind", kind, "club_id", clubID, "window", w.String(), "error", err)
		return nil, err
	}
	s.metrics.ObserveAggregationDuration(kind, time.Since(start).Seconds())

	if cacheable && s.cache != nil {
		entry := cacheEntry{value: slices.Clone(result)}
		if s.ttl > 0 {
			entry.expires = s.now().Add(s.ttl)
		}
		s.cache.Add(key, entry)
	}
	return result, nil
}

// load fetches the club's rows for a window. Games, members and team
// configurations are read in parallel; events and participations follow for
// the window's games. The first failure cancels the rest.
func (s *Service) load(ctx context.Context, clubID string, w ranking.Window, n need) (*snapshot, error) {
	snap := &snapshot{
		members: []ranking.Member{},
		teams:   []ranking.TeamConfig{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		games, err := s.clubs.ListGames(gctx, clubID)
		if err != nil {
			return fmt.Errorf("failed to fetch games: %w", err)
		}
		snap.games = ranking.FilterGames(games, w)
		return nil
	})
	if n.members {
		g.Go(func() error {
			members, err := s.clubs.ListMembers(gctx, clubID)
			if err != nil {
				return fmt.Errorf("failed to fetch members: %w", err)
			}
			snap.members = members
			return nil
		})
	}
	if n.teams {
		g.Go(func() error {
			teams, err := s.clubs.ListTeamConfigs(gctx, clubID)
			if err != nil {
				return fmt.Errorf("failed to fetch team configurations: %w", err)
			}
			snap.teams = teams
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ids := make([]string, len(snap.games))
	for i, game := range snap.games {
		ids[i] = game.ID
	}

	g, gctx = errgroup.WithContext(ctx)
	if n.events {
		g.Go(func() error {
			events, err := s.clubs.ListEvents(gctx, ids)
			if err != nil {
				return fmt.Errorf("failed to fetch events: %w", err)
			}
			snap.events = events
			return nil
		})
	}
	if n.participations {
		g.Go(func() error {
			parts, err := s.attendance.ListParticipations(gctx, ids)
			if err != nil {
				return fmt.Errorf("failed to fetch participations: %w", err)
			}
			snap.participations = parts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debug("Loaded club rows", "club_id", clubID, "window", w.String(), "games", len(snap.games), "events", len(snap.events), "participations", len(snap.participations))
	return snap, nil
}
