package ranking

import (
	"fmt"
	"sort"
	"strings"
)

// Order is the direction of a ranking sort.
type Order int

const (
	Desc Order = iota
	Asc
)

// ParseOrder accepts "asc", "desc" or an empty string (descending).
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "desc":
		return Desc, nil
	case "asc":
		return Asc, nil
	}
	return Desc, fmt.Errorf("invalid sort order %q", s)
}

// Rank stable-sorts items by key and, when assign is non-nil, hands each
// item its 1-based position. Equal keys keep their input order.
func Rank[T any](items []T, key func(T) float64, order Order, assign func(*T, int)) {
	sort.SliceStable(items, func(i, j int) bool {
		if order == Asc {
			return key(items[i]) < key(items[j])
		}
		return key(items[i]) > key(items[j])
	})
	if assign == nil {
		return
	}
	for i := range items {
		assign(&items[i], i+1)
	}
}

var playerSortKeys = map[string]func(PlayerStats) float64{
	"points":       func(p PlayerStats) float64 { return p.Points },
	"goals":        func(p PlayerStats) float64 { return float64(p.Goals) },
	"saves":        func(p PlayerStats) float64 { return float64(p.Saves) },
	"games":        func(p PlayerStats) float64 { return float64(p.Games) },
	"wins":         func(p PlayerStats) float64 { return float64(p.Wins) },
	"own_goals":    func(p PlayerStats) float64 { return float64(p.OwnGoals) },
	"goal_average": func(p PlayerStats) float64 { return p.GoalAverage },
}

var participationSortKeys = map[string]func(ParticipationRankingStats) float64{
	"points":             func(p ParticipationRankingStats) float64 { return p.Points },
	"participation_rate": func(p ParticipationRankingStats) float64 { return p.ParticipationRate },
	"games":              func(p ParticipationRankingStats) float64 { return float64(p.Games) },
	"membership_time":    func(p ParticipationRankingStats) float64 { return float64(p.MembershipTime) },
	"age":                func(p ParticipationRankingStats) float64 { return float64(p.Age) },
}

func setPlayerPosition(p *PlayerStats, pos int) { p.Position = pos }

func setParticipationPosition(p *ParticipationRankingStats, pos int) { p.Position = pos }

// SortPlayers re-sorts a player leaderboard by a named field and reassigns positions.
// An empty field means "points".
func SortPlayers(stats []PlayerStats, field string, order Order) error {
	if field == "" {
		field = "points"
	}
	key, ok := playerSortKeys[field]
	if !ok {
		return fmt.Errorf("unknown player sort field %q", field)
	}
	Rank(stats, key, order, setPlayerPosition)
	return nil
}

// SortParticipation re-sorts a participation ranking for display. Positions
// stay the ones assigned by points at aggregation time.
func SortParticipation(stats []ParticipationRankingStats, field string, order Order) error {
	if field == "" {
		field = "points"
	}
	key, ok := participationSortKeys[field]
	if !ok {
		return fmt.Errorf("unknown participation sort field %q", field)
	}
	Rank(stats, key, order, nil)
	return nil
}
