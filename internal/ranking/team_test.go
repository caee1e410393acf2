package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var whiteGreen = []TeamConfig{
	{ClubID: "club1", Name: "white", Color: "#ffffff", Active: true},
	{ClubID: "club1", Name: "green", Color: "#00ff00", Active: true},
}

func TestAggregateTeams(t *testing.T) {
	t.Run("own-goal with two teams credits one full goal and draws", func(t *testing.T) {
		games := []Game{completedGame("g1", day(2024, time.March, 2))}
		events := []GameEvent{
			ev("g1", "a", "white", EventGoal),
			ev("g1", "a", "white", EventGoal),
			ev("g1", "b", "white", EventOwnGoal),
			ev("g1", "c", "green", EventGoal),
		}

		stats := AggregateTeams(games, events, whiteGreen)

		require.Len(t, stats, 2)
		for _, s := range stats {
			assert.Equal(t, 2, s.GoalsScored, s.Team)
			assert.Equal(t, 2, s.GoalsConceded, s.Team)
			assert.Equal(t, 1, s.Draws, s.Team)
			assert.Equal(t, 1, s.Points, s.Team)
			assert.Equal(t, "0%", s.WinRate, s.Team)
		}
	})

	t.Run("winner gets three points and leads the table", func(t *testing.T) {
		games := []Game{
			completedGame("g1", day(2024, time.March, 2)),
			completedGame("g2", day(2024, time.March, 9)),
		}
		events := []GameEvent{
			ev("g1", "a", "white", EventGoal),
			ev("g1", "c", "green", EventGoal),
			ev("g1", "c", "green", EventGoal),
			ev("g2", "c", "green", EventGoal),
			ev("g2", "a", "white", EventSave),
		}

		stats := AggregateTeams(games, events, whiteGreen)

		require.Len(t, stats, 2)
		assert.Equal(t, "green", stats[0].Team)
		assert.Equal(t, 6, stats[0].Points)
		assert.Equal(t, 2, stats[0].Wins)
		assert.Equal(t, 3, stats[0].GoalsScored)
		assert.Equal(t, 1, stats[0].GoalsConceded)
		assert.Equal(t, "100%", stats[0].WinRate)
		assert.Equal(t, "white", stats[1].Team)
		assert.Equal(t, 0, stats[1].Points)
		assert.Equal(t, 2, stats[1].Losses)
		assert.Equal(t, 2, stats[1].TotalGames)
	})

	t.Run("three teams split an own-goal and compare against the best opponent", func(t *testing.T) {
		teams := append(append([]TeamConfig{}, whiteGreen...), TeamConfig{Name: "blue", Active: true})
		games := []Game{completedGame("g1", day(2024, time.April, 1))}
		events := []GameEvent{
			ev("g1", "a", "white", EventGoal),
			ev("g1", "b", "green", EventOwnGoal),
			ev("g1", "c", "blue", EventSave),
		}

		stats := AggregateTeams(games, events, teams)
		byTeam := map[string]TeamStats{}
		for _, s := range stats {
			byTeam[s.Team] = s
		}

		// white 1.5 -> 2, blue 0.5 -> 1, green 0
		assert.Equal(t, 2, byTeam["white"].GoalsScored)
		assert.Equal(t, 1, byTeam["white"].Wins)
		assert.Equal(t, 1, byTeam["blue"].GoalsScored)
		assert.Equal(t, 1, byTeam["blue"].Losses)
		assert.Equal(t, 0, byTeam["green"].GoalsScored)
		assert.Equal(t, 3, byTeam["green"].GoalsConceded)
	})

	t.Run("scheduled and canceled games are ignored", func(t *testing.T) {
		games := []Game{
			{ID: "g1", Date: day(2024, time.March, 2), Status: GameScheduled},
			{ID: "g2", Date: day(2024, time.March, 3), Status: GameCanceled},
		}
		events := []GameEvent{ev("g1", "a", "white", EventGoal), ev("g2", "a", "white", EventGoal)}

		stats := AggregateTeams(games, events, whiteGreen)

		require.Len(t, stats, 2)
		for _, s := range stats {
			assert.Zero(t, s.TotalGames)
			assert.Equal(t, "0%", s.WinRate)
		}
	})

	t.Run("inactive configured teams are left out", func(t *testing.T) {
		teams := []TeamConfig{{Name: "white", Active: true}, {Name: "green", Active: false}}
		games := []Game{completedGame("g1", day(2024, time.March, 2))}
		events := []GameEvent{ev("g1", "a", "green", EventGoal), ev("g1", "b", "white", EventSave)}

		stats := AggregateTeams(games, events, teams)

		require.Len(t, stats, 1)
		assert.Equal(t, "white", stats[0].Team)
		assert.Equal(t, 1, stats[0].Losses)
		assert.Equal(t, 1, stats[0].GoalsConceded)
	})

	t.Run("falls back to teams from the event log without configuration", func(t *testing.T) {
		games := []Game{completedGame("g1", day(2024, time.March, 2))}
		events := []GameEvent{ev("g1", "a", "red", EventGoal), ev("g1", "b", "black", EventSave)}

		stats := AggregateTeams(games, events, nil)

		require.Len(t, stats, 2)
		assert.Equal(t, "red", stats[0].Team)
		assert.Equal(t, 3, stats[0].Points)
		assert.Equal(t, "black", stats[1].Team)
	})

	t.Run("ties keep configuration order", func(t *testing.T) {
		stats := AggregateTeams(nil, nil, whiteGreen)

		require.Len(t, stats, 2)
		assert.Equal(t, "white", stats[0].Team)
		assert.Equal(t, "green", stats[1].Team)
	})
}
