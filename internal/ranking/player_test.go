package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregatePlayers(t *testing.T) {
	members := []Member{
		activeMember("a", "Alice"),
		activeMember("b", "Bob"),
		activeMember("c", "Carla"),
		{ID: "d", Name: "Dormant", Status: MemberInactive},
	}

	t.Run("scores goals, own-goals, saves and results", func(t *testing.T) {
		games := []Game{completedGame("g1", day(2024, time.March, 2))}
		parts := []Participation{confirmed("g1", "a"), confirmed("g1", "b"), confirmed("g1", "c"), confirmed("g1", "d")}
		events := []GameEvent{
			ev("g1", "a", "white", EventGoal),
			ev("g1", "a", "white", EventGoal),
			ev("g1", "b", "green", EventOwnGoal),
			ev("g1", "b", "green", EventSave),
		}

		stats := AggregatePlayers(games, members, parts, events)

		require.Len(t, stats, 3)

		assert.Equal(t, "a", stats[0].MemberID)
		assert.Equal(t, 1, stats[0].Position)
		assert.Equal(t, 2, stats[0].Goals)
		assert.Equal(t, 1, stats[0].Wins)
		assert.InDelta(t, 6.0, stats[0].Points, 1e-9)
		assert.InDelta(t, 2.0, stats[0].GoalAverage, 1e-9)
		assert.Equal(t, "100%", stats[0].WinRate)

		// No events of her own, so no result.
		assert.Equal(t, "c", stats[1].MemberID)
		assert.Equal(t, 2, stats[1].Position)
		assert.Equal(t, 1, stats[1].Games)
		assert.Zero(t, stats[1].Wins+stats[1].Draws+stats[1].Losses)
		assert.InDelta(t, 1.0, stats[1].Points, 1e-9)

		assert.Equal(t, "b", stats[2].MemberID)
		assert.Equal(t, 3, stats[2].Position)
		assert.Equal(t, 1, stats[2].Losses)
		assert.Equal(t, 1, stats[2].OwnGoals)
		assert.Equal(t, 1, stats[2].Saves)
		assert.InDelta(t, 0.20, stats[2].Points, 1e-9)
		assert.Equal(t, "0%", stats[2].WinRate)
	})

	t.Run("inactive members are left out but their goals still decide the game", func(t *testing.T) {
		games := []Game{completedGame("g1", day(2024, time.March, 2))}
		parts := []Participation{confirmed("g1", "a"), confirmed("g1", "b"), confirmed("g1", "d")}
		events := []GameEvent{
			ev("g1", "a", "white", EventGoal),
			ev("g1", "d", "green", EventGoal),
			ev("g1", "d", "green", EventGoal),
			ev("g1", "d", "green", EventSave),
			ev("g1", "b", "green", EventSave),
		}

		stats := AggregatePlayers(games, members, parts, events)

		require.Len(t, stats, 2)
		for _, s := range stats {
			assert.NotEqual(t, "d", s.MemberID)
		}

		// Green won 2-1 on Dormant's goals.
		assert.Equal(t, "b", stats[0].MemberID)
		assert.Equal(t, 1, stats[0].Wins)
		assert.Equal(t, 0, stats[0].Goals)
		assert.InDelta(t, 4.2, stats[0].Points, 1e-9)

		assert.Equal(t, "a", stats[1].MemberID)
		assert.Equal(t, 1, stats[1].Losses)
		assert.InDelta(t, 2.0, stats[1].Points, 1e-9)
	})

	t.Run("only completed games with events count", func(t *testing.T) {
		games := []Game{
			completedGame("g1", day(2024, time.March, 2)),
			{ID: "g2", Date: day(2024, time.March, 9), Status: GameScheduled},
			completedGame("g3", day(2024, time.March, 16)),
		}
		parts := []Participation{
			confirmed("g1", "a"),
			confirmed("g2", "a"),
			confirmed("g3", "a"),
			{GameID: "g1", MemberID: "b", Status: ParticipationDeclined},
		}
		events := []GameEvent{
			ev("g1", "a", "white", EventSave),
			ev("g2", "a", "white", EventGoal),
		}

		stats := AggregatePlayers(games, members, parts, events)

		require.Len(t, stats, 1)
		assert.Equal(t, 1, stats[0].Games)
		assert.Equal(t, 0, stats[0].Goals)
		assert.Equal(t, 1, stats[0].Saves)
		// Alone in the game: against an opponent max of zero it is a draw.
		assert.Equal(t, 1, stats[0].Draws)
		assert.InDelta(t, 2.20, stats[0].Points, 1e-9)
	})

	t.Run("duplicate participation rows count once", func(t *testing.T) {
		games := []Game{completedGame("g1", day(2024, time.March, 2))}
		parts := []Participation{confirmed("g1", "a"), confirmed("g1", "a")}
		events := []GameEvent{ev("g1", "", "white", EventGoal)}

		stats := AggregatePlayers(games, members, parts, events)

		require.Len(t, stats, 1)
		assert.Equal(t, 1, stats[0].Games)
	})

	t.Run("no games yields no lines", func(t *testing.T) {
		stats := AggregatePlayers(nil, members, nil, nil)
		assert.Empty(t, stats)
	})

	t.Run("equal points keep first appearance order", func(t *testing.T) {
		games := []Game{completedGame("g1", day(2024, time.March, 2))}
		parts := []Participation{confirmed("g1", "c"), confirmed("g1", "a")}
		events := []GameEvent{ev("g1", "", "white", EventGoal)}

		stats := AggregatePlayers(games, members, parts, events)

		require.Len(t, stats, 2)
		assert.Equal(t, "c", stats[0].MemberID)
		assert.Equal(t, "a", stats[1].MemberID)
		assert.Equal(t, 2, stats[1].Position)
	})
}

func TestPlayerPoints(t *testing.T) {
	s := PlayerStats{Games: 3, Goals: 4, OwnGoals: 1, Wins: 2, Draws: 1, Saves: 3}
	// 3 + 4 - 1 + 6 + 1 + 0.6
	assert.Equal(t, 13.6, playerPoints(s))
}
