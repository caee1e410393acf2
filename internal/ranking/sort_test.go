package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrder(t *testing.T) {
	o, err := ParseOrder("")
	require.NoError(t, err)
	assert.Equal(t, Desc, o)

	o, err = ParseOrder(" ASC ")
	require.NoError(t, err)
	assert.Equal(t, Asc, o)

	_, err = ParseOrder("sideways")
	assert.Error(t, err)
}

func TestSortPlayers(t *testing.T) {
	players := func() []PlayerStats {
		return []PlayerStats{
			{MemberID: "a", Points: 5, Goals: 1, Saves: 4},
			{MemberID: "b", Points: 9, Goals: 3, Saves: 0},
			{MemberID: "c", Points: 5, Goals: 3, Saves: 2},
		}
	}
	ids := func(ps []PlayerStats) []string {
		out := make([]string, len(ps))
		for i, p := range ps {
			out[i] = p.MemberID
		}
		return out
	}

	t.Run("default sorts by points descending", func(t *testing.T) {
		ps := players()
		require.NoError(t, SortPlayers(ps, "", Desc))
		assert.Equal(t, []string{"b", "a", "c"}, ids(ps))
		assert.Equal(t, 3, ps[2].Position)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		ps := players()
		require.NoError(t, SortPlayers(ps, "goals", Desc))
		assert.Equal(t, []string{"b", "c", "a"}, ids(ps))
	})

	t.Run("ascending reassigns positions", func(t *testing.T) {
		ps := players()
		require.NoError(t, SortPlayers(ps, "saves", Asc))
		assert.Equal(t, []string{"b", "c", "a"}, ids(ps))
		assert.Equal(t, 1, ps[0].Position)
	})

	t.Run("unknown field", func(t *testing.T) {
		assert.Error(t, SortPlayers(players(), "height", Desc))
	})
}

func TestSortParticipationKeepsPositions(t *testing.T) {
	ps := []ParticipationRankingStats{
		{MemberID: "a", Points: 80, Age: 20, Position: 1},
		{MemberID: "b", Points: 60, Age: 40, Position: 2},
	}

	require.NoError(t, SortParticipation(ps, "age", Desc))

	assert.Equal(t, "b", ps[0].MemberID)
	assert.Equal(t, 2, ps[0].Position)
	assert.Error(t, SortParticipation(ps, "shoe_size", Desc))
}
