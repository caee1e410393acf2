package attendance_test

import (
	"context"
	"testing"
	"time"

	"github.com/mauv0809/clubrank/internal/attendance"
	"github.com/mauv0809/clubrank/internal/club"
	"github.com/mauv0809/clubrank/internal/database"
	"github.com/mauv0809/clubrank/internal/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory database with one club, three members and two games.
func setupTestDB(t *testing.T) (attendance.AttendanceStore, []ranking.Game, func()) {
	t.Helper()
	ctx := context.Background()

	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	clubStore := club.New(db)
	require.NoError(t, clubStore.UpsertClub(ctx, "club1", "Sunday League"))
	for _, id := range []string{"m1", "m2", "m3"} {
		_, err := clubStore.UpsertMember(ctx, ranking.Member{ID: id, ClubID: "club1", Name: "Member " + id})
		require.NoError(t, err)
	}
	var games []ranking.Game
	for _, d := range []int{2, 9} {
		g, err := clubStore.CreateGame(ctx, "club1", time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		games = append(games, g)
	}

	return attendance.NewStore(db), games, teardown
}

func TestRespond(t *testing.T) {
	store, games, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()
	g := games[0].ID

	require.NoError(t, store.Respond(ctx, g, "m1", ranking.ParticipationUnconfirmed))
	require.NoError(t, store.Respond(ctx, g, "m1", ranking.ParticipationConfirmed))
	require.NoError(t, store.Respond(ctx, g, "m2", ranking.ParticipationDeclined))

	parts, err := store.ListParticipations(ctx, []string{g})
	require.NoError(t, err)
	require.Len(t, parts, 2, "a second answer replaces the first")
	assert.Equal(t, ranking.Participation{GameID: g, MemberID: "m1", Status: ranking.ParticipationConfirmed}, parts[0])

	err = store.Respond(ctx, g, "m3", "maybe")
	assert.ErrorIs(t, err, attendance.ErrInvalidStatus)

	err = store.Respond(ctx, g, "ghost", ranking.ParticipationConfirmed)
	assert.Error(t, err, "unknown members are rejected")
}

func TestRecordRosterAndSummary(t *testing.T) {
	store, games, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()
	g1, g2 := games[0].ID, games[1].ID

	require.NoError(t, store.Respond(ctx, g1, "m3", ranking.ParticipationConfirmed))
	require.NoError(t, store.RecordRoster(ctx, g1, []attendance.Response{
		{MemberID: "m1", Status: ranking.ParticipationConfirmed},
		{MemberID: "m2", Status: ranking.ParticipationConfirmed},
	}))
	require.NoError(t, store.Respond(ctx, g2, "m1", ranking.ParticipationDeclined))

	summary, err := store.Summary(ctx, g1)
	require.NoError(t, err)
	assert.Equal(t, attendance.Summary{GameID: g1, Confirmed: 2}, summary, "the roster replaces earlier answers")

	all, err := store.ListParticipations(ctx, []string{g1, g2})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	err = store.RecordRoster(ctx, g2, []attendance.Response{{MemberID: "m1", Status: "yes"}})
	assert.ErrorIs(t, err, attendance.ErrInvalidStatus)

	summary, err = store.Summary(ctx, g2)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Declined, "a rejected roster leaves answers untouched")
}

func TestListParticipations_NoGames(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	parts, err := store.ListParticipations(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, parts)
}
