package processor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mauv0809/clubrank/internal/club"
	"github.com/mauv0809/clubrank/internal/metrics"
	"github.com/mauv0809/clubrank/internal/notifier"
	"github.com/mauv0809/clubrank/internal/pubsub"
	"github.com/mauv0809/clubrank/internal/ranking"
	"github.com/mauv0809/clubrank/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store  *club.MockStore
	ranker *stats.MockRanker
	notif  *notifier.Mock
	metr   *metrics.Mock
	pubsub *pubsub.MockPubSubClient
	p      *Processor
}

func newFixture() *fixture {
	f := &fixture{
		store:  club.NewMock(),
		ranker: stats.NewMock(),
		notif:  notifier.NewMock(),
		metr:   metrics.NewMock(),
		pubsub: pubsub.NewMock("TEST"),
	}
	f.p = New(f.store, f.ranker, f.notif, f.metr, f.pubsub)
	return f
}

func scheduledGame(id string) *ranking.Game {
	return &ranking.Game{
		ID:     id,
		ClubID: "club1",
		Date:   time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC),
		Status: ranking.GameScheduled,
	}
}

func TestProcessor_CompleteGame(t *testing.T) {
	t.Run("scheduled game is completed and announced", func(t *testing.T) {
		f := newFixture()
		f.store.GetGameFunc = func(gameID string) (*ranking.Game, error) { return scheduledGame(gameID), nil }

		err := f.p.CompleteGame(context.Background(), "g1", false)
		require.NoError(t, err)

		require.Len(t, f.store.UpdateGameStatusCalls, 1)
		assert.Equal(t, "g1", f.store.UpdateGameStatusCalls[0].GameID)
		assert.Equal(t, ranking.GameCompleted, f.store.UpdateGameStatusCalls[0].Status)
		assert.Equal(t, 1, f.metr.GamesCompleted())
		assert.Equal(t, []string{"club1"}, f.ranker.InvalidateCalls)

		require.Len(t, f.pubsub.SendMessageCalls, 1, "A pubsub message should be sent")
		assert.Equal(t, pubsub.EventGameCompleted, f.pubsub.SendMessageCalls[0].Topic)
		msg, ok := f.pubsub.SendMessageCalls[0].Data.(pubsub.GameMessage)
		require.True(t, ok, "Data sent to pubsub should be a GameMessage")
		assert.Equal(t, pubsub.GameMessage{GameID: "g1", ClubID: "club1", Date: "2024-03-09"}, msg)
	})

	t.Run("dry run changes nothing", func(t *testing.T) {
		f := newFixture()
		f.store.GetGameFunc = func(gameID string) (*ranking.Game, error) { return scheduledGame(gameID), nil }

		require.NoError(t, f.p.CompleteGame(context.Background(), "g1", true))
		assert.Empty(t, f.store.UpdateGameStatusCalls)
		assert.Empty(t, f.pubsub.SendMessageCalls)
		assert.Empty(t, f.ranker.InvalidateCalls)
		assert.Equal(t, 0, f.metr.GamesCompleted())
	})

	t.Run("decided game is rejected", func(t *testing.T) {
		f := newFixture()
		f.store.GetGameFunc = func(gameID string) (*ranking.Game, error) {
			g := scheduledGame(gameID)
			g.Status = ranking.GameCanceled
			return g, nil
		}

		err := f.p.CompleteGame(context.Background(), "g1", false)
		assert.ErrorIs(t, err, ErrGameDecided)
		assert.Empty(t, f.store.UpdateGameStatusCalls)
	})

	t.Run("unknown game", func(t *testing.T) {
		f := newFixture()
		err := f.p.CompleteGame(context.Background(), "nope", false)
		assert.ErrorIs(t, err, club.ErrGameNotFound)
	})

	t.Run("publish failure is returned after the status change", func(t *testing.T) {
		f := newFixture()
		f.store.GetGameFunc = func(gameID string) (*ranking.Game, error) { return scheduledGame(gameID), nil }
		boom := errors.New("pubsub down")
		f.pubsub.SendMessageFunc = func(topic pubsub.EventType, data any) error { return boom }

		err := f.p.CompleteGame(context.Background(), "g1", false)
		assert.ErrorIs(t, err, boom)
		assert.Len(t, f.store.UpdateGameStatusCalls, 1)
		assert.Equal(t, []string{"club1"}, f.ranker.InvalidateCalls, "cached rankings are dropped before publishing")
	})

	t.Run("failed status update keeps the cache", func(t *testing.T) {
		f := newFixture()
		f.store.GetGameFunc = func(gameID string) (*ranking.Game, error) { return scheduledGame(gameID), nil }
		f.store.UpdateGameStatusFunc = func(gameID string, status ranking.GameStatus) error { return errors.New("database is locked") }

		require.Error(t, f.p.CompleteGame(context.Background(), "g1", false))
		assert.Empty(t, f.ranker.InvalidateCalls)
		assert.Empty(t, f.pubsub.SendMessageCalls)
	})
}

func TestProcessor_CancelGame(t *testing.T) {
	f := newFixture()
	f.store.GetGameFunc = func(gameID string) (*ranking.Game, error) { return scheduledGame(gameID), nil }

	require.NoError(t, f.p.CancelGame(context.Background(), "g2", false))

	require.Len(t, f.store.UpdateGameStatusCalls, 1)
	assert.Equal(t, ranking.GameCanceled, f.store.UpdateGameStatusCalls[0].Status)
	assert.Equal(t, 1, f.metr.GamesCanceled())
	assert.Equal(t, []string{"club1"}, f.ranker.InvalidateCalls)
	require.Len(t, f.pubsub.SendMessageCalls, 1)
	assert.Equal(t, pubsub.EventGameCanceled, f.pubsub.SendMessageCalls[0].Topic)
}

func TestProcessor_HandleGameCompleted(t *testing.T) {
	t.Run("posts the month's leaderboard and standings", func(t *testing.T) {
		f := newFixture()
		f.ranker.FetchPlayerStatsFunc = func(clubID string, w ranking.Window) ([]ranking.PlayerStats, error) {
			return []ranking.PlayerStats{{MemberID: "m1", Name: "Alice", Position: 1}}, nil
		}
		f.ranker.FetchTeamStatsFunc = func(clubID string, w ranking.Window) ([]ranking.TeamStats, error) {
			return []ranking.TeamStats{{Team: "white"}}, nil
		}

		msg := pubsub.GameMessage{GameID: "g1", ClubID: "club1", Date: "2024-03-09"}
		require.NoError(t, f.p.HandleGameCompleted(context.Background(), msg, false))

		assert.Equal(t, []string{"club1"}, f.ranker.InvalidateCalls)
		march := ranking.Window{Year: 2024, Month: 3}
		require.Len(t, f.ranker.FetchCalls, 2)
		assert.Equal(t, stats.FetchCall{Kind: "players", ID: "club1", Window: march}, f.ranker.FetchCalls[0])
		assert.Equal(t, stats.FetchCall{Kind: "teams", ID: "club1", Window: march}, f.ranker.FetchCalls[1])

		require.Len(t, f.notif.SendPlayerLeaderboardCalls, 1)
		assert.Equal(t, march, f.notif.SendPlayerLeaderboardCalls[0].Window)
		assert.Equal(t, "Alice", f.notif.SendPlayerLeaderboardCalls[0].Stats[0].Name)
		require.Len(t, f.notif.SendTeamStandingsCalls, 1)
		assert.False(t, f.notif.SendTeamStandingsCalls[0].DryRun)
	})

	t.Run("bad date", func(t *testing.T) {
		f := newFixture()
		err := f.p.HandleGameCompleted(context.Background(), pubsub.GameMessage{ClubID: "club1", Date: "09/03/2024"}, false)
		require.Error(t, err)
		assert.Empty(t, f.notif.SendPlayerLeaderboardCalls)
	})

	t.Run("ranking failure stops notification", func(t *testing.T) {
		f := newFixture()
		boom := errors.New("db down")
		f.ranker.FetchPlayerStatsFunc = func(clubID string, w ranking.Window) ([]ranking.PlayerStats, error) {
			return nil, boom
		}

		err := f.p.HandleGameCompleted(context.Background(), pubsub.GameMessage{ClubID: "club1", Date: "2024-03-09"}, false)
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, f.notif.SendPlayerLeaderboardCalls)
		assert.Empty(t, f.notif.SendTeamStandingsCalls)
	})
}

func TestProcessor_HandleGameCanceled(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.p.HandleGameCanceled(context.Background(), pubsub.GameMessage{GameID: "g2", ClubID: "club1"}))
	assert.Equal(t, []string{"club1"}, f.ranker.InvalidateCalls)
	assert.Empty(t, f.notif.SendPlayerLeaderboardCalls)
}
