package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/clubrank/internal/metrics"
	"github.com/mauv0809/clubrank/internal/pubsub"
	"github.com/mauv0809/clubrank/internal/ranking"
	"github.com/mauv0809/clubrank/internal/stats"
)

const messageDateLayout = "2006-01-02"

// New creates a new Processor.
func New(store Store, ranker stats.Ranker, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Processor {
	return &Processor{
		store:    store,
		ranker:   ranker,
		pubsub:   pubsub,
		notifier: notifier,
		metrics:  metrics,
	}
}

// CompleteGame marks a scheduled game as played and announces it.
func (p *Processor) CompleteGame(ctx context.Context, gameID string, dryRun bool) error {
	return p.decide(ctx, gameID, ranking.GameCompleted, pubsub.EventGameCompleted, dryRun)
}

// CancelGame marks a scheduled game as canceled and announces it.
func (p *Processor) CancelGame(ctx context.Context, gameID string, dryRun bool) error {
	return p.decide(ctx, gameID, ranking.GameCanceled, pubsub.EventGameCanceled, dryRun)
}

func (p *Processor) decide(ctx context.Context, gameID string, status ranking.GameStatus, event pubsub.EventType, dryRun bool) error {
	game, err := p.store.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if game.Status != ranking.GameScheduled {
		log.Warn("Game already decided", "gameID", gameID, "status", game.Status, "requested", status)
		return ErrGameDecided
	}

	if dryRun {
		log.Info("[Dry Run] Would update game status", "gameID", gameID, "from", game.Status, "to", status)
		return nil
	}

	if err := p.store.UpdateGameStatus(ctx, gameID, status); err != nil {
		log.Error("Failed to update game status", "error", err, "gameID", gameID)
		return err
	}
	log.Info("Game status updated", "gameID", gameID, "status", status)
	// The status row is committed; cached rankings must not outlive it even if
	// the publish below fails.
	p.ranker.Invalidate(game.ClubID)

	switch status {
	case ranking.GameCompleted:
		p.metrics.IncGamesCompleted()
	case ranking.GameCanceled:
		p.metrics.IncGamesCanceled()
	}

	msg := pubsub.GameMessage{GameID: game.ID, ClubID: game.ClubID, Date: game.Date.Format(messageDateLayout)}
	if err := p.pubsub.SendMessage(ctx, event, msg); err != nil {
		return fmt.Errorf("publish %s for game %s: %w", event, gameID, err)
	}
	return nil
}

// HandleGameCompleted refreshes the club's rankings after a game was played
// and posts the leaderboard and standings of the game's month. It invalidates
// again because the push may land on an instance other than the one that
// changed the status.
func (p *Processor) HandleGameCompleted(ctx context.Context, msg pubsub.GameMessage, dryRun bool) error {
	log.Info("Handling completed game", "gameID", msg.GameID, "clubID", msg.ClubID)
	p.ranker.Invalidate(msg.ClubID)

	date, err := time.Parse(messageDateLayout, msg.Date)
	if err != nil {
		return fmt.Errorf("parse game date %q: %w", msg.Date, err)
	}
	w := ranking.Window{Year: date.Year(), Month: int(date.Month())}

	players, err := p.ranker.FetchPlayerStats(ctx, msg.ClubID, w)
	if err != nil {
		return fmt.Errorf("fetch player stats: %w", err)
	}
	teams, err := p.ranker.FetchTeamStats(ctx, msg.ClubID, w)
	if err != nil {
		return fmt.Errorf("fetch team stats: %w", err)
	}

	if err := p.notifier.SendPlayerLeaderboard(players, w, dryRun); err != nil {
		log.Error("Failed to send player leaderboard", "error", err, "gameID", msg.GameID)
		return err
	}
	if err := p.notifier.SendTeamStandings(teams, w, dryRun); err != nil {
		log.Error("Failed to send team standings", "error", err, "gameID", msg.GameID)
		return err
	}
	return nil
}

// HandleGameCanceled drops the club's cached rankings; a canceled game only
// changes the completion rate, so nothing is posted.
func (p *Processor) HandleGameCanceled(ctx context.Context, msg pubsub.GameMessage) error {
	log.Info("Handling canceled game", "gameID", msg.GameID, "clubID", msg.ClubID)
	p.ranker.Invalidate(msg.ClubID)
	return nil
}
