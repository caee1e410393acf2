package club

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/clubrank/internal/ranking"
)

// CreateGame schedules a new game for the club on the given date.
func (s *store) CreateGame(ctx context.Context, clubID string, date time.Time) (ranking.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := date.UTC()
	g := ranking.Game{
		ID:        uuid.New().String(),
		ClubID:    clubID,
		Date:      time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC),
		Status:    ranking.GameScheduled,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO games (id, club_id, date, status, created_at) VALUES (?, ?, ?, ?, ?)`,
		g.ID, g.ClubID, g.Date.Format(dateLayout), string(g.Status), g.CreatedAt.Unix(),
	)
	if err != nil {
		log.Error("Failed to create game", "error", err, "clubID", clubID)
		return ranking.Game{}, fmt.Errorf("failed to create game: %w", err)
	}
	log.Info("Created game", "gameID", g.ID, "clubID", clubID, "date", g.Date.Format(dateLayout))
	return g, nil
}

func (s *store) GetGame(ctx context.Context, gameID string) (*ranking.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `SELECT id, club_id, date, status, created_at FROM games WHERE id = ?`, gameID)
	g, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game %s: %w", gameID, err)
	}
	return &g, nil
}

// ListGames returns all games of the club, oldest first.
func (s *store) ListGames(ctx context.Context, clubID string) ([]ranking.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, club_id, date, status, created_at
		FROM games WHERE club_id = ? ORDER BY date, created_at, rowid`, clubID)
	if err != nil {
		log.Error("Failed to query games", "error", err, "clubID", clubID)
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	games := []ranking.Game{}
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			log.Error("Failed to scan game row", "error", err)
			continue
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

func scanGame(scanner interface{ Scan(...any) error }) (ranking.Game, error) {
	var g ranking.Game
	var date, status string
	var createdAt int64

	if err := scanner.Scan(&g.ID, &g.ClubID, &date, &status, &createdAt); err != nil {
		return ranking.Game{}, err
	}
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return ranking.Game{}, fmt.Errorf("game %s has malformed date %q: %w", g.ID, date, err)
	}
	g.Date = d
	g.Status = ranking.GameStatus(status)
	g.CreatedAt = time.Unix(createdAt, 0).UTC()
	return g, nil
}

// UpdateGameStatus transitions a game to a new state.
func (s *store) UpdateGameStatus(ctx context.Context, gameID string, status ranking.GameStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "UPDATE games SET status = ? WHERE id = ?", string(status), gameID)
	if err != nil {
		return fmt.Errorf("failed to update game %s: %w", gameID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrGameNotFound
	}
	log.Info("Updated game status", "gameID", gameID, "status", status)
	return nil
}

// AddEvent records one in-game event. Events keep their insertion order.
func (s *store) AddEvent(ctx context.Context, e ranking.GameEvent) (ranking.GameEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO game_events (id, game_id, member_id, team, event_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.GameID, e.MemberID, e.Team, string(e.Type), time.Now().Unix(),
	)
	if err != nil {
		log.Error("Failed to add game event", "error", err, "gameID", e.GameID, "type", e.Type)
		return ranking.GameEvent{}, fmt.Errorf("failed to add event to game %s: %w", e.GameID, err)
	}
	return e, nil
}

// ListEvents returns the events of the given games in the order they were recorded.
func (s *store) ListEvents(ctx context.Context, gameIDs []string) ([]ranking.GameEvent, error) {
	events := []ranking.GameEvent{}
	if len(gameIDs) == 0 {
		return events, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(gameIDs)), ",")
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, game_id, member_id, team, event_type
		FROM game_events WHERE game_id IN (`+placeholders+`) ORDER BY rowid`,
		ToAnySlice(gameIDs)...,
	)
	if err != nil {
		log.Error("Failed to query game events", "error", err)
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e ranking.GameEvent
		var member sql.NullString
		var typ string
		if err := rows.Scan(&e.ID, &e.GameID, &member, &e.Team, &typ); err != nil {
			log.Error("Failed to scan game event row", "error", err)
			continue
		}
		if member.Valid {
			e.MemberID = &member.String
		}
		e.Type = ranking.EventType(typ)
		events = append(events, e)
	}
	return events, rows.Err()
}
