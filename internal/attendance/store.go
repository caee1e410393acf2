package attendance

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/clubrank/internal/ranking"
)

// NewStore creates a new attendance store
func NewStore(db *sql.DB) AttendanceStore {
	return &store{
		db: db,
	}
}

const upsertParticipant = `
	INSERT INTO game_participants (game_id, member_id, status, responded_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(game_id, member_id) DO UPDATE SET
		status = excluded.status,
		responded_at = excluded.responded_at`

func (s *store) Respond(ctx context.Context, gameID, memberID string, status ranking.ParticipationStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, upsertParticipant, gameID, memberID, string(status), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to record response: %w", err)
	}
	log.Info("Recorded response", "game_id", gameID, "member_id", memberID, "status", status)
	return nil
}

func (s *store) RecordRoster(ctx context.Context, gameID string, responses []Response) error {
	for _, r := range responses {
		if !r.Status.Valid() {
			return fmt.Errorf("%w: %q for member %s", ErrInvalidStatus, r.Status, r.MemberID)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM game_participants WHERE game_id = ?`, gameID); err != nil {
		return fmt.Errorf("failed to delete existing responses: %w", err)
	}

	now := time.Now().Unix()
	for _, r := range responses {
		if _, err := tx.ExecContext(ctx, upsertParticipant, gameID, r.MemberID, string(r.Status), now); err != nil {
			return fmt.Errorf("failed to insert response for member %s: %w", r.MemberID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit roster transaction: %w", err)
	}

	log.Info("Recorded roster", "game_id", gameID, "responses", len(responses))
	return nil
}

func (s *store) ListParticipations(ctx context.Context, gameIDs []string) ([]ranking.Participation, error) {
	participations := []ranking.Participation{}
	if len(gameIDs) == 0 {
		return participations, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	args := make([]any, len(gameIDs))
	for i, id := range gameIDs {
		args[i] = id
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(gameIDs)), ",")

	rows, err := s.db.QueryContext(ctx, `
		SELECT game_id, member_id, status
		FROM game_participants
		WHERE game_id IN (`+placeholders+`)
		ORDER BY rowid`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get participations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p ranking.Participation
		var status string
		if err := rows.Scan(&p.GameID, &p.MemberID, &status); err != nil {
			log.Warn("Failed to scan participation", "error", err)
			continue
		}
		p.Status = ranking.ParticipationStatus(status)
		participations = append(participations, p)
	}
	return participations, rows.Err()
}

func (s *store) Summary(ctx context.Context, gameID string) (Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := Summary{GameID: gameID}
	rows, err := s.db.QueryContext(ctx, `
		SELECT status, COUNT(*) FROM game_participants WHERE game_id = ? GROUP BY status`, gameID)
	if err != nil {
		return summary, fmt.Errorf("failed to summarize game %s: %w", gameID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return summary, fmt.Errorf("failed to scan summary: %w", err)
		}
		switch ranking.ParticipationStatus(status) {
		case ranking.ParticipationConfirmed:
			summary.Confirmed = count
		case ranking.ParticipationDeclined:
			summary.Declined = count
		case ranking.ParticipationUnconfirmed:
			summary.Unconfirmed = count
		}
	}
	return summary, rows.Err()
}
