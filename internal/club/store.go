package club

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/clubrank/internal/ranking"
)

// New creates a new ClubStore.
func New(db *sql.DB) ClubStore {
	return &store{
		db: db,
	}
}

func (s *store) UpsertClub(ctx context.Context, id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO clubs (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name`, id, name)
	if err != nil {
		return fmt.Errorf("failed to upsert club %s: %w", id, err)
	}
	return nil
}

// UpsertMember inserts or updates a member. A member without an ID gets a
// fresh UUID, which is returned.
func (s *store) UpsertMember(ctx context.Context, m ranking.Member) (ranking.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Status == "" {
		m.Status = ranking.MemberActive
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO members (id, club_id, name, birth_date, registration_date, status, sponsor_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			club_id = excluded.club_id,
			name = excluded.name,
			birth_date = excluded.birth_date,
			registration_date = excluded.registration_date,
			status = excluded.status,
			sponsor_id = excluded.sponsor_id`,
		m.ID, m.ClubID, m.Name, formatDate(m.BirthDate), formatDate(m.RegistrationDate), string(m.Status), m.SponsorID,
	)
	if err != nil {
		log.Error("Failed to upsert member", "error", err, "memberID", m.ID)
		return ranking.Member{}, fmt.Errorf("failed to upsert member %s: %w", m.ID, err)
	}
	log.Debug("Upserted member", "memberID", m.ID, "name", m.Name, "status", m.Status)
	return m, nil
}

const memberColumns = `id, club_id, name, birth_date, registration_date, status, sponsor_id`

func (s *store) GetMember(ctx context.Context, memberID string) (*ranking.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `SELECT `+memberColumns+` FROM members WHERE id = ?`, memberID)
	m, err := scanMember(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member %s: %w", memberID, err)
	}
	return &m, nil
}

// ListMembers returns every member of a club, whatever the status, by name.
func (s *store) ListMembers(ctx context.Context, clubID string) ([]ranking.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT `+memberColumns+` FROM members WHERE club_id = ? ORDER BY name, id`, clubID)
	if err != nil {
		log.Error("Failed to query members", "error", err, "clubID", clubID)
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return collectMembers(rows)
}

// GetGodchildren lists the members sponsored by sponsorID.
func (s *store) GetGodchildren(ctx context.Context, sponsorID string) ([]ranking.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT `+memberColumns+` FROM members WHERE sponsor_id = ? ORDER BY name, id`, sponsorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list godchildren of %s: %w", sponsorID, err)
	}
	return collectMembers(rows)
}

func collectMembers(rows *sql.Rows) ([]ranking.Member, error) {
	defer rows.Close()

	members := []ranking.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			log.Error("Failed to scan member row", "error", err)
			continue
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func scanMember(scanner interface{ Scan(...any) error }) (ranking.Member, error) {
	var m ranking.Member
	var birth, registered, sponsor sql.NullString
	var status string

	if err := scanner.Scan(&m.ID, &m.ClubID, &m.Name, &birth, &registered, &status, &sponsor); err != nil {
		return ranking.Member{}, err
	}
	m.Status = ranking.MemberStatus(status)
	m.BirthDate = parseDate(birth, "birth_date", m.ID)
	m.RegistrationDate = parseDate(registered, "registration_date", m.ID)
	if sponsor.Valid {
		m.SponsorID = &sponsor.String
	}
	return m, nil
}

func (s *store) UpsertTeamConfig(ctx context.Context, t ranking.TeamConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO team_configurations (club_id, team_name, team_color, is_active)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(club_id, team_name) DO UPDATE SET
			team_color = excluded.team_color,
			is_active = excluded.is_active`,
		t.ClubID, t.Name, t.Color, t.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert team %s: %w", t.Name, err)
	}
	return nil
}

// ListTeamConfigs returns the club's teams in the order they were configured.
func (s *store) ListTeamConfigs(ctx context.Context, clubID string) ([]ranking.TeamConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT club_id, team_name, team_color, is_active
		FROM team_configurations WHERE club_id = ? ORDER BY rowid`, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team configurations: %w", err)
	}
	defer rows.Close()

	teams := []ranking.TeamConfig{}
	for rows.Next() {
		var t ranking.TeamConfig
		if err := rows.Scan(&t.ClubID, &t.Name, &t.Color, &t.Active); err != nil {
			log.Error("Failed to scan team configuration row", "error", err)
			continue
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func formatDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(dateLayout)
}

// parseDate turns a stored calendar date into a UTC midnight time. Unparseable
// values are logged and treated as missing.
func parseDate(v sql.NullString, column, id string) *time.Time {
	if !v.Valid || v.String == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, v.String)
	if err != nil {
		log.Warn("Ignoring malformed date", "column", column, "id", id, "value", v.String)
		return nil
	}
	return &t
}

// ToAnySlice converts a typed slice into query arguments.
func ToAnySlice[T any](s []T) []any {
	a := make([]any, len(s))
	for i, v := range s {
		a[i] = v
	}
	return a
}
