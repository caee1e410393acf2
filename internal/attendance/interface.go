package attendance

import (
	"context"

	"github.com/mauv0809/clubrank/internal/ranking"
)

// AttendanceStore keeps the RSVP of each member for each game.
type AttendanceStore interface {
	// Respond records a member's answer for a game, replacing any earlier one.
	Respond(ctx context.Context, gameID, memberID string, status ranking.ParticipationStatus) error

	// RecordRoster replaces all answers of a game in one transaction.
	RecordRoster(ctx context.Context, gameID string, responses []Response) error

	// ListParticipations returns the answers for the given games.
	ListParticipations(ctx context.Context, gameIDs []string) ([]ranking.Participation, error)

	// Summary counts the answers of one game by status.
	Summary(ctx context.Context, gameID string) (Summary, error)
}
