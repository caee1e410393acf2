package attendance

import (
	"database/sql"
	"errors"
	"sync"

	"github.com/mauv0809/clubrank/internal/ranking"
)

var ErrInvalidStatus = errors.New("invalid participation status")

// Response is one member's answer inside a roster.
type Response struct {
	MemberID string                      `json:"member_id"`
	Status   ranking.ParticipationStatus `json:"status"`
}

// Summary is the headcount of a game by answer.
type Summary struct {
	GameID      string `json:"game_id"`
	Confirmed   int    `json:"confirmed"`
	Declined    int    `json:"declined"`
	Unconfirmed int    `json:"unconfirmed"`
}

// store handles database operations for attendance
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
