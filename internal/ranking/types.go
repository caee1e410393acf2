package ranking

import "time"

// EventType is the kind of a single in-game event.
type EventType string

const (
	EventGoal    EventType = "goal"
	EventOwnGoal EventType = "own-goal"
	EventSave    EventType = "save"
)

// ParticipationStatus is a member's RSVP for a game.
type ParticipationStatus string

const (
	ParticipationConfirmed   ParticipationStatus = "confirmed"
	ParticipationDeclined    ParticipationStatus = "declined"
	ParticipationUnconfirmed ParticipationStatus = "unconfirmed"
)

// Valid reports whether s is one of the known RSVP states.
func (s ParticipationStatus) Valid() bool {
	switch s {
	case ParticipationConfirmed, ParticipationDeclined, ParticipationUnconfirmed:
		return true
	}
	return false
}

// MemberStatus is the membership state of a member. Only active members are ranked.
type MemberStatus string

const (
	MemberActive    MemberStatus = "active"
	MemberInactive  MemberStatus = "inactive"
	MemberSuspended MemberStatus = "suspended"
	MemberSystem    MemberStatus = "system"
)

// GameStatus is the lifecycle state of a game.
type GameStatus string

const (
	GameScheduled GameStatus = "scheduled"
	GameCompleted GameStatus = "completed"
	GameCanceled  GameStatus = "canceled"
)

// GameEvent is one occurrence within a game. MemberID is nil for events
// that are not attributed to a club member.
type GameEvent struct {
	ID       string    `json:"id,omitempty"`
	GameID   string    `json:"game_id"`
	MemberID *string   `json:"member_id,omitempty"`
	Team     string    `json:"team"`
	Type     EventType `json:"event_type"`
}

// Participation is a member's RSVP record for one game.
type Participation struct {
	GameID   string              `json:"game_id"`
	MemberID string              `json:"member_id"`
	Status   ParticipationStatus `json:"status"`
}

// Member is a club member as seen by the ranking computations.
type Member struct {
	ID               string       `json:"id"`
	ClubID           string       `json:"club_id"`
	Name             string       `json:"name"`
	BirthDate        *time.Time   `json:"birth_date,omitempty"`
	RegistrationDate *time.Time   `json:"registration_date,omitempty"`
	Status           MemberStatus `json:"status"`
	SponsorID        *string      `json:"sponsor_id,omitempty"`
}

// Game is a scheduled or played match.
type Game struct {
	ID        string     `json:"id"`
	ClubID    string     `json:"club_id"`
	Date      time.Time  `json:"date"`
	Status    GameStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// TeamConfig is a team name and color configured for a club.
type TeamConfig struct {
	ClubID string `json:"club_id"`
	Name   string `json:"team_name"`
	Color  string `json:"team_color"`
	Active bool   `json:"is_active"`
}

// TeamStats is the standings line of one team over a window.
type TeamStats struct {
	Team          string `json:"team"`
	Color         string `json:"color,omitempty"`
	Wins          int    `json:"wins"`
	Draws         int    `json:"draws"`
	Losses        int    `json:"losses"`
	GoalsScored   int    `json:"goals_scored"`
	GoalsConceded int    `json:"goals_conceded"`
	TotalGames    int    `json:"total_games"`
	Points        int    `json:"points"`
	WinRate       string `json:"win_rate"`
}

// PlayerStats is the performance line of one member over a window.
type PlayerStats struct {
	MemberID    string  `json:"member_id"`
	Name        string  `json:"name"`
	Games       int     `json:"games"`
	Goals       int     `json:"goals"`
	OwnGoals    int     `json:"own_goals"`
	Saves       int     `json:"saves"`
	Wins        int     `json:"wins"`
	Draws       int     `json:"draws"`
	Losses      int     `json:"losses"`
	Points      float64 `json:"points"`
	GoalAverage float64 `json:"goal_average"`
	WinRate     string  `json:"win_rate"`
	Position    int     `json:"position"`
}

// ParticipationRankingStats is the participation line of one active member over a window.
type ParticipationRankingStats struct {
	MemberID          string  `json:"member_id"`
	Name              string  `json:"name"`
	Games             int     `json:"games"`
	MembershipTime    int     `json:"membership_time"`
	MembershipMonths  int     `json:"membership_months"`
	Age               int     `json:"age"`
	ParticipationRate float64 `json:"participation_rate"`
	TotalValue        int     `json:"total_value"`
	Points            float64 `json:"points"`
	Position          int     `json:"position"`
}
