package ranking

import (
	"sort"
	"time"
)

// CompletionRate is the share of decided games that were actually played.
type CompletionRate struct {
	Completed int     `json:"completed"`
	Canceled  int     `json:"canceled"`
	Rate      float64 `json:"rate"`
}

// ComputeCompletionRate is completed / (completed + canceled) as a percentage
// with one decimal. Scheduled games are not decided yet and do not count.
func ComputeCompletionRate(games []Game) CompletionRate {
	var cr CompletionRate
	for _, g := range games {
		switch g.Status {
		case GameCompleted:
			cr.Completed++
		case GameCanceled:
			cr.Canceled++
		}
	}
	cr.Rate = float64(divRoundHalfUp(cr.Completed*1000, cr.Completed+cr.Canceled)) / 10
	return cr
}

// MemberGame is one line of a member's personal game log.
type MemberGame struct {
	GameID        string    `json:"game_id"`
	Date          time.Time `json:"date"`
	Team          string    `json:"team,omitempty"`
	TeamGoals     int       `json:"team_goals"`
	OpponentGoals int       `json:"opponent_goals"`
	Goals         int       `json:"goals"`
	OwnGoals      int       `json:"own_goals"`
	Saves         int       `json:"saves"`
	Result        Outcome   `json:"result,omitempty"`
}

// MemberGames lists the completed games a member confirmed for, newest first.
// Scores follow the player leaderboard rules; Result stays empty when none of
// the member's events names a team.
func MemberGames(memberID string, games []Game, participations []Participation, events []GameEvent) []MemberGame {
	confirmed := make(map[string]bool)
	for _, p := range participations {
		if p.MemberID == memberID && p.Status == ParticipationConfirmed {
			confirmed[p.GameID] = true
		}
	}

	byGame := make(map[string][]GameEvent)
	for _, e := range events {
		if confirmed[e.GameID] {
			byGame[e.GameID] = append(byGame[e.GameID], e)
		}
	}

	out := make([]MemberGame, 0, len(confirmed))
	seen := make(map[string]bool)
	for _, g := range games {
		if g.Status != GameCompleted || !confirmed[g.ID] || seen[g.ID] {
			continue
		}
		seen[g.ID] = true

		line := MemberGame{GameID: g.ID, Date: g.Date}
		var tally PlayerStats
		team, hasTeam := memberTally(&tally, memberID, byGame[g.ID])
		line.Goals, line.OwnGoals, line.Saves = tally.Goals, tally.OwnGoals, tally.Saves
		if hasTeam {
			goals := teamGoalsFull(byGame[g.ID])
			line.Team = team
			line.TeamGoals = goals[team]
			line.OpponentGoals = maxOther(goals, team)
			line.Result = decide(line.TeamGoals, line.OpponentGoals)
		}
		out = append(out, line)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}
