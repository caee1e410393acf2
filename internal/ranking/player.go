package ranking

import "sort"

// AggregatePlayers builds the player leaderboard from completed games that
// have at least one recorded event. Every confirmed active participant of
// such a game is credited with the game; events add goals, own-goals and
// saves; the team of the member's first event decides win, draw or loss.
//
// Own-goals by other teams count in full for each remaining team here, unlike
// AggregateTeams which splits them.
func AggregatePlayers(games []Game, members []Member, participations []Participation, events []GameEvent) []PlayerStats {
	active := activeMembers(members)

	byGame := make(map[string][]GameEvent)
	for _, e := range events {
		byGame[e.GameID] = append(byGame[e.GameID], e)
	}

	qualifying := qualifyingGames(games, byGame)
	partsByGame := confirmedByGame(participations, active)

	lines := make(map[string]*PlayerStats)
	var order []string

	for _, g := range qualifying {
		gameEvents := byGame[g.ID]
		goals := teamGoalsFull(gameEvents)

		for _, memberID := range partsByGame[g.ID] {
			line, ok := lines[memberID]
			if !ok {
				line = &PlayerStats{MemberID: memberID, Name: active[memberID].Name}
				lines[memberID] = line
				order = append(order, memberID)
			}
			line.Games++

			team, hasTeam := memberTally(line, memberID, gameEvents)
			if !hasTeam {
				continue
			}
			switch decide(goals[team], maxOther(goals, team)) {
			case OutcomeWin:
				line.Wins++
			case OutcomeDraw:
				line.Draws++
			default:
				line.Losses++
			}
		}
	}

	out := make([]PlayerStats, 0, len(order))
	for _, id := range order {
		s := *lines[id]
		s.Points = playerPoints(s)
		if s.Games > 0 {
			s.GoalAverage = float64(s.Goals) / float64(s.Games)
		}
		s.WinRate = winRate(s.Wins, s.Games)
		out = append(out, s)
	}
	Rank(out, func(p PlayerStats) float64 { return p.Points }, Desc, setPlayerPosition)
	return out
}

// playerPoints is games + goals - own goals + 3*wins + draws + 0.20*saves,
// summed in hundredths so the result is exact to two decimals.
func playerPoints(s PlayerStats) float64 {
	hundredths := 100*(s.Games+s.Goals-s.OwnGoals+3*s.Wins+s.Draws) + 20*s.Saves
	return float64(hundredths) / 100
}

// memberTally adds the member's own events of one game to stats and returns
// the team of the first of them.
func memberTally(stats *PlayerStats, memberID string, events []GameEvent) (string, bool) {
	var team string
	found := false
	for _, e := range events {
		if e.MemberID == nil || *e.MemberID != memberID {
			continue
		}
		if !found {
			team = e.Team
			found = true
		}
		switch e.Type {
		case EventGoal:
			stats.Goals++
		case EventOwnGoal:
			stats.OwnGoals++
		case EventSave:
			stats.Saves++
		}
	}
	return team, found
}

// teamGoalsFull credits each team with its goals plus every own-goal scored
// by another team in that game.
func teamGoalsFull(events []GameEvent) map[string]int {
	goals := make(map[string]int)
	ownGoals := make(map[string]int)
	totalOwn := 0
	for _, e := range events {
		if _, ok := goals[e.Team]; !ok {
			goals[e.Team] = 0
		}
		switch e.Type {
		case EventGoal:
			goals[e.Team]++
		case EventOwnGoal:
			ownGoals[e.Team]++
			totalOwn++
		}
	}
	for team := range goals {
		goals[team] += totalOwn - ownGoals[team]
	}
	return goals
}

func activeMembers(members []Member) map[string]Member {
	active := make(map[string]Member, len(members))
	for _, m := range members {
		if m.Status == MemberActive {
			active[m.ID] = m
		}
	}
	return active
}

// qualifyingGames keeps completed games with events, oldest first.
func qualifyingGames(games []Game, byGame map[string][]GameEvent) []Game {
	out := make([]Game, 0, len(games))
	seen := make(map[string]bool)
	for _, g := range games {
		if g.Status != GameCompleted || len(byGame[g.ID]) == 0 || seen[g.ID] {
			continue
		}
		seen[g.ID] = true
		out = append(out, g)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// confirmedByGame lists, per game, the active members who confirmed, once each.
func confirmedByGame(participations []Participation, active map[string]Member) map[string][]string {
	out := make(map[string][]string)
	seen := make(map[[2]string]bool)
	for _, p := range participations {
		if p.Status != ParticipationConfirmed {
			continue
		}
		if _, ok := active[p.MemberID]; !ok {
			continue
		}
		k := [2]string{p.GameID, p.MemberID}
		if seen[k] {
			continue
		}
		seen[k] = true
		out[p.GameID] = append(out[p.GameID], p.MemberID)
	}
	return out
}
