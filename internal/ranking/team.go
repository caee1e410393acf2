package ranking

// AggregateTeams folds the event log of completed games into one standings
// line per configured active team, ordered by points.
//
// An own-goal by team O credits 1/(n-1) of a goal to each of the other n-1
// teams of that game; each team's total is rounded after summing.
func AggregateTeams(games []Game, events []GameEvent, teams []TeamConfig) []TeamStats {
	completed := make(map[string]bool, len(games))
	var order []string
	for _, g := range games {
		if g.Status != GameCompleted {
			continue
		}
		if !completed[g.ID] {
			order = append(order, g.ID)
		}
		completed[g.ID] = true
	}

	byGame := make(map[string][]GameEvent)
	var eventTeams []string
	seenTeam := make(map[string]bool)
	for _, e := range events {
		if !completed[e.GameID] {
			continue
		}
		byGame[e.GameID] = append(byGame[e.GameID], e)
		if !seenTeam[e.Team] {
			seenTeam[e.Team] = true
			eventTeams = append(eventTeams, e.Team)
		}
	}

	lines, index := teamLines(teams, eventTeams)

	for _, gameID := range order {
		gameEvents := byGame[gameID]
		if len(gameEvents) == 0 {
			continue
		}
		goals, participants := teamGoalsFractional(gameEvents)
		for _, team := range participants {
			i, ok := index[team]
			if !ok {
				continue
			}
			own := goals[team]
			conceded := 0
			for _, other := range participants {
				if other != team {
					conceded += goals[other]
				}
			}
			outcome := decide(own, maxOther(goals, team))

			line := &lines[i]
			line.TotalGames++
			line.GoalsScored += own
			line.GoalsConceded += conceded
			line.Points += standingsPoints(outcome)
			switch outcome {
			case OutcomeWin:
				line.Wins++
			case OutcomeDraw:
				line.Draws++
			default:
				line.Losses++
			}
		}
	}

	for i := range lines {
		lines[i].WinRate = winRate(lines[i].Wins, lines[i].TotalGames)
	}
	Rank(lines, func(t TeamStats) float64 { return float64(t.Points) }, Desc, nil)
	return lines
}

// teamLines builds the empty standings table. Configured active teams win;
// without any configuration the teams seen in the event log are used.
func teamLines(teams []TeamConfig, eventTeams []string) ([]TeamStats, map[string]int) {
	lines := make([]TeamStats, 0, len(teams))
	index := make(map[string]int)
	for _, t := range teams {
		if !t.Active {
			continue
		}
		if _, dup := index[t.Name]; dup {
			continue
		}
		index[t.Name] = len(lines)
		lines = append(lines, TeamStats{Team: t.Name, Color: t.Color})
	}
	if len(lines) > 0 {
		return lines, index
	}
	for _, name := range eventTeams {
		index[name] = len(lines)
		lines = append(lines, TeamStats{Team: name})
	}
	return lines, index
}

// teamGoalsFractional returns the rounded goal count per team of one game and
// the teams in first-seen order.
func teamGoalsFractional(events []GameEvent) (map[string]int, []string) {
	var participants []string
	seen := make(map[string]bool)
	for _, e := range events {
		if !seen[e.Team] {
			seen[e.Team] = true
			participants = append(participants, e.Team)
		}
	}

	raw := make(map[string]float64, len(participants))
	others := float64(len(participants) - 1)
	for _, e := range events {
		switch e.Type {
		case EventGoal:
			raw[e.Team]++
		case EventOwnGoal:
			if others == 0 {
				continue
			}
			for _, t := range participants {
				if t != e.Team {
					raw[t] += 1 / others
				}
			}
		}
	}

	goals := make(map[string]int, len(participants))
	for _, t := range participants {
		goals[t] = roundHalfUp(raw[t])
	}
	return goals, participants
}
