package ranking

import (
	"math"
	"strconv"
)

// Outcome is the result of one game from one team's point of view.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeDraw Outcome = "draw"
	OutcomeLoss Outcome = "loss"
)

// decide compares a team's goals with the best of its opponents.
func decide(own, bestOpponent int) Outcome {
	switch {
	case own > bestOpponent:
		return OutcomeWin
	case own == bestOpponent:
		return OutcomeDraw
	default:
		return OutcomeLoss
	}
}

// standingsPoints is the 3/1/0 table.
func standingsPoints(o Outcome) int {
	switch o {
	case OutcomeWin:
		return 3
	case OutcomeDraw:
		return 1
	}
	return 0
}

// roundHalfUp rounds to the nearest integer with .5 going up.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// divRoundHalfUp is round(num/den) for non-negative integers without going through floats.
func divRoundHalfUp(num, den int) int {
	if den == 0 {
		return 0
	}
	return (2*num + den) / (2 * den)
}

// winRate formats wins/games as a whole percentage.
func winRate(wins, games int) string {
	if games == 0 {
		return "0%"
	}
	return strconv.Itoa(divRoundHalfUp(wins*100, games)) + "%"
}

// maxOther returns the highest value in goals excluding key. With no other
// teams the opponents scored nothing.
func maxOther(goals map[string]int, key string) int {
	best := 0
	first := true
	for team, g := range goals {
		if team == key {
			continue
		}
		if first || g > best {
			best = g
			first = false
		}
	}
	return best
}
