package ranking

import "time"

const (
	participationScale = 1000
	monthScale         = 10
	daysPerYear        = 365.25
)

// AggregateParticipation ranks every active member by a composite of
// participation rate, membership tenure and age, all measured at ref.
//
// The score is built from integers: the one-decimal rate times 1000, plus
// ten per whole month of membership, plus one per year of age; points are
// that total divided by 1000 and kept to two decimals.
func AggregateParticipation(members []Member, games []Game, participations []Participation, ref time.Time) []ParticipationRankingStats {
	ref = truncateDay(ref)

	completed := make(map[string]bool)
	for _, g := range games {
		if g.Status == GameCompleted {
			completed[g.ID] = true
		}
	}
	total := len(completed)

	played := make(map[string]int)
	seen := make(map[[2]string]bool)
	for _, p := range participations {
		if p.Status != ParticipationConfirmed || !completed[p.GameID] {
			continue
		}
		k := [2]string{p.GameID, p.MemberID}
		if seen[k] {
			continue
		}
		seen[k] = true
		played[p.MemberID]++
	}

	out := make([]ParticipationRankingStats, 0, len(members))
	for _, m := range members {
		if m.Status != MemberActive {
			continue
		}
		games := played[m.ID]
		tenths := divRoundHalfUp(games*1000, total)
		months := MembershipMonths(m.RegistrationDate, ref)
		age := AgeAt(m.BirthDate, ref)

		totalValue := tenths*(participationScale/10) + months*monthScale + age

		out = append(out, ParticipationRankingStats{
			MemberID:          m.ID,
			Name:              m.Name,
			Games:             games,
			MembershipTime:    MembershipDays(m.RegistrationDate, ref),
			MembershipMonths:  months,
			Age:               age,
			ParticipationRate: float64(tenths) / 10,
			TotalValue:        totalValue,
			Points:            float64(divRoundHalfUp(totalValue, participationScale/100)) / 100,
		})
	}
	Rank(out, func(p ParticipationRankingStats) float64 { return p.Points }, Desc, setParticipationPosition)
	return out
}

// MembershipDays is the number of whole days from registration to ref, never negative.
func MembershipDays(registered *time.Time, ref time.Time) int {
	if registered == nil {
		return 0
	}
	days := int(truncateDay(ref).Sub(truncateDay(*registered)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// MembershipMonths is the calendar month difference between registration and
// ref, ignoring the day of month, never negative.
func MembershipMonths(registered *time.Time, ref time.Time) int {
	if registered == nil {
		return 0
	}
	r := registered.UTC()
	months := (ref.Year()-r.Year())*12 + int(ref.Month()) - int(r.Month())
	if months < 0 {
		return 0
	}
	return months
}

// AgeAt is floor((ref - birth) / 365.25 days), never negative.
func AgeAt(birth *time.Time, ref time.Time) int {
	if birth == nil {
		return 0
	}
	days := truncateDay(ref).Sub(truncateDay(*birth)).Hours() / 24
	if days <= 0 {
		return 0
	}
	return int(days / daysPerYear)
}
