package ranking

import "time"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func strPtr(s string) *string { return &s }

func completedGame(id string, date time.Time) Game {
	return Game{ID: id, ClubID: "club1", Date: date, Status: GameCompleted}
}

func ev(gameID, memberID, team string, typ EventType) GameEvent {
	e := GameEvent{GameID: gameID, Team: team, Type: typ}
	if memberID != "" {
		e.MemberID = strPtr(memberID)
	}
	return e
}

func confirmed(gameID, memberID string) Participation {
	return Participation{GameID: gameID, MemberID: memberID, Status: ParticipationConfirmed}
}

func activeMember(id, name string) Member {
	return Member{ID: id, ClubID: "club1", Name: name, Status: MemberActive}
}
