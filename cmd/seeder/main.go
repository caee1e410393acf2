package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/clubrank/internal/attendance"
	"github.com/mauv0809/clubrank/internal/club"
	"github.com/mauv0809/clubrank/internal/database"
	"github.com/mauv0809/clubrank/internal/ranking"
)

var (
	firstNames = []string{"Ana", "Bruno", "Carla", "Diego", "Elena", "Fabio", "Gina", "Hugo", "Ines", "Jonas", "Karin", "Luis"}
	lastNames  = []string{"Silva", "Costa", "Pereira", "Alves", "Lopes", "Moreira"}
	teams      = []ranking.TeamConfig{
		{Name: "white", Color: "#ffffff", Active: true},
		{Name: "green", Color: "#2e7d32", Active: true},
		{Name: "orange", Color: "#ef6c00", Active: true},
	}
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"TURSO_PRIMARY_URL": "",
		"TURSO_AUTH_TOKEN":  "",
		"MIGRATIONS_DIR":    "./migrations",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	for _, key := range []string{"DB_NAME", "CLUB_ID"} {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()
	ctx := context.Background()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"], cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer teardown()

	clubs := club.New(db)
	att := attendance.NewStore(db)
	clubID := cfg["CLUB_ID"]
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := clubs.UpsertClub(ctx, clubID, "Seeded Club"); err != nil {
		log.Fatalf("Failed to create club: %s", err)
	}
	for _, t := range teams {
		t.ClubID = clubID
		if err := clubs.UpsertTeamConfig(ctx, t); err != nil {
			log.Fatalf("Failed to create team %s: %s", t.Name, err)
		}
	}

	const numMembers = 24
	var members []ranking.Member
	for i := 0; i < numMembers; i++ {
		birth := time.Date(1970+rng.Intn(35), time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)
		registered := time.Now().AddDate(-rng.Intn(8), -rng.Intn(12), 0)
		m := ranking.Member{
			ClubID:           clubID,
			Name:             firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
			BirthDate:        &birth,
			RegistrationDate: &registered,
			Status:           ranking.MemberActive,
		}
		if i > 0 && rng.Intn(4) == 0 {
			m.SponsorID = &members[rng.Intn(len(members))].ID
		}
		saved, err := clubs.UpsertMember(ctx, m)
		if err != nil {
			log.Fatalf("Failed to insert member %s: %s", m.Name, err)
		}
		members = append(members, saved)
	}
	log.Info("Inserted members", "count", len(members))

	const numWeeks = 52
	startTime := time.Now()
	firstSunday := time.Now().AddDate(0, 0, -7*numWeeks)
	for week := 0; week < numWeeks; week++ {
		game, err := clubs.CreateGame(ctx, clubID, firstSunday.AddDate(0, 0, 7*week))
		if err != nil {
			log.Fatalf("Failed to create game: %s", err)
		}
		seedGame(ctx, rng, clubs, att, game, members)
	}
	log.Info("Successfully seeded games.", "count", numWeeks, "duration", time.Since(startTime))
}

// seedGame gives one game a roster and, unless it is canceled, a random event log.
func seedGame(ctx context.Context, rng *rand.Rand, clubs club.ClubStore, att attendance.AttendanceStore, game ranking.Game, members []ranking.Member) {
	responses := make([]attendance.Response, 0, len(members))
	var players []ranking.Member
	for _, m := range members {
		status := ranking.ParticipationDeclined
		switch r := rng.Intn(10); {
		case r < 6:
			status = ranking.ParticipationConfirmed
			players = append(players, m)
		case r < 8:
			status = ranking.ParticipationUnconfirmed
		}
		responses = append(responses, attendance.Response{MemberID: m.ID, Status: status})
	}
	if err := att.RecordRoster(ctx, game.ID, responses); err != nil {
		log.Fatalf("Failed to record roster for game %s: %s", game.ID, err)
	}

	if rng.Intn(10) == 0 || len(players) < len(teams) {
		if err := clubs.UpdateGameStatus(ctx, game.ID, ranking.GameCanceled); err != nil {
			log.Fatalf("Failed to cancel game %s: %s", game.ID, err)
		}
		return
	}

	kinds := []ranking.EventType{ranking.EventGoal, ranking.EventGoal, ranking.EventGoal, ranking.EventSave, ranking.EventSave, ranking.EventOwnGoal}
	for i := 0; i < 6+rng.Intn(12); i++ {
		p := rng.Intn(len(players))
		e := ranking.GameEvent{
			GameID:   game.ID,
			MemberID: &players[p].ID,
			Team:     teams[p%len(teams)].Name,
			Type:     kinds[rng.Intn(len(kinds))],
		}
		if _, err := clubs.AddEvent(ctx, e); err != nil {
			log.Fatalf("Failed to add event to game %s: %s", game.ID, err)
		}
	}
	if err := clubs.UpdateGameStatus(ctx, game.ID, ranking.GameCompleted); err != nil {
		log.Fatalf("Failed to complete game %s: %s", game.ID, err)
	}
}
