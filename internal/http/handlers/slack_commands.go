package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/clubrank/internal/club"
	"github.com/mauv0809/clubrank/internal/notifier"
	"github.com/mauv0809/clubrank/internal/ranking"
	"github.com/mauv0809/clubrank/internal/stats"
	"github.com/slack-go/slack"
)

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

func respondWithFormatted(w http.ResponseWriter, msg any, err error) {
	if err != nil {
		http.Error(w, "Failed to format response", http.StatusInternalServerError)
		log.Error("Failed to format response", "error", err)
		return
	}
	slackMsg, ok := msg.(slack.Message)
	if !ok {
		http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
		log.Error("Failed to cast message to slack.Message")
		return
	}
	respondWithSlackMsg(w, slackMsg)
}

// parseCommandText splits the text of a slash command into a free-text part
// and a trailing window. Expected formats: "", "2024", "2024 3", "Jane Doe",
// "Jane Doe 2024 3". A four digit number is a year, anything from 1 to 12 a month.
func parseCommandText(text string) (string, ranking.Window) {
	parts := strings.Fields(text)
	var w ranking.Window
	for len(parts) > 0 {
		last := parts[len(parts)-1]
		n, err := strconv.Atoi(last)
		if err != nil {
			break
		}
		switch {
		case len(last) == 4 && n > 0 && w.Year == 0:
			w.Year = n
		case n >= 1 && n <= 12 && w.Month == 0 && w.Year == 0:
			w.Month = n
		default:
			return strings.Join(parts, " "), w
		}
		parts = parts[:len(parts)-1]
	}
	return strings.Join(parts, " "), w
}

func parseCommandForm(w http.ResponseWriter, r *http.Request) (string, ranking.Window, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return "", ranking.Window{}, false
	}
	text, win := parseCommandText(r.FormValue("text"))
	return text, win, true
}

func LeaderboardCommandHandler(ranker stats.Ranker, notifier notifier.Notifier, clubID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, win, ok := parseCommandForm(w, r)
		if !ok {
			return
		}
		players, err := ranker.FetchPlayerStats(r.Context(), clubID, win)
		if err != nil {
			http.Error(w, "Failed to get player stats", http.StatusInternalServerError)
			log.Error("Failed to get player stats", "error", err)
			return
		}
		msg, err := notifier.FormatPlayerLeaderboardResponse(players, win)
		respondWithFormatted(w, msg, err)
	}
}

func StandingsCommandHandler(ranker stats.Ranker, notifier notifier.Notifier, clubID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, win, ok := parseCommandForm(w, r)
		if !ok {
			return
		}
		teams, err := ranker.FetchTeamStats(r.Context(), clubID, win)
		if err != nil {
			http.Error(w, "Failed to get team stats", http.StatusInternalServerError)
			log.Error("Failed to get team stats", "error", err)
			return
		}
		msg, err := notifier.FormatTeamStandingsResponse(teams, win)
		respondWithFormatted(w, msg, err)
	}
}

func RankingCommandHandler(ranker stats.Ranker, notifier notifier.Notifier, clubID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, win, ok := parseCommandForm(w, r)
		if !ok {
			return
		}
		rows, err := ranker.FetchParticipationRanking(r.Context(), clubID, win)
		if err != nil {
			http.Error(w, "Failed to get participation ranking", http.StatusInternalServerError)
			log.Error("Failed to get participation ranking", "error", err)
			return
		}
		msg, err := notifier.FormatParticipationRankingResponse(rows, win)
		respondWithFormatted(w, msg, err)
	}
}

// PlayerStatsCommandHandler resolves a typed name to the closest member and
// answers with their leaderboard line and recent games.
func PlayerStatsCommandHandler(ranker stats.Ranker, finder *club.MemberFinder, notifier notifier.Notifier, clubID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, win, ok := parseCommandForm(w, r)
		if !ok {
			return
		}
		if name == "" {
			http.Error(w, "Player name is required.", http.StatusBadRequest)
			return
		}

		log.Info("Received player stats command", "player", name, "window", win)
		matches, err := finder.Find(r.Context(), clubID, name)
		if err != nil {
			http.Error(w, "Failed to search members", http.StatusInternalServerError)
			log.Error("Failed to search members", "error", err)
			return
		}
		if len(matches) == 0 {
			log.Warn("Could not find player", "player", name)
			msg, err := notifier.FormatPlayerNotFoundResponse(name)
			respondWithFormatted(w, msg, err)
			return
		}
		member := matches[0].Member
		log.Debug("Resolved player", "query", name, "member", member.Name, "confidence", matches[0].Confidence)

		players, err := ranker.FetchPlayerStats(r.Context(), clubID, win)
		if err != nil {
			http.Error(w, "Failed to get player stats", http.StatusInternalServerError)
			log.Error("Failed to get player stats", "error", err)
			return
		}
		line := &ranking.PlayerStats{MemberID: member.ID, Name: member.Name, WinRate: "0%"}
		for i := range players {
			if players[i].MemberID == member.ID {
				line = &players[i]
				break
			}
		}

		games, err := ranker.FetchMemberGames(r.Context(), member.ID, win)
		if err != nil {
			http.Error(w, "Failed to get member games", http.StatusInternalServerError)
			log.Error("Failed to get member games", "error", err)
			return
		}
		msg, err := notifier.FormatPlayerStatsResponse(line, games, win)
		respondWithFormatted(w, msg, err)
	}
}
