package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/clubrank/internal/attendance"
	"github.com/mauv0809/clubrank/internal/club"
	"github.com/mauv0809/clubrank/internal/processor"
	"github.com/mauv0809/clubrank/internal/ranking"
	"github.com/mauv0809/clubrank/internal/stats"
)

func CompleteGameHandler(p *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := r.URL.Query().Get("game")
		if gameID == "" {
			http.Error(w, "game is required", http.StatusBadRequest)
			return
		}
		if err := p.CompleteGame(r.Context(), gameID, IsDryRunFromContext(r)); err != nil {
			writeError(w, "Failed to complete game", err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Game %s completed.", gameID)
	}
}

func CancelGameHandler(p *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := r.URL.Query().Get("game")
		if gameID == "" {
			http.Error(w, "game is required", http.StatusBadRequest)
			return
		}
		if err := p.CancelGame(r.Context(), gameID, IsDryRunFromContext(r)); err != nil {
			writeError(w, "Failed to cancel game", err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Game %s canceled.", gameID)
	}
}

type attendanceRequest struct {
	GameID   string                      `json:"game_id"`
	MemberID string                      `json:"member_id"`
	Status   ranking.ParticipationStatus `json:"status"`
}

// AttendanceHandler records one RSVP and answers with the game's new headcount.
func AttendanceHandler(store club.ClubStore, att attendance.AttendanceStore, ranker stats.Ranker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req attendanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode attendance request", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.GameID == "" || req.MemberID == "" {
			http.Error(w, "game_id and member_id are required", http.StatusBadRequest)
			return
		}

		game, err := store.GetGame(r.Context(), req.GameID)
		if err != nil {
			writeError(w, "Failed to get game", err)
			return
		}
		if _, err := store.GetMember(r.Context(), req.MemberID); err != nil {
			writeError(w, "Failed to get member", err)
			return
		}

		if IsDryRunFromContext(r) {
			log.Info("[Dry Run] Would record response", "game", req.GameID, "member", req.MemberID, "status", req.Status)
		} else {
			if err := att.Respond(r.Context(), req.GameID, req.MemberID, req.Status); err != nil {
				writeError(w, "Failed to record response", err)
				return
			}
			ranker.Invalidate(game.ClubID)
		}

		summary, err := att.Summary(r.Context(), req.GameID)
		if err != nil {
			writeError(w, "Failed to summarize attendance", err)
			return
		}
		writeJSON(w, summary)
	}
}
