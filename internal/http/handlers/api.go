package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/clubrank/internal/club"
	"github.com/mauv0809/clubrank/internal/ranking"
	"github.com/mauv0809/clubrank/internal/stats"
)

func TeamStatsHandler(ranker stats.Ranker, defaultClub string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		win, ok := windowFromQuery(w, r)
		if !ok {
			return
		}
		teams, err := ranker.FetchTeamStats(r.Context(), clubFromQuery(r, defaultClub), win)
		if err != nil {
			writeError(w, "Failed to get team stats", err)
			return
		}
		writeJSON(w, teams)
	}
}

// PlayerStatsHandler serves the player leaderboard. "sort" and "order" re-rank
// it by another column; positions follow the requested order.
func PlayerStatsHandler(ranker stats.Ranker, defaultClub string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		win, ok := windowFromQuery(w, r)
		if !ok {
			return
		}
		order, err := ranking.ParseOrder(r.URL.Query().Get("order"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		players, err := ranker.FetchPlayerStats(r.Context(), clubFromQuery(r, defaultClub), win)
		if err != nil {
			writeError(w, "Failed to get player stats", err)
			return
		}
		if err := ranking.SortPlayers(players, r.URL.Query().Get("sort"), order); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, players)
	}
}

// ParticipationRankingHandler serves the participation ranking. "sort" and
// "order" only change the display order; positions stay by points.
func ParticipationRankingHandler(ranker stats.Ranker, defaultClub string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		win, ok := windowFromQuery(w, r)
		if !ok {
			return
		}
		order, err := ranking.ParseOrder(r.URL.Query().Get("order"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		rows, err := ranker.FetchParticipationRanking(r.Context(), clubFromQuery(r, defaultClub), win)
		if err != nil {
			writeError(w, "Failed to get participation ranking", err)
			return
		}
		if err := ranking.SortParticipation(rows, r.URL.Query().Get("sort"), order); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, rows)
	}
}

func CompletionRateHandler(ranker stats.Ranker, defaultClub string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		win, ok := windowFromQuery(w, r)
		if !ok {
			return
		}
		rate, err := ranker.FetchCompletionRate(r.Context(), clubFromQuery(r, defaultClub), win)
		if err != nil {
			writeError(w, "Failed to get completion rate", err)
			return
		}
		writeJSON(w, rate)
	}
}

func MemberGamesHandler(ranker stats.Ranker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID := r.URL.Query().Get("member")
		if memberID == "" {
			http.Error(w, "member is required", http.StatusBadRequest)
			return
		}
		win, ok := windowFromQuery(w, r)
		if !ok {
			return
		}
		games, err := ranker.FetchMemberGames(r.Context(), memberID, win)
		if err != nil {
			writeError(w, "Failed to get member games", err)
			return
		}
		writeJSON(w, games)
	}
}

func ListMembersHandler(store club.ClubStore, defaultClub string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := store.ListMembers(r.Context(), clubFromQuery(r, defaultClub))
		if err != nil {
			writeError(w, "Failed to get members", err)
			return
		}
		writeJSON(w, members)
	}
}

// GodchildrenHandler lists the members sponsored by the given member.
func GodchildrenHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID := r.URL.Query().Get("member")
		if memberID == "" {
			http.Error(w, "member is required", http.StatusBadRequest)
			return
		}
		if _, err := store.GetMember(r.Context(), memberID); err != nil {
			writeError(w, "Failed to get member", err)
			return
		}
		members, err := store.GetGodchildren(r.Context(), memberID)
		if err != nil {
			writeError(w, "Failed to get godchildren", err)
			return
		}
		log.Debug("Listed godchildren", "member", memberID, "count", len(members))
		writeJSON(w, members)
	}
}

func ListGamesHandler(store club.ClubStore, defaultClub string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		win, ok := windowFromQuery(w, r)
		if !ok {
			return
		}
		games, err := store.ListGames(r.Context(), clubFromQuery(r, defaultClub))
		if err != nil {
			writeError(w, "Failed to get games", err)
			return
		}
		writeJSON(w, ranking.FilterGames(games, win))
	}
}
