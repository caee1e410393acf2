package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/clubrank/internal/attendance"
	"github.com/mauv0809/clubrank/internal/club"
	"github.com/mauv0809/clubrank/internal/processor"
	"github.com/mauv0809/clubrank/internal/ranking"
)

// ContextKey is a custom type to avoid key collisions in context.
type ContextKey string

const (
	DryRunKey ContextKey = "dryRun"
)

// isDryRunFromContext is a helper to safely retrieve the dry_run flag from the request context.
func IsDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(DryRunKey).(bool)
	return ok && dryRun
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

// clubFromQuery returns the "club" query parameter, or fallback when it is absent.
func clubFromQuery(r *http.Request, fallback string) string {
	if id := r.URL.Query().Get("club"); id != "" {
		return id
	}
	return fallback
}

// windowFromQuery parses the "year" and "month" query parameters, writing a
// 400 and returning false when they are invalid.
func windowFromQuery(w http.ResponseWriter, r *http.Request) (ranking.Window, bool) {
	q := r.URL.Query()
	win, err := ranking.ParseWindow(q.Get("year"), q.Get("month"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return ranking.Window{}, false
	}
	return win, true
}

// statusFor maps a domain error to the HTTP status it is reported with.
func statusFor(err error) int {
	switch {
	case errors.Is(err, club.ErrMemberNotFound), errors.Is(err, club.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, attendance.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, processor.ErrGameDecided):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, msg string, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.Error(msg, "error", err)
	} else {
		log.Warn(msg, "error", err)
	}
	http.Error(w, msg, code)
}
