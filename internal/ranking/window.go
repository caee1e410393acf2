package ranking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Window narrows which games contribute to a ranking. A zero Year or Month
// disables filtering on that axis.
type Window struct {
	Year  int `json:"year,omitempty"`
	Month int `json:"month,omitempty"`
}

// AllTime is the unfiltered window.
var AllTime = Window{}

// ParseWindow builds a Window from the "year" and "month" filter values.
// An empty value or "all" disables the axis.
func ParseWindow(year, month string) (Window, error) {
	var w Window
	year = strings.TrimSpace(year)
	month = strings.TrimSpace(month)

	if year != "" && !strings.EqualFold(year, "all") {
		y, err := strconv.Atoi(year)
		if err != nil || y <= 0 {
			return Window{}, fmt.Errorf("invalid year %q", year)
		}
		w.Year = y
	}
	if month != "" && !strings.EqualFold(month, "all") {
		m, err := strconv.Atoi(month)
		if err != nil || m < 1 || m > 12 {
			return Window{}, fmt.Errorf("invalid month %q", month)
		}
		w.Month = m
	}
	return w, nil
}

// IsAll reports whether the window has no year filter, which makes the
// reference date depend on the clock.
func (w Window) IsAll() bool {
	return w.Year == 0
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if w.Year != 0 && t.Year() != w.Year {
		return false
	}
	if w.Month != 0 && int(t.Month()) != w.Month {
		return false
	}
	return true
}

// ReferenceDate is the end boundary of the window: the last day of the
// selected month, Dec 31 of the selected year, or now when the year is "all".
func (w Window) ReferenceDate(now time.Time) time.Time {
	if w.Year == 0 {
		return truncateDay(now)
	}
	if w.Month == 0 {
		return time.Date(w.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
	}
	// Day 0 of the following month is the last day of this one.
	return time.Date(w.Year, time.Month(w.Month)+1, 0, 0, 0, 0, 0, time.UTC)
}

func (w Window) String() string {
	switch {
	case w.Year == 0 && w.Month == 0:
		return "all"
	case w.Year == 0:
		return fmt.Sprintf("*-%02d", w.Month)
	case w.Month == 0:
		return strconv.Itoa(w.Year)
	default:
		return fmt.Sprintf("%d-%02d", w.Year, w.Month)
	}
}

// FilterGames returns the games of the window, keeping input order.
func FilterGames(games []Game, w Window) []Game {
	out := make([]Game, 0, len(games))
	for _, g := range games {
		if w.Contains(g.Date) {
			out = append(out, g)
		}
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
