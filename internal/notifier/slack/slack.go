package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/clubrank/internal/metrics"
	"github.com/mauv0809/clubrank/internal/notifier"
	"github.com/mauv0809/clubrank/internal/ranking"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// maxRows caps how many ranking lines go into one message.
const maxRows = 10

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-channel", "dry-run-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendPlayerLeaderboard(stats []ranking.PlayerStats, w ranking.Window, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatPlayerLeaderboard(stats, w), dryRun)
	return err
}

func (s *Notifier) SendTeamStandings(stats []ranking.TeamStats, w ranking.Window, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatTeamStandings(stats, w), dryRun)
	return err
}

func (s *Notifier) SendParticipationRanking(stats []ranking.ParticipationRankingStats, w ranking.Window, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatParticipationRanking(stats, w), dryRun)
	return err
}

// FormatPlayerLeaderboardResponse formats a leaderboard message for a slash command response.
func (s *Notifier) FormatPlayerLeaderboardResponse(stats []ranking.PlayerStats, w ranking.Window) (any, error) {
	return s.formatPlayerLeaderboard(stats, w), nil
}

// FormatTeamStandingsResponse formats the team table for a slash command response.
func (s *Notifier) FormatTeamStandingsResponse(stats []ranking.TeamStats, w ranking.Window) (any, error) {
	return s.formatTeamStandings(stats, w), nil
}

// FormatParticipationRankingResponse formats the participation ranking for a slash command response.
func (s *Notifier) FormatParticipationRankingResponse(stats []ranking.ParticipationRankingStats, w ranking.Window) (any, error) {
	return s.formatParticipationRanking(stats, w), nil
}

// FormatPlayerStatsResponse formats a player stats message for a slash command response.
func (s *Notifier) FormatPlayerStatsResponse(stats *ranking.PlayerStats, games []ranking.MemberGame, w ranking.Window) (any, error) {
	return s.formatPlayerStats(stats, games, w), nil
}

// FormatPlayerNotFoundResponse formats a player not found message for a slash command response.
func (s *Notifier) FormatPlayerNotFoundResponse(query string) (any, error) {
	return s.formatPlayerNotFound(query), nil
}

func header(text string) slack.Block {
	return slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", text, true, false))
}

func markdown(text string) slack.Block {
	return slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil)
}

func medal(position int) string {
	switch position {
	case 1:
		return ":first_place_medal: "
	case 2:
		return ":second_place_medal: "
	case 3:
		return ":third_place_medal: "
	}
	return ""
}

// windowLabel is the human title of a ranking window.
func windowLabel(w ranking.Window) string {
	switch {
	case w.Year == 0 && w.Month == 0:
		return "All time"
	case w.Year == 0:
		return time.Month(w.Month).String() + ", all years"
	case w.Month == 0:
		return fmt.Sprintf("%d", w.Year)
	default:
		return fmt.Sprintf("%s %d", time.Month(w.Month), w.Year)
	}
}

// formatPlayerLeaderboard creates the Slack message for the player leaderboard.
func (s *Notifier) formatPlayerLeaderboard(stats []ranking.PlayerStats, w ranking.Window) slack.Message {
	blocks := []slack.Block{header(":trophy: Player Leaderboard :trophy:"), contextLine(windowLabel(w))}

	if len(stats) == 0 {
		blocks = append(blocks, markdown("No games played yet. Go play some!"))
		return slack.NewBlockMessage(blocks...)
	}

	for _, stat := range stats[:min(len(stats), maxRows)] {
		text := fmt.Sprintf("%d. %s*%s*: %.2f pts\n> Games: %d | Goals: %d | Saves: %d | W/D/L: %d/%d/%d | Win rate: %s",
			stat.Position,
			medal(stat.Position),
			stat.Name,
			stat.Points,
			stat.Games,
			stat.Goals,
			stat.Saves,
			stat.Wins, stat.Draws, stat.Losses,
			stat.WinRate,
		)
		blocks = append(blocks, markdown(text))
	}
	return slack.NewBlockMessage(blocks...)
}

// formatTeamStandings creates the Slack message for the team table.
func (s *Notifier) formatTeamStandings(stats []ranking.TeamStats, w ranking.Window) slack.Message {
	blocks := []slack.Block{header(":shield: Team Standings :shield:"), contextLine(windowLabel(w))}

	if len(stats) == 0 {
		blocks = append(blocks, markdown("No teams configured."))
		return slack.NewBlockMessage(blocks...)
	}

	var b strings.Builder
	for i, t := range stats {
		fmt.Fprintf(&b, "%d. *%s*: %d pts (%d games, %d-%d-%d, goals %d:%d, %s)\n",
			i+1, t.Team, t.Points, t.TotalGames, t.Wins, t.Draws, t.Losses, t.GoalsScored, t.GoalsConceded, t.WinRate)
	}
	blocks = append(blocks, markdown(strings.TrimSuffix(b.String(), "\n")))
	return slack.NewBlockMessage(blocks...)
}

// formatParticipationRanking creates the Slack message for the participation ranking.
func (s *Notifier) formatParticipationRanking(stats []ranking.ParticipationRankingStats, w ranking.Window) slack.Message {
	blocks := []slack.Block{header(":calendar: Participation Ranking :calendar:"), contextLine(windowLabel(w))}

	if len(stats) == 0 {
		blocks = append(blocks, markdown("No active members."))
		return slack.NewBlockMessage(blocks...)
	}

	for _, p := range stats[:min(len(stats), maxRows)] {
		text := fmt.Sprintf("%d. %s*%s*: %.2f pts\n> Attendance: %.1f%% (%d games) | Member for %d months | Age %d",
			p.Position, medal(p.Position), p.Name, p.Points, p.ParticipationRate, p.Games, p.MembershipMonths, p.Age)
		blocks = append(blocks, markdown(text))
	}
	return slack.NewBlockMessage(blocks...)
}

// formatPlayerStats creates a Slack message to display a single player's line and recent games.
func (s *Notifier) formatPlayerStats(stat *ranking.PlayerStats, games []ranking.MemberGame, w ranking.Window) slack.Message {
	blocks := []slack.Block{header(fmt.Sprintf(":bar_chart: Stats for %s", stat.Name)), contextLine(windowLabel(w))}

	text := fmt.Sprintf("> *Position*: %d\n> *Points*: %.2f\n> *Games*: %d (W/D/L %d/%d/%d, %s)\n> *Goals*: %d (%.2f per game)\n> *Own goals*: %d\n> *Saves*: %d",
		stat.Position, stat.Points, stat.Games, stat.Wins, stat.Draws, stat.Losses, stat.WinRate,
		stat.Goals, stat.GoalAverage, stat.OwnGoals, stat.Saves)
	blocks = append(blocks, markdown(text))

	if len(games) > 0 {
		var b strings.Builder
		b.WriteString("*Recent games*\n")
		for _, g := range games[:min(len(games), 5)] {
			result := string(g.Result)
			if result == "" {
				result = "no team"
			}
			fmt.Fprintf(&b, "• %s: %d-%d %s", g.Date.Format("2006-01-02"), g.TeamGoals, g.OpponentGoals, result)
			if g.Goals > 0 {
				fmt.Fprintf(&b, ", %d goal(s)", g.Goals)
			}
			b.WriteString("\n")
		}
		blocks = append(blocks, markdown(strings.TrimSuffix(b.String(), "\n")))
	}
	return slack.NewBlockMessage(blocks...)
}

// formatPlayerNotFound creates a Slack message for when a player's stats are not found.
func (s *Notifier) formatPlayerNotFound(query string) slack.Message {
	text := fmt.Sprintf("Sorry, I couldn't find a player matching *%s*. Try a different name.", query)
	return slack.NewBlockMessage(markdown(text))
}

func contextLine(text string) slack.Block {
	return slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", text, false, false))
}
