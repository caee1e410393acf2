package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	sortField string
	sortOrder string
	dryRun    bool
)

func init() {
	playerStatsCmd.Flags().StringVar(&sortField, "sort", "", "Column to rank by (points, goals, saves, games, wins, own_goals, goal_average)")
	playerStatsCmd.Flags().StringVar(&sortOrder, "order", "", "asc or desc")
	rankingCmd.Flags().StringVar(&sortField, "sort", "", "Column to order by (points, participation_rate, games, membership_time, age)")
	rankingCmd.Flags().StringVar(&sortOrder, "order", "", "asc or desc")
	completeGameCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log what would happen without changing anything")
	cancelGameCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log what would happen without changing anything")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(teamStatsCmd)
	rootCmd.AddCommand(playerStatsCmd)
	rootCmd.AddCommand(rankingCmd)
	rootCmd.AddCommand(completionRateCmd)
	rootCmd.AddCommand(memberGamesCmd)
	rootCmd.AddCommand(membersCmd)
	rootCmd.AddCommand(completeGameCmd)
	rootCmd.AddCommand(cancelGameCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health", nil)
	},
}

var teamStatsCmd = &cobra.Command{
	Use:   "team-stats",
	Short: "Show the team standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/team-stats", windowQuery())
	},
}

var playerStatsCmd = &cobra.Command{
	Use:   "player-stats",
	Short: "Show the player leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/player-stats", sortQuery(windowQuery()))
	},
}

var rankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Show the participation ranking",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/participation-ranking", sortQuery(windowQuery()))
	},
}

var completionRateCmd = &cobra.Command{
	Use:   "completion-rate",
	Short: "Show how many decided games were actually played",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/completion-rate", windowQuery())
	},
}

var memberGamesCmd = &cobra.Command{
	Use:   "member-games [member-id]",
	Short: "Show a member's game log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := windowQuery()
		q.Set("member", args[0])
		return performRequest(http.MethodGet, "/api/member-games", q)
	},
}

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "List the members of the club",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/members", windowQuery())
	},
}

var completeGameCmd = &cobra.Command{
	Use:   "complete-game [game-id]",
	Short: "Mark a game as played and post the updated rankings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/api/games/complete", gameQuery(args[0]))
	},
}

var cancelGameCmd = &cobra.Command{
	Use:   "cancel-game [game-id]",
	Short: "Mark a game as canceled",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/api/games/cancel", gameQuery(args[0]))
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics", nil)
	},
}

func windowQuery() url.Values {
	q := url.Values{}
	if clubID != "" {
		q.Set("club", clubID)
	}
	if year != "" {
		q.Set("year", year)
	}
	if month != "" {
		q.Set("month", month)
	}
	return q
}

func sortQuery(q url.Values) url.Values {
	if sortField != "" {
		q.Set("sort", sortField)
	}
	if sortOrder != "" {
		q.Set("order", sortOrder)
	}
	return q
}

func gameQuery(gameID string) url.Values {
	q := url.Values{"game": {gameID}}
	if dryRun {
		q.Set("dry_run", "true")
	}
	return q
}

func performRequest(method, endpoint string, query url.Values) error {
	target := host + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	fmt.Printf("Making request to %s\n", target)

	req, err := http.NewRequest(method, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
