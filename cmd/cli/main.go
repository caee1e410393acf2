package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	host   string
	clubID string
	year   string
	month  string
)

var rootCmd = &cobra.Command{
	Use:   "clubrank-cli",
	Short: "A CLI to interact with the clubrank server",
	Long: `A command-line interface for making requests to the various endpoints
of the clubrank application.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server")
	rootCmd.PersistentFlags().StringVar(&clubID, "club", "", "The club to query (defaults to the server's CLUB_ID)")
	rootCmd.PersistentFlags().StringVar(&year, "year", "", "Restrict rankings to a year")
	rootCmd.PersistentFlags().StringVar(&month, "month", "", "Restrict rankings to a month (1-12)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
