package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinypulse/arcade/internal/registry"
)

var flagListJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListJSON, "json", false, "Print the game list as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	games := registry.List()

	if flagListJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(games)
	}

	if len(games) == 0 {
		fmt.Println("No games available.")
		return nil
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
	return nil
}
