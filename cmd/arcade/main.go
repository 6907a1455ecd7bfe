// arcade runs Blockfall, a falling-block puzzle, in the terminal, in a
// window, over SSH, or behind an HTTP score API.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade serve             - Start SSH server for remote play
//	arcade web               - Start the HTTP score API
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
//
// Defaults for the global flags can also come from ARCADE_FPS, ARCADE_SEED,
// ARCADE_DB and ARCADE_LOG_LEVEL, read from the environment or a .env file.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tinypulse/arcade/internal/registry"

	// Import games to register them
	_ "github.com/tinypulse/arcade/internal/games/blockfall"
)

const defaultDBPath = "~/.arcade/scores.db"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	// A missing .env is normal.
	_ = godotenv.Load()

	bindGlobalFlags()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade - Play Blockfall in your terminal",
	Long: `Arcade hosts Blockfall, a falling-block puzzle: steer pieces into a
10x20 well, complete rows to clear them, and survive as long as you can.

Available commands:
  list     - Show all available games
  play     - Play a game in the terminal or a window
  serve    - Start SSH server for remote play
  web      - Start the HTTP score API
  scores   - View high scores

Examples:
  arcade list
  arcade play blockfall
  arcade play blockfall --window
  arcade serve --ssh :2222
  arcade web --http :8080
  arcade scores blockfall`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q", flagLogLevel)
		}
		log.SetLevel(level)
		log.SetReportTimestamp(true)
		return nil
	},
}

// bindGlobalFlags registers the persistent flags with env-derived defaults.
func bindGlobalFlags() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", envInt("ARCADE_FPS", 60), "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", int64(envInt("ARCADE_SEED", 0)), "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", envString("ARCADE_DB", defaultDBPath), "Path to scores database")
	flags.StringVar(&flagLogLevel, "log-level", envString("ARCADE_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(scoresCmd)
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn("ignoring invalid environment value", "key", key, "value", v)
		return fallback
	}
	return n
}

// requireGame fails with a hint when gameID is not registered.
func requireGame(gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}
	return nil
}
