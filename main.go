// tictactoe serves perfect-play Tic Tac Toe over HTTP and WebSocket.
//
// Usage:
//
//	tictactoe serve [--config config.yml]  - Run the REST and WebSocket servers
//	tictactoe move <board>                 - Print the optimal move for a board
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-solver/internal"
	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
)

var flagConfigPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "tictactoe",
	Short:         "Tic Tac Toe with an unbeatable minimax opponent",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST and WebSocket servers",
	Long: `Run the REST API and the WebSocket game server.

Settings come from the YAML config file; environment variables
(HTTP_PORT, SOCKET_PORT, REDIS_HOST, ...) override it.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagConfigPath, "config", "config.yml", "Path to the YAML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(moveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	conf, err := config.Load(flagConfigPath)
	if err != nil {
		return err
	}

	logger := initLogger(conf)

	if err = app.RunApp(logger, conf); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
