// Package main is the entry point for the chaos room command line
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	logLevel  string
	redisAddr string
)

var rootCmd = &cobra.Command{
	Use:   "chaosroom",
	Short: "Chaos Room combat resolver",
	Long: `Chaos Room resolves fights between a player and a monster from the door deck:
races and classes change the odds, helpers lend their levels, and losers run or
take the bad stuff.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := applyEnv(cmd); err != nil {
			return err
		}
		return setupLogging(logLevel)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error (env CHAOSROOM_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", "",
		"Redis address holding the card set and fight log; the built-in card set is used when empty (env CHAOSROOM_REDIS_ADDR)")

	rootCmd.AddCommand(fightCmd)
	rootCmd.AddCommand(catalogCmd)
}

func setupLogging(level string) error {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", level)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}
