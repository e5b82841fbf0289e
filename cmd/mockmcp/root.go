package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var debug bool

// rootCmd is the base command for the mockmcp application.
var rootCmd = &cobra.Command{
	Use:   "mockmcp",
	Short: "Serve mock MCP tools backed by fabricated external APIs",
	Long: `mockmcp exposes a catalog of simulated MCP tools over stdio. Every tool
validates its inputs against a generated JSON Schema and answers with fabricated
data reshaped to the tool's documented response structure, so agents can be
exercised without real external services.`,
	// Errors are reported by the commands themselves; keep the output clean.
	SilenceUsage: true,
	Version:      "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// newLogger builds the process logger. It writes to stderr: stdout carries the
// MCP protocol when serving.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
