package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mockmcp"
	"mockmcp/config"
	"mockmcp/mcpserver"
	"mockmcp/mockapi"
	"mockmcp/servers"
	"mockmcp/state"
	"mockmcp/stateful"
)

var (
	configDir    string
	enableState  bool
	seed         int64
	serveTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the mock tool catalog over MCP stdio",
	Long: `Serve registers the built-in mock server families (plus any YAML-defined
tools from --config) and speaks MCP on stdin/stdout. With --state, stateful tools
route their side effects through an in-memory simulated filesystem and inventory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		reg, err := buildRegistry()
		if err != nil {
			return err
		}

		middlewares := []mockmcp.Middleware{}
		if debug {
			middlewares = append(middlewares, mockmcp.WithLogging(logger))
		}
		if enableState {
			middlewares = append(middlewares, stateful.Dispatcher(state.New(), logger))
		}
		if len(middlewares) > 0 {
			reg.Use(middlewares...)
		}

		return mcpserver.New("mockmcp", rootCmd.Version, reg, logger).Serve()
	},
}

func init() {
	serveCmd.Flags().StringVar(&configDir, "config", "", "directory of YAML mock tool definitions to load")
	serveCmd.Flags().BoolVar(&enableState, "state", false, "route stateful tools through the simulated state store")
	serveCmd.Flags().Int64Var(&seed, "seed", 0, "seed for fabricated values (0 seeds from the clock)")
	serveCmd.Flags().DurationVar(&serveTimeout, "timeout", 10*time.Second, "per-call execution timeout")
	rootCmd.AddCommand(serveCmd)
}

// buildRegistry assembles the registry from the built-in families and --config.
func buildRegistry() (*mockmcp.Registry, error) {
	reg := mockmcp.NewRegistry(
		mockmcp.WithDefaultTimeout(serveTimeout),
		mockmcp.WithRecoverPanics(true),
	)
	if err := servers.RegisterAll(reg, mockapi.NewSource(seed)); err != nil {
		return nil, err
	}
	if configDir != "" {
		cfgs, err := config.LoadDir(configDir)
		if err != nil {
			return nil, err
		}
		if err := config.RegisterAll(reg, cfgs); err != nil {
			return nil, err
		}
		if len(cfgs) > 0 {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "loaded %d configured tools from %s\n", len(cfgs), configDir)
		}
	}
	return reg, nil
}
