package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iconlint/iconlint"
	"github.com/iconlint/iconlint/internal/logging"
	mcpadapter "github.com/iconlint/iconlint/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the iconlint engine as an MCP server, exposing validate_icon,
repair_icon and suggest_name as tools for agent hosts.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		set, err := loadRules(cmd)
		if err != nil {
			log.Fatalf("Error loading rules: %v", err)
		}

		// Logs must stay off stdout: stdio transport speaks JSON-RPC there.
		logger := logging.New(slog.LevelInfo)
		engine := iconlint.New(iconlint.WithRules(set), iconlint.WithLogger(logger))
		srv := mcpadapter.NewServer(engine, set, logger)

		switch transport {
		case "stdio":
			log.SetOutput(os.Stderr)
			logger.Info("starting iconlint MCP server", "transport", "stdio")
			if err := srv.ServeStdio(); err != nil {
				logger.Error("mcp server execution failed", "err", err)
				os.Exit(1)
			}
		case "sse":
			logger.Info("starting iconlint MCP server", "transport", "sse", "port", port)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil {
				if err != http.ErrServerClosed {
					logger.Error("mcp server execution failed", "err", err)
					os.Exit(1)
				}
			}
			logger.Info("mcp server stopped gracefully")
		default:
			log.Fatalf("Unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8081, "Port to listen on (only for SSE)")
}
