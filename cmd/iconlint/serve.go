package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/iconlint/iconlint"
	"github.com/iconlint/iconlint/internal/metrics"
	httpadapter "github.com/iconlint/iconlint/pkg/adapters/http"
	"github.com/iconlint/iconlint/pkg/adapters/memory"
	redisadapter "github.com/iconlint/iconlint/pkg/adapters/redis"
	"github.com/iconlint/iconlint/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the validation/repair JSON API. Repair runs are stored in
memory by default, or in Redis when --redis is set.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for run persistence (e.g. localhost:6379)")
	serveCmd.Flags().Duration("run-ttl", 24*time.Hour, "Expiration for stored runs (Redis only)")
}

func runServe(cmd *cobra.Command) error {
	set, err := loadRules(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd)
	port, _ := cmd.Flags().GetString("port")

	registry := prometheus.NewRegistry()
	engineMetrics := metrics.New(registry)

	engine := iconlint.New(
		iconlint.WithRules(set),
		iconlint.WithLogger(logger),
		iconlint.WithLifecycleHooks(engineMetrics.Hooks()),
	)

	var store ports.RunStore
	if addr, _ := cmd.Flags().GetString("redis"); addr != "" {
		ttl, _ := cmd.Flags().GetDuration("run-ttl")
		redisStore := redisadapter.New(addr, "", 0, redisadapter.WithTTL(ttl))
		defer redisStore.Close()
		store = redisStore
	} else {
		store = memory.NewStore()
	}

	server := httpadapter.NewServer(engine, set, store, httpadapter.WithLogger(logger))
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: server.Handler(registry),
	}

	serverErrors := make(chan error, 1)
	go func() {
		fmt.Printf("Starting iconlint server on %s\n", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-shutdown:
		fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		fmt.Println("iconlint server stopped gracefully")
		return nil
	}
}
