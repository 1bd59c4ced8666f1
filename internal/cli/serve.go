package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"investwise-api/internal/advisor"
	"investwise-api/internal/handlers"
	"investwise-api/internal/services"
	"investwise-api/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log := newLogger(cmd, cfg)

			ctx := context.Background()
			backend, err := store.Open(ctx, store.Options{
				Driver:    cfg.StoreDriver,
				DSN:       cfg.StoreDSN,
				ProjectID: cfg.FirestoreID,
			})
			if err != nil {
				return fmt.Errorf("opening store: %w", err)
			}
			records, err := store.NewRecords(backend, cfg.CacheMaxCost, log)
			if err != nil {
				backend.Close()
				return err
			}
			defer records.Close()

			advisory := services.NewAdvisoryService(advisor.NewEngine(advisor.DefaultCatalog()), records, log)
			app := handlers.NewApp(advisory, handlers.AppOptions{
				CORSOrigins:  cfg.CORSOrigins,
				RateLimitMax: cfg.RateLimitMax,
			}, log)

			listenErr := make(chan error, 1)
			go func() {
				listenErr <- app.Listen(":" + cfg.Port)
			}()

			log.Info().
				Str("port", cfg.Port).
				Str("environment", cfg.Environment).
				Str("store", cfg.StoreDriver).
				Msg("InvestWise API started")

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			select {
			case err := <-listenErr:
				return fmt.Errorf("failed to start server: %w", err)
			case <-quit:
			}

			log.Info().Msg("Shutting down gracefully")
			shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			if err := app.ShutdownWithContext(shutdownCtx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}
			log.Info().Msg("Server shutdown complete")
			return nil
		},
	}
}
