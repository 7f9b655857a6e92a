package main

import (
	"adsync/db/migrations"
	httpadapter "adsync/internal/adapter/http"
	"adsync/internal/adapter/usecase"
	"adsync/internal/core/domain"
	"adsync/internal/db"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			if cfg.Psql.RunMigrations && !cfg.Store.UseMemory() {
				from, err := db.Migrate(cfg.Psql.Addr.String())
				if err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				logger.Info("migrations applied", slog.Uint64("from", uint64(from)), slog.Int("to", migrations.Version))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer a.close()

			handler := httpadapter.NewHandler(httpadapter.Services{
				Sync:      usecase.NewSyncUseCase(a.campaigns, a.gateway, a.limiter, logger),
				Campaigns: usecase.NewCampaignUseCase(a.campaigns, a.alerts, a.gateway, a.limiter, logger),
				Bulk:      usecase.NewBulkUseCase(a.campaigns, logger),
				Alerts:    usecase.NewAlertUseCase(a.alerts),
				Admitter:  a.limiter,
			}, cfg.Auth, logger)
			if cfg.Auth.JWTSecret == "" && !cfg.Auth.AllowHeader {
				logger.Warn("no authentication method configured, every api request will be rejected")
			}

			srv := &http.Server{
				Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
				Handler:      handler.Router(),
				ReadTimeout:  cfg.HTTP.ReadTimeout,
				WriteTimeout: cfg.HTTP.WriteTimeout,
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				return a.limiter.Run(gctx)
			})
			g.Go(func() error {
				<-gctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("shutdown: %w", err)
				}
				logger.Info("server gracefully stopped")
				return nil
			})
			return g.Wait()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(*cobra.Command, []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			from, err := db.Migrate(cfg.Psql.Addr.String())
			if err != nil {
				return err
			}
			logger.Info("migrations applied", slog.Uint64("from", uint64(from)), slog.Int("to", migrations.Version))
			return nil
		},
	}
}

func syncCmd() *cobra.Command {
	var (
		principal string
		timeout   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Mirror platform campaigns for one principal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			a, err := newApp(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer a.close()

			res, err := usecase.NewSyncUseCase(a.campaigns, a.gateway, a.limiter, logger).
				SyncAll(ctx, domain.Principal{ID: principal, Source: "cli"})
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Synced", "Total", "Changed", "Errors"})
			t.AppendRow(table.Row{res.Synced, res.Total, res.Changed, len(res.Errors)})
			t.Render()
			for _, e := range res.Errors {
				fmt.Fprintln(os.Stdout, "  -", e)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&principal, "principal", "", "principal id owning the mirrored campaigns")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall deadline")
	_ = cmd.MarkFlagRequired("principal")
	return cmd
}

func seedCmd() *cobra.Command {
	var (
		principal string
		count     int
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo LOCAL campaigns for one principal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer a.close()

			n, err := db.Seed(cmd.Context(), a.campaigns, a.alerts, principal, count)
			if err != nil {
				return err
			}
			if n == 0 {
				logger.Info("principal already has campaigns, nothing seeded", slog.String("principal", principal))
				return nil
			}
			logger.Info("seeded campaigns", slog.String("principal", principal), slog.Int("count", n))
			return nil
		},
	}
	cmd.Flags().StringVar(&principal, "principal", "", "principal id owning the demo campaigns")
	cmd.Flags().IntVar(&count, "count", 10, "number of campaigns to create")
	_ = cmd.MarkFlagRequired("principal")
	return cmd
}
