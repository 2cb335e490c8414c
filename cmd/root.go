package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/redis/menucache"
	"restaurant/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// Execute runs the restaurant CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree: serve and migrate.
func NewRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "restaurant",
		Short:         "Restaurant dish catalog and order service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to an optional .env file")

	root.AddCommand(newServeCmd(&envFile), newMigrateCmd(&envFile))

	return root
}

func newServeCmd(envFile *string) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and background jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(*envFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, migrate, NewLogger(cmd.ErrOrStderr(), cfg.LogLevel))
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply the schema before serving")

	return cmd
}

func newMigrateCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(*envFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			gormDB, err := postgres.Open(cfg.DSN(), cfg.Pool())
			if err != nil {
				return err
			}
			defer postgres.Close(gormDB)

			if err = postgres.Migrate(cmd.Context(), gormDB); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			return nil
		},
	}
}

func serve(ctx context.Context, cfg Config, migrate bool, logger *slog.Logger) error {
	gormDB, err := postgres.Open(cfg.DSN(), cfg.Pool())
	if err != nil {
		return err
	}
	defer postgres.Close(gormDB)

	if migrate {
		if err = postgres.Migrate(ctx, gormDB); err != nil {
			return err
		}
	}

	cache, closeCache, err := newMenuCache(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	app := NewCompositionRoot(cfg, gormDB, cache, logger)

	handler, err := httpadapter.NewRouter(app.CreateHTTPServer(), httpadapter.RouterConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}, logger)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server started", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// newMenuCache connects to Redis when configured and falls back to a cache
// that never hits.
func newMenuCache(ctx context.Context, cfg Config, logger *slog.Logger) (ports.MenuCache, func(), error) {
	if cfg.RedisAddr == "" {
		logger.Info("menu cache disabled")
		return menucache.Noop{}, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connect to redis %s: %w", cfg.RedisAddr, err)
	}

	return menucache.NewRedisCache(client, cfg.MenuCacheTTL), func() { _ = client.Close() }, nil
}
