package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/stocksync/stocksync/internal/api"
	"github.com/stocksync/stocksync/internal/auth"
	"github.com/stocksync/stocksync/internal/config"
	"github.com/stocksync/stocksync/internal/db"
	"github.com/stocksync/stocksync/internal/inventory"
	"github.com/stocksync/stocksync/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := newApp(cfg).Run(os.Args); err != nil {
		slog.Error("stocksync failed", "error", err)
		os.Exit(1)
	}
}

func newApp(cfg *config.Config) *cli.App {
	closeLog := func() {}

	return &cli.App{
		Name:  "stocksync",
		Usage: "track product stock levels, thresholds, and reorders",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db", Aliases: []string{"d"}, Value: cfg.DBPath, Usage: "SQLite database path"},
			&cli.StringFlag{Name: "log", Aliases: []string{"l"}, Value: cfg.LogPath, Usage: "log file path (default: stdout/stderr only)"},
		},
		Before: func(c *cli.Context) error {
			cfg.DBPath = c.String("db")
			cfg.LogPath = c.String("log")

			cleanup, err := setupLogger(cfg.LogPath)
			if err != nil {
				return err
			}
			closeLog = cleanup
			return nil
		},
		After: func(*cli.Context) error {
			closeLog()
			return nil
		},
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Aliases: []string{"a"}, Value: cfg.Addr, Usage: "listen address"},
					&cli.StringFlag{Name: "user", Aliases: []string{"u"}, Value: cfg.Username, Usage: "operator username (password comes from STOCKSYNC_OPERATOR_PASSWORD)"},
				},
				Action: func(c *cli.Context) error {
					cfg.Addr = c.String("addr")
					cfg.Username = c.String("user")
					return serve(c.Context, cfg)
				},
			},
			{
				Name:  "report",
				Usage: "print the reorder report",
				Action: func(c *cli.Context) error {
					return report(c.Context, cfg)
				},
			},
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	database, err := openDatabase(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	slog.Info("database ready", "path", cfg.DBPath)

	// Load JWT secret from database (auto-generated on first run).
	jwtSecret, err := store.GetJWTSecret(ctx, database)
	if err != nil {
		return fmt.Errorf("getting JWT secret: %w", err)
	}

	inv, err := store.Open(ctx, store.NewSQLitePersister(database, cfg.SnapshotKey))
	if err != nil {
		return err
	}
	stats := inventory.Summarize(inv.Snapshot())
	slog.Info("inventory loaded", "products", stats.Count, "low_stock", stats.LowStockCount)

	gate, err := auth.NewGate(cfg.Username, cfg.Password)
	if err != nil {
		return err
	}
	if cfg.Username == "demo" && cfg.Password == "password" {
		slog.Warn("using the demo operator account; set STOCKSYNC_OPERATOR_USERNAME and STOCKSYNC_OPERATOR_PASSWORD")
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(inv, database, gate, jwtSecret))

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.LoggingMiddleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server started", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	err = g.Wait()
	slog.Info("server stopped, closing database")
	return err
}

func report(ctx context.Context, cfg *config.Config) error {
	if _, err := os.Stat(cfg.DBPath); err != nil {
		return fmt.Errorf("database %s: %w", cfg.DBPath, err)
	}

	database, err := openDatabase(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	products, err := store.NewSQLitePersister(database, cfg.SnapshotKey).Load(ctx)
	if err != nil {
		return err
	}

	return printReorderReport(os.Stdout, inventory.BuildReorderReport(products))
}

// openDatabase opens the database and applies migrations (idempotent).
func openDatabase(path string) (*sql.DB, error) {
	database, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return database, nil
}
