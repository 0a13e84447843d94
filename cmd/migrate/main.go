// Command migrate applies or inspects the database schema migrations
// embedded in the binary. It is intended to run before the server starts,
// for example as an init container.
//
// Usage:
//
//	migrate [up|down|status]
//
// With no argument it runs "up". Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/result-tracker/internal/app"
	"github.com/heartmarshall/result-tracker/internal/config"
	"github.com/heartmarshall/result-tracker/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, logger, cfg.Database.DSN, command); err != nil {
		logger.Error("migrate failed",
			slog.String("command", command),
			slog.String("error", err.Error()),
		)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, dsn, command string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		for _, r := range results {
			logger.Info("migration applied",
				slog.String("path", r.Source.Path),
				slog.Duration("duration", r.Duration),
			)
		}
		return err
	case "down":
		r, err := provider.Down(ctx)
		if r != nil {
			logger.Info("migration rolled back",
				slog.String("path", r.Source.Path),
				slog.Duration("duration", r.Duration),
			)
		}
		return err
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			logger.Info("migration status",
				slog.String("path", s.Source.Path),
				slog.Any("state", s.State),
				slog.Time("applied_at", s.AppliedAt),
			)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q, want up, down or status", command)
	}
}
