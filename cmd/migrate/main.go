// Command migrate applies, rolls back, and reports the embedded schema
// migrations for either store driver.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/urfave/cli/v3"
	_ "modernc.org/sqlite" // registers "sqlite" driver for database/sql

	"github.com/fabriciobonjorno/ParkingControl/internal/config"
	"github.com/fabriciobonjorno/ParkingControl/migrations"
	sqlitemigrations "github.com/fabriciobonjorno/ParkingControl/migrations/sqlite"
)

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		slog.Error("migrate failed", "error", err)
		os.Exit(1)
	}
}

// newApp builds the CLI. Output of every subcommand goes to w.
func newApp(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "migrate",
		Usage:  "manage the parking database schema",
		Writer: w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "driver",
				Value:   config.DriverPostgres,
				Usage:   "store driver: postgres or sqlite",
				Sources: cli.EnvVars("STORE_DRIVER"),
			},
			&cli.StringFlag{
				Name:    "database-url",
				Usage:   "Postgres connection string",
				Sources: cli.EnvVars("DATABASE_URL"),
			},
			&cli.StringFlag{
				Name:    "sqlite-path",
				Value:   "parking.db",
				Usage:   "SQLite database file",
				Sources: cli.EnvVars("SQLITE_PATH"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: withProvider(func(ctx context.Context, p *goose.Provider, w io.Writer) error {
					results, err := p.Up(ctx)
					printResults(w, results)
					return err
				}),
			},
			{
				Name:  "down",
				Usage: "roll back the most recent migration",
				Action: withProvider(func(ctx context.Context, p *goose.Provider, w io.Writer) error {
					result, err := p.Down(ctx)
					if result != nil {
						printResults(w, []*goose.MigrationResult{result})
					}
					return err
				}),
			},
			{
				Name:  "reset",
				Usage: "roll back every migration",
				Action: withProvider(func(ctx context.Context, p *goose.Provider, w io.Writer) error {
					results, err := p.DownTo(ctx, 0)
					printResults(w, results)
					return err
				}),
			},
			{
				Name:  "status",
				Usage: "list migrations and whether they are applied",
				Action: withProvider(func(ctx context.Context, p *goose.Provider, w io.Writer) error {
					statuses, err := p.Status(ctx)
					if err != nil {
						return err
					}
					for _, s := range statuses {
						applied := "-"
						if !s.AppliedAt.IsZero() {
							applied = s.AppliedAt.UTC().Format(time.RFC3339)
						}
						fmt.Fprintf(w, "%-8s %-40s %s\n", s.State, filepath.Base(s.Source.Path), applied)
					}
					return nil
				}),
			},
		},
	}
}

type providerAction func(ctx context.Context, p *goose.Provider, w io.Writer) error

// withProvider opens the database named by the root flags, builds a goose
// provider over the matching embedded migrations, and runs fn with it.
func withProvider(fn providerAction) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		driver := cmd.String("driver")

		var (
			sqlDriver, dsn string
			dialect        goose.Dialect
			migrationsFS   fs.FS
		)
		switch driver {
		case config.DriverPostgres:
			dsn = cmd.String("database-url")
			if dsn == "" {
				return fmt.Errorf("--database-url (or DATABASE_URL) is required for the postgres driver")
			}
			sqlDriver, dialect, migrationsFS = "pgx", goose.DialectPostgres, migrations.FS
		case config.DriverSQLite:
			dsn = cmd.String("sqlite-path")
			if dsn == "" {
				return fmt.Errorf("--sqlite-path (or SQLITE_PATH) is required for the sqlite driver")
			}
			sqlDriver, dialect, migrationsFS = "sqlite", goose.DialectSQLite3, sqlitemigrations.FS
		default:
			return fmt.Errorf("unsupported driver %q", driver)
		}

		db, err := sql.Open(sqlDriver, dsn)
		if err != nil {
			return fmt.Errorf("open %s: %w", driver, err)
		}
		defer db.Close()

		provider, err := goose.NewProvider(dialect, db, migrationsFS)
		if err != nil {
			return fmt.Errorf("create provider: %w", err)
		}
		return fn(ctx, provider, cmd.Root().Writer)
	}
}

func printResults(w io.Writer, results []*goose.MigrationResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "no migrations to run")
		return
	}
	for _, r := range results {
		fmt.Fprintf(w, "%-4s %-40s %s\n", r.Direction, filepath.Base(r.Source.Path), r.Duration.Round(time.Millisecond))
	}
}
