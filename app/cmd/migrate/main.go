package main

import (
	"database/sql"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"chronicle-service/app/config"
	"chronicle-service/app/utils/logger"
	"chronicle-service/app/utils/migration"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	var (
		command = flag.String("command", "up", "Migration command (up, down, status)")
		steps   = flag.String("steps", "0", "Number of steps for down migration")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logLevel := cfg.LogLevel
	if *verbose {
		logLevel = "debug"
	}

	appLogger, err := logger.New(logLevel)
	if err != nil {
		slog.Error("failed to initialize logger", "error", err)
		os.Exit(1)
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL())
	if err != nil {
		appLogger.Error("failed to open database connection", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		appLogger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	// The embed FS roots at the package dir; strip the migrations prefix
	migrationFiles, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		appLogger.Error("failed to open migrations directory", "error", err)
		os.Exit(1)
	}

	migrator := migration.NewMigrator(db, appLogger, migrationFiles)

	switch *command {
	case "up":
		if err := migrator.Up(); err != nil {
			appLogger.Error("migration up failed", "error", err)
			os.Exit(1)
		}
		appLogger.Info("all migrations applied successfully")

	case "down":
		stepCount, err := strconv.Atoi(*steps)
		if err != nil {
			appLogger.Error("invalid steps value", "steps", *steps, "error", err)
			os.Exit(1)
		}

		if stepCount <= 0 {
			stepCount = 1
		}

		for i := 0; i < stepCount; i++ {
			if err := migrator.Down(); err != nil {
				appLogger.Error("migration down failed", "error", err, "step", i+1)
				os.Exit(1)
			}
		}
		appLogger.Info("migrations rolled back successfully", "steps", stepCount)

	case "status":
		if err := migrator.Status(); err != nil {
			appLogger.Error("migration status failed", "error", err)
			os.Exit(1)
		}

	default:
		appLogger.Error("unknown command", "command", *command)
		fmt.Println("Available commands: up, down, status")
		os.Exit(1)
	}
}
