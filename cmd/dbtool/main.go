// Command dbtool creates the configured database when it is missing and
// brings its schema up to date.
package main

import (
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"os"

	"deliverytracking/cmd"
	"deliverytracking/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	"github.com/lib/pq"
)

// duplicateDatabase is returned by CREATE DATABASE for an existing name.
const duplicateDatabase = "42P04"

func main() {
	configFile := flag.String("config", os.Getenv("CONFIG_FILE"), "path to an optional YAML config file")
	flag.Parse()

	cfg, err := cmd.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	logger, err := cmd.NewLogger(cfg.Log, os.Stdout)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}

	if err := createDatabase(cfg.DB, logger); err != nil {
		log.Fatalf("Error creating database: %v", err)
	}

	conn, err := sql.Open("postgres", cfg.DB.DSN())
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	defer conn.Close()

	db, err := postgres.OpenWithConn(conn, cfg.DB, logger)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	logger.Info("Database is ready", slog.String("database", cfg.DB.Name))
}

func createDatabase(cfg postgres.Config, logger *slog.Logger) error {
	conn, err := sql.Open("postgres", cfg.MaintenanceDSN())
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = conn.Exec("CREATE DATABASE " + pq.QuoteIdentifier(cfg.Name))
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == duplicateDatabase {
		logger.Info("Database already exists", slog.String("database", cfg.Name))
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("Database created", slog.String("database", cfg.Name))
	return nil
}
