// Package migrate runs the schema migrations for the record store.
package migrate

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // file source for migrations
	"go.uber.org/zap"
)

type Config struct {
	DatabaseURL    string
	MigrationsPath string
}

type Runner struct {
	config *Config
	logger *zap.Logger
}

func NewRunner(config *Config, logger *zap.Logger) *Runner {
	return &Runner{
		config: config,
		logger: logger,
	}
}

// open builds a migrate instance plus the connection backing it. The caller
// must close the returned db.
func (r *Runner) open() (*migrate.Migrate, *sql.DB, error) {
	db, err := sql.Open("postgres", r.config.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", r.config.MigrationsPath),
		"postgres",
		driver,
	)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return m, db, nil
}

func (r *Runner) close(db *sql.DB) {
	if err := db.Close(); err != nil {
		r.logger.Error("Failed to close database connection", zap.Error(err))
	}
}

// Run executes pending migrations and verifies the schema ended clean.
func (r *Runner) Run() error {
	m, db, err := r.open()
	if err != nil {
		return err
	}
	defer r.close(db)

	if upErr := m.Up(); upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", upErr)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in dirty state at version %d", version)
	}

	r.logger.Info("Migrations applied", zap.Uint("version", version))
	return nil
}

// Rollback rolls back the last migration.
func (r *Runner) Rollback() error {
	m, db, err := r.open()
	if err != nil {
		return err
	}
	defer r.close(db)

	if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to rollback migration: %w", err)
	}
	return nil
}

// Version returns the current migration version.
func (r *Runner) Version() (uint, bool, error) {
	m, db, err := r.open()
	if err != nil {
		return 0, false, err
	}
	defer r.close(db)

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get version: %w", err)
	}

	return version, dirty, nil
}
