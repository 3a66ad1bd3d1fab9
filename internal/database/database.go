// Package database manages the connection to the backing record store
// and its schema migrations.
package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type Service interface {
	// Health reports whether the store is reachable.
	Health() map[string]string
	DB() *sql.DB
	Close() error
}

type service struct {
	db *sql.DB
}

// New opens a postgres connection and applies pending migrations.
func New(databaseURL string) (Service, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("error running migrations: %v", err)
	}
	return &service{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		return map[string]string{
			"status": "down",
			"error":  err.Error(),
		}
	}
	stats := s.db.Stats()
	return map[string]string{
		"status":           "up",
		"open_connections": strconv.Itoa(stats.OpenConnections),
		"in_use":           strconv.Itoa(stats.InUse),
		"idle":             strconv.Itoa(stats.Idle),
	}
}

func (s *service) DB() *sql.DB {
	return s.db
}

func (s *service) Close() error {
	return s.db.Close()
}
