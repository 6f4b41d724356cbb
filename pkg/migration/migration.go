// Package migration aplica las migraciones SQL embebidas con golang-migrate.
package migration

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
)

// Config origen de las migraciones.
type Config struct {
	FS   fs.FS
	Path string
}

// Migrator ejecuta migraciones sobre el pool de la aplicación.
type Migrator struct {
	cfg  Config
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// NewMigrator construye el Migrator.
func NewMigrator(cfg Config, pool *pgxpool.Pool, log zerolog.Logger) *Migrator {
	return &Migrator{cfg: cfg, pool: pool, log: log}
}

// Up aplica todas las migraciones pendientes. Sin cambios no es error.
func (m *Migrator) Up() error {
	mg, err := m.open()
	if err != nil {
		return err
	}
	defer mg.Close()

	if err := mg.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	m.log.Info().Msg("migraciones aplicadas")
	return nil
}

// Down revierte n migraciones; n <= 0 revierte todas.
func (m *Migrator) Down(n int) error {
	mg, err := m.open()
	if err != nil {
		return err
	}
	defer mg.Close()

	if n > 0 {
		err = mg.Steps(-n)
	} else {
		err = mg.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("rollback migrations: %w", err)
	}
	m.log.Info().Int("steps", n).Msg("migraciones revertidas")
	return nil
}

// Force fija la versión sin ejecutar SQL (para salir de un estado dirty).
func (m *Migrator) Force(version int) error {
	mg, err := m.open()
	if err != nil {
		return err
	}
	defer mg.Close()

	if err := mg.Force(version); err != nil {
		return fmt.Errorf("force migration version: %w", err)
	}
	m.log.Warn().Int("version", version).Msg("versión de migración forzada")
	return nil
}

// Version devuelve la versión actual; 0 si nunca se migró.
func (m *Migrator) Version() (uint, bool, error) {
	mg, err := m.open()
	if err != nil {
		return 0, false, err
	}
	defer mg.Close()

	v, dirty, err := mg.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("migration version: %w", err)
	}
	return v, dirty, nil
}

func (m *Migrator) open() (*migrate.Migrate, error) {
	db := stdlib.OpenDBFromPool(m.pool)
	driver, err := postgres.WithInstance(db, &postgres.Config{MigrationsTable: "schema_migrations"})
	if err != nil {
		return nil, fmt.Errorf("postgres migrate driver: %w", err)
	}
	src, err := iofs.New(m.cfg.FS, m.cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}
	mg, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	mg.LockTimeout = 30 * time.Second
	return mg, nil
}
