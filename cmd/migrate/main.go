// migrate aplica o revierte las migraciones SQL embebidas en el binario.
//
// Uso:
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down --steps 1
//	go run ./cmd/migrate version
//	go run ./cmd/migrate force 1
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-api/migrations"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
	"github.com/jhoicas/catalogo-api/pkg/migration"
)

func main() {
	var m *migration.Migrator
	var closePool func()

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Migraciones de base de datos del catálogo (golang-migrate)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "migrate"})
			pool, err := postgres.NewPool(context.Background(), cfg.DB)
			if err != nil {
				return fmt.Errorf("conexión a PostgreSQL: %w", err)
			}
			closePool = pool.Close
			m = migration.NewMigrator(migration.Config{FS: migrations.FS, Path: migrations.Dir}, pool, log.Component("migration"))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if closePool != nil {
				closePool()
			}
		},
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Aplica todas las migraciones pendientes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.Up()
		},
	}

	var steps int
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Revierte migraciones (--steps 0 revierte todas)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.Down(steps)
		},
	}
	downCmd.Flags().IntVar(&steps, "steps", 1, "cantidad de migraciones a revertir")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Muestra la versión aplicada",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, dirty, err := m.Version()
			if err != nil {
				return err
			}
			fmt.Printf("version=%d dirty=%t\n", v, dirty)
			return nil
		},
	}

	forceCmd := &cobra.Command{
		Use:   "force <version>",
		Short: "Fija la versión sin ejecutar SQL (limpia el estado dirty)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("versión inválida %q", args[0])
			}
			return m.Force(v)
		},
	}

	root.AddCommand(upCmd, downCmd, versionCmd, forceCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if closePool != nil {
			closePool()
		}
		os.Exit(1)
	}
}
