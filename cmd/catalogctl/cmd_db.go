package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Catalogo-web/internal/application/bootstrap"
	"github.com/jhoicas/Catalogo-web/internal/infrastructure/postgres"
	"github.com/jhoicas/Catalogo-web/internal/infrastructure/storage"
	"github.com/jhoicas/Catalogo-web/pkg/config"
	"github.com/jhoicas/Catalogo-web/pkg/logger"
)

// catalogctl migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica las migraciones pendientes de PostgreSQL",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.DB.Driver != config.DriverPostgres {
			fmt.Fprintf(cmd.OutOrStdout(), "driver %s: el esquema se crea al abrir, nada que migrar\n", cfg.DB.Driver)
			return nil
		}
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migraciones aplicadas")
		return nil
	},
}

// catalogctl seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Inserta los productos de ejemplo (PC1, PC2, PC3)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.DB.InMemory() {
			return fmt.Errorf("SQLITE_PATH=%q es una base en memoria: los productos se perderían al terminar; use un archivo o DB_DRIVER=postgres", cfg.DB.SQLitePath)
		}
		log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: cmd.OutOrStdout()})

		ctx := context.Background()
		store, err := storage.Open(ctx, cfg.DB, true)
		if err != nil {
			return err
		}
		defer store.Close()

		return bootstrap.SeedProducts(ctx, store.Tx, store.Products, log.Named("seed"))
	},
}
