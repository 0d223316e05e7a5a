// Package storage elige el almacén de productos según DB_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/Catalogo-web/internal/application/usecase"
	"github.com/jhoicas/Catalogo-web/internal/domain/repository"
	"github.com/jhoicas/Catalogo-web/internal/infrastructure/postgres"
	"github.com/jhoicas/Catalogo-web/internal/infrastructure/sqlite"
	"github.com/jhoicas/Catalogo-web/pkg/config"
)

// Store almacén de productos construido explícitamente, con vida de proceso.
type Store struct {
	Products repository.ProductRepository
	Tx       usecase.TxRunner
	Driver   string
	close    func() error
}

// Close libera las conexiones.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open abre el almacén. En postgres aplica antes las migraciones si migrate es true;
// sqlite siempre migra el esquema al abrir.
func Open(ctx context.Context, cfg config.DBConfig, migrate bool) (*Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Store{
			Products: sqlite.NewProductRepository(db),
			Tx:       sqlite.NewTxRunner(db),
			Driver:   cfg.Driver,
			close:    func() error { return sqlite.Close(db) },
		}, nil

	case config.DriverPostgres:
		if migrate {
			if err := postgres.Migrate(cfg.ConnectionString()); err != nil {
				return nil, err
			}
		}
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Store{
			Products: postgres.NewProductRepository(pool),
			Tx:       postgres.NewTxRunner(pool),
			Driver:   cfg.Driver,
			close: func() error {
				pool.Close()
				return nil
			},
		}, nil

	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Driver)
	}
}
