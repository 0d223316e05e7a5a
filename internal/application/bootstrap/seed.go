// Package bootstrap carga los datos de ejemplo del catálogo al arrancar.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-web/internal/application/usecase"
	"github.com/jhoicas/Catalogo-web/internal/domain/entity"
	"github.com/jhoicas/Catalogo-web/internal/domain/repository"
	"github.com/jhoicas/Catalogo-web/pkg/logger"
)

// SampleProducts los tres productos de ejemplo (nombre, precio, cantidad).
func SampleProducts() []entity.Product {
	return []entity.Product{
		{Name: "PC1", Price: decimal.NewFromInt(2300), Quantity: 7},
		{Name: "PC2", Price: decimal.NewFromInt(5670), Quantity: 35},
		{Name: "PC3", Price: decimal.NewFromInt(11250), Quantity: 17},
	}
}

// SeedProducts inserta los productos de ejemplo en una transacción y registra el listado completo.
func SeedProducts(ctx context.Context, tx usecase.TxRunner, repo repository.ProductRepository, log *logger.Logger) error {
	err := tx.Run(ctx, func(products repository.ProductRepository) error {
		for _, p := range SampleProducts() {
			p := p
			if err := products.Save(ctx, &p); err != nil {
				return fmt.Errorf("seed %s: %w", p.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("seed: listar: %w", err)
	}
	for _, p := range all {
		log.Info().Int64("id", p.ID).Str("name", p.Name).Str("price", p.Price.String()).Int("quantity", p.Quantity).Msg(p.String())
	}
	log.Info().Int("count", len(all)).Msg("catálogo inicial cargado")
	return nil
}
