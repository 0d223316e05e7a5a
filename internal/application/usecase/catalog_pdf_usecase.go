package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Catalogo-web/internal/application/ports"
)

// CatalogPDFUseCase exporta el catálogo completo como PDF.
type CatalogPDFUseCase struct {
	products  *ProductUseCase
	generator ports.CatalogPDFGenerator
	now       func() time.Time
}

// NewCatalogPDFUseCase construye el caso de uso.
func NewCatalogPDFUseCase(products *ProductUseCase, generator ports.CatalogPDFGenerator) *CatalogPDFUseCase {
	return &CatalogPDFUseCase{products: products, generator: generator, now: time.Now}
}

// Export devuelve los bytes del PDF con todos los productos.
func (uc *CatalogPDFUseCase) Export(ctx context.Context) ([]byte, error) {
	items, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := uc.generator.GenerateCatalogPDF(ctx, items, uc.now())
	if err != nil {
		return nil, fmt.Errorf("exportar catálogo: %w", err)
	}
	return doc, nil
}
