package ports

import (
	"context"
	"time"

	"github.com/jhoicas/Catalogo-web/internal/application/dto"
)

// CatalogPDFGenerator define el puerto de salida para renderizar el listado del catálogo en PDF.
// El adaptador concreto (maroto) vive en infrastructure/pdf.
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, products []dto.ProductResponse, generatedAt time.Time) ([]byte, error)
}
