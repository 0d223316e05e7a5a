package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Catalogo-web/internal/application/dto"
	"github.com/jhoicas/Catalogo-web/internal/domain"
	"github.com/jhoicas/Catalogo-web/internal/domain/entity"
	"github.com/jhoicas/Catalogo-web/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo: listar, crear, editar por ID, borrar y buscar por nombre.
type ProductUseCase struct {
	repo     repository.ProductRepository
	tx       TxRunner
	validate *validator.Validate
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, tx TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx, validate: newValidator()}
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return items, nil
}

// GetByID obtiene un producto; domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(p)
	return &out, nil
}

// FindByName busca por nombre exacto; domain.ErrNotFound si no hay coincidencia.
func (uc *ProductUseCase) FindByName(ctx context.Context, name string) (*dto.ProductResponse, error) {
	p, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(p)
	return &out, nil
}

// Create valida el formulario y persiste un producto nuevo. El ID del formulario se ignora.
// Un formulario inválido devuelve *domain.ValidationError y no toca el almacén.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductForm) (*dto.ProductResponse, error) {
	input, err := validateProductForm(uc.validate, in)
	if err != nil {
		return nil, err
	}
	p := &entity.Product{Name: input.Name, Price: input.Price, Quantity: input.Quantity}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// Update reescribe nombre, precio y cantidad del producto con ese ID, dentro de una transacción.
// domain.ErrNotFound si el ID no existe; *domain.ValidationError si el formulario es inválido.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductForm) (*dto.ProductResponse, error) {
	input, err := validateProductForm(uc.validate, in)
	if err != nil {
		return nil, err
	}
	var updated *entity.Product
	err = uc.tx.Run(ctx, func(products repository.ProductRepository) error {
		existing, err := products.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		existing.Name = input.Name
		existing.Price = input.Price
		existing.Quantity = input.Quantity
		if err := products.Save(ctx, existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := toProductResponse(updated)
	return &out, nil
}

// Delete elimina por ID; un ID inexistente no es error.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.DeleteByID(ctx, id)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
	}
}
