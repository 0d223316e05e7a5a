package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jhoicas/Catalogo-web/internal/domain"
	"github.com/jhoicas/Catalogo-web/internal/domain/entity"
	"github.com/jhoicas/Catalogo-web/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productModel fila de la tabla products.
type productModel struct {
	ID       int64           `gorm:"primaryKey;autoIncrement"`
	Name     string          `gorm:"size:255;not null;index"`
	Price    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Quantity int             `gorm:"not null"`
}

func (productModel) TableName() string { return "products" }

func toModel(p *entity.Product) *productModel {
	return &productModel{ID: p.ID, Name: p.Name, Price: p.Price, Quantity: p.Quantity}
}

func (m *productModel) toEntity() *entity.Product {
	return &entity.Product{ID: m.ID, Name: m.Name, Price: m.Price, Quantity: m.Quantity}
}

// ProductRepo implementación del puerto ProductRepository sobre gorm.
type ProductRepo struct {
	db *gorm.DB
}

// NewProductRepository construye el adaptador. db puede ser una transacción.
func NewProductRepository(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Save inserta (ID 0, asigna el ID generado) o actualiza por ID.
func (r *ProductRepo) Save(ctx context.Context, product *entity.Product) error {
	m := toModel(product)
	if product.IsNew() {
		if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		product.ID = m.ID
		return nil
	}
	res := r.db.WithContext(ctx).Model(&productModel{}).Where("id = ?", product.ID).
		Updates(map[string]interface{}{"name": m.Name, "price": m.Price, "quantity": m.Quantity})
	if res.Error != nil {
		return fmt.Errorf("update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// FindAll lista todos los productos en orden de inserción.
func (r *ProductRepo) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var rows []productModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	list := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		list = append(list, rows[i].toEntity())
	}
	return list, nil
}

// FindByID obtiene un producto por ID.
func (r *ProductRepo) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.first(ctx, "id = ?", id)
}

// FindByName obtiene el primer producto (menor ID) con ese nombre exacto.
func (r *ProductRepo) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	return r.first(ctx, "name = ?", name)
}

// DeleteByID elimina un producto por ID; si no existe no hace nada.
func (r *ProductRepo) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&productModel{}, id).Error; err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// Count devuelve el número de productos.
func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&productModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (r *ProductRepo) first(ctx context.Context, cond string, arg any) (*entity.Product, error) {
	var m productModel
	err := r.db.WithContext(ctx).Where(cond, arg).Order("id").First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return m.toEntity(), nil
}
