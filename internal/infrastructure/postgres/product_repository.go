package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Catalogo-web/internal/domain"
	"github.com/jhoicas/Catalogo-web/internal/domain/entity"
	"github.com/jhoicas/Catalogo-web/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, price, quantity`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Save inserta (ID 0, asigna el ID generado) o actualiza por ID.
func (r *ProductRepo) Save(ctx context.Context, product *entity.Product) error {
	if product.IsNew() {
		err := r.q.QueryRow(ctx,
			`INSERT INTO products (name, price, quantity) VALUES ($1, $2, $3) RETURNING id`,
			product.Name, product.Price, product.Quantity,
		).Scan(&product.ID)
		if err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		return nil
	}
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET name = $2, price = $3, quantity = $4 WHERE id = $1`,
		product.ID, product.Name, product.Price, product.Quantity,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// FindAll lista todos los productos en orden de inserción.
func (r *ProductRepo) FindAll(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// FindByID obtiene un producto por ID.
func (r *ProductRepo) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// FindByName obtiene el primer producto (menor ID) con ese nombre exacto.
func (r *ProductRepo) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE name = $1 ORDER BY id LIMIT 1`, name)
}

// DeleteByID elimina un producto por ID; si no existe no hace nada.
func (r *ProductRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// Count devuelve el número de productos.
func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (r *ProductRepo) findOne(ctx context.Context, query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, query, arg).Scan(&p.ID, &p.Name, &p.Price, &p.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}
