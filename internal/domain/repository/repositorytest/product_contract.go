// Package repositorytest contiene pruebas de contrato reutilizables por cada adaptador de ProductRepository.
package repositorytest

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-web/internal/domain"
	"github.com/jhoicas/Catalogo-web/internal/domain/entity"
	"github.com/jhoicas/Catalogo-web/internal/domain/repository"
)

// RunProductRepositoryContract ejecuta el contrato del almacén de productos.
// newRepo debe devolver un repositorio vacío en cada llamada.
func RunProductRepositoryContract(t *testing.T, newRepo func(t *testing.T) repository.ProductRepository) {
	t.Run("Save asigna ID y se recupera por ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		p := &entity.Product{Name: "PC1", Price: decimal.NewFromInt(2300), Quantity: 7}
		require.NoError(t, repo.Save(ctx, p))
		require.NotZero(t, p.ID, "el almacén debe asignar el ID")

		got, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "PC1", got.Name)
		assert.True(t, decimal.NewFromInt(2300).Equal(got.Price), "precio: %s", got.Price)
		assert.Equal(t, 7, got.Quantity)
	})

	t.Run("IDs únicos y FindAll en orden de inserción", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		names := []string{"PC1", "PC2", "PC3"}
		ids := map[int64]bool{}
		for _, n := range names {
			p := &entity.Product{Name: n, Price: decimal.NewFromInt(10), Quantity: 1}
			require.NoError(t, repo.Save(ctx, p))
			assert.False(t, ids[p.ID], "ID repetido %d", p.ID)
			ids[p.ID] = true
		}

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		for i, p := range all {
			assert.Equal(t, names[i], p.Name)
		}
	})

	t.Run("Save con ID existente actualiza sin cambiar el ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		p := &entity.Product{Name: "PC2", Price: decimal.NewFromInt(5670), Quantity: 35}
		require.NoError(t, repo.Save(ctx, p))
		id := p.ID

		p.Price = decimal.RequireFromString("4999.50")
		p.Quantity = 30
		require.NoError(t, repo.Save(ctx, p))
		assert.Equal(t, id, p.ID)

		got, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, decimal.RequireFromString("4999.50").Equal(got.Price), "precio: %s", got.Price)
		assert.Equal(t, 30, got.Quantity)

		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})

	t.Run("Save con ID inexistente devuelve ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)
		err := repo.Save(context.Background(), &entity.Product{ID: 9999, Name: "X", Price: decimal.Zero})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("FindByID y FindByName sin resultado devuelven nil", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		p, err := repo.FindByID(ctx, 424242)
		require.NoError(t, err)
		assert.Nil(t, p)

		p, err = repo.FindByName(ctx, "inexistente")
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("FindByName exacto devuelve el primero", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first := &entity.Product{Name: "Monitor", Price: decimal.NewFromInt(100), Quantity: 1}
		second := &entity.Product{Name: "Monitor", Price: decimal.NewFromInt(200), Quantity: 2}
		require.NoError(t, repo.Save(ctx, first))
		require.NoError(t, repo.Save(ctx, second))

		got, err := repo.FindByName(ctx, "Monitor")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, first.ID, got.ID)

		got, err = repo.FindByName(ctx, "monitor")
		require.NoError(t, err)
		assert.Nil(t, got, "la búsqueda por nombre es exacta")
	})

	t.Run("DeleteByID inexistente es no-op", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		p := &entity.Product{Name: "PC3", Price: decimal.NewFromInt(11250), Quantity: 17}
		require.NoError(t, repo.Save(ctx, p))

		require.NoError(t, repo.DeleteByID(ctx, p.ID+1000))
		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		require.NoError(t, repo.DeleteByID(ctx, p.ID))
		got, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
