package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-web/internal/domain/entity"
	"github.com/jhoicas/Catalogo-web/internal/domain/repository"
	"github.com/jhoicas/Catalogo-web/internal/domain/repository/repositorytest"
	"github.com/jhoicas/Catalogo-web/internal/infrastructure/sqlite"
)

func TestProductRepo_Contrato(t *testing.T) {
	repositorytest.RunProductRepositoryContract(t, func(t *testing.T) repository.ProductRepository {
		db, err := sqlite.Open(":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { _ = sqlite.Close(db) })
		return sqlite.NewProductRepository(db)
	})
}

func TestTxRunner_RollbackDescartaCambios(t *testing.T) {
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	runner := sqlite.NewTxRunner(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err = runner.Run(ctx, func(products repository.ProductRepository) error {
		require.NoError(t, products.Save(ctx, &entity.Product{Name: "PC1", Price: decimal.NewFromInt(1), Quantity: 1}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := sqlite.NewProductRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "la transacción fallida no debe persistir")
}

func TestTxRunner_CommitPersiste(t *testing.T) {
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	ctx := context.Background()
	err = sqlite.NewTxRunner(db).Run(ctx, func(products repository.ProductRepository) error {
		return products.Save(ctx, &entity.Product{Name: "PC1", Price: decimal.NewFromInt(1), Quantity: 1})
	})
	require.NoError(t, err)

	n, err := sqlite.NewProductRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
