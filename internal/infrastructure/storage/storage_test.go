package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-web/internal/domain/entity"
	"github.com/jhoicas/Catalogo-web/internal/infrastructure/storage"
	"github.com/jhoicas/Catalogo-web/pkg/config"
)

func TestOpen_SQLiteEnMemoria(t *testing.T) {
	ctx := context.Background()
	s, err := storage.Open(ctx, config.DBConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"}, true)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, config.DriverSQLite, s.Driver)
	p := &entity.Product{Name: "PC1"}
	require.NoError(t, s.Products.Save(ctx, p))
	n, err := s.Products.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := storage.Open(context.Background(), config.DBConfig{Driver: "oracle"}, false)
	assert.Error(t, err)
}
