package session_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-web/internal/infrastructure/session"
)

// Requiere un Redis real: TEST_REDIS_URL=redis://localhost:6379/15
func newTestStorage(t *testing.T) *session.RedisStorage {
	t.Helper()
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL no definido; se omiten tests de integración con Redis")
	}
	s, err := session.NewRedisStorage(context.Background(), url, "catalog:test:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Reset()
		_ = s.Close()
	})
	return s
}

func TestRedisStorage_SetGetDelete(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.Set("abc", []byte("datos"), time.Minute))

	got, err := s.Get("abc")
	require.NoError(t, err)
	assert.Equal(t, []byte("datos"), got)

	require.NoError(t, s.Delete("abc"))
	got, err = s.Get("abc")
	require.NoError(t, err)
	assert.Nil(t, got, "una clave borrada se comporta como inexistente")
}

func TestRedisStorage_Expira(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.Set("corta", []byte("x"), time.Second))
	time.Sleep(1500 * time.Millisecond)

	got, err := s.Get("corta")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStorage_ResetSoloBorraPrefijo(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.Set("a", []byte("1"), 0))
	require.NoError(t, s.Set("b", []byte("2"), 0))
	require.NoError(t, s.Reset())

	for _, k := range []string{"a", "b"} {
		got, err := s.Get(k)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestNewRedisStorage_URLInvalida(t *testing.T) {
	_, err := session.NewRedisStorage(context.Background(), "no-es-una-url", "x:")
	assert.Error(t, err)
}
