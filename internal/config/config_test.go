package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarregarValoresPadrao(t *testing.T) {
	t.Setenv("SUPABASE_URL", URLExemplo)
	t.Setenv("SUPABASE_ANON_KEY", ChaveExemplo)
	t.Setenv("BACKEND", BackendSupabase)

	cfg, err := Carregar()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 10*time.Second, cfg.BackendTimeout)
	assert.Equal(t, "vendedores", cfg.SupabaseTabela)
	assert.True(t, cfg.PodeEditar)
	assert.False(t, cfg.CookieSeguro)
	assert.True(t, cfg.SupabaseDeExemplo())
	assert.Equal(t, uint(5432), cfg.DB.Port)
}

func TestCarregarVariaveis(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "chave")
	t.Setenv("BACKEND", BackendPostgres)
	t.Setenv("PAINEL_PODE_EDITAR", "false")
	t.Setenv("CORS_ORIGENS", "https://a.com,https://b.com")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("SESSAO_COOKIE_SEGURO", "true")

	cfg, err := Carregar()

	require.NoError(t, err)
	assert.False(t, cfg.SupabaseDeExemplo())
	assert.False(t, cfg.PodeEditar)
	assert.Equal(t, BackendPostgres, cfg.Backend)
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, cfg.CORSOrigens)
	assert.Equal(t, uint(6543), cfg.DB.Port)
	assert.True(t, cfg.CookieSeguro)
}

func TestCarregarBackendInvalido(t *testing.T) {
	t.Setenv("BACKEND", "mysql")

	_, err := Carregar()

	assert.Error(t, err)
}
