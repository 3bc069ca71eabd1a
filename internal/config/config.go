// Package config carrega a configuração do painel a partir de variáveis de
// ambiente (e de um arquivo .env, quando existir).
//
// # Backend
//   - BACKEND: "supabase" (API REST) ou "postgres" (conexão direta via gorm)
//   - SUPABASE_URL, SUPABASE_ANON_KEY: endpoint e chave do projeto. Sem eles o
//     painel sobe com valores de exemplo e cada chamada ao backend falha.
//   - DB_HOST, DB_PORT, DB_NAME, DB_USERNAME, DB_PASSWORD, DB_SSL_MODE_DISABLE
//
// # Painel
//   - PAINEL_PODE_EDITAR: false para a visão de parceiro (só listagem e links)
//   - SESSAO_SEGREDO: chave HMAC do cookie de sessão (gerada se vazia)
//   - SESSAO_COOKIE_SEGURO: marca o cookie como Secure; ligue só quando o
//     painel é servido por https, senão o navegador descarta o cookie
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	BackendSupabase = "supabase"
	BackendPostgres = "postgres"

	URLExemplo   = "SUA_SUPABASE_URL"
	ChaveExemplo = "SUA_SUPABASE_ANON_KEY"
)

type Config struct {
	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`
	Ambiente   string `env:"APP_ENV" envDefault:"production"`

	Backend        string        `env:"BACKEND" envDefault:"supabase"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`

	SupabaseURL    string `env:"SUPABASE_URL" envDefault:"SUA_SUPABASE_URL"`
	SupabaseChave  string `env:"SUPABASE_ANON_KEY" envDefault:"SUA_SUPABASE_ANON_KEY"`
	SupabaseTabela string `env:"SUPABASE_TABELA" envDefault:"vendedores"`

	DB DBConfig

	PodeEditar    bool          `env:"PAINEL_PODE_EDITAR" envDefault:"true"`
	SessaoSegredo string        `env:"SESSAO_SEGREDO"`
	SessaoTTL     time.Duration `env:"SESSAO_TTL" envDefault:"8h"`
	CookieSeguro  bool          `env:"SESSAO_COOKIE_SEGURO" envDefault:"false"`
	CORSOrigens   []string      `env:"CORS_ORIGENS" envDefault:"*" envSeparator:","`

	TracingEnabled  bool   `env:"TRACING_ENABLED" envDefault:"false"`
	TracingEndpoint string `env:"TRACING_ENDPOINT" envDefault:"localhost:4317"`
}

type DBConfig struct {
	Host        string `env:"DB_HOST" envDefault:"localhost"`
	Port        uint   `env:"DB_PORT" envDefault:"5432"`
	Nome        string `env:"DB_NAME" envDefault:"postgres"`
	Usuario     string `env:"DB_USERNAME" envDefault:"postgres"`
	Senha       string `env:"DB_PASSWORD"`
	SSLDisabled bool   `env:"DB_SSL_MODE_DISABLE" envDefault:"false"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"false"`
}

// Carregar lê o .env (se houver) e as variáveis de ambiente.
func Carregar() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Backend != BackendSupabase && cfg.Backend != BackendPostgres {
		return nil, fmt.Errorf("BACKEND inválido: %q (use %q ou %q)", cfg.Backend, BackendSupabase, BackendPostgres)
	}
	return cfg, nil
}

// SupabaseDeExemplo indica que o painel está rodando com os valores de
// exemplo e não vai conseguir falar com o backend.
func (c *Config) SupabaseDeExemplo() bool {
	return c.SupabaseURL == URLExemplo || c.SupabaseChave == ChaveExemplo || c.SupabaseURL == "" || c.SupabaseChave == ""
}

func (c *Config) Desenvolvimento() bool {
	return c.Ambiente == "development"
}
