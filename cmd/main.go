package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KromaEnergia/painel-vendedores/internal/auth"
	"github.com/KromaEnergia/painel-vendedores/internal/config"
	"github.com/KromaEnergia/painel-vendedores/internal/observability"
	"github.com/KromaEnergia/painel-vendedores/internal/supabase"
	"github.com/KromaEnergia/painel-vendedores/internal/utils"
	"github.com/KromaEnergia/painel-vendedores/internal/utils/db"
	"github.com/KromaEnergia/painel-vendedores/internal/vendedor"
	"github.com/KromaEnergia/painel-vendedores/internal/web"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Carregar()
	if err != nil {
		log.Fatal("Erro ao carregar configuração:", err)
	}

	logger, err := utils.NovoLogger(cfg.Ambiente)
	if err != nil {
		log.Fatal("Erro ao criar logger:", err)
	}
	defer logger.Sync()

	encerrarTracing := observability.InitTracer(cfg, logger)
	defer encerrarTracing()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatalw("servidor encerrado com erro", "erro", err)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger) error {
	gateway, err := novoGateway(cfg, logger)
	if err != nil {
		return err
	}

	emissor, err := auth.NovoEmissor(cfg.SessaoSegredo, cfg.SessaoTTL)
	if err != nil {
		return err
	}
	if cfg.SessaoSegredo == "" {
		logger.Warnw("SESSAO_SEGREDO vazio: sessões não sobrevivem a um restart")
	}
	if !cfg.CookieSeguro && !cfg.Desenvolvimento() {
		logger.Warnw("cookie de sessão sem Secure; defina SESSAO_COOKIE_SEGURO=true atrás de https")
	}

	servidor := web.NovoServidor(gateway, emissor, web.Opcoes{
		PodeEditar:   cfg.PodeEditar,
		SessaoTTL:    cfg.SessaoTTL,
		CORSOrigens:  cfg.CORSOrigens,
		CookieSeguro: cfg.CookieSeguro,
		Logger:       logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           servidor.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	erros := make(chan error, 1)
	go func() {
		logger.Infow("servidor rodando",
			"endereco", "http://localhost:"+cfg.ServerPort,
			"backend", cfg.Backend,
			"podeEditar", cfg.PodeEditar,
		)
		erros <- srv.ListenAndServe()
	}()

	select {
	case err := <-erros:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Infow("encerrando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// novoGateway escolhe o backend: API REST do Supabase ou conexão direta
// com o Postgres.
func novoGateway(cfg *config.Config, logger *zap.SugaredLogger) (vendedor.Gateway, error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		gormDB, err := db.GetDB(cfg.DB)
		if err != nil {
			return nil, err
		}
		if cfg.DB.AutoMigrate {
			if err := vendedor.Migrate(gormDB); err != nil {
				return nil, err
			}
			logger.Infow("tabela vendedores migrada")
		}
		logger.Infow("backend postgres", "host", cfg.DB.Host, "banco", cfg.DB.Nome)
		return vendedor.NewRepository(gormDB), nil
	default:
		if cfg.SupabaseDeExemplo() {
			logger.Warnw("SUPABASE_URL/SUPABASE_ANON_KEY não configurados; toda chamada ao backend vai falhar")
		}
		logger.Infow("backend supabase",
			"url", cfg.SupabaseURL,
			"chave", utils.MascararChave(cfg.SupabaseChave),
			"tabela", cfg.SupabaseTabela,
		)
		return supabase.NovoCliente(cfg.SupabaseURL, cfg.SupabaseChave,
			supabase.ComTabela(cfg.SupabaseTabela),
			supabase.ComTimeout(cfg.BackendTimeout),
		), nil
	}
}
