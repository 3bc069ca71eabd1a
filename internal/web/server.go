// Package web expõe o painel de vendedores como páginas HTML renderizadas no
// servidor (um painel por sessão de navegador) e uma API JSON em /api.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/KromaEnergia/painel-vendedores/internal/auth"
	"github.com/KromaEnergia/painel-vendedores/internal/painel"
	"github.com/KromaEnergia/painel-vendedores/internal/vendedor"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"anterior": func(n int) int { return n - 1 },
	"proxima":  func(n int) int { return n + 1 },
}).ParseFS(templatesFS, "templates/*.html"))

type Opcoes struct {
	PodeEditar   bool
	SessaoTTL    time.Duration
	CORSOrigens  []string
	CookieSeguro bool

	// Agendador dos timers de "Copiado!"; nil usa time.AfterFunc.
	Agendador painel.Agendador
	Logger    *zap.SugaredLogger
}

type Servidor struct {
	gateway    vendedor.Gateway
	emissor    *auth.Emissor
	sessoes    *Sessoes
	podeEditar bool
	origens    []string
	seguro     bool
	logger     *zap.SugaredLogger
}

func NovoServidor(gateway vendedor.Gateway, emissor *auth.Emissor, opcoes Opcoes) *Servidor {
	logger := opcoes.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	s := &Servidor{
		gateway:    gateway,
		emissor:    emissor,
		podeEditar: opcoes.PodeEditar,
		origens:    opcoes.CORSOrigens,
		seguro:     opcoes.CookieSeguro,
		logger:     logger,
	}
	s.sessoes = NovasSessoes(opcoes.SessaoTTL, func(area painel.AreaTransferencia) *painel.Painel {
		return painel.Novo(gateway, area, painel.Opcoes{
			PodeEditar: opcoes.PodeEditar,
			Agendador:  opcoes.Agendador,
			Logger:     logger,
		})
	})
	return s
}

func (s *Servidor) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(s.rastrearRequest)

	r.HandleFunc("/healthz", s.Healthz).Methods(http.MethodGet)

	api := mux.NewRouter()
	api.HandleFunc("/api/vendedores", s.ListarVendedores).Methods(http.MethodGet)
	api.HandleFunc("/api/vendedores", s.CriarVendedor).Methods(http.MethodPost)
	api.HandleFunc("/api/vendedores/{id}", s.AtualizarVendedor).Methods(http.MethodPut)
	api.HandleFunc("/api/vendedores/{id}", s.DeletarVendedor).Methods(http.MethodDelete)
	api.HandleFunc("/api/vendedores/{id}/link", s.LinkVendedor).Methods(http.MethodGet)
	c := cors.New(cors.Options{
		AllowedOrigins: s.origens,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
	r.PathPrefix("/api/").Handler(c.Handler(api))

	p := r.NewRoute().Subrouter()
	p.Use(auth.MiddlewareSessao(s.emissor, s.seguro))
	p.HandleFunc("/", s.Pagina).Methods(http.MethodGet)
	p.HandleFunc("/vendedores/novo", s.AbrirNovo).Methods(http.MethodPost)
	p.HandleFunc("/vendedores/{id}/editar", s.AbrirEdicao).Methods(http.MethodPost)
	p.HandleFunc("/vendedores/{id}/remover", s.SolicitarRemocao).Methods(http.MethodPost)
	p.HandleFunc("/vendedores/{id}/link", s.GerarLink).Methods(http.MethodPost)
	p.HandleFunc("/vendedores/{id}/copiar", s.CopiarLink).Methods(http.MethodPost)
	p.HandleFunc("/formulario", s.SalvarFormulario).Methods(http.MethodPost)
	p.HandleFunc("/formulario/cancelar", s.CancelarFormulario).Methods(http.MethodPost)
	p.HandleFunc("/exclusao/confirmar", s.ConfirmarRemocao).Methods(http.MethodPost)
	p.HandleFunc("/exclusao/cancelar", s.CancelarRemocao).Methods(http.MethodPost)

	return r
}

func (s *Servidor) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
