package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/KromaEnergia/painel-vendedores/internal/auth"
	"github.com/KromaEnergia/painel-vendedores/internal/utils/db"
	"github.com/KromaEnergia/painel-vendedores/internal/vendedor"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var errBackendFora = errors.New("backend fora do ar")

// gatewayInstavel delega ao repositório e falha nas operações marcadas.
type gatewayInstavel struct {
	vendedor.Gateway

	falharInserir atomic.Bool
	falharDeletar atomic.Bool
	falharBuscar  atomic.Bool
}

func (g *gatewayInstavel) Buscar(ctx context.Context, c vendedor.Consulta) (vendedor.Pagina, error) {
	if g.falharBuscar.Load() {
		return vendedor.Pagina{}, errBackendFora
	}
	return g.Gateway.Buscar(ctx, c)
}

func (g *gatewayInstavel) Inserir(ctx context.Context, d vendedor.Dados) error {
	if g.falharInserir.Load() {
		return errBackendFora
	}
	return g.Gateway.Inserir(ctx, d)
}

func (g *gatewayInstavel) Deletar(ctx context.Context, id string) error {
	if g.falharDeletar.Load() {
		return errBackendFora
	}
	return g.Gateway.Deletar(ctx, id)
}

type fakeAgendador struct {
	mu    sync.Mutex
	itens []func()
}

func (a *fakeAgendador) agendar(_ time.Duration, f func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.itens = append(a.itens, f)
}

func (a *fakeAgendador) dispararTodos() {
	a.mu.Lock()
	itens := a.itens
	a.itens = nil
	a.mu.Unlock()
	for _, f := range itens {
		f()
	}
}

type ambiente struct {
	srv       *httptest.Server
	cli       *http.Client
	repo      *vendedor.Repository
	gateway   *gatewayInstavel
	agendador *fakeAgendador
}

func novoAmbiente(t *testing.T, podeEditar bool) *ambiente {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gormDB, err := db.OpenGorm("sqlite", dsn, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, vendedor.Migrate(gormDB))
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	repo := vendedor.NewRepository(gormDB)
	gateway := &gatewayInstavel{Gateway: repo}
	agendador := &fakeAgendador{}
	emissor, err := auth.NovoEmissor("0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)

	s := NovoServidor(gateway, emissor, Opcoes{
		PodeEditar:  podeEditar,
		SessaoTTL:   time.Hour,
		CORSOrigens: []string{"https://parceiro.example"},
		Agendador:   agendador.agendar,
	})
	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &ambiente{
		srv:       srv,
		cli:       &http.Client{Jar: jar},
		repo:      repo,
		gateway:   gateway,
		agendador: agendador,
	}
}

func (a *ambiente) semear(t *testing.T, nomes ...string) {
	t.Helper()
	for i, nome := range nomes {
		require.NoError(t, a.repo.Inserir(context.Background(), vendedor.NovosDados(nome, fmt.Sprintf("v%d@x.com", i), "")))
	}
}

func (a *ambiente) idDe(t *testing.T, nome string) string {
	t.Helper()
	p, err := a.repo.Buscar(context.Background(), vendedor.Consulta{Termo: nome, De: 0, Ate: 0})
	require.NoError(t, err)
	require.Len(t, p.Vendedores, 1)
	return p.Vendedores[0].ID
}

func ler(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	corpo, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(corpo)
}

// get e post seguem o redirect 303 e devolvem o HTML final.
func (a *ambiente) get(t *testing.T, caminho string) string {
	t.Helper()
	resp, err := a.cli.Get(a.srv.URL + caminho)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return ler(t, resp)
}

func (a *ambiente) post(t *testing.T, caminho string, form url.Values) string {
	t.Helper()
	resp, err := a.cli.PostForm(a.srv.URL+caminho, form)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return ler(t, resp)
}

func (a *ambiente) api(t *testing.T, metodo, caminho, corpo string) *http.Response {
	t.Helper()
	var body io.Reader
	if corpo != "" {
		body = strings.NewReader(corpo)
	}
	req, err := http.NewRequest(metodo, a.srv.URL+caminho, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}
