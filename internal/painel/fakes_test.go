package painel

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/KromaEnergia/painel-vendedores/internal/vendedor"
)

type atualizacao struct {
	ID    string
	Dados vendedor.Dados
}

// fakeGateway simula o backend em memória e registra cada chamada.
type fakeGateway struct {
	mu          sync.Mutex
	registros   []vendedor.Vendedor
	buscas      []vendedor.Consulta
	inseridos   []vendedor.Dados
	atualizados []atualizacao
	deletados   []string
	proximoID   int

	errBuscar    error
	errInserir   error
	errAtualizar error
	errDeletar   error
	buscarFn     func(ctx context.Context, c vendedor.Consulta) (vendedor.Pagina, error)
}

func novoFakeGateway(n int) *fakeGateway {
	g := &fakeGateway{}
	for i := 1; i <= n; i++ {
		g.registros = append(g.registros, vendedor.Vendedor{
			ID:    fmt.Sprint(i),
			Nome:  fmt.Sprintf("Vendedor %02d", i),
			Email: fmt.Sprintf("v%02d@x.com", i),
		})
	}
	g.proximoID = n + 1
	return g
}

func (g *fakeGateway) Buscar(ctx context.Context, c vendedor.Consulta) (vendedor.Pagina, error) {
	g.mu.Lock()
	g.buscas = append(g.buscas, c)
	fn := g.buscarFn
	g.mu.Unlock()

	if fn != nil {
		return fn(ctx, c)
	}
	return g.buscarPadrao(c)
}

func (g *fakeGateway) buscarPadrao(c vendedor.Consulta) (vendedor.Pagina, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.errBuscar != nil {
		return vendedor.Pagina{}, g.errBuscar
	}

	filtrados := []vendedor.Vendedor{}
	for _, v := range g.registros {
		if c.Termo == "" || strings.Contains(strings.ToLower(v.Nome), strings.ToLower(c.Termo)) {
			filtrados = append(filtrados, v)
		}
	}
	pagina := vendedor.Pagina{Vendedores: []vendedor.Vendedor{}, Total: len(filtrados)}
	for i := c.De; i <= c.Ate && i < len(filtrados); i++ {
		pagina.Vendedores = append(pagina.Vendedores, filtrados[i])
	}
	return pagina, nil
}

func (g *fakeGateway) Inserir(_ context.Context, d vendedor.Dados) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inseridos = append(g.inseridos, d)
	if g.errInserir != nil {
		return g.errInserir
	}
	g.registros = append([]vendedor.Vendedor{{
		ID:               fmt.Sprint(g.proximoID),
		Nome:             d.Nome,
		Email:            d.Email,
		StatusIntegracao: d.StatusIntegracao,
	}}, g.registros...)
	g.proximoID++
	return nil
}

func (g *fakeGateway) Atualizar(_ context.Context, id string, d vendedor.Dados) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.atualizados = append(g.atualizados, atualizacao{ID: id, Dados: d})
	if g.errAtualizar != nil {
		return g.errAtualizar
	}
	for i := range g.registros {
		if g.registros[i].ID == id {
			g.registros[i].Nome = d.Nome
			g.registros[i].Email = d.Email
			g.registros[i].StatusIntegracao = d.StatusIntegracao
			return nil
		}
	}
	return vendedor.ErrNaoEncontrado
}

func (g *fakeGateway) Deletar(_ context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.deletados = append(g.deletados, id)
	if g.errDeletar != nil {
		return g.errDeletar
	}
	for i := range g.registros {
		if g.registros[i].ID == id {
			g.registros = append(g.registros[:i], g.registros[i+1:]...)
			return nil
		}
	}
	return vendedor.ErrNaoEncontrado
}

func (g *fakeGateway) totalBuscas() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.buscas)
}

func (g *fakeGateway) ultimaBusca() vendedor.Consulta {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.buscas[len(g.buscas)-1]
}

type fakeArea struct {
	mu      sync.Mutex
	textos  []string
	errCopy error
}

func (a *fakeArea) Copiar(_ context.Context, texto string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.errCopy != nil {
		return a.errCopy
	}
	a.textos = append(a.textos, texto)
	return nil
}

type agendamento struct {
	duracao time.Duration
	f       func()
}

// fakeAgendador guarda os callbacks para o teste disparar quando quiser.
type fakeAgendador struct {
	mu    sync.Mutex
	itens []agendamento
}

func (a *fakeAgendador) agendar(d time.Duration, f func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.itens = append(a.itens, agendamento{duracao: d, f: f})
}

func (a *fakeAgendador) disparar(i int) {
	a.mu.Lock()
	f := a.itens[i].f
	a.mu.Unlock()
	f()
}
