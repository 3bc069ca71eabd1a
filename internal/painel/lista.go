package painel

import (
	"context"
	"fmt"
	"sync"

	"github.com/KromaEnergia/painel-vendedores/internal/vendedor"
	"go.uber.org/zap"
)

const (
	TamanhoPagina = 10

	// PaginaMaxima mantém o intervalo de linhas longe de overflow.
	PaginaMaxima = 1_000_000
)

// NovaConsulta traduz termo e página (a partir de 1) no intervalo de linhas.
func NovaConsulta(termo string, pagina int) vendedor.Consulta {
	if pagina < 1 {
		pagina = 1
	}
	de := (pagina - 1) * TamanhoPagina
	return vendedor.Consulta{Termo: termo, De: de, Ate: de + TamanhoPagina - 1}
}

// TotalPaginas é ceil(total/TamanhoPagina); zero quando não há registros.
func TotalPaginas(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + TamanhoPagina - 1) / TamanhoPagina
}

type EstadoLista struct {
	Termo        string
	Pagina       int
	Vendedores   []vendedor.Vendedor
	Total        int
	TotalPaginas int
	Carregando   bool
	Carregada    bool
}

func (e EstadoLista) MostrarPaginacao() bool {
	return e.TotalPaginas > 1
}

func (e EstadoLista) AnteriorHabilitado() bool {
	return e.Pagina > 1
}

func (e EstadoLista) ProximaHabilitada() bool {
	return e.Pagina < e.TotalPaginas
}

// Lista guarda termo, página e a última página de resultados. Cada busca
// recebe um número de sequência; só a resposta da busca mais recente é
// aplicada, mesmo que uma anterior termine depois.
type Lista struct {
	gateway vendedor.Gateway
	logger  *zap.SugaredLogger

	mu         sync.Mutex
	termo      string
	pagina     int
	vendedores []vendedor.Vendedor
	total      int
	carregada  bool
	// a última busca falhou: termo e página não batem com as linhas
	desatualizada bool
	emVoo         int
	seq           uint64
}

func NovaLista(gateway vendedor.Gateway, logger *zap.SugaredLogger) *Lista {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Lista{
		gateway:    gateway,
		logger:     logger,
		pagina:     1,
		vendedores: []vendedor.Vendedor{},
	}
}

func (l *Lista) Estado() EstadoLista {
	l.mu.Lock()
	defer l.mu.Unlock()

	vendedores := make([]vendedor.Vendedor, len(l.vendedores))
	copy(vendedores, l.vendedores)
	return EstadoLista{
		Termo:        l.termo,
		Pagina:       l.pagina,
		Vendedores:   vendedores,
		Total:        l.total,
		TotalPaginas: TotalPaginas(l.total),
		Carregando:   l.emVoo > 0,
		Carregada:    l.carregada,
	}
}

// Vendedor procura o registro na página carregada.
func (l *Lista) Vendedor(id string) (vendedor.Vendedor, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, v := range l.vendedores {
		if v.ID == id {
			return v, true
		}
	}
	return vendedor.Vendedor{}, false
}

// DefinirTermo volta para a página 1 antes de buscar.
func (l *Lista) DefinirTermo(ctx context.Context, termo string) error {
	l.mu.Lock()
	mudou := termo != l.termo || l.pagina != 1 || l.desatualizada
	l.termo = termo
	l.pagina = 1
	l.mu.Unlock()

	if !mudou {
		return nil
	}
	return l.buscar(ctx)
}

// DefinirPagina limita n a [1, TotalPaginas]. Antes da primeira carga o
// total não é conhecido; a busca corrige a página se ela passar do fim.
func (l *Lista) DefinirPagina(ctx context.Context, n int) error {
	l.mu.Lock()
	if l.carregada {
		n = min(n, ultimaPagina(l.total))
	}
	n = min(max(n, 1), PaginaMaxima)
	mudou := n != l.pagina || l.desatualizada
	l.pagina = n
	l.mu.Unlock()

	if !mudou {
		return nil
	}
	return l.buscar(ctx)
}

func (l *Lista) Recarregar(ctx context.Context) error {
	return l.buscar(ctx)
}

// IrParaPrimeiraPagina é usado depois de uma criação, para que o registro
// novo apareça.
func (l *Lista) IrParaPrimeiraPagina(ctx context.Context) error {
	l.mu.Lock()
	l.pagina = 1
	l.mu.Unlock()
	return l.buscar(ctx)
}

// RecarregarAposExclusao volta uma página quando a atual ficou vazia.
func (l *Lista) RecarregarAposExclusao(ctx context.Context) error {
	if err := l.buscar(ctx); err != nil {
		return err
	}

	l.mu.Lock()
	voltar := len(l.vendedores) == 0 && l.pagina > 1
	if voltar {
		l.pagina--
	}
	l.mu.Unlock()

	if !voltar {
		return nil
	}
	return l.buscar(ctx)
}

// ultimaPagina é TotalPaginas, mas nunca menor que 1.
func ultimaPagina(total int) int {
	return max(1, TotalPaginas(total))
}

// buscar aplica a resposta e, se a página atual passou do fim, busca de novo
// já na última página.
func (l *Lista) buscar(ctx context.Context) error {
	ajustou, err := l.buscarUmaVez(ctx)
	if err != nil || !ajustou {
		return err
	}
	_, err = l.buscarUmaVez(ctx)
	return err
}

func (l *Lista) buscarUmaVez(ctx context.Context) (bool, error) {
	l.mu.Lock()
	l.seq++
	seq := l.seq
	consulta := NovaConsulta(l.termo, l.pagina)
	l.emVoo++
	l.mu.Unlock()

	pagina, err := l.gateway.Buscar(ctx, consulta)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.emVoo--

	if err != nil {
		l.logger.Warnw("falha ao buscar vendedores",
			"termo", consulta.Termo,
			"de", consulta.De,
			"ate", consulta.Ate,
			"erro", err,
		)
		if seq == l.seq {
			l.desatualizada = true
		}
		return false, fmt.Errorf("%w: %w", ErrBackend, err)
	}
	if seq != l.seq {
		l.logger.Debugw("resposta de busca descartada", "seq", seq, "atual", l.seq)
		return false, nil
	}

	l.vendedores = pagina.Vendedores
	if l.vendedores == nil {
		l.vendedores = []vendedor.Vendedor{}
	}
	l.total = pagina.Total
	l.carregada = true
	l.desatualizada = false

	if ultima := ultimaPagina(l.total); l.pagina > ultima {
		l.logger.Debugw("página além do fim", "pagina", l.pagina, "ultima", ultima)
		l.pagina = ultima
		return true, nil
	}
	return false, nil
}
