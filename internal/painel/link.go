package painel

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/KromaEnergia/painel-vendedores/internal/vendedor"
)

const (
	modeloLink     = "https://www.mercadopago.com.br/authorization?user_id=%s"
	DuracaoCopiado = 2 * time.Second
)

// GerarLink monta o link de autorização do Mercado Pago para o vendedor.
func GerarLink(v vendedor.Vendedor) string {
	return fmt.Sprintf(modeloLink, v.ID)
}

// AreaTransferencia recebe o texto copiado.
type AreaTransferencia interface {
	Copiar(ctx context.Context, texto string) error
}

// Agendador executa f depois de d. O padrão é time.AfterFunc.
type Agendador func(d time.Duration, f func())

func agendarComTimer(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// Links guarda, por id, o link gerado e se ele acabou de ser copiado. Cada
// id tem seu próprio timer; um id nunca altera o estado de outro.
type Links struct {
	area    AreaTransferencia
	agendar Agendador

	mu       sync.Mutex
	gerados  map[string]string
	copiados map[string]bool
	geracao  map[string]uint64
}

func NovosLinks(area AreaTransferencia, agendar Agendador) *Links {
	if agendar == nil {
		agendar = agendarComTimer
	}
	return &Links{
		area:     area,
		agendar:  agendar,
		gerados:  make(map[string]string),
		copiados: make(map[string]bool),
		geracao:  make(map[string]uint64),
	}
}

func (l *Links) Gerar(v vendedor.Vendedor) string {
	link := GerarLink(v)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.gerados[v.ID] = link
	l.copiados[v.ID] = false
	l.geracao[v.ID]++
	return link
}

func (l *Links) Link(id string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	link, ok := l.gerados[id]
	return link, ok
}

func (l *Links) Copiado(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.copiados[id]
}

// Copiar envia o link para a área de transferência e marca o id como
// copiado por DuracaoCopiado. Uma cópia mais nova do mesmo id substitui o
// timer da anterior.
func (l *Links) Copiar(ctx context.Context, id string) error {
	l.mu.Lock()
	link, ok := l.gerados[id]
	l.mu.Unlock()
	if !ok {
		return ErrLinkInexistente
	}

	if err := l.area.Copiar(ctx, link); err != nil {
		return fmt.Errorf("copiar link: %w", err)
	}

	l.mu.Lock()
	l.copiados[id] = true
	l.geracao[id]++
	g := l.geracao[id]
	l.mu.Unlock()

	l.agendar(DuracaoCopiado, func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.geracao[id] == g {
			l.copiados[id] = false
		}
	})
	return nil
}
