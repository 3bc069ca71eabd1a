package painel

import (
	"context"
	"fmt"
	"sync"

	"github.com/KromaEnergia/painel-vendedores/internal/vendedor"
	"go.uber.org/zap"
)

// Exclusao guarda um único id aguardando confirmação; não há fila.
type Exclusao struct {
	gateway    vendedor.Gateway
	lista      *Lista
	podeEditar bool
	logger     *zap.SugaredLogger

	mu        sync.Mutex
	pendente  *string
	excluindo bool
}

func NovaExclusao(gateway vendedor.Gateway, lista *Lista, podeEditar bool, logger *zap.SugaredLogger) *Exclusao {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Exclusao{gateway: gateway, lista: lista, podeEditar: podeEditar, logger: logger}
}

func (e *Exclusao) SolicitarExclusao(id string) error {
	if !e.podeEditar {
		return ErrSomenteLeitura
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pendente != nil && *e.pendente != id {
		return ErrExclusaoPendente
	}
	e.pendente = &id
	return nil
}

func (e *Exclusao) Pendente() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pendente == nil {
		return "", false
	}
	return *e.pendente, true
}

func (e *Exclusao) Excluindo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.excluindo
}

// Confirmar exclui o id pendente. Se o backend falhar o id continua
// pendente para nova tentativa ou dispensa.
func (e *Exclusao) Confirmar(ctx context.Context) error {
	e.mu.Lock()
	if e.pendente == nil {
		e.mu.Unlock()
		return nil
	}
	if e.excluindo {
		e.mu.Unlock()
		return ErrEmAndamento
	}
	id := *e.pendente
	e.excluindo = true
	e.mu.Unlock()

	err := e.gateway.Deletar(ctx, id)

	e.mu.Lock()
	e.excluindo = false
	if err != nil {
		e.mu.Unlock()
		e.logger.Warnw("falha ao excluir vendedor", "id", id, "erro", err)
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}
	e.pendente = nil
	e.mu.Unlock()

	if err := e.lista.RecarregarAposExclusao(ctx); err != nil {
		e.logger.Debugw("lista não recarregada após exclusão", "erro", err)
	}
	return nil
}

func (e *Exclusao) Dispensar() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pendente = nil
}
