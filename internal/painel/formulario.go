package painel

import (
	"context"
	"fmt"
	"sync"

	"github.com/KromaEnergia/painel-vendedores/internal/vendedor"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Campo string

const (
	CampoNome   Campo = "nome"
	CampoEmail  Campo = "email"
	CampoStatus Campo = "status_integracao"
)

// Buffer é a cópia de trabalho dos campos enquanto o formulário está aberto.
type Buffer struct {
	Nome             string `validate:"required"`
	Email            string `validate:"required,email"`
	StatusIntegracao string
}

type EstadoFormulario struct {
	Aberto   bool
	Editando bool
	AlvoID   string
	Buffer   Buffer
	Enviando bool
}

// Formulario controla criação e edição. alvoID nil significa criação.
type Formulario struct {
	gateway    vendedor.Gateway
	lista      *Lista
	validate   *validator.Validate
	podeEditar bool
	logger     *zap.SugaredLogger

	mu       sync.Mutex
	aberto   bool
	buffer   Buffer
	alvoID   *string
	enviando bool
}

func NovoFormulario(gateway vendedor.Gateway, lista *Lista, podeEditar bool, logger *zap.SugaredLogger) *Formulario {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Formulario{
		gateway:    gateway,
		lista:      lista,
		validate:   validator.New(),
		podeEditar: podeEditar,
		logger:     logger,
	}
}

func (f *Formulario) Estado() EstadoFormulario {
	f.mu.Lock()
	defer f.mu.Unlock()

	e := EstadoFormulario{
		Aberto:   f.aberto,
		Buffer:   f.buffer,
		Enviando: f.enviando,
	}
	if f.alvoID != nil {
		e.Editando = true
		e.AlvoID = *f.alvoID
	}
	return e
}

func (f *Formulario) AbrirParaCriar() error {
	if !f.podeEditar {
		return ErrSomenteLeitura
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buffer = Buffer{}
	f.alvoID = nil
	f.aberto = true
	return nil
}

func (f *Formulario) AbrirParaEditar(v vendedor.Vendedor) error {
	if !f.podeEditar {
		return ErrSomenteLeitura
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	status := ""
	if v.StatusIntegracao != nil {
		status = *v.StatusIntegracao
	}
	id := v.ID
	f.buffer = Buffer{Nome: v.Nome, Email: v.Email, StatusIntegracao: status}
	f.alvoID = &id
	f.aberto = true
	return nil
}

func (f *Formulario) AtualizarCampo(campo Campo, valor string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.aberto {
		return ErrFormularioFechado
	}
	switch campo {
	case CampoNome:
		f.buffer.Nome = valor
	case CampoEmail:
		f.buffer.Email = valor
	case CampoStatus:
		f.buffer.StatusIntegracao = valor
	default:
		return fmt.Errorf("%w: %q", ErrCampoDesconhecido, campo)
	}
	return nil
}

// Enviar valida e grava. Em caso de falha o formulário continua aberto com
// os mesmos valores, para o usuário tentar de novo.
func (f *Formulario) Enviar(ctx context.Context) error {
	if !f.podeEditar {
		return ErrSomenteLeitura
	}

	f.mu.Lock()
	if !f.aberto {
		f.mu.Unlock()
		return ErrFormularioFechado
	}
	if f.enviando {
		f.mu.Unlock()
		return ErrEmAndamento
	}
	buffer := f.buffer
	var alvoID string
	editando := f.alvoID != nil
	if editando {
		alvoID = *f.alvoID
	}
	if err := f.validate.Struct(buffer); err != nil {
		f.mu.Unlock()
		return fmt.Errorf("%w: %w", ErrValidacao, err)
	}
	f.enviando = true
	f.mu.Unlock()

	dados := vendedor.NovosDados(buffer.Nome, buffer.Email, buffer.StatusIntegracao)
	var err error
	if editando {
		err = f.gateway.Atualizar(ctx, alvoID, dados)
	} else {
		err = f.gateway.Inserir(ctx, dados)
	}

	f.mu.Lock()
	f.enviando = false
	if err != nil {
		f.mu.Unlock()
		f.logger.Warnw("falha ao salvar vendedor", "id", alvoID, "editando", editando, "erro", err)
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}
	f.aberto = false
	f.buffer = Buffer{}
	f.alvoID = nil
	f.mu.Unlock()

	// O registro já foi gravado; falha na recarga só deixa a lista como estava.
	if editando {
		err = f.lista.Recarregar(ctx)
	} else {
		err = f.lista.IrParaPrimeiraPagina(ctx)
	}
	if err != nil {
		f.logger.Debugw("lista não recarregada após salvar", "erro", err)
	}
	return nil
}

func (f *Formulario) Cancelar() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.aberto = false
	f.buffer = Buffer{}
	f.alvoID = nil
}
