// Package painel reúne o estado do painel de vendedores: lista paginada com
// busca, formulário de criação e edição, confirmação de exclusão e links de
// autorização do Mercado Pago.
package painel

import (
	"github.com/KromaEnergia/painel-vendedores/internal/vendedor"
	"go.uber.org/zap"
)

type Opcoes struct {
	// PodeEditar desligado dá a visão de parceiro: só listagem e links.
	PodeEditar bool
	Agendador  Agendador
	Logger     *zap.SugaredLogger
}

type Painel struct {
	Lista      *Lista
	Formulario *Formulario
	Exclusao   *Exclusao
	Links      *Links
	PodeEditar bool
}

func Novo(gateway vendedor.Gateway, area AreaTransferencia, opcoes Opcoes) *Painel {
	logger := opcoes.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	lista := NovaLista(gateway, logger)
	return &Painel{
		Lista:      lista,
		Formulario: NovoFormulario(gateway, lista, opcoes.PodeEditar, logger),
		Exclusao:   NovaExclusao(gateway, lista, opcoes.PodeEditar, logger),
		Links:      NovosLinks(area, opcoes.Agendador),
		PodeEditar: opcoes.PodeEditar,
	}
}

// Linha é um vendedor da página atual com o estado do seu link.
type Linha struct {
	vendedor.Vendedor
	Link    string
	Copiado bool
}

// Visao é a fotografia de tudo que a tela precisa para ser desenhada.
type Visao struct {
	Lista         EstadoLista
	Linhas        []Linha
	Formulario    EstadoFormulario
	ExclusaoID    string
	ExclusaoAtiva bool
	Excluindo     bool
	PodeEditar    bool
}

func (p *Painel) Visao() Visao {
	lista := p.Lista.Estado()
	linhas := make([]Linha, 0, len(lista.Vendedores))
	for _, v := range lista.Vendedores {
		link, _ := p.Links.Link(v.ID)
		linhas = append(linhas, Linha{
			Vendedor: v,
			Link:     link,
			Copiado:  p.Links.Copiado(v.ID),
		})
	}
	id, ativa := p.Exclusao.Pendente()
	return Visao{
		Lista:         lista,
		Linhas:        linhas,
		Formulario:    p.Formulario.Estado(),
		ExclusaoID:    id,
		ExclusaoAtiva: ativa,
		Excluindo:     p.Exclusao.Excluindo(),
		PodeEditar:    p.PodeEditar,
	}
}
