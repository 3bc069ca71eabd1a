package vendedor

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNaoEncontrado = errors.New("vendedor não encontrado")
	ErrConsulta      = errors.New("consulta inválida")
)

// Gateway é o contrato consumido do backend de dados. Filtro, paginação e
// contagem são responsabilidade de quem implementa.
type Gateway interface {
	Buscar(ctx context.Context, c Consulta) (Pagina, error)
	Inserir(ctx context.Context, d Dados) error
	Atualizar(ctx context.Context, id string, d Dados) error
	Deletar(ctx context.Context, id string) error
}

// Consulta filtra por nome (substring, sem diferenciar maiúsculas) e pede o
// intervalo fechado de linhas [De, Ate].
type Consulta struct {
	Termo string
	De    int
	Ate   int
}

func (c Consulta) Limite() int {
	return c.Ate - c.De + 1
}

func (c Consulta) Validar() error {
	if c.De < 0 || c.Ate < c.De {
		return ErrConsulta
	}
	return nil
}

// Pagina traz as linhas do intervalo pedido e o total de linhas que casam com
// o filtro, ignorando a paginação.
type Pagina struct {
	Vendedores []Vendedor
	Total      int
}

var escapeLike = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// PadraoBusca monta o padrão LIKE para o termo, escapando os curingas.
func PadraoBusca(termo string) string {
	return "%" + escapeLike.Replace(termo) + "%"
}
