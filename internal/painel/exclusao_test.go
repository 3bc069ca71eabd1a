package painel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispensarNaoExclui(t *testing.T) {
	p, g := novoPainelTeste(t, 50, true)
	antes := p.Lista.Estado()
	buscas := g.totalBuscas()

	require.NoError(t, p.Exclusao.SolicitarExclusao("42"))
	id, ok := p.Exclusao.Pendente()
	require.True(t, ok)
	assert.Equal(t, "42", id)

	p.Exclusao.Dispensar()

	_, ok = p.Exclusao.Pendente()
	assert.False(t, ok)
	assert.Empty(t, g.deletados)
	assert.Equal(t, buscas, g.totalBuscas())
	assert.Equal(t, antes, p.Lista.Estado())
}

func TestConfirmarExcluiERecarrega(t *testing.T) {
	p, g := novoPainelTeste(t, 12, true)

	require.NoError(t, p.Exclusao.SolicitarExclusao("3"))
	require.NoError(t, p.Exclusao.Confirmar(context.Background()))

	assert.Equal(t, []string{"3"}, g.deletados)
	_, ok := p.Exclusao.Pendente()
	assert.False(t, ok)
	e := p.Lista.Estado()
	assert.Equal(t, 11, e.Total)
	_, achou := p.Lista.Vendedor("3")
	assert.False(t, achou)
}

func TestConfirmarFalhaMantemPendenteELista(t *testing.T) {
	p, g := novoPainelTeste(t, 12, true)
	antes := p.Lista.Estado()
	g.errDeletar = errors.New("timeout")

	require.NoError(t, p.Exclusao.SolicitarExclusao("3"))
	err := p.Exclusao.Confirmar(context.Background())

	assert.ErrorIs(t, err, ErrBackend)
	id, ok := p.Exclusao.Pendente()
	assert.True(t, ok)
	assert.Equal(t, "3", id)
	assert.False(t, p.Exclusao.Excluindo())
	depois := p.Lista.Estado()
	assert.Equal(t, antes.Vendedores, depois.Vendedores)
	assert.Equal(t, antes.Total, depois.Total)
}

func TestSolicitarExclusaoUmaPorVez(t *testing.T) {
	p, _ := novoPainelTeste(t, 5, true)

	require.NoError(t, p.Exclusao.SolicitarExclusao("1"))
	assert.ErrorIs(t, p.Exclusao.SolicitarExclusao("2"), ErrExclusaoPendente)
	assert.NoError(t, p.Exclusao.SolicitarExclusao("1"))

	id, _ := p.Exclusao.Pendente()
	assert.Equal(t, "1", id)
}

func TestConfirmarSemPendenteNaoFazNada(t *testing.T) {
	p, g := novoPainelTeste(t, 5, true)

	require.NoError(t, p.Exclusao.Confirmar(context.Background()))

	assert.Empty(t, g.deletados)
}

func TestExcluirUltimoDaUltimaPaginaVoltaUmaPagina(t *testing.T) {
	ctx := context.Background()
	p, _ := novoPainelTeste(t, 11, true)
	require.NoError(t, p.Lista.DefinirPagina(ctx, 2))
	ultimo := p.Lista.Estado().Vendedores[0]

	require.NoError(t, p.Exclusao.SolicitarExclusao(ultimo.ID))
	require.NoError(t, p.Exclusao.Confirmar(ctx))

	e := p.Lista.Estado()
	assert.Equal(t, 1, e.Pagina)
	assert.Len(t, e.Vendedores, 10)
	assert.Equal(t, 1, e.TotalPaginas)
}
