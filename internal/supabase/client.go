// Package supabase fala com a API REST (PostgREST) do projeto Supabase que
// guarda a tabela de vendedores, usando o cliente postgrest-go.
package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KromaEnergia/painel-vendedores/internal/vendedor"
	"github.com/supabase-community/postgrest-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	TabelaPadrao = "vendedores"
	colunas      = "id,nome,email,status_integracao"
	caminhoREST  = "/rest/v1"

	// intervalo pedido além da última linha
	codigoRangeInvalido = "PGRST103"
)

var ErrURLInvalida = errors.New("url do supabase inválida")

var tracer = otel.Tracer("github.com/KromaEnergia/painel-vendedores/internal/supabase")

var _ vendedor.Gateway = (*Cliente)(nil)

var ordemAsc = &postgrest.OrderOpts{Ascending: true}

type Cliente struct {
	rest    *postgrest.Client
	erroURL error
	tabela  string
	http    *http.Client
	timeout time.Duration
}

type Opcao func(*Cliente)

// ComHTTPClient usa uma cópia de h; o cliente do chamador nunca é alterado.
func ComHTTPClient(h *http.Client) Opcao {
	return func(c *Cliente) {
		copia := *h
		c.http = &copia
	}
}

func ComTabela(tabela string) Opcao {
	return func(c *Cliente) {
		if tabela != "" {
			c.tabela = tabela
		}
	}
}

func ComTimeout(d time.Duration) Opcao {
	return func(c *Cliente) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// viaHTTPClient faz o postgrest-go enviar as requisições pelo http.Client
// configurado (timeout, transporte de teste).
type viaHTTPClient struct {
	http *http.Client
}

func (v viaHTTPClient) RoundTrip(req *http.Request) (*http.Response, error) {
	return v.http.Do(req)
}

// NovoCliente não valida a URL na criação: com os valores de exemplo o
// cliente sobe e cada chamada falha com ErrURLInvalida.
func NovoCliente(baseURL, chave string, opcoes ...Opcao) *Cliente {
	c := &Cliente{
		tabela:  TabelaPadrao,
		http:    &http.Client{},
		timeout: 10 * time.Second,
	}
	for _, o := range opcoes {
		o(c)
	}
	c.http.Timeout = c.timeout

	base := strings.TrimRight(baseURL, "/")
	if u, err := url.Parse(base); err != nil || u.Scheme == "" || u.Host == "" {
		c.erroURL = fmt.Errorf("%w: %q", ErrURLInvalida, baseURL)
	}

	c.rest = postgrest.NewClient(base+caminhoREST, "public", map[string]string{
		"apikey":        chave,
		"Authorization": "Bearer " + chave,
	})
	c.rest.Transport.Parent = viaHTTPClient{http: c.http}
	return c
}

// executar roda a chamada bloqueante do postgrest-go respeitando ctx. Se ctx
// acabar antes, a chamada termina em segundo plano, limitada pelo timeout.
func executar[T any](ctx context.Context, c *Cliente, f func() (T, error)) (T, error) {
	var zero T
	if c.erroURL != nil {
		return zero, c.erroURL
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	type resultado struct {
		v   T
		err error
	}
	ch := make(chan resultado, 1)
	go func() {
		v, err := f()
		ch <- resultado{v: v, err: err}
	}()

	select {
	case r := <-ch:
		return r.v, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Buscar pede a contagem exata e a fatia [De, Ate] ordenada por nome.
func (c *Cliente) Buscar(ctx context.Context, consulta vendedor.Consulta) (vendedor.Pagina, error) {
	ctx, span := tracer.Start(ctx, "supabase.Cliente.Buscar", trace.WithAttributes(
		attribute.String("busca.termo", consulta.Termo),
		attribute.Int("busca.de", consulta.De),
		attribute.Int("busca.ate", consulta.Ate),
	))
	defer span.End()

	pagina, err := c.buscar(ctx, consulta)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return vendedor.Pagina{}, err
	}
	span.SetAttributes(attribute.Int("busca.total", pagina.Total))
	return pagina, nil
}

func (c *Cliente) buscar(ctx context.Context, consulta vendedor.Consulta) (vendedor.Pagina, error) {
	if err := consulta.Validar(); err != nil {
		return vendedor.Pagina{}, err
	}

	pagina, err := executar(ctx, c, func() (vendedor.Pagina, error) {
		q := c.rest.From(c.tabela).Select(colunas, "exact", false)
		if consulta.Termo != "" {
			q = q.Ilike("nome", vendedor.PadraoBusca(consulta.Termo))
		}
		vendedores := []vendedor.Vendedor{}
		total, err := q.Order("nome", ordemAsc).Order("id", ordemAsc).
			Range(consulta.De, consulta.Ate, "").
			ExecuteTo(&vendedores)
		return vendedor.Pagina{Vendedores: vendedores, Total: int(total)}, err
	})
	if err == nil {
		return pagina, nil
	}
	if !strings.Contains(err.Error(), codigoRangeInvalido) {
		return vendedor.Pagina{}, fmt.Errorf("supabase: buscar vendedores: %w", err)
	}

	// Fatia além do fim: página vazia, com o total contado à parte.
	total, err := c.contar(ctx, consulta.Termo)
	if err != nil {
		return vendedor.Pagina{}, err
	}
	return vendedor.Pagina{Vendedores: []vendedor.Vendedor{}, Total: total}, nil
}

func (c *Cliente) contar(ctx context.Context, termo string) (int, error) {
	total, err := executar(ctx, c, func() (int64, error) {
		q := c.rest.From(c.tabela).Select("id", "exact", true)
		if termo != "" {
			q = q.Ilike("nome", vendedor.PadraoBusca(termo))
		}
		_, total, err := q.Execute()
		return total, err
	})
	if err != nil {
		return 0, fmt.Errorf("supabase: contar vendedores: %w", err)
	}
	return int(total), nil
}

func (c *Cliente) Inserir(ctx context.Context, d vendedor.Dados) error {
	ctx, span := tracer.Start(ctx, "supabase.Cliente.Inserir")
	defer span.End()

	_, err := executar(ctx, c, func() (struct{}, error) {
		_, _, err := c.rest.From(c.tabela).Insert(d, false, "", "minimal", "").Execute()
		return struct{}{}, err
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("inserir vendedor: %w", err)
	}
	return nil
}

func (c *Cliente) Atualizar(ctx context.Context, id string, d vendedor.Dados) error {
	ctx, span := tracer.Start(ctx, "supabase.Cliente.Atualizar", trace.WithAttributes(attribute.String("vendedor.id", id)))
	defer span.End()

	err := c.noRegistro(ctx, func(afetados *[]json.RawMessage) error {
		_, err := c.rest.From(c.tabela).Update(d, "representation", "").Eq("id", id).ExecuteTo(afetados)
		return err
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("atualizar vendedor %s: %w", id, err)
	}
	return nil
}

func (c *Cliente) Deletar(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "supabase.Cliente.Deletar", trace.WithAttributes(attribute.String("vendedor.id", id)))
	defer span.End()

	err := c.noRegistro(ctx, func(afetados *[]json.RawMessage) error {
		_, err := c.rest.From(c.tabela).Delete("representation", "").Eq("id", id).ExecuteTo(afetados)
		return err
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("deletar vendedor %s: %w", id, err)
	}
	return nil
}

// noRegistro roda uma escrita com return=representation; nenhuma linha
// devolvida significa que o id não existe.
func (c *Cliente) noRegistro(ctx context.Context, f func(*[]json.RawMessage) error) error {
	afetados, err := executar(ctx, c, func() ([]json.RawMessage, error) {
		var afetados []json.RawMessage
		err := f(&afetados)
		return afetados, err
	})
	if err != nil {
		return err
	}
	if len(afetados) == 0 {
		return vendedor.ErrNaoEncontrado
	}
	return nil
}
