package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/KromaEnergia/painel-vendedores/internal/painel"
	"github.com/KromaEnergia/painel-vendedores/internal/vendedor"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// request DTO da API
type vendedorRequest struct {
	Nome             string `json:"nome" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	StatusIntegracao string `json:"status_integracao"`
}

var validate = validator.New()

func responderJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// lerVendedor decodifica e valida o corpo; em caso de erro já respondeu.
func lerVendedor(w http.ResponseWriter, r *http.Request) (vendedor.Dados, bool) {
	var req vendedorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return vendedor.Dados{}, false
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "nome e e-mail válido são obrigatórios", http.StatusUnprocessableEntity)
		return vendedor.Dados{}, false
	}
	return vendedor.NovosDados(req.Nome, req.Email, req.StatusIntegracao), true
}

func (s *Servidor) somenteLeitura(w http.ResponseWriter) bool {
	if s.podeEditar {
		return false
	}
	http.Error(w, painel.ErrSomenteLeitura.Error(), http.StatusForbidden)
	return true
}

func (s *Servidor) erroBackend(w http.ResponseWriter, acao string, err error) {
	if errors.Is(err, vendedor.ErrNaoEncontrado) {
		http.Error(w, "vendedor não encontrado", http.StatusNotFound)
		return
	}
	s.logger.Warnw("falha na API", "acao", acao, "erro", err)
	http.Error(w, "erro ao "+acao, http.StatusBadGateway)
}

// ListarVendedores devolve uma página (10 por página) filtrada por nome
func (s *Servidor) ListarVendedores(w http.ResponseWriter, r *http.Request) {
	pagina := 1
	if p := r.URL.Query().Get("pagina"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || n > painel.PaginaMaxima {
			http.Error(w, "página inválida", http.StatusBadRequest)
			return
		}
		pagina = n
	}

	resultado, err := s.gateway.Buscar(r.Context(), painel.NovaConsulta(r.URL.Query().Get("busca"), pagina))
	if err != nil {
		s.erroBackend(w, "buscar vendedores", err)
		return
	}

	vendedores := resultado.Vendedores
	if vendedores == nil {
		vendedores = []vendedor.Vendedor{}
	}
	responderJSON(w, http.StatusOK, vendedor.ListaVendedoresDTO{
		Vendedores:   vendedores,
		Total:        resultado.Total,
		Pagina:       pagina,
		TotalPaginas: painel.TotalPaginas(resultado.Total),
	})
}

func (s *Servidor) CriarVendedor(w http.ResponseWriter, r *http.Request) {
	if s.somenteLeitura(w) {
		return
	}
	dados, ok := lerVendedor(w, r)
	if !ok {
		return
	}
	if err := s.gateway.Inserir(r.Context(), dados); err != nil {
		s.erroBackend(w, "salvar vendedor", err)
		return
	}
	responderJSON(w, http.StatusCreated, dados)
}

func (s *Servidor) AtualizarVendedor(w http.ResponseWriter, r *http.Request) {
	if s.somenteLeitura(w) {
		return
	}
	dados, ok := lerVendedor(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]
	if err := s.gateway.Atualizar(r.Context(), id, dados); err != nil {
		s.erroBackend(w, "atualizar vendedor", err)
		return
	}
	responderJSON(w, http.StatusOK, vendedor.Vendedor{
		ID:               id,
		Nome:             dados.Nome,
		Email:            dados.Email,
		StatusIntegracao: dados.StatusIntegracao,
	})
}

func (s *Servidor) DeletarVendedor(w http.ResponseWriter, r *http.Request) {
	if s.somenteLeitura(w) {
		return
	}
	if err := s.gateway.Deletar(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.erroBackend(w, "remover vendedor", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LinkVendedor monta o link de autorização do Mercado Pago; não consulta o
// backend.
func (s *Servidor) LinkVendedor(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	responderJSON(w, http.StatusOK, vendedor.LinkDTO{
		ID:   id,
		Link: painel.GerarLink(vendedor.Vendedor{ID: id}),
	})
}
