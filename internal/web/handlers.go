package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/KromaEnergia/painel-vendedores/internal/auth"
	"github.com/KromaEnergia/painel-vendedores/internal/painel"
	"github.com/gorilla/mux"
)

// Avisos exibidos no topo da página depois de uma falha.
const (
	avisoCarregar       = "Não foi possível carregar os vendedores."
	avisoSalvar         = "Não foi possível salvar o vendedor."
	avisoValidacao      = "Preencha o nome e um e-mail válido."
	avisoRemover        = "Não foi possível remover o vendedor."
	avisoSomenteLeitura = "Este painel é somente leitura."
	avisoNaoEncontrado  = "Vendedor não está mais na lista."
	avisoGenerico       = "Não foi possível concluir a operação."
)

type dadosPagina struct {
	painel.Visao
	Aviso  string
	Copias []string
}

func (s *Servidor) sessao(r *http.Request) *sessao {
	return s.sessoes.Obter(auth.SessaoID(r.Context()))
}

func voltar(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Pagina aplica busca e página vindas da query string e desenha o painel.
func (s *Servidor) Pagina(w http.ResponseWriter, r *http.Request) {
	ss := s.sessao(r)
	lista := ss.painel.Lista
	ctx := r.Context()
	q := r.URL.Query()

	var err error
	switch {
	case q.Has("busca"):
		err = lista.DefinirTermo(ctx, q.Get("busca"))
	case q.Has("pagina"):
		n, convErr := strconv.Atoi(q.Get("pagina"))
		if convErr != nil || n > painel.PaginaMaxima {
			http.Error(w, "página inválida", http.StatusBadRequest)
			return
		}
		err = lista.DefinirPagina(ctx, n)
	}
	if err == nil && !lista.Estado().Carregada {
		err = lista.Recarregar(ctx)
	}
	if err != nil {
		ss.avisar(avisoCarregar)
	}

	dados := dadosPagina{
		Visao:  ss.painel.Visao(),
		Aviso:  ss.consumirAviso(),
		Copias: ss.copias.Retirar(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "painel.html", dados); err != nil {
		s.logger.Errorw("falha ao renderizar painel", "erro", err)
	}
}

func (s *Servidor) AbrirNovo(w http.ResponseWriter, r *http.Request) {
	ss := s.sessao(r)
	if err := ss.painel.Formulario.AbrirParaCriar(); err != nil {
		ss.avisar(s.mensagem(err, avisoGenerico))
	}
	voltar(w, r)
}

func (s *Servidor) AbrirEdicao(w http.ResponseWriter, r *http.Request) {
	ss := s.sessao(r)
	v, ok := ss.painel.Lista.Vendedor(mux.Vars(r)["id"])
	if !ok {
		ss.avisar(avisoNaoEncontrado)
		voltar(w, r)
		return
	}
	if err := ss.painel.Formulario.AbrirParaEditar(v); err != nil {
		ss.avisar(s.mensagem(err, avisoGenerico))
	}
	voltar(w, r)
}

// SalvarFormulario copia os campos postados para o buffer e envia.
func (s *Servidor) SalvarFormulario(w http.ResponseWriter, r *http.Request) {
	ss := s.sessao(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulário inválido", http.StatusBadRequest)
		return
	}
	f := ss.painel.Formulario
	for _, campo := range []painel.Campo{painel.CampoNome, painel.CampoEmail, painel.CampoStatus} {
		if err := f.AtualizarCampo(campo, r.PostForm.Get(string(campo))); err != nil {
			ss.avisar(s.mensagem(err, avisoGenerico))
			voltar(w, r)
			return
		}
	}
	if err := f.Enviar(r.Context()); err != nil {
		ss.avisar(s.mensagem(err, avisoSalvar))
	}
	voltar(w, r)
}

func (s *Servidor) CancelarFormulario(w http.ResponseWriter, r *http.Request) {
	s.sessao(r).painel.Formulario.Cancelar()
	voltar(w, r)
}

func (s *Servidor) SolicitarRemocao(w http.ResponseWriter, r *http.Request) {
	ss := s.sessao(r)
	if err := ss.painel.Exclusao.SolicitarExclusao(mux.Vars(r)["id"]); err != nil {
		ss.avisar(s.mensagem(err, avisoGenerico))
	}
	voltar(w, r)
}

func (s *Servidor) ConfirmarRemocao(w http.ResponseWriter, r *http.Request) {
	ss := s.sessao(r)
	if err := ss.painel.Exclusao.Confirmar(r.Context()); err != nil {
		ss.avisar(s.mensagem(err, avisoRemover))
	}
	voltar(w, r)
}

func (s *Servidor) CancelarRemocao(w http.ResponseWriter, r *http.Request) {
	s.sessao(r).painel.Exclusao.Dispensar()
	voltar(w, r)
}

func (s *Servidor) GerarLink(w http.ResponseWriter, r *http.Request) {
	ss := s.sessao(r)
	v, ok := ss.painel.Lista.Vendedor(mux.Vars(r)["id"])
	if !ok {
		ss.avisar(avisoNaoEncontrado)
		voltar(w, r)
		return
	}
	ss.painel.Links.Gerar(v)
	voltar(w, r)
}

func (s *Servidor) CopiarLink(w http.ResponseWriter, r *http.Request) {
	ss := s.sessao(r)
	// sem link gerado o clique não faz nada
	if err := ss.painel.Links.Copiar(r.Context(), mux.Vars(r)["id"]); err != nil && !errors.Is(err, painel.ErrLinkInexistente) {
		s.logger.Warnw("falha ao copiar link", "erro", err)
	}
	voltar(w, r)
}

// mensagem traduz o erro de uma ação no aviso mostrado ao usuário. Falhas
// do backend usam o aviso da própria ação.
func (s *Servidor) mensagem(err error, falhaBackend string) string {
	switch {
	case errors.Is(err, painel.ErrValidacao):
		return avisoValidacao
	case errors.Is(err, painel.ErrSomenteLeitura):
		return avisoSomenteLeitura
	case errors.Is(err, painel.ErrExclusaoPendente):
		return "Conclua a remoção pendente antes de remover outro vendedor."
	case errors.Is(err, painel.ErrEmAndamento):
		return "Aguarde a operação em andamento."
	case errors.Is(err, painel.ErrFormularioFechado):
		return "O formulário não está aberto."
	case errors.Is(err, painel.ErrBackend):
		return falhaBackend
	}
	s.logger.Debugw("erro sem aviso específico", "erro", err)
	return avisoGenerico
}
