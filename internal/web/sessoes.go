package web

import (
	"sync"
	"time"

	"github.com/KromaEnergia/painel-vendedores/internal/painel"
)

// sessao é o painel de um navegador, com a fila de cópia e o aviso que
// ainda não foi exibido.
type sessao struct {
	painel *painel.Painel
	copias *filaCopia

	mu           sync.Mutex
	aviso        string
	ultimoAcesso time.Time
}

func (s *sessao) avisar(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aviso = msg
}

func (s *sessao) consumirAviso() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.aviso
	s.aviso = ""
	return msg
}

// Sessoes mantém um painel por id de sessão. Sessões paradas por mais de
// ttl são descartadas na próxima chamada a Obter.
type Sessoes struct {
	ttl        time.Duration
	novoPainel func(painel.AreaTransferencia) *painel.Painel
	agora      func() time.Time

	mu    sync.Mutex
	itens map[string]*sessao
}

func NovasSessoes(ttl time.Duration, novoPainel func(painel.AreaTransferencia) *painel.Painel) *Sessoes {
	return &Sessoes{
		ttl:        ttl,
		novoPainel: novoPainel,
		agora:      time.Now,
		itens:      make(map[string]*sessao),
	}
}

func (s *Sessoes) Obter(id string) *sessao {
	s.mu.Lock()
	defer s.mu.Unlock()

	agora := s.agora()
	s.expirar(agora)

	ss, ok := s.itens[id]
	if !ok {
		copias := &filaCopia{}
		ss = &sessao{painel: s.novoPainel(copias), copias: copias}
		s.itens[id] = ss
	}
	ss.ultimoAcesso = agora
	return ss
}

func (s *Sessoes) Quantidade() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.itens)
}

func (s *Sessoes) expirar(agora time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, ss := range s.itens {
		if agora.Sub(ss.ultimoAcesso) > s.ttl {
			delete(s.itens, id)
		}
	}
}
