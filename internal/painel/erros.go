package painel

import "errors"

var (
	// ErrBackend cobre qualquer falha de busca, inserção, atualização ou
	// exclusão. O estado exibido continua o mesmo de antes da chamada.
	ErrBackend = errors.New("falha ao falar com o backend")
	// ErrValidacao indica campo obrigatório vazio ou e-mail malformado.
	// Nenhuma chamada de rede é feita.
	ErrValidacao         = errors.New("formulário inválido")
	ErrEmAndamento       = errors.New("operação já em andamento")
	ErrFormularioFechado = errors.New("formulário não está aberto")
	ErrCampoDesconhecido = errors.New("campo desconhecido")
	ErrExclusaoPendente  = errors.New("já existe uma exclusão aguardando confirmação")
	ErrLinkInexistente   = errors.New("link ainda não foi gerado")
	ErrSomenteLeitura    = errors.New("painel somente leitura")
)
