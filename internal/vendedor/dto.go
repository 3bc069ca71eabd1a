package vendedor

import "strings"

// Dados é o corpo enviado ao backend em inserções e atualizações.
// Status vazio vai como null.
type Dados struct {
	Nome             string  `json:"nome"`
	Email            string  `json:"email"`
	StatusIntegracao *string `json:"status_integracao"`
}

// NovosDados monta o payload a partir dos campos do formulário
func NovosDados(nome, email, status string) Dados {
	d := Dados{Nome: nome, Email: email}
	if s := strings.TrimSpace(status); s != "" {
		d.StatusIntegracao = &s
	}
	return d
}

// Colunas usadas nas atualizações; o map garante que o null seja gravado.
func (d Dados) Colunas() map[string]any {
	return map[string]any{
		"nome":              d.Nome,
		"email":             d.Email,
		"status_integracao": d.StatusIntegracao,
	}
}

type ListaVendedoresDTO struct {
	Vendedores   []Vendedor `json:"vendedores"`
	Total        int        `json:"total"`
	Pagina       int        `json:"pagina"`
	TotalPaginas int        `json:"totalPaginas"`
}

type LinkDTO struct {
	ID   string `json:"id"`
	Link string `json:"link"`
}
