package vendedor

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// Status de integração conhecidos. O conjunto é aberto: o backend pode
// devolver outros valores, que são exibidos como vieram.
const (
	StatusAtivo    = "ativo"
	StatusPendente = "pendente"
)

// Vendedor é o registro da tabela vendedores. O ID é atribuído pelo backend
// e nunca é alterado pelo painel.
type Vendedor struct {
	ID               string  `gorm:"primaryKey;size:36" json:"id"`
	Nome             string  `gorm:"not null" json:"nome"`
	Email            string  `gorm:"not null" json:"email"`
	StatusIntegracao *string `gorm:"column:status_integracao" json:"status_integracao"`
}

func (Vendedor) TableName() string {
	return "vendedores"
}

// BeforeCreate gera o ID quando o registro é criado direto no Postgres.
func (v *Vendedor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// StatusExibicao trata status ausente ou vazio como pendente
func (v Vendedor) StatusExibicao() string {
	if v.StatusIntegracao == nil || strings.TrimSpace(*v.StatusIntegracao) == "" {
		return StatusPendente
	}
	return *v.StatusIntegracao
}

// RotuloStatus devolve o status pronto para a tela ("Ativo", "Pendente").
func (v Vendedor) RotuloStatus() string {
	return cases.Title(language.BrazilianPortuguese).String(v.StatusExibicao())
}

func (v Vendedor) Ativo() bool {
	return v.StatusExibicao() == StatusAtivo
}

// Migrate cria a tabela vendedores quando o painel fala direto com o Postgres.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Vendedor{})
}
