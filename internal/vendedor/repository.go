package vendedor

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

var tracer = otel.Tracer("github.com/KromaEnergia/painel-vendedores/internal/vendedor")

// Repository implementa o Gateway direto sobre o Postgres (ou qualquer banco
// suportado pelo gorm).
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

var _ Gateway = (*Repository)(nil)

// clausulaBusca usa ILIKE no Postgres e LOWER/LIKE nos demais dialetos
func (r *Repository) clausulaBusca() string {
	if r.DB.Dialector.Name() == "postgres" {
		return `nome ILIKE ? ESCAPE '\'`
	}
	return `LOWER(nome) LIKE LOWER(?) ESCAPE '\'`
}

func (r *Repository) Buscar(ctx context.Context, c Consulta) (Pagina, error) {
	ctx, span := tracer.Start(ctx, "vendedor.Repository.Buscar", trace.WithAttributes(
		attribute.String("busca.termo", c.Termo),
		attribute.Int("busca.de", c.De),
		attribute.Int("busca.ate", c.Ate),
	))
	defer span.End()

	if err := c.Validar(); err != nil {
		return Pagina{}, err
	}

	var pagina Pagina
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base := tx.Model(&Vendedor{})
		if c.Termo != "" {
			base = base.Where(r.clausulaBusca(), PadraoBusca(c.Termo))
		}
		base = base.Session(&gorm.Session{})

		var total int64
		if err := base.Count(&total).Error; err != nil {
			return err
		}

		vendedores := []Vendedor{}
		if err := base.Order("nome").Order("id").Offset(c.De).Limit(c.Limite()).Find(&vendedores).Error; err != nil {
			return err
		}

		pagina = Pagina{Vendedores: vendedores, Total: int(total)}
		return nil
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Pagina{}, fmt.Errorf("buscar vendedores: %w", err)
	}
	span.SetAttributes(attribute.Int("busca.total", pagina.Total))
	return pagina, nil
}

func (r *Repository) Inserir(ctx context.Context, d Dados) error {
	ctx, span := tracer.Start(ctx, "vendedor.Repository.Inserir")
	defer span.End()

	v := Vendedor{Nome: d.Nome, Email: d.Email, StatusIntegracao: d.StatusIntegracao}
	if err := r.DB.WithContext(ctx).Create(&v).Error; err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("inserir vendedor: %w", err)
	}
	return nil
}

func (r *Repository) Atualizar(ctx context.Context, id string, d Dados) error {
	ctx, span := tracer.Start(ctx, "vendedor.Repository.Atualizar", trace.WithAttributes(attribute.String("vendedor.id", id)))
	defer span.End()

	res := r.DB.WithContext(ctx).Model(&Vendedor{}).Where("id = ?", id).Updates(d.Colunas())
	if res.Error != nil {
		span.SetStatus(codes.Error, res.Error.Error())
		return fmt.Errorf("atualizar vendedor %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("atualizar vendedor %s: %w", id, ErrNaoEncontrado)
	}
	return nil
}

func (r *Repository) Deletar(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "vendedor.Repository.Deletar", trace.WithAttributes(attribute.String("vendedor.id", id)))
	defer span.End()

	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&Vendedor{})
	if res.Error != nil {
		span.SetStatus(codes.Error, res.Error.Error())
		return fmt.Errorf("deletar vendedor %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("deletar vendedor %s: %w", id, ErrNaoEncontrado)
	}
	return nil
}
