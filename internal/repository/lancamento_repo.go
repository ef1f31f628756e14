package repository

import (
	"context"

	"pecaspos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SomaLancamentos holds the per-day lançamento sums used by the
// reconciliation engine. EntradasManuais excludes venda-linked entries —
// sale totals are counted from the vendas table, never twice.
type SomaLancamentos struct {
	EntradasManuais decimal.Decimal
	Saidas          decimal.Decimal
}

type LancamentoRepository interface {
	Create(ctx context.Context, l *model.Lancamento) error
	// CreateTx is used inside sale/close transactions — callers pass the tx.
	CreateTx(tx *gorm.DB, l *model.Lancamento) error
	ListByData(ctx context.Context, data string) ([]model.Lancamento, error)
	SomarPorData(ctx context.Context, data string) (SomaLancamentos, error)
}

type lancamentoRepo struct{ db *gorm.DB }

func NewLancamentoRepository(db *gorm.DB) LancamentoRepository {
	return &lancamentoRepo{db: db}
}

func (r *lancamentoRepo) Create(ctx context.Context, l *model.Lancamento) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *lancamentoRepo) CreateTx(tx *gorm.DB, l *model.Lancamento) error {
	return tx.Create(l).Error
}

func (r *lancamentoRepo) ListByData(ctx context.Context, data string) ([]model.Lancamento, error) {
	var lancs []model.Lancamento
	err := r.db.WithContext(ctx).Where("data = ?", data).Order("created_at ASC").Find(&lancs).Error
	return lancs, err
}

func (r *lancamentoRepo) SomarPorData(ctx context.Context, data string) (SomaLancamentos, error) {
	type row struct {
		Tipo   string
		Avulso bool
		Total  decimal.Decimal `gorm:"column:total"`
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.Lancamento{}).
		Select("tipo, (venda_id IS NULL) AS avulso, COALESCE(SUM(valor), 0) AS total").
		Where("data = ?", data).
		Group("tipo, avulso").
		Scan(&rows).Error
	if err != nil {
		return SomaLancamentos{}, err
	}

	soma := SomaLancamentos{EntradasManuais: decimal.Zero, Saidas: decimal.Zero}
	for _, r := range rows {
		switch {
		case r.Tipo == model.LancamentoEntrada && r.Avulso:
			soma.EntradasManuais = soma.EntradasManuais.Add(r.Total)
		case r.Tipo == model.LancamentoSaida:
			// Saídas are always manual; venda-linked entries are entradas.
			soma.Saidas = soma.Saidas.Add(r.Total)
		}
	}
	return soma, nil
}
