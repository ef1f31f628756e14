package repository

import (
	"context"

	"pecaspos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VendaRepository interface {
	// CreateTx persists a venda with its itens inside a transaction.
	CreateTx(tx *gorm.DB, v *model.Venda) error
	FindByID(ctx context.Context, id uint) (*model.Venda, error)
	ListByData(ctx context.Context, data string) ([]model.Venda, error)
	SomarTotalPorData(ctx context.Context, data string) (decimal.Decimal, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type vendaRepo struct{ db *gorm.DB }

func NewVendaRepository(db *gorm.DB) VendaRepository { return &vendaRepo{db: db} }

func (r *vendaRepo) CreateTx(tx *gorm.DB, v *model.Venda) error {
	return tx.Create(v).Error
}

func (r *vendaRepo) FindByID(ctx context.Context, id uint) (*model.Venda, error) {
	var v model.Venda
	err := r.db.WithContext(ctx).
		Preload("Itens", func(db *gorm.DB) *gorm.DB { return db.Order("posicao ASC") }).
		First(&v, id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vendaRepo) ListByData(ctx context.Context, data string) ([]model.Venda, error) {
	var vendas []model.Venda
	err := r.db.WithContext(ctx).
		Preload("Itens", func(db *gorm.DB) *gorm.DB { return db.Order("posicao ASC") }).
		Where("data = ?", data).
		Order("created_at ASC").
		Find(&vendas).Error
	return vendas, err
}

func (r *vendaRepo) SomarTotalPorData(ctx context.Context, data string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.Venda{}).
		Select("COALESCE(SUM(total), 0)").
		Where("data = ?", data).
		Scan(&total).Error
	return total, err
}

func (r *vendaRepo) DB() *gorm.DB { return r.db }
