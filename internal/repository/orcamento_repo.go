package repository

import (
	"context"

	"pecaspos/internal/model"

	"gorm.io/gorm"
)

type OrcamentoRepository interface {
	Create(ctx context.Context, o *model.Orcamento) error
	// FindByID loads the orçamento with its itens ordered by posicao.
	FindByID(ctx context.Context, id uint) (*model.Orcamento, error)
	List(ctx context.Context) ([]model.Orcamento, error)

	// Item mutations run inside a transaction together with the derived
	// total update — the Total invariant must hold after every commit.
	CreateItemTx(tx *gorm.DB, item *model.OrcamentoItem) error
	DeleteItemTx(tx *gorm.DB, orcamentoID uint, posicao int) error
	// ReindexItensTx re-sequences posicao to 0..n-1 after a removal so
	// client-side indices stay dense.
	ReindexItensTx(tx *gorm.DB, orcamentoID uint) error
	UpdateTx(tx *gorm.DB, o *model.Orcamento) error

	// DB exposes the underlying *gorm.DB so the service can open transactions.
	DB() *gorm.DB
}

type orcamentoRepo struct{ db *gorm.DB }

func NewOrcamentoRepository(db *gorm.DB) OrcamentoRepository {
	return &orcamentoRepo{db: db}
}

func (r *orcamentoRepo) Create(ctx context.Context, o *model.Orcamento) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orcamentoRepo) FindByID(ctx context.Context, id uint) (*model.Orcamento, error) {
	var o model.Orcamento
	err := r.db.WithContext(ctx).
		Preload("Itens", func(db *gorm.DB) *gorm.DB { return db.Order("posicao ASC") }).
		First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orcamentoRepo) List(ctx context.Context) ([]model.Orcamento, error) {
	var orcs []model.Orcamento
	err := r.db.WithContext(ctx).
		Preload("Itens", func(db *gorm.DB) *gorm.DB { return db.Order("posicao ASC") }).
		Order("id DESC").
		Find(&orcs).Error
	return orcs, err
}

func (r *orcamentoRepo) CreateItemTx(tx *gorm.DB, item *model.OrcamentoItem) error {
	return tx.Create(item).Error
}

func (r *orcamentoRepo) DeleteItemTx(tx *gorm.DB, orcamentoID uint, posicao int) error {
	return tx.Where("orcamento_id = ? AND posicao = ?", orcamentoID, posicao).
		Delete(&model.OrcamentoItem{}).Error
}

func (r *orcamentoRepo) ReindexItensTx(tx *gorm.DB, orcamentoID uint) error {
	var itens []model.OrcamentoItem
	if err := tx.Where("orcamento_id = ?", orcamentoID).
		Order("posicao ASC").Find(&itens).Error; err != nil {
		return err
	}
	for i := range itens {
		if itens[i].Posicao == i {
			continue
		}
		if err := tx.Model(&model.OrcamentoItem{}).
			Where("id = ?", itens[i].ID).
			Update("posicao", i).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *orcamentoRepo) UpdateTx(tx *gorm.DB, o *model.Orcamento) error {
	return tx.Omit("Itens").Save(o).Error
}

func (r *orcamentoRepo) DB() *gorm.DB { return r.db }
