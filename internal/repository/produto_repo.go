package repository

import (
	"context"

	"pecaspos/internal/dto"
	"pecaspos/internal/model"

	"gorm.io/gorm"
)

type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	FindByCodigo(ctx context.Context, codigo uint) (*model.Produto, error)
	List(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, error)
	Update(ctx context.Context, p *model.Produto) error
	Delete(ctx context.Context, codigo uint) error

	// BaixarEstoqueTx decrements stock by quantidade inside a transaction,
	// floored at zero — stock never goes negative.
	BaixarEstoqueTx(tx *gorm.DB, codigo uint, quantidade int) error
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) FindByCodigo(ctx context.Context, codigo uint) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).Preload("Categoria").First(&p, codigo).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *produtoRepo) List(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, error) {
	q := r.db.WithContext(ctx).Model(&model.Produto{}).Preload("Categoria")

	if filter.Q != "" {
		if codigo, isNum := parseCodigo(filter.Q); isNum {
			q = q.Where("id = ? OR nome ILIKE ?", codigo, "%"+filter.Q+"%")
		} else {
			q = q.Where("nome ILIKE ?", "%"+filter.Q+"%")
		}
	}
	if filter.CategoriaID != 0 {
		q = q.Where("categoria_id = ?", filter.CategoriaID)
	}

	var produtos []model.Produto
	err := q.Order("id ASC").Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) Update(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *produtoRepo) Delete(ctx context.Context, codigo uint) error {
	return r.db.WithContext(ctx).Delete(&model.Produto{}, codigo).Error
}

func (r *produtoRepo) BaixarEstoqueTx(tx *gorm.DB, codigo uint, quantidade int) error {
	return tx.Model(&model.Produto{}).Where("id = ?", codigo).
		Update("estoque", gorm.Expr("GREATEST(estoque - ?, 0)", quantidade)).Error
}

func parseCodigo(s string) (uint, bool) {
	var n uint
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + uint(c-'0')
	}
	return n, s != ""
}
