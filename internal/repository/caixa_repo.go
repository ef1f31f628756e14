package repository

import (
	"context"

	"pecaspos/internal/model"

	"gorm.io/gorm"
)

// CaixaRepository is the data access contract for per-day register rows.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory fakes.
type CaixaRepository interface {
	Create(ctx context.Context, c *model.Caixa) error
	FindByData(ctx context.Context, data string) (*model.Caixa, error)
	Update(ctx context.Context, c *model.Caixa) error
	// FecharAnteriores closes every register still open on a date before
	// hoje. Returns how many rows were touched.
	FecharAnteriores(ctx context.Context, hoje string) (int64, error)
	// ListAll returns every register row, newest date first.
	ListAll(ctx context.Context) ([]model.Caixa, error)
}

type caixaRepo struct{ db *gorm.DB }

func NewCaixaRepository(db *gorm.DB) CaixaRepository { return &caixaRepo{db: db} }

func (r *caixaRepo) Create(ctx context.Context, c *model.Caixa) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *caixaRepo) FindByData(ctx context.Context, data string) (*model.Caixa, error) {
	var c model.Caixa
	err := r.db.WithContext(ctx).Where("data = ?", data).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *caixaRepo) Update(ctx context.Context, c *model.Caixa) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *caixaRepo) FecharAnteriores(ctx context.Context, hoje string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Caixa{}).
		Where("aberto = true AND data < ?", hoje).
		Update("aberto", false)
	return res.RowsAffected, res.Error
}

func (r *caixaRepo) ListAll(ctx context.Context) ([]model.Caixa, error) {
	var caixas []model.Caixa
	err := r.db.WithContext(ctx).Order("data DESC").Find(&caixas).Error
	return caixas, err
}
