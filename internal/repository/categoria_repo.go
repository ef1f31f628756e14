package repository

import (
	"context"

	"pecaspos/internal/model"

	"gorm.io/gorm"
)

type CategoriaRepository interface {
	Create(ctx context.Context, c *model.Categoria) error
	FindByID(ctx context.Context, id uint) (*model.Categoria, error)
	FindByNome(ctx context.Context, nome string) (*model.Categoria, error)
	List(ctx context.Context) ([]model.Categoria, error)
	// DeleteDetaching removes the categoria after nulling categoria_id on
	// every referencing product, in one transaction. Never cascades.
	DeleteDetaching(ctx context.Context, id uint) error
}

type categoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository {
	return &categoriaRepo{db: db}
}

func (r *categoriaRepo) Create(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepo) FindByID(ctx context.Context, id uint) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) FindByNome(ctx context.Context, nome string) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).Where("nome = ?", nome).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) List(ctx context.Context) ([]model.Categoria, error) {
	var cats []model.Categoria
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&cats).Error
	return cats, err
}

func (r *categoriaRepo) DeleteDetaching(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Produto{}).
			Where("categoria_id = ?", id).
			Update("categoria_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Categoria{}, id).Error
	})
}
