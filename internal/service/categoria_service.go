package service

import (
	"context"
	"fmt"

	"pecaspos/internal/apierror"
	"pecaspos/internal/dto"
	"pecaspos/internal/model"
	"pecaspos/internal/repository"
)

type CategoriaService interface {
	Criar(ctx context.Context, req dto.CriarCategoriaRequest) (*dto.CategoriaResponse, error)
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
	// Excluir removes the categoria, detaching it from every referencing
	// product instead of cascading.
	Excluir(ctx context.Context, id uint) error
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func (s *categoriaService) Criar(ctx context.Context, req dto.CriarCategoriaRequest) (*dto.CategoriaResponse, error) {
	if existing, err := s.repo.FindByNome(ctx, req.Nome); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: categoria %q já existe", apierror.ErrValidation, req.Nome)
	}
	c := &model.Categoria{Nome: req.Nome}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return &dto.CategoriaResponse{ID: c.ID, Nome: c.Nome}, nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	cats, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CategoriaResponse, 0, len(cats))
	for _, c := range cats {
		resp = append(resp, dto.CategoriaResponse{ID: c.ID, Nome: c.Nome})
	}
	return resp, nil
}

func (s *categoriaService) Excluir(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("%w: categoria #%d", apierror.ErrNotFound, id)
	}
	return s.repo.DeleteDetaching(ctx, id)
}
