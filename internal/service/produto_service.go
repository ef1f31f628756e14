package service

import (
	"context"
	"fmt"

	"pecaspos/internal/apierror"
	"pecaspos/internal/dto"
	"pecaspos/internal/model"
	"pecaspos/internal/repository"
)

type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	Obter(ctx context.Context, codigo uint) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context, filter dto.ProdutoFilter) ([]dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, codigo uint, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
	Excluir(ctx context.Context, codigo uint) error
}

type produtoService struct {
	repo repository.ProdutoRepository
}

func NewProdutoService(repo repository.ProdutoRepository) ProdutoService {
	return &produtoService{repo: repo}
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	p := &model.Produto{
		Nome:         req.Nome,
		Custo:        req.Custo,
		PrecoVarejo:  req.PrecoVarejo,
		PrecoAtacado: req.PrecoAtacado,
		Estoque:      req.Estoque,
		CategoriaID:  req.CategoriaID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) Obter(ctx context.Context, codigo uint) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		return nil, fmt.Errorf("%w: produto #%d", apierror.ErrNotFound, codigo)
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) Listar(ctx context.Context, filter dto.ProdutoFilter) ([]dto.ProdutoResponse, error) {
	produtos, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		resp = append(resp, *produtoToResponse(&produtos[i]))
	}
	return resp, nil
}

func (s *produtoService) Atualizar(ctx context.Context, codigo uint, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		return nil, fmt.Errorf("%w: produto #%d", apierror.ErrNotFound, codigo)
	}

	if req.Nome != nil {
		p.Nome = *req.Nome
	}
	if req.Custo != nil {
		p.Custo = *req.Custo
	}
	if req.PrecoVarejo != nil {
		p.PrecoVarejo = *req.PrecoVarejo
	}
	if req.PrecoAtacado != nil {
		p.PrecoAtacado = *req.PrecoAtacado
	}
	if req.Estoque != nil {
		p.Estoque = *req.Estoque
	}
	if req.CategoriaID != nil {
		p.CategoriaID = req.CategoriaID
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) Excluir(ctx context.Context, codigo uint) error {
	// Missing product is a deliberate no-op on the delete path.
	return s.repo.Delete(ctx, codigo)
}

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	resp := &dto.ProdutoResponse{
		Codigo:       p.ID,
		Nome:         p.Nome,
		Custo:        p.Custo,
		PrecoVarejo:  p.PrecoVarejo,
		PrecoAtacado: p.PrecoAtacado,
		Estoque:      p.Estoque,
		CategoriaID:  p.CategoriaID,
	}
	if p.Categoria != nil {
		resp.Categoria = p.Categoria.Nome
	}
	return resp
}
