package service

import (
	"context"
	"fmt"

	"pecaspos/internal/apierror"
	"pecaspos/internal/dto"
	"pecaspos/internal/model"
	"pecaspos/internal/repository"
	"pecaspos/internal/worker"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrcamentoService manages editable quotations and their one-way conversion
// into an immutable Venda plus a register credit.
//
// State machine: aberto --Fechar(forma_pagamento)--> fechado. There is no
// transition out of fechado; item mutation is only allowed while aberto.
type OrcamentoService interface {
	Criar(ctx context.Context, req dto.CriarOrcamentoRequest) (*dto.OrcamentoResponse, error)
	Listar(ctx context.Context) ([]dto.OrcamentoResponse, error)
	Obter(ctx context.Context, id uint) (*dto.OrcamentoResponse, error)
	// AddItem snapshots the product (nome + preço varejo at add time) and
	// recomputes the total.
	AddItem(ctx context.Context, id uint, req dto.AddItemOrcamentoRequest) (*dto.OrcamentoResponse, error)
	// RemoveItem removes by position. Out-of-range indices are tolerated
	// as a no-op so stale client-side indices never error.
	RemoveItem(ctx context.Context, id uint, posicao int) (*dto.OrcamentoResponse, error)
	// Fechar finalizes the quotation: freezes it and atomically emits one
	// Venda and one credit Lancamento. Not idempotent by design — a second
	// call fails without a second emission.
	Fechar(ctx context.Context, id uint, formaPagamento string) (*dto.FecharOrcamentoResponse, error)
	// Enviar enqueues the PDF + email job for a quotation.
	Enviar(ctx context.Context, id uint, email string) error
}

type orcamentoService struct {
	repo       repository.OrcamentoRepository
	produtos   repository.ProdutoRepository
	vendas     repository.VendaRepository
	lancs      repository.LancamentoRepository
	relogio    Relogio
	dispatcher *worker.Dispatcher
}

func NewOrcamentoService(
	repo repository.OrcamentoRepository,
	produtos repository.ProdutoRepository,
	vendas repository.VendaRepository,
	lancs repository.LancamentoRepository,
	relogio Relogio,
	dispatcher *worker.Dispatcher,
) OrcamentoService {
	return &orcamentoService{
		repo:       repo,
		produtos:   produtos,
		vendas:     vendas,
		lancs:      lancs,
		relogio:    relogio,
		dispatcher: dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode with in-memory repos).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Criar / Listar / Obter ───────────────────────────────────────────────────

func (s *orcamentoService) Criar(ctx context.Context, req dto.CriarOrcamentoRequest) (*dto.OrcamentoResponse, error) {
	o := &model.Orcamento{
		DataCriacao:     s.relogio.Hoje(),
		ClienteNome:     req.ClienteNome,
		ClienteTelefone: req.ClienteTelefone,
		MotoModelo:      req.MotoModelo,
		MotoAno:         req.MotoAno,
		Status:          model.OrcamentoAberto,
		Total:           decimal.Zero,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return orcamentoToResponse(o), nil
}

func (s *orcamentoService) Listar(ctx context.Context) ([]dto.OrcamentoResponse, error) {
	orcs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.OrcamentoResponse, 0, len(orcs))
	for i := range orcs {
		resp = append(resp, *orcamentoToResponse(&orcs[i]))
	}
	return resp, nil
}

func (s *orcamentoService) Obter(ctx context.Context, id uint) (*dto.OrcamentoResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: orçamento #%d", apierror.ErrNotFound, id)
	}
	return orcamentoToResponse(o), nil
}

// ── AddItem ──────────────────────────────────────────────────────────────────

func (s *orcamentoService) AddItem(ctx context.Context, id uint, req dto.AddItemOrcamentoRequest) (*dto.OrcamentoResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: orçamento #%d", apierror.ErrNotFound, id)
	}
	if o.Status != model.OrcamentoAberto {
		return nil, fmt.Errorf("%w: orçamento #%d já está fechado", apierror.ErrValidation, id)
	}

	p, err := s.produtos.FindByCodigo(ctx, req.ProdutoCodigo)
	if err != nil {
		return nil, fmt.Errorf("%w: produto #%d", apierror.ErrNotFound, req.ProdutoCodigo)
	}

	qtd := decimal.NewFromInt(int64(req.Quantidade))
	item := &model.OrcamentoItem{
		OrcamentoID:   o.ID,
		Posicao:       len(o.Itens),
		ProdutoCodigo: p.ID,
		Nome:          p.Nome,
		Quantidade:    req.Quantidade,
		PrecoUnitario: p.PrecoVarejo,
		Subtotal:      p.PrecoVarejo.Mul(qtd),
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateItemTx(tx, item); err != nil {
			return err
		}
		o.Total = o.Total.Add(item.Subtotal)
		return s.repo.UpdateTx(tx, o)
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.Obter(ctx, id)
}

// ── RemoveItem ───────────────────────────────────────────────────────────────

func (s *orcamentoService) RemoveItem(ctx context.Context, id uint, posicao int) (*dto.OrcamentoResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: orçamento #%d", apierror.ErrNotFound, id)
	}
	if o.Status != model.OrcamentoAberto {
		return nil, fmt.Errorf("%w: orçamento #%d já está fechado", apierror.ErrValidation, id)
	}

	// Stale client-side index — tolerate, don't error.
	if posicao < 0 || posicao >= len(o.Itens) {
		return orcamentoToResponse(o), nil
	}
	removido := o.Itens[posicao]

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DeleteItemTx(tx, o.ID, posicao); err != nil {
			return err
		}
		if err := s.repo.ReindexItensTx(tx, o.ID); err != nil {
			return err
		}
		o.Total = o.Total.Sub(removido.Subtotal)
		return s.repo.UpdateTx(tx, o)
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.Obter(ctx, id)
}

// ── Fechar ───────────────────────────────────────────────────────────────────

func (s *orcamentoService) Fechar(ctx context.Context, id uint, formaPagamento string) (*dto.FecharOrcamentoResponse, error) {
	if formaPagamento == "" {
		return nil, fmt.Errorf("%w: forma de pagamento é obrigatória", apierror.ErrValidation)
	}

	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: orçamento #%d", apierror.ErrNotFound, id)
	}
	if o.Status == model.OrcamentoFechado {
		return nil, fmt.Errorf("%w: orçamento #%d já foi fechado", apierror.ErrValidation, id)
	}

	hoje := s.relogio.Hoje()
	venda := &model.Venda{
		Data:           hoje,
		FormaPagamento: formaPagamento,
		Observacoes:    fmt.Sprintf("Orçamento #%d fechado", o.ID),
		Total:          o.Total,
	}
	for _, it := range o.Itens {
		venda.Itens = append(venda.Itens, model.VendaItem{
			Posicao:       it.Posicao,
			ProdutoCodigo: it.ProdutoCodigo,
			Nome:          it.Nome,
			Quantidade:    it.Quantidade,
			PrecoUnitario: it.PrecoUnitario,
			Subtotal:      it.Subtotal,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		o.Status = model.OrcamentoFechado
		o.FormaPagamento = formaPagamento
		if err := s.repo.UpdateTx(tx, o); err != nil {
			return err
		}
		if err := s.vendas.CreateTx(tx, venda); err != nil {
			return err
		}
		lanc := &model.Lancamento{
			Data:      hoje,
			Tipo:      model.LancamentoEntrada,
			Descricao: fmt.Sprintf("Orçamento #%d", o.ID),
			Valor:     o.Total,
			VendaID:   &venda.ID,
		}
		return s.lancs.CreateTx(tx, lanc)
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.FecharOrcamentoResponse{
		Orcamento: *orcamentoToResponse(o),
		VendaID:   venda.ID,
	}, nil
}

// ── Enviar ───────────────────────────────────────────────────────────────────

func (s *orcamentoService) Enviar(ctx context.Context, id uint, email string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("%w: orçamento #%d", apierror.ErrNotFound, id)
	}
	if s.dispatcher == nil {
		return fmt.Errorf("%w: envio de orçamentos indisponível", apierror.ErrDegraded)
	}
	return s.dispatcher.EnqueueOrcamentoEmail(ctx, worker.OrcamentoEmailPayload{
		OrcamentoID: id,
		Email:       email,
	})
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func orcamentoToResponse(o *model.Orcamento) *dto.OrcamentoResponse {
	itens := make([]dto.ItemOrcamentoResponse, 0, len(o.Itens))
	for _, it := range o.Itens {
		itens = append(itens, dto.ItemOrcamentoResponse{
			Posicao:       it.Posicao,
			ProdutoCodigo: it.ProdutoCodigo,
			Nome:          it.Nome,
			Quantidade:    it.Quantidade,
			PrecoUnitario: it.PrecoUnitario,
			Subtotal:      it.Subtotal,
		})
	}
	return &dto.OrcamentoResponse{
		ID:              o.ID,
		DataCriacao:     o.DataCriacao,
		ClienteNome:     o.ClienteNome,
		ClienteTelefone: o.ClienteTelefone,
		MotoModelo:      o.MotoModelo,
		MotoAno:         o.MotoAno,
		Status:          o.Status,
		Total:           o.Total,
		FormaPagamento:  o.FormaPagamento,
		Itens:           itens,
	}
}
