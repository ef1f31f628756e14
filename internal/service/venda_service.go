package service

import (
	"context"
	"fmt"

	"pecaspos/internal/apierror"
	"pecaspos/internal/dto"
	"pecaspos/internal/model"
	"pecaspos/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VendaService handles the direct sale path (outside quotations) and the
// day's movement listing.
type VendaService interface {
	// Registrar creates an immutable Venda from submitted line items,
	// emits the matching credit Lancamento and decrements the stock of
	// every resolvable product (floored at zero). Unresolvable product
	// references are skipped silently.
	Registrar(ctx context.Context, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error)
	Obter(ctx context.Context, id uint) (*dto.VendaResponse, error)
	// MovimentacoesDia lists today's vendas and manual lançamentos. When
	// storage is unavailable it degrades to empty lists plus an advisory
	// instead of failing the whole screen.
	MovimentacoesDia(ctx context.Context) (*dto.MovimentacoesDiaResponse, error)
}

type vendaService struct {
	repo     repository.VendaRepository
	produtos repository.ProdutoRepository
	lancs    repository.LancamentoRepository
	relogio  Relogio
}

func NewVendaService(
	repo repository.VendaRepository,
	produtos repository.ProdutoRepository,
	lancs repository.LancamentoRepository,
	relogio Relogio,
) VendaService {
	return &vendaService{repo: repo, produtos: produtos, lancs: lancs, relogio: relogio}
}

// ── Registrar ────────────────────────────────────────────────────────────────

func (s *vendaService) Registrar(ctx context.Context, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error) {
	if len(req.Itens) == 0 {
		return nil, fmt.Errorf("%w: venda sem itens", apierror.ErrValidation)
	}

	hoje := s.relogio.Hoje()

	// Resolve products outside the tx; snapshots are taken now and never
	// re-read. Missing codes are dropped from the sale, matching the
	// tolerant fulfillment behavior of the register screen.
	type itemResolvido struct {
		codigo     uint
		nome       string
		preco      decimal.Decimal
		quantidade int
		subtotal   decimal.Decimal
	}
	var resolvidos []itemResolvido
	total := decimal.Zero
	for _, it := range req.Itens {
		p, err := s.produtos.FindByCodigo(ctx, it.ProdutoCodigo)
		if err != nil {
			log.Warn().Uint("produto_codigo", it.ProdutoCodigo).
				Msg("venda: produto inexistente ignorado")
			continue
		}
		subtotal := p.PrecoVarejo.Mul(decimal.NewFromInt(int64(it.Quantidade)))
		total = total.Add(subtotal)
		resolvidos = append(resolvidos, itemResolvido{
			codigo:     p.ID,
			nome:       p.Nome,
			preco:      p.PrecoVarejo,
			quantidade: it.Quantidade,
			subtotal:   subtotal,
		})
	}
	if len(resolvidos) == 0 {
		return nil, fmt.Errorf("%w: nenhum item com produto válido", apierror.ErrValidation)
	}

	venda := &model.Venda{
		Data:           hoje,
		FormaPagamento: req.FormaPagamento,
		Observacoes:    req.Observacoes,
		Total:          total,
	}
	for i, r := range resolvidos {
		venda.Itens = append(venda.Itens, model.VendaItem{
			Posicao:       i,
			ProdutoCodigo: r.codigo,
			Nome:          r.nome,
			Quantidade:    r.quantidade,
			PrecoUnitario: r.preco,
			Subtotal:      r.subtotal,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, venda); err != nil {
			return err
		}
		lanc := &model.Lancamento{
			Data:      hoje,
			Tipo:      model.LancamentoEntrada,
			Descricao: "Venda",
			Valor:     total,
			VendaID:   &venda.ID,
		}
		if err := s.lancs.CreateTx(tx, lanc); err != nil {
			return err
		}
		for _, r := range resolvidos {
			if err := s.produtos.BaixarEstoqueTx(tx, r.codigo, r.quantidade); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return vendaToResponse(venda), nil
}

// ── Obter ────────────────────────────────────────────────────────────────────

func (s *vendaService) Obter(ctx context.Context, id uint) (*dto.VendaResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: venda #%d", apierror.ErrNotFound, id)
	}
	return vendaToResponse(v), nil
}

// ── MovimentacoesDia ─────────────────────────────────────────────────────────

func (s *vendaService) MovimentacoesDia(ctx context.Context) (*dto.MovimentacoesDiaResponse, error) {
	hoje := s.relogio.Hoje()
	resp := &dto.MovimentacoesDiaResponse{
		Vendas:   []dto.VendaResponse{},
		Entradas: []dto.LancamentoResponse{},
		Saidas:   []dto.LancamentoResponse{},
	}

	vendas, vErr := s.repo.ListByData(ctx, hoje)
	lancs, lErr := s.lancs.ListByData(ctx, hoje)
	if vErr != nil || lErr != nil {
		// Degraded read: the screen still renders, with an advisory.
		log.Warn().AnErr("vendas", vErr).AnErr("lancamentos", lErr).
			Msg("movimentações: leitura degradada")
		resp.Degradado = true
		resp.Aviso = "Erro ao carregar movimentações. O banco pode estar inicializando, tente recarregar."
		return resp, nil
	}

	for i := range vendas {
		resp.Vendas = append(resp.Vendas, *vendaToResponse(&vendas[i]))
	}
	for _, l := range lancs {
		if l.VendaID != nil {
			// Sale-linked entries already appear in the vendas tab.
			continue
		}
		lr := dto.LancamentoResponse{
			ID:        l.ID,
			Data:      l.Data,
			Tipo:      l.Tipo,
			Descricao: l.Descricao,
			Valor:     l.Valor,
		}
		if l.Tipo == model.LancamentoSaida {
			resp.Saidas = append(resp.Saidas, lr)
		} else {
			resp.Entradas = append(resp.Entradas, lr)
		}
	}
	return resp, nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func vendaToResponse(v *model.Venda) *dto.VendaResponse {
	itens := make([]dto.ItemVendaResponse, 0, len(v.Itens))
	for _, it := range v.Itens {
		itens = append(itens, dto.ItemVendaResponse{
			ProdutoCodigo: it.ProdutoCodigo,
			Nome:          it.Nome,
			Quantidade:    it.Quantidade,
			PrecoUnitario: it.PrecoUnitario,
			Subtotal:      it.Subtotal,
		})
	}
	return &dto.VendaResponse{
		ID:             v.ID,
		Data:           v.Data,
		FormaPagamento: v.FormaPagamento,
		Observacoes:    v.Observacoes,
		Total:          v.Total,
		Itens:          itens,
		CreatedAt:      v.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
