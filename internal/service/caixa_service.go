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
)

// CaixaService is the register reconciliation engine: it derives a day's
// balance from its opening balance plus same-day vendas and lançamentos,
// and governs the open/close/reopen transitions and the day rollover.
//
// Balances are never stored. The only persisted mutable state is
// saldo_inicial and the aberto flag, so SaldoAtual is pure and idempotent.
type CaixaService interface {
	// ObterOuCriar returns the register row for the date, lazily creating
	// it closed with opening balance zero.
	ObterOuCriar(ctx context.Context, data string) (*model.Caixa, error)
	// Abrir creates or overwrites the day's register and opens it.
	// Idempotent: last write wins on saldo_inicial.
	Abrir(ctx context.Context, data string, saldoInicial decimal.Decimal) (*dto.CaixaDiaResponse, error)
	// Fechar closes the day's register; missing row is a no-op.
	Fechar(ctx context.Context, data string) error
	// Reabrir reopens a register. Only today's date may be reopened; a
	// past date fails visibly and stays closed.
	Reabrir(ctx context.Context, data string) (*dto.CaixaDiaResponse, error)
	// SaldoAtual derives the balance for the date. Query-only.
	SaldoAtual(ctx context.Context, data string) (decimal.Decimal, error)
	// Dia returns the reconciled view of one day.
	Dia(ctx context.Context, data string) (*dto.CaixaDiaResponse, error)
	// Rollover closes every register left open from a prior date and
	// guarantees today's row exists. It never fails the caller: storage
	// errors are swallowed and logged as warnings.
	Rollover(ctx context.Context)
	// Historico lists per-day summaries, newest date first.
	Historico(ctx context.Context) ([]dto.ResumoCaixaResponse, error)
	// RegistrarLancamento records an immutable manual cash movement for today.
	RegistrarLancamento(ctx context.Context, req dto.LancamentoManualRequest) error

	Hoje() string
}

type caixaService struct {
	repo     repository.CaixaRepository
	lancRepo repository.LancamentoRepository
	vendas   repository.VendaRepository
	relogio  Relogio
}

func NewCaixaService(
	repo repository.CaixaRepository,
	lancRepo repository.LancamentoRepository,
	vendas repository.VendaRepository,
	relogio Relogio,
) CaixaService {
	return &caixaService{repo: repo, lancRepo: lancRepo, vendas: vendas, relogio: relogio}
}

func (s *caixaService) Hoje() string { return s.relogio.Hoje() }

// ── ObterOuCriar ─────────────────────────────────────────────────────────────

func (s *caixaService) ObterOuCriar(ctx context.Context, data string) (*model.Caixa, error) {
	if c, err := s.repo.FindByData(ctx, data); err == nil {
		return c, nil
	}
	c := &model.Caixa{Data: data, SaldoInicial: decimal.Zero, Aberto: false}
	if err := s.repo.Create(ctx, c); err != nil {
		// Lost the race against a concurrent create — re-read.
		if existing, findErr := s.repo.FindByData(ctx, data); findErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return c, nil
}

// ── Abrir ────────────────────────────────────────────────────────────────────

func (s *caixaService) Abrir(ctx context.Context, data string, saldoInicial decimal.Decimal) (*dto.CaixaDiaResponse, error) {
	c, err := s.repo.FindByData(ctx, data)
	if err != nil {
		c = &model.Caixa{Data: data, SaldoInicial: saldoInicial, Aberto: true}
		if err := s.repo.Create(ctx, c); err != nil {
			return nil, err
		}
		return s.Dia(ctx, data)
	}

	c.SaldoInicial = saldoInicial
	c.Aberto = true
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return s.Dia(ctx, data)
}

// ── Fechar ───────────────────────────────────────────────────────────────────

func (s *caixaService) Fechar(ctx context.Context, data string) error {
	c, err := s.repo.FindByData(ctx, data)
	if err != nil {
		// No register for the date — deliberate no-op, the screen always
		// offers "abrir caixa" first.
		return nil
	}
	c.Aberto = false
	return s.repo.Update(ctx, c)
}

// ── Reabrir ──────────────────────────────────────────────────────────────────

func (s *caixaService) Reabrir(ctx context.Context, data string) (*dto.CaixaDiaResponse, error) {
	hoje := s.relogio.Hoje()
	if data != hoje {
		return nil, fmt.Errorf("%w: caixa de %s não pode ser reaberto, consulte em fechamentos", apierror.ErrValidation, data)
	}
	c, err := s.repo.FindByData(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%w: ainda não existe caixa para hoje, abra o caixa primeiro", apierror.ErrValidation)
	}
	if !c.Aberto {
		c.Aberto = true
		if err := s.repo.Update(ctx, c); err != nil {
			return nil, err
		}
	}
	return s.Dia(ctx, data)
}

// ── SaldoAtual / Dia ─────────────────────────────────────────────────────────

func (s *caixaService) SaldoAtual(ctx context.Context, data string) (decimal.Decimal, error) {
	dia, err := s.Dia(ctx, data)
	if err != nil {
		return decimal.Zero, err
	}
	return dia.SaldoAtual, nil
}

func (s *caixaService) Dia(ctx context.Context, data string) (*dto.CaixaDiaResponse, error) {
	saldoInicial := decimal.Zero
	aberto := false
	if c, err := s.repo.FindByData(ctx, data); err == nil {
		saldoInicial = c.SaldoInicial
		aberto = c.Aberto
	}

	totalVendas, err := s.vendas.SomarTotalPorData(ctx, data)
	if err != nil {
		return nil, err
	}
	soma, err := s.lancRepo.SomarPorData(ctx, data)
	if err != nil {
		return nil, err
	}

	return &dto.CaixaDiaResponse{
		Data:          data,
		Aberto:        aberto,
		SaldoInicial:  saldoInicial,
		TotalVendas:   totalVendas,
		TotalEntradas: soma.EntradasManuais,
		TotalSaidas:   soma.Saidas,
		SaldoAtual: saldoInicial.
			Add(totalVendas).
			Add(soma.EntradasManuais).
			Sub(soma.Saidas),
	}, nil
}

// ── Rollover ─────────────────────────────────────────────────────────────────

// Rollover runs at the top of every interaction, so it must be cheap,
// idempotent and must never block unrelated request handling.
func (s *caixaService) Rollover(ctx context.Context) {
	hoje := s.relogio.Hoje()

	fechados, err := s.repo.FecharAnteriores(ctx, hoje)
	if err != nil {
		log.Warn().Err(err).Msg("caixa: rollover de dias anteriores falhou")
		return
	}
	if fechados > 0 {
		log.Info().Int64("caixas_fechados", fechados).Str("hoje", hoje).
			Msg("caixa: dias anteriores fechados pelo rollover")
	}

	// Guarantee today's row so the register screen is always queryable.
	if _, err := s.ObterOuCriar(ctx, hoje); err != nil {
		log.Warn().Err(err).Str("hoje", hoje).Msg("caixa: criação do dia corrente falhou")
	}
}

// ── Historico ────────────────────────────────────────────────────────────────

func (s *caixaService) Historico(ctx context.Context) ([]dto.ResumoCaixaResponse, error) {
	caixas, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	resumo := make([]dto.ResumoCaixaResponse, 0, len(caixas))
	for _, c := range caixas {
		dia, err := s.Dia(ctx, c.Data)
		if err != nil {
			return nil, err
		}
		resumo = append(resumo, dto.ResumoCaixaResponse{
			Data:          c.Data,
			SaldoInicial:  c.SaldoInicial,
			TotalVendas:   dia.TotalVendas,
			TotalEntradas: dia.TotalEntradas,
			TotalSaidas:   dia.TotalSaidas,
			SaldoFinal:    dia.SaldoAtual,
			Aberto:        c.Aberto,
		})
	}
	return resumo, nil
}

// ── RegistrarLancamento ──────────────────────────────────────────────────────

func (s *caixaService) RegistrarLancamento(ctx context.Context, req dto.LancamentoManualRequest) error {
	l := &model.Lancamento{
		Data:      s.relogio.Hoje(),
		Tipo:      req.Tipo,
		Descricao: req.Descricao,
		Valor:     req.Valor,
	}
	return s.lancRepo.Create(ctx, l)
}
