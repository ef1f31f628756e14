package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AbrirCaixaRequest struct {
	SaldoInicial decimal.Decimal `json:"saldo_inicial" validate:"min=0"`
}

type LancamentoManualRequest struct {
	Tipo      string          `json:"tipo"      validate:"required,oneof=entrada saida"`
	Descricao string          `json:"descricao" validate:"required,min=3"`
	Valor     decimal.Decimal `json:"valor"     validate:"required,gt=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// CaixaDiaResponse is the reconciled view of a single day's register.
// SaldoAtual is always derived, never read from storage.
type CaixaDiaResponse struct {
	Data          string          `json:"data"`
	Aberto        bool            `json:"aberto"`
	SaldoInicial  decimal.Decimal `json:"saldo_inicial"`
	TotalVendas   decimal.Decimal `json:"total_vendas"`
	TotalEntradas decimal.Decimal `json:"total_entradas"`
	TotalSaidas   decimal.Decimal `json:"total_saidas"`
	SaldoAtual    decimal.Decimal `json:"saldo_atual"`
}

// ResumoCaixaResponse is one row of the newest-first register history.
type ResumoCaixaResponse struct {
	Data          string          `json:"data"`
	SaldoInicial  decimal.Decimal `json:"saldo_inicial"`
	TotalVendas   decimal.Decimal `json:"total_vendas"`
	TotalEntradas decimal.Decimal `json:"total_entradas"`
	TotalSaidas   decimal.Decimal `json:"total_saidas"`
	SaldoFinal    decimal.Decimal `json:"saldo_final"`
	Aberto        bool            `json:"aberto"`
}

type LancamentoResponse struct {
	ID        uint            `json:"id"`
	Data      string          `json:"data"`
	Tipo      string          `json:"tipo"`
	Descricao string          `json:"descricao"`
	Valor     decimal.Decimal `json:"valor"`
	VendaID   *uint           `json:"venda_id,omitempty"`
}
