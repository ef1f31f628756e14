package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVendaRequest struct {
	ProdutoCodigo uint `json:"produto_codigo" validate:"required,min=1"`
	Quantidade    int  `json:"quantidade"     validate:"required,min=1"`
}

type RegistrarVendaRequest struct {
	FormaPagamento string             `json:"forma_pagamento" validate:"required"`
	Observacoes    string             `json:"observacoes"`
	Itens          []ItemVendaRequest `json:"itens" validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemVendaResponse struct {
	ProdutoCodigo uint            `json:"produto_codigo"`
	Nome          string          `json:"nome"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

type VendaResponse struct {
	ID             uint                `json:"id"`
	Data           string              `json:"data"`
	FormaPagamento string              `json:"forma_pagamento"`
	Observacoes    string              `json:"observacoes,omitempty"`
	Total          decimal.Decimal     `json:"total"`
	Itens          []ItemVendaResponse `json:"itens"`
	CreatedAt      string              `json:"created_at"`
}

// MovimentacoesDiaResponse groups today's movements by tab. Degradado is set
// when storage was unavailable during the read: lists come back empty and the
// UI shows an advisory instead of failing the whole screen.
type MovimentacoesDiaResponse struct {
	Vendas    []VendaResponse      `json:"vendas"`
	Entradas  []LancamentoResponse `json:"entradas"`
	Saidas    []LancamentoResponse `json:"saidas"`
	Degradado bool                 `json:"degradado,omitempty"`
	Aviso     string               `json:"aviso,omitempty"`
}
