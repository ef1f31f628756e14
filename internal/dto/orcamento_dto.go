package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarOrcamentoRequest struct {
	ClienteNome     string `json:"cliente_nome"     validate:"required,min=2,max=200"`
	ClienteTelefone string `json:"cliente_telefone" validate:"max=50"`
	MotoModelo      string `json:"moto_modelo"      validate:"max=120"`
	MotoAno         string `json:"moto_ano"         validate:"max=20"`
}

type AddItemOrcamentoRequest struct {
	ProdutoCodigo uint `json:"produto_codigo" validate:"required,min=1"`
	Quantidade    int  `json:"quantidade"     validate:"required,min=1"`
}

type FecharOrcamentoRequest struct {
	FormaPagamento string `json:"forma_pagamento" validate:"required"`
}

type EnviarOrcamentoRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemOrcamentoResponse struct {
	Posicao       int             `json:"posicao"`
	ProdutoCodigo uint            `json:"produto_codigo"`
	Nome          string          `json:"nome"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

type OrcamentoResponse struct {
	ID              uint                    `json:"id"`
	DataCriacao     string                  `json:"data_criacao"`
	ClienteNome     string                  `json:"cliente_nome"`
	ClienteTelefone string                  `json:"cliente_telefone,omitempty"`
	MotoModelo      string                  `json:"moto_modelo,omitempty"`
	MotoAno         string                  `json:"moto_ano,omitempty"`
	Status          string                  `json:"status"`
	Total           decimal.Decimal         `json:"total"`
	FormaPagamento  string                  `json:"forma_pagamento,omitempty"`
	Itens           []ItemOrcamentoResponse `json:"itens"`
}

// FecharOrcamentoResponse reports what the close emitted.
type FecharOrcamentoResponse struct {
	Orcamento OrcamentoResponse `json:"orcamento"`
	VendaID   uint              `json:"venda_id"`
}
