package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ───────────────────────────────────────────────────────────

// ProdutoFilter is bound from the query string of GET /v1/produtos.
// Q matches the numeric code exactly or the name as a substring.
type ProdutoFilter struct {
	Q           string `form:"q"`
	CategoriaID uint   `form:"categoria_id"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarProdutoRequest struct {
	Nome         string          `json:"nome"          validate:"required,min=2,max=200"`
	Custo        decimal.Decimal `json:"custo"         validate:"min=0"`
	PrecoVarejo  decimal.Decimal `json:"preco_varejo"  validate:"min=0"`
	PrecoAtacado decimal.Decimal `json:"preco_atacado" validate:"min=0"`
	Estoque      int             `json:"estoque"       validate:"min=0"`
	CategoriaID  *uint           `json:"categoria_id"`
}

type AtualizarProdutoRequest struct {
	Nome         *string          `json:"nome"          validate:"omitempty,min=2,max=200"`
	Custo        *decimal.Decimal `json:"custo"         validate:"omitempty,min=0"`
	PrecoVarejo  *decimal.Decimal `json:"preco_varejo"  validate:"omitempty,min=0"`
	PrecoAtacado *decimal.Decimal `json:"preco_atacado" validate:"omitempty,min=0"`
	Estoque      *int             `json:"estoque"       validate:"omitempty,min=0"`
	CategoriaID  *uint            `json:"categoria_id"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProdutoResponse struct {
	Codigo       uint            `json:"codigo"`
	Nome         string          `json:"nome"`
	Custo        decimal.Decimal `json:"custo"`
	PrecoVarejo  decimal.Decimal `json:"preco_varejo"`
	PrecoAtacado decimal.Decimal `json:"preco_atacado"`
	Estoque      int             `json:"estoque"`
	CategoriaID  *uint           `json:"categoria_id,omitempty"`
	Categoria    string          `json:"categoria,omitempty"`
}

// PrecoResponse is the cached price-lookup payload for GET /v1/precos/:codigo.
type PrecoResponse struct {
	Codigo       uint            `json:"codigo"`
	Nome         string          `json:"nome"`
	PrecoVarejo  decimal.Decimal `json:"preco_varejo"`
	PrecoAtacado decimal.Decimal `json:"preco_atacado"`
	Estoque      int             `json:"estoque"`
}
