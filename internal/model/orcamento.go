package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de orçamento.
const (
	OrcamentoAberto  = "aberto"
	OrcamentoFechado = "fechado"
)

// Orcamento is an editable quotation draft. While aberto, its item list is
// freely mutable and Total is recomputed on every item change. Fechar is a
// one-way transition that freezes the record and emits a Venda plus a
// credit Lancamento.
type Orcamento struct {
	ID              uint   `gorm:"primaryKey"`
	DataCriacao     string `gorm:"type:varchar(10);not null"`
	ClienteNome     string `gorm:"type:varchar(200)"`
	ClienteTelefone string `gorm:"type:varchar(50)"`
	MotoModelo      string `gorm:"type:varchar(120)"`
	MotoAno         string `gorm:"type:varchar(20)"`
	Status          string `gorm:"type:varchar(20);not null;default:'aberto'"`
	// Total is derived: always Σ(quantidade × preco_unitario) over Itens.
	Total decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	// FormaPagamento is set only when the orçamento is closed.
	FormaPagamento string `gorm:"type:varchar(50)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Itens []OrcamentoItem `gorm:"foreignKey:OrcamentoID"`
}

func (Orcamento) TableName() string { return "orcamentos" }

// OrcamentoItem snapshots a product at add time: nome and preço are
// captured once and not re-read when the catalog changes.
type OrcamentoItem struct {
	ID          uint `gorm:"primaryKey"`
	OrcamentoID uint `gorm:"index;not null"`
	// Posicao is the stable removal index exposed to the client.
	Posicao       int             `gorm:"not null"`
	ProdutoCodigo uint            `gorm:"not null"`
	Nome          string          `gorm:"not null"`
	Quantidade    int             `gorm:"not null"`
	PrecoUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (OrcamentoItem) TableName() string { return "orcamento_itens" }
