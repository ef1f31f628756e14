package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venda is an immutable sale record. The only mutation-free exception is
// creation itself: either the direct sale path or the orçamento close path.
// Data is day-granular (YYYY-MM-DD in the configured timezone).
type Venda struct {
	ID             uint            `gorm:"primaryKey"`
	Data           string          `gorm:"type:varchar(10);index;not null"`
	FormaPagamento string          `gorm:"type:varchar(50)"`
	Observacoes    string          `gorm:"type:text"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt      time.Time

	Itens []VendaItem `gorm:"foreignKey:VendaID"`
}

func (Venda) TableName() string { return "vendas" }

// VendaItem is a line-item snapshot: name and unit price are captured at
// sale time and never re-read from the catalog.
type VendaItem struct {
	ID      uint `gorm:"primaryKey"`
	VendaID uint `gorm:"index;not null"`
	// Posicao preserves the order items were added in.
	Posicao int `gorm:"not null"`
	// ProdutoCodigo is the catalog code at sale time; the product row may
	// no longer exist.
	ProdutoCodigo uint            `gorm:"not null"`
	Nome          string          `gorm:"not null"`
	Quantidade    int             `gorm:"not null"`
	PrecoUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (VendaItem) TableName() string { return "venda_itens" }
