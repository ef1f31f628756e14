package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de lançamento.
const (
	LancamentoEntrada = "entrada"
	LancamentoSaida   = "saida"
)

// Lancamento is an immutable cash movement in the register ledger.
// Lançamentos are NEVER modified or deleted after creation.
//
// VendaID links the entry to the sale that produced it; entries with a
// non-nil VendaID are the cash counterpart of a Venda and are excluded
// from the manual-credit sum when reconciling the day (the sale total is
// already counted from the vendas table).
type Lancamento struct {
	ID        uint            `gorm:"primaryKey"`
	Data      string          `gorm:"type:varchar(10);index;not null"`
	Tipo      string          `gorm:"type:varchar(10);not null"` // entrada | saida
	Descricao string          `gorm:"type:varchar(200)"`
	Valor     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	VendaID   *uint           `gorm:"index"`
	CreatedAt time.Time
}

func (Lancamento) TableName() string { return "lancamentos" }
