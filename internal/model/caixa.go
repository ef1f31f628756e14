package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Caixa is the per-calendar-day cash drawer record. One row per date.
//
// Invariants:
//   - at most one row per data (unique index);
//   - in steady state at most one row has Aberto=true, and it is today's —
//     the rollover pass closes anything left open from prior dates.
//
// Balances are never stored: the day's closing balance is always derived
// from SaldoInicial plus the day's vendas and lançamentos.
type Caixa struct {
	ID           uint            `gorm:"primaryKey"`
	Data         string          `gorm:"type:varchar(10);uniqueIndex;not null"`
	SaldoInicial decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Aberto       bool            `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Caixa) TableName() string { return "caixas" }
