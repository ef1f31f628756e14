package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto is a catalog item. The sequential ID doubles as the product code
// shown on screens and tickets (formatted "#%03d").
type Produto struct {
	ID           uint            `gorm:"primaryKey"`
	Nome         string          `gorm:"index;not null"`
	Custo        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PrecoVarejo  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PrecoAtacado decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	// Estoque is decremented on sale fulfillment, floored at zero.
	Estoque     int   `gorm:"not null;default:0"`
	CategoriaID *uint `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
}

// TableName overrides GORM's default pluralization for Portuguese names.
func (Produto) TableName() string { return "produtos" }
