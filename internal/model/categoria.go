package model

import "time"

// Categoria classifies products. Deleting a categoria detaches it from
// referencing products (categoria_id set to NULL), never cascades.
type Categoria struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Categoria) TableName() string { return "categorias" }
