package model

import "time"

// Usuario is an operator account. The system is single-role: every active
// user is an "operador" with full access.
type Usuario struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Nome         string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`
	Ativo        bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Usuario) TableName() string { return "usuarios" }
