package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CriarCategoriaRequest struct {
	Nome string `json:"nome" validate:"required,min=2,max=120"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoriaResponse struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}
