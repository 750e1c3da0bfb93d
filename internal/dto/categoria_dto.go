package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CriarCategoriaRequest struct {
	Nome      string  `json:"nome"      validate:"required,min=3,max=50"`
	Descricao *string `json:"descricao"`
}

type AtualizarCategoriaRequest struct {
	Nome      *string `json:"nome"      validate:"omitempty,min=3,max=50"`
	Descricao *string `json:"descricao"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoriaResponse struct {
	ID        uint    `json:"id"`
	Nome      string  `json:"nome"`
	Descricao *string `json:"descricao"`
}
