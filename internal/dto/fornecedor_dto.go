package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CriarFornecedorRequest struct {
	Nome     string  `json:"nome"     validate:"required,min=3,max=100"`
	Contato  *string `json:"contato"`
	Telefone *string `json:"telefone" validate:"omitempty,max=15"`
	Email    string  `json:"email"    validate:"required,email"`
	Endereco *string `json:"endereco"`
}

type AtualizarFornecedorRequest struct {
	Nome     *string `json:"nome"     validate:"omitempty,min=3,max=100"`
	Contato  *string `json:"contato"`
	Telefone *string `json:"telefone" validate:"omitempty,max=15"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Endereco *string `json:"endereco"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type FornecedorResponse struct {
	ID       uint    `json:"id"`
	Nome     string  `json:"nome"`
	Contato  *string `json:"contato"`
	Telefone *string `json:"telefone"`
	Email    string  `json:"email"`
	Endereco *string `json:"endereco"`
}
