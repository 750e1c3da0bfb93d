package dto

import "time"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CriarClienteRequest struct {
	Nome     string  `json:"nome"     validate:"required,min=3,max=100"`
	Email    string  `json:"email"    validate:"required,email"`
	Idade    *int    `json:"idade"    validate:"omitempty,gte=0,lte=150"`
	CPF      string  `json:"cpf"      validate:"required,len=11"`
	CNPJ     *string `json:"cnpj"     validate:"omitempty,len=14"`
	CEP      *string `json:"cep"      validate:"omitempty,len=8"`
	Endereco *string `json:"endereco"`
	Telefone *string `json:"telefone" validate:"omitempty,max=15"`
}

// AtualizarClienteRequest is a partial update: only non-nil fields are applied.
// CPF, CNPJ and CEP are not updatable.
type AtualizarClienteRequest struct {
	Nome     *string `json:"nome"     validate:"omitempty,min=3,max=100"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Idade    *int    `json:"idade"    validate:"omitempty,gte=0,lte=150"`
	Telefone *string `json:"telefone" validate:"omitempty,max=15"`
	Endereco *string `json:"endereco"`
}

type AtualizarEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID          uint      `json:"id"`
	Nome        string    `json:"nome"`
	Email       string    `json:"email"`
	Idade       *int      `json:"idade"`
	CPF         string    `json:"cpf"`
	CNPJ        *string   `json:"cnpj"`
	CEP         *string   `json:"cep"`
	Endereco    *string   `json:"endereco"`
	Telefone    *string   `json:"telefone"`
	DataCriacao time.Time `json:"data_criacao"`
}

type TotalClientesResponse struct {
	TotalClientes int64 `json:"total_clientes"`
}
