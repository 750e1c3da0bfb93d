package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CriarFuncionarioRequest struct {
	Nome     string           `json:"nome"     validate:"required,min=3,max=100"`
	Cargo    *string          `json:"cargo"`
	Salario  *decimal.Decimal `json:"salario"  validate:"omitempty,gt=0"`
	Telefone *string          `json:"telefone" validate:"omitempty,max=15"`
	Email    string           `json:"email"    validate:"required,email"`
}

type AtualizarFuncionarioRequest struct {
	Nome     *string          `json:"nome"     validate:"omitempty,min=3,max=100"`
	Cargo    *string          `json:"cargo"`
	Salario  *decimal.Decimal `json:"salario"  validate:"omitempty,gt=0"`
	Telefone *string          `json:"telefone" validate:"omitempty,max=15"`
	Email    *string          `json:"email"    validate:"omitempty,email"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type FuncionarioResponse struct {
	ID              uint             `json:"id"`
	Nome            string           `json:"nome"`
	Cargo           *string          `json:"cargo"`
	Salario         *decimal.Decimal `json:"salario"`
	Telefone        *string          `json:"telefone"`
	Email           string           `json:"email"`
	DataContratacao time.Time        `json:"data_contratacao"`
	Ativo           int              `json:"ativo"`
}
