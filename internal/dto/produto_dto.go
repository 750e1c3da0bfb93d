package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CriarProdutoRequest struct {
	Nome              string          `json:"nome"               validate:"required,min=3,max=100"`
	Descricao         *string         `json:"descricao"`
	Preco             decimal.Decimal `json:"preco"              validate:"required,gt=0"`
	EstoqueQuantidade int             `json:"estoque_quantidade" validate:"gte=0"`
	CategoriaID       uint            `json:"categoria_id"       validate:"required"`
	FornecedorID      *uint           `json:"fornecedor_id"`
}

type AtualizarProdutoRequest struct {
	Nome              *string          `json:"nome"               validate:"omitempty,min=3,max=100"`
	Descricao         *string          `json:"descricao"`
	Preco             *decimal.Decimal `json:"preco"              validate:"omitempty,gt=0"`
	EstoqueQuantidade *int             `json:"estoque_quantidade" validate:"omitempty,gte=0"`
	CategoriaID       *uint            `json:"categoria_id"`
	FornecedorID      *uint            `json:"fornecedor_id"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type ProdutoResponse struct {
	ID                uint            `json:"id"`
	Nome              string          `json:"nome"`
	Descricao         *string         `json:"descricao"`
	Preco             decimal.Decimal `json:"preco"`
	EstoqueQuantidade int             `json:"estoque_quantidade"`
	CategoriaID       uint            `json:"categoria_id"`
	FornecedorID      *uint           `json:"fornecedor_id"`
	DataCriacao       time.Time       `json:"data_criacao"`
}
