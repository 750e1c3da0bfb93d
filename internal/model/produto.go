package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto belongs to exactly one Categoria and optionally one Fornecedor.
type Produto struct {
	ID                uint    `gorm:"primaryKey"`
	Nome              string  `gorm:"index;not null"`
	Descricao         *string
	Preco             decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	EstoqueQuantidade int             `gorm:"not null;default:0"`
	DataCriacao       time.Time       `gorm:"autoCreateTime"`

	CategoriaID  uint  `gorm:"index;not null"`
	FornecedorID *uint `gorm:"index"`

	Categoria  *Categoria  `gorm:"foreignKey:CategoriaID"`
	Fornecedor *Fornecedor `gorm:"foreignKey:FornecedorID"`
}

func (Produto) TableName() string { return "produtos" }
