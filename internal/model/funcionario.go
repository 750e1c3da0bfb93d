package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Funcionario is an employee who may be attributed pedidos.
// Ativo is an int flag (1=ativo, 0=inativo) kept for schema compatibility.
type Funcionario struct {
	ID              uint    `gorm:"primaryKey"`
	Nome            string  `gorm:"index;not null"`
	Cargo           *string `gorm:"index"`
	Salario         *decimal.Decimal `gorm:"type:decimal(10,2)"`
	DataContratacao time.Time        `gorm:"autoCreateTime"`
	Telefone        *string          `gorm:"type:varchar(15);index"`
	Email           string           `gorm:"uniqueIndex;not null"`
	Ativo           int              `gorm:"not null;default:1"`

	Pedidos []Pedido `gorm:"foreignKey:FuncionarioID"`
}

func (Funcionario) TableName() string { return "funcionarios" }
