package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pedido belongs to exactly one Cliente and optionally one Funcionario.
// Items are cascade-deleted with the order.
type Pedido struct {
	ID         uint            `gorm:"primaryKey"`
	DataPedido time.Time       `gorm:"autoCreateTime"`
	Status     string          `gorm:"index;not null;default:'pendente'"`
	ValorTotal decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`

	ClienteID     uint  `gorm:"index;not null"`
	FuncionarioID *uint `gorm:"index"`

	Cliente     *Cliente     `gorm:"foreignKey:ClienteID"`
	Funcionario *Funcionario `gorm:"foreignKey:FuncionarioID"`
	Itens       []PedidoItem `gorm:"foreignKey:PedidoID;constraint:OnDelete:CASCADE"`
}

func (Pedido) TableName() string { return "pedidos" }
