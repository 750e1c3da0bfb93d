package model

import "github.com/shopspring/decimal"

// PedidoItem is one line of a pedido. Subtotal = Quantidade × PrecoUnitario,
// computed by the service that creates the item.
type PedidoItem struct {
	ID             uint            `gorm:"primaryKey"`
	Quantidade     int             `gorm:"not null"`
	PrecoUnitario  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	PedidoID  uint `gorm:"index;not null"`
	ProdutoID uint `gorm:"index;not null"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (PedidoItem) TableName() string { return "pedidos_itens" }
