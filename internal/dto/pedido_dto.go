package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type PedidoItemInput struct {
	ProdutoID  uint `json:"produto_id" validate:"required"`
	Quantidade int  `json:"quantidade" validate:"required,gt=0"`
}

type CriarPedidoRequest struct {
	ClienteID     uint              `json:"cliente_id"     validate:"required"`
	FuncionarioID *uint             `json:"funcionario_id"`
	Itens         []PedidoItemInput `json:"itens"          validate:"required,min=1,dive"`
}

type AtualizarStatusPedidoRequest struct {
	Status string `json:"status" validate:"required,min=3,max=30"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type PedidoItemResponse struct {
	ID            uint            `json:"id"`
	ProdutoID     uint            `json:"produto_id"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

type PedidoResponse struct {
	ID            uint                 `json:"id"`
	ClienteID     uint                 `json:"cliente_id"`
	FuncionarioID *uint                `json:"funcionario_id,omitempty"`
	DataPedido    time.Time            `json:"data_pedido"`
	Status        string               `json:"status"`
	ValorTotal    decimal.Decimal      `json:"valor_total"`
	Itens         []PedidoItemResponse `json:"itens"`
}
