package model

import "time"

// Cliente is an individual customer identified by CPF. CNPJ is only present
// for business customers and must be unique when set (Postgres allows
// multiple NULLs under a unique index, so optional stays optional).
type Cliente struct {
	ID          uint    `gorm:"primaryKey"`
	Nome        string  `gorm:"index;not null"`
	Email       string  `gorm:"uniqueIndex;not null"`
	Idade       *int
	CPF         string  `gorm:"column:cpf;type:char(11);uniqueIndex;not null"`
	CNPJ        *string `gorm:"column:cnpj;type:char(14);uniqueIndex"`
	CEP         *string `gorm:"column:cep;type:char(8);index"`
	Endereco    *string
	Telefone    *string `gorm:"type:varchar(15);index"`
	DataCriacao time.Time `gorm:"autoCreateTime"`

	Pedidos []Pedido `gorm:"foreignKey:ClienteID"`
}

// TableName overrides GORM's default singular → plural logic for Portuguese names.
func (Cliente) TableName() string { return "clientes" }
