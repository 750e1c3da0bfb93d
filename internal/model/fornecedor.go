package model

// Fornecedor is a product supplier. Email uniqueness is independent from the
// cliente and funcionario email spaces.
type Fornecedor struct {
	ID       uint    `gorm:"primaryKey"`
	Nome     string  `gorm:"index;not null"`
	Contato  *string
	Telefone *string `gorm:"type:varchar(15);index"`
	Email    string  `gorm:"uniqueIndex;not null"`
	Endereco *string

	Produtos []Produto `gorm:"foreignKey:FornecedorID"`
}

func (Fornecedor) TableName() string { return "fornecedores" }
