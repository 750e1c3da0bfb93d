package model

// Categoria classifies products.
type Categoria struct {
	ID        uint    `gorm:"primaryKey"`
	Nome      string  `gorm:"uniqueIndex;not null"`
	Descricao *string

	Produtos []Produto `gorm:"foreignKey:CategoriaID"`
}

func (Categoria) TableName() string { return "categorias" }
