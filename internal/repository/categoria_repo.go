package repository

import (
	"context"

	"gestao/internal/model"

	"gorm.io/gorm"
)

type CategoriaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, c *model.Categoria) error
	FindByID(ctx context.Context, id uint) (*model.Categoria, error)
	FindByNome(ctx context.Context, nome string) (*model.Categoria, error)
	List(ctx context.Context) ([]model.Categoria, error)
	Update(ctx context.Context, tx *gorm.DB, c *model.Categoria) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	CountProdutos(ctx context.Context, categoriaID uint) (int64, error)
	DB() *gorm.DB
}

type categoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository { return &categoriaRepo{db: db} }

func (r *categoriaRepo) DB() *gorm.DB { return r.db }

func (r *categoriaRepo) Create(ctx context.Context, tx *gorm.DB, c *model.Categoria) error {
	return tx.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepo) FindByID(ctx context.Context, id uint) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) FindByNome(ctx context.Context, nome string) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).Where("nome = ?", nome).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) List(ctx context.Context) ([]model.Categoria, error) {
	var categorias []model.Categoria
	err := r.db.WithContext(ctx).Order("id").Find(&categorias).Error
	return categorias, err
}

func (r *categoriaRepo) Update(ctx context.Context, tx *gorm.DB, c *model.Categoria) error {
	return tx.WithContext(ctx).Save(c).Error
}

func (r *categoriaRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&model.Categoria{}, id).Error
}

func (r *categoriaRepo) CountProdutos(ctx context.Context, categoriaID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Produto{}).
		Where("categoria_id = ?", categoriaID).
		Count(&count).Error
	return count, err
}
