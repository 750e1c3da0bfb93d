package repository

import (
	"context"

	"gestao/internal/model"

	"gorm.io/gorm"
)

type ProdutoRepository interface {
	Create(ctx context.Context, tx *gorm.DB, p *model.Produto) error
	FindByID(ctx context.Context, id uint) (*model.Produto, error)
	List(ctx context.Context, skip, limit int) ([]model.Produto, error)
	Update(ctx context.Context, tx *gorm.DB, p *model.Produto) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	CountItens(ctx context.Context, produtoID uint) (int64, error)
	DB() *gorm.DB
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) DB() *gorm.DB { return r.db }

func (r *produtoRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Produto) error {
	return tx.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) FindByID(ctx context.Context, id uint) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *produtoRepo) List(ctx context.Context, skip, limit int) ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.db.WithContext(ctx).Order("id").Offset(skip).Limit(limit).Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) Update(ctx context.Context, tx *gorm.DB, p *model.Produto) error {
	return tx.WithContext(ctx).Save(p).Error
}

func (r *produtoRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&model.Produto{}, id).Error
}

// CountItens counts pedido items referencing the produto; a produto with
// items cannot be deleted.
func (r *produtoRepo) CountItens(ctx context.Context, produtoID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PedidoItem{}).
		Where("produto_id = ?", produtoID).
		Count(&count).Error
	return count, err
}
