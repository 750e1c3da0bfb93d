package repository

import (
	"context"

	"gestao/internal/model"

	"gorm.io/gorm"
)

type FornecedorRepository interface {
	Create(ctx context.Context, tx *gorm.DB, f *model.Fornecedor) error
	FindByID(ctx context.Context, id uint) (*model.Fornecedor, error)
	FindByEmail(ctx context.Context, email string) (*model.Fornecedor, error)
	List(ctx context.Context) ([]model.Fornecedor, error)
	Update(ctx context.Context, tx *gorm.DB, f *model.Fornecedor) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	CountProdutos(ctx context.Context, fornecedorID uint) (int64, error)
	DB() *gorm.DB
}

type fornecedorRepo struct{ db *gorm.DB }

func NewFornecedorRepository(db *gorm.DB) FornecedorRepository { return &fornecedorRepo{db: db} }

func (r *fornecedorRepo) DB() *gorm.DB { return r.db }

func (r *fornecedorRepo) Create(ctx context.Context, tx *gorm.DB, f *model.Fornecedor) error {
	return tx.WithContext(ctx).Create(f).Error
}

func (r *fornecedorRepo) FindByID(ctx context.Context, id uint) (*model.Fornecedor, error) {
	var f model.Fornecedor
	err := r.db.WithContext(ctx).First(&f, id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fornecedorRepo) FindByEmail(ctx context.Context, email string) (*model.Fornecedor, error) {
	var f model.Fornecedor
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fornecedorRepo) List(ctx context.Context) ([]model.Fornecedor, error) {
	var fornecedores []model.Fornecedor
	err := r.db.WithContext(ctx).Order("id").Find(&fornecedores).Error
	return fornecedores, err
}

func (r *fornecedorRepo) Update(ctx context.Context, tx *gorm.DB, f *model.Fornecedor) error {
	return tx.WithContext(ctx).Save(f).Error
}

func (r *fornecedorRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&model.Fornecedor{}, id).Error
}

func (r *fornecedorRepo) CountProdutos(ctx context.Context, fornecedorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Produto{}).
		Where("fornecedor_id = ?", fornecedorID).
		Count(&count).Error
	return count, err
}
