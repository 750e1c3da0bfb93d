package repository

import (
	"context"

	"gestao/internal/model"

	"gorm.io/gorm"
)

type FuncionarioRepository interface {
	Create(ctx context.Context, tx *gorm.DB, f *model.Funcionario) error
	FindByID(ctx context.Context, id uint) (*model.Funcionario, error)
	FindByEmail(ctx context.Context, email string) (*model.Funcionario, error)
	List(ctx context.Context) ([]model.Funcionario, error)
	Update(ctx context.Context, tx *gorm.DB, f *model.Funcionario) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	CountPedidos(ctx context.Context, funcionarioID uint) (int64, error)
	DB() *gorm.DB
}

type funcionarioRepo struct{ db *gorm.DB }

func NewFuncionarioRepository(db *gorm.DB) FuncionarioRepository { return &funcionarioRepo{db: db} }

func (r *funcionarioRepo) DB() *gorm.DB { return r.db }

func (r *funcionarioRepo) Create(ctx context.Context, tx *gorm.DB, f *model.Funcionario) error {
	return tx.WithContext(ctx).Create(f).Error
}

func (r *funcionarioRepo) FindByID(ctx context.Context, id uint) (*model.Funcionario, error) {
	var f model.Funcionario
	err := r.db.WithContext(ctx).First(&f, id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *funcionarioRepo) FindByEmail(ctx context.Context, email string) (*model.Funcionario, error) {
	var f model.Funcionario
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *funcionarioRepo) List(ctx context.Context) ([]model.Funcionario, error) {
	var funcionarios []model.Funcionario
	err := r.db.WithContext(ctx).Order("id").Find(&funcionarios).Error
	return funcionarios, err
}

func (r *funcionarioRepo) Update(ctx context.Context, tx *gorm.DB, f *model.Funcionario) error {
	return tx.WithContext(ctx).Save(f).Error
}

func (r *funcionarioRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&model.Funcionario{}, id).Error
}

func (r *funcionarioRepo) CountPedidos(ctx context.Context, funcionarioID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Pedido{}).
		Where("funcionario_id = ?", funcionarioID).
		Count(&count).Error
	return count, err
}
