package repository

import (
	"context"

	"gestao/internal/model"

	"gorm.io/gorm"
)

type PedidoRepository interface {
	Create(ctx context.Context, tx *gorm.DB, p *model.Pedido) error
	FindByID(ctx context.Context, id uint) (*model.Pedido, error)
	List(ctx context.Context, skip, limit int) ([]model.Pedido, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status string) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	DB() *gorm.DB
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) DB() *gorm.DB { return r.db }

// Create persists the pedido together with its itens (GORM inserts the
// association rows in the same statement batch).
func (r *pedidoRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Pedido) error {
	return tx.WithContext(ctx).Create(p).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uint) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).Preload("Itens").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pedidoRepo) List(ctx context.Context, skip, limit int) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).Preload("Itens").Order("id").Offset(skip).Limit(limit).Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status string) error {
	return tx.WithContext(ctx).Model(&model.Pedido{}).Where("id = ?", id).Update("status", status).Error
}

// Delete removes the pedido; itens go with it via the ON DELETE CASCADE
// constraint declared on the association.
func (r *pedidoRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&model.Pedido{}, id).Error
}
