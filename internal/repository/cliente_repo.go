package repository

import (
	"context"

	"gestao/internal/model"

	"gorm.io/gorm"
)

// ClienteRepository defines the data access contract for clientes.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ClienteRepository interface {
	Create(ctx context.Context, tx *gorm.DB, c *model.Cliente) error
	FindByID(ctx context.Context, id uint) (*model.Cliente, error)
	FindByCPF(ctx context.Context, cpf string) (*model.Cliente, error)
	FindByEmail(ctx context.Context, email string) (*model.Cliente, error)
	List(ctx context.Context, skip, limit int) ([]model.Cliente, error)
	Update(ctx context.Context, tx *gorm.DB, c *model.Cliente) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	ListPedidos(ctx context.Context, clienteID uint) ([]model.Pedido, error)
	CountPedidos(ctx context.Context, clienteID uint) (int64, error)
	SearchByNome(ctx context.Context, nome string) ([]model.Cliente, error)
	Count(ctx context.Context) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) DB() *gorm.DB { return r.db }

func (r *clienteRepo) Create(ctx context.Context, tx *gorm.DB, c *model.Cliente) error {
	return tx.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uint) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) FindByCPF(ctx context.Context, cpf string) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) FindByEmail(ctx context.Context, email string) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns clientes in insertion order, which for an auto-increment
// primary key is the id order.
func (r *clienteRepo) List(ctx context.Context, skip, limit int) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Order("id").Offset(skip).Limit(limit).Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Update(ctx context.Context, tx *gorm.DB, c *model.Cliente) error {
	return tx.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&model.Cliente{}, id).Error
}

func (r *clienteRepo) ListPedidos(ctx context.Context, clienteID uint) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Itens").
		Where("cliente_id = ?", clienteID).
		Find(&pedidos).Error
	return pedidos, err
}

func (r *clienteRepo) CountPedidos(ctx context.Context, clienteID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Pedido{}).
		Where("cliente_id = ?", clienteID).
		Count(&count).Error
	return count, err
}

// SearchByNome does a case-insensitive substring match (Postgres ILIKE).
func (r *clienteRepo) SearchByNome(ctx context.Context, nome string) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).
		Where("nome ILIKE ?", "%"+nome+"%").
		Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Cliente{}).Count(&count).Error
	return count, err
}
