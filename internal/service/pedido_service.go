package service

import (
	"context"
	"errors"

	"gestao/internal/dto"
	"gestao/internal/model"
	"gestao/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PedidoService creates and manages pedidos. Item subtotals and the pedido
// total are computed here at creation time from the current produto prices.
type PedidoService interface {
	Criar(ctx context.Context, req dto.CriarPedidoRequest) (*dto.PedidoResponse, error)
	ObterPorID(ctx context.Context, id uint) (*dto.PedidoResponse, error)
	Listar(ctx context.Context, skip, limit int) ([]dto.PedidoResponse, error)
	AtualizarStatus(ctx context.Context, id uint, status string) (*dto.PedidoResponse, error)
	Deletar(ctx context.Context, id uint) error
}

type pedidoService struct {
	repo            repository.PedidoRepository
	clienteRepo     repository.ClienteRepository
	produtoRepo     repository.ProdutoRepository
	funcionarioRepo repository.FuncionarioRepository
}

func NewPedidoService(
	repo repository.PedidoRepository,
	clienteRepo repository.ClienteRepository,
	produtoRepo repository.ProdutoRepository,
	funcionarioRepo repository.FuncionarioRepository,
) PedidoService {
	return &pedidoService{
		repo:            repo,
		clienteRepo:     clienteRepo,
		produtoRepo:     produtoRepo,
		funcionarioRepo: funcionarioRepo,
	}
}

func pedidoToResponse(p *model.Pedido) *dto.PedidoResponse {
	itens := make([]dto.PedidoItemResponse, 0, len(p.Itens))
	for _, item := range p.Itens {
		itens = append(itens, dto.PedidoItemResponse{
			ID:            item.ID,
			ProdutoID:     item.ProdutoID,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Subtotal:      item.Subtotal,
		})
	}
	return &dto.PedidoResponse{
		ID:            p.ID,
		ClienteID:     p.ClienteID,
		FuncionarioID: p.FuncionarioID,
		DataPedido:    p.DataPedido,
		Status:        p.Status,
		ValorTotal:    p.ValorTotal,
		Itens:         itens,
	}
}

// Criar resolves every produto, prices the items (subtotal = quantidade ×
// preço unitário) and persists pedido + itens in one transaction.
func (s *pedidoService) Criar(ctx context.Context, req dto.CriarPedidoRequest) (*dto.PedidoResponse, error) {
	if _, err := s.clienteRepo.FindByID(ctx, req.ClienteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Cliente com ID %d não encontrado", req.ClienteID)
		}
		return nil, err
	}
	if req.FuncionarioID != nil {
		if _, err := s.funcionarioRepo.FindByID(ctx, *req.FuncionarioID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFound("Funcionário com ID %d não encontrado", *req.FuncionarioID)
			}
			return nil, err
		}
	}

	valorTotal := decimal.Zero
	itens := make([]model.PedidoItem, 0, len(req.Itens))
	for _, item := range req.Itens {
		produto, err := s.produtoRepo.FindByID(ctx, item.ProdutoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFound("Produto com ID %d não encontrado", item.ProdutoID)
			}
			return nil, err
		}
		subtotal := produto.Preco.Mul(decimal.NewFromInt(int64(item.Quantidade)))
		valorTotal = valorTotal.Add(subtotal)
		itens = append(itens, model.PedidoItem{
			ProdutoID:     produto.ID,
			Quantidade:    item.Quantidade,
			PrecoUnitario: produto.Preco,
			Subtotal:      subtotal,
		})
	}

	pedido := &model.Pedido{
		ClienteID:     req.ClienteID,
		FuncionarioID: req.FuncionarioID,
		Status:        "pendente",
		ValorTotal:    valorTotal,
		Itens:         itens,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, pedido)
	})
	if txErr != nil {
		return nil, txErr
	}
	return pedidoToResponse(pedido), nil
}

func (s *pedidoService) ObterPorID(ctx context.Context, id uint) (*dto.PedidoResponse, error) {
	pedido, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return pedidoToResponse(pedido), nil
}

func (s *pedidoService) Listar(ctx context.Context, skip, limit int) ([]dto.PedidoResponse, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = 100
	}
	pedidos, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PedidoResponse, 0, len(pedidos))
	for i := range pedidos {
		result = append(result, *pedidoToResponse(&pedidos[i]))
	}
	return result, nil
}

func (s *pedidoService) AtualizarStatus(ctx context.Context, id uint, status string) (*dto.PedidoResponse, error) {
	pedido, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.UpdateStatus(ctx, tx, pedido.ID, status)
	})
	if txErr != nil {
		return nil, txErr
	}
	pedido.Status = status
	return pedidoToResponse(pedido), nil
}

func (s *pedidoService) Deletar(ctx context.Context, id uint) error {
	pedido, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Delete(ctx, tx, pedido.ID)
	})
}

func (s *pedidoService) findByID(ctx context.Context, id uint) (*model.Pedido, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Pedido com ID %d não encontrado", id)
		}
		return nil, err
	}
	return pedido, nil
}
