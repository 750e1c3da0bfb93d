package service

import (
	"context"
	"errors"
	"fmt"

	"gestao/internal/dto"
	"gestao/internal/model"
	"gestao/internal/repository"

	"gorm.io/gorm"
)

// ClienteService defines the business logic contract for clientes.
type ClienteService interface {
	Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error)
	Listar(ctx context.Context, skip, limit int) ([]dto.ClienteResponse, error)
	ObterPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error)
	ObterPorCPF(ctx context.Context, cpf string) (*dto.ClienteResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error)
	AtualizarEmail(ctx context.Context, id uint, novoEmail string) (*dto.ClienteResponse, error)
	Deletar(ctx context.Context, id uint) error
	ListarPedidos(ctx context.Context, id uint) ([]dto.PedidoResponse, error)
	BuscarPorNome(ctx context.Context, nome string) ([]dto.ClienteResponse, error)
	Contar(ctx context.Context) (int64, error)
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:          c.ID,
		Nome:        c.Nome,
		Email:       c.Email,
		Idade:       c.Idade,
		CPF:         c.CPF,
		CNPJ:        c.CNPJ,
		CEP:         c.CEP,
		Endereco:    c.Endereco,
		Telefone:    c.Telefone,
		DataCriacao: c.DataCriacao,
	}
}

// Criar registers a new cliente. CPF and email must be unique among clientes;
// both are validated with explicit pre-reads, so the store's unique indexes
// are the last line of defense against a concurrent duplicate.
func (s *clienteService) Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	if err := s.validarCPFUnico(ctx, req.CPF); err != nil {
		return nil, err
	}
	if err := s.validarEmailUnico(ctx, req.Email); err != nil {
		return nil, err
	}

	cliente := &model.Cliente{
		Nome:     req.Nome,
		Email:    req.Email,
		Idade:    req.Idade,
		CPF:      req.CPF,
		CNPJ:     req.CNPJ,
		CEP:      req.CEP,
		Endereco: req.Endereco,
		Telefone: req.Telefone,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, cliente)
	})
	if txErr != nil {
		return nil, txErr
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Listar(ctx context.Context, skip, limit int) ([]dto.ClienteResponse, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = 100
	}
	clientes, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		result = append(result, *clienteToResponse(&clientes[i]))
	}
	return result, nil
}

func (s *clienteService) ObterPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error) {
	cliente, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) ObterPorCPF(ctx context.Context, cpf string) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByCPF(ctx, cpf)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Cliente com CPF %s não encontrado", cpf)
		}
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

// Atualizar applies the fields present in the request; absent (nil) fields
// keep their current value. Changing email re-runs the uniqueness check,
// keeping the current value is never a self-collision.
func (s *clienteService) Atualizar(ctx context.Context, id uint, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != cliente.Email {
		if err := s.validarEmailUnico(ctx, *req.Email); err != nil {
			return nil, err
		}
	}

	if req.Nome != nil {
		cliente.Nome = *req.Nome
	}
	if req.Email != nil {
		cliente.Email = *req.Email
	}
	if req.Idade != nil {
		cliente.Idade = req.Idade
	}
	if req.Telefone != nil {
		cliente.Telefone = req.Telefone
	}
	if req.Endereco != nil {
		cliente.Endereco = req.Endereco
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Update(ctx, tx, cliente)
	})
	if txErr != nil {
		return nil, txErr
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) AtualizarEmail(ctx context.Context, id uint, novoEmail string) (*dto.ClienteResponse, error) {
	cliente, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if novoEmail != cliente.Email {
		if err := s.validarEmailUnico(ctx, novoEmail); err != nil {
			return nil, err
		}
	}

	cliente.Email = novoEmail
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Update(ctx, tx, cliente)
	})
	if txErr != nil {
		return nil, txErr
	}
	return clienteToResponse(cliente), nil
}

// Deletar permanently removes the cliente. Blocked while any pedido still
// references it; the error carries the pedido count.
func (s *clienteService) Deletar(ctx context.Context, id uint) error {
	cliente, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}

	pedidos, err := s.repo.CountPedidos(ctx, cliente.ID)
	if err != nil {
		return err
	}
	if pedidos > 0 {
		return &HasDependentsError{
			Count: pedidos,
			Msg: fmt.Sprintf(
				"Não é possível deletar cliente com pedidos associados. Cliente possui %d pedido(s).",
				pedidos),
		}
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Delete(ctx, tx, cliente.ID)
	})
}

func (s *clienteService) ListarPedidos(ctx context.Context, id uint) ([]dto.PedidoResponse, error) {
	if _, err := s.findByID(ctx, id); err != nil {
		return nil, err
	}
	pedidos, err := s.repo.ListPedidos(ctx, id)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PedidoResponse, 0, len(pedidos))
	for i := range pedidos {
		result = append(result, *pedidoToResponse(&pedidos[i]))
	}
	return result, nil
}

func (s *clienteService) BuscarPorNome(ctx context.Context, nome string) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.SearchByNome(ctx, nome)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		result = append(result, *clienteToResponse(&clientes[i]))
	}
	return result, nil
}

func (s *clienteService) Contar(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// ── Validations ───────────────────────────────────────────────────────────────

func (s *clienteService) findByID(ctx context.Context, id uint) (*model.Cliente, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Cliente com ID %d não encontrado", id)
		}
		return nil, err
	}
	return cliente, nil
}

func (s *clienteService) validarCPFUnico(ctx context.Context, cpf string) error {
	existente, err := s.repo.FindByCPF(ctx, cpf)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existente != nil {
		return duplicate("cpf", "CPF %s já cadastrado no sistema", cpf)
	}
	return nil
}

func (s *clienteService) validarEmailUnico(ctx context.Context, email string) error {
	existente, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existente != nil {
		return duplicate("email", "Email %s já cadastrado no sistema", email)
	}
	return nil
}
