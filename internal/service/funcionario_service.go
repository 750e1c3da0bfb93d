package service

import (
	"context"
	"errors"

	"gestao/internal/dto"
	"gestao/internal/model"
	"gestao/internal/repository"

	"gorm.io/gorm"
)

type FuncionarioService interface {
	Criar(ctx context.Context, req dto.CriarFuncionarioRequest) (*dto.FuncionarioResponse, error)
	Listar(ctx context.Context) ([]dto.FuncionarioResponse, error)
	ObterPorID(ctx context.Context, id uint) (*dto.FuncionarioResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarFuncionarioRequest) (*dto.FuncionarioResponse, error)
	Deletar(ctx context.Context, id uint) error
}

type funcionarioService struct {
	repo repository.FuncionarioRepository
}

func NewFuncionarioService(repo repository.FuncionarioRepository) FuncionarioService {
	return &funcionarioService{repo: repo}
}

func funcionarioToResponse(f *model.Funcionario) *dto.FuncionarioResponse {
	return &dto.FuncionarioResponse{
		ID:              f.ID,
		Nome:            f.Nome,
		Cargo:           f.Cargo,
		Salario:         f.Salario,
		Telefone:        f.Telefone,
		Email:           f.Email,
		DataContratacao: f.DataContratacao,
		Ativo:           f.Ativo,
	}
}

func (s *funcionarioService) Criar(ctx context.Context, req dto.CriarFuncionarioRequest) (*dto.FuncionarioResponse, error) {
	if err := s.validarEmailUnico(ctx, req.Email); err != nil {
		return nil, err
	}

	funcionario := &model.Funcionario{
		Nome:     req.Nome,
		Cargo:    req.Cargo,
		Salario:  req.Salario,
		Telefone: req.Telefone,
		Email:    req.Email,
		Ativo:    1,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, funcionario)
	})
	if txErr != nil {
		return nil, txErr
	}
	return funcionarioToResponse(funcionario), nil
}

func (s *funcionarioService) Listar(ctx context.Context) ([]dto.FuncionarioResponse, error) {
	funcionarios, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.FuncionarioResponse, 0, len(funcionarios))
	for i := range funcionarios {
		result = append(result, *funcionarioToResponse(&funcionarios[i]))
	}
	return result, nil
}

func (s *funcionarioService) ObterPorID(ctx context.Context, id uint) (*dto.FuncionarioResponse, error) {
	funcionario, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return funcionarioToResponse(funcionario), nil
}

func (s *funcionarioService) Atualizar(ctx context.Context, id uint, req dto.AtualizarFuncionarioRequest) (*dto.FuncionarioResponse, error) {
	funcionario, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != funcionario.Email {
		if err := s.validarEmailUnico(ctx, *req.Email); err != nil {
			return nil, err
		}
		funcionario.Email = *req.Email
	}
	if req.Nome != nil {
		funcionario.Nome = *req.Nome
	}
	if req.Cargo != nil {
		funcionario.Cargo = req.Cargo
	}
	if req.Salario != nil {
		funcionario.Salario = req.Salario
	}
	if req.Telefone != nil {
		funcionario.Telefone = req.Telefone
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Update(ctx, tx, funcionario)
	})
	if txErr != nil {
		return nil, txErr
	}
	return funcionarioToResponse(funcionario), nil
}

// Deletar removes the funcionario. When pedidos are attributed to it, the
// record is deactivated (Ativo=0) instead of removed so the attribution
// survives.
func (s *funcionarioService) Deletar(ctx context.Context, id uint) error {
	funcionario, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}

	pedidos, err := s.repo.CountPedidos(ctx, funcionario.ID)
	if err != nil {
		return err
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if pedidos > 0 {
			funcionario.Ativo = 0
			return s.repo.Update(ctx, tx, funcionario)
		}
		return s.repo.Delete(ctx, tx, funcionario.ID)
	})
}

func (s *funcionarioService) findByID(ctx context.Context, id uint) (*model.Funcionario, error) {
	funcionario, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Funcionário com ID %d não encontrado", id)
		}
		return nil, err
	}
	return funcionario, nil
}

func (s *funcionarioService) validarEmailUnico(ctx context.Context, email string) error {
	existente, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existente != nil {
		return duplicate("email", "Email %s já cadastrado no sistema", email)
	}
	return nil
}
