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

type FornecedorService interface {
	Criar(ctx context.Context, req dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error)
	Listar(ctx context.Context) ([]dto.FornecedorResponse, error)
	ObterPorID(ctx context.Context, id uint) (*dto.FornecedorResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarFornecedorRequest) (*dto.FornecedorResponse, error)
	Deletar(ctx context.Context, id uint) error
}

type fornecedorService struct {
	repo repository.FornecedorRepository
}

func NewFornecedorService(repo repository.FornecedorRepository) FornecedorService {
	return &fornecedorService{repo: repo}
}

func fornecedorToResponse(f *model.Fornecedor) *dto.FornecedorResponse {
	return &dto.FornecedorResponse{
		ID:       f.ID,
		Nome:     f.Nome,
		Contato:  f.Contato,
		Telefone: f.Telefone,
		Email:    f.Email,
		Endereco: f.Endereco,
	}
}

func (s *fornecedorService) Criar(ctx context.Context, req dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error) {
	if err := s.validarEmailUnico(ctx, req.Email); err != nil {
		return nil, err
	}

	fornecedor := &model.Fornecedor{
		Nome:     req.Nome,
		Contato:  req.Contato,
		Telefone: req.Telefone,
		Email:    req.Email,
		Endereco: req.Endereco,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, fornecedor)
	})
	if txErr != nil {
		return nil, txErr
	}
	return fornecedorToResponse(fornecedor), nil
}

func (s *fornecedorService) Listar(ctx context.Context) ([]dto.FornecedorResponse, error) {
	fornecedores, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.FornecedorResponse, 0, len(fornecedores))
	for i := range fornecedores {
		result = append(result, *fornecedorToResponse(&fornecedores[i]))
	}
	return result, nil
}

func (s *fornecedorService) ObterPorID(ctx context.Context, id uint) (*dto.FornecedorResponse, error) {
	fornecedor, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return fornecedorToResponse(fornecedor), nil
}

func (s *fornecedorService) Atualizar(ctx context.Context, id uint, req dto.AtualizarFornecedorRequest) (*dto.FornecedorResponse, error) {
	fornecedor, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != fornecedor.Email {
		if err := s.validarEmailUnico(ctx, *req.Email); err != nil {
			return nil, err
		}
		fornecedor.Email = *req.Email
	}
	if req.Nome != nil {
		fornecedor.Nome = *req.Nome
	}
	if req.Contato != nil {
		fornecedor.Contato = req.Contato
	}
	if req.Telefone != nil {
		fornecedor.Telefone = req.Telefone
	}
	if req.Endereco != nil {
		fornecedor.Endereco = req.Endereco
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Update(ctx, tx, fornecedor)
	})
	if txErr != nil {
		return nil, txErr
	}
	return fornecedorToResponse(fornecedor), nil
}

func (s *fornecedorService) Deletar(ctx context.Context, id uint) error {
	fornecedor, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}

	produtos, err := s.repo.CountProdutos(ctx, fornecedor.ID)
	if err != nil {
		return err
	}
	if produtos > 0 {
		return &HasDependentsError{
			Count: produtos,
			Msg: fmt.Sprintf(
				"Não é possível deletar fornecedor com produtos associados. Fornecedor possui %d produto(s).",
				produtos),
		}
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Delete(ctx, tx, fornecedor.ID)
	})
}

func (s *fornecedorService) findByID(ctx context.Context, id uint) (*model.Fornecedor, error) {
	fornecedor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Fornecedor com ID %d não encontrado", id)
		}
		return nil, err
	}
	return fornecedor, nil
}

func (s *fornecedorService) validarEmailUnico(ctx context.Context, email string) error {
	existente, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existente != nil {
		return duplicate("email", "Email %s já cadastrado no sistema", email)
	}
	return nil
}
