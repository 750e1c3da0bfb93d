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

type CategoriaService interface {
	Criar(ctx context.Context, req dto.CriarCategoriaRequest) (*dto.CategoriaResponse, error)
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
	ObterPorID(ctx context.Context, id uint) (*dto.CategoriaResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarCategoriaRequest) (*dto.CategoriaResponse, error)
	Deletar(ctx context.Context, id uint) error
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func categoriaToResponse(c *model.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{
		ID:        c.ID,
		Nome:      c.Nome,
		Descricao: c.Descricao,
	}
}

func (s *categoriaService) Criar(ctx context.Context, req dto.CriarCategoriaRequest) (*dto.CategoriaResponse, error) {
	existente, err := s.repo.FindByNome(ctx, req.Nome)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existente != nil {
		return nil, duplicate("nome", "Categoria %s já cadastrada no sistema", req.Nome)
	}

	categoria := &model.Categoria{
		Nome:      req.Nome,
		Descricao: req.Descricao,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, categoria)
	})
	if txErr != nil {
		return nil, txErr
	}
	return categoriaToResponse(categoria), nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	categorias, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoriaResponse, 0, len(categorias))
	for i := range categorias {
		result = append(result, *categoriaToResponse(&categorias[i]))
	}
	return result, nil
}

func (s *categoriaService) ObterPorID(ctx context.Context, id uint) (*dto.CategoriaResponse, error) {
	categoria, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return categoriaToResponse(categoria), nil
}

func (s *categoriaService) Atualizar(ctx context.Context, id uint, req dto.AtualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	categoria, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil && *req.Nome != categoria.Nome {
		existente, err := s.repo.FindByNome(ctx, *req.Nome)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existente != nil && existente.ID != id {
			return nil, duplicate("nome", "Categoria %s já cadastrada no sistema", *req.Nome)
		}
		categoria.Nome = *req.Nome
	}
	if req.Descricao != nil {
		categoria.Descricao = req.Descricao
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Update(ctx, tx, categoria)
	})
	if txErr != nil {
		return nil, txErr
	}
	return categoriaToResponse(categoria), nil
}

func (s *categoriaService) Deletar(ctx context.Context, id uint) error {
	categoria, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}

	produtos, err := s.repo.CountProdutos(ctx, categoria.ID)
	if err != nil {
		return err
	}
	if produtos > 0 {
		return &HasDependentsError{
			Count: produtos,
			Msg: fmt.Sprintf(
				"Não é possível deletar categoria com produtos associados. Categoria possui %d produto(s).",
				produtos),
		}
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Delete(ctx, tx, categoria.ID)
	})
}

func (s *categoriaService) findByID(ctx context.Context, id uint) (*model.Categoria, error) {
	categoria, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Categoria com ID %d não encontrada", id)
		}
		return nil, err
	}
	return categoria, nil
}
