package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gestao/internal/dto"
	"gestao/internal/model"
	"gestao/internal/repository"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const produtoCacheTTL = 4 * time.Hour

// ProdutoService defines the business logic contract for produtos.
// Reads by id go through a best-effort redis cache keyed "produto:{id}",
// invalidated on update and delete.
type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	ObterPorID(ctx context.Context, id uint) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context, skip, limit int) ([]dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
	Deletar(ctx context.Context, id uint) error
}

type produtoService struct {
	repo           repository.ProdutoRepository
	categoriaRepo  repository.CategoriaRepository
	fornecedorRepo repository.FornecedorRepository
	rdb            *redis.Client
}

func NewProdutoService(
	repo repository.ProdutoRepository,
	categoriaRepo repository.CategoriaRepository,
	fornecedorRepo repository.FornecedorRepository,
	rdb *redis.Client,
) ProdutoService {
	return &produtoService{
		repo:           repo,
		categoriaRepo:  categoriaRepo,
		fornecedorRepo: fornecedorRepo,
		rdb:            rdb,
	}
}

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:                p.ID,
		Nome:              p.Nome,
		Descricao:         p.Descricao,
		Preco:             p.Preco,
		EstoqueQuantidade: p.EstoqueQuantidade,
		CategoriaID:       p.CategoriaID,
		FornecedorID:      p.FornecedorID,
		DataCriacao:       p.DataCriacao,
	}
}

func produtoCacheKey(id uint) string { return fmt.Sprintf("produto:%d", id) }

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	if _, err := s.categoriaRepo.FindByID(ctx, req.CategoriaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Categoria com ID %d não encontrada", req.CategoriaID)
		}
		return nil, err
	}
	if req.FornecedorID != nil {
		if _, err := s.fornecedorRepo.FindByID(ctx, *req.FornecedorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFound("Fornecedor com ID %d não encontrado", *req.FornecedorID)
			}
			return nil, err
		}
	}

	produto := &model.Produto{
		Nome:              req.Nome,
		Descricao:         req.Descricao,
		Preco:             req.Preco,
		EstoqueQuantidade: req.EstoqueQuantidade,
		CategoriaID:       req.CategoriaID,
		FornecedorID:      req.FornecedorID,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, produto)
	})
	if txErr != nil {
		return nil, txErr
	}
	return produtoToResponse(produto), nil
}

func (s *produtoService) ObterPorID(ctx context.Context, id uint) (*dto.ProdutoResponse, error) {
	cacheKey := produtoCacheKey(id)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.ProdutoResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	produto, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := produtoToResponse(produto)

	// Populate cache — best effort, ignore errors
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, cacheKey, b, produtoCacheTTL).Err()
		}
	}
	return resp, nil
}

func (s *produtoService) Listar(ctx context.Context, skip, limit int) ([]dto.ProdutoResponse, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = 100
	}
	produtos, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		result = append(result, *produtoToResponse(&produtos[i]))
	}
	return result, nil
}

func (s *produtoService) Atualizar(ctx context.Context, id uint, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	produto, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoriaID != nil && *req.CategoriaID != produto.CategoriaID {
		if _, err := s.categoriaRepo.FindByID(ctx, *req.CategoriaID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFound("Categoria com ID %d não encontrada", *req.CategoriaID)
			}
			return nil, err
		}
		produto.CategoriaID = *req.CategoriaID
	}
	if req.FornecedorID != nil {
		if _, err := s.fornecedorRepo.FindByID(ctx, *req.FornecedorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFound("Fornecedor com ID %d não encontrado", *req.FornecedorID)
			}
			return nil, err
		}
		produto.FornecedorID = req.FornecedorID
	}
	if req.Nome != nil {
		produto.Nome = *req.Nome
	}
	if req.Descricao != nil {
		produto.Descricao = req.Descricao
	}
	if req.Preco != nil {
		produto.Preco = *req.Preco
	}
	if req.EstoqueQuantidade != nil {
		produto.EstoqueQuantidade = *req.EstoqueQuantidade
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Update(ctx, tx, produto)
	})
	if txErr != nil {
		return nil, txErr
	}
	s.invalidateCache(ctx, id)
	return produtoToResponse(produto), nil
}

func (s *produtoService) Deletar(ctx context.Context, id uint) error {
	produto, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}

	itens, err := s.repo.CountItens(ctx, produto.ID)
	if err != nil {
		return err
	}
	if itens > 0 {
		return &HasDependentsError{
			Count: itens,
			Msg: fmt.Sprintf(
				"Não é possível deletar produto referenciado em pedidos. Produto possui %d item(ns) de pedido.",
				itens),
		}
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Delete(ctx, tx, produto.ID)
	})
	if txErr != nil {
		return txErr
	}
	s.invalidateCache(ctx, id)
	return nil
}

func (s *produtoService) invalidateCache(ctx context.Context, id uint) {
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, produtoCacheKey(id)).Err()
	}
}

func (s *produtoService) findByID(ctx context.Context, id uint) (*model.Produto, error) {
	produto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Produto com ID %d não encontrado", id)
		}
		return nil, err
	}
	return produto, nil
}
