package service_test

import (
	"context"
	"testing"

	"gestao/internal/dto"
	"gestao/internal/model"
	"gestao/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests run with a nil redis client: the cache is best effort and the service
// must behave identically without it.
func newProdutoFixture(t *testing.T) (service.ProdutoService, *stubProdutoRepo, uint) {
	t.Helper()
	repo := newStubProdutoRepo()
	categoriaRepo := newStubCategoriaRepo()
	fornecedorRepo := newStubFornecedorRepo()
	svc := service.NewProdutoService(repo, categoriaRepo, fornecedorRepo, nil)

	categoria := &model.Categoria{Nome: "Bebidas"}
	require.NoError(t, categoriaRepo.Create(context.Background(), nil, categoria))
	return svc, repo, categoria.ID
}

func TestProdutoCriarEObter(t *testing.T) {
	svc, _, categoriaID := newProdutoFixture(t)
	ctx := context.Background()

	criado, err := svc.Criar(ctx, dto.CriarProdutoRequest{
		Nome:              "Café torrado",
		Preco:             decimal.NewFromFloat(12.50),
		EstoqueQuantidade: 40,
		CategoriaID:       categoriaID,
	})
	require.NoError(t, err)
	assert.NotZero(t, criado.ID)
	assert.False(t, criado.DataCriacao.IsZero())

	obtido, err := svc.ObterPorID(ctx, criado.ID)
	require.NoError(t, err)
	assert.Equal(t, "Café torrado", obtido.Nome)
	assert.True(t, obtido.Preco.Equal(decimal.NewFromFloat(12.50)))
	assert.Equal(t, 40, obtido.EstoqueQuantidade)
	assert.Equal(t, categoriaID, obtido.CategoriaID)
	assert.Nil(t, obtido.FornecedorID)
}

func TestProdutoCriarCategoriaInexistente(t *testing.T) {
	svc, _, _ := newProdutoFixture(t)

	_, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome:        "Café torrado",
		Preco:       decimal.NewFromFloat(12.50),
		CategoriaID: 99,
	})
	var nf *service.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Categoria com ID 99 não encontrada", nf.Msg)
}

func TestProdutoCriarFornecedorInexistente(t *testing.T) {
	svc, _, categoriaID := newProdutoFixture(t)
	fornecedorID := uint(55)

	_, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome:         "Café torrado",
		Preco:        decimal.NewFromFloat(12.50),
		CategoriaID:  categoriaID,
		FornecedorID: &fornecedorID,
	})
	var nf *service.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Fornecedor com ID 55 não encontrado", nf.Msg)
}

func TestProdutoAtualizarParcial(t *testing.T) {
	svc, _, categoriaID := newProdutoFixture(t)
	ctx := context.Background()

	criado, err := svc.Criar(ctx, dto.CriarProdutoRequest{
		Nome:              "Café torrado",
		Preco:             decimal.NewFromFloat(12.50),
		EstoqueQuantidade: 40,
		CategoriaID:       categoriaID,
	})
	require.NoError(t, err)

	novoPreco := decimal.NewFromFloat(13.90)
	atualizado, err := svc.Atualizar(ctx, criado.ID, dto.AtualizarProdutoRequest{
		Preco: &novoPreco,
	})
	require.NoError(t, err)
	assert.True(t, atualizado.Preco.Equal(novoPreco))
	assert.Equal(t, "Café torrado", atualizado.Nome)
	assert.Equal(t, 40, atualizado.EstoqueQuantidade)
}

func TestProdutoAtualizarNaoEncontrado(t *testing.T) {
	svc, _, _ := newProdutoFixture(t)

	_, err := svc.Atualizar(context.Background(), 404, dto.AtualizarProdutoRequest{
		Nome: ptr("Qualquer"),
	})
	var nf *service.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Produto com ID 404 não encontrado", nf.Msg)
}

func TestProdutoDeletarReferenciadoEmPedidos(t *testing.T) {
	svc, repo, categoriaID := newProdutoFixture(t)
	ctx := context.Background()

	criado, err := svc.Criar(ctx, dto.CriarProdutoRequest{
		Nome:        "Café torrado",
		Preco:       decimal.NewFromFloat(12.50),
		CategoriaID: categoriaID,
	})
	require.NoError(t, err)
	repo.itens[criado.ID] = 4

	err = svc.Deletar(ctx, criado.ID)
	var dep *service.HasDependentsError
	require.ErrorAs(t, err, &dep)
	assert.Equal(t, int64(4), dep.Count)

	repo.itens[criado.ID] = 0
	require.NoError(t, svc.Deletar(ctx, criado.ID))

	_, err = svc.ObterPorID(ctx, criado.ID)
	var nf *service.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestProdutoListar(t *testing.T) {
	svc, _, categoriaID := newProdutoFixture(t)
	ctx := context.Background()

	nomes := []string{"Café torrado", "Leite integral", "Açúcar cristal"}
	for _, nome := range nomes {
		_, err := svc.Criar(ctx, dto.CriarProdutoRequest{
			Nome:        nome,
			Preco:       decimal.NewFromFloat(5.00),
			CategoriaID: categoriaID,
		})
		require.NoError(t, err)
	}

	pagina, err := svc.Listar(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, pagina, 2)
	assert.Equal(t, "Leite integral", pagina[0].Nome)
}
