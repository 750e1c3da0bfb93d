package service_test

import (
	"context"
	"testing"

	"gestao/internal/dto"
	"gestao/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriaCriarEListar(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := service.NewCategoriaService(repo)
	ctx := context.Background()

	criada, err := svc.Criar(ctx, dto.CriarCategoriaRequest{
		Nome:      "Bebidas",
		Descricao: ptr("Sucos, refrigerantes e cafés"),
	})
	require.NoError(t, err)
	assert.NotZero(t, criada.ID)
	assert.Equal(t, "Bebidas", criada.Nome)

	todas, err := svc.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, todas, 1)
	assert.Equal(t, criada.ID, todas[0].ID)
}

func TestCategoriaCriarNomeDuplicado(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := service.NewCategoriaService(repo)
	ctx := context.Background()

	_, err := svc.Criar(ctx, dto.CriarCategoriaRequest{Nome: "Bebidas"})
	require.NoError(t, err)

	_, err = svc.Criar(ctx, dto.CriarCategoriaRequest{Nome: "Bebidas"})
	var dup *service.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "nome", dup.Field)
	assert.Equal(t, "Categoria Bebidas já cadastrada no sistema", dup.Msg)
}

func TestCategoriaAtualizar(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := service.NewCategoriaService(repo)
	ctx := context.Background()

	criada, err := svc.Criar(ctx, dto.CriarCategoriaRequest{Nome: "Bebidas"})
	require.NoError(t, err)
	_, err = svc.Criar(ctx, dto.CriarCategoriaRequest{Nome: "Laticínios"})
	require.NoError(t, err)

	atualizada, err := svc.Atualizar(ctx, criada.ID, dto.AtualizarCategoriaRequest{
		Descricao: ptr("Bebidas em geral"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Bebidas", atualizada.Nome)
	require.NotNil(t, atualizada.Descricao)
	assert.Equal(t, "Bebidas em geral", *atualizada.Descricao)

	// Renaming onto another categoria's nome is rejected.
	_, err = svc.Atualizar(ctx, criada.ID, dto.AtualizarCategoriaRequest{
		Nome: ptr("Laticínios"),
	})
	var dup *service.DuplicateError
	require.ErrorAs(t, err, &dup)
}

func TestCategoriaDeletarComProdutos(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := service.NewCategoriaService(repo)
	ctx := context.Background()

	criada, err := svc.Criar(ctx, dto.CriarCategoriaRequest{Nome: "Bebidas"})
	require.NoError(t, err)
	repo.produtos[criada.ID] = 3

	err = svc.Deletar(ctx, criada.ID)
	var dep *service.HasDependentsError
	require.ErrorAs(t, err, &dep)
	assert.Equal(t, int64(3), dep.Count)
	assert.Contains(t, dep.Msg, "3 produto(s)")

	repo.produtos[criada.ID] = 0
	require.NoError(t, svc.Deletar(ctx, criada.ID))

	_, err = svc.ObterPorID(ctx, criada.ID)
	var nf *service.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Categoria com ID 1 não encontrada", nf.Msg)
}
