package service

import (
	"context"
	"testing"

	"pecaspos/internal/apierror"
	"pecaspos/internal/dto"
	"pecaspos/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriarCategoriaDuplicada(t *testing.T) {
	svc := NewCategoriaService(newMemCategoriaRepo(nil))
	ctx := context.Background()

	_, err := svc.Criar(ctx, dto.CriarCategoriaRequest{Nome: "Freios"})
	require.NoError(t, err)

	_, err = svc.Criar(ctx, dto.CriarCategoriaRequest{Nome: "Freios"})
	require.ErrorIs(t, err, apierror.ErrValidation)
}

func TestListarCategoriasOrdenadoPorNome(t *testing.T) {
	svc := NewCategoriaService(newMemCategoriaRepo(nil))
	ctx := context.Background()

	for _, nome := range []string{"Transmissão", "Elétrica", "Freios"} {
		_, err := svc.Criar(ctx, dto.CriarCategoriaRequest{Nome: nome})
		require.NoError(t, err)
	}

	cats, err := svc.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "Elétrica", cats[0].Nome)
	assert.Equal(t, "Freios", cats[1].Nome)
	assert.Equal(t, "Transmissão", cats[2].Nome)
}

func TestExcluirCategoriaDesvinculaProdutos(t *testing.T) {
	produtos := newMemProdutoRepo()
	repo := newMemCategoriaRepo(produtos)
	svc := NewCategoriaService(repo)
	ctx := context.Background()

	cat, err := svc.Criar(ctx, dto.CriarCategoriaRequest{Nome: "Freios"})
	require.NoError(t, err)

	p := &model.Produto{
		Nome:        "Pastilha dianteira",
		PrecoVarejo: decimal.NewFromInt(45),
		Estoque:     8,
		CategoriaID: &cat.ID,
	}
	require.NoError(t, produtos.Create(ctx, p))

	require.NoError(t, svc.Excluir(ctx, cat.ID))

	// Product survives with the category detached.
	saved, err := produtos.FindByCodigo(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, saved.CategoriaID)

	cats, err := svc.Listar(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestExcluirCategoriaInexistente(t *testing.T) {
	svc := NewCategoriaService(newMemCategoriaRepo(nil))

	err := svc.Excluir(context.Background(), 42)
	require.ErrorIs(t, err, apierror.ErrNotFound)
}
