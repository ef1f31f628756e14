package service

import (
	"context"
	"testing"

	"pecaspos/internal/apierror"
	"pecaspos/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriarProdutoRecebeCodigo(t *testing.T) {
	svc := NewProdutoService(newMemProdutoRepo())

	resp, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome:         "Vela NGK CR7",
		Custo:        decimal.NewFromInt(12),
		PrecoVarejo:  decimal.NewFromInt(25),
		PrecoAtacado: decimal.NewFromInt(20),
		Estoque:      10,
	})
	require.NoError(t, err)

	assert.NotZero(t, resp.Codigo)
	assert.Equal(t, "25", resp.PrecoVarejo.String())
}

func TestAtualizarProdutoParcial(t *testing.T) {
	svc := NewProdutoService(newMemProdutoRepo())
	ctx := context.Background()

	criado, err := svc.Criar(ctx, dto.CriarProdutoRequest{
		Nome:        "Vela NGK CR7",
		PrecoVarejo: decimal.NewFromInt(25),
		Estoque:     10,
	})
	require.NoError(t, err)

	novoPreco := decimal.NewFromInt(28)
	resp, err := svc.Atualizar(ctx, criado.Codigo, dto.AtualizarProdutoRequest{
		PrecoVarejo: &novoPreco,
	})
	require.NoError(t, err)

	// Only the sent field changes.
	assert.Equal(t, "28", resp.PrecoVarejo.String())
	assert.Equal(t, "Vela NGK CR7", resp.Nome)
	assert.Equal(t, 10, resp.Estoque)
}

func TestAtualizarProdutoInexistente(t *testing.T) {
	svc := NewProdutoService(newMemProdutoRepo())

	nome := "qualquer"
	_, err := svc.Atualizar(context.Background(), 42, dto.AtualizarProdutoRequest{Nome: &nome})
	require.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestObterProdutoInexistente(t *testing.T) {
	svc := NewProdutoService(newMemProdutoRepo())

	_, err := svc.Obter(context.Background(), 42)
	require.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestExcluirProdutoInexistenteEhNoOp(t *testing.T) {
	svc := NewProdutoService(newMemProdutoRepo())
	require.NoError(t, svc.Excluir(context.Background(), 42))
}

func TestListarProdutosPorCategoria(t *testing.T) {
	repo := newMemProdutoRepo()
	svc := NewProdutoService(repo)
	ctx := context.Background()

	cat := uint(7)
	_, err := svc.Criar(ctx, dto.CriarProdutoRequest{Nome: "Pastilha", PrecoVarejo: decimal.NewFromInt(45), CategoriaID: &cat})
	require.NoError(t, err)
	_, err = svc.Criar(ctx, dto.CriarProdutoRequest{Nome: "Corrente", PrecoVarejo: decimal.NewFromInt(120)})
	require.NoError(t, err)

	lista, err := svc.Listar(ctx, dto.ProdutoFilter{CategoriaID: cat})
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "Pastilha", lista[0].Nome)
}
