package service

import (
	"context"
	"testing"

	"pecaspos/internal/apierror"
	"pecaspos/internal/dto"
	"pecaspos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrcamentoFixture(hoje string) (OrcamentoService, *memOrcamentoRepo, *memProdutoRepo, *memVendaRepo, *memLancamentoRepo) {
	orcs := newMemOrcamentoRepo()
	produtos := newMemProdutoRepo()
	vendas := &memVendaRepo{}
	lancs := &memLancamentoRepo{}
	svc := NewOrcamentoService(orcs, produtos, vendas, lancs, &fixedRelogio{dia: hoje}, nil)
	return svc, orcs, produtos, vendas, lancs
}

func criarOrcamento(t *testing.T, svc OrcamentoService) uint {
	t.Helper()
	resp, err := svc.Criar(context.Background(), dto.CriarOrcamentoRequest{
		ClienteNome:     "João da Silva",
		ClienteTelefone: "11 98888-7777",
		MotoModelo:      "CG 160",
		MotoAno:         "2021",
	})
	require.NoError(t, err)
	return resp.ID
}

func TestCriarOrcamentoComecaAbertoEVazio(t *testing.T) {
	svc, _, _, _, _ := newOrcamentoFixture("2026-03-10")

	resp, err := svc.Criar(context.Background(), dto.CriarOrcamentoRequest{ClienteNome: "Maria"})
	require.NoError(t, err)

	assert.Equal(t, model.OrcamentoAberto, resp.Status)
	assert.Equal(t, "0", resp.Total.String())
	assert.Empty(t, resp.Itens)
	assert.Equal(t, "2026-03-10", resp.DataCriacao)
}

func TestAddItemMantemTotalEPosicoes(t *testing.T) {
	svc, _, produtos, _, _ := newOrcamentoFixture("2026-03-10")
	ctx := context.Background()

	vela := seedProduto(t, produtos, "Vela NGK CR7", 25, 10)
	oleo := seedProduto(t, produtos, "Óleo 10W30 1L", 40, 5)
	id := criarOrcamento(t, svc)

	_, err := svc.AddItem(ctx, id, dto.AddItemOrcamentoRequest{ProdutoCodigo: vela, Quantidade: 2})
	require.NoError(t, err)
	resp, err := svc.AddItem(ctx, id, dto.AddItemOrcamentoRequest{ProdutoCodigo: oleo, Quantidade: 1})
	require.NoError(t, err)

	assert.Equal(t, "90", resp.Total.String())
	require.Len(t, resp.Itens, 2)
	assert.Equal(t, 0, resp.Itens[0].Posicao)
	assert.Equal(t, 1, resp.Itens[1].Posicao)
	assert.Equal(t, "50", resp.Itens[0].Subtotal.String())
}

func TestAddItemProdutoInexistente(t *testing.T) {
	svc, _, _, _, _ := newOrcamentoFixture("2026-03-10")
	id := criarOrcamento(t, svc)

	_, err := svc.AddItem(context.Background(), id, dto.AddItemOrcamentoRequest{ProdutoCodigo: 999, Quantidade: 1})
	require.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestRemoveItemReindexaEAtualizaTotal(t *testing.T) {
	svc, _, produtos, _, _ := newOrcamentoFixture("2026-03-10")
	ctx := context.Background()

	a := seedProduto(t, produtos, "Peça A", 10, 9)
	b := seedProduto(t, produtos, "Peça B", 20, 9)
	c := seedProduto(t, produtos, "Peça C", 30, 9)
	id := criarOrcamento(t, svc)

	for _, codigo := range []uint{a, b, c} {
		_, err := svc.AddItem(ctx, id, dto.AddItemOrcamentoRequest{ProdutoCodigo: codigo, Quantidade: 1})
		require.NoError(t, err)
	}

	resp, err := svc.RemoveItem(ctx, id, 1)
	require.NoError(t, err)

	assert.Equal(t, "40", resp.Total.String())
	require.Len(t, resp.Itens, 2)
	assert.Equal(t, 0, resp.Itens[0].Posicao)
	assert.Equal(t, "Peça A", resp.Itens[0].Nome)
	assert.Equal(t, 1, resp.Itens[1].Posicao)
	assert.Equal(t, "Peça C", resp.Itens[1].Nome)
}

func TestRemoveItemPosicaoForaDoIntervalo(t *testing.T) {
	svc, _, produtos, _, _ := newOrcamentoFixture("2026-03-10")
	ctx := context.Background()

	codigo := seedProduto(t, produtos, "Peça A", 10, 9)
	id := criarOrcamento(t, svc)
	_, err := svc.AddItem(ctx, id, dto.AddItemOrcamentoRequest{ProdutoCodigo: codigo, Quantidade: 1})
	require.NoError(t, err)

	// Stale index from the client: no error, nothing changes.
	resp, err := svc.RemoveItem(ctx, id, 5)
	require.NoError(t, err)
	require.Len(t, resp.Itens, 1)
	assert.Equal(t, "10", resp.Total.String())
}

func TestFecharOrcamentoEmiteVendaELancamentoVinculado(t *testing.T) {
	svc, _, produtos, vendas, lancs := newOrcamentoFixture("2026-03-10")
	ctx := context.Background()

	codigo := seedProduto(t, produtos, "Kit relação", 150, 3)
	id := criarOrcamento(t, svc)
	_, err := svc.AddItem(ctx, id, dto.AddItemOrcamentoRequest{ProdutoCodigo: codigo, Quantidade: 2})
	require.NoError(t, err)

	resp, err := svc.Fechar(ctx, id, "pix")
	require.NoError(t, err)

	assert.Equal(t, model.OrcamentoFechado, resp.Orcamento.Status)
	assert.Equal(t, "pix", resp.Orcamento.FormaPagamento)
	require.NotZero(t, resp.VendaID)

	venda, err := vendas.FindByID(ctx, resp.VendaID)
	require.NoError(t, err)
	assert.Equal(t, "300", venda.Total.String())
	assert.Equal(t, "2026-03-10", venda.Data)
	require.Len(t, venda.Itens, 1)

	require.Len(t, lancs.lancs, 1)
	assert.Equal(t, model.LancamentoEntrada, lancs.lancs[0].Tipo)
	require.NotNil(t, lancs.lancs[0].VendaID)
	assert.Equal(t, resp.VendaID, *lancs.lancs[0].VendaID)
}

func TestFecharOrcamentoDuasVezes(t *testing.T) {
	svc, _, produtos, _, _ := newOrcamentoFixture("2026-03-10")
	ctx := context.Background()

	codigo := seedProduto(t, produtos, "Kit relação", 150, 3)
	id := criarOrcamento(t, svc)
	_, err := svc.AddItem(ctx, id, dto.AddItemOrcamentoRequest{ProdutoCodigo: codigo, Quantidade: 1})
	require.NoError(t, err)

	_, err = svc.Fechar(ctx, id, "pix")
	require.NoError(t, err)

	_, err = svc.Fechar(ctx, id, "dinheiro")
	require.ErrorIs(t, err, apierror.ErrValidation)
}

func TestFecharOrcamentoSemFormaPagamento(t *testing.T) {
	svc, _, _, _, _ := newOrcamentoFixture("2026-03-10")
	id := criarOrcamento(t, svc)

	_, err := svc.Fechar(context.Background(), id, "")
	require.ErrorIs(t, err, apierror.ErrValidation)
}

func TestOrcamentoFechadoNaoAceitaMutacoes(t *testing.T) {
	svc, _, produtos, _, _ := newOrcamentoFixture("2026-03-10")
	ctx := context.Background()

	codigo := seedProduto(t, produtos, "Kit relação", 150, 3)
	id := criarOrcamento(t, svc)
	_, err := svc.AddItem(ctx, id, dto.AddItemOrcamentoRequest{ProdutoCodigo: codigo, Quantidade: 1})
	require.NoError(t, err)
	_, err = svc.Fechar(ctx, id, "pix")
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, id, dto.AddItemOrcamentoRequest{ProdutoCodigo: codigo, Quantidade: 1})
	require.ErrorIs(t, err, apierror.ErrValidation)

	_, err = svc.RemoveItem(ctx, id, 0)
	require.ErrorIs(t, err, apierror.ErrValidation)
}

func TestFecharNaoBaixaEstoque(t *testing.T) {
	// Closing a quotation records the sale; stock was never reserved and
	// is not decremented here.
	svc, _, produtos, _, _ := newOrcamentoFixture("2026-03-10")
	ctx := context.Background()

	codigo := seedProduto(t, produtos, "Kit relação", 150, 3)
	id := criarOrcamento(t, svc)
	_, err := svc.AddItem(ctx, id, dto.AddItemOrcamentoRequest{ProdutoCodigo: codigo, Quantidade: 2})
	require.NoError(t, err)
	_, err = svc.Fechar(ctx, id, "pix")
	require.NoError(t, err)

	p, err := produtos.FindByCodigo(ctx, codigo)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Estoque)
}

func TestEnviarSemDispatcher(t *testing.T) {
	svc, _, _, _, _ := newOrcamentoFixture("2026-03-10")
	id := criarOrcamento(t, svc)

	err := svc.Enviar(context.Background(), id, "cliente@example.com")
	require.ErrorIs(t, err, apierror.ErrDegraded)
}

func TestEnviarOrcamentoInexistente(t *testing.T) {
	svc, _, _, _, _ := newOrcamentoFixture("2026-03-10")

	err := svc.Enviar(context.Background(), 42, "cliente@example.com")
	require.ErrorIs(t, err, apierror.ErrNotFound)
}
