package service

// In-memory repository fakes shared by the service unit tests. They
// implement the repository interfaces with plain maps/slices; transaction
// methods ignore the tx handle because DB() returns nil, which makes runTx
// call the closure directly.

import (
	"context"
	"errors"
	"sort"
	"time"

	"pecaspos/internal/dto"
	"pecaspos/internal/model"
	"pecaspos/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errNotFound = errors.New("not found")

// ── Relogio ───────────────────────────────────────────────────────────────────

type fixedRelogio struct{ dia string }

func (r *fixedRelogio) Hoje() string { return r.dia }

// ── CaixaRepository ───────────────────────────────────────────────────────────

type memCaixaRepo struct {
	seq    uint
	caixas map[string]*model.Caixa // keyed by data
}

func newMemCaixaRepo() *memCaixaRepo {
	return &memCaixaRepo{caixas: make(map[string]*model.Caixa)}
}

func (r *memCaixaRepo) Create(_ context.Context, c *model.Caixa) error {
	if _, ok := r.caixas[c.Data]; ok {
		return errors.New("duplicate data")
	}
	r.seq++
	c.ID = r.seq
	cp := *c
	r.caixas[c.Data] = &cp
	return nil
}

func (r *memCaixaRepo) FindByData(_ context.Context, data string) (*model.Caixa, error) {
	c, ok := r.caixas[data]
	if !ok {
		return nil, errNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCaixaRepo) Update(_ context.Context, c *model.Caixa) error {
	cp := *c
	r.caixas[c.Data] = &cp
	return nil
}

func (r *memCaixaRepo) FecharAnteriores(_ context.Context, hoje string) (int64, error) {
	var n int64
	for data, c := range r.caixas {
		if c.Aberto && data < hoje {
			c.Aberto = false
			n++
		}
	}
	return n, nil
}

func (r *memCaixaRepo) ListAll(_ context.Context) ([]model.Caixa, error) {
	out := make([]model.Caixa, 0, len(r.caixas))
	for _, c := range r.caixas {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Data > out[j].Data })
	return out, nil
}

var _ repository.CaixaRepository = (*memCaixaRepo)(nil)

// ── LancamentoRepository ──────────────────────────────────────────────────────

type memLancamentoRepo struct {
	seq   uint
	lancs []model.Lancamento
	err   error // when set, every method fails
}

func (r *memLancamentoRepo) add(l *model.Lancamento) {
	r.seq++
	l.ID = r.seq
	l.CreatedAt = time.Now()
	r.lancs = append(r.lancs, *l)
}

func (r *memLancamentoRepo) Create(_ context.Context, l *model.Lancamento) error {
	if r.err != nil {
		return r.err
	}
	r.add(l)
	return nil
}

func (r *memLancamentoRepo) CreateTx(_ *gorm.DB, l *model.Lancamento) error {
	if r.err != nil {
		return r.err
	}
	r.add(l)
	return nil
}

func (r *memLancamentoRepo) ListByData(_ context.Context, data string) ([]model.Lancamento, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []model.Lancamento
	for _, l := range r.lancs {
		if l.Data == data {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memLancamentoRepo) SomarPorData(_ context.Context, data string) (repository.SomaLancamentos, error) {
	if r.err != nil {
		return repository.SomaLancamentos{}, r.err
	}
	soma := repository.SomaLancamentos{EntradasManuais: decimal.Zero, Saidas: decimal.Zero}
	for _, l := range r.lancs {
		if l.Data != data {
			continue
		}
		switch {
		case l.Tipo == model.LancamentoEntrada && l.VendaID == nil:
			soma.EntradasManuais = soma.EntradasManuais.Add(l.Valor)
		case l.Tipo == model.LancamentoSaida:
			soma.Saidas = soma.Saidas.Add(l.Valor)
		}
	}
	return soma, nil
}

var _ repository.LancamentoRepository = (*memLancamentoRepo)(nil)

// ── VendaRepository ───────────────────────────────────────────────────────────

type memVendaRepo struct {
	seq    uint
	vendas []model.Venda
	err    error
}

func (r *memVendaRepo) CreateTx(_ *gorm.DB, v *model.Venda) error {
	if r.err != nil {
		return r.err
	}
	r.seq++
	v.ID = r.seq
	v.CreatedAt = time.Now()
	for i := range v.Itens {
		v.Itens[i].VendaID = v.ID
	}
	r.vendas = append(r.vendas, *v)
	return nil
}

func (r *memVendaRepo) FindByID(_ context.Context, id uint) (*model.Venda, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.vendas {
		if r.vendas[i].ID == id {
			cp := r.vendas[i]
			return &cp, nil
		}
	}
	return nil, errNotFound
}

func (r *memVendaRepo) ListByData(_ context.Context, data string) ([]model.Venda, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []model.Venda
	for _, v := range r.vendas {
		if v.Data == data {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *memVendaRepo) SomarTotalPorData(_ context.Context, data string) (decimal.Decimal, error) {
	if r.err != nil {
		return decimal.Zero, r.err
	}
	total := decimal.Zero
	for _, v := range r.vendas {
		if v.Data == data {
			total = total.Add(v.Total)
		}
	}
	return total, nil
}

func (r *memVendaRepo) DB() *gorm.DB { return nil }

var _ repository.VendaRepository = (*memVendaRepo)(nil)

// ── ProdutoRepository ─────────────────────────────────────────────────────────

type memProdutoRepo struct {
	seq      uint
	produtos map[uint]*model.Produto
}

func newMemProdutoRepo() *memProdutoRepo {
	return &memProdutoRepo{produtos: make(map[uint]*model.Produto)}
}

func (r *memProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	r.seq++
	p.ID = r.seq
	cp := *p
	r.produtos[p.ID] = &cp
	return nil
}

func (r *memProdutoRepo) FindByCodigo(_ context.Context, codigo uint) (*model.Produto, error) {
	p, ok := r.produtos[codigo]
	if !ok {
		return nil, errNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProdutoRepo) List(_ context.Context, filter dto.ProdutoFilter) ([]model.Produto, error) {
	out := make([]model.Produto, 0, len(r.produtos))
	for _, p := range r.produtos {
		if filter.CategoriaID != 0 && (p.CategoriaID == nil || *p.CategoriaID != filter.CategoriaID) {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProdutoRepo) Update(_ context.Context, p *model.Produto) error {
	cp := *p
	r.produtos[p.ID] = &cp
	return nil
}

func (r *memProdutoRepo) Delete(_ context.Context, codigo uint) error {
	delete(r.produtos, codigo)
	return nil
}

func (r *memProdutoRepo) BaixarEstoqueTx(_ *gorm.DB, codigo uint, quantidade int) error {
	p, ok := r.produtos[codigo]
	if !ok {
		return nil
	}
	p.Estoque -= quantidade
	if p.Estoque < 0 {
		p.Estoque = 0
	}
	return nil
}

var _ repository.ProdutoRepository = (*memProdutoRepo)(nil)

// ── OrcamentoRepository ───────────────────────────────────────────────────────

type memOrcamentoRepo struct {
	seq     uint
	itemSeq uint
	orcs    map[uint]*model.Orcamento
	itens   []model.OrcamentoItem
}

func newMemOrcamentoRepo() *memOrcamentoRepo {
	return &memOrcamentoRepo{orcs: make(map[uint]*model.Orcamento)}
}

func (r *memOrcamentoRepo) Create(_ context.Context, o *model.Orcamento) error {
	r.seq++
	o.ID = r.seq
	cp := *o
	cp.Itens = nil
	r.orcs[o.ID] = &cp
	return nil
}

func (r *memOrcamentoRepo) FindByID(_ context.Context, id uint) (*model.Orcamento, error) {
	o, ok := r.orcs[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *o
	cp.Itens = r.itensDe(id)
	return &cp, nil
}

func (r *memOrcamentoRepo) List(_ context.Context) ([]model.Orcamento, error) {
	out := make([]model.Orcamento, 0, len(r.orcs))
	for id, o := range r.orcs {
		cp := *o
		cp.Itens = r.itensDe(id)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memOrcamentoRepo) CreateItemTx(_ *gorm.DB, item *model.OrcamentoItem) error {
	r.itemSeq++
	item.ID = r.itemSeq
	r.itens = append(r.itens, *item)
	return nil
}

func (r *memOrcamentoRepo) DeleteItemTx(_ *gorm.DB, orcamentoID uint, posicao int) error {
	kept := r.itens[:0]
	for _, it := range r.itens {
		if it.OrcamentoID == orcamentoID && it.Posicao == posicao {
			continue
		}
		kept = append(kept, it)
	}
	r.itens = kept
	return nil
}

func (r *memOrcamentoRepo) ReindexItensTx(_ *gorm.DB, orcamentoID uint) error {
	itens := r.itensDe(orcamentoID)
	for i, it := range itens {
		for j := range r.itens {
			if r.itens[j].ID == it.ID {
				r.itens[j].Posicao = i
			}
		}
	}
	return nil
}

func (r *memOrcamentoRepo) UpdateTx(_ *gorm.DB, o *model.Orcamento) error {
	cp := *o
	cp.Itens = nil
	r.orcs[o.ID] = &cp
	return nil
}

func (r *memOrcamentoRepo) DB() *gorm.DB { return nil }

func (r *memOrcamentoRepo) itensDe(orcamentoID uint) []model.OrcamentoItem {
	var out []model.OrcamentoItem
	for _, it := range r.itens {
		if it.OrcamentoID == orcamentoID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Posicao < out[j].Posicao })
	return out
}

var _ repository.OrcamentoRepository = (*memOrcamentoRepo)(nil)

// ── CategoriaRepository ───────────────────────────────────────────────────────

type memCategoriaRepo struct {
	seq      uint
	cats     map[uint]*model.Categoria
	produtos *memProdutoRepo // for DeleteDetaching
}

func newMemCategoriaRepo(produtos *memProdutoRepo) *memCategoriaRepo {
	return &memCategoriaRepo{cats: make(map[uint]*model.Categoria), produtos: produtos}
}

func (r *memCategoriaRepo) Create(_ context.Context, c *model.Categoria) error {
	r.seq++
	c.ID = r.seq
	cp := *c
	r.cats[c.ID] = &cp
	return nil
}

func (r *memCategoriaRepo) FindByID(_ context.Context, id uint) (*model.Categoria, error) {
	c, ok := r.cats[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoriaRepo) FindByNome(_ context.Context, nome string) (*model.Categoria, error) {
	for _, c := range r.cats {
		if c.Nome == nome {
			cp := *c
			return &cp, nil
		}
	}
	return nil, errNotFound
}

func (r *memCategoriaRepo) List(_ context.Context) ([]model.Categoria, error) {
	out := make([]model.Categoria, 0, len(r.cats))
	for _, c := range r.cats {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *memCategoriaRepo) DeleteDetaching(_ context.Context, id uint) error {
	if r.produtos != nil {
		for _, p := range r.produtos.produtos {
			if p.CategoriaID != nil && *p.CategoriaID == id {
				p.CategoriaID = nil
			}
		}
	}
	delete(r.cats, id)
	return nil
}

var _ repository.CategoriaRepository = (*memCategoriaRepo)(nil)

// ── UsuarioRepository ─────────────────────────────────────────────────────────

type memUsuarioRepo struct {
	seq   uint
	users map[uint]*model.Usuario
}

func newMemUsuarioRepo() *memUsuarioRepo {
	return &memUsuarioRepo{users: make(map[uint]*model.Usuario)}
}

func (r *memUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	r.seq++
	u.ID = r.seq
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.Username == username && u.Ativo {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errNotFound
}

func (r *memUsuarioRepo) FindByID(_ context.Context, id uint) (*model.Usuario, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *u
	return &cp, nil
}

var _ repository.UsuarioRepository = (*memUsuarioRepo)(nil)
