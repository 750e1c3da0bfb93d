package service_test

// In-memory repository stubs mirroring the behavior of the GORM
// implementations: misses return gorm.ErrRecordNotFound, Create assigns the
// next id and the creation timestamp, DB() returns nil so services run their
// unit of work without a real transaction.

import (
	"context"
	"time"

	"gestao/internal/model"
	"gestao/internal/repository"

	"gorm.io/gorm"
)

// ── ClienteRepository stub ───────────────────────────────────────────────────

type stubClienteRepo struct {
	seq      uint
	clientes []*model.Cliente
	pedidos  map[uint][]model.Pedido
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{pedidos: make(map[uint][]model.Pedido)}
}

func (r *stubClienteRepo) DB() *gorm.DB { return nil }

func (r *stubClienteRepo) Create(_ context.Context, _ *gorm.DB, c *model.Cliente) error {
	r.seq++
	c.ID = r.seq
	if c.DataCriacao.IsZero() {
		c.DataCriacao = time.Now()
	}
	r.clientes = append(r.clientes, c)
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uint) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) FindByCPF(_ context.Context, cpf string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.CPF == cpf {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) FindByEmail(_ context.Context, email string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) List(_ context.Context, skip, limit int) ([]model.Cliente, error) {
	result := make([]model.Cliente, 0)
	for i := skip; i < len(r.clientes) && len(result) < limit; i++ {
		result = append(result, *r.clientes[i])
	}
	return result, nil
}

func (r *stubClienteRepo) Update(_ context.Context, _ *gorm.DB, c *model.Cliente) error {
	for i, existing := range r.clientes {
		if existing.ID == c.ID {
			r.clientes[i] = c
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) Delete(_ context.Context, _ *gorm.DB, id uint) error {
	for i, c := range r.clientes {
		if c.ID == id {
			r.clientes = append(r.clientes[:i], r.clientes[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) ListPedidos(_ context.Context, clienteID uint) ([]model.Pedido, error) {
	return r.pedidos[clienteID], nil
}

func (r *stubClienteRepo) CountPedidos(_ context.Context, clienteID uint) (int64, error) {
	return int64(len(r.pedidos[clienteID])), nil
}

func (r *stubClienteRepo) SearchByNome(_ context.Context, nome string) ([]model.Cliente, error) {
	result := make([]model.Cliente, 0)
	for _, c := range r.clientes {
		if containsFold(c.Nome, nome) {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (r *stubClienteRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.clientes)), nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// containsFold reproduces ILIKE '%nome%' for the stub.
func containsFold(s, substr string) bool {
	s = lower(s)
	substr = lower(substr)
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// ── CategoriaRepository stub ─────────────────────────────────────────────────

type stubCategoriaRepo struct {
	seq        uint
	categorias []*model.Categoria
	produtos   map[uint]int64 // categoriaID → produto count
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{produtos: make(map[uint]int64)}
}

func (r *stubCategoriaRepo) DB() *gorm.DB { return nil }

func (r *stubCategoriaRepo) Create(_ context.Context, _ *gorm.DB, c *model.Categoria) error {
	r.seq++
	c.ID = r.seq
	r.categorias = append(r.categorias, c)
	return nil
}

func (r *stubCategoriaRepo) FindByID(_ context.Context, id uint) (*model.Categoria, error) {
	for _, c := range r.categorias {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoriaRepo) FindByNome(_ context.Context, nome string) (*model.Categoria, error) {
	for _, c := range r.categorias {
		if c.Nome == nome {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoriaRepo) List(_ context.Context) ([]model.Categoria, error) {
	result := make([]model.Categoria, 0, len(r.categorias))
	for _, c := range r.categorias {
		result = append(result, *c)
	}
	return result, nil
}

func (r *stubCategoriaRepo) Update(_ context.Context, _ *gorm.DB, c *model.Categoria) error {
	for i, existing := range r.categorias {
		if existing.ID == c.ID {
			r.categorias[i] = c
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubCategoriaRepo) Delete(_ context.Context, _ *gorm.DB, id uint) error {
	for i, c := range r.categorias {
		if c.ID == id {
			r.categorias = append(r.categorias[:i], r.categorias[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubCategoriaRepo) CountProdutos(_ context.Context, categoriaID uint) (int64, error) {
	return r.produtos[categoriaID], nil
}

var _ repository.CategoriaRepository = (*stubCategoriaRepo)(nil)

// ── FornecedorRepository stub ────────────────────────────────────────────────

type stubFornecedorRepo struct {
	seq          uint
	fornecedores []*model.Fornecedor
	produtos     map[uint]int64
}

func newStubFornecedorRepo() *stubFornecedorRepo {
	return &stubFornecedorRepo{produtos: make(map[uint]int64)}
}

func (r *stubFornecedorRepo) DB() *gorm.DB { return nil }

func (r *stubFornecedorRepo) Create(_ context.Context, _ *gorm.DB, f *model.Fornecedor) error {
	r.seq++
	f.ID = r.seq
	r.fornecedores = append(r.fornecedores, f)
	return nil
}

func (r *stubFornecedorRepo) FindByID(_ context.Context, id uint) (*model.Fornecedor, error) {
	for _, f := range r.fornecedores {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubFornecedorRepo) FindByEmail(_ context.Context, email string) (*model.Fornecedor, error) {
	for _, f := range r.fornecedores {
		if f.Email == email {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubFornecedorRepo) List(_ context.Context) ([]model.Fornecedor, error) {
	result := make([]model.Fornecedor, 0, len(r.fornecedores))
	for _, f := range r.fornecedores {
		result = append(result, *f)
	}
	return result, nil
}

func (r *stubFornecedorRepo) Update(_ context.Context, _ *gorm.DB, f *model.Fornecedor) error {
	for i, existing := range r.fornecedores {
		if existing.ID == f.ID {
			r.fornecedores[i] = f
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubFornecedorRepo) Delete(_ context.Context, _ *gorm.DB, id uint) error {
	for i, f := range r.fornecedores {
		if f.ID == id {
			r.fornecedores = append(r.fornecedores[:i], r.fornecedores[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubFornecedorRepo) CountProdutos(_ context.Context, fornecedorID uint) (int64, error) {
	return r.produtos[fornecedorID], nil
}

var _ repository.FornecedorRepository = (*stubFornecedorRepo)(nil)

// ── ProdutoRepository stub ───────────────────────────────────────────────────

type stubProdutoRepo struct {
	seq      uint
	produtos []*model.Produto
	itens    map[uint]int64 // produtoID → pedido item count
}

func newStubProdutoRepo() *stubProdutoRepo {
	return &stubProdutoRepo{itens: make(map[uint]int64)}
}

func (r *stubProdutoRepo) DB() *gorm.DB { return nil }

func (r *stubProdutoRepo) Create(_ context.Context, _ *gorm.DB, p *model.Produto) error {
	r.seq++
	p.ID = r.seq
	if p.DataCriacao.IsZero() {
		p.DataCriacao = time.Now()
	}
	r.produtos = append(r.produtos, p)
	return nil
}

func (r *stubProdutoRepo) FindByID(_ context.Context, id uint) (*model.Produto, error) {
	for _, p := range r.produtos {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProdutoRepo) List(_ context.Context, skip, limit int) ([]model.Produto, error) {
	result := make([]model.Produto, 0)
	for i := skip; i < len(r.produtos) && len(result) < limit; i++ {
		result = append(result, *r.produtos[i])
	}
	return result, nil
}

func (r *stubProdutoRepo) Update(_ context.Context, _ *gorm.DB, p *model.Produto) error {
	for i, existing := range r.produtos {
		if existing.ID == p.ID {
			r.produtos[i] = p
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubProdutoRepo) Delete(_ context.Context, _ *gorm.DB, id uint) error {
	for i, p := range r.produtos {
		if p.ID == id {
			r.produtos = append(r.produtos[:i], r.produtos[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubProdutoRepo) CountItens(_ context.Context, produtoID uint) (int64, error) {
	return r.itens[produtoID], nil
}

var _ repository.ProdutoRepository = (*stubProdutoRepo)(nil)

// ── PedidoRepository stub ────────────────────────────────────────────────────

type stubPedidoRepo struct {
	seq     uint
	itemSeq uint
	pedidos []*model.Pedido
}

func newStubPedidoRepo() *stubPedidoRepo { return &stubPedidoRepo{} }

func (r *stubPedidoRepo) DB() *gorm.DB { return nil }

func (r *stubPedidoRepo) Create(_ context.Context, _ *gorm.DB, p *model.Pedido) error {
	r.seq++
	p.ID = r.seq
	if p.DataPedido.IsZero() {
		p.DataPedido = time.Now()
	}
	for i := range p.Itens {
		r.itemSeq++
		p.Itens[i].ID = r.itemSeq
		p.Itens[i].PedidoID = p.ID
	}
	r.pedidos = append(r.pedidos, p)
	return nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id uint) (*model.Pedido, error) {
	for _, p := range r.pedidos {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPedidoRepo) List(_ context.Context, skip, limit int) ([]model.Pedido, error) {
	result := make([]model.Pedido, 0)
	for i := skip; i < len(r.pedidos) && len(result) < limit; i++ {
		result = append(result, *r.pedidos[i])
	}
	return result, nil
}

func (r *stubPedidoRepo) UpdateStatus(_ context.Context, _ *gorm.DB, id uint, status string) error {
	for _, p := range r.pedidos {
		if p.ID == id {
			p.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubPedidoRepo) Delete(_ context.Context, _ *gorm.DB, id uint) error {
	for i, p := range r.pedidos {
		if p.ID == id {
			r.pedidos = append(r.pedidos[:i], r.pedidos[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

// ── FuncionarioRepository stub ───────────────────────────────────────────────

type stubFuncionarioRepo struct {
	seq          uint
	funcionarios []*model.Funcionario
	pedidos      map[uint]int64
}

func newStubFuncionarioRepo() *stubFuncionarioRepo {
	return &stubFuncionarioRepo{pedidos: make(map[uint]int64)}
}

func (r *stubFuncionarioRepo) DB() *gorm.DB { return nil }

func (r *stubFuncionarioRepo) Create(_ context.Context, _ *gorm.DB, f *model.Funcionario) error {
	r.seq++
	f.ID = r.seq
	if f.DataContratacao.IsZero() {
		f.DataContratacao = time.Now()
	}
	r.funcionarios = append(r.funcionarios, f)
	return nil
}

func (r *stubFuncionarioRepo) FindByID(_ context.Context, id uint) (*model.Funcionario, error) {
	for _, f := range r.funcionarios {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubFuncionarioRepo) FindByEmail(_ context.Context, email string) (*model.Funcionario, error) {
	for _, f := range r.funcionarios {
		if f.Email == email {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubFuncionarioRepo) List(_ context.Context) ([]model.Funcionario, error) {
	result := make([]model.Funcionario, 0, len(r.funcionarios))
	for _, f := range r.funcionarios {
		result = append(result, *f)
	}
	return result, nil
}

func (r *stubFuncionarioRepo) Update(_ context.Context, _ *gorm.DB, f *model.Funcionario) error {
	for i, existing := range r.funcionarios {
		if existing.ID == f.ID {
			r.funcionarios[i] = f
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubFuncionarioRepo) Delete(_ context.Context, _ *gorm.DB, id uint) error {
	for i, f := range r.funcionarios {
		if f.ID == id {
			r.funcionarios = append(r.funcionarios[:i], r.funcionarios[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubFuncionarioRepo) CountPedidos(_ context.Context, funcionarioID uint) (int64, error) {
	return r.pedidos[funcionarioID], nil
}

var _ repository.FuncionarioRepository = (*stubFuncionarioRepo)(nil)
