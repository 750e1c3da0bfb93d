package router

import (
	"time"

	"gestao/internal/config"
	"gestao/internal/handler"
	"gestao/internal/middleware"
	"gestao/internal/repository"
	"gestao/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMin, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	clienteRepo := repository.NewClienteRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	fornecedorRepo := repository.NewFornecedorRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	funcionarioRepo := repository.NewFuncionarioRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	clienteSvc := service.NewClienteService(clienteRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	fornecedorSvc := service.NewFornecedorService(fornecedorRepo)
	produtoSvc := service.NewProdutoService(produtoRepo, categoriaRepo, fornecedorRepo, rdb)
	pedidoSvc := service.NewPedidoService(pedidoRepo, clienteRepo, produtoRepo, funcionarioRepo)
	funcionarioSvc := service.NewFuncionarioService(funcionarioRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	clientesH := handler.NewClientesHandler(clienteSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	fornecedoresH := handler.NewFornecedoresHandler(fornecedorSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	funcionariosH := handler.NewFuncionariosHandler(funcionarioSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/", handler.Root())
	r.GET("/health", handler.Health(db, rdb))

	clientes := r.Group("/clientes")
	{
		clientes.POST("", clientesH.Criar)
		clientes.GET("", clientesH.Listar)
		// Fixed segments before the :id wildcard so gin does not shadow them
		clientes.GET("/cpf/:cpf", clientesH.ObterPorCPF)
		clientes.GET("/buscar/nome", clientesH.BuscarPorNome)
		clientes.GET("/estatisticas/total", clientesH.Contar)
		clientes.GET("/:id", clientesH.ObterPorID)
		clientes.PUT("/:id", clientesH.Atualizar)
		clientes.PATCH("/:id/email", clientesH.AtualizarEmail)
		clientes.DELETE("/:id", clientesH.Deletar)
		clientes.GET("/:id/pedidos", clientesH.ListarPedidos)
	}

	categorias := r.Group("/categorias")
	{
		categorias.POST("", categoriasH.Criar)
		categorias.GET("", categoriasH.Listar)
		categorias.GET("/:id", categoriasH.ObterPorID)
		categorias.PUT("/:id", categoriasH.Atualizar)
		categorias.DELETE("/:id", categoriasH.Deletar)
	}

	fornecedores := r.Group("/fornecedores")
	{
		fornecedores.POST("", fornecedoresH.Criar)
		fornecedores.GET("", fornecedoresH.Listar)
		fornecedores.GET("/:id", fornecedoresH.ObterPorID)
		fornecedores.PUT("/:id", fornecedoresH.Atualizar)
		fornecedores.DELETE("/:id", fornecedoresH.Deletar)
	}

	produtos := r.Group("/produtos")
	{
		produtos.POST("", produtosH.Criar)
		produtos.GET("", produtosH.Listar)
		produtos.GET("/:id", produtosH.ObterPorID)
		produtos.PUT("/:id", produtosH.Atualizar)
		produtos.DELETE("/:id", produtosH.Deletar)
	}

	pedidos := r.Group("/pedidos")
	{
		pedidos.POST("", pedidosH.Criar)
		pedidos.GET("", pedidosH.Listar)
		pedidos.GET("/:id", pedidosH.ObterPorID)
		pedidos.PATCH("/:id/status", pedidosH.AtualizarStatus)
		pedidos.DELETE("/:id", pedidosH.Deletar)
	}

	funcionarios := r.Group("/funcionarios")
	{
		funcionarios.POST("", funcionariosH.Criar)
		funcionarios.GET("", funcionariosH.Listar)
		funcionarios.GET("/:id", funcionariosH.ObterPorID)
		funcionarios.PUT("/:id", funcionariosH.Atualizar)
		funcionarios.DELETE("/:id", funcionariosH.Deletar)
	}

	return r
}
