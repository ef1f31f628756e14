package router

import (
	"time"

	"pecaspos/internal/config"
	"pecaspos/internal/handler"
	"pecaspos/internal/infra"
	"pecaspos/internal/middleware"
	"pecaspos/internal/repository"
	"pecaspos/internal/service"
	"pecaspos/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, mailer *infra.Mailer, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	caixaRepo := repository.NewCaixaRepository(db)
	lancamentoRepo := repository.NewLancamentoRepository(db)
	vendaRepo := repository.NewVendaRepository(db)
	orcamentoRepo := repository.NewOrcamentoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	relogio := service.NewRelogio(cfg.Timezone)
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	produtoSvc := service.NewProdutoService(produtoRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	caixaSvc := service.NewCaixaService(caixaRepo, lancamentoRepo, vendaRepo, relogio)
	vendaSvc := service.NewVendaService(vendaRepo, produtoRepo, lancamentoRepo, relogio)
	orcamentoSvc := service.NewOrcamentoService(orcamentoRepo, produtoRepo, vendaRepo, lancamentoRepo, relogio, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	produtosH := handler.NewProdutoHandler(produtoSvc)
	categoriasH := handler.NewCategoriaHandler(categoriaSvc)
	caixaH := handler.NewCaixaHandler(caixaSvc)
	vendasH := handler.NewVendaHandler(vendaSvc)
	orcamentosH := handler.NewOrcamentoHandler(orcamentoSvc)
	precosH := handler.NewPrecoHandler(produtoRepo, rdb)

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, mailer))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes. The rollover middleware settles stale register days
	// before any caixa-sensitive operation runs.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW, middleware.Rollover(caixaSvc.Rollover))
	{
		caixa := v1.Group("/caixa")
		{
			caixa.GET("", caixaH.Dia)
			caixa.POST("/abrir", caixaH.Abrir)
			caixa.POST("/fechar", caixaH.Fechar)
			caixa.POST("/reabrir", caixaH.Reabrir)
			caixa.POST("/lancamentos", caixaH.RegistrarLancamento)
			caixa.GET("/historico", caixaH.Historico)
		}

		v1.POST("/vendas", vendasH.Registrar)
		v1.GET("/vendas/:id", vendasH.Obter)
		v1.GET("/movimentacoes", vendasH.Movimentacoes)

		orc := v1.Group("/orcamentos")
		{
			orc.POST("", orcamentosH.Criar)
			orc.GET("", orcamentosH.Listar)
			orc.GET("/:id", orcamentosH.Obter)
			orc.POST("/:id/itens", orcamentosH.AddItem)
			orc.DELETE("/:id/itens/:posicao", orcamentosH.RemoveItem)
			orc.POST("/:id/fechar", orcamentosH.Fechar)
			orc.POST("/:id/enviar", orcamentosH.Enviar)
		}

		prods := v1.Group("/produtos")
		{
			prods.POST("", produtosH.Criar)
			prods.GET("", produtosH.Listar)
			prods.GET("/:codigo", produtosH.Obter)
			prods.PUT("/:codigo", produtosH.Atualizar)
			prods.DELETE("/:codigo", produtosH.Excluir)
		}

		cats := v1.Group("/categorias")
		{
			cats.POST("", categoriasH.Criar)
			cats.GET("", categoriasH.Listar)
			cats.DELETE("/:id", categoriasH.Excluir)
		}

		v1.GET("/precos/:codigo", precosH.GetPrecoPorCodigo)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
