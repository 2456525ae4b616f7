package router

import (
	"time"

	"github.com/victorjanco1992/despensa-app/internal/config"
	"github.com/victorjanco1992/despensa-app/internal/handler"
	"github.com/victorjanco1992/despensa-app/internal/infra"
	"github.com/victorjanco1992/despensa-app/internal/middleware"
	"github.com/victorjanco1992/despensa-app/internal/repository"
	"github.com/victorjanco1992/despensa-app/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, probe *middleware.ReadinessProbe) *gin.Engine {
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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mpClient := infra.NewMercadoPagoClient(cfg.MPAPIBaseURL, cfg.MPAccessToken)
	mpBreaker := infra.NewCircuitBreaker(infra.DefaultCBConfig())

	// ── Repositories ─────────────────────────────────────────────────────────
	productoRepo := repository.NewProductoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	cuentaRepo := repository.NewCuentaRepository(db)
	transferenciaRepo := repository.NewTransferenciaRepository(db)
	listaRepo := repository.NewListaComprasRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	productoSvc := service.NewProductoService(productoRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	cuentaSvc := service.NewCuentaService(cuentaRepo, productoRepo, clienteRepo)
	transferenciaSvc := service.NewTransferenciaService(
		transferenciaRepo, mpClient, mpBreaker, rdb, cfg.SyncWindowDays, cfg.TokenConfigurado())
	listaSvc := service.NewListaComprasService(listaRepo, productoRepo)
	authenticator := service.NewStaticAuthenticator(cfg.AdminPasswordHash, cfg.AdminPassword)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productosH := handler.NewProductosHandler(productoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	cuentasH := handler.NewCuentasHandler(cuentaSvc)
	transferenciasH := handler.NewTransferenciasHandler(transferenciaSvc, cfg)
	listaH := handler.NewListaComprasHandler(listaSvc)
	authH := handler.NewAuthHandler(authenticator)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb, mpBreaker))

	// All API routes wait behind the readiness gate.
	api := r.Group("/api", middleware.Readiness(probe))
	{
		api.POST("/login", middleware.LoginRateLimiter(), authH.Login)

		api.GET("/productos", productosH.Listar)
		api.GET("/productos/:id", productosH.ObtenerPorID)
		api.POST("/productos", productosH.Crear)
		api.PUT("/productos/:id", productosH.Actualizar)
		api.DELETE("/productos/:id", productosH.Eliminar)

		api.GET("/clientes", clientesH.Listar)
		api.POST("/clientes", clientesH.Crear)
		api.PUT("/clientes/:id", clientesH.Actualizar)
		api.DELETE("/clientes/:id", clientesH.Eliminar)

		// Static segments before the :clienteId wildcard.
		cuentas := api.Group("/cuentas")
		{
			cuentas.POST("", cuentasH.AgregarItem)
			cuentas.POST("/producto-suelto", cuentasH.AgregarSuelto)
			cuentas.DELETE("/item/:id", cuentasH.EliminarItem)
			cuentas.GET("/:clienteId", cuentasH.Listar)
			cuentas.PUT("/:clienteId/actualizar-precios", cuentasH.ActualizarPrecios)
			cuentas.DELETE("/:clienteId/cancelar", cuentasH.Cancelar)
		}

		transferencias := api.Group("/transferencias")
		{
			transferencias.GET("", transferenciasH.Listar)
			transferencias.GET("/sincronizar", transferenciasH.Sincronizar)
			transferencias.GET("/verificar-config", transferenciasH.VerificarConfig)
			transferencias.DELETE("/:id", transferenciasH.Eliminar)
		}

		lista := api.Group("/lista-compras")
		{
			lista.GET("", listaH.Listar)
			lista.POST("", listaH.Agregar)
			lista.PUT("/comprar-todos", listaH.MarcarTodosComprados)
			lista.DELETE("/comprados", listaH.LimpiarComprados)
			lista.PUT("/:id", listaH.Actualizar)
			lista.PUT("/:id/toggle", listaH.Toggle)
			lista.DELETE("/:id", listaH.Eliminar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
