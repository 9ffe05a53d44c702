package router

import (
	"time"

	"github.com/Jaimelll/procesos/internal/config"
	"github.com/Jaimelll/procesos/internal/handler"
	"github.com/Jaimelll/procesos/internal/middleware"
	"github.com/Jaimelll/procesos/internal/repository"
	"github.com/Jaimelll/procesos/internal/service"
	"github.com/Jaimelll/procesos/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	procesoRepo := repository.NewProcesoRepository(db)
	eventoRepo := repository.NewEventoRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	catalogoSvc := service.NewCatalogoService(catalogoRepo)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	procesoSvc := service.NewProcesoService(procesoRepo, eventoRepo, catalogoSvc, dispatcher, cfg)
	eventoSvc := service.NewEventoService(eventoRepo, procesoRepo, catalogoSvc, dispatcher, cfg)
	tableroSvc := service.NewTableroService(procesoRepo, eventoRepo, catalogoSvc, rdb, cfg)

	// ── Handlers ─────────────────────────────────────────────────────────────
	procesosH := handler.NewProcesosHandler(procesoSvc)
	eventosH := handler.NewEventosHandler(eventoSvc)
	catalogoH := handler.NewCatalogoHandler(catalogoSvc)
	tableroH := handler.NewTableroHandler(tableroSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Protected routes — tokens come from the organization's identity provider
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		procesos := v1.Group("/procesos")
		{
			procesos.POST("", procesosH.Crear)
			procesos.GET("", procesosH.Listar)
			procesos.GET("/:id", procesosH.ObtenerPorID)
			procesos.PUT("/:id", procesosH.Actualizar)
			procesos.DELETE("/:id", procesosH.Eliminar)
			procesos.GET("/:id/timeline", procesosH.Timeline)

			procesos.POST("/:id/eventos", eventosH.Crear)
			procesos.GET("/:id/eventos", eventosH.Listar)
			procesos.GET("/:id/eventos/:evento_id", eventosH.ObtenerPorID)
			procesos.PUT("/:id/eventos/:evento_id", eventosH.Actualizar)
			procesos.DELETE("/:id/eventos/:evento_id", eventosH.Eliminar)
		}

		catalogo := v1.Group("/catalogo")
		{
			catalogo.POST("/parametros", catalogoH.CrearParametro)
			catalogo.GET("/parametros", catalogoH.ListarParametros)
			catalogo.POST("/formulas", catalogoH.CrearFormula)
			catalogo.GET("/formulas", catalogoH.ListarFormulas)
			catalogo.DELETE("/formulas/:id", catalogoH.EliminarFormula)
			catalogo.GET("/nombres", catalogoH.Nombres)
		}

		v1.GET("/tablero", tableroH.Resumen)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
