package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/handlers/middleware"
	"github.com/garagem/crm-backend/internal/infrastructure/config"
)

// Handlers agrupa todos os handlers HTTP para o registro de rotas
type Handlers struct {
	Auth      *AuthHandler
	User      *UserHandler
	Customer  *CustomerHandler
	Vehicle   *VehicleHandler
	Sale      *SaleHandler
	TradeIn   *TradeInHandler
	Goal      *GoalHandler
	Promotion *PromotionHandler
	Financial *FinancialHandler
	Pendencia *PendenciaHandler
	Sinal     *SinalHandler
	Fipe      *FipeHandler
	Report    *ReportHandler
	WS        *WSHandler
	Health    *HealthHandler
}

// NewRouter monta o engine Gin com middlewares e todas as rotas da API
func NewRouter(cfg *config.Config, handlers *Handlers, authMW *middleware.AuthMiddleware, i18nMW *middleware.I18nMiddleware) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.BaseURL(cfg.Server.BaseURL))
	router.Use(i18nMW.DetectLanguage())

	router.GET("/health", handlers.Health.Check)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/refresh", handlers.Auth.Refresh)
		auth.POST("/logout", authMW.RequireAuth(), handlers.Auth.Logout)
	}

	protected := v1.Group("")
	protected.Use(authMW.RequireAuth())

	users := protected.Group("/users")
	{
		users.GET("", handlers.User.List)
		users.GET("/me", handlers.User.Me)
		users.GET("/:id", handlers.User.Get)
		users.PUT("/:id", handlers.User.Update)
		users.DELETE("/:id", authMW.RequireRole(entities.RoleAdmin), handlers.User.Delete)
	}

	customers := protected.Group("/customers")
	{
		customers.POST("", handlers.Customer.Create)
		customers.GET("", handlers.Customer.List)
		customers.GET("/birthdays/upcoming", handlers.Customer.UpcomingBirthdays)
		customers.GET("/:id", handlers.Customer.Get)
		customers.PUT("/:id", handlers.Customer.Update)
		customers.DELETE("/:id", handlers.Customer.Delete)
	}

	vehicles := protected.Group("/vehicles")
	{
		vehicles.POST("", handlers.Vehicle.Create)
		vehicles.GET("", handlers.Vehicle.List)
		vehicles.GET("/stats/stock", handlers.Vehicle.StockStats)
		vehicles.GET("/:id", handlers.Vehicle.Get)
		vehicles.PUT("/:id", handlers.Vehicle.Update)
		vehicles.DELETE("/:id", handlers.Vehicle.Delete)
	}

	sales := protected.Group("/sales")
	{
		sales.POST("", handlers.Sale.Create)
		sales.GET("", handlers.Sale.List)
		sales.GET("/:id", handlers.Sale.Get)
		sales.POST("/:id/cancel", handlers.Sale.Cancel)
	}

	tradeIns := protected.Group("/tradeins")
	{
		tradeIns.POST("", handlers.TradeIn.Create)
		tradeIns.GET("", handlers.TradeIn.List)
		tradeIns.GET("/:id", handlers.TradeIn.Get)
		tradeIns.PUT("/:id", handlers.TradeIn.Update)
		tradeIns.PATCH("/:id/status", handlers.TradeIn.ChangeStatus)
		tradeIns.DELETE("/:id", handlers.TradeIn.Delete)
	}

	// Metas e promoções são decisões comerciais: só gerência (ou admin) mexe
	manager := authMW.RequireRole(entities.RoleAdmin, entities.RoleGerente)

	goals := protected.Group("/goals")
	{
		goals.POST("", manager, handlers.Goal.Create)
		goals.GET("", handlers.Goal.List)
		goals.GET("/:id", handlers.Goal.Get)
		goals.GET("/:id/progress", handlers.Goal.Progress)
		goals.PUT("/:id", manager, handlers.Goal.Update)
		goals.DELETE("/:id", manager, handlers.Goal.Delete)
	}

	promotions := protected.Group("/promotions")
	{
		promotions.POST("", manager, handlers.Promotion.Create)
		promotions.GET("", handlers.Promotion.List)
		promotions.GET("/:id", handlers.Promotion.Get)
		promotions.PUT("/:id", manager, handlers.Promotion.Update)
		promotions.DELETE("/:id", manager, handlers.Promotion.Delete)
	}

	financial := protected.Group("/financial")
	{
		financial.GET("/categories", handlers.Financial.CategoryTree)
		financial.POST("/categories", manager, handlers.Financial.CreateCategory)
		financial.GET("/dashboard", manager, handlers.Financial.Dashboard)
	}

	pendencias := protected.Group("/pendencias")
	{
		pendencias.POST("", handlers.Pendencia.Create)
		pendencias.GET("", handlers.Pendencia.List)
		pendencias.GET("/overdue", handlers.Pendencia.ListOverdue)
		pendencias.GET("/:id", handlers.Pendencia.Get)
		pendencias.PUT("/:id", handlers.Pendencia.Update)
		pendencias.PATCH("/:id/status", handlers.Pendencia.ChangeStatus)
		pendencias.DELETE("/:id", handlers.Pendencia.Delete)
	}

	sinais := protected.Group("/sinais")
	{
		sinais.POST("", handlers.Sinal.Create)
		sinais.GET("", handlers.Sinal.List)
		sinais.GET("/:id", handlers.Sinal.Get)
		sinais.POST("/:id/convert", handlers.Sinal.Convert)
		sinais.POST("/:id/desistencia", handlers.Sinal.Withdraw)
		sinais.POST("/:id/devolver", handlers.Sinal.Refund)
		sinais.DELETE("/:id", handlers.Sinal.Delete)
	}

	protected.GET("/fipe/search", handlers.Fipe.Search)

	reports := protected.Group("/reports", manager)
	{
		reports.GET("/sales", handlers.Report.Sales)
		reports.GET("/profitability", handlers.Report.Profitability)
		reports.GET("/vehicles-stuck", handlers.Report.VehiclesStuck)
	}

	protected.GET("/ws/notifications", handlers.WS.Notifications)

	return router
}
