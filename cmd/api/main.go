package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/garagem/crm-backend/docs"
	"github.com/garagem/crm-backend/internal/handlers/dto"
	httphandlers "github.com/garagem/crm-backend/internal/handlers/http"
	"github.com/garagem/crm-backend/internal/handlers/middleware"
	"github.com/garagem/crm-backend/internal/infrastructure/config"
	"github.com/garagem/crm-backend/internal/infrastructure/fipe"
	"github.com/garagem/crm-backend/internal/infrastructure/i18n"
	"github.com/garagem/crm-backend/internal/infrastructure/logging"
	"github.com/garagem/crm-backend/internal/infrastructure/mailer"
	"github.com/garagem/crm-backend/internal/infrastructure/notify"
	"github.com/garagem/crm-backend/internal/infrastructure/persistence/postgres"
	"github.com/garagem/crm-backend/internal/scheduler"
	"github.com/garagem/crm-backend/internal/services"
)

// @title Garagem CRM API
// @version 1.0
// @description API de CRM para revendas de veículos: clientes, estoque, vendas, trocas, metas, promoções e financeiro.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting garagem crm backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db, logger); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "pt-BR")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Validações customizadas de binding (cpf)
	dto.RegisterCustomValidators()

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	tokenRepo := postgres.NewRefreshTokenRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	vehicleRepo := postgres.NewVehicleRepository(db)
	locationRepo := postgres.NewLocationRepository(db)
	saleRepo := postgres.NewSaleRepository(db)
	tradeInRepo := postgres.NewTradeInRepository(db)
	goalRepo := postgres.NewGoalRepository(db)
	promotionRepo := postgres.NewPromotionRepository(db)
	categoryRepo := postgres.NewFinancialCategoryRepository(db)
	pendenciaRepo := postgres.NewPendenciaRepository(db)
	sinalRepo := postgres.NewSinalRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Plano de contas padrão
	if err := postgres.SeedChartOfAccounts(context.Background(), categoryRepo, logger); err != nil {
		logger.Error("failed to seed chart of accounts", "error", err)
		log.Fatal(err)
	}

	// Infraestrutura externa
	smtpMailer := mailer.NewSMTPMailer(&cfg.SMTP, logger)
	birthdaySender := mailer.NewBirthdaySender(smtpMailer, cfg.SMTP.FromName)
	fipeClient := fipe.NewClient(&cfg.Fipe, logger)
	hub := notify.NewHub(logger)

	// Inicializar services
	authService := services.NewAuthService(userRepo, tokenRepo, &cfg.JWT, logger)
	userService := services.NewUserService(userRepo, logger)
	customerService := services.NewCustomerService(customerRepo, logger)
	vehicleService := services.NewVehicleService(vehicleRepo, locationRepo, logger)
	saleService := services.NewSaleService(uow, saleRepo, vehicleRepo, customerRepo, userRepo, tradeInRepo, goalRepo, hub, logger)
	tradeInService := services.NewTradeInService(tradeInRepo, customerRepo, logger)
	goalService := services.NewGoalService(goalRepo, userRepo, logger)
	promotionService := services.NewPromotionService(promotionRepo, logger)
	financialService := services.NewFinancialService(categoryRepo, saleRepo, vehicleRepo, logger)
	pendenciaService := services.NewPendenciaService(pendenciaRepo, vehicleRepo, userRepo, hub, logger)
	sinalService := services.NewSinalService(uow, sinalRepo, vehicleRepo, customerRepo, userRepo, saleService, logger)
	reportService := services.NewReportService(saleRepo, vehicleRepo, userRepo, logger)
	birthdayService := services.NewBirthdayService(customerRepo, birthdaySender, logger)

	// Scheduler (aniversários, promoções vencidas, pendências atrasadas)
	sched, err := scheduler.New(birthdayService, promotionService, pendenciaService, &cfg.Scheduler, logger)
	if err != nil {
		logger.Error("failed to initialize scheduler", "error", err)
		log.Fatal(err)
	}
	if err := sched.Start(); err != nil {
		logger.Error("failed to start scheduler", "error", err)
		log.Fatal(err)
	}

	// Inicializar handlers
	handlers := &httphandlers.Handlers{
		Auth:      httphandlers.NewAuthHandler(authService),
		User:      httphandlers.NewUserHandler(userService),
		Customer:  httphandlers.NewCustomerHandler(customerService),
		Vehicle:   httphandlers.NewVehicleHandler(vehicleService),
		Sale:      httphandlers.NewSaleHandler(saleService),
		TradeIn:   httphandlers.NewTradeInHandler(tradeInService),
		Goal:      httphandlers.NewGoalHandler(goalService),
		Promotion: httphandlers.NewPromotionHandler(promotionService),
		Financial: httphandlers.NewFinancialHandler(financialService),
		Pendencia: httphandlers.NewPendenciaHandler(pendenciaService),
		Sinal:     httphandlers.NewSinalHandler(sinalService),
		Fipe:      httphandlers.NewFipeHandler(fipeClient),
		Report:    httphandlers.NewReportHandler(reportService),
		WS:        httphandlers.NewWSHandler(hub),
		Health:    httphandlers.NewHealthHandler(db),
	}

	authMiddleware := middleware.NewAuthMiddleware(authService)
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)

	router := httphandlers.NewRouter(cfg, handlers, authMiddleware, i18nMiddleware)

	server := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Aguardar sinal de término para desligamento gracioso
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		log.Fatal(err)
	}

	logger.Info("server stopped")
}
