package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/renovafit/academia-api/internal/application/auth"
	"github.com/renovafit/academia-api/internal/application/usecase"
	"github.com/renovafit/academia-api/internal/infrastructure/memory"
	infrapdf "github.com/renovafit/academia-api/internal/infrastructure/pdf"
	httpRouter "github.com/renovafit/academia-api/internal/interfaces/http"
	"github.com/renovafit/academia-api/pkg/config"
	"github.com/renovafit/academia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	// Preços e valores trafegam como números no JSON, não como strings.
	decimal.MarshalJSONWithoutQuotes = true

	userRepo := memory.NewUserRepository()
	planRepo := memory.NewPlanRepository()
	saleRepo := memory.NewSaleRepository()
	invoiceRepo := memory.NewInvoiceRepository()

	reciboGen := infrapdf.NewReciboGenerator()

	userUC := usecase.NewUserUseCase(userRepo)
	planUC := usecase.NewPlanUseCase(planRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, userRepo, reciboGen)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	if cfg.Seed.Demo {
		if err := usecase.SeedDemo(userUC, planUC); err != nil {
			log.Fatal().Err(err).Msg("carga de dados de demonstração")
		}
		log.Info().Msg("dados de demonstração carregados")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		AllowHeaders: "Content-Type, Authorization",
	}))

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Academia Renova API",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "API Renova Academia rodando!"})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:    userUC,
		PlanUC:    planUC,
		SaleUC:    saleUC,
		InvoiceUC: invoiceUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
