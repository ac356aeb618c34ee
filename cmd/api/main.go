package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/fulfila/fulfila-api/internal/application/auth"
	"github.com/fulfila/fulfila-api/internal/application/catalogo"
	"github.com/fulfila/fulfila-api/internal/application/configuracao"
	"github.com/fulfila/fulfila-api/internal/application/empresa"
	"github.com/fulfila/fulfila-api/internal/application/pedidos"
	"github.com/fulfila/fulfila-api/internal/application/planejamento"
	"github.com/fulfila/fulfila-api/internal/infrastructure/excel"
	"github.com/fulfila/fulfila-api/internal/infrastructure/postgres"
	httpRouter "github.com/fulfila/fulfila-api/internal/interfaces/http"
	"github.com/fulfila/fulfila-api/pkg/config"
	"github.com/fulfila/fulfila-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	empresaRepo := postgres.NewEmpresaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	itemRepo := postgres.NewItemEstoqueRepository(pool)
	fichaRepo := postgres.NewFichaTecnicaRepository(pool)
	vinculoRepo := postgres.NewVinculoSkuRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	configRepo := postgres.NewConfiguracaoRepository(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, empresaRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	empresaUC := empresa.NewEmpresaUseCase(empresaRepo)
	itensUC := catalogo.NewItensUseCase(itemRepo)
	fichasUC := catalogo.NewFichasUseCase(fichaRepo, itemRepo)
	vinculosUC := catalogo.NewVinculosUseCase(vinculoRepo, itemRepo)
	pedidosUC := pedidos.NewPedidosUseCase(pedidoRepo, vinculoRepo, excel.NewPedidoParser())
	configuracaoUC := configuracao.NewConfiguracaoUseCase(configRepo)
	planejamentoUC := planejamento.NewPlanejamentoUseCase(itemRepo, vinculoRepo, fichaRepo, pedidoRepo, configRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // cálculos de planejamento podem demorar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Fulfila API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		EmpresaUC:      empresaUC,
		ItensUC:        itensUC,
		FichasUC:       fichasUC,
		VinculosUC:     vinculosUC,
		PedidosUC:      pedidosUC,
		ConfiguracaoUC: configuracaoUC,
		PlanejamentoUC: planejamentoUC,
		JWTSecret:      cfg.JWT.Secret,
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
