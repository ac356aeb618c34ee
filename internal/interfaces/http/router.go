package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fulfila/fulfila-api/internal/application/auth"
	"github.com/fulfila/fulfila-api/internal/application/catalogo"
	"github.com/fulfila/fulfila-api/internal/application/configuracao"
	"github.com/fulfila/fulfila-api/internal/application/empresa"
	"github.com/fulfila/fulfila-api/internal/application/pedidos"
	"github.com/fulfila/fulfila-api/internal/application/planejamento"
	"github.com/fulfila/fulfila-api/internal/domain/entity"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	EmpresaUC       *empresa.EmpresaUseCase
	ItensUC         *catalogo.ItensUseCase
	FichasUC        *catalogo.FichasUseCase
	VinculosUC      *catalogo.VinculosUseCase
	PedidosUC       *pedidos.PedidosUseCase
	ConfiguracaoUC  *configuracao.ConfiguracaoUseCase
	PlanejamentoUC  *planejamento.PlanejamentoUseCase
	JWTSecret       string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Empresas (público por ora; o onboarding cria empresa antes do primeiro usuário)
	empresas := api.Group("/empresas")
	empresasHandler := NewEmpresasHandler(deps.EmpresaUC)
	empresas.Post("/", empresasHandler.Create)
	empresas.Get("/", empresasHandler.List)
	empresas.Get("/:id", empresasHandler.GetByID)

	// Rotas protegidas (Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	gestao := RequireRole(entity.RoleAdmin, entity.RoleOperador)

	// Itens de estoque
	itens := protected.Group("/itens")
	itensHandler := NewItensHandler(deps.ItensUC)
	itens.Post("/", gestao, itensHandler.Create)
	itens.Get("/", itensHandler.List)
	itens.Get("/:codigo", itensHandler.GetByCodigo)
	itens.Put("/:codigo", gestao, itensHandler.Update)
	itens.Post("/ajuste", itensHandler.Ajustar) // separador também ajusta (bipagem)

	// Fichas técnicas
	fichas := protected.Group("/fichas", gestao)
	fichasHandler := NewFichasHandler(deps.FichasUC)
	fichas.Put("/", fichasHandler.Upsert)
	fichas.Get("/", fichasHandler.List)
	fichas.Get("/:produtoSku", fichasHandler.GetByProdutoSku)
	fichas.Delete("/:produtoSku", fichasHandler.Delete)

	// Vínculos de SKU
	vinculos := protected.Group("/vinculos", gestao)
	vinculosHandler := NewVinculosHandler(deps.VinculosUC)
	vinculos.Put("/", vinculosHandler.Upsert)
	vinculos.Get("/", vinculosHandler.List)
	vinculos.Delete("/:skuImportado", vinculosHandler.Delete)

	// Pedidos
	pedidosGroup := protected.Group("/pedidos")
	pedidosHandler := NewPedidosHandler(deps.PedidosUC)
	pedidosGroup.Post("/importar", gestao, pedidosHandler.Importar)
	pedidosGroup.Get("/", pedidosHandler.List)
	pedidosGroup.Delete("/:pedidoID", gestao, pedidosHandler.Delete)

	// Configuração da empresa
	config := protected.Group("/configuracoes", gestao)
	configHandler := NewConfiguracaoHandler(deps.ConfiguracaoUC)
	config.Get("/", configHandler.Get)
	config.Put("/", configHandler.Save)

	// Planejamento
	plan := protected.Group("/planejamento")
	planHandler := NewPlanejamentoHandler(deps.PlanejamentoUC)
	plan.Get("/materiais", planHandler.Materiais)
	plan.Get("/componentes-kit", planHandler.ComponentesKit)
	plan.Post("/plano", gestao, planHandler.Plano)
}
