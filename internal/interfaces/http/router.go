package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/renovafit/academia-api/internal/application/auth"
	"github.com/renovafit/academia-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	UserUC    *usecase.UserUseCase
	PlanUC    *usecase.PlanUseCase
	SaleUC    *usecase.SaleUseCase
	InvoiceUC *usecase.InvoiceUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra as rotas da API. As rotas específicas vêm antes das
// capturas /:id para que o Fiber não as engula.
func Router(app *fiber.App, deps RouterDeps) {
	// Usuários
	userHandler := NewUserHandler(deps.UserUC, deps.AuthUC)
	usuarios := app.Group("/usuarios")
	usuarios.Get("/", userHandler.Listar)
	usuarios.Get("/alunos", userHandler.ListarAlunos)
	usuarios.Get("/buscar", userHandler.BuscarPorNome)
	usuarios.Get("/email/:email", userHandler.BuscarPorEmail)
	usuarios.Get("/id/:id", userHandler.BuscarPorID)
	usuarios.Post("/autenticacao", userHandler.Autenticar)
	if deps.JWTSecret != "" {
		usuarios.Get("/perfil", AuthMiddleware(deps.JWTSecret), userHandler.Perfil)
	}
	usuarios.Post("/", userHandler.Criar)
	usuarios.Put("/:email", userHandler.Editar)
	usuarios.Delete("/:email", userHandler.Deletar)

	// Planos
	planHandler := NewPlanHandler(deps.PlanUC)
	planos := app.Group("/planos")
	planos.Get("/", planHandler.Listar)
	planos.Get("/buscar", planHandler.BuscarPorNome)
	planos.Get("/tipo/:tipo", planHandler.FiltrarPorTipo)
	planos.Post("/", planHandler.Criar)
	planos.Get("/:id", planHandler.BuscarPorID)
	planos.Put("/:id", planHandler.Editar)
	planos.Delete("/:id", planHandler.Deletar)

	// Vendas
	saleHandler := NewSaleHandler(deps.SaleUC)
	vendas := app.Group("/vendas")
	vendas.Get("/", saleHandler.Listar)
	vendas.Get("/aluno/:studentId/ativa", saleHandler.VendaAtiva)
	vendas.Get("/aluno/:studentId", saleHandler.FiltrarPorAluno)
	vendas.Get("/plano/:planId", saleHandler.FiltrarPorPlano)
	vendas.Get("/status/:status", saleHandler.FiltrarPorStatus)
	vendas.Post("/", saleHandler.Criar)
	vendas.Get("/:id", saleHandler.BuscarPorID)
	vendas.Put("/:id", saleHandler.Editar)
	vendas.Delete("/:id", saleHandler.Deletar)

	// Faturas
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	faturas := app.Group("/faturas")
	faturas.Get("/", invoiceHandler.Listar)
	faturas.Get("/pendentes", invoiceHandler.Pendentes)
	faturas.Get("/vencidas", invoiceHandler.Vencidas)
	faturas.Get("/aluno/:studentId", invoiceHandler.FiltrarPorAluno)
	faturas.Get("/venda/:saleId", invoiceHandler.FiltrarPorVenda)
	faturas.Get("/status/:status", invoiceHandler.FiltrarPorStatus)
	faturas.Post("/", invoiceHandler.Criar)
	faturas.Get("/:id/recibo", invoiceHandler.Recibo)
	faturas.Post("/:id/pagamento", invoiceHandler.ProcessarPagamento)
	faturas.Get("/:id", invoiceHandler.BuscarPorID)
	faturas.Put("/:id", invoiceHandler.Editar)
	faturas.Delete("/:id", invoiceHandler.Deletar)
}
