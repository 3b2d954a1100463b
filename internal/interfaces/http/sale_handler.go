package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/renovafit/academia-api/internal/application/dto"
	"github.com/renovafit/academia-api/internal/application/usecase"
	"github.com/renovafit/academia-api/internal/domain/entity"
)

// SaleHandler trata as requisições HTTP de /vendas.
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler constrói o handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar vendas
// @Tags         vendas
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /vendas [get]
func (h *SaleHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(out)
}

// BuscarPorID godoc
// @Summary      Buscar venda por ID
// @Tags         vendas
// @Produce      json
// @Param        id   path  string  true  "ID da venda"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /vendas/{id} [get]
func (h *SaleHandler) BuscarPorID(c *fiber.Ctx) error {
	out, err := h.uc.BuscarPorID(c.Params("id"))
	if err != nil {
		return respondErro(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Erro: "Venda não encontrada"})
	}
	return c.JSON(out)
}

// Criar godoc
// @Summary      Criar venda
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "studentId, planId, startDate, endDate, status?"
// @Success      201   {object}  dto.CreateSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /vendas [post]
func (h *SaleHandler) Criar(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Erro: "corpo inválido"})
	}
	out, err := h.uc.Criar(in)
	if err != nil {
		return respondErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateSaleResponse{
		Status:    "Venda criada com sucesso",
		ID:        out.ID,
		StudentID: out.StudentID,
		PlanID:    out.PlanID,
		StartDate: out.StartDate,
		EndDate:   out.EndDate,
		SaleDate:  out.SaleDate,
	})
}

// Editar godoc
// @Summary      Editar venda
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da venda"
// @Param        body  body  dto.UpdateSaleRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.UpdateSaleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /vendas/{id} [put]
func (h *SaleHandler) Editar(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Erro: "corpo inválido"})
	}
	out, err := h.uc.Editar(id, in)
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(dto.UpdateSaleResponse{
		Status: "Venda atualizada com sucesso",
		Dados:  *out,
	})
}

// Deletar godoc
// @Summary      Deletar venda
// @Tags         vendas
// @Produce      json
// @Param        id   path  string  true  "ID da venda"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /vendas/{id} [delete]
func (h *SaleHandler) Deletar(c *fiber.Ctx) error {
	if err := h.uc.Deletar(c.Params("id")); err != nil {
		return respondErro(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "Venda deletada com sucesso"})
}

// FiltrarPorAluno godoc
// @Summary      Buscar vendas por aluno
// @Tags         vendas
// @Produce      json
// @Param        studentId  path  string  true  "ID do aluno"
// @Success      200  {array}  dto.SaleResponse
// @Router       /vendas/aluno/{studentId} [get]
func (h *SaleHandler) FiltrarPorAluno(c *fiber.Ctx) error {
	out, err := h.uc.FiltrarPorAluno(c.Params("studentId"))
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(out)
}

// VendaAtiva godoc
// @Summary      Venda ativa do aluno
// @Tags         vendas
// @Produce      json
// @Param        studentId  path  string  true  "ID do aluno"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /vendas/aluno/{studentId}/ativa [get]
func (h *SaleHandler) VendaAtiva(c *fiber.Ctx) error {
	out, err := h.uc.VendaAtivaPorAluno(c.Params("studentId"))
	if err != nil {
		return respondErro(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Erro: "Nenhuma venda ativa encontrada"})
	}
	return c.JSON(out)
}

// FiltrarPorPlano godoc
// @Summary      Buscar vendas por plano
// @Tags         vendas
// @Produce      json
// @Param        planId  path  string  true  "ID do plano"
// @Success      200  {array}  dto.SaleResponse
// @Router       /vendas/plano/{planId} [get]
func (h *SaleHandler) FiltrarPorPlano(c *fiber.Ctx) error {
	out, err := h.uc.FiltrarPorPlano(c.Params("planId"))
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(out)
}

// FiltrarPorStatus godoc
// @Summary      Buscar vendas por status
// @Tags         vendas
// @Produce      json
// @Param        status  path  string  true  "active, inactive ou expired"
// @Success      200  {array}   dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /vendas/status/{status} [get]
func (h *SaleHandler) FiltrarPorStatus(c *fiber.Ctx) error {
	status := c.Params("status")
	if !entity.ValidSaleStatus(status) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Erro: "Status inválido. Use 'active', 'inactive' ou 'expired'"})
	}
	out, err := h.uc.FiltrarPorStatus(status)
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(out)
}
