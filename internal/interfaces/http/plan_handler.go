package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/renovafit/academia-api/internal/application/dto"
	"github.com/renovafit/academia-api/internal/application/usecase"
	"github.com/renovafit/academia-api/internal/domain/entity"
)

// PlanHandler trata as requisições HTTP de /planos.
type PlanHandler struct {
	uc *usecase.PlanUseCase
}

// NewPlanHandler constrói o handler.
func NewPlanHandler(uc *usecase.PlanUseCase) *PlanHandler {
	return &PlanHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar planos
// @Tags         planos
// @Produce      json
// @Success      200  {array}  dto.PlanResponse
// @Router       /planos [get]
func (h *PlanHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(out)
}

// BuscarPorID godoc
// @Summary      Buscar plano por ID
// @Tags         planos
// @Produce      json
// @Param        id   path  string  true  "ID do plano"
// @Success      200  {object}  dto.PlanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /planos/{id} [get]
func (h *PlanHandler) BuscarPorID(c *fiber.Ctx) error {
	out, err := h.uc.BuscarPorID(c.Params("id"))
	if err != nil {
		return respondErro(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Erro: "Plano não encontrado"})
	}
	return c.JSON(out)
}

// Criar godoc
// @Summary      Criar plano
// @Tags         planos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlanRequest  true  "name, price, type, description?"
// @Success      201   {object}  dto.CreatePlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /planos [post]
func (h *PlanHandler) Criar(c *fiber.Ctx) error {
	var in dto.CreatePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Erro: "corpo inválido"})
	}
	out, err := h.uc.Criar(in)
	if err != nil {
		return respondErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatePlanResponse{
		Status: "Plano criado com sucesso",
		ID:     out.ID,
		Name:   out.Name,
		Price:  out.Price,
		Type:   out.Type,
	})
}

// Editar godoc
// @Summary      Editar plano
// @Tags         planos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do plano"
// @Param        body  body  dto.UpdatePlanRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.UpdatePlanResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /planos/{id} [put]
func (h *PlanHandler) Editar(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdatePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Erro: "corpo inválido"})
	}
	out, err := h.uc.Editar(id, in)
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(dto.UpdatePlanResponse{
		Status: "Plano atualizado com sucesso",
		Dados:  *out,
	})
}

// Deletar godoc
// @Summary      Deletar plano
// @Tags         planos
// @Produce      json
// @Param        id   path  string  true  "ID do plano"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /planos/{id} [delete]
func (h *PlanHandler) Deletar(c *fiber.Ctx) error {
	if err := h.uc.Deletar(c.Params("id")); err != nil {
		return respondErro(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "Plano deletado com sucesso"})
}

// FiltrarPorTipo godoc
// @Summary      Filtrar planos por tipo
// @Tags         planos
// @Produce      json
// @Param        tipo  path  string  true  "single ou combo"
// @Success      200   {array}   dto.PlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /planos/tipo/{tipo} [get]
func (h *PlanHandler) FiltrarPorTipo(c *fiber.Ctx) error {
	tipo := c.Params("tipo")
	if !entity.ValidPlanType(tipo) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Erro: "Tipo inválido. Use 'single' ou 'combo'"})
	}
	out, err := h.uc.FiltrarPorTipo(tipo)
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(out)
}

// BuscarPorNome godoc
// @Summary      Buscar planos por nome
// @Tags         planos
// @Produce      json
// @Param        nome  query  string  true  "Substring do nome"
// @Success      200   {array}   dto.PlanResponse
// @Failure      400   {object}  dto.MessageResponse
// @Router       /planos/buscar [get]
func (h *PlanHandler) BuscarPorNome(c *fiber.Ctx) error {
	nome := c.Query("nome")
	if nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Mensagem: "Parâmetro 'nome' é obrigatório"})
	}
	out, err := h.uc.BuscarPorNome(nome)
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(out)
}
