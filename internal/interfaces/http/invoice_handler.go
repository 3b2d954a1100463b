package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/renovafit/academia-api/internal/application/dto"
	"github.com/renovafit/academia-api/internal/application/usecase"
	"github.com/renovafit/academia-api/internal/domain/entity"
)

// InvoiceHandler trata as requisições HTTP de /faturas.
type InvoiceHandler struct {
	uc *usecase.InvoiceUseCase
}

// NewInvoiceHandler constrói o handler.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar faturas
// @Tags         faturas
// @Produce      json
// @Success      200  {array}  dto.InvoiceResponse
// @Router       /faturas [get]
func (h *InvoiceHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(out)
}

// BuscarPorID godoc
// @Summary      Buscar fatura por ID
// @Tags         faturas
// @Produce      json
// @Param        id   path  string  true  "ID da fatura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /faturas/{id} [get]
func (h *InvoiceHandler) BuscarPorID(c *fiber.Ctx) error {
	out, err := h.uc.BuscarPorID(c.Params("id"))
	if err != nil {
		return respondErro(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Erro: "Fatura não encontrada"})
	}
	return c.JSON(out)
}

// Criar godoc
// @Summary      Criar fatura
// @Tags         faturas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "studentId, saleId, amount, dueDate"
// @Success      201   {object}  dto.CreateInvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /faturas [post]
func (h *InvoiceHandler) Criar(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Erro: "corpo inválido"})
	}
	out, err := h.uc.Criar(in)
	if err != nil {
		return respondErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateInvoiceResponse{
		Status:    "Fatura criada com sucesso",
		ID:        out.ID,
		StudentID: out.StudentID,
		Amount:    out.Amount,
		DueDate:   out.DueDate,
	})
}

// ProcessarPagamento godoc
// @Summary      Processar pagamento da fatura
// @Tags         faturas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da fatura"
// @Param        body  body  dto.PaymentRequest  true  "paymentDate, paymentMethod"
// @Success      200   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /faturas/{id}/pagamento [post]
func (h *InvoiceHandler) ProcessarPagamento(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.PaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Erro: "corpo inválido"})
	}
	if in.PaymentDate == "" || in.PaymentMethod == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Erro: "paymentDate e paymentMethod são obrigatórios"})
	}
	out, err := h.uc.ProcessarPagamento(id, in.PaymentDate, in.PaymentMethod)
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(dto.PaymentResponse{
		Status: "Pagamento processado com sucesso",
		Dados: dto.PaymentData{
			ID:            out.ID,
			Status:        out.Status,
			PaymentDate:   out.PaymentDate,
			PaymentMethod: out.PaymentMethod,
		},
	})
}

// Editar godoc
// @Summary      Editar fatura
// @Tags         faturas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da fatura"
// @Param        body  body  dto.UpdateInvoiceRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.UpdateInvoiceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /faturas/{id} [put]
func (h *InvoiceHandler) Editar(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Erro: "corpo inválido"})
	}
	out, err := h.uc.Editar(id, in)
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(dto.UpdateInvoiceResponse{
		Status: "Fatura atualizada com sucesso",
		Dados:  *out,
	})
}

// Deletar godoc
// @Summary      Deletar fatura
// @Tags         faturas
// @Produce      json
// @Param        id   path  string  true  "ID da fatura"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /faturas/{id} [delete]
func (h *InvoiceHandler) Deletar(c *fiber.Ctx) error {
	if err := h.uc.Deletar(c.Params("id")); err != nil {
		return respondErro(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "Fatura deletada com sucesso"})
}

// FiltrarPorAluno godoc
// @Summary      Buscar faturas por aluno
// @Tags         faturas
// @Produce      json
// @Param        studentId  path  string  true  "ID do aluno"
// @Success      200  {array}  dto.InvoiceResponse
// @Router       /faturas/aluno/{studentId} [get]
func (h *InvoiceHandler) FiltrarPorAluno(c *fiber.Ctx) error {
	out, err := h.uc.FiltrarPorAluno(c.Params("studentId"))
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(out)
}

// FiltrarPorVenda godoc
// @Summary      Buscar faturas por venda
// @Tags         faturas
// @Produce      json
// @Param        saleId  path  string  true  "ID da venda"
// @Success      200  {array}  dto.InvoiceResponse
// @Router       /faturas/venda/{saleId} [get]
func (h *InvoiceHandler) FiltrarPorVenda(c *fiber.Ctx) error {
	out, err := h.uc.FiltrarPorVenda(c.Params("saleId"))
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(out)
}

// FiltrarPorStatus godoc
// @Summary      Buscar faturas por status
// @Tags         faturas
// @Produce      json
// @Param        status  path  string  true  "pending, paid ou overdue"
// @Success      200  {array}   dto.InvoiceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /faturas/status/{status} [get]
func (h *InvoiceHandler) FiltrarPorStatus(c *fiber.Ctx) error {
	status := c.Params("status")
	if !entity.ValidInvoiceStatus(status) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Erro: "Status inválido. Use 'pending', 'paid' ou 'overdue'"})
	}
	out, err := h.uc.FiltrarPorStatus(status)
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(out)
}

// Pendentes godoc
// @Summary      Listar faturas pendentes
// @Tags         faturas
// @Produce      json
// @Success      200  {array}  dto.InvoiceSummaryResponse
// @Router       /faturas/pendentes [get]
func (h *InvoiceHandler) Pendentes(c *fiber.Ctx) error {
	out, err := h.uc.FaturasPendentes()
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(out)
}

// Vencidas godoc
// @Summary      Listar faturas vencidas
// @Tags         faturas
// @Produce      json
// @Success      200  {array}  dto.InvoiceSummaryResponse
// @Router       /faturas/vencidas [get]
func (h *InvoiceHandler) Vencidas(c *fiber.Ctx) error {
	out, err := h.uc.FaturasVencidas()
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(out)
}

// Recibo godoc
// @Summary      Recibo em PDF de uma fatura paga
// @Tags         faturas
// @Produce      application/pdf
// @Param        id   path  string  true  "ID da fatura"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /faturas/{id}/recibo [get]
func (h *InvoiceHandler) Recibo(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.GerarRecibo(c.Params("id"))
	if err != nil {
		return respondErro(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo.pdf"`)
	return c.Send(pdfBytes)
}
