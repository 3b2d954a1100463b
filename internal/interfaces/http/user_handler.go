package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/renovafit/academia-api/internal/application/auth"
	"github.com/renovafit/academia-api/internal/application/dto"
	"github.com/renovafit/academia-api/internal/application/usecase"
)

// UserHandler trata as requisições HTTP de /usuarios.
type UserHandler struct {
	uc     *usecase.UserUseCase
	authUC *auth.AuthUseCase
}

// NewUserHandler constrói o handler.
func NewUserHandler(uc *usecase.UserUseCase, authUC *auth.AuthUseCase) *UserHandler {
	return &UserHandler{uc: uc, authUC: authUC}
}

// Listar godoc
// @Summary      Listar usuários
// @Tags         usuarios
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /usuarios [get]
func (h *UserHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(out)
}

// ListarAlunos godoc
// @Summary      Listar alunos
// @Tags         usuarios
// @Produce      json
// @Success      200  {array}  dto.StudentResponse
// @Router       /usuarios/alunos [get]
func (h *UserHandler) ListarAlunos(c *fiber.Ctx) error {
	out, err := h.uc.ListarAlunos()
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(out)
}

// Criar godoc
// @Summary      Criar usuário
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "nome, email, senha, telefone?, role?"
// @Success      201   {object}  dto.CreateUserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /usuarios [post]
func (h *UserHandler) Criar(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Erro: "corpo inválido"})
	}
	out, err := h.uc.Criar(in)
	if err != nil {
		return respondErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateUserResponse{
		Status: "Usuário criado com sucesso",
		ID:     out.ID,
		Nome:   out.Nome,
		Email:  out.Email,
		Role:   out.Role,
	})
}

// Editar godoc
// @Summary      Editar usuário por email
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        email  path  string  true  "Email do usuário"
// @Param        body   body  dto.UpdateUserRequest  true  "Campos a atualizar"
// @Success      200    {object}  dto.UpdateUserResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /usuarios/{email} [put]
func (h *UserHandler) Editar(c *fiber.Ctx) error {
	email := c.Params("email")
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Erro: "corpo inválido"})
	}
	out, err := h.uc.Editar(email, in)
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(dto.UpdateUserResponse{
		Status: "Usuário atualizado com sucesso",
		Dados:  *out,
	})
}

// Deletar godoc
// @Summary      Deletar usuário por email
// @Tags         usuarios
// @Produce      json
// @Param        email  path  string  true  "Email do usuário"
// @Success      200    {object}  dto.StatusResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /usuarios/{email} [delete]
func (h *UserHandler) Deletar(c *fiber.Ctx) error {
	email := c.Params("email")
	if err := h.uc.Deletar(email); err != nil {
		return respondErro(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "Usuário deletado com sucesso"})
}

// Autenticar godoc
// @Summary      Autenticar usuário
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, senha"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /usuarios/autenticacao [post]
func (h *UserHandler) Autenticar(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Erro: "corpo inválido"})
	}
	out, err := h.authUC.Autenticar(in)
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(out)
}

// BuscarPorEmail godoc
// @Summary      Buscar usuário por email
// @Tags         usuarios
// @Produce      json
// @Param        email  path  string  true  "Email do usuário"
// @Success      200    {object}  dto.UserResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /usuarios/email/{email} [get]
func (h *UserHandler) BuscarPorEmail(c *fiber.Ctx) error {
	out, err := h.uc.BuscarPorEmail(c.Params("email"))
	if err != nil {
		return respondErro(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Erro: "Usuário não encontrado"})
	}
	return c.JSON(out)
}

// BuscarPorID godoc
// @Summary      Buscar usuário por ID
// @Tags         usuarios
// @Produce      json
// @Param        id   path  string  true  "ID do usuário"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /usuarios/id/{id} [get]
func (h *UserHandler) BuscarPorID(c *fiber.Ctx) error {
	out, err := h.uc.BuscarPorID(c.Params("id"))
	if err != nil {
		return respondErro(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Erro: "Usuário não encontrado"})
	}
	return c.JSON(out)
}

// BuscarPorNome godoc
// @Summary      Buscar usuários por nome
// @Tags         usuarios
// @Produce      json
// @Param        nome  query  string  true  "Substring do nome"
// @Success      200   {array}   dto.UserResponse
// @Failure      400   {object}  dto.MessageResponse
// @Router       /usuarios/buscar [get]
func (h *UserHandler) BuscarPorNome(c *fiber.Ctx) error {
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

// Perfil godoc
// @Summary      Perfil do usuário autenticado
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /usuarios/perfil [get]
func (h *UserHandler) Perfil(c *fiber.Ctx) error {
	out, err := h.uc.BuscarPorID(GetUserID(c))
	if err != nil {
		return respondErro(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Erro: "Usuário não encontrado"})
	}
	return c.JSON(out)
}
