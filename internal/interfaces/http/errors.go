package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/renovafit/academia-api/internal/application/dto"
	"github.com/renovafit/academia-api/internal/domain"
)

// respondErro traduz o erro de domínio para o status HTTP da taxonomia:
// validação e email duplicado → 400, não encontrado → 404, credenciais → 401,
// inesperado → 500 com a mensagem crua. Corpo sempre {"erro": mensagem}.
func respondErro(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr), errors.Is(err, domain.ErrEmailJaCadastrado):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Erro: err.Error()})
	case domain.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Erro: err.Error()})
	case errors.Is(err, domain.ErrCredenciaisInvalidas):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Erro: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Erro: err.Error()})
	}
}
