package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renovafit/academia-api/internal/application/dto"
	"github.com/renovafit/academia-api/internal/application/usecase"
	"github.com/renovafit/academia-api/internal/domain"
	"github.com/renovafit/academia-api/internal/infrastructure/memory"
	"github.com/renovafit/academia-api/pkg/jwt"
)

func setupAuth(t *testing.T, cfg JWTConfig) *AuthUseCase {
	t.Helper()
	repo := memory.NewUserRepository()
	users := usecase.NewUserUseCase(repo)
	_, err := users.Criar(dto.CreateUserRequest{
		Nome:  "Aluno Teste",
		Email: "aluno@renova.com",
		Senha: "aluno123",
		Role:  "student",
	})
	require.NoError(t, err)
	return NewAuthUseCase(repo, cfg)
}

func TestAutenticar_Sucesso(t *testing.T) {
	uc := setupAuth(t, JWTConfig{})

	out, err := uc.Autenticar(dto.LoginRequest{Email: "aluno@renova.com", Senha: "aluno123"})
	require.NoError(t, err)
	assert.Equal(t, "Autenticado com sucesso", out.Status)
	assert.Equal(t, "aluno@renova.com", out.Dados.Email)
	assert.Empty(t, out.Token, "sem secret configurado não há token")
}

func TestAutenticar_SenhaIncorreta(t *testing.T) {
	uc := setupAuth(t, JWTConfig{})
	_, err := uc.Autenticar(dto.LoginRequest{Email: "aluno@renova.com", Senha: "errada123"})
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)
}

func TestAutenticar_EmailDesconhecido(t *testing.T) {
	uc := setupAuth(t, JWTConfig{})
	_, err := uc.Autenticar(dto.LoginRequest{Email: "ninguem@renova.com", Senha: "aluno123"})
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas, "mesmo erro de senha incorreta, sem vazar existência")
}

func TestAutenticar_ComTokenJWT(t *testing.T) {
	uc := setupAuth(t, JWTConfig{Secret: "segredo-de-teste", ExpMinutes: 60, Issuer: "academia-api"})

	out, err := uc.Autenticar(dto.LoginRequest{Email: "aluno@renova.com", Senha: "aluno123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, role, err := jwt.Parse("segredo-de-teste", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Dados.ID, userID)
	assert.Equal(t, "student", role)
}
