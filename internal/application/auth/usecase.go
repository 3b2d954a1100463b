package auth

import (
	"github.com/renovafit/academia-api/internal/application/dto"
	"github.com/renovafit/academia-api/internal/domain"
	"github.com/renovafit/academia-api/internal/domain/repository"
	"github.com/renovafit/academia-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticação de usuários.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Autenticar verifica email/senha contra o hash bcrypt armazenado. Devolve
// ErrCredenciaisInvalidas tanto para email desconhecido quanto para senha
// incorreta; não há lockout nem limite de tentativas. Quando há secret
// configurado, a resposta inclui um JWT assinado.
func (uc *AuthUseCase) Autenticar(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.VerificarSenha(in.Senha) {
		return nil, domain.ErrCredenciaisInvalidas
	}
	out := &dto.LoginResponse{
		Status: "Autenticado com sucesso",
		Dados: dto.UserResponse{
			ID:       user.ID,
			Nome:     user.Nome,
			Email:    user.Email,
			Telefone: user.Telefone,
			Role:     user.Role,
		},
	}
	if uc.jwtCfg.Secret != "" {
		token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
		out.Token = token
	}
	return out, nil
}
