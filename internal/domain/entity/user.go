package entity

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/renovafit/academia-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidRole informa se o role é um dos valores aceitos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStudent
}

// User representa um usuário da academia (admin ou aluno).
// A senha nunca é mantida em claro: SenhaHash guarda o hash bcrypt.
type User struct {
	ID        string
	Nome      string
	Email     string
	SenhaHash string
	Telefone  string
	Role      string // admin | student
}

// NewUser cria um usuário com ID novo, valida os campos e aplica o hash
// bcrypt na senha. Role vazio assume "student".
func NewUser(nome, email, senha, telefone, role string) (*User, error) {
	if nome == "" {
		return nil, domain.NewValidationError("nome", "nome obrigatório")
	}
	if email == "" {
		return nil, domain.NewValidationError("email", "email obrigatório")
	}
	if senha == "" {
		return nil, domain.NewValidationError("senha", "senha obrigatória")
	}
	if len(nome) < 3 {
		return nil, domain.NewValidationError("nome", "nome muito curto")
	}
	if len(senha) < 6 {
		return nil, domain.NewValidationError("senha", "senha muito curta")
	}
	if !emailPattern.MatchString(email) {
		return nil, domain.NewValidationError("email", "email inválido")
	}
	if role == "" {
		role = RoleStudent
	}
	if !ValidRole(role) {
		return nil, domain.NewValidationError("role", "role inválido")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:        uuid.New().String(),
		Nome:      nome,
		Email:     email,
		SenhaHash: string(hash),
		Telefone:  telefone,
		Role:      role,
	}, nil
}

// VerificarSenha compara a senha em claro com o hash armazenado.
func (u *User) VerificarSenha(senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(senha)) == nil
}

// SetNome atualiza o nome, revalidando o tamanho mínimo.
func (u *User) SetNome(nome string) error {
	if len(nome) < 3 {
		return domain.NewValidationError("nome", "nome muito curto")
	}
	u.Nome = nome
	return nil
}

// SetTelefone atualiza o telefone (campo livre, sem validação).
func (u *User) SetTelefone(telefone string) {
	u.Telefone = telefone
}

// SetSenha revalida o tamanho mínimo e grava um novo hash bcrypt.
func (u *User) SetSenha(senha string) error {
	if len(senha) < 6 {
		return domain.NewValidationError("senha", "senha muito curta")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.SenhaHash = string(hash)
	return nil
}

// SetRole atualiza o role validando contra os valores aceitos.
func (u *User) SetRole(role string) error {
	if !ValidRole(role) {
		return domain.NewValidationError("role", "role inválido")
	}
	u.Role = role
	return nil
}
