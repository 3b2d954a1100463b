package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renovafit/academia-api/internal/application/dto"
	"github.com/renovafit/academia-api/internal/domain"
	"github.com/renovafit/academia-api/internal/infrastructure/memory"
)

func novoUserUC() *UserUseCase {
	return NewUserUseCase(memory.NewUserRepository())
}

func TestUserUseCase_Criar_EmailDuplicado(t *testing.T) {
	uc := novoUserUC()

	_, err := uc.Criar(dto.CreateUserRequest{Nome: "Ana Lima", Email: "ana@renova.com", Senha: "segredo1"})
	require.NoError(t, err)

	_, err = uc.Criar(dto.CreateUserRequest{Nome: "Ana Souza", Email: "ana@renova.com", Senha: "outrasenha"})
	assert.ErrorIs(t, err, domain.ErrEmailJaCadastrado)
}

func TestUserUseCase_Criar_SemSenhaNaResposta(t *testing.T) {
	uc := novoUserUC()

	out, err := uc.Criar(dto.CreateUserRequest{Nome: "Ana Lima", Email: "ana@renova.com", Senha: "segredo1", Telefone: "11999999999"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "student", out.Role, "role vazio vira student")
	assert.Equal(t, "11999999999", out.Telefone)
}

func TestUserUseCase_Editar_PatchParcial(t *testing.T) {
	uc := novoUserUC()
	_, err := uc.Criar(dto.CreateUserRequest{Nome: "Ana Lima", Email: "ana@renova.com", Senha: "segredo1", Telefone: "119"})
	require.NoError(t, err)

	novoNome := "Ana Paula Lima"
	out, err := uc.Editar("ana@renova.com", dto.UpdateUserRequest{Nome: &novoNome})
	require.NoError(t, err)
	assert.Equal(t, "Ana Paula Lima", out.Nome)
	assert.Equal(t, "119", out.Telefone, "campo ausente no patch não muda")

	// Campo presente mas inválido é rejeitado
	curto := "ab"
	_, err = uc.Editar("ana@renova.com", dto.UpdateUserRequest{Nome: &curto})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "nome muito curto", verr.Message)

	out, err = uc.BuscarPorEmail("ana@renova.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana Paula Lima", out.Nome, "patch inválido não altera a entidade")
}

func TestUserUseCase_Editar_EmailDesconhecido(t *testing.T) {
	uc := novoUserUC()
	nome := "Fulano de Tal"
	_, err := uc.Editar("ninguem@renova.com", dto.UpdateUserRequest{Nome: &nome})
	assert.ErrorIs(t, err, domain.ErrUsuarioNaoEncontrado)
}

func TestUserUseCase_Deletar(t *testing.T) {
	uc := novoUserUC()
	_, err := uc.Criar(dto.CreateUserRequest{Nome: "Ana Lima", Email: "ana@renova.com", Senha: "segredo1"})
	require.NoError(t, err)

	require.NoError(t, uc.Deletar("ana@renova.com"))
	assert.ErrorIs(t, uc.Deletar("ana@renova.com"), domain.ErrUsuarioNaoEncontrado)
}

func TestUserUseCase_ListarAlunos(t *testing.T) {
	uc := novoUserUC()
	_, err := uc.Criar(dto.CreateUserRequest{Nome: "Admin Renova", Email: "admin@renova.com", Senha: "admin123", Role: "admin"})
	require.NoError(t, err)
	_, err = uc.Criar(dto.CreateUserRequest{Nome: "Aluno Teste", Email: "aluno@renova.com", Senha: "aluno123", Role: "student"})
	require.NoError(t, err)

	alunos, err := uc.ListarAlunos()
	require.NoError(t, err)
	require.Len(t, alunos, 1)
	assert.Equal(t, "aluno@renova.com", alunos[0].Email)
}

func TestUserUseCase_BuscarPorID_NaoEncontrado(t *testing.T) {
	uc := novoUserUC()
	out, err := uc.BuscarPorID("inexistente")
	require.NoError(t, err)
	assert.Nil(t, out)
}
