package usecase

import (
	"github.com/renovafit/academia-api/internal/application/dto"
	"github.com/renovafit/academia-api/internal/domain"
	"github.com/renovafit/academia-api/internal/domain/entity"
	"github.com/renovafit/academia-api/internal/domain/repository"
)

// UserUseCase aplica as regras de negócio de usuários. A edição e a
// remoção são chaveadas por email, como na API original da academia.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso com o porto de armazenamento.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Criar valida e cria um usuário. Devolve ErrEmailJaCadastrado se o email
// já existir na coleção; a senha é hasheada pela fábrica da entidade.
func (uc *UserUseCase) Criar(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existente, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailJaCadastrado
	}
	user, err := entity.NewUser(in.Nome, in.Email, in.Senha, in.Telefone, in.Role)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Editar aplica um patch parcial ao usuário com o email informado.
// Campos nil não são alterados; os demais passam pelos setters.
func (uc *UserUseCase) Editar(email string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	if in.Nome != nil {
		if err := user.SetNome(*in.Nome); err != nil {
			return nil, err
		}
	}
	if in.Telefone != nil {
		user.SetTelefone(*in.Telefone)
	}
	if in.Senha != nil {
		if err := user.SetSenha(*in.Senha); err != nil {
			return nil, err
		}
	}
	if in.Role != nil {
		if err := user.SetRole(*in.Role); err != nil {
			return nil, err
		}
	}
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Deletar remove o usuário com o email informado.
func (uc *UserUseCase) Deletar(email string) error {
	return uc.repo.Delete(email)
}

// Listar retorna todos os usuários em ordem de cadastro, sem senha.
func (uc *UserUseCase) Listar() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// ListarAlunos retorna apenas os usuários com role student.
func (uc *UserUseCase) ListarAlunos() ([]dto.StudentResponse, error) {
	alunos, err := uc.repo.FilterByRole(entity.RoleStudent)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StudentResponse, 0, len(alunos))
	for _, u := range alunos {
		out = append(out, dto.StudentResponse{
			ID:       u.ID,
			Nome:     u.Nome,
			Email:    u.Email,
			Telefone: u.Telefone,
		})
	}
	return out, nil
}

// BuscarPorEmail obtém um usuário por email; nil quando não existe.
func (uc *UserUseCase) BuscarPorEmail(email string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// BuscarPorID obtém um usuário por ID; nil quando não existe.
func (uc *UserUseCase) BuscarPorID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// BuscarPorNome filtra usuários por substring do nome (case-insensitive).
func (uc *UserUseCase) BuscarPorNome(nome string) ([]dto.UserResponse, error) {
	users, err := uc.repo.SearchByNome(nome)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       u.ID,
		Nome:     u.Nome,
		Email:    u.Email,
		Telefone: u.Telefone,
		Role:     u.Role,
	}
}

func toUserResponses(users []*entity.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out
}
