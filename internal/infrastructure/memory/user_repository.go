package memory

import (
	"strings"
	"sync"

	"github.com/renovafit/academia-api/internal/domain"
	"github.com/renovafit/academia-api/internal/domain/entity"
	"github.com/renovafit/academia-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementação do porto UserRepository sobre uma coleção em
// memória, ordenada por inserção. O RWMutex é necessário porque o Fiber
// atende requisições em múltiplas goroutines; leituras devolvem cópias
// para que mutações via setters fora do lock não corram com leitores.
type UserRepo struct {
	mu    sync.RWMutex
	lista []*entity.User
}

// NewUserRepository constrói o repositório em memória de usuários.
func NewUserRepository() *UserRepo {
	return &UserRepo{}
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

// Create anexa o usuário ao final da coleção.
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lista = append(r.lista, cloneUser(user))
	return nil
}

// GetByID busca linear por ID; nil quando não existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.lista {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

// GetByEmail busca linear por email; nil quando não existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.lista {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

// Update persiste as alterações feitas na cópia devolvida pelas leituras,
// substituindo o registro de mesmo ID sob o lock de escrita.
func (r *UserRepo) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.lista {
		if u.ID == user.ID {
			r.lista[i] = cloneUser(user)
			return nil
		}
	}
	return domain.ErrUsuarioNaoEncontrado
}

// Delete remove o usuário com o email informado.
func (r *UserRepo) Delete(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.lista {
		if u.Email == email {
			r.lista = append(r.lista[:i], r.lista[i+1:]...)
			return nil
		}
	}
	return domain.ErrUsuarioNaoEncontrado
}

// List retorna cópias da coleção em ordem de inserção.
func (r *UserRepo) List() ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.User, len(r.lista))
	for i, u := range r.lista {
		out[i] = cloneUser(u)
	}
	return out, nil
}

// FilterByRole retorna os usuários com o role informado.
func (r *UserRepo) FilterByRole(role string) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.User, 0)
	for _, u := range r.lista {
		if u.Role == role {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

// SearchByNome busca por substring no nome, sem diferenciar maiúsculas.
func (r *UserRepo) SearchByNome(nome string) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	alvo := strings.ToLower(nome)
	out := make([]*entity.User, 0)
	for _, u := range r.lista {
		if strings.Contains(strings.ToLower(u.Nome), alvo) {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}
