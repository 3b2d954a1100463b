package repository

import "github.com/renovafit/academia-api/internal/domain/entity"

// UserRepository define o porto de armazenamento para User (DIP).
// Leituras retornam nil quando o usuário não existe e devolvem cópias
// desacopladas; mutações só ficam visíveis após Update.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(email string) error
	List() ([]*entity.User, error)
	FilterByRole(role string) ([]*entity.User, error)
	SearchByNome(nome string) ([]*entity.User, error)
}
