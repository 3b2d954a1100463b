package repository

import "github.com/renovafit/academia-api/internal/domain/entity"

// SaleRepository define o porto de armazenamento para Sale (DIP).
// Leituras devolvem cópias; mutações só ficam visíveis após Update.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	Update(sale *entity.Sale) error
	Delete(id string) error
	List() ([]*entity.Sale, error)
	FilterByStudent(studentID string) ([]*entity.Sale, error)
	FilterByPlan(planID string) ([]*entity.Sale, error)
	FilterByStatus(status string) ([]*entity.Sale, error)
	// ActiveByStudent retorna a primeira venda ativa do aluno, ou nil.
	ActiveByStudent(studentID string) (*entity.Sale, error)
}
