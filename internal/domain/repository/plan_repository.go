package repository

import "github.com/renovafit/academia-api/internal/domain/entity"

// PlanRepository define o porto de armazenamento para Plan (DIP).
// Leituras devolvem cópias; mutações só ficam visíveis após Update.
type PlanRepository interface {
	Create(plan *entity.Plan) error
	GetByID(id string) (*entity.Plan, error)
	Update(plan *entity.Plan) error
	Delete(id string) error
	List() ([]*entity.Plan, error)
	FilterByType(planType string) ([]*entity.Plan, error)
	SearchByName(name string) ([]*entity.Plan, error)
}
