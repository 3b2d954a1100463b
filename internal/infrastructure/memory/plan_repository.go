package memory

import (
	"strings"
	"sync"

	"github.com/renovafit/academia-api/internal/domain"
	"github.com/renovafit/academia-api/internal/domain/entity"
	"github.com/renovafit/academia-api/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo implementação do porto PlanRepository sobre uma coleção em
// memória, ordenada por inserção. Leituras devolvem cópias; ver UserRepo.
type PlanRepo struct {
	mu    sync.RWMutex
	lista []*entity.Plan
}

// NewPlanRepository constrói o repositório em memória de planos.
func NewPlanRepository() *PlanRepo {
	return &PlanRepo{}
}

func clonePlan(p *entity.Plan) *entity.Plan {
	c := *p
	return &c
}

// Create anexa o plano ao final da coleção.
func (r *PlanRepo) Create(plan *entity.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lista = append(r.lista, clonePlan(plan))
	return nil
}

// GetByID busca linear por ID; nil quando não existe.
func (r *PlanRepo) GetByID(id string) (*entity.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.lista {
		if p.ID == id {
			return clonePlan(p), nil
		}
	}
	return nil, nil
}

// Update substitui o registro de mesmo ID sob o lock de escrita.
func (r *PlanRepo) Update(plan *entity.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.lista {
		if p.ID == plan.ID {
			r.lista[i] = clonePlan(plan)
			return nil
		}
	}
	return domain.ErrPlanoNaoEncontrado
}

// Delete remove o plano com o ID informado.
func (r *PlanRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.lista {
		if p.ID == id {
			r.lista = append(r.lista[:i], r.lista[i+1:]...)
			return nil
		}
	}
	return domain.ErrPlanoNaoEncontrado
}

// List retorna cópias da coleção em ordem de inserção.
func (r *PlanRepo) List() ([]*entity.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Plan, len(r.lista))
	for i, p := range r.lista {
		out[i] = clonePlan(p)
	}
	return out, nil
}

// FilterByType retorna os planos do tipo informado.
func (r *PlanRepo) FilterByType(planType string) ([]*entity.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Plan, 0)
	for _, p := range r.lista {
		if p.Type == planType {
			out = append(out, clonePlan(p))
		}
	}
	return out, nil
}

// SearchByName busca por substring no nome, sem diferenciar maiúsculas.
func (r *PlanRepo) SearchByName(name string) ([]*entity.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	alvo := strings.ToLower(name)
	out := make([]*entity.Plan, 0)
	for _, p := range r.lista {
		if strings.Contains(strings.ToLower(p.Name), alvo) {
			out = append(out, clonePlan(p))
		}
	}
	return out, nil
}
