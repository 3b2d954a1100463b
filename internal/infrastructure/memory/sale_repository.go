package memory

import (
	"sync"

	"github.com/renovafit/academia-api/internal/domain"
	"github.com/renovafit/academia-api/internal/domain/entity"
	"github.com/renovafit/academia-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementação do porto SaleRepository sobre uma coleção em
// memória, ordenada por inserção. Leituras devolvem cópias; ver UserRepo.
type SaleRepo struct {
	mu    sync.RWMutex
	lista []*entity.Sale
}

// NewSaleRepository constrói o repositório em memória de vendas.
func NewSaleRepository() *SaleRepo {
	return &SaleRepo{}
}

func cloneSale(s *entity.Sale) *entity.Sale {
	c := *s
	return &c
}

// Create anexa a venda ao final da coleção.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lista = append(r.lista, cloneSale(sale))
	return nil
}

// GetByID busca linear por ID; nil quando não existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.lista {
		if s.ID == id {
			return cloneSale(s), nil
		}
	}
	return nil, nil
}

// Update substitui o registro de mesmo ID sob o lock de escrita.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.lista {
		if s.ID == sale.ID {
			r.lista[i] = cloneSale(sale)
			return nil
		}
	}
	return domain.ErrVendaNaoEncontrada
}

// Delete remove a venda com o ID informado.
func (r *SaleRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.lista {
		if s.ID == id {
			r.lista = append(r.lista[:i], r.lista[i+1:]...)
			return nil
		}
	}
	return domain.ErrVendaNaoEncontrada
}

// List retorna cópias da coleção em ordem de inserção.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Sale, len(r.lista))
	for i, s := range r.lista {
		out[i] = cloneSale(s)
	}
	return out, nil
}

// FilterByStudent retorna as vendas do aluno informado.
func (r *SaleRepo) FilterByStudent(studentID string) ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Sale, 0)
	for _, s := range r.lista {
		if s.StudentID == studentID {
			out = append(out, cloneSale(s))
		}
	}
	return out, nil
}

// FilterByPlan retorna as vendas do plano informado.
func (r *SaleRepo) FilterByPlan(planID string) ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Sale, 0)
	for _, s := range r.lista {
		if s.PlanID == planID {
			out = append(out, cloneSale(s))
		}
	}
	return out, nil
}

// FilterByStatus retorna as vendas com o status informado.
func (r *SaleRepo) FilterByStatus(status string) ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Sale, 0)
	for _, s := range r.lista {
		if s.Status == status {
			out = append(out, cloneSale(s))
		}
	}
	return out, nil
}

// ActiveByStudent retorna a primeira venda ativa do aluno, ou nil.
// Assume no máximo uma venda ativa por aluno; se houver mais de uma,
// vale a primeira em ordem de inserção.
func (r *SaleRepo) ActiveByStudent(studentID string) (*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.lista {
		if s.StudentID == studentID && s.Status == entity.SaleActive {
			return cloneSale(s), nil
		}
	}
	return nil, nil
}
