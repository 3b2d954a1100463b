package memory

import (
	"sync"

	"github.com/renovafit/academia-api/internal/domain"
	"github.com/renovafit/academia-api/internal/domain/entity"
	"github.com/renovafit/academia-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementação do porto InvoiceRepository sobre uma coleção em
// memória, ordenada por inserção. Leituras devolvem cópias; ver UserRepo.
type InvoiceRepo struct {
	mu    sync.RWMutex
	lista []*entity.Invoice
}

// NewInvoiceRepository constrói o repositório em memória de faturas.
func NewInvoiceRepository() *InvoiceRepo {
	return &InvoiceRepo{}
}

func cloneInvoice(f *entity.Invoice) *entity.Invoice {
	c := *f
	return &c
}

// Create anexa a fatura ao final da coleção.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lista = append(r.lista, cloneInvoice(invoice))
	return nil
}

// GetByID busca linear por ID; nil quando não existe.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.lista {
		if f.ID == id {
			return cloneInvoice(f), nil
		}
	}
	return nil, nil
}

// Update substitui o registro de mesmo ID sob o lock de escrita.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, f := range r.lista {
		if f.ID == invoice.ID {
			r.lista[i] = cloneInvoice(invoice)
			return nil
		}
	}
	return domain.ErrFaturaNaoEncontrada
}

// Delete remove a fatura com o ID informado.
func (r *InvoiceRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, f := range r.lista {
		if f.ID == id {
			r.lista = append(r.lista[:i], r.lista[i+1:]...)
			return nil
		}
	}
	return domain.ErrFaturaNaoEncontrada
}

// List retorna cópias da coleção em ordem de inserção.
func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Invoice, len(r.lista))
	for i, f := range r.lista {
		out[i] = cloneInvoice(f)
	}
	return out, nil
}

// FilterByStudent retorna as faturas do aluno informado.
func (r *InvoiceRepo) FilterByStudent(studentID string) ([]*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Invoice, 0)
	for _, f := range r.lista {
		if f.StudentID == studentID {
			out = append(out, cloneInvoice(f))
		}
	}
	return out, nil
}

// FilterBySale retorna as faturas da venda informada.
func (r *InvoiceRepo) FilterBySale(saleID string) ([]*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Invoice, 0)
	for _, f := range r.lista {
		if f.SaleID == saleID {
			out = append(out, cloneInvoice(f))
		}
	}
	return out, nil
}

// FilterByStatus retorna as faturas com o status informado.
func (r *InvoiceRepo) FilterByStatus(status string) ([]*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Invoice, 0)
	for _, f := range r.lista {
		if f.Status == status {
			out = append(out, cloneInvoice(f))
		}
	}
	return out, nil
}

// Overdue retorna faturas pendentes com DueDate anterior à data informada.
// A comparação de strings só é válida porque o formato YYYY-MM-DD é
// zero-padded.
func (r *InvoiceRepo) Overdue(today string) ([]*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Invoice, 0)
	for _, f := range r.lista {
		if f.Status == entity.InvoicePending && f.DueDate < today {
			out = append(out, cloneInvoice(f))
		}
	}
	return out, nil
}
