package repository

import "github.com/renovafit/academia-api/internal/domain/entity"

// InvoiceRepository define o porto de armazenamento para Invoice (DIP).
// Leituras devolvem cópias; mutações só ficam visíveis após Update.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	Delete(id string) error
	List() ([]*entity.Invoice, error)
	FilterByStudent(studentID string) ([]*entity.Invoice, error)
	FilterBySale(saleID string) ([]*entity.Invoice, error)
	FilterByStatus(status string) ([]*entity.Invoice, error)
	// Overdue retorna faturas pendentes com vencimento anterior à data
	// informada (comparação lexicográfica, formato YYYY-MM-DD).
	Overdue(today string) ([]*entity.Invoice, error)
}
