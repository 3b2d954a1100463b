package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/renovafit/academia-api/internal/domain"
)

// Status válidos para Sale.
const (
	SaleActive   = "active"
	SaleInactive = "inactive"
	SaleExpired  = "expired"
)

// ValidSaleStatus informa se o status é um dos valores aceitos.
func ValidSaleStatus(s string) bool {
	return s == SaleActive || s == SaleInactive || s == SaleExpired
}

// Sale representa a contratação de um plano por um aluno. As datas de
// vigência são strings no formato YYYY-MM-DD; SaleDate é o instante da
// criação em RFC 3339.
type Sale struct {
	ID        string
	StudentID string
	PlanID    string
	StartDate string
	EndDate   string
	Status    string // active | inactive | expired
	SaleDate  string
}

// NewSale cria uma venda com ID novo e SaleDate corrente. Status vazio
// assume "active".
func NewSale(studentID, planID, startDate, endDate, status string) (*Sale, error) {
	if studentID == "" {
		return nil, domain.NewValidationError("studentId", "studentId obrigatório")
	}
	if planID == "" {
		return nil, domain.NewValidationError("planId", "planId obrigatório")
	}
	if startDate == "" {
		return nil, domain.NewValidationError("startDate", "startDate obrigatório")
	}
	if endDate == "" {
		return nil, domain.NewValidationError("endDate", "endDate obrigatório")
	}
	if status == "" {
		status = SaleActive
	}
	if !ValidSaleStatus(status) {
		return nil, domain.NewValidationError("status", "status inválido")
	}
	return &Sale{
		ID:        uuid.New().String(),
		StudentID: studentID,
		PlanID:    planID,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    status,
		SaleDate:  time.Now().Format(time.RFC3339),
	}, nil
}

// SetStatus atualiza o status validando contra os valores aceitos.
func (s *Sale) SetStatus(status string) error {
	if !ValidSaleStatus(status) {
		return domain.NewValidationError("status", "status inválido")
	}
	s.Status = status
	return nil
}

// SetEndDate atualiza a data de término da vigência.
func (s *Sale) SetEndDate(endDate string) error {
	if endDate == "" {
		return domain.NewValidationError("endDate", "endDate obrigatório")
	}
	s.EndDate = endDate
	return nil
}
