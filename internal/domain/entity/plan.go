package entity

import (
	"github.com/google/uuid"
	"github.com/renovafit/academia-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Tipos válidos para Plan.
const (
	PlanSingle = "single"
	PlanCombo  = "combo"
)

// ValidPlanType informa se o tipo é um dos valores aceitos.
func ValidPlanType(t string) bool {
	return t == PlanSingle || t == PlanCombo
}

// Plan representa um plano de treino oferecido pela academia.
type Plan struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Type        string // single | combo
	Description string
}

// NewPlan cria um plano com ID novo, validando nome, preço e tipo.
func NewPlan(name string, price decimal.Decimal, planType, description string) (*Plan, error) {
	if name == "" {
		return nil, domain.NewValidationError("name", "nome obrigatório")
	}
	if !price.IsPositive() {
		return nil, domain.NewValidationError("price", "preço inválido")
	}
	if planType == "" {
		return nil, domain.NewValidationError("type", "tipo obrigatório")
	}
	if !ValidPlanType(planType) {
		return nil, domain.NewValidationError("type", "tipo inválido")
	}
	if len(name) < 3 {
		return nil, domain.NewValidationError("name", "nome muito curto")
	}
	return &Plan{
		ID:          uuid.New().String(),
		Name:        name,
		Price:       price,
		Type:        planType,
		Description: description,
	}, nil
}

// SetName atualiza o nome, revalidando o tamanho mínimo.
func (p *Plan) SetName(name string) error {
	if len(name) < 3 {
		return domain.NewValidationError("name", "nome muito curto")
	}
	p.Name = name
	return nil
}

// SetPrice atualiza o preço, que deve ser maior que zero.
func (p *Plan) SetPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return domain.NewValidationError("price", "preço inválido")
	}
	p.Price = price
	return nil
}

// SetType atualiza o tipo validando contra os valores aceitos.
func (p *Plan) SetType(planType string) error {
	if !ValidPlanType(planType) {
		return domain.NewValidationError("type", "tipo inválido")
	}
	p.Type = planType
	return nil
}

// SetDescription atualiza a descrição (campo livre, pode ser vazio).
func (p *Plan) SetDescription(description string) {
	p.Description = description
}
