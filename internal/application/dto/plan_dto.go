package dto

import "github.com/shopspring/decimal"

// CreatePlanRequest corpo de POST /planos.
type CreatePlanRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
}

// UpdatePlanRequest corpo de PUT /planos/:id. Campos nil não são alterados.
type UpdatePlanRequest struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Type        *string          `json:"type"`
	Description *string          `json:"description"`
}

// PlanResponse projeção de plano.
type PlanResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
}

// CreatePlanResponse corpo de sucesso da criação.
type CreatePlanResponse struct {
	Status string          `json:"status"`
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Type   string          `json:"type"`
}

// UpdatePlanResponse corpo de sucesso da edição.
type UpdatePlanResponse struct {
	Status string       `json:"status"`
	Dados  PlanResponse `json:"dados"`
}
