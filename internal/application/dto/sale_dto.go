package dto

// CreateSaleRequest corpo de POST /vendas.
type CreateSaleRequest struct {
	StudentID string `json:"studentId"`
	PlanID    string `json:"planId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
}

// UpdateSaleRequest corpo de PUT /vendas/:id. Campos nil não são alterados.
type UpdateSaleRequest struct {
	Status  *string `json:"status"`
	EndDate *string `json:"endDate"`
}

// SaleResponse projeção de venda.
type SaleResponse struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
	PlanID    string `json:"planId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
	SaleDate  string `json:"saleDate"`
}

// CreateSaleResponse corpo de sucesso da criação.
type CreateSaleResponse struct {
	Status    string `json:"status"`
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
	PlanID    string `json:"planId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	SaleDate  string `json:"saleDate"`
}

// UpdateSaleResponse corpo de sucesso da edição.
type UpdateSaleResponse struct {
	Status string       `json:"status"`
	Dados  SaleResponse `json:"dados"`
}
