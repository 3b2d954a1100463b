package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest corpo de POST /faturas.
type CreateInvoiceRequest struct {
	StudentID string          `json:"studentId"`
	SaleID    string          `json:"saleId"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   string          `json:"dueDate"`
}

// UpdateInvoiceRequest corpo de PUT /faturas/:id. Campos nil não são
// alterados.
type UpdateInvoiceRequest struct {
	Status        *string `json:"status"`
	PaymentDate   *string `json:"paymentDate"`
	PaymentMethod *string `json:"paymentMethod"`
}

// PaymentRequest corpo de POST /faturas/:id/pagamento.
type PaymentRequest struct {
	PaymentDate   string `json:"paymentDate"`
	PaymentMethod string `json:"paymentMethod"`
}

// InvoiceResponse projeção de fatura.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	StudentID     string          `json:"studentId"`
	SaleID        string          `json:"saleId"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       string          `json:"dueDate"`
	Status        string          `json:"status"`
	PaymentDate   string          `json:"paymentDate,omitempty"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
}

// InvoiceSummaryResponse projeção reduzida usada em /pendentes e /vencidas.
type InvoiceSummaryResponse struct {
	ID        string          `json:"id"`
	StudentID string          `json:"studentId"`
	SaleID    string          `json:"saleId"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   string          `json:"dueDate"`
	Status    string          `json:"status"`
}

// CreateInvoiceResponse corpo de sucesso da criação.
type CreateInvoiceResponse struct {
	Status    string          `json:"status"`
	ID        string          `json:"id"`
	StudentID string          `json:"studentId"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   string          `json:"dueDate"`
}

// PaymentResponse corpo de sucesso do processamento de pagamento.
type PaymentResponse struct {
	Status string      `json:"status"`
	Dados  PaymentData `json:"dados"`
}

// PaymentData campos de pagamento devolvidos após o processamento.
type PaymentData struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PaymentDate   string `json:"paymentDate"`
	PaymentMethod string `json:"paymentMethod"`
}

// UpdateInvoiceResponse corpo de sucesso da edição.
type UpdateInvoiceResponse struct {
	Status string          `json:"status"`
	Dados  InvoiceResponse `json:"dados"`
}
