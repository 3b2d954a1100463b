package entity

import (
	"github.com/google/uuid"
	"github.com/renovafit/academia-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Status válidos para Invoice.
const (
	InvoicePending = "pending"
	InvoicePaid    = "paid"
	InvoiceOverdue = "overdue"
)

// Métodos de pagamento aceitos.
const (
	PaymentCreditCard = "credit_card"
	PaymentDebitCard  = "debit_card"
	PaymentBoleto     = "boleto"
	PaymentPix        = "pix"
)

// ValidInvoiceStatus informa se o status é um dos valores aceitos.
func ValidInvoiceStatus(s string) bool {
	return s == InvoicePending || s == InvoicePaid || s == InvoiceOverdue
}

// ValidPaymentMethod informa se o método de pagamento é um dos aceitos.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCreditCard, PaymentDebitCard, PaymentBoleto, PaymentPix:
		return true
	}
	return false
}

// Invoice representa uma fatura de mensalidade vinculada a uma venda.
// DueDate e PaymentDate são strings YYYY-MM-DD; a comparação lexicográfica
// de vencimento depende desse formato zero-padded.
type Invoice struct {
	ID            string
	StudentID     string
	SaleID        string
	Amount        decimal.Decimal
	DueDate       string
	Status        string // pending | paid | overdue
	PaymentDate   string
	PaymentMethod string
}

// NewInvoice cria uma fatura com ID novo e status "pending".
func NewInvoice(studentID, saleID string, amount decimal.Decimal, dueDate string) (*Invoice, error) {
	if studentID == "" {
		return nil, domain.NewValidationError("studentId", "studentId obrigatório")
	}
	if saleID == "" {
		return nil, domain.NewValidationError("saleId", "saleId obrigatório")
	}
	if !amount.IsPositive() {
		return nil, domain.NewValidationError("amount", "amount inválido")
	}
	if dueDate == "" {
		return nil, domain.NewValidationError("dueDate", "dueDate obrigatório")
	}
	return &Invoice{
		ID:        uuid.New().String(),
		StudentID: studentID,
		SaleID:    saleID,
		Amount:    amount,
		DueDate:   dueDate,
		Status:    InvoicePending,
	}, nil
}

// SetStatus atualiza o status validando contra os valores aceitos.
func (i *Invoice) SetStatus(status string) error {
	if !ValidInvoiceStatus(status) {
		return domain.NewValidationError("status", "status inválido")
	}
	i.Status = status
	return nil
}

// SetPaymentDate registra a data de pagamento.
func (i *Invoice) SetPaymentDate(paymentDate string) {
	i.PaymentDate = paymentDate
}

// SetPaymentMethod registra o método de pagamento validando o valor.
func (i *Invoice) SetPaymentMethod(method string) error {
	if !ValidPaymentMethod(method) {
		return domain.NewValidationError("paymentMethod", "método de pagamento inválido")
	}
	i.PaymentMethod = method
	return nil
}

// ProcessPayment marca a fatura como paga registrando data e método em uma
// única mutação.
func (i *Invoice) ProcessPayment(paymentDate, method string) error {
	if !ValidPaymentMethod(method) {
		return domain.NewValidationError("paymentMethod", "método de pagamento inválido")
	}
	i.Status = InvoicePaid
	i.PaymentDate = paymentDate
	i.PaymentMethod = method
	return nil
}
