package usecase

import "github.com/shopspring/decimal"

// ReciboData dados necessários para renderizar o recibo de pagamento de
// uma fatura.
type ReciboData struct {
	FaturaID      string
	AlunoNome     string
	AlunoEmail    string
	Amount        decimal.Decimal
	DueDate       string
	PaymentDate   string
	PaymentMethod string
}

// ReciboGenerator porto para geração do recibo em PDF.
type ReciboGenerator interface {
	Generate(data ReciboData) ([]byte, error)
}
