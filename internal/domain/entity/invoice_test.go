package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoice_StatusInicialPendente(t *testing.T) {
	f, err := NewInvoice("s1", "sale1", decimal.NewFromInt(100), "2024-01-01")
	require.NoError(t, err)

	assert.NotEmpty(t, f.ID)
	assert.Equal(t, InvoicePending, f.Status)
	assert.Empty(t, f.PaymentDate)
	assert.Empty(t, f.PaymentMethod)
}

func TestNewInvoice_Validacao(t *testing.T) {
	cases := []struct {
		studentID, saleID string
		amount            decimal.Decimal
		dueDate           string
		mensagem          string
	}{
		{"", "sale1", decimal.NewFromInt(100), "2024-01-01", "studentId obrigatório"},
		{"s1", "", decimal.NewFromInt(100), "2024-01-01", "saleId obrigatório"},
		{"s1", "sale1", decimal.Zero, "2024-01-01", "amount inválido"},
		{"s1", "sale1", decimal.NewFromInt(-5), "2024-01-01", "amount inválido"},
		{"s1", "sale1", decimal.NewFromInt(100), "", "dueDate obrigatório"},
	}
	for _, tc := range cases {
		_, err := NewInvoice(tc.studentID, tc.saleID, tc.amount, tc.dueDate)
		require.Error(t, err)
		assert.Equal(t, tc.mensagem, err.Error())
	}
}

func TestInvoice_ProcessPayment(t *testing.T) {
	f, err := NewInvoice("s1", "sale1", decimal.NewFromInt(100), "2024-01-01")
	require.NoError(t, err)

	require.NoError(t, f.ProcessPayment("2024-01-05", PaymentPix))
	assert.Equal(t, InvoicePaid, f.Status)
	assert.Equal(t, "2024-01-05", f.PaymentDate)
	assert.Equal(t, PaymentPix, f.PaymentMethod)
}

func TestInvoice_ProcessPayment_MetodoInvalido(t *testing.T) {
	f, err := NewInvoice("s1", "sale1", decimal.NewFromInt(100), "2024-01-01")
	require.NoError(t, err)

	require.Error(t, f.ProcessPayment("2024-01-05", "dinheiro"))
	assert.Equal(t, InvoicePending, f.Status, "falha de validação não altera o status")
	assert.Empty(t, f.PaymentDate)
}

func TestInvoice_SetPaymentMethod(t *testing.T) {
	f, err := NewInvoice("s1", "sale1", decimal.NewFromInt(100), "2024-01-01")
	require.NoError(t, err)

	for _, m := range []string{PaymentCreditCard, PaymentDebitCard, PaymentBoleto, PaymentPix} {
		require.NoError(t, f.SetPaymentMethod(m))
	}
	require.Error(t, f.SetPaymentMethod("cheque"))
}
