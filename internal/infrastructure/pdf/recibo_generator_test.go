package pdf

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renovafit/academia-api/internal/application/usecase"
)

func TestGenerate(t *testing.T) {
	g := NewReciboGenerator()

	out, err := g.Generate(usecase.ReciboData{
		FaturaID:      "fatura-1",
		AlunoNome:     "Aluno Teste",
		AlunoEmail:    "aluno@renova.com",
		Amount:        decimal.NewFromFloat(150.00),
		DueDate:       "2025-01-10",
		PaymentDate:   "2025-01-05",
		PaymentMethod: "pix",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]), "saída começa com o magic number de PDF")
}

func TestGenerate_SemAluno(t *testing.T) {
	g := NewReciboGenerator()

	// Fatura órfã (aluno removido) ainda gera recibo
	out, err := g.Generate(usecase.ReciboData{
		FaturaID:      "fatura-2",
		Amount:        decimal.NewFromFloat(99.90),
		DueDate:       "2025-02-10",
		PaymentDate:   "2025-02-01",
		PaymentMethod: "boleto",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
