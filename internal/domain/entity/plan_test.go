package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renovafit/academia-api/internal/domain"
)

func TestNewPlan_CamposValidos(t *testing.T) {
	p, err := NewPlan("Musculação", decimal.NewFromInt(150), PlanSingle, "Treino de força")
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Musculação", p.Name)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, PlanSingle, p.Type)
	assert.Equal(t, "Treino de força", p.Description)
}

func TestNewPlan_Validacao(t *testing.T) {
	cases := []struct {
		name     string
		price    decimal.Decimal
		planType string
		mensagem string
	}{
		{"", decimal.NewFromInt(100), PlanSingle, "nome obrigatório"},
		{"Yoga", decimal.Zero, PlanSingle, "preço inválido"},
		{"Yoga", decimal.NewFromInt(-10), PlanSingle, "preço inválido"},
		{"Yoga", decimal.NewFromInt(100), "", "tipo obrigatório"},
		{"Yoga", decimal.NewFromInt(100), "trio", "tipo inválido"},
		{"Yo", decimal.NewFromInt(100), PlanSingle, "nome muito curto"},
	}
	for _, tc := range cases {
		_, err := NewPlan(tc.name, tc.price, tc.planType, "")
		require.Error(t, err, "esperava falha: %s", tc.mensagem)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, tc.mensagem, vErr.Error())
	}
}

func TestPlan_SetPrice_RejeitaZero(t *testing.T) {
	p, err := NewPlan("Musculação", decimal.NewFromInt(150), PlanSingle, "")
	require.NoError(t, err)

	require.Error(t, p.SetPrice(decimal.Zero), "preço zero presente no patch é rejeitado")
	assert.True(t, p.Price.Equal(decimal.NewFromInt(150)))

	require.NoError(t, p.SetPrice(decimal.NewFromInt(200)))
	assert.True(t, p.Price.Equal(decimal.NewFromInt(200)))
}

func TestPlan_SetDescription_AceitaVazio(t *testing.T) {
	p, err := NewPlan("Musculação", decimal.NewFromInt(150), PlanSingle, "algo")
	require.NoError(t, err)

	p.SetDescription("")
	assert.Empty(t, p.Description, "descrição pode ser limpada explicitamente")
}
