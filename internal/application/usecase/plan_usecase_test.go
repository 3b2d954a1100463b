package usecase

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renovafit/academia-api/internal/application/dto"
	"github.com/renovafit/academia-api/internal/domain"
	"github.com/renovafit/academia-api/internal/infrastructure/memory"
)

func novoPlanUC() *PlanUseCase {
	return NewPlanUseCase(memory.NewPlanRepository())
}

func TestPlanUseCase_Criar(t *testing.T) {
	uc := novoPlanUC()
	out, err := uc.Criar(dto.CreatePlanRequest{
		Name:  "Musculação",
		Price: decimal.NewFromFloat(150.00),
		Type:  "single",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.Price.Equal(decimal.NewFromFloat(150.00)))
}

func TestPlanUseCase_Editar_PrecoZeroRejeitado(t *testing.T) {
	uc := novoPlanUC()
	plano, err := uc.Criar(dto.CreatePlanRequest{Name: "Pilates", Price: decimal.NewFromFloat(210.00), Type: "single"})
	require.NoError(t, err)

	// Preço presente no corpo mas zero: rejeitado, nunca ignorado
	zero := decimal.Zero
	_, err = uc.Editar(plano.ID, dto.UpdatePlanRequest{Price: &zero})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "preço inválido", verr.Message)

	// Preço ausente: patch só no nome
	nome := "Pilates Avançado"
	out, err := uc.Editar(plano.ID, dto.UpdatePlanRequest{Name: &nome})
	require.NoError(t, err)
	assert.Equal(t, "Pilates Avançado", out.Name)
	assert.True(t, out.Price.Equal(decimal.NewFromFloat(210.00)))
}

func TestPlanUseCase_FiltrarPorTipo(t *testing.T) {
	uc := novoPlanUC()
	_, err := uc.Criar(dto.CreatePlanRequest{Name: "Zumba", Price: decimal.NewFromFloat(120), Type: "single"})
	require.NoError(t, err)
	_, err = uc.Criar(dto.CreatePlanRequest{Name: "Zumba + Pilates", Price: decimal.NewFromFloat(299.99), Type: "combo"})
	require.NoError(t, err)

	combos, err := uc.FiltrarPorTipo("combo")
	require.NoError(t, err)
	require.Len(t, combos, 1)
	assert.Equal(t, "Zumba + Pilates", combos[0].Name)
}

func TestPlanUseCase_Deletar_NaoEncontrado(t *testing.T) {
	uc := novoPlanUC()
	assert.ErrorIs(t, uc.Deletar("inexistente"), domain.ErrPlanoNaoEncontrado)
}

func TestSeedDemo(t *testing.T) {
	users := novoUserUC()
	plans := novoPlanUC()
	require.NoError(t, SeedDemo(users, plans))

	todos, err := users.Listar()
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "admin@renova.com", todos[0].Email)

	grade, err := plans.Listar()
	require.NoError(t, err)
	require.Len(t, grade, 6)
	assert.Equal(t, "Musculação", grade[0].Name)
	assert.True(t, grade[5].Price.Equal(decimal.NewFromFloat(299.99)))
}

func TestPlanUseCase_EdicaoConcorrenteComLeitura(t *testing.T) {
	uc := novoPlanUC()
	plano, err := uc.Criar(dto.CreatePlanRequest{Name: "Musculação", Price: decimal.NewFromFloat(150.00), Type: "single"})
	require.NoError(t, err)

	// Edições e listagens simultâneas, como o Fiber faz sob carga. Passa
	// limpo sob o race detector porque as leituras do repositório devolvem
	// cópias e o Update persiste sob o lock de escrita.
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		preco := decimal.NewFromInt(int64(100 + i))
		wg.Add(2)
		go func(p decimal.Decimal) {
			defer wg.Done()
			_, err := uc.Editar(plano.ID, dto.UpdatePlanRequest{Price: &p})
			assert.NoError(t, err)
		}(preco)
		go func() {
			defer wg.Done()
			lista, err := uc.Listar()
			assert.NoError(t, err)
			assert.Len(t, lista, 1)
		}()
	}
	wg.Wait()

	final, err := uc.BuscarPorID(plano.ID)
	require.NoError(t, err)
	assert.True(t, final.Price.IsPositive())
}
