package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renovafit/academia-api/internal/application/dto"
	"github.com/renovafit/academia-api/internal/domain"
	"github.com/renovafit/academia-api/internal/infrastructure/memory"
)

func novoSaleUC() *SaleUseCase {
	return NewSaleUseCase(memory.NewSaleRepository())
}

func criarVenda(t *testing.T, uc *SaleUseCase, studentID, status string) *dto.SaleResponse {
	t.Helper()
	out, err := uc.Criar(dto.CreateSaleRequest{
		StudentID: studentID,
		PlanID:    "plano-1",
		StartDate: "2025-01-01",
		EndDate:   "2025-12-31",
		Status:    status,
	})
	require.NoError(t, err)
	return out
}

func TestSaleUseCase_Criar_DefaultActive(t *testing.T) {
	uc := novoSaleUC()
	out := criarVenda(t, uc, "aluno-1", "")
	assert.Equal(t, "active", out.Status)
	assert.NotEmpty(t, out.SaleDate)
}

func TestSaleUseCase_Criar_CamposObrigatorios(t *testing.T) {
	uc := novoSaleUC()
	_, err := uc.Criar(dto.CreateSaleRequest{PlanID: "p", StartDate: "2025-01-01", EndDate: "2025-12-31"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "studentId", verr.Field)
}

func TestSaleUseCase_VendaAtivaPorAluno(t *testing.T) {
	uc := novoSaleUC()
	criarVenda(t, uc, "aluno-1", "expired")
	ativa := criarVenda(t, uc, "aluno-1", "active")
	criarVenda(t, uc, "aluno-1", "active")

	out, err := uc.VendaAtivaPorAluno("aluno-1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, ativa.ID, out.ID)

	out, err = uc.VendaAtivaPorAluno("aluno-2")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestSaleUseCase_Editar(t *testing.T) {
	uc := novoSaleUC()
	venda := criarVenda(t, uc, "aluno-1", "active")

	status := "inactive"
	out, err := uc.Editar(venda.ID, dto.UpdateSaleRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "inactive", out.Status)
	assert.Equal(t, "2025-12-31", out.EndDate)

	_, err = uc.Editar("inexistente", dto.UpdateSaleRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrVendaNaoEncontrada)
}
