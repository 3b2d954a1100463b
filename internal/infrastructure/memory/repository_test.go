package memory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renovafit/academia-api/internal/domain"
	"github.com/renovafit/academia-api/internal/domain/entity"
)

func TestUserRepo_CicloDeVida(t *testing.T) {
	repo := NewUserRepository()

	a := &entity.User{ID: "1", Nome: "Ana Lima", Email: "ana@renova.com", Role: entity.RoleStudent}
	b := &entity.User{ID: "2", Nome: "Bruno Dias", Email: "bruno@renova.com", Role: entity.RoleAdmin}
	require.NoError(t, repo.Create(a))
	require.NoError(t, repo.Create(b))

	got, err := repo.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, a, got)
	assert.NotSame(t, a, got, "leituras devolvem cópias, não o registro vivo")

	got, err = repo.GetByEmail("bruno@renova.com")
	require.NoError(t, err)
	assert.Equal(t, b, got)

	got, err = repo.GetByID("inexistente")
	require.NoError(t, err)
	assert.Nil(t, got, "ID desconhecido devolve nil, não erro")

	lista, err := repo.List()
	require.NoError(t, err)
	require.Len(t, lista, 2)
	assert.Equal(t, "1", lista[0].ID, "List preserva a ordem de inserção")
	assert.Equal(t, "2", lista[1].ID)

	require.NoError(t, repo.Delete("ana@renova.com"))
	got, err = repo.GetByEmail("ana@renova.com")
	require.NoError(t, err)
	assert.Nil(t, got)

	err = repo.Delete("ana@renova.com")
	assert.ErrorIs(t, err, domain.ErrUsuarioNaoEncontrado)
}

func TestUserRepo_Update(t *testing.T) {
	repo := NewUserRepository()
	require.NoError(t, repo.Create(&entity.User{ID: "1", Nome: "Ana Lima", Email: "ana@renova.com", Role: entity.RoleStudent}))

	// Mutar a cópia lida não altera a coleção antes do Update
	copia, err := repo.GetByID("1")
	require.NoError(t, err)
	copia.Nome = "Ana Paula Lima"

	guardado, err := repo.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", guardado.Nome)

	require.NoError(t, repo.Update(copia))
	guardado, err = repo.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Paula Lima", guardado.Nome)

	err = repo.Update(&entity.User{ID: "inexistente"})
	assert.ErrorIs(t, err, domain.ErrUsuarioNaoEncontrado)
}

func TestUserRepo_Filtros(t *testing.T) {
	repo := NewUserRepository()
	require.NoError(t, repo.Create(&entity.User{ID: "1", Nome: "Ana Lima", Email: "a@x.com", Role: entity.RoleStudent}))
	require.NoError(t, repo.Create(&entity.User{ID: "2", Nome: "Mariana Costa", Email: "m@x.com", Role: entity.RoleStudent}))
	require.NoError(t, repo.Create(&entity.User{ID: "3", Nome: "Carlos Souza", Email: "c@x.com", Role: entity.RoleAdmin}))

	alunos, err := repo.FilterByRole(entity.RoleStudent)
	require.NoError(t, err)
	assert.Len(t, alunos, 2)

	// Busca por substring sem diferenciar maiúsculas
	achados, err := repo.SearchByNome("ANA")
	require.NoError(t, err)
	require.Len(t, achados, 2, "'ANA' casa com Ana e Mariana")

	achados, err = repo.SearchByNome("souza")
	require.NoError(t, err)
	require.Len(t, achados, 1)
	assert.Equal(t, "Carlos Souza", achados[0].Nome)
}

func TestPlanRepo_Filtros(t *testing.T) {
	repo := NewPlanRepository()
	require.NoError(t, repo.Create(&entity.Plan{ID: "1", Name: "Musculação", Type: entity.PlanSingle}))
	require.NoError(t, repo.Create(&entity.Plan{ID: "2", Name: "Musculação + Pilates", Type: entity.PlanCombo}))

	combos, err := repo.FilterByType(entity.PlanCombo)
	require.NoError(t, err)
	require.Len(t, combos, 1)
	assert.Equal(t, "2", combos[0].ID)

	achados, err := repo.SearchByName("musculação")
	require.NoError(t, err)
	assert.Len(t, achados, 2)

	require.NoError(t, repo.Delete("1"))
	assert.ErrorIs(t, repo.Delete("1"), domain.ErrPlanoNaoEncontrado)
}

func TestSaleRepo_ActiveByStudent_PrimeiraVence(t *testing.T) {
	repo := NewSaleRepository()
	require.NoError(t, repo.Create(&entity.Sale{ID: "1", StudentID: "s1", PlanID: "p1", Status: entity.SaleExpired}))
	require.NoError(t, repo.Create(&entity.Sale{ID: "2", StudentID: "s1", PlanID: "p2", Status: entity.SaleActive}))
	require.NoError(t, repo.Create(&entity.Sale{ID: "3", StudentID: "s1", PlanID: "p3", Status: entity.SaleActive}))

	ativa, err := repo.ActiveByStudent("s1")
	require.NoError(t, err)
	require.NotNil(t, ativa)
	assert.Equal(t, "2", ativa.ID, "com duplicatas lógicas vale a primeira em ordem de inserção")

	ativa, err = repo.ActiveByStudent("s2")
	require.NoError(t, err)
	assert.Nil(t, ativa)
}

func TestSaleRepo_Filtros(t *testing.T) {
	repo := NewSaleRepository()
	require.NoError(t, repo.Create(&entity.Sale{ID: "1", StudentID: "s1", PlanID: "p1", Status: entity.SaleActive}))
	require.NoError(t, repo.Create(&entity.Sale{ID: "2", StudentID: "s2", PlanID: "p1", Status: entity.SaleInactive}))

	porAluno, err := repo.FilterByStudent("s1")
	require.NoError(t, err)
	assert.Len(t, porAluno, 1)

	porPlano, err := repo.FilterByPlan("p1")
	require.NoError(t, err)
	assert.Len(t, porPlano, 2)

	porStatus, err := repo.FilterByStatus(entity.SaleInactive)
	require.NoError(t, err)
	assert.Len(t, porStatus, 1)
}

func TestInvoiceRepo_Overdue(t *testing.T) {
	repo := NewInvoiceRepository()
	cem := decimal.NewFromInt(100)
	require.NoError(t, repo.Create(&entity.Invoice{ID: "1", StudentID: "s1", SaleID: "v1", Amount: cem, DueDate: "2024-01-01", Status: entity.InvoicePending}))
	require.NoError(t, repo.Create(&entity.Invoice{ID: "2", StudentID: "s1", SaleID: "v1", Amount: cem, DueDate: "2024-01-01", Status: entity.InvoicePaid}))
	require.NoError(t, repo.Create(&entity.Invoice{ID: "3", StudentID: "s1", SaleID: "v1", Amount: cem, DueDate: "2099-12-31", Status: entity.InvoicePending}))

	vencidas, err := repo.Overdue("2024-06-15")
	require.NoError(t, err)
	require.Len(t, vencidas, 1, "paga não vence; pendente futura não vence")
	assert.Equal(t, "1", vencidas[0].ID)
}

func TestInvoiceRepo_Filtros(t *testing.T) {
	repo := NewInvoiceRepository()
	cem := decimal.NewFromInt(100)
	require.NoError(t, repo.Create(&entity.Invoice{ID: "1", StudentID: "s1", SaleID: "v1", Amount: cem, Status: entity.InvoicePending}))
	require.NoError(t, repo.Create(&entity.Invoice{ID: "2", StudentID: "s2", SaleID: "v2", Amount: cem, Status: entity.InvoicePaid}))

	porAluno, err := repo.FilterByStudent("s2")
	require.NoError(t, err)
	require.Len(t, porAluno, 1)
	assert.Equal(t, "2", porAluno[0].ID)

	porVenda, err := repo.FilterBySale("v1")
	require.NoError(t, err)
	assert.Len(t, porVenda, 1)

	pagas, err := repo.FilterByStatus(entity.InvoicePaid)
	require.NoError(t, err)
	assert.Len(t, pagas, 1)

	require.NoError(t, repo.Delete("1"))
	assert.ErrorIs(t, repo.Delete("1"), domain.ErrFaturaNaoEncontrada)
}
