package usecase

import (
	"github.com/renovafit/academia-api/internal/application/dto"
	"github.com/shopspring/decimal"
)

// SeedDemo carrega os dados de demonstração da academia: os dois usuários
// de teste e a grade padrão de planos. Mesmos dados que a API original
// criava na inicialização.
func SeedDemo(users *UserUseCase, plans *PlanUseCase) error {
	demoUsers := []dto.CreateUserRequest{
		{
			Nome:     "Admin Renova",
			Email:    "admin@renova.com",
			Senha:    "admin123",
			Telefone: "11999999999",
			Role:     "admin",
		},
		{
			Nome:     "Aluno Teste",
			Email:    "aluno@renova.com",
			Senha:    "aluno123",
			Telefone: "11988888888",
			Role:     "student",
		},
	}
	for _, u := range demoUsers {
		if _, err := users.Criar(u); err != nil {
			return err
		}
	}

	demoPlans := []dto.CreatePlanRequest{
		{
			Name:        "Musculação",
			Price:       decimal.NewFromFloat(150.00),
			Type:        "single",
			Description: "Treinos focados em ganho de massa e força muscular",
		},
		{
			Name:        "Pilates",
			Price:       decimal.NewFromFloat(210.00),
			Type:        "single",
			Description: "Exercícios de alongamento e fortalecimento",
		},
		{
			Name:        "Zumba",
			Price:       decimal.NewFromFloat(120.00),
			Type:        "single",
			Description: "Aulas de dança fitness energéticas",
		},
		{
			Name:        "Musculação + Pilates",
			Price:       decimal.NewFromFloat(350.00),
			Type:        "combo",
			Description: "Combo completo: força e flexibilidade",
		},
		{
			Name:        "Musculação + Zumba",
			Price:       decimal.NewFromFloat(200.00),
			Type:        "combo",
			Description: "Combo: treino de força e cardio dançante",
		},
		{
			Name:        "Zumba + Pilates",
			Price:       decimal.NewFromFloat(299.99),
			Type:        "combo",
			Description: "Combo: dança fitness e alongamento",
		},
	}
	for _, p := range demoPlans {
		if _, err := plans.Criar(p); err != nil {
			return err
		}
	}
	return nil
}
