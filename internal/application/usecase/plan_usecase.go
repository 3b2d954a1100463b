package usecase

import (
	"github.com/renovafit/academia-api/internal/application/dto"
	"github.com/renovafit/academia-api/internal/domain"
	"github.com/renovafit/academia-api/internal/domain/entity"
	"github.com/renovafit/academia-api/internal/domain/repository"
)

// PlanUseCase aplica as regras de negócio de planos de treino.
type PlanUseCase struct {
	repo repository.PlanRepository
}

// NewPlanUseCase constrói o caso de uso com o porto de armazenamento.
func NewPlanUseCase(repo repository.PlanRepository) *PlanUseCase {
	return &PlanUseCase{repo: repo}
}

// Criar valida e cria um plano.
func (uc *PlanUseCase) Criar(in dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	plan, err := entity.NewPlan(in.Name, in.Price, in.Type, in.Description)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// Editar aplica um patch parcial ao plano com o ID informado. Campos nil
// não são alterados; price zero presente no corpo é rejeitado pelo setter.
func (uc *PlanUseCase) Editar(id string, in dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	plan, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrPlanoNaoEncontrado
	}
	if in.Name != nil {
		if err := plan.SetName(*in.Name); err != nil {
			return nil, err
		}
	}
	if in.Price != nil {
		if err := plan.SetPrice(*in.Price); err != nil {
			return nil, err
		}
	}
	if in.Type != nil {
		if err := plan.SetType(*in.Type); err != nil {
			return nil, err
		}
	}
	if in.Description != nil {
		plan.SetDescription(*in.Description)
	}
	if err := uc.repo.Update(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// Deletar remove o plano com o ID informado.
func (uc *PlanUseCase) Deletar(id string) error {
	return uc.repo.Delete(id)
}

// Listar retorna todos os planos em ordem de cadastro.
func (uc *PlanUseCase) Listar() ([]dto.PlanResponse, error) {
	plans, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toPlanResponses(plans), nil
}

// BuscarPorID obtém um plano por ID; nil quando não existe.
func (uc *PlanUseCase) BuscarPorID(id string) (*dto.PlanResponse, error) {
	plan, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, nil
	}
	return toPlanResponse(plan), nil
}

// FiltrarPorTipo retorna os planos do tipo informado (single ou combo).
func (uc *PlanUseCase) FiltrarPorTipo(tipo string) ([]dto.PlanResponse, error) {
	plans, err := uc.repo.FilterByType(tipo)
	if err != nil {
		return nil, err
	}
	return toPlanResponses(plans), nil
}

// BuscarPorNome filtra planos por substring do nome (case-insensitive).
func (uc *PlanUseCase) BuscarPorNome(nome string) ([]dto.PlanResponse, error) {
	plans, err := uc.repo.SearchByName(nome)
	if err != nil {
		return nil, err
	}
	return toPlanResponses(plans), nil
}

func toPlanResponse(p *entity.Plan) *dto.PlanResponse {
	if p == nil {
		return nil
	}
	return &dto.PlanResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Type:        p.Type,
		Description: p.Description,
	}
}

func toPlanResponses(plans []*entity.Plan) []dto.PlanResponse {
	out := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, *toPlanResponse(p))
	}
	return out
}
