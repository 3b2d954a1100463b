package usecase

import (
	"github.com/renovafit/academia-api/internal/application/dto"
	"github.com/renovafit/academia-api/internal/domain"
	"github.com/renovafit/academia-api/internal/domain/entity"
	"github.com/renovafit/academia-api/internal/domain/repository"
)

// SaleUseCase aplica as regras de negócio de vendas (contratações de plano).
type SaleUseCase struct {
	repo repository.SaleRepository
}

// NewSaleUseCase constrói o caso de uso com o porto de armazenamento.
func NewSaleUseCase(repo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo}
}

// Criar valida e cria uma venda. Status vazio assume "active".
func (uc *SaleUseCase) Criar(in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := entity.NewSale(in.StudentID, in.PlanID, in.StartDate, in.EndDate, in.Status)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// Editar aplica um patch parcial à venda com o ID informado.
func (uc *SaleUseCase) Editar(id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrVendaNaoEncontrada
	}
	if in.Status != nil {
		if err := sale.SetStatus(*in.Status); err != nil {
			return nil, err
		}
	}
	if in.EndDate != nil {
		if err := sale.SetEndDate(*in.EndDate); err != nil {
			return nil, err
		}
	}
	if err := uc.repo.Update(sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// Deletar remove a venda com o ID informado.
func (uc *SaleUseCase) Deletar(id string) error {
	return uc.repo.Delete(id)
}

// Listar retorna todas as vendas em ordem de cadastro.
func (uc *SaleUseCase) Listar() ([]dto.SaleResponse, error) {
	sales, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toSaleResponses(sales), nil
}

// BuscarPorID obtém uma venda por ID; nil quando não existe.
func (uc *SaleUseCase) BuscarPorID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// FiltrarPorAluno retorna as vendas do aluno informado.
func (uc *SaleUseCase) FiltrarPorAluno(studentID string) ([]dto.SaleResponse, error) {
	sales, err := uc.repo.FilterByStudent(studentID)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(sales), nil
}

// FiltrarPorPlano retorna as vendas do plano informado.
func (uc *SaleUseCase) FiltrarPorPlano(planID string) ([]dto.SaleResponse, error) {
	sales, err := uc.repo.FilterByPlan(planID)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(sales), nil
}

// FiltrarPorStatus retorna as vendas com o status informado.
func (uc *SaleUseCase) FiltrarPorStatus(status string) ([]dto.SaleResponse, error) {
	sales, err := uc.repo.FilterByStatus(status)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(sales), nil
}

// VendaAtivaPorAluno retorna a primeira venda ativa do aluno, ou nil.
func (uc *SaleUseCase) VendaAtivaPorAluno(studentID string) (*dto.SaleResponse, error) {
	sale, err := uc.repo.ActiveByStudent(studentID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:        s.ID,
		StudentID: s.StudentID,
		PlanID:    s.PlanID,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Status:    s.Status,
		SaleDate:  s.SaleDate,
	}
}

func toSaleResponses(sales []*entity.Sale) []dto.SaleResponse {
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *toSaleResponse(s))
	}
	return out
}
