package usecase

import (
	"time"

	"github.com/renovafit/academia-api/internal/application/dto"
	"github.com/renovafit/academia-api/internal/domain"
	"github.com/renovafit/academia-api/internal/domain/entity"
	"github.com/renovafit/academia-api/internal/domain/repository"
)

// InvoiceUseCase aplica as regras de negócio de faturas de mensalidade.
type InvoiceUseCase struct {
	repo     repository.InvoiceRepository
	userRepo repository.UserRepository
	recibos  ReciboGenerator
}

// NewInvoiceUseCase constrói o caso de uso. userRepo e recibos são usados
// apenas na geração de recibo em PDF.
func NewInvoiceUseCase(repo repository.InvoiceRepository, userRepo repository.UserRepository, recibos ReciboGenerator) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, userRepo: userRepo, recibos: recibos}
}

// Criar valida e cria uma fatura com status "pending".
func (uc *InvoiceUseCase) Criar(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := entity.NewInvoice(in.StudentID, in.SaleID, in.Amount, in.DueDate)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// ProcessarPagamento marca a fatura como paga, registrando data e método.
func (uc *InvoiceUseCase) ProcessarPagamento(id, paymentDate, paymentMethod string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrFaturaNaoEncontrada
	}
	if err := invoice.ProcessPayment(paymentDate, paymentMethod); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// Editar aplica um patch parcial à fatura com o ID informado.
func (uc *InvoiceUseCase) Editar(id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrFaturaNaoEncontrada
	}
	if in.Status != nil {
		if err := invoice.SetStatus(*in.Status); err != nil {
			return nil, err
		}
	}
	if in.PaymentDate != nil {
		invoice.SetPaymentDate(*in.PaymentDate)
	}
	if in.PaymentMethod != nil {
		if err := invoice.SetPaymentMethod(*in.PaymentMethod); err != nil {
			return nil, err
		}
	}
	if err := uc.repo.Update(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// Deletar remove a fatura com o ID informado.
func (uc *InvoiceUseCase) Deletar(id string) error {
	return uc.repo.Delete(id)
}

// Listar retorna todas as faturas em ordem de cadastro.
func (uc *InvoiceUseCase) Listar() ([]dto.InvoiceResponse, error) {
	invoices, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toInvoiceResponses(invoices), nil
}

// BuscarPorID obtém uma fatura por ID; nil quando não existe.
func (uc *InvoiceUseCase) BuscarPorID(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	return toInvoiceResponse(invoice), nil
}

// FiltrarPorAluno retorna as faturas do aluno informado.
func (uc *InvoiceUseCase) FiltrarPorAluno(studentID string) ([]dto.InvoiceResponse, error) {
	invoices, err := uc.repo.FilterByStudent(studentID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponses(invoices), nil
}

// FiltrarPorVenda retorna as faturas da venda informada.
func (uc *InvoiceUseCase) FiltrarPorVenda(saleID string) ([]dto.InvoiceResponse, error) {
	invoices, err := uc.repo.FilterBySale(saleID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponses(invoices), nil
}

// FiltrarPorStatus retorna as faturas com o status informado.
func (uc *InvoiceUseCase) FiltrarPorStatus(status string) ([]dto.InvoiceResponse, error) {
	invoices, err := uc.repo.FilterByStatus(status)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponses(invoices), nil
}

// FaturasPendentes retorna as faturas com status "pending".
func (uc *InvoiceUseCase) FaturasPendentes() ([]dto.InvoiceSummaryResponse, error) {
	invoices, err := uc.repo.FilterByStatus(entity.InvoicePending)
	if err != nil {
		return nil, err
	}
	return toInvoiceSummaries(invoices), nil
}

// FaturasVencidas retorna faturas pendentes com vencimento anterior a hoje.
// Faturas pagas são excluídas independentemente da data.
func (uc *InvoiceUseCase) FaturasVencidas() ([]dto.InvoiceSummaryResponse, error) {
	hoje := time.Now().Format("2006-01-02")
	invoices, err := uc.repo.Overdue(hoje)
	if err != nil {
		return nil, err
	}
	return toInvoiceSummaries(invoices), nil
}

// GerarRecibo renderiza o recibo em PDF de uma fatura paga.
func (uc *InvoiceUseCase) GerarRecibo(id string) ([]byte, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrFaturaNaoEncontrada
	}
	if invoice.Status != entity.InvoicePaid {
		return nil, domain.NewValidationError("status", "fatura ainda não foi paga")
	}
	data := ReciboData{
		FaturaID:      invoice.ID,
		Amount:        invoice.Amount,
		DueDate:       invoice.DueDate,
		PaymentDate:   invoice.PaymentDate,
		PaymentMethod: invoice.PaymentMethod,
	}
	aluno, err := uc.userRepo.GetByID(invoice.StudentID)
	if err != nil {
		return nil, err
	}
	if aluno != nil {
		data.AlunoNome = aluno.Nome
		data.AlunoEmail = aluno.Email
	}
	return uc.recibos.Generate(data)
}

func toInvoiceResponse(f *entity.Invoice) *dto.InvoiceResponse {
	if f == nil {
		return nil
	}
	return &dto.InvoiceResponse{
		ID:            f.ID,
		StudentID:     f.StudentID,
		SaleID:        f.SaleID,
		Amount:        f.Amount,
		DueDate:       f.DueDate,
		Status:        f.Status,
		PaymentDate:   f.PaymentDate,
		PaymentMethod: f.PaymentMethod,
	}
}

func toInvoiceResponses(invoices []*entity.Invoice) []dto.InvoiceResponse {
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, f := range invoices {
		out = append(out, *toInvoiceResponse(f))
	}
	return out
}

func toInvoiceSummaries(invoices []*entity.Invoice) []dto.InvoiceSummaryResponse {
	out := make([]dto.InvoiceSummaryResponse, 0, len(invoices))
	for _, f := range invoices {
		out = append(out, dto.InvoiceSummaryResponse{
			ID:        f.ID,
			StudentID: f.StudentID,
			SaleID:    f.SaleID,
			Amount:    f.Amount,
			DueDate:   f.DueDate,
			Status:    f.Status,
		})
	}
	return out
}
