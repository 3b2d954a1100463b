// Package pdf implementa a geração do recibo de pagamento de mensalidade
// em PDF, usado pela secretaria da academia e pelo portal do aluno.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: Academia Renova │ Recibo + Fatura  │
//	│  ─────────────────────────────────────────  │
//	│  ALUNO: nome + email                        │
//	│  ─────────────────────────────────────────  │
//	│  PAGAMENTO: valor, vencimento, data, método │
//	│  ─────────────────────────────────────────  │
//	│  RODAPÉ: observação legal                   │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/renovafit/academia-api/internal/application/usecase"
)

var (
	colorPrimary = &props.Color{Red: 16, Green: 122, Blue: 87}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Nomes exibidos para os métodos de pagamento.
var metodoLabels = map[string]string{
	"credit_card": "Cartão de crédito",
	"debit_card":  "Cartão de débito",
	"boleto":      "Boleto bancário",
	"pix":         "Pix",
}

// ReciboGenerator implementa usecase.ReciboGenerator usando Maroto v2.
type ReciboGenerator struct{}

// NewReciboGenerator constrói o gerador.
func NewReciboGenerator() *ReciboGenerator { return &ReciboGenerator{} }

var _ usecase.ReciboGenerator = (*ReciboGenerator)(nil)

// Generate renderiza o recibo e devolve seus bytes.
func (g *ReciboGenerator) Generate(data usecase.ReciboData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de Pagamento", true).
		WithAuthor("Academia Renova", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(alunoRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(pagamentoRows(data)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(rodapeRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nome da academia (esq) e identificação da fatura (dir).
func headerRow(data usecase.ReciboData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Academia Renova", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de pagamento de mensalidade", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
				Color: colorPrimary,
			}),
			text.New("Fatura: "+data.FaturaID, props.Text{
				Size: 7, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// alunoRow: identificação do aluno pagador.
func alunoRow(data usecase.ReciboData) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("ALUNO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(data.AlunoNome, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Email: "+nonEmpty(data.AlunoEmail, "—"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// pagamentoRows: bloco com os dados do pagamento.
func pagamentoRows(data usecase.ReciboData) []core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})
	}
	item := func(l, v string) core.Row {
		return row.New(7).Add(
			col.New(6).Add(label(l)),
			col.New(6).Add(value(v)),
		)
	}
	metodo := metodoLabels[data.PaymentMethod]
	if metodo == "" {
		metodo = data.PaymentMethod
	}
	return []core.Row{
		row.New(8).Add(col.New(12).Add(text.New("PAGAMENTO", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}))),
		item("Valor pago:", "R$ "+data.Amount.StringFixed(2)),
		item("Vencimento:", data.DueDate),
		item("Data do pagamento:", data.PaymentDate),
		item("Método:", metodo),
	}
}

// rodapeRow: observação de validade do recibo.
func rodapeRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Este recibo comprova a quitação da mensalidade indicada. "+
				"Guarde este documento para eventuais conferências.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
