// Package pdf renders the invoice document to PDF for printing.
//
// A4 portrait layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  black band / red tab                                        │
//	│  SELLER: name, address, email, phone   │  INVOICE no/dates   │
//	│                                        │  BILL TO            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Description | Price | Qty | Subtotal                 │
//	│  Custom information            │  Sub-total / Discount /     │
//	│                                │  (Fee) / (VAT) / TOTAL      │
//	│  PAYMENT METHOD + NOTE         │  TERMS AND CONDITIONS       │
//	│  footer line / black band / red tab                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"os"
	"path/filepath"

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

	appconfig "github.com/danielblac/tmech-invoice/internal/config"
	"github.com/danielblac/tmech-invoice/internal/domain"
	"github.com/danielblac/tmech-invoice/internal/service"
)

var (
	colorBlack = &props.Color{Red: 0, Green: 0, Blue: 0}
	colorRed   = &props.Color{Red: 220, Green: 38, Blue: 38}
	colorNavy  = &props.Color{Red: 23, Green: 37, Blue: 84}
	colorGray  = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// Generator renders the canonical record as a printable document.
type Generator struct {
	business appconfig.BusinessConfig
	calc     *service.TotalsCalculator
	format   *service.Formatter
}

// New constructs a generator.
func New(business appconfig.BusinessConfig, calc *service.TotalsCalculator, format *service.Formatter) *Generator {
	return &Generator{business: business, calc: calc, format: format}
}

// Generate renders the record and returns the PDF bytes.
func (g *Generator) Generate(rec *domain.InvoiceRecord) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(0).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Invoice "+rec.InvoiceNo, true).
		WithAuthor(g.business.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(bandRow())
	m.AddRows(headerRow(g.business, rec))
	m.AddRows(row.New(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorRed, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorRed, Thickness: 0.5}))
	for _, r := range g.tableRows(rec.Items) {
		m.AddRows(r)
	}

	m.AddRows(row.New(3))
	for _, r := range g.summaryRows(rec) {
		m.AddRows(r)
	}

	m.AddRows(row.New(6))
	m.AddRows(g.paymentAndTermsRow())

	m.AddRows(row.New(6))
	m.AddRows(footerRow(g.business.Footer))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// WriteFile renders the record to <dir>/<invoiceNo>.pdf and returns the
// written path.
func (g *Generator) WriteFile(rec *domain.InvoiceRecord, dir string) (string, error) {
	data, err := g.Generate(rec)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("pdf: create output dir: %w", err)
	}
	name := rec.InvoiceNo
	if name == "" {
		name = "invoice"
	}
	path := filepath.Join(dir, name+".pdf")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return path, nil
}

// bandRow: the black strip with the red tab that tops and tails the
// original document.
func bandRow() core.Row {
	return row.New(6).Add(
		col.New(4).WithStyle(&props.Cell{BackgroundColor: colorRed}),
		col.New(8).WithStyle(&props.Cell{BackgroundColor: colorBlack}),
	)
}

// headerRow: seller block on the left, INVOICE title + numbers + BILL TO
// on the right.
func headerRow(business appconfig.BusinessConfig, rec *domain.InvoiceRecord) core.Row {
	return row.New(46).Add(
		col.New(7).Add(
			text.New(business.Name, props.Text{
				Style: fontstyle.Bold, Size: 15, Color: colorNavy, Top: 6,
			}),
			text.New("Address: "+business.Address, props.Text{Size: 9, Top: 16}),
			text.New("Email: "+business.Email, props.Text{Size: 9, Top: 21}),
			text.New("Phone: "+business.Phone, props.Text{Size: 9, Top: 26}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 22, Align: align.Right,
				Color: colorNavy, Top: 4,
			}),
			text.New("Invoice No: "+rec.InvoiceNo, props.Text{Size: 9, Align: align.Right, Top: 15}),
			text.New("Invoice Date: "+rec.InvoiceDate, props.Text{Size: 9, Align: align.Right, Top: 20}),
			text.New("Due Date: "+rec.DueDate, props.Text{Size: 9, Align: align.Right, Top: 25}),
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorGray, Top: 32,
			}),
			text.New(rec.BillTo.Name, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 36,
			}),
			text.New(rec.BillTo.Address, props.Text{Size: 9, Align: align.Right, Top: 42}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: a, Color: colorNavy, Top: 2,
		}))
	}
	return row.New(9).Add(
		h("DESCRIPTION", 6, align.Left),
		h("PRICE", 2, align.Center),
		h("QTY", 1, align.Center),
		h("SUBTOTAL", 3, align.Right),
	)
}

func (g *Generator) tableRows(items []domain.LineItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, row.New(7).Add(
			col.New(6).Add(text.New(item.Description, props.Text{Size: 9, Top: 1})),
			col.New(2).Add(text.New(
				g.format.Currency(item.Price),
				props.Text{Size: 9, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%g", item.Qty),
				props.Text{Size: 9, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				g.format.Currency(service.LineTotal(item.Price, item.Qty)),
				props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1},
			)),
		))
	}
	return rows
}

// summaryRows: custom information on the left, the totals column on the
// right with the navy total band.
func (g *Generator) summaryRows(rec *domain.InvoiceRecord) []core.Row {
	b := g.calc.Breakdown(rec)

	type amountLine struct {
		label string
		value float64
	}
	lines := []amountLine{
		{"Sub-total :", b.Subtotal},
		{"Discount :", b.Discount},
	}
	if g.calc.DeliveryFeeEnabled() {
		lines = append(lines, amountLine{"Delivery Fee :", b.DeliveryFee})
	}
	if g.calc.VATEnabled() {
		lines = append(lines, amountLine{fmt.Sprintf("VAT (%.1f%%) :", g.calc.VATRate()*100), b.Tax})
	}

	info := make([]core.Component, 0, len(rec.CustomInfo)+1)
	info = append(info, text.New("Custom Information:", props.Text{
		Style: fontstyle.Bold, Size: 10, Color: colorNavy, Top: 1,
	}))
	for i, ci := range rec.CustomInfo {
		info = append(info, text.New(ci, props.Text{Size: 9, Top: float64(7 + i*5)}))
	}

	amounts := make([]core.Component, 0, len(lines)*2)
	for i, l := range lines {
		top := float64(1 + i*6)
		amounts = append(amounts,
			text.New(l.label, props.Text{Size: 9, Color: colorNavy, Top: top}),
			text.New(g.format.Currency(l.value), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorNavy, Top: top,
			}),
		)
	}

	height := float64(len(lines)*6 + 2)
	if h := float64(len(rec.CustomInfo)*5 + 9); h > height {
		height = h
	}

	rows := []core.Row{
		row.New(height).Add(
			col.New(6).Add(info...),
			col.New(1),
			col.New(5).Add(amounts...),
		),
		row.New(9).Add(
			col.New(7),
			col.New(5).WithStyle(&props.Cell{BackgroundColor: colorNavy}).Add(
				text.New("Total :", props.Text{
					Style: fontstyle.Bold, Size: 11, Color: colorWhite, Top: 2, Left: 2,
				}),
				text.New(g.format.Currency(b.Total), props.Text{
					Style: fontstyle.Bold, Size: 11, Align: align.Right,
					Color: colorWhite, Top: 2, Right: 2,
				}),
			),
		),
	}
	return rows
}

func (g *Generator) paymentAndTermsRow() core.Row {
	pay := g.business.Payment
	alt := g.business.AlternatePayment

	left := []core.Component{
		text.New("PAYMENT METHOD", props.Text{Style: fontstyle.Bold, Size: 10, Color: colorNavy, Top: 1}),
		text.New("Account No: "+pay.AccountNo, props.Text{Size: 9, Top: 7}),
		text.New("Account Name: "+pay.AccountName, props.Text{Size: 9, Top: 12}),
		text.New("Bank Name: "+pay.BankName, props.Text{Size: 9, Top: 17}),
		text.New("ALTERNATE ACCOUNT", props.Text{Style: fontstyle.Bold, Size: 8, Top: 25}),
		text.New("Account No: "+alt.AccountNo, props.Text{Size: 9, Top: 30}),
		text.New("Account Name: "+alt.AccountName, props.Text{Size: 9, Top: 35}),
		text.New("Bank Name: "+alt.BankName, props.Text{Size: 9, Top: 40}),
		text.New("NOTE:", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorRed, Top: 48}),
		text.New(g.business.Note, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorNavy, Top: 53}),
	}

	right := []core.Component{
		text.New("TERMS AND CONDITIONS", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorRed, Top: 1,
		}),
	}
	top := 7.0
	for _, term := range g.business.Terms {
		right = append(right, text.New(term, props.Text{Size: 8, Align: align.Right, Top: top}))
		top += 5
	}

	height := 60.0
	if h := top + 2; h > height {
		height = h
	}

	return row.New(height).Add(
		col.New(6).Add(left...),
		col.New(6).Add(right...),
	)
}

func footerRow(footer string) core.Row {
	return row.New(10).Add(
		col.New(7).Add(text.New(footer, props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorNavy, Top: 2,
		})),
		col.New(5).WithStyle(&props.Cell{BackgroundColor: colorRed}),
	)
}
