package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/danielblac/tmech-invoice/internal/app"
	"github.com/danielblac/tmech-invoice/internal/domain"
	"github.com/danielblac/tmech-invoice/internal/service"
)

// renderDocument draws the invoice document for view mode. Layout follows
// the printed page: seller block, numbers, bill-to, items table, custom
// information beside the totals, payment details and terms.
func renderDocument(a *app.App, rec *domain.InvoiceRecord, width int) string {
	if width <= 0 {
		width = 80
	}
	business := a.Config.Business
	money := a.Formatter.Currency

	rule := docRedStyle.Render(strings.Repeat("─", width))

	var b strings.Builder

	// Seller block and invoice numbers
	left := lipgloss.JoinVertical(lipgloss.Left,
		docAccentStyle.Render(business.Name),
		"Address: "+business.Address,
		"Email: "+business.Email,
		"Phone: "+business.Phone,
	)
	right := lipgloss.JoinVertical(lipgloss.Right,
		docAccentStyle.Render("INVOICE"),
		docLabelStyle.Render("Invoice No: ")+rec.InvoiceNo,
		docLabelStyle.Render("Invoice Date: ")+rec.InvoiceDate,
		docLabelStyle.Render("Due Date: ")+rec.DueDate,
		"",
		subtitleStyle.Render("BILL TO"),
		docLabelStyle.Render(rec.BillTo.Name),
		rec.BillTo.Address,
	)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right))
	b.WriteString("\n\n")

	// Items table
	descWidth := width - 40
	if descWidth < 12 {
		descWidth = 12
	}
	b.WriteString(rule + "\n")
	b.WriteString(docAccentStyle.Render(
		fmt.Sprintf("%-*s %14s %6s %16s", descWidth, "DESCRIPTION", "PRICE", "QTY", "SUBTOTAL"),
	) + "\n")
	b.WriteString(rule + "\n")
	for _, item := range rec.Items {
		desc := item.Description
		if len(desc) > descWidth {
			desc = desc[:descWidth-3] + "..."
		}
		b.WriteString(fmt.Sprintf("%-*s %14s %6g %16s\n",
			descWidth, desc, money(item.Price), item.Qty,
			money(service.LineTotal(item.Price, item.Qty)),
		))
	}
	b.WriteString(rule + "\n\n")

	// Custom information beside the totals column
	infoLines := []string{docAccentStyle.Render("Custom Information:")}
	for _, info := range rec.CustomInfo {
		infoLines = append(infoLines, info)
	}
	infoBlock := lipgloss.JoinVertical(lipgloss.Left, infoLines...)

	bd := a.Totals.Breakdown(rec)
	amount := func(label string, v float64) string {
		return fmt.Sprintf("%-16s %16s", label, money(v))
	}
	totalLines := []string{
		amount("Sub-total :", bd.Subtotal),
		amount("Discount :", bd.Discount),
	}
	if a.Totals.DeliveryFeeEnabled() {
		totalLines = append(totalLines, amount("Delivery Fee :", bd.DeliveryFee))
	}
	if a.Totals.VATEnabled() {
		totalLines = append(totalLines, amount(fmt.Sprintf("VAT (%.1f%%) :", a.Totals.VATRate()*100), bd.Tax))
	}
	totalLines = append(totalLines, totalRowStyle.Render(amount("Total :", bd.Total)))
	totalsBlock := lipgloss.JoinVertical(lipgloss.Left, totalLines...)

	gap = width - lipgloss.Width(infoBlock) - lipgloss.Width(totalsBlock)
	if gap < 2 {
		gap = 2
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, infoBlock, strings.Repeat(" ", gap), totalsBlock))
	b.WriteString("\n\n")

	// Payment details and terms
	payLines := []string{
		docAccentStyle.Render("PAYMENT METHOD"),
		docLabelStyle.Render("Account No: ") + business.Payment.AccountNo,
		docLabelStyle.Render("Account Name: ") + business.Payment.AccountName,
		docLabelStyle.Render("Bank Name: ") + business.Payment.BankName,
		docLabelStyle.Render("ALTERNATE ACCOUNT"),
		docLabelStyle.Render("Account No: ") + business.AlternatePayment.AccountNo,
		docLabelStyle.Render("Account Name: ") + business.AlternatePayment.AccountName,
		docLabelStyle.Render("Bank Name: ") + business.AlternatePayment.BankName,
	}
	if business.Note != "" {
		payLines = append(payLines, docRedStyle.Render("NOTE:"), docAccentStyle.Render(business.Note))
	}
	payBlock := lipgloss.JoinVertical(lipgloss.Left, payLines...)

	termLines := []string{docRedStyle.Render("TERMS AND CONDITIONS")}
	for i, t := range business.Terms {
		termLines = append(termLines, fmt.Sprintf("%d. %s", i+1, t))
	}
	termsBlock := lipgloss.JoinVertical(lipgloss.Left, termLines...)

	gap = width - lipgloss.Width(payBlock) - lipgloss.Width(termsBlock)
	if gap < 2 {
		gap = 2
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, payBlock, strings.Repeat(" ", gap), termsBlock))
	b.WriteString("\n\n")
	b.WriteString(docAccentStyle.Render(business.Footer))

	return b.String()
}
