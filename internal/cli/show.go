package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/danielblac/tmech-invoice/internal/domain"
	"github.com/danielblac/tmech-invoice/internal/service"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the invoice document",
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := appInstance.Session.Canonical()
		fmt.Print(renderDocument(rec))
		return nil
	},
}

// documentWidth sizes the plain-text document to the terminal, within
// sane bounds.
func documentWidth() int {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	if width > 100 {
		width = 100
	}
	if width < 48 {
		width = 48
	}
	return width
}

// renderDocument formats the canonical record as a text invoice
func renderDocument(rec *domain.InvoiceRecord) string {
	width := documentWidth()
	business := appInstance.Config.Business
	totals := appInstance.Totals
	money := appInstance.Formatter.Currency

	sep := strings.Repeat("=", width)
	rule := strings.Repeat("-", width)

	var b strings.Builder

	b.WriteString(sep + "\n")
	b.WriteString(business.Name + "\n")
	b.WriteString("Address: " + business.Address + "\n")
	b.WriteString("Email:   " + business.Email + "\n")
	b.WriteString("Phone:   " + business.Phone + "\n")
	b.WriteString(sep + "\n")
	b.WriteString(fmt.Sprintf("Invoice No:   %s\n", rec.InvoiceNo))
	b.WriteString(fmt.Sprintf("Invoice Date: %s\n", rec.InvoiceDate))
	b.WriteString(fmt.Sprintf("Due Date:     %s\n", rec.DueDate))
	b.WriteString("\nBILL TO\n")
	b.WriteString("  " + rec.BillTo.Name + "\n")
	b.WriteString("  " + rec.BillTo.Address + "\n")

	// Items table
	descWidth := width - 38
	b.WriteString("\n" + rule + "\n")
	b.WriteString(fmt.Sprintf("%-*s %12s %6s %16s\n", descWidth, "DESCRIPTION", "PRICE", "QTY", "SUBTOTAL"))
	b.WriteString(rule + "\n")
	for _, item := range rec.Items {
		b.WriteString(fmt.Sprintf("%-*s %12s %6g %16s\n",
			descWidth,
			truncate(item.Description, descWidth),
			money(item.Price),
			item.Qty,
			money(service.LineTotal(item.Price, item.Qty)),
		))
	}
	b.WriteString(rule + "\n")

	// Totals
	bd := totals.Breakdown(rec)
	writeAmount := func(label string, v float64) {
		b.WriteString(fmt.Sprintf("%*s %16s\n", width-17, label, money(v)))
	}
	writeAmount("Sub-total :", bd.Subtotal)
	writeAmount("Discount :", bd.Discount)
	if totals.DeliveryFeeEnabled() {
		writeAmount("Delivery Fee :", bd.DeliveryFee)
	}
	if totals.VATEnabled() {
		writeAmount(fmt.Sprintf("VAT (%.1f%%) :", totals.VATRate()*100), bd.Tax)
	}
	writeAmount("TOTAL :", bd.Total)

	// Custom information
	if len(rec.CustomInfo) > 0 {
		b.WriteString("\nCustom Information:\n")
		for _, info := range rec.CustomInfo {
			b.WriteString("  " + info + "\n")
		}
	}

	// Payment details and terms
	b.WriteString("\nPAYMENT METHOD\n")
	b.WriteString(fmt.Sprintf("  Account No:   %s\n", business.Payment.AccountNo))
	b.WriteString(fmt.Sprintf("  Account Name: %s\n", business.Payment.AccountName))
	b.WriteString(fmt.Sprintf("  Bank Name:    %s\n", business.Payment.BankName))
	b.WriteString("  ALTERNATE ACCOUNT\n")
	b.WriteString(fmt.Sprintf("  Account No:   %s\n", business.AlternatePayment.AccountNo))
	b.WriteString(fmt.Sprintf("  Account Name: %s\n", business.AlternatePayment.AccountName))
	b.WriteString(fmt.Sprintf("  Bank Name:    %s\n", business.AlternatePayment.BankName))
	if business.Note != "" {
		b.WriteString("\nNOTE: " + business.Note + "\n")
	}
	if len(business.Terms) > 0 {
		b.WriteString("\nTERMS AND CONDITIONS\n")
		for i, t := range business.Terms {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, t))
		}
	}

	b.WriteString("\n" + business.Footer + "\n")
	b.WriteString(sep + "\n")

	return b.String()
}

// truncate shortens a string to maxLen with ellipsis
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
