package service

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/danielblac/tmech-invoice/internal/config"
	"github.com/danielblac/tmech-invoice/internal/domain"
)

// LineTotal returns the amount for one row. No rounding is applied here.
func LineTotal(price, qty float64) float64 {
	return price * qty
}

// Subtotal sums line totals in sequence order. An empty sequence yields 0.
func Subtotal(items []domain.LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += LineTotal(item.Price, item.Qty)
	}
	return sum
}

// Breakdown is the derived money view of a record. It is recomputed on
// every read and never stored.
type Breakdown struct {
	Subtotal    float64
	Discount    float64
	DeliveryFee float64
	Tax         float64
	Total       float64
}

// TotalsCalculator derives totals under the configured formula:
// subtotal - discount [+ delivery fee] [+ VAT], each bracketed term
// enabled independently.
type TotalsCalculator struct {
	cfg config.TotalsConfig
}

// NewTotalsCalculator creates a calculator for the given toggles.
func NewTotalsCalculator(cfg config.TotalsConfig) *TotalsCalculator {
	return &TotalsCalculator{cfg: cfg}
}

// DeliveryFeeEnabled reports whether the fee term participates.
func (c *TotalsCalculator) DeliveryFeeEnabled() bool { return c.cfg.DeliveryFeeEnabled }

// VATEnabled reports whether the tax term participates.
func (c *TotalsCalculator) VATEnabled() bool { return c.cfg.VATEnabled }

// VATRate returns the configured rate as a decimal.
func (c *TotalsCalculator) VATRate() float64 { return c.cfg.VATRate }

// Tax returns the VAT amount on the taxable base, or 0 when VAT is off.
func (c *TotalsCalculator) Tax(subtotal, discount, deliveryFee float64) float64 {
	if !c.cfg.VATEnabled {
		return 0
	}
	if !c.cfg.DeliveryFeeEnabled {
		deliveryFee = 0
	}
	return (subtotal - discount + deliveryFee) * c.cfg.VATRate
}

// Total returns the grand total for the given inputs.
func (c *TotalsCalculator) Total(items []domain.LineItem, discount, deliveryFee float64) float64 {
	sub := Subtotal(items)
	total := sub - discount
	if c.cfg.DeliveryFeeEnabled {
		total += deliveryFee
	}
	total += c.Tax(sub, discount, deliveryFee)
	return total
}

// Breakdown derives every displayed amount from a record.
func (c *TotalsCalculator) Breakdown(rec *domain.InvoiceRecord) Breakdown {
	b := Breakdown{
		Subtotal: Subtotal(rec.Items),
		Discount: rec.Discount,
	}
	if c.cfg.DeliveryFeeEnabled {
		b.DeliveryFee = rec.DeliveryFee
	}
	b.Tax = c.Tax(b.Subtotal, b.Discount, rec.DeliveryFee)
	b.Total = c.Total(rec.Items, rec.Discount, rec.DeliveryFee)
	return b
}

// Formatter renders amounts as currency text with locale-aware grouping
// and exactly two fraction digits.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter builds a formatter for the configured symbol and locale.
// An unparseable locale tag falls back to en-NG grouping.
func NewFormatter(cfg config.CurrencyConfig) *Formatter {
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		tag = language.MustParse("en-NG")
	}
	return &Formatter{
		symbol:  cfg.Symbol,
		printer: message.NewPrinter(tag),
	}
}

// Currency renders e.g. 480000 as "₦480,000.00".
func (f *Formatter) Currency(amount float64) string {
	return f.symbol + f.printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
