package service

import (
	"testing"

	"github.com/danielblac/tmech-invoice/internal/config"
	"github.com/danielblac/tmech-invoice/internal/domain"
)

func testItems() []domain.LineItem {
	return []domain.LineItem{
		{ID: 1, Description: "Student Uniform (12M & 12 L)", Price: 15000, Qty: 24},
		{ID: 2, Description: "Standard Face Caps", Price: 5000, Qty: 24},
	}
}

func TestLineTotal(t *testing.T) {
	cases := []struct {
		price, qty, want float64
	}{
		{15000, 24, 360000},
		{5000, 24, 120000},
		{0, 10, 0},
		{9.99, 3, 29.97},
	}
	for _, c := range cases {
		if got := LineTotal(c.price, c.qty); got != c.want {
			t.Errorf("LineTotal(%v, %v) = %v, want %v", c.price, c.qty, got, c.want)
		}
	}
}

func TestSubtotal(t *testing.T) {
	if got := Subtotal(testItems()); got != 480000 {
		t.Errorf("expected subtotal 480000, got %v", got)
	}

	if got := Subtotal(nil); got != 0 {
		t.Errorf("expected empty subtotal 0, got %v", got)
	}

	// Subtotal equals the sum of line totals in order
	items := testItems()
	var want float64
	for _, item := range items {
		want += LineTotal(item.Price, item.Qty)
	}
	if got := Subtotal(items); got != want {
		t.Errorf("subtotal %v does not match summed line totals %v", got, want)
	}
}

func TestTotal_NoTaxVariant(t *testing.T) {
	calc := NewTotalsCalculator(config.TotalsConfig{
		DeliveryFeeEnabled: true,
		VATEnabled:         false,
		VATRate:            0.075,
	})

	if got := calc.Total(testItems(), 0, 0); got != 480000 {
		t.Errorf("expected total 480000, got %v", got)
	}
	if got := calc.Tax(480000, 0, 0); got != 0 {
		t.Errorf("expected no tax, got %v", got)
	}
}

func TestTotal_VATVariant(t *testing.T) {
	calc := NewTotalsCalculator(config.TotalsConfig{
		DeliveryFeeEnabled: false,
		VATEnabled:         true,
		VATRate:            0.075,
	})

	if got := calc.Tax(480000, 0, 0); got != 36000 {
		t.Errorf("expected tax 36000, got %v", got)
	}
	if got := calc.Total(testItems(), 0, 0); got != 516000 {
		t.Errorf("expected total 516000, got %v", got)
	}
}

func TestTotal_DiscountAndFee(t *testing.T) {
	calc := NewTotalsCalculator(config.TotalsConfig{
		DeliveryFeeEnabled: true,
		VATEnabled:         false,
	})
	items := testItems()

	// Total decreases as discount grows
	prev := calc.Total(items, 0, 0)
	for _, discount := range []float64{1000, 5000, 20000} {
		got := calc.Total(items, discount, 0)
		if got >= prev {
			t.Errorf("total %v not below %v for discount %v", got, prev, discount)
		}
		prev = got
	}

	// Total increases as the fee grows
	prev = calc.Total(items, 0, 0)
	for _, fee := range []float64{500, 1500, 3000} {
		got := calc.Total(items, 0, fee)
		if got <= prev {
			t.Errorf("total %v not above %v for fee %v", got, prev, fee)
		}
		prev = got
	}
}

func TestBreakdown_FeeToggleOff(t *testing.T) {
	calc := NewTotalsCalculator(config.TotalsConfig{
		DeliveryFeeEnabled: false,
		VATEnabled:         false,
	})

	rec := domain.DefaultInvoice()
	rec.DeliveryFee = 2500

	b := calc.Breakdown(rec)
	if b.DeliveryFee != 0 {
		t.Errorf("disabled fee should not surface, got %v", b.DeliveryFee)
	}
	if b.Total != b.Subtotal-b.Discount {
		t.Errorf("disabled fee must not affect total: %v", b.Total)
	}
}

func TestBreakdown_BothTermsEnabled(t *testing.T) {
	calc := NewTotalsCalculator(config.TotalsConfig{
		DeliveryFeeEnabled: true,
		VATEnabled:         true,
		VATRate:            0.075,
	})

	rec := domain.DefaultInvoice()
	rec.Discount = 10000
	rec.DeliveryFee = 2000

	b := calc.Breakdown(rec)
	wantTax := (480000.0 - 10000 + 2000) * 0.075
	if b.Tax != wantTax {
		t.Errorf("expected tax %v, got %v", wantTax, b.Tax)
	}
	wantTotal := 480000.0 - 10000 + 2000 + wantTax
	if b.Total != wantTotal {
		t.Errorf("expected total %v, got %v", wantTotal, b.Total)
	}
}

func TestFormatter_Currency(t *testing.T) {
	f := NewFormatter(config.CurrencyConfig{Symbol: "₦", Locale: "en-NG"})

	cases := []struct {
		amount float64
		want   string
	}{
		{480000, "₦480,000.00"},
		{516000, "₦516,000.00"},
		{0, "₦0.00"},
		{1234.5, "₦1,234.50"},
	}
	for _, c := range cases {
		if got := f.Currency(c.amount); got != c.want {
			t.Errorf("Currency(%v) = %q, want %q", c.amount, got, c.want)
		}
	}
}

func TestFormatter_BadLocaleFallsBack(t *testing.T) {
	f := NewFormatter(config.CurrencyConfig{Symbol: "₦", Locale: "not a tag"})
	if got := f.Currency(480000); got != "₦480,000.00" {
		t.Errorf("fallback formatting wrong: %q", got)
	}
}
