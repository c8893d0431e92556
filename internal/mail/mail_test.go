package mail

import (
	"strings"
	"testing"

	"threadpress/internal/domain"
)

func sampleOrder(mode domain.PriceMode) domain.Order {
	return domain.Order{
		OrderNumber: "TP-ABC123-XY9Z",
		Customer: domain.Customer{
			Name:    "Ayesha Khan",
			Email:   "ayesha@example.com",
			Country: "Pakistan",
			City:    "Lahore",
			Address: "14-B Gulberg III",
		},
		PriceMode: mode,
		Items: []domain.OrderItem{
			{ProductName: "Classic Tee", ProductType: domain.ProductApparel, Size: "M", Quantity: 2, UnitPriceCents: 199900},
			{ProductName: "Sketch Notebook", ProductType: domain.ProductStationery, PageType: "dotted", Quantity: 1, UnitPriceCents: 89900},
		},
		SubtotalCents:    489700,
		ShippingFeeCents: 30000,
		TotalCents:       519700,
	}
}

func TestRenderPKUsesRupees(t *testing.T) {
	body := Render(sampleOrder(domain.PriceModePK))
	for _, want := range []string{
		"Thank you for your order, Ayesha Khan!",
		"Order number: TP-ABC123-XY9Z",
		"2x Classic Tee (M) - PKR 3998.00",
		"1x Sketch Notebook (dotted) - PKR 899.00",
		"Subtotal: PKR 4897.00",
		"Shipping: PKR 300.00",
		"Total:    PKR 5197.00",
		"Shipping to: 14-B Gulberg III, Lahore, Pakistan",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}

func TestRenderIntlUsesDollars(t *testing.T) {
	body := Render(sampleOrder(domain.PriceModeIntl))
	if !strings.Contains(body, "Total:    USD 5197.00") {
		t.Fatalf("expected USD total, got:\n%s", body)
	}
	if strings.Contains(body, "PKR") {
		t.Fatalf("intl order must not mention PKR:\n%s", body)
	}
}

func TestFormatCentsPadding(t *testing.T) {
	if got := formatCents(105, "USD"); got != "USD 1.05" {
		t.Fatalf("expected USD 1.05, got %q", got)
	}
	if got := formatCents(30000, "PKR"); got != "PKR 300.00" {
		t.Fatalf("expected PKR 300.00, got %q", got)
	}
}
