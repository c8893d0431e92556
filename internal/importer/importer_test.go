package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"threadpress/internal/domain"
)

type stubWriter struct {
	upserted []domain.Product
	err      error
}

func (s *stubWriter) Upsert(_ context.Context, product domain.Product) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.upserted = append(s.upserted, product)
	return &product, nil
}

const export = `[
  {
    "slug": "classic-tee",
    "name": "Classic Tee",
    "productType": "Apparel",
    "pricing": {"pk": {"original": 199900, "discount": 149900}, "intl": {"original": 1999, "discount": 0}},
    "sizes": ["S", "M", "L"],
    "inventory": 40
  },
  {
    "slug": "",
    "name": "Nameless"
  },
  {
    "slug": "morning-mug",
    "name": "Morning Mug",
    "productType": "mug",
    "capacities": ["11oz", "15oz"]
  }
]`

func TestRunImportsValidDocsAndSkipsBroken(t *testing.T) {
	writer := &stubWriter{}
	imp := NewJSONImporter(strings.NewReader(export), writer)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 imported, got %d", count)
	}

	tee := writer.upserted[0]
	if tee.Type != domain.ProductApparel {
		t.Fatalf("product type must be lowercased, got %s", tee.Type)
	}
	if tee.Pricing.PK.DiscountCents != 149900 {
		t.Fatalf("expected pk discount to survive, got %d", tee.Pricing.PK.DiscountCents)
	}

	mug := writer.upserted[1]
	if mug.Type != domain.ProductMug || len(mug.Capacities) != 2 {
		t.Fatalf("unexpected mug doc: %+v", mug)
	}
}

func TestRunDefaultsMissingType(t *testing.T) {
	writer := &stubWriter{}
	imp := NewJSONImporter(strings.NewReader(`[{"slug": "thing", "name": "Thing"}]`), writer)

	if _, err := imp.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if writer.upserted[0].Type != domain.ProductApparel {
		t.Fatalf("expected apparel default, got %s", writer.upserted[0].Type)
	}
}

func TestRunBadJSON(t *testing.T) {
	imp := NewJSONImporter(strings.NewReader("{not json"), &stubWriter{})

	_, err := imp.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode export") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestRunUpsertFailureStops(t *testing.T) {
	imp := NewJSONImporter(strings.NewReader(export), &stubWriter{err: errors.New("db down")})

	count, err := imp.Run(context.Background())
	if err == nil || count != 0 {
		t.Fatalf("expected failure with 0 imported, got count=%d err=%v", count, err)
	}
}
