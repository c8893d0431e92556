// Package importer loads a catalog JSON export (the old CMS dataset) into the
// products table.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"threadpress/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// JSONImporter reads a top-level array of product documents and upserts each.
type JSONImporter struct {
	reader      io.Reader
	productRepo ProductWriter
}

func NewJSONImporter(r io.Reader, repo ProductWriter) *JSONImporter {
	return &JSONImporter{reader: r, productRepo: repo}
}

type productDoc struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	ProductType string `json:"productType"`
	Pricing     struct {
		PK   priceDoc `json:"pk"`
		Intl priceDoc `json:"intl"`
	} `json:"pricing"`
	Variants   []domain.Variant `json:"variants"`
	Sizes      []string         `json:"sizes"`
	Capacities []string         `json:"capacities"`
	PageTypes  []string         `json:"pageTypes"`
	Inventory  int              `json:"inventory"`
}

type priceDoc struct {
	Original int64 `json:"original"`
	Discount int64 `json:"discount"`
}

// Run decodes and upserts every product in the export. Documents without a
// slug or name are skipped rather than failing the whole import.
func (i *JSONImporter) Run(ctx context.Context) (int, error) {
	var docs []productDoc
	dec := json.NewDecoder(i.reader)
	if err := dec.Decode(&docs); err != nil {
		return 0, fmt.Errorf("decode export: %w", err)
	}

	imported := 0
	for _, doc := range docs {
		slug := strings.TrimSpace(doc.Slug)
		name := strings.TrimSpace(doc.Name)
		if slug == "" || name == "" {
			continue
		}
		product := domain.Product{
			ID:   strings.TrimSpace(doc.ID),
			Slug: slug,
			Name: name,
			Type: domain.ProductType(strings.ToLower(strings.TrimSpace(doc.ProductType))),
			Pricing: domain.Pricing{
				PK:   domain.PriceTrack{OriginalCents: doc.Pricing.PK.Original, DiscountCents: doc.Pricing.PK.Discount},
				Intl: domain.PriceTrack{OriginalCents: doc.Pricing.Intl.Original, DiscountCents: doc.Pricing.Intl.Discount},
			},
			Variants:   doc.Variants,
			Sizes:      doc.Sizes,
			Capacities: doc.Capacities,
			PageTypes:  doc.PageTypes,
			Inventory:  doc.Inventory,
		}
		if product.Type == "" {
			product.Type = domain.ProductApparel
		}
		if _, err := i.productRepo.Upsert(ctx, product); err != nil {
			return imported, fmt.Errorf("upsert product %s: %w", slug, err)
		}
		imported++
	}
	return imported, nil
}
