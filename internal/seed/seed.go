package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"threadpress/internal/domain"
	productrepo "threadpress/internal/repository/product"
	shippingrepo "threadpress/internal/repository/shippingrule"
)

// Apply inserts demo catalog data and shipping rules for manual testing. It is
// idempotent via upserts keyed on slug and country.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := productrepo.NewPostgres(pool, nil)
	rules := shippingrepo.NewPostgres(pool, nil)

	catalog := []domain.Product{
		{
			Slug: "classic-tee",
			Name: "Classic Tee",
			Type: domain.ProductApparel,
			Pricing: domain.Pricing{
				PK:   domain.PriceTrack{OriginalCents: 249900, DiscountCents: 199900},
				Intl: domain.PriceTrack{OriginalCents: 1999},
			},
			Variants: []domain.Variant{
				{ID: "classic-tee-black", Color: "Black", ColorCode: "#000000"},
				{ID: "classic-tee-white", Color: "White", ColorCode: "#ffffff"},
			},
			Sizes:     []string{"S", "M", "L", "XL"},
			Inventory: 120,
		},
		{
			Slug: "studio-hoodie",
			Name: "Studio Hoodie",
			Type: domain.ProductApparel,
			Pricing: domain.Pricing{
				PK:   domain.PriceTrack{OriginalCents: 549900},
				Intl: domain.PriceTrack{OriginalCents: 4499, DiscountCents: 3999},
			},
			Variants: []domain.Variant{
				{ID: "studio-hoodie-navy", Color: "Navy", ColorCode: "#1f2a44"},
			},
			Sizes:     []string{"M", "L", "XL"},
			Inventory: 60,
		},
		{
			Slug: "morning-mug",
			Name: "Morning Mug",
			Type: domain.ProductMug,
			Pricing: domain.Pricing{
				PK:   domain.PriceTrack{OriginalCents: 129900},
				Intl: domain.PriceTrack{OriginalCents: 1299},
			},
			Variants: []domain.Variant{
				{ID: "morning-mug-white", Color: "White", ColorCode: "#ffffff"},
			},
			Capacities: []string{"11oz", "15oz"},
			Inventory:  200,
		},
		{
			Slug: "sketch-notebook",
			Name: "Sketch Notebook",
			Type: domain.ProductStationery,
			Pricing: domain.Pricing{
				PK:   domain.PriceTrack{OriginalCents: 89900, DiscountCents: 74900},
				Intl: domain.PriceTrack{OriginalCents: 899},
			},
			Variants: []domain.Variant{
				{ID: "sketch-notebook-kraft", Color: "Kraft", ColorCode: "#c8a26a"},
			},
			PageTypes: []string{"plain", "ruled", "dotted"},
			Inventory: 150,
		},
	}
	for _, p := range catalog {
		if _, err := products.Upsert(ctx, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Slug, err)
		}
	}

	shippingRules := []domain.ShippingRule{
		{Country: "Pakistan", FeeCents: 30000, FreeShippingMinOrder: 5},
		{Country: "United Arab Emirates", FeeCents: 2500, FreeShippingMinOrder: 0, Note: "delivered within 7-10 business days"},
		{Country: "United States", FeeCents: 1500, FreeShippingMinOrder: 10},
		{Country: "United Kingdom", FeeCents: 1200, FreeShippingMinOrder: 0},
	}
	for _, rule := range shippingRules {
		if _, err := rules.Upsert(ctx, rule); err != nil {
			return fmt.Errorf("upsert shipping rule %s: %w", rule.Country, err)
		}
	}

	return nil
}
