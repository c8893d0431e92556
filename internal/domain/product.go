package domain

import "time"

// ProductType distinguishes the three catalog families. Apparel and mugs are
// sized, stationery is styled by page type.
type ProductType string

const (
	ProductApparel    ProductType = "apparel"
	ProductMug        ProductType = "mug"
	ProductStationery ProductType = "stationery"
)

// PriceMode selects which currency track a line or order was priced in.
type PriceMode string

const (
	PriceModePK   PriceMode = "pk"
	PriceModeIntl PriceMode = "intl"
)

// PriceTrack holds one currency's prices in minor units. A zero DiscountCents
// means no discount is configured.
type PriceTrack struct {
	OriginalCents int64 `json:"originalCents"`
	DiscountCents int64 `json:"discountCents,omitempty"`
}

// Pricing carries both currency tracks for a product.
type Pricing struct {
	PK   PriceTrack `json:"pk"`
	Intl PriceTrack `json:"intl"`
}

// Variant is a color-specific rendition of a product with its own image set.
type Variant struct {
	ID        string   `json:"id"`
	Color     string   `json:"color"`
	ColorCode string   `json:"colorCode"`
	Images    []string `json:"images,omitempty"`
}

type Product struct {
	ID         string      `json:"id"`
	Slug       string      `json:"slug"`
	Name       string      `json:"name"`
	Type       ProductType `json:"productType"`
	Pricing    Pricing     `json:"pricing"`
	Variants   []Variant   `json:"variants,omitempty"`
	Sizes      []string    `json:"sizes,omitempty"`
	Capacities []string    `json:"capacities,omitempty"`
	PageTypes  []string    `json:"pageTypes,omitempty"`
	Inventory  int         `json:"inventory"`
	CreatedAt  time.Time   `json:"createdAt"`
}
