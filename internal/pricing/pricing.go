// Package pricing resolves a product's pricing block against a currency mode.
package pricing

import "threadpress/internal/domain"

// Resolved is the outcome of resolving a pricing block: the list price and the
// price actually charged.
type Resolved struct {
	OriginalCents  int64
	EffectiveCents int64
}

// Resolve maps a pricing block and a currency mode to the effective price.
// A configured discount wins over the original price. A zero-value pricing
// block resolves to zero on both fields; the catalog may return partial data
// for unpublished products and the storefront must not fail on it. An unknown
// mode falls back to the international track.
func Resolve(p domain.Pricing, mode domain.PriceMode) Resolved {
	track := p.Intl
	if mode == domain.PriceModePK {
		track = p.PK
	}
	out := Resolved{OriginalCents: track.OriginalCents, EffectiveCents: track.OriginalCents}
	if track.DiscountCents > 0 {
		out.EffectiveCents = track.DiscountCents
	}
	return out
}
