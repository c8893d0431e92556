package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"threadpress/internal/domain"
)

func TestResolveOriginalOnly(t *testing.T) {
	p := domain.Pricing{PK: domain.PriceTrack{OriginalCents: 1000}}
	got := Resolve(p, domain.PriceModePK)
	assert.Equal(t, int64(1000), got.OriginalCents)
	assert.Equal(t, int64(1000), got.EffectiveCents)
}

func TestResolveDiscountWins(t *testing.T) {
	p := domain.Pricing{PK: domain.PriceTrack{OriginalCents: 1000, DiscountCents: 800}}
	got := Resolve(p, domain.PriceModePK)
	assert.Equal(t, int64(1000), got.OriginalCents)
	assert.Equal(t, int64(800), got.EffectiveCents)
}

func TestResolveTracksAreIndependent(t *testing.T) {
	p := domain.Pricing{
		PK:   domain.PriceTrack{OriginalCents: 249900, DiscountCents: 199900},
		Intl: domain.PriceTrack{OriginalCents: 1999},
	}
	assert.Equal(t, int64(199900), Resolve(p, domain.PriceModePK).EffectiveCents)
	assert.Equal(t, int64(1999), Resolve(p, domain.PriceModeIntl).EffectiveCents)
}

func TestResolveMissingPricingBlock(t *testing.T) {
	got := Resolve(domain.Pricing{}, domain.PriceModePK)
	assert.Zero(t, got.OriginalCents)
	assert.Zero(t, got.EffectiveCents)
}

func TestResolveUnknownModeFallsBackToIntl(t *testing.T) {
	p := domain.Pricing{Intl: domain.PriceTrack{OriginalCents: 500}}
	got := Resolve(p, domain.PriceMode("eur"))
	assert.Equal(t, int64(500), got.EffectiveCents)
}
