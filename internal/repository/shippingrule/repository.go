package shippingrule

import (
	"context"

	"threadpress/internal/domain"
)

type Repository interface {
	GetByCountry(ctx context.Context, country string) (*domain.ShippingRule, error)
	List(ctx context.Context) ([]domain.ShippingRule, error)
	Upsert(ctx context.Context, rule domain.ShippingRule) (*domain.ShippingRule, error)
}
