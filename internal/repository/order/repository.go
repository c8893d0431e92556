package order

import (
	"context"

	"threadpress/internal/domain"
)

type Repository interface {
	// Create persists the order and its items atomically. A clash on the
	// order number or idempotency key surfaces as domain.ErrDuplicate.
	Create(ctx context.Context, in domain.Order) (*domain.Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Order, error)
}
