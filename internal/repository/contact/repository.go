package contact

import (
	"context"

	"threadpress/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, form domain.ContactForm) (*domain.ContactForm, error)
}
