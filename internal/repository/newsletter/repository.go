package newsletter

import (
	"context"

	"threadpress/internal/domain"
)

type Repository interface {
	// Subscribe inserts the email, returning domain.ErrDuplicate when it is
	// already subscribed.
	Subscribe(ctx context.Context, email string) (*domain.Subscription, error)
	Exists(ctx context.Context, email string) (bool, error)
}
