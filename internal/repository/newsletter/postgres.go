package newsletter

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"threadpress/internal/domain"
)

const uniqueViolation = "23505"

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Subscribe(ctx context.Context, email string) (*domain.Subscription, error) {
	const q = `
INSERT INTO newsletter_subscriptions (email)
VALUES ($1)
RETURNING id::text, email, subscribed_at
`
	var sub domain.Subscription
	err := r.pool.QueryRow(ctx, q, email).Scan(&sub.ID, &sub.Email, &sub.SubscribedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicate
		}
		r.logger.Printf("newsletter repo: subscribe email=%s error=%v", email, err)
		return nil, err
	}
	return &sub, nil
}

func (r *postgresRepo) Exists(ctx context.Context, email string) (bool, error) {
	const q = `
SELECT EXISTS (SELECT 1 FROM newsletter_subscriptions WHERE email = $1)
`
	var exists bool
	if err := r.pool.QueryRow(ctx, q, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
