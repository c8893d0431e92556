package contact

import (
	"context"
	"io"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"threadpress/internal/domain"
)

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

func (r *postgresRepo) Create(ctx context.Context, form domain.ContactForm) (*domain.ContactForm, error) {
	const q = `
INSERT INTO contact_forms (name, email, phone, customization, message, reference_image)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''))
RETURNING id::text, created_at
`
	res := form
	err := r.pool.QueryRow(ctx, q,
		form.Name,
		form.Email,
		form.Phone,
		form.Customization,
		form.Message,
		form.ReferenceImage,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("contact repo: create email=%s error=%v", form.Email, err)
		return nil, err
	}
	return &res, nil
}
