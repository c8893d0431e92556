package shippingrule

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
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

func (r *postgresRepo) GetByCountry(ctx context.Context, country string) (*domain.ShippingRule, error) {
	const q = `
SELECT id::text, country, fee_cents, free_shipping_min_order, COALESCE(note, '')
FROM shipping_rules
WHERE lower(country) = lower(trim($1))
`
	var rule domain.ShippingRule
	err := r.pool.QueryRow(ctx, q, country).Scan(
		&rule.ID,
		&rule.Country,
		&rule.FeeCents,
		&rule.FreeShippingMinOrder,
		&rule.Note,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("shipping repo: get country=%q error=%v", country, err)
		return nil, err
	}
	return &rule, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.ShippingRule, error) {
	const q = `
SELECT id::text, country, fee_cents, free_shipping_min_order, COALESCE(note, '')
FROM shipping_rules
ORDER BY country ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("shipping repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.ShippingRule
	for rows.Next() {
		var rule domain.ShippingRule
		if err := rows.Scan(&rule.ID, &rule.Country, &rule.FeeCents, &rule.FreeShippingMinOrder, &rule.Note); err != nil {
			return nil, err
		}
		result = append(result, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, rule domain.ShippingRule) (*domain.ShippingRule, error) {
	const q = `
INSERT INTO shipping_rules (country, fee_cents, free_shipping_min_order, note)
VALUES ($1, $2, $3, NULLIF($4, ''))
ON CONFLICT (country) DO UPDATE SET
    fee_cents = EXCLUDED.fee_cents,
    free_shipping_min_order = EXCLUDED.free_shipping_min_order,
    note = EXCLUDED.note
RETURNING id::text
`
	res := rule
	if err := r.pool.QueryRow(ctx, q, rule.Country, rule.FeeCents, rule.FreeShippingMinOrder, rule.Note).Scan(&res.ID); err != nil {
		r.logger.Printf("shipping repo: upsert country=%s error=%v", rule.Country, err)
		return nil, err
	}
	return &res, nil
}
