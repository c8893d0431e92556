package product

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/google/uuid"
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

const productColumns = `id::text, slug, name, product_type, pricing, variants, sizes, capacities, page_types, inventory, created_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	q := `
SELECT ` + productColumns + `
FROM products
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	// The column is uuid; a non-UUID argument would fail the encode with a
	// cast error instead of ErrNoRows. It can never match, so report
	// not-found and let callers fall back to the slug lookup.
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	q := `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	return r.getOne(ctx, q, id)
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	q := `
SELECT ` + productColumns + `
FROM products
WHERE slug = $1
`
	return r.getOne(ctx, q, slug)
}

func (r *postgresRepo) getOne(ctx context.Context, q string, arg any) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, q, arg)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get arg=%v error=%v", arg, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (id, slug, name, product_type, pricing, variants, sizes, capacities, page_types, inventory)
VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (slug) DO UPDATE SET
    name = EXCLUDED.name,
    product_type = EXCLUDED.product_type,
    pricing = EXCLUDED.pricing,
    variants = EXCLUDED.variants,
    sizes = EXCLUDED.sizes,
    capacities = EXCLUDED.capacities,
    page_types = EXCLUDED.page_types,
    inventory = EXCLUDED.inventory
RETURNING id::text, created_at
`
	res := product
	err := r.pool.QueryRow(ctx, q,
		product.ID,
		product.Slug,
		product.Name,
		string(product.Type),
		product.Pricing,
		product.Variants,
		product.Sizes,
		product.Capacities,
		product.PageTypes,
		product.Inventory,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: upsert slug=%s error=%v", product.Slug, err)
		return nil, err
	}
	r.logger.Printf("product repo: upserted slug=%s id=%s", res.Slug, res.ID)
	return &res, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var p domain.Product
	var productType string
	err := row.Scan(
		&p.ID,
		&p.Slug,
		&p.Name,
		&productType,
		&p.Pricing,
		&p.Variants,
		&p.Sizes,
		&p.Capacities,
		&p.PageTypes,
		&p.Inventory,
		&p.CreatedAt,
	)
	p.Type = domain.ProductType(productType)
	return p, err
}
