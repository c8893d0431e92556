package order

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
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

func (r *postgresRepo) Create(ctx context.Context, in domain.Order) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const orderQ = `
INSERT INTO orders (order_number, idempotency_key, customer_name, customer_phone, customer_email,
                    customer_country, customer_city, customer_address, price_mode,
                    subtotal_cents, shipping_fee_cents, total_cents, payment_method, receipt_url, status)
VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NULLIF($14, ''), $15)
RETURNING id::text, created_at
`
	out := in
	err = tx.QueryRow(ctx, orderQ,
		in.OrderNumber,
		in.IdempotencyKey,
		in.Customer.Name,
		in.Customer.Phone,
		in.Customer.Email,
		in.Customer.Country,
		in.Customer.City,
		in.Customer.Address,
		string(in.PriceMode),
		in.SubtotalCents,
		in.ShippingFeeCents,
		in.TotalCents,
		in.Payment.Method,
		in.Payment.ReceiptURL,
		string(in.Status),
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicate
		}
		r.logger.Printf("order repo: create number=%s error=%v", in.OrderNumber, err)
		return nil, err
	}

	const itemQ = `
INSERT INTO order_items (order_id, product_id, product_name, product_type, variant_id, color,
                         size, page_type, quantity, unit_price_cents, price_mode)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9, $10, $11)
`
	for _, item := range in.Items {
		if _, err := tx.Exec(ctx, itemQ,
			out.ID,
			item.ProductID,
			item.ProductName,
			string(item.ProductType),
			item.VariantID,
			item.Color,
			item.Size,
			item.PageType,
			item.Quantity,
			item.UnitPriceCents,
			string(item.PriceMode),
		); err != nil {
			r.logger.Printf("order repo: create item order=%s product=%s error=%v", out.ID, item.ProductID, err)
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created id=%s number=%s items=%d total_cents=%d", out.ID, out.OrderNumber, len(out.Items), out.TotalCents)
	return &out, nil
}

func (r *postgresRepo) GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	const q = `
SELECT id::text, order_number, COALESCE(idempotency_key, ''), customer_name, customer_phone, customer_email,
       customer_country, customer_city, customer_address, price_mode,
       subtotal_cents, shipping_fee_cents, total_cents, payment_method, COALESCE(receipt_url, ''), status, created_at
FROM orders
WHERE order_number = $1
`
	return r.fetchOrder(ctx, q, orderNumber)
}

func (r *postgresRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Order, error) {
	const q = `
SELECT id::text, order_number, COALESCE(idempotency_key, ''), customer_name, customer_phone, customer_email,
       customer_country, customer_city, customer_address, price_mode,
       subtotal_cents, shipping_fee_cents, total_cents, payment_method, COALESCE(receipt_url, ''), status, created_at
FROM orders
WHERE idempotency_key = $1
`
	return r.fetchOrder(ctx, q, key)
}

func (r *postgresRepo) fetchOrder(ctx context.Context, q string, arg any) (*domain.Order, error) {
	var o domain.Order
	var priceMode, status string
	err := r.pool.QueryRow(ctx, q, arg).Scan(
		&o.ID,
		&o.OrderNumber,
		&o.IdempotencyKey,
		&o.Customer.Name,
		&o.Customer.Phone,
		&o.Customer.Email,
		&o.Customer.Country,
		&o.Customer.City,
		&o.Customer.Address,
		&priceMode,
		&o.SubtotalCents,
		&o.ShippingFeeCents,
		&o.TotalCents,
		&o.Payment.Method,
		&o.Payment.ReceiptURL,
		&status,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	o.PriceMode = domain.PriceMode(priceMode)
	o.Status = domain.OrderStatus(status)

	const itemsQ = `
SELECT product_id, product_name, product_type, variant_id, COALESCE(color, ''),
       COALESCE(size, ''), COALESCE(page_type, ''), quantity, unit_price_cents, price_mode
FROM order_items
WHERE order_id = $1::uuid
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, itemsQ, o.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		var itemType, itemMode string
		if err := rows.Scan(
			&item.ProductID,
			&item.ProductName,
			&itemType,
			&item.VariantID,
			&item.Color,
			&item.Size,
			&item.PageType,
			&item.Quantity,
			&item.UnitPriceCents,
			&itemMode,
		); err != nil {
			return nil, err
		}
		item.ProductType = domain.ProductType(itemType)
		item.PriceMode = domain.PriceMode(itemMode)
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}
