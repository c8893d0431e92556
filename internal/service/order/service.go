// Package order assembles a submitted checkout into a persisted order: it
// validates input, snapshots cart lines, generates the order number, stores
// the payment receipt, and fires the confirmation email.
package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"threadpress/internal/domain"
	"threadpress/internal/metrics"
	orderrepo "threadpress/internal/repository/order"
)

// ValidationError marks input the user can fix; the HTTP layer renders its
// message verbatim with a 400.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErr(msg string) error { return &ValidationError{msg: msg} }

// Uploader stores a payment receipt and returns its public reference.
type Uploader interface {
	SaveReceipt(ctx context.Context, filename string, content io.Reader) (string, error)
}

// Sender delivers the order confirmation. Failures never fail the order.
type Sender interface {
	SendOrderConfirmation(ctx context.Context, order domain.Order) error
}

type repo interface {
	Create(ctx context.Context, in domain.Order) (*domain.Order, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Order, error)
}

type Assembler struct {
	repo        repo
	uploader    Uploader
	sender      Sender
	logger      *log.Logger
	metrics     *metrics.Metrics
	brandPrefix string
	now         func() time.Time
}

func New(r orderrepo.Repository, uploader Uploader, sender Sender, m *metrics.Metrics, brandPrefix string, logger *log.Logger) *Assembler {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if brandPrefix == "" {
		brandPrefix = "TP"
	}
	return &Assembler{
		repo:        r,
		uploader:    uploader,
		sender:      sender,
		logger:      logger,
		metrics:     m,
		brandPrefix: brandPrefix,
		now:         time.Now,
	}
}

// Receipt is the uploaded payment proof attached to a submission.
type Receipt struct {
	Filename string
	Content  io.Reader
}

type SubmitInput struct {
	Lines            []domain.CartLine
	Customer         domain.Customer
	PriceMode        domain.PriceMode
	ShippingFeeCents int64
	PaymentMethod    string
	Receipt          *Receipt
	// IdempotencyKey is a client-generated token; resubmitting the same key
	// returns the already-created order instead of a duplicate.
	IdempotencyKey string
	// OrderNumber overrides generation when the caller supplies one.
	OrderNumber string
}

type Result struct {
	OrderID     string
	OrderNumber string
	// AlreadyPlaced is set when the idempotency key matched an existing order.
	AlreadyPlaced bool
}

// Submit validates the checkout and persists the order. Validation failures
// return before any collaborator is touched. The confirmation email is
// best-effort: the order is durable by the time it is sent, so a send failure
// is logged and the submission still succeeds.
func (a *Assembler) Submit(ctx context.Context, in SubmitInput) (*Result, error) {
	if err := validate(in); err != nil {
		a.metrics.IncOrderRejected()
		return nil, err
	}

	if in.IdempotencyKey != "" {
		existing, err := a.repo.GetByIdempotencyKey(ctx, in.IdempotencyKey)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("idempotency lookup: %w", err)
		}
		if existing != nil {
			a.logger.Printf("order: idempotency key %s matched order %s, skipping create", in.IdempotencyKey, existing.OrderNumber)
			return &Result{OrderID: existing.ID, OrderNumber: existing.OrderNumber, AlreadyPlaced: true}, nil
		}
	}

	receiptURL, err := a.uploader.SaveReceipt(ctx, in.Receipt.Filename, in.Receipt.Content)
	if err != nil {
		return nil, fmt.Errorf("upload receipt: %w", err)
	}

	order := a.buildOrder(in, receiptURL)
	created, err := a.repo.Create(ctx, order)
	if errors.Is(err, domain.ErrDuplicate) && in.OrderNumber == "" {
		// Order-number collision; regenerate once. A duplicate idempotency
		// key also lands here and is resolved by the lookup.
		if in.IdempotencyKey != "" {
			if existing, lookupErr := a.repo.GetByIdempotencyKey(ctx, in.IdempotencyKey); lookupErr == nil {
				return &Result{OrderID: existing.ID, OrderNumber: existing.OrderNumber, AlreadyPlaced: true}, nil
			}
		}
		order.OrderNumber = a.newOrderNumber()
		created, err = a.repo.Create(ctx, order)
	}
	if err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}
	a.metrics.IncOrderCreated()

	if a.sender != nil {
		if err := a.sender.SendOrderConfirmation(ctx, *created); err != nil {
			a.metrics.IncEmailFailed()
			a.logger.Printf("order: confirmation email for %s failed: %v", created.OrderNumber, err)
		} else {
			a.metrics.IncEmailSent()
		}
	}

	return &Result{OrderID: created.ID, OrderNumber: created.OrderNumber}, nil
}

func validate(in SubmitInput) error {
	if len(in.Lines) == 0 {
		return validationErr("cart is empty")
	}
	required := []struct {
		value, msg string
	}{
		{in.Customer.Name, "name is required"},
		{in.Customer.Phone, "phone number is required"},
		{in.Customer.Email, "email is required"},
		{in.Customer.Country, "country is required"},
		{in.Customer.City, "city is required"},
		{in.Customer.Address, "address is required"},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return validationErr(f.msg)
		}
	}
	if in.Receipt == nil || in.Receipt.Content == nil {
		return validationErr("payment receipt is required")
	}
	return nil
}

func (a *Assembler) buildOrder(in SubmitInput, receiptURL string) domain.Order {
	items := make([]domain.OrderItem, 0, len(in.Lines))
	var subtotal int64
	for _, line := range in.Lines {
		item := domain.OrderItem{
			ProductID:      line.ProductID,
			ProductName:    line.ProductName,
			ProductType:    line.ProductType,
			VariantID:      line.VariantID,
			Color:          line.Color,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
			PriceMode:      line.PriceMode,
		}
		// Stationery is styled by page type; everything else is sized.
		if line.ProductType == domain.ProductStationery {
			item.PageType = line.PageType
		} else {
			item.Size = line.Size
		}
		items = append(items, item)
		subtotal += line.TotalCents()
	}

	number := in.OrderNumber
	if number == "" {
		number = a.newOrderNumber()
	}
	method := in.PaymentMethod
	if method == "" {
		method = "bank-transfer"
	}

	return domain.Order{
		OrderNumber:      number,
		IdempotencyKey:   in.IdempotencyKey,
		Customer:         in.Customer,
		PriceMode:        in.PriceMode,
		Items:            items,
		SubtotalCents:    subtotal,
		ShippingFeeCents: in.ShippingFeeCents,
		TotalCents:       subtotal + in.ShippingFeeCents,
		Payment:          domain.Payment{Method: method, ReceiptURL: receiptURL},
		Status:           domain.StatusPending,
	}
}

// newOrderNumber builds a human-readable token: brand prefix, base36 timestamp,
// and a short random suffix. The unique index on order_number backstops the
// small collision window.
func (a *Assembler) newOrderNumber() string {
	ts := strings.ToUpper(strconv.FormatInt(a.now().UnixMilli(), 36))
	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:4]
	return fmt.Sprintf("%s-%s-%s", a.brandPrefix, ts, random)
}
