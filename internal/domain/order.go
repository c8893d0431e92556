package domain

import "time"

// OrderStatus is the back-office lifecycle of a placed order. The storefront
// only ever creates orders in StatusPending; every later transition belongs to
// back-office tooling.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusPaid       OrderStatus = "paid"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

var statusGraph = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusPaid, StatusCancelled},
	StatusPaid:       {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped},
	StatusShipped:    {StatusCompleted},
}

// ValidTransition reports whether status may move from one state to the next.
func ValidTransition(from, to OrderStatus) bool {
	for _, next := range statusGraph[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Customer is the contact/address block captured at checkout.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Country string `json:"country"`
	City    string `json:"city"`
	Address string `json:"address"`
}

// OrderItem is the snapshot of one cart line at submission time. Apparel and
// mug items carry Size, stationery items carry PageType.
type OrderItem struct {
	ProductID      string      `json:"productId"`
	ProductName    string      `json:"productName"`
	ProductType    ProductType `json:"productType"`
	VariantID      string      `json:"variantId"`
	Color          string      `json:"color,omitempty"`
	Size           string      `json:"size,omitempty"`
	PageType       string      `json:"pageType,omitempty"`
	Quantity       int         `json:"quantity"`
	UnitPriceCents int64       `json:"unitPriceCents"`
	PriceMode      PriceMode   `json:"priceMode"`
}

// Payment records how the order was paid and the uploaded receipt reference.
type Payment struct {
	Method     string `json:"method"`
	ReceiptURL string `json:"receiptUrl,omitempty"`
}

// Order is the write-once payload persisted at submission. Invariants:
// TotalCents == SubtotalCents + ShippingFeeCents and SubtotalCents is the sum
// of item price times quantity.
type Order struct {
	ID               string      `json:"id"`
	OrderNumber      string      `json:"orderNumber"`
	IdempotencyKey   string      `json:"-"`
	Customer         Customer    `json:"customer"`
	PriceMode        PriceMode   `json:"priceMode"`
	Items            []OrderItem `json:"items"`
	SubtotalCents    int64       `json:"subtotalCents"`
	ShippingFeeCents int64       `json:"shippingFeeCents"`
	TotalCents       int64       `json:"totalCents"`
	Payment          Payment     `json:"payment"`
	Status           OrderStatus `json:"status"`
	CreatedAt        time.Time   `json:"createdAt"`
}
