// Package mail renders and sends the order confirmation email.
package mail

import (
	"context"
	"fmt"
	"strings"

	gomail "github.com/wneessen/go-mail"

	"threadpress/internal/domain"
)

// SMTPSender delivers transactional mail through a plain SMTP relay.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{host: host, port: port, username: username, password: password, from: from}
}

func (s *SMTPSender) SendOrderConfirmation(ctx context.Context, order domain.Order) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(order.Customer.Email); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	msg.Subject(fmt.Sprintf("Order %s confirmed", order.OrderNumber))
	msg.SetBodyString(gomail.TypeTextPlain, Render(order))

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// Render produces the plain-text order summary used as the email body.
func Render(order domain.Order) string {
	currency := "USD"
	if order.PriceMode == domain.PriceModePK {
		currency = "PKR"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Thank you for your order, %s!\n\n", order.Customer.Name)
	fmt.Fprintf(&b, "Order number: %s\n\n", order.OrderNumber)
	b.WriteString("Items:\n")
	for _, item := range order.Items {
		detail := item.Size
		if item.ProductType == domain.ProductStationery {
			detail = item.PageType
		}
		if detail != "" {
			detail = " (" + detail + ")"
		}
		fmt.Fprintf(&b, "  %dx %s%s - %s\n", item.Quantity, item.ProductName, detail,
			formatCents(item.UnitPriceCents*int64(item.Quantity), currency))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", formatCents(order.SubtotalCents, currency))
	fmt.Fprintf(&b, "Shipping: %s\n", formatCents(order.ShippingFeeCents, currency))
	fmt.Fprintf(&b, "Total:    %s\n\n", formatCents(order.TotalCents, currency))
	fmt.Fprintf(&b, "We will confirm your payment and start printing shortly.\n")
	fmt.Fprintf(&b, "Shipping to: %s, %s, %s\n", order.Customer.Address, order.Customer.City, order.Customer.Country)
	return b.String()
}

func formatCents(cents int64, currency string) string {
	return fmt.Sprintf("%s %d.%02d", currency, cents/100, cents%100)
}
