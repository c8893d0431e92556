// Package metrics exposes the storefront's prometheus counters. A nil
// *Metrics is a valid no-op receiver so tests and tools can skip registration.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ordersCreated  prometheus.Counter
	ordersRejected prometheus.Counter
	emailsSent     prometheus.Counter
	emailsFailed   prometheus.Counter
	shippingQuotes prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ordersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_orders_created_total",
			Help: "Orders persisted with status pending.",
		}),
		ordersRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_order_rejections_total",
			Help: "Order submissions rejected by validation.",
		}),
		emailsSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_confirmation_emails_sent_total",
			Help: "Order confirmation emails delivered.",
		}),
		emailsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_confirmation_emails_failed_total",
			Help: "Order confirmation emails that failed to send.",
		}),
		shippingQuotes: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_shipping_quotes_total",
			Help: "Shipping quotes served.",
		}),
	}
}

func (m *Metrics) IncOrderCreated() {
	if m != nil {
		m.ordersCreated.Inc()
	}
}

func (m *Metrics) IncOrderRejected() {
	if m != nil {
		m.ordersRejected.Inc()
	}
}

func (m *Metrics) IncEmailSent() {
	if m != nil {
		m.emailsSent.Inc()
	}
}

func (m *Metrics) IncEmailFailed() {
	if m != nil {
		m.emailsFailed.Inc()
	}
}

func (m *Metrics) IncShippingQuote() {
	if m != nil {
		m.shippingQuotes.Inc()
	}
}
