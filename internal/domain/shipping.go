package domain

// ShippingRule is the per-country rate configuration held in the store.
// Country matching is case-insensitive. FreeShippingMinOrder of zero means no
// free-shipping threshold is configured.
type ShippingRule struct {
	ID                   string `json:"id"`
	Country              string `json:"country"`
	FeeCents             int64  `json:"feeCents"`
	FreeShippingMinOrder int    `json:"freeShippingMinOrder"`
	Note                 string `json:"note,omitempty"`
}

// ShippingQuote is a transient projection, recomputed whenever the destination
// country or the aggregate cart quantity changes. It is never persisted.
type ShippingQuote struct {
	FeeCents              int64  `json:"feeCents"`
	Note                  string `json:"note"`
	FreeShippingThreshold int    `json:"freeShippingThreshold"`
}
