package domain

// CartLine is one distinct purchasable configuration and its quantity. The
// identity key is (ProductID, VariantID, Size, ColorCode, PriceMode, PageType);
// the cart store never holds two lines with the same key.
type CartLine struct {
	ProductID      string      `json:"productId"`
	ProductName    string      `json:"productName"`
	ProductType    ProductType `json:"productType"`
	VariantID      string      `json:"variantId"`
	Size           string      `json:"size,omitempty"`
	PageType       string      `json:"pageType,omitempty"`
	Color          string      `json:"color,omitempty"`
	ColorCode      string      `json:"colorCode"`
	PriceMode      PriceMode   `json:"priceMode"`
	Quantity       int         `json:"quantity"`
	UnitPriceCents int64       `json:"unitPriceCents"`
	Image          string      `json:"image,omitempty"`
}

// SameIdentity reports whether two lines share the full identity key.
func (l CartLine) SameIdentity(o CartLine) bool {
	return l.ProductID == o.ProductID &&
		l.VariantID == o.VariantID &&
		l.Size == o.Size &&
		l.ColorCode == o.ColorCode &&
		l.PriceMode == o.PriceMode &&
		l.PageType == o.PageType
}

// TotalCents is the line subtotal.
func (l CartLine) TotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}
