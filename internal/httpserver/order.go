package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"threadpress/internal/cart"
	"threadpress/internal/domain"
	"threadpress/internal/session"
	ordersvc "threadpress/internal/service/order"
)

const idempotencyHeader = "Idempotency-Key"

type orderRequest struct {
	Customer         domain.Customer   `json:"customer"`
	PriceMode        string            `json:"priceMode"`
	Items            []domain.CartLine `json:"items"`
	ShippingFeeCents int64             `json:"shippingFeeCents"`
	PaymentMethod    string            `json:"paymentMethod"`
	OrderNumber      string            `json:"orderNumber"`
	IdempotencyKey   string            `json:"idempotencyKey"`
}

// placeOrderHandler serves POST /api/order. The body must be multipart with an
// `order` JSON field and a `receipt` file. Items may come inline or, when the
// request carries a cart session, from the session cart; the session cart is
// cleared once the order is durably placed.
func placeOrderHandler(assembler *ordersvc.Assembler, persister cart.Persister, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form-data required"})
			return
		}

		var req orderRequest
		rawOrder := c.PostForm("order")
		if rawOrder == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order field is required"})
			return
		}
		if err := json.Unmarshal([]byte(rawOrder), &req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order field is not valid JSON"})
			return
		}

		sid := c.GetHeader(sessionHeader)
		lines := req.Items
		if len(lines) == 0 && session.Valid(sid) {
			lines = cart.Load(c.Request.Context(), sid, persister, logger).Lines()
		}

		var receipt *ordersvc.Receipt
		if fileHeader, err := c.FormFile("receipt"); err == nil {
			file, openErr := fileHeader.Open()
			if openErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read receipt"})
				return
			}
			defer file.Close()
			receipt = &ordersvc.Receipt{Filename: fileHeader.Filename, Content: file}
		}

		key := c.GetHeader(idempotencyHeader)
		if key == "" {
			key = req.IdempotencyKey
		}

		result, err := assembler.Submit(c.Request.Context(), ordersvc.SubmitInput{
			Lines:            lines,
			Customer:         req.Customer,
			PriceMode:        domain.PriceMode(req.PriceMode),
			ShippingFeeCents: req.ShippingFeeCents,
			PaymentMethod:    req.PaymentMethod,
			Receipt:          receipt,
			IdempotencyKey:   key,
			OrderNumber:      req.OrderNumber,
		})
		if err != nil {
			var vErr *ordersvc.ValidationError
			if errors.As(err, &vErr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
				return
			}
			logger.Printf("order handler: submit failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
			return
		}

		if session.Valid(sid) && !result.AlreadyPlaced {
			cart.Load(c.Request.Context(), sid, persister, logger).Clear(c.Request.Context())
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":     true,
			"orderId":     result.OrderID,
			"orderNumber": result.OrderNumber,
		})
	}
}
