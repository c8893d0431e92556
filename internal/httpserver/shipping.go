package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"threadpress/internal/metrics"
	"threadpress/internal/shipping"
)

// shippingQuoteHandler serves GET /api/shipping/quote?country=&quantity=.
// Requests route through the debouncer keyed by cart session (falling back to
// client IP), so keystroke-frequency country edits collapse into one rule
// lookup; every request in the window gets the quote for the final input.
func shippingQuoteHandler(debouncer *shipping.Debouncer, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		country := strings.TrimSpace(c.Query("country"))
		if country == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "country is required"})
			return
		}
		quantity, err := strconv.Atoi(c.DefaultQuery("quantity", "0"))
		if err != nil || quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be a non-negative integer"})
			return
		}

		key := c.GetHeader(sessionHeader)
		if key == "" {
			key = c.ClientIP()
		}

		quote, err := debouncer.Request(c.Request.Context(), key, country, quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute shipping quote"})
			return
		}
		m.IncShippingQuote()
		c.JSON(http.StatusOK, quote)
	}
}
