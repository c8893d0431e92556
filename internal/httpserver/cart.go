package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"threadpress/internal/cart"
	"threadpress/internal/domain"
	"threadpress/internal/session"
)

const sessionHeader = "X-Session-ID"

const sessionCtxKey = "cartSession"

// sessionMiddleware reads the session ID from the request header, issuing a
// fresh one when absent or malformed. The ID is always echoed back so the
// client can persist it.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(sessionHeader)
		if !session.Valid(id) {
			id = session.NewID()
		}
		c.Set(sessionCtxKey, id)
		c.Header(sessionHeader, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionCtxKey)
}

// loadCart rehydrates the session's cart store for this request. The store is
// request-scoped; redis holds the durable state between requests.
func loadCart(c *gin.Context, persister cart.Persister, logger *log.Logger) *cart.Store {
	return cart.Load(c.Request.Context(), sessionID(c), persister, logger)
}

type cartResponse struct {
	SessionID  string            `json:"sessionId"`
	Lines      []domain.CartLine `json:"lines"`
	TotalCents int64             `json:"totalCents"`
	Count      int               `json:"count"`
}

func renderCart(c *gin.Context, store *cart.Store) {
	c.JSON(http.StatusOK, cartResponse{
		SessionID:  sessionID(c),
		Lines:      store.Lines(),
		TotalCents: store.TotalCents(),
		Count:      store.Count(),
	})
}

func getCartHandler(persister cart.Persister, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderCart(c, loadCart(c, persister, logger))
	}
}

type addItemRequest struct {
	ProductID      string `json:"productId" binding:"required"`
	ProductName    string `json:"productName"`
	ProductType    string `json:"productType" binding:"required"`
	VariantID      string `json:"variantId" binding:"required"`
	Size           string `json:"size"`
	PageType       string `json:"pageType"`
	Color          string `json:"color"`
	ColorCode      string `json:"colorCode"`
	PriceMode      string `json:"priceMode" binding:"required"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Image          string `json:"image"`
}

func addCartItemHandler(persister cart.Persister, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart item payload"})
			return
		}
		store := loadCart(c, persister, logger)
		store.AddItem(c.Request.Context(), cart.AddInput{
			ProductID:      req.ProductID,
			ProductName:    req.ProductName,
			ProductType:    domain.ProductType(req.ProductType),
			VariantID:      req.VariantID,
			Size:           req.Size,
			PageType:       req.PageType,
			Color:          req.Color,
			ColorCode:      req.ColorCode,
			PriceMode:      domain.PriceMode(req.PriceMode),
			UnitPriceCents: req.UnitPriceCents,
			Image:          req.Image,
		})
		renderCart(c, store)
	}
}

type updateItemRequest struct {
	VariantID string `json:"variantId" binding:"required"`
	Size      string `json:"size"`
	ColorCode string `json:"colorCode"`
	Delta     int    `json:"delta" binding:"required"`
}

func updateCartItemHandler(persister cart.Persister, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quantity update payload"})
			return
		}
		store := loadCart(c, persister, logger)
		store.UpdateQuantity(c.Request.Context(), req.VariantID, req.Size, req.ColorCode, req.Delta)
		renderCart(c, store)
	}
}

type removeItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	VariantID string `json:"variantId" binding:"required"`
	Size      string `json:"size"`
	ColorCode string `json:"colorCode"`
	PriceMode string `json:"priceMode" binding:"required"`
}

func removeCartItemHandler(persister cart.Persister, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req removeItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid remove payload"})
			return
		}
		store := loadCart(c, persister, logger)
		store.RemoveItem(c.Request.Context(), req.ProductID, req.VariantID, req.Size, req.ColorCode, domain.PriceMode(req.PriceMode))
		renderCart(c, store)
	}
}

func clearCartHandler(persister cart.Persister, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := loadCart(c, persister, logger)
		store.Clear(c.Request.Context())
		renderCart(c, store)
	}
}
