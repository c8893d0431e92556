package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"threadpress/internal/cart"
	"threadpress/internal/metrics"
	"threadpress/internal/service/catalog"
	contactsvc "threadpress/internal/service/contact"
	newslettersvc "threadpress/internal/service/newsletter"
	ordersvc "threadpress/internal/service/order"
	"threadpress/internal/shipping"
)

// Deps carries every collaborator the handlers need. All stores are explicit
// instances; nothing here is package-level state.
type Deps struct {
	DB            *pgxpool.Pool
	Redis         *redis.Client
	CatalogSvc    *catalog.Service
	OrderSvc      *ordersvc.Assembler
	ContactSvc    *contactsvc.Service
	NewsletterSvc *newslettersvc.Service
	Debounce      *shipping.Debouncer
	CartPersister cart.Persister
	Metrics       *metrics.Metrics
	PromRegistry  *prometheus.Registry
	CORSOrigins   []string
	UploadDir     string
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(deps.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  deps.CORSOrigins,
			AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", sessionHeader, idempotencyHeader},
			ExposeHeaders: []string{sessionHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.DB, deps.Redis))
	if deps.PromRegistry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.PromRegistry, promhttp.HandlerOpts{})))
	}

	if deps.UploadDir != "" {
		router.Static("/uploads", deps.UploadDir)
	}

	api := router.Group("/api")
	api.GET("/products", listProductsHandler(deps.CatalogSvc))
	api.GET("/products/:id", getProductHandler(deps.CatalogSvc))
	api.GET("/shipping/quote", shippingQuoteHandler(deps.Debounce, deps.Metrics))

	cartGroup := api.Group("/cart", sessionMiddleware())
	cartGroup.GET("", getCartHandler(deps.CartPersister, logger))
	cartGroup.POST("/items", addCartItemHandler(deps.CartPersister, logger))
	cartGroup.PATCH("/items", updateCartItemHandler(deps.CartPersister, logger))
	cartGroup.DELETE("/items", removeCartItemHandler(deps.CartPersister, logger))
	cartGroup.DELETE("", clearCartHandler(deps.CartPersister, logger))

	api.POST("/order", placeOrderHandler(deps.OrderSvc, deps.CartPersister, logger))
	api.POST("/contact", contactHandler(deps.ContactSvc, logger))
	api.POST("/subscribe", subscribeHandler(deps.NewsletterSvc, logger))

	return router, nil
}
