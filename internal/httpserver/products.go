package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"threadpress/internal/domain"
	"threadpress/internal/service/catalog"
)

func listProductsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// getProductHandler looks the product up by ID first, then by slug, so both
// /api/products/<uuid> and /api/products/classic-tee resolve.
func getProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		product, err := svc.Get(c.Request.Context(), id)
		if errors.Is(err, domain.ErrNotFound) {
			product, err = svc.GetBySlug(c.Request.Context(), id)
		}
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
