package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"threadpress/internal/domain"
	contactsvc "threadpress/internal/service/contact"
	newslettersvc "threadpress/internal/service/newsletter"
)

func contactHandler(svc *contactsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in contactsvc.SubmitInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		form, err := svc.Submit(c.Request.Context(), in)
		if err != nil {
			if contactsvc.IsValidationErr(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Printf("contact handler: submit failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit inquiry"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "thanks, we received your inquiry and will get back to you soon",
			"result":  form,
		})
	}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

func subscribeHandler(svc *newslettersvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req subscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		sub, err := svc.Subscribe(c.Request.Context(), req.Email)
		if err != nil {
			switch {
			case errors.Is(err, newslettersvc.ErrInvalidEmail):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, domain.ErrDuplicate):
				c.JSON(http.StatusConflict, gin.H{"error": "email is already subscribed"})
			default:
				logger.Printf("subscribe handler: failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to subscribe"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "subscribed", "result": sub})
	}
}
