package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"docqa/src/core/docqa"
)

const serviceVersion = "1.0.0"

type Handler struct {
	qaService    docqa.Service
	authToken    string
	maxQuestions int
}

func NewHandler(qaService docqa.Service, authToken string, maxQuestions int) *Handler {
	return &Handler{
		qaService:    qaService,
		authToken:    authToken,
		maxQuestions: maxQuestions,
	}
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/hackrx/run", h.bearerAuth(), h.Run)

	// System routes, not part of the core
	r.GET("/health", h.CheckHealth)
	r.GET("/status", h.Status)
	r.GET("/", h.Status)
}

// bearerAuth rejects requests without the configured bearer token.
func (h *Handler) bearerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(h.authToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			return
		}
		c.Next()
	}
}
