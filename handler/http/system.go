package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CheckHealth(c *gin.Context) {
	status := h.qaService.CheckHealth(c.Request.Context())

	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}

func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "running",
		"service": "Document QA API",
		"version": serviceVersion,
	})
}
