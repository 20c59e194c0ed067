package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"docqa/src/core/docqa"
	"docqa/src/infrastructure/log"
)

// RunRequest is the document question-answering request body.
type RunRequest struct {
	Documents string   `json:"documents" binding:"required"`
	Questions []string `json:"questions" binding:"required"`
}

// RunResponse carries one answer per question, in input order.
type RunResponse struct {
	Answers []string `json:"answers"`
}

func (h *Handler) Run(c *gin.Context) {
	var req RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: documents URL and questions are required"})
		return
	}

	if len(req.Questions) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one question is required"})
		return
	}
	if len(req.Questions) > h.maxQuestions {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Maximum %d questions allowed", h.maxQuestions)})
		return
	}
	for i, q := range req.Questions {
		if strings.TrimSpace(q) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Question %d cannot be empty", i+1)})
			return
		}
	}

	requestID := uuid.New().String()
	logger := log.WithValues("request_id", requestID)
	logger.Info("received QA request", "url", req.Documents, "questions", len(req.Questions))

	start := time.Now()
	answers, err := h.qaService.Answer(c.Request.Context(), req.Documents, req.Questions)
	if err != nil {
		var fetchErr *docqa.FetchError
		var extractErr *docqa.ExtractionError
		if errors.As(err, &fetchErr) || errors.As(err, &extractErr) {
			logger.Error(err, "document rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error(err, "QA request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error occurred while processing the request"})
		return
	}

	logger.Info("QA request completed", "answers", len(answers), "elapsed", time.Since(start).String())
	c.JSON(http.StatusOK, RunResponse{Answers: answers})
}
