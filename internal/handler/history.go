package handler

import (
	"net/http"
	"strconv"

	"RapidCapture_SecurityTrainer/internal/drill"
	"RapidCapture_SecurityTrainer/internal/storage"

	"github.com/gin-gonic/gin"
)

// Attempt history response (wrapper)
type HistoryResponse struct {
	History []drill.Attempt `json:"history"`
}

// GetAttemptHistory godoc
// @Summary      Attempt history
// @Description  Returns the user's past answered scenarios, newest first.
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Max rows to return (default 50)"
// @Success      200 {object} handler.HistoryResponse "history: [attempt array]"
// @Failure      401 {object} handler.ErrorResponse "Auth failure"
// @Failure      500 {object} handler.ErrorResponse "Database error"
// @Router       /api/history [get]
func GetAttemptHistory(c *gin.Context) {
	username := c.GetString("username")

	limit, _ := strconv.Atoi(c.Query("limit"))
	attempts, err := storage.ListAttemptsByUser(username, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attempts"})
		return
	}
	c.JSON(http.StatusOK, HistoryResponse{History: attempts})
}
