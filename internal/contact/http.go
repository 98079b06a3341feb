// Package contact は問い合わせメッセージの受付を提供します。
// 保存して確認応答を返すだけで、重複排除も通知も行いません。
package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/saas-landing/internal/records"
	"github.com/yourusername/saas-landing/internal/store"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Handler は POST /api/contact のハンドラーを返します。
// 入力の検証に失敗した場合、ストアへの書き込みは一切行いません。
func Handler(gateway store.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    "INVALID_INPUT",
				"message": err.Error(),
			})
			return
		}

		if gateway == nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    "STORE_UNAVAILABLE",
				"message": "Database not configured",
			})
			return
		}

		msg := records.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		}
		messageID, err := gateway.Insert(c.Request.Context(), records.ContactMessageCollection, msg)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    "INTERNAL_ERROR",
				"message": "Failed to store contact message",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "message_id": messageID})
	}
}
