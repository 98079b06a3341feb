// Package health は死活確認とストア診断のエンドポイントを提供します。
package health

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/saas-landing/internal/store"
)

// RootHandler は GET / のハンドラーです。依存を持たず、常に成功します。
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "SaaS Landing Backend Running"})
}

// DiagnosticHandler は GET /test のハンドラーを返します。
// ストアの接続状態をベストエフォートで調べ、内部で何が失敗しても
// その内容をステータス文字列として応答に含めます。このエンドポイント自体は決して失敗しません。
func DiagnosticHandler(gateway store.Gateway, databaseURLSet bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"backend":           "✅ Running",
			"database":          "❌ Not Available",
			"database_url":      nil,
			"database_name":     nil,
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		if gateway == nil {
			c.JSON(http.StatusOK, response)
			return
		}

		response["database"] = "✅ Available"
		if databaseURLSet {
			response["database_url"] = "✅ Set"
		} else {
			response["database_url"] = "❌ Not Set"
		}
		response["database_name"] = gateway.Name()
		response["connection_status"] = "Connected"

		names, err := gateway.ListCollectionNames(c.Request.Context())
		if err != nil {
			response["database"] = fmt.Sprintf("⚠️  Connected but Error: %s", truncate(err.Error(), 80))
			c.JSON(http.StatusOK, response)
			return
		}

		if len(names) > 10 {
			names = names[:10]
		}
		response["collections"] = names
		response["database"] = "✅ Connected & Working"

		c.JSON(http.StatusOK, response)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
