// Package middleware はアプリケーション共通の Gin ミドルウェアを提供します。
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader はリクエストIDの受け渡しに使用するヘッダー名です。
const RequestIDHeader = "X-Request-ID"

// ContextRequestIDKey は、ハンドラー間でリクエストIDを共有するためのキーです。
const ContextRequestIDKey = "request.id"

// RequestID はリクエストごとに一意なIDを割り当てるミドルウェアを返します。
// クライアントが X-Request-ID を送ってきた場合はその値を引き継ぎます。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
