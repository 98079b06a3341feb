// Package blog は公開ブログ記事の一覧取得を提供します。
// 記事の作成はこのシステムの範囲外で、ストアからの読み取りのみを行います。
package blog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/yourusername/saas-landing/internal/records"
	"github.com/yourusername/saas-landing/internal/store"
)

type listQuery struct {
	Limit int64 `form:"limit,default=10"`
}

// ListHandler は GET /api/blog のハンドラーを返します。
// ストアの自然順で最大 limit 件を返し、各ドキュメントは不透明IDを取り除いたうえで
// BlogPost の形に厳密にデコードします。1件でも形が崩れていれば一覧全体を失敗させます。
func ListHandler(gateway store.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q listQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    "INVALID_INPUT",
				"message": "limit must be an integer",
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

		docs, err := gateway.FindMany(c.Request.Context(), records.BlogPostCollection, bson.M{}, q.Limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    "INTERNAL_ERROR",
				"message": "Failed to read blog posts",
			})
			return
		}

		posts := make([]records.BlogPost, 0, len(docs))
		for _, doc := range docs {
			post, err := records.DecodeBlogPost(doc)
			if err != nil {
				respondDecodeError(c, err)
				return
			}
			posts = append(posts, *post)
		}

		c.JSON(http.StatusOK, posts)
	}
}

func respondDecodeError(c *gin.Context, err error) {
	if errors.Is(err, records.ErrMalformedRecord) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "MALFORMED_RECORD",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"code":    "INTERNAL_ERROR",
		"message": "Failed to read blog posts",
	})
}
