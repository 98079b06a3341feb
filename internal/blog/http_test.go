package blog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/yourusername/saas-landing/internal/records"
	"github.com/yourusername/saas-landing/internal/store"
)

func newBlogRouter(gateway store.Gateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/blog", ListHandler(gateway))
	return router
}

func seedPosts(t *testing.T, memory *store.Memory, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		post := records.BlogPost{
			Title:     fmt.Sprintf("Post %d", i),
			Slug:      fmt.Sprintf("post-%d", i),
			Excerpt:   "excerpt",
			Content:   "content",
			Author:    "Ana",
			Published: true,
		}
		if _, err := memory.Insert(context.Background(), records.BlogPostCollection, post); err != nil {
			t.Fatalf("failed to seed post: %v", err)
		}
	}
}

func getBlog(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListRespectsLimit(t *testing.T) {
	memory := store.NewMemory()
	seedPosts(t, memory, 10)
	router := newBlogRouter(memory)

	rec := getBlog(t, router, "/api/blog?limit=3")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body: %s", rec.Code, rec.Body.String())
	}

	var posts []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &posts); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	for i, post := range posts {
		if _, ok := post["_id"]; ok {
			t.Fatalf("post %d still carries an identifier: %v", i, post)
		}
		for _, field := range []string{"title", "slug", "excerpt", "content", "author", "published"} {
			if _, ok := post[field]; !ok {
				t.Fatalf("post %d is missing field %q: %v", i, field, post)
			}
		}
	}
	// 保存順が保たれていること
	if posts[0]["title"] != "Post 0" || posts[2]["title"] != "Post 2" {
		t.Fatalf("posts are out of order: %v", posts)
	}
}

func TestListDefaultLimit(t *testing.T) {
	memory := store.NewMemory()
	seedPosts(t, memory, 12)
	router := newBlogRouter(memory)

	rec := getBlog(t, router, "/api/blog")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	var posts []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &posts); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(posts) != 10 {
		t.Fatalf("expected default limit of 10, got %d", len(posts))
	}
}

func TestListEmptyStore(t *testing.T) {
	router := newBlogRouter(store.NewMemory())

	rec := getBlog(t, router, "/api/blog")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if rec.Body.String() != "[]" {
		t.Fatalf("expected empty JSON array, got %q", rec.Body.String())
	}
}

func TestListInvalidLimit(t *testing.T) {
	router := newBlogRouter(store.NewMemory())

	rec := getBlog(t, router, "/api/blog?limit=abc")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListMalformedRecordFailsWholeRequest(t *testing.T) {
	memory := store.NewMemory()
	seedPosts(t, memory, 2)
	// title を欠いたドキュメントを混入させる
	if _, err := memory.Insert(context.Background(), records.BlogPostCollection, bson.M{
		"slug": "broken", "excerpt": "e", "content": "c", "author": "a",
	}); err != nil {
		t.Fatalf("failed to seed malformed doc: %v", err)
	}

	router := newBlogRouter(memory)
	rec := getBlog(t, router, "/api/blog")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d body: %s", rec.Code, rec.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["code"] != "MALFORMED_RECORD" {
		t.Fatalf("unexpected error code: %v", body["code"])
	}
}

func TestListWithoutStore(t *testing.T) {
	router := newBlogRouter(nil)

	rec := getBlog(t, router, "/api/blog")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
