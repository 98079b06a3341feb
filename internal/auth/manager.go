package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yourusername/saas-landing/internal/records"
	"github.com/yourusername/saas-landing/internal/store"
)

// Manager はサインアップ/ログイン処理をまとめた構造体です。
// gateway が nil の場合は「ストア未構成」として扱います。
type Manager struct {
	gateway store.Gateway
	salt    string
}

// NewManager は認証マネージャーを作成します。salt は起動時に設定から一度だけ渡します。
func NewManager(gateway store.Gateway, salt string) *Manager {
	return &Manager{
		gateway: gateway,
		salt:    salt,
	}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup は POST /api/auth/signup のハンドラーです。
func (m *Manager) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "INVALID_INPUT",
			"message": err.Error(),
		})
		return
	}

	if m.gateway == nil {
		respondStoreUnavailable(c)
		return
	}

	ctx := c.Request.Context()
	_, err := m.gateway.FindOne(ctx, records.UserCollection, bson.M{"email": req.Email})
	switch {
	case err == nil:
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "EMAIL_ALREADY_REGISTERED",
			"message": "Email already registered",
		})
		return
	case !errors.Is(err, store.ErrNotFound):
		respondInternalError(c)
		return
	}

	user := records.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: HashPassword(req.Password, m.salt),
	}
	userID, err := m.gateway.Insert(ctx, records.UserCollection, user)
	if err != nil {
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "user_id": userID})
}

// Login は POST /api/auth/login のハンドラーです。
// メールアドレスが未登録の場合もパスワード不一致の場合も、同一のエラーを返します。
func (m *Manager) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "INVALID_INPUT",
			"message": err.Error(),
		})
		return
	}

	if m.gateway == nil {
		respondStoreUnavailable(c)
		return
	}

	doc, err := m.gateway.FindOne(c.Request.Context(), records.UserCollection, bson.M{"email": req.Email})
	if errors.Is(err, store.ErrNotFound) {
		respondInvalidCredentials(c)
		return
	}
	if err != nil {
		respondInternalError(c)
		return
	}

	storedHash, _ := doc["password_hash"].(string)
	if storedHash != HashPassword(req.Password, m.salt) {
		respondInvalidCredentials(c)
		return
	}

	token := SessionToken(idHex(doc["_id"]), m.salt)
	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"name":  doc["name"],
		"email": doc["email"],
	})
}

func respondInvalidCredentials(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"code":    "INVALID_CREDENTIALS",
		"message": "Invalid credentials",
	})
}

func respondStoreUnavailable(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"code":    "STORE_UNAVAILABLE",
		"message": "Database not configured",
	})
}

func respondInternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"code":    "INTERNAL_ERROR",
		"message": "Internal server error",
	})
}

// idHex はストアが割り当てた不透明IDを16進文字列に揃えます。
func idHex(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}
