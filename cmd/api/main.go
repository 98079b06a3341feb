// Package main はAPIサーバーのエントリーポイントです。
package main

import (
	"context"
	"log"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/saas-landing/internal/auth"
	"github.com/yourusername/saas-landing/internal/blog"
	"github.com/yourusername/saas-landing/internal/config"
	"github.com/yourusername/saas-landing/internal/contact"
	"github.com/yourusername/saas-landing/internal/health"
	"github.com/yourusername/saas-landing/internal/middleware"
	"github.com/yourusername/saas-landing/internal/store"
)

func main() {
	// 設定の読み込み
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ginのモードを設定
	gin.SetMode(cfg.GinMode)

	// ストア接続の取得。接続はプロセス全体で共有し、終了時に一度だけ解放します。
	// DATABASE_URL 未設定や接続失敗の場合もサーバーは起動し、各ハンドラーが「未構成」として応答します。
	var gateway store.Gateway
	if cfg.DatabaseURL != "" {
		mongoStore, err := store.Connect(context.Background(), cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			log.Printf("Store connection failed, continuing without a store: %v", err)
		} else {
			gateway = mongoStore
			defer func() {
				if err := mongoStore.Close(context.Background()); err != nil {
					log.Printf("Failed to close store connection: %v", err)
				}
			}()
		}
	} else {
		log.Printf("DATABASE_URL is not set, continuing without a store")
	}

	// Ginルーターの初期化（デフォルトミドルウェア: Logger, Recovery）
	router := gin.Default()
	router.Use(middleware.RequestID())

	// CORSミドルウェアの設定
	corsConfig := cors.DefaultConfig()
	if cfg.CORSAllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORSAllowedOrigins, ",")
		corsConfig.AllowCredentials = true
	}
	router.Use(cors.New(corsConfig))

	// ルーティングの設定
	setupRoutes(router, cfg, gateway)

	// サーバーの起動
	addr := ":" + cfg.Port
	log.Printf("Starting API server on %s (mode: %s)", addr, cfg.GinMode)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRoutes は公開エンドポイントの配線を行います。
func setupRoutes(router *gin.Engine, cfg *config.Config, gateway store.Gateway) {
	router.GET("/", health.RootHandler)
	router.GET("/test", health.DiagnosticHandler(gateway, cfg.DatabaseURL != ""))

	authManager := auth.NewManager(gateway, cfg.AuthSalt)

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/signup", authManager.Signup)
			authRoutes.POST("/login", authManager.Login)
		}

		api.GET("/blog", blog.ListHandler(gateway))
		api.POST("/contact", contact.Handler(gateway))
	}
}
