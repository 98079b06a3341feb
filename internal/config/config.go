// Package config は環境変数から設定を読み込み、アプリケーション全体で使用する設定を提供します。
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config はアプリケーションの設定を保持する構造体です。
type Config struct {
	// サーバー設定
	Port    string // APIサーバーのポート番号
	GinMode string // Ginの実行モード (debug, release, test)

	// データベース設定
	DatabaseURL  string // MongoDB接続文字列（未設定の場合、ストアは「未構成」として動作する）
	DatabaseName string // 使用するデータベース名

	// 認証設定
	AuthSalt string // パスワードハッシュに混ぜる共有シークレット

	// CORS設定
	CORSAllowedOrigins string // CORS許可オリジン（カンマ区切り、"*" で全許可）
}

// DefaultAuthSalt は AUTH_SALT 未設定時のフォールバック値です。
const DefaultAuthSalt = "flames_salt"

// Load は環境変数から設定を読み込みます。
// .env.local ファイルが存在する場合はそこから読み込みます。
func Load() (*Config, error) {
	loadEnvFile()

	config := &Config{
		// サーバー設定
		Port:    getEnv("PORT", "8000"),
		GinMode: getEnv("GIN_MODE", "debug"),

		// データベース設定
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		DatabaseName: getEnv("DATABASE_NAME", "saas_landing"),

		// 認証設定
		AuthSalt: getEnv("AUTH_SALT", DefaultAuthSalt),

		// CORS設定
		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func loadEnvFile() {
	if err := godotenv.Load(".env.local"); err == nil {
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	parent := filepath.Dir(cwd)
	if parent == "" || parent == cwd {
		return
	}

	_ = godotenv.Load(filepath.Join(parent, ".env.local"))
}

// Validate は設定の妥当性を検証します。
// ローカル開発ではデータベースなしでも起動できるようにし、本番環境のみ厳格にチェックします。
func (c *Config) Validate() error {
	if c.GinMode == "release" {
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required in release mode")
		}
		if c.AuthSalt == DefaultAuthSalt {
			return fmt.Errorf("AUTH_SALT must be set to a non-default value in release mode")
		}
	}
	return nil
}

// getEnv は環境変数を取得し、存在しない場合はデフォルト値を返します。
func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
