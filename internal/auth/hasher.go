// Package auth はパスワードのハッシュ化とサインアップ/ログイン処理を提供します。
package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword はパスワードと共有シークレットから決定的なダイジェストを導出します。
// 保存時と照合時で同一の計算を行います。レコードごとのランダムソルトは持ちません。
func HashPassword(password, secret string) string {
	sum := sha256.Sum256([]byte(secret + ":" + password))
	return hex.EncodeToString(sum[:])
}

// SessionToken はユーザーIDとシークレットからログイン応答用のトークンを導出します。
// 有効期限も署名も持たない不透明なベアラー値で、このシステム自身は後続リクエストで検証しません。
func SessionToken(userID, secret string) string {
	sum := sha256.Sum256([]byte(userID + secret))
	return hex.EncodeToString(sum[:])
}
