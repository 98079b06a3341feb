// Package store はドキュメントストアへのゲートウェイを提供します。
// ハンドラーはコレクション名とフィルターだけを意識し、接続の実体は Gateway の実装に閉じ込めます。
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound はフィルターに一致するドキュメントが存在しない場合に返されます。
var ErrNotFound = errors.New("store: document not found")

// Gateway はドキュメントストアに対する最小限の操作を定義します。
type Gateway interface {
	// FindOne はフィルターに一致する最初のドキュメントを返します。
	// 一致するものがない場合は ErrNotFound を返します。
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error)

	// Insert はドキュメントを1件挿入し、ストアが割り当てた不透明IDを返します。
	Insert(ctx context.Context, collection string, doc any) (string, error)

	// FindMany はフィルターに一致するドキュメントを保存順で最大 limit 件返します。
	FindMany(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)

	// ListCollectionNames はデータベース内のコレクション名を返します。
	ListCollectionNames(ctx context.Context) ([]string, error)

	// Name はデータベース名を返します。
	Name() string
}
