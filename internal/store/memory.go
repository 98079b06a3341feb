package store

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory はプロセス内メモリ上で動作する Gateway 実装です。
// 外部の MongoDB を用意できないテストやローカル確認で使用します。
type Memory struct {
	mu          sync.Mutex
	name        string
	collections map[string][]bson.M
}

// NewMemory は空のインメモリストアを作成します。
func NewMemory() *Memory {
	return &Memory{
		name:        "memory",
		collections: make(map[string][]bson.M),
	}
}

// FindOne はフィルターに一致する最初のドキュメントを挿入順で返します。
func (m *Memory) FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			return doc, nil
		}
	}
	return nil, ErrNotFound
}

// Insert はドキュメントを挿入し、割り当てた ObjectID の16進表現を返します。
func (m *Memory) Insert(ctx context.Context, collection string, doc any) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var normalized bson.M
	if err := bson.Unmarshal(raw, &normalized); err != nil {
		return "", err
	}

	id := primitive.NewObjectID()
	normalized["_id"] = id

	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], normalized)
	return id.Hex(), nil
}

// FindMany はフィルターに一致するドキュメントを挿入順で最大 limit 件返します。
func (m *Memory) FindMany(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs := []bson.M{}
	for _, doc := range m.collections[collection] {
		if int64(len(docs)) >= limit {
			break
		}
		if matches(doc, filter) {
			// 呼び出し側の変更がストア内部に波及しないようコピーを返す
			copied := bson.M{}
			for k, v := range doc {
				copied[k] = v
			}
			docs = append(docs, copied)
		}
	}
	return docs, nil
}

// ListCollectionNames はコレクション名をソート済みで返します。
func (m *Memory) ListCollectionNames(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Name はデータベース名を返します。
func (m *Memory) Name() string {
	return m.name
}

// Count は指定コレクションのドキュメント数を返します。テストでの検証用です。
func (m *Memory) Count(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.collections[collection])
}

func matches(doc, filter bson.M) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
