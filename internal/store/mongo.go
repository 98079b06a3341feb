package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo は MongoDB をバックエンドとする Gateway 実装です。
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect は MongoDB に接続し、疎通確認まで行った Gateway を返します。
func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Mongo{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Close は接続を解放します。プロセス終了時に一度だけ呼びます。
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// FindOne はフィルターに一致する最初のドキュメントを返します。
func (m *Mongo) FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	var doc bson.M
	err := m.db.Collection(collection).FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Insert はドキュメントを1件挿入し、割り当てられた ObjectID の16進表現を返します。
func (m *Mongo) Insert(ctx context.Context, collection string, doc any) (string, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// FindMany はフィルターに一致するドキュメントを自然順で最大 limit 件返します。
func (m *Mongo) FindMany(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	cursor, err := m.db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// ListCollectionNames はデータベース内のコレクション名を返します。
func (m *Mongo) ListCollectionNames(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.M{})
}

// Name はデータベース名を返します。
func (m *Mongo) Name() string {
	return m.db.Name()
}
