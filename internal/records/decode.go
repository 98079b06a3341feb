package records

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrMalformedRecord は保存済みドキュメントがレコードの形に一致しない場合に返されます。
var ErrMalformedRecord = errors.New("records: stored document does not match collection schema")

// DecodeBlogPost はストアから読み出したドキュメントを BlogPost に変換します。
// 不透明ID（_id）は取り除き、必須フィールドの欠落や型不一致は ErrMalformedRecord として報告します。
// published が未設定の場合は true とみなします。
func DecodeBlogPost(doc bson.M) (*BlogPost, error) {
	delete(doc, "_id")

	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	var fields struct {
		Title      *string `bson:"title"`
		Slug       *string `bson:"slug"`
		Excerpt    *string `bson:"excerpt"`
		Content    *string `bson:"content"`
		Author     *string `bson:"author"`
		CoverImage *string `bson:"cover_image"`
		Published  *bool   `bson:"published"`
	}
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	required := map[string]*string{
		"title":   fields.Title,
		"slug":    fields.Slug,
		"excerpt": fields.Excerpt,
		"content": fields.Content,
		"author":  fields.Author,
	}
	for name, value := range required {
		if value == nil {
			return nil, fmt.Errorf("%w: missing required field %q", ErrMalformedRecord, name)
		}
	}

	post := &BlogPost{
		Title:      *fields.Title,
		Slug:       *fields.Slug,
		Excerpt:    *fields.Excerpt,
		Content:    *fields.Content,
		Author:     *fields.Author,
		CoverImage: fields.CoverImage,
		Published:  true,
	}
	if fields.Published != nil {
		post.Published = *fields.Published
	}
	return post, nil
}
