// Package records はコレクションごとの型付きレコードと、
// ストアから読み出したドキュメントの厳密なデコードを提供します。
package records

// コレクション名はレコード型名を小文字にしたものです。
const (
	UserCollection           = "user"
	BlogPostCollection       = "blogpost"
	ContactMessageCollection = "contactmessage"
)

// User はサインアップで作成されるユーザーレコードです。email はコレクション内で一意です。
type User struct {
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"password_hash" json:"-"`
}

// BlogPost は公開ブログ記事のレコードです。このシステムからは読み取り専用です。
type BlogPost struct {
	Title      string  `bson:"title" json:"title"`
	Slug       string  `bson:"slug" json:"slug"`
	Excerpt    string  `bson:"excerpt" json:"excerpt"`
	Content    string  `bson:"content" json:"content"`
	Author     string  `bson:"author" json:"author"`
	CoverImage *string `bson:"cover_image,omitempty" json:"cover_image"`
	Published  bool    `bson:"published" json:"published"`
}

// ContactMessage は問い合わせフォームから保存されるレコードです。
type ContactMessage struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Subject string `bson:"subject" json:"subject"`
	Message string `bson:"message" json:"message"`
}
