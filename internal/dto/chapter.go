package dto

// ── 章节模块请求 ──

// CreateChapterRequest 创建章节请求
// 请求体字段名沿用前端既有的 camelCase 约定
type CreateChapterRequest struct {
	ClassID     string     `json:"classId"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Order       OrderValue `json:"order"`
}

// ── 章节模块响应 ──

// ChapterResponse 章节行响应，附带课题计数与所属班级
type ChapterResponse struct {
	ID          string        `json:"id"`
	ClassID     string        `json:"class_id"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	Order       int           `json:"order"`
	TopicCount  int64         `json:"topic_count"`
	Class       *ClassSummary `json:"class,omitempty"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
}

// ChapterSummary 嵌入其他响应的章节摘要
type ChapterSummary struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Order   int           `json:"order"`
	ClassID string        `json:"class_id"`
	Class   *ClassSummary `json:"class,omitempty"`
}
