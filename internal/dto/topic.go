package dto

// ── 课题模块请求 ──

// TopicRequest 创建/更新课题共用请求
// 更新不支持部分字段：四个字段必须全部重新提交
// 请求体字段名沿用前端既有的 camelCase 约定
type TopicRequest struct {
	ChapterID string     `json:"chapterId"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Order     OrderValue `json:"order"`
}

// ── 课题模块响应 ──

// TopicResponse 课题行响应，附带章节与班级上下文
type TopicResponse struct {
	ID        string          `json:"id"`
	ChapterID string          `json:"chapter_id"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Order     int             `json:"order"`
	Chapter   *ChapterSummary `json:"chapter,omitempty"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}
