package dto

// ── 仪表盘模块响应 ──

// AdminDashboardResponse 管理端总览：各实体即时计数
// 计数仅反映请求时刻的持久化状态，无缓存、无增量维护
type AdminDashboardResponse struct {
	ClassCount   int64             `json:"class_count"`
	ChapterCount int64             `json:"chapter_count"`
	TopicCount   int64             `json:"topic_count"`
	StudentCount int64             `json:"student_count"`
	PostCount    int64             `json:"post_count"`
	MissingTypes []ClassTypeOption `json:"missing_types"`
}

// StudentChapterResponse 学生端章节条目，附带课题计数
type StudentChapterResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Order       int     `json:"order"`
	TopicCount  int64   `json:"topic_count"`
}

// StudentClassResponse 学生端班级条目，含有序章节
type StudentClassResponse struct {
	ID          string                   `json:"id"`
	Type        string                   `json:"type"`
	TypeLabel   string                   `json:"type_label"`
	Name        string                   `json:"name"`
	Description *string                  `json:"description"`
	Chapters    []StudentChapterResponse `json:"chapters"`
}

// StudentDashboardResponse 学生端首页：
// 已分配班级时仅含该班级；未分配时返回全部班级
type StudentDashboardResponse struct {
	Classes     []StudentClassResponse `json:"classes"`
	RecentPosts []PostResponse         `json:"recent_posts"`
}
