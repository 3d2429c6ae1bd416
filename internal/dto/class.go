package dto

// ── 班级模块请求 ──

// CreateClassRequest 创建班级请求
// 必填校验（type/name）在处理器做显式判空，以保证字段级错误消息
type CreateClassRequest struct {
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// ── 班级模块响应 ──

// ClassResponse 班级行响应，附带章节计数
type ClassResponse struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	TypeLabel    string  `json:"type_label"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	ChapterCount int64   `json:"chapter_count"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// ClassSummary 嵌入其他响应的班级摘要
type ClassSummary struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	TypeLabel string `json:"type_label"`
	Name      string `json:"name"`
}

// ClassTypeOption 尚未建档的课程级别（供前端建议创建）
type ClassTypeOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ClassListResponse 班级列表响应
type ClassListResponse struct {
	List         []ClassResponse   `json:"list"`
	MissingTypes []ClassTypeOption `json:"missing_types"`
}
