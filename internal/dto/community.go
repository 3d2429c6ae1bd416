package dto

// ── 社区模块请求 ──

// CreatePostRequest 发帖请求
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateReplyRequest 回帖请求
type CreateReplyRequest struct {
	PostID  string `json:"postId"`
	Content string `json:"content"`
}

// ── 社区模块响应 ──

// AuthorResponse 作者摘要
type AuthorResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PostResponse 帖子行响应（列表用），附带作者与回复计数
type PostResponse struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	Author     AuthorResponse `json:"author"`
	ReplyCount int64          `json:"reply_count"`
	CreatedAt  string         `json:"created_at"`
}

// ReplyResponse 回复响应
type ReplyResponse struct {
	ID        string         `json:"id"`
	PostID    string         `json:"post_id"`
	Content   string         `json:"content"`
	Author    AuthorResponse `json:"author"`
	CreatedAt string         `json:"created_at"`
}

// PostDetailResponse 帖子详情响应，回复按时间升序
type PostDetailResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Author    AuthorResponse  `json:"author"`
	Replies   []ReplyResponse `json:"replies"`
	CreatedAt string          `json:"created_at"`
}
