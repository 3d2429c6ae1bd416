package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"eduhub/backend/internal/dto"
	"eduhub/backend/internal/service"
	"eduhub/backend/pkg/response"
)

// TopicHandler 课题模块 HTTP 处理器
type TopicHandler struct {
	topicSvc service.TopicService
}

// NewTopicHandler 创建 TopicHandler
func NewTopicHandler(topicSvc service.TopicService) *TopicHandler {
	return &TopicHandler{topicSvc: topicSvc}
}

// ListTopics 课题列表（含章节与班级上下文）
// GET /api/admin/topics
func (h *TopicHandler) ListTopics(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	topics, err := h.topicSvc.List(c.Request.Context(), p)
	if err != nil {
		h.handleTopicError(c, err)
		return
	}

	response.OK(c, gin.H{"list": topics})
}

// GetTopic 课题详情
// GET /api/admin/topics/:id
// GET /api/student/topics/:id
func (h *TopicHandler) GetTopic(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Topic id is required")
		return
	}

	topic, err := h.topicSvc.Get(c.Request.Context(), p, id)
	if err != nil {
		h.handleTopicError(c, err)
		return
	}

	response.OK(c, topic)
}

// CreateTopic 创建课题
// POST /api/admin/topics
func (h *TopicHandler) CreateTopic(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	req, ok := h.bindTopicRequest(c)
	if !ok {
		return
	}

	topic, err := h.topicSvc.Create(c.Request.Context(), p, req)
	if err != nil {
		h.handleTopicError(c, err)
		return
	}

	response.Created(c, topic)
}

// UpdateTopic 更新课题（整行替换，不支持部分更新）
// PUT /api/admin/topics/:id
func (h *TopicHandler) UpdateTopic(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Topic id is required")
		return
	}

	req, ok := h.bindTopicRequest(c)
	if !ok {
		return
	}

	topic, err := h.topicSvc.Update(c.Request.Context(), p, id, req)
	if err != nil {
		h.handleTopicError(c, err)
		return
	}

	response.OK(c, topic)
}

// ── 内部辅助方法 ──

// bindTopicRequest 创建与更新共用的请求绑定与必填校验
func (h *TopicHandler) bindTopicRequest(c *gin.Context) (*dto.TopicRequest, bool) {
	var req dto.TopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Chapter, title, content, and order are required")
		return nil, false
	}

	if req.ChapterID == "" || strings.TrimSpace(req.Title) == "" || req.Content == "" || !req.Order.Present() {
		response.BadRequest(c, "Chapter, title, content, and order are required")
		return nil, false
	}

	return &req, true
}

// handleTopicError 统一处理课题模块业务错误
func (h *TopicHandler) handleTopicError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		response.Unauthorized(c)
	case errors.Is(err, service.ErrTopicNotFound):
		response.NotFound(c, service.ErrTopicNotFound.Error())
	case errors.Is(err, service.ErrChapterNotFound):
		response.BadRequest(c, service.ErrChapterNotFound.Error())
	case errors.Is(err, service.ErrContentRequired):
		response.BadRequest(c, service.ErrContentRequired.Error())
	default:
		response.InternalError(c)
	}
}
