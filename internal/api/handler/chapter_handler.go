package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"eduhub/backend/internal/dto"
	"eduhub/backend/internal/service"
	"eduhub/backend/pkg/response"
)

// ChapterHandler 章节模块 HTTP 处理器
type ChapterHandler struct {
	chapterSvc service.ChapterService
}

// NewChapterHandler 创建 ChapterHandler
func NewChapterHandler(chapterSvc service.ChapterService) *ChapterHandler {
	return &ChapterHandler{chapterSvc: chapterSvc}
}

// ListChapters 章节列表（含课题计数与所属班级）
// GET /api/admin/chapters
func (h *ChapterHandler) ListChapters(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	chapters, err := h.chapterSvc.List(c.Request.Context(), p)
	if err != nil {
		h.handleChapterError(c, err)
		return
	}

	response.OK(c, gin.H{"list": chapters})
}

// CreateChapter 创建章节
// POST /api/admin/chapters
func (h *ChapterHandler) CreateChapter(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Class, title, and order are required")
		return
	}

	if req.ClassID == "" || strings.TrimSpace(req.Title) == "" || !req.Order.Present() {
		response.BadRequest(c, "Class, title, and order are required")
		return
	}

	chapter, err := h.chapterSvc.Create(c.Request.Context(), p, &req)
	if err != nil {
		h.handleChapterError(c, err)
		return
	}

	response.Created(c, chapter)
}

// ListClassChapters 学生课程页：指定班级及其章节
// GET /api/student/classes/:id/chapters
func (h *ChapterHandler) ListClassChapters(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	result, err := h.chapterSvc.ListByClass(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		// 路径参数指向的班级缺失按 404 处理，区别于创建时的字段错误
		if errors.Is(err, service.ErrClassNotFound) {
			response.NotFound(c, service.ErrClassNotFound.Error())
			return
		}
		h.handleChapterError(c, err)
		return
	}

	response.OK(c, result)
}

// handleChapterError 统一处理章节模块业务错误
func (h *ChapterHandler) handleChapterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		response.Unauthorized(c)
	case errors.Is(err, service.ErrClassNotFound):
		response.BadRequest(c, service.ErrClassNotFound.Error())
	default:
		response.InternalError(c)
	}
}
