package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"eduhub/backend/internal/dto"
	"eduhub/backend/internal/service"
	"eduhub/backend/pkg/response"
)

// CommunityHandler 社区模块 HTTP 处理器
type CommunityHandler struct {
	communitySvc service.CommunityService
}

// NewCommunityHandler 创建 CommunityHandler
func NewCommunityHandler(communitySvc service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communitySvc: communitySvc}
}

// ListPosts 帖子列表（按创建时间降序，含作者与回复计数）
// GET /api/community/posts
func (h *CommunityHandler) ListPosts(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	posts, err := h.communitySvc.ListPosts(c.Request.Context(), p)
	if err != nil {
		h.handleCommunityError(c, err)
		return
	}

	response.OK(c, gin.H{"list": posts})
}

// GetPost 帖子详情（回复按时间升序）
// GET /api/community/posts/:id
func (h *CommunityHandler) GetPost(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Post id is required")
		return
	}

	post, err := h.communitySvc.GetPost(c.Request.Context(), p, id)
	if err != nil {
		// 详情路由的缺失是 404；回帖路由里帖子缺失仍按字段错误走 400
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c, service.ErrPostNotFound.Error())
			return
		}
		h.handleCommunityError(c, err)
		return
	}

	response.OK(c, post)
}

// CreatePost 发帖（仅学生）
// POST /api/community/posts
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Title and content are required")
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		response.BadRequest(c, "Title and content are required")
		return
	}

	post, err := h.communitySvc.CreatePost(c.Request.Context(), p, &req)
	if err != nil {
		h.handleCommunityError(c, err)
		return
	}

	response.Created(c, post)
}

// CreateReply 回帖（仅学生）
// POST /api/community/replies
func (h *CommunityHandler) CreateReply(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Post and content are required")
		return
	}

	if req.PostID == "" || strings.TrimSpace(req.Content) == "" {
		response.BadRequest(c, "Post and content are required")
		return
	}

	reply, err := h.communitySvc.CreateReply(c.Request.Context(), p, &req)
	if err != nil {
		h.handleCommunityError(c, err)
		return
	}

	response.Created(c, reply)
}

// handleCommunityError 统一处理社区模块业务错误
func (h *CommunityHandler) handleCommunityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		response.Unauthorized(c)
	case errors.Is(err, service.ErrPostNotFound):
		response.BadRequest(c, service.ErrPostNotFound.Error())
	default:
		response.InternalError(c)
	}
}
