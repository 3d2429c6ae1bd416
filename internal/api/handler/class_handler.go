package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"eduhub/backend/internal/dto"
	"eduhub/backend/internal/service"
	"eduhub/backend/pkg/response"
)

// ClassHandler 班级模块 HTTP 处理器
type ClassHandler struct {
	classSvc service.ClassService
}

// NewClassHandler 创建 ClassHandler
func NewClassHandler(classSvc service.ClassService) *ClassHandler {
	return &ClassHandler{classSvc: classSvc}
}

// ListClasses 班级列表（含章节计数与未建档级别）
// GET /api/admin/classes
func (h *ClassHandler) ListClasses(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	result, err := h.classSvc.List(c.Request.Context(), p)
	if err != nil {
		h.handleClassError(c, err)
		return
	}

	response.OK(c, result)
}

// CreateClass 创建班级
// POST /api/admin/classes
func (h *ClassHandler) CreateClass(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Type and name are required")
		return
	}

	// 字段级必填校验，保证与错误消息逐字段对应
	if req.Type == "" || strings.TrimSpace(req.Name) == "" {
		response.BadRequest(c, "Type and name are required")
		return
	}

	class, err := h.classSvc.Create(c.Request.Context(), p, &req)
	if err != nil {
		h.handleClassError(c, err)
		return
	}

	response.Created(c, class)
}

// handleClassError 统一处理班级模块业务错误
func (h *ClassHandler) handleClassError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		response.Unauthorized(c)
	case errors.Is(err, service.ErrInvalidClassType):
		response.BadRequest(c, service.ErrInvalidClassType.Error())
	case errors.Is(err, service.ErrClassTypeExists):
		response.BadRequest(c, service.ErrClassTypeExists.Error())
	default:
		response.InternalError(c)
	}
}
