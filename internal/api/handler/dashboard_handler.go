package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"eduhub/backend/internal/service"
	"eduhub/backend/pkg/response"
)

// DashboardHandler 仪表盘 HTTP 处理器
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler 创建 DashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// AdminOverview 管理端总览：各实体计数与未建档级别
// GET /api/admin/dashboard
func (h *DashboardHandler) AdminOverview(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	result, err := h.dashboardSvc.AdminOverview(c.Request.Context(), p)
	if err != nil {
		h.handleDashboardError(c, err)
		return
	}

	response.OK(c, result)
}

// StudentHome 学生首页：班级（已分配时仅该班级）与最近帖子
// GET /api/student/dashboard
func (h *DashboardHandler) StudentHome(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	result, err := h.dashboardSvc.StudentHome(c.Request.Context(), p)
	if err != nil {
		h.handleDashboardError(c, err)
		return
	}

	response.OK(c, result)
}

// handleDashboardError 统一处理仪表盘业务错误
func (h *DashboardHandler) handleDashboardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		response.Unauthorized(c)
	default:
		response.InternalError(c)
	}
}
