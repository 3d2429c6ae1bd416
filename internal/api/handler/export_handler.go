package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"eduhub/backend/internal/service"
	"eduhub/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 课程导出 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportCurriculum 导出全部课程结构为 Excel 文件
// GET /api/admin/export/curriculum
func (h *ExportHandler) ExportCurriculum(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportCurriculum(c.Request.Context(), p)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthorized):
			response.Unauthorized(c)
		case errors.Is(err, service.ErrExportNoClasses):
			response.BadRequest(c, service.ErrExportNoClasses.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
