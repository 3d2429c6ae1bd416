package handler

import (
	"github.com/gin-gonic/gin"

	"eduhub/backend/internal/model"
	"eduhub/backend/pkg/response"
)

// MustGetPrincipal 从 Gin 上下文中提取请求主体。
// JWT 中间件未正确注入时返回 false 并写入 401 响应，
// 调用方应在 ok=false 时直接 return。
// 服务层不读任何环境态，主体必须由此显式传入。
func MustGetPrincipal(c *gin.Context) (model.Principal, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c)
		return model.Principal{}, false
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		response.Unauthorized(c)
		return model.Principal{}, false
	}

	roleVal, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c)
		return model.Principal{}, false
	}
	roleStr, ok := roleVal.(string)
	role := model.Role(roleStr)
	if !ok || !role.Valid() {
		response.Unauthorized(c)
		return model.Principal{}, false
	}

	p := model.Principal{UserID: id, Role: role}

	if classVal, exists := c.Get("class"); exists {
		if s, ok := classVal.(string); ok && s != "" {
			t := model.ClassType(s)
			if t.Valid() {
				p.Class = &t
			}
		}
	}

	return p, true
}
