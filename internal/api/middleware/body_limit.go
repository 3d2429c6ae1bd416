package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eduhub/backend/pkg/response"
)

// BodyLimit 全局请求体大小限制中间件
// 课题正文走富文本，上限需容纳较大的 HTML 片段
// maxBytes: 允许的最大请求体字节数（如 2<<20 = 2MB）
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.Error(c, http.StatusRequestEntityTooLarge, "Request body too large")
				return
			}
		}
	}
}
