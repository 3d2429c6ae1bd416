package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eduhub/backend/config"
	"eduhub/backend/internal/api/handler"
	"eduhub/backend/internal/api/middleware"
	"eduhub/backend/internal/model"
	"eduhub/backend/pkg/jwt"
	"eduhub/backend/pkg/redis"
)

// 登录接口的防爆破限流参数
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// maxBodyBytes 请求体上限；课题正文为富文本 HTML，放宽到 2MB
const maxBodyBytes = 2 << 20

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// 认证模块（无需认证；check-role 在处理器内部软解析 Token）
		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, loginRateLimit, loginRateWindow), h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
			auth.GET("/check-role", h.Auth.CheckRole)
		}

		// 需要认证的路由
		authorized := api.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// 管理端（仅 ADMIN）
			admin := authorized.Group("/admin", middleware.RequireRole(model.RoleAdmin))
			{
				admin.GET("/classes", h.Class.ListClasses)
				admin.POST("/classes", h.Class.CreateClass)
				admin.GET("/chapters", h.Chapter.ListChapters)
				admin.POST("/chapters", h.Chapter.CreateChapter)
				admin.GET("/topics", h.Topic.ListTopics)
				admin.POST("/topics", h.Topic.CreateTopic)
				admin.GET("/topics/:id", h.Topic.GetTopic)
				admin.PUT("/topics/:id", h.Topic.UpdateTopic)
				admin.GET("/dashboard", h.Dashboard.AdminOverview)
				admin.GET("/export/curriculum", h.Export.ExportCurriculum)
			}

			// 学生端（仅 STUDENT）
			student := authorized.Group("/student", middleware.RequireRole(model.RoleStudent))
			{
				student.GET("/dashboard", h.Dashboard.StudentHome)
				student.GET("/classes/:id/chapters", h.Chapter.ListClassChapters)
				student.GET("/topics/:id", h.Topic.GetTopic)
			}

			// 社区（浏览对两种角色开放；发帖/回帖在 Service 层限定学生）
			community := authorized.Group("/community")
			{
				community.GET("/posts", h.Community.ListPosts)
				community.GET("/posts/:id", h.Community.GetPost)
				community.POST("/posts", h.Community.CreatePost)
				community.POST("/replies", h.Community.CreateReply)
			}
		}
	}

	return r
}
