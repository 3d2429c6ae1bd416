package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eduhub/backend/config"
	"eduhub/backend/internal/model"
	"eduhub/backend/internal/repository"
	"eduhub/backend/pkg/database"
	applogger "eduhub/backend/pkg/logger"
)

// 初始化管理员账号的命令行工具
// 读取 ADMIN_EMAIL / ADMIN_PASSWORD / ADMIN_NAME 环境变量：
// 账号不存在则创建，已存在则重置密码并确保 ADMIN 角色

const defaultAdminName = "Admin"

// 与登录、注册保持同一口径：邮箱统一小写后存储与查询
func normalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func main() {
	email := normalizeEmail(os.Getenv("ADMIN_EMAIL"))
	password := os.Getenv("ADMIN_PASSWORD")
	name := strings.TrimSpace(os.Getenv("ADMIN_NAME"))

	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "必须设置 ADMIN_EMAIL 和 ADMIN_PASSWORD 环境变量")
		os.Exit(1)
	}
	if name == "" {
		name = defaultAdminName
	}

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("密码加密失败", zap.Error(err))
	}

	repo := repository.NewRepository(db)

	user, err := repo.User.GetByEmail(ctx, email)
	switch {
	case err == nil:
		// 已存在：重置密码并确保管理员角色
		user.Name = name
		user.PasswordHash = string(hash)
		user.Role = model.RoleAdmin
		user.Class = nil
		if err := repo.User.Update(ctx, user); err != nil {
			logger.Fatal("更新管理员账号失败", zap.Error(err))
		}
		logger.Info("管理员账号已更新", zap.String("email", email))

	case errors.Is(err, gorm.ErrRecordNotFound):
		user = &model.User{
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         model.RoleAdmin,
		}
		if err := repo.User.Create(ctx, user); err != nil {
			logger.Fatal("创建管理员账号失败", zap.Error(err))
		}
		logger.Info("管理员账号已创建", zap.String("email", email), zap.String("user_id", user.UserID))

	default:
		logger.Fatal("查询管理员账号失败", zap.Error(err))
	}
}
