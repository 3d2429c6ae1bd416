package service

import (
	"context"

	"eduhub/backend/internal/model"
	"eduhub/backend/internal/repository"
)

// ── 共享测试夹具 ──

// testMocks 全量 Mock 仓储及其底层实例
type testMocks struct {
	users    *mockUserRepo
	classes  *mockClassRepo
	chapters *mockChapterRepo
	topics   *mockTopicRepo
	posts    *mockPostRepo
	replies  *mockReplyRepo
}

// newTestRepo 构造全量 Mock 仓储并完成跨 Mock 关联（模拟 Preload 与跨表排序）
func newTestRepo() (*repository.Repository, *testMocks) {
	m := &testMocks{
		users:    newMockUserRepo(),
		classes:  newMockClassRepo(),
		chapters: newMockChapterRepo(),
		topics:   newMockTopicRepo(),
		posts:    newMockPostRepo(),
		replies:  newMockReplyRepo(),
	}
	m.classes.chapters = m.chapters
	m.chapters.classes = m.classes
	m.topics.chapters = m.chapters
	m.posts.users = m.users
	m.posts.replies = m.replies

	repo := &repository.Repository{
		User:    m.users,
		Class:   m.classes,
		Chapter: m.chapters,
		Topic:   m.topics,
		Post:    m.posts,
		Reply:   m.replies,
	}
	return repo, m
}

func adminPrincipal() model.Principal {
	return model.Principal{UserID: "admin-001", Role: model.RoleAdmin}
}

func studentPrincipal(userID string, class *model.ClassType) model.Principal {
	return model.Principal{UserID: userID, Role: model.RoleStudent, Class: class}
}

// seedStudent 在 Mock 仓储中落一个学生账号并返回其主体
func seedStudent(m *testMocks, name, email string, class *model.ClassType) model.Principal {
	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         model.RoleStudent,
		Class:        class,
	}
	_ = m.users.Create(context.Background(), user)
	return user.Principal()
}

func classTypePtr(t model.ClassType) *model.ClassType { return &t }
