package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"eduhub/backend/internal/dto"
)

func setupTestCommunityService() (CommunityService, *testMocks) {
	repo, m := newTestRepo()
	return NewCommunityService(repo, zap.NewNop()), m
}

// ── CreatePost 测试 ──

func TestCommunityService_CreatePost_Success(t *testing.T) {
	svc, m := setupTestCommunityService()
	p := seedStudent(m, "Rahim", "rahim@example.com", nil)

	result, err := svc.CreatePost(context.Background(), p, &dto.CreatePostRequest{
		Title:   "Need help with algebra",
		Content: "How do I factor quadratics?",
	})
	if err != nil {
		t.Fatalf("CreatePost 应成功: %v", err)
	}
	if result.Author.Name != "Rahim" {
		t.Errorf("响应应附带作者名，实际=%s", result.Author.Name)
	}
	if result.ReplyCount != 0 {
		t.Errorf("新帖回复数应为 0，实际=%d", result.ReplyCount)
	}
}

func TestCommunityService_CreatePost_AdminForbidden(t *testing.T) {
	svc, _ := setupTestCommunityService()

	_, err := svc.CreatePost(context.Background(), adminPrincipal(), &dto.CreatePostRequest{
		Title:   "Announcement",
		Content: "Admins cannot post here",
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("管理员发帖应被拒绝，实际: %v", err)
	}
}

// ── CreateReply 测试 ──

func TestCommunityService_CreateReply_Success(t *testing.T) {
	svc, m := setupTestCommunityService()
	ctx := context.Background()
	author := seedStudent(m, "Rahim", "rahim@example.com", nil)
	replier := seedStudent(m, "Karim", "karim@example.com", nil)

	post, err := svc.CreatePost(ctx, author, &dto.CreatePostRequest{
		Title:   "Question",
		Content: "Anyone?",
	})
	if err != nil {
		t.Fatalf("CreatePost 应成功: %v", err)
	}

	reply, err := svc.CreateReply(ctx, replier, &dto.CreateReplyRequest{
		PostID:  post.ID,
		Content: "I can help",
	})
	if err != nil {
		t.Fatalf("CreateReply 应成功: %v", err)
	}
	if reply.PostID != post.ID {
		t.Errorf("期望 PostID=%s，实际=%s", post.ID, reply.PostID)
	}
	if reply.Author.Name != "Karim" {
		t.Errorf("响应应附带回复者名，实际=%s", reply.Author.Name)
	}
}

func TestCommunityService_CreateReply_PostNotFound(t *testing.T) {
	svc, m := setupTestCommunityService()
	p := seedStudent(m, "Karim", "karim@example.com", nil)

	_, err := svc.CreateReply(context.Background(), p, &dto.CreateReplyRequest{
		PostID:  "post-missing",
		Content: "Lost reply",
	})
	if !errors.Is(err, ErrPostNotFound) {
		t.Errorf("期望 ErrPostNotFound，实际: %v", err)
	}
}

func TestCommunityService_CreateReply_AdminForbidden(t *testing.T) {
	svc, _ := setupTestCommunityService()

	_, err := svc.CreateReply(context.Background(), adminPrincipal(), &dto.CreateReplyRequest{
		PostID:  "post-001",
		Content: "Admin reply",
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("管理员回帖应被拒绝，实际: %v", err)
	}
}

// ── ListPosts 测试 ──

func TestCommunityService_ListPosts_NewestFirstWithCounts(t *testing.T) {
	svc, m := setupTestCommunityService()
	ctx := context.Background()
	p := seedStudent(m, "Rahim", "rahim@example.com", nil)

	first, _ := svc.CreatePost(ctx, p, &dto.CreatePostRequest{Title: "First", Content: "a"})
	second, _ := svc.CreatePost(ctx, p, &dto.CreatePostRequest{Title: "Second", Content: "b"})
	_, _ = svc.CreateReply(ctx, p, &dto.CreateReplyRequest{PostID: first.ID, Content: "r1"})
	_, _ = svc.CreateReply(ctx, p, &dto.CreateReplyRequest{PostID: first.ID, Content: "r2"})

	result, err := svc.ListPosts(ctx, p)
	if err != nil {
		t.Fatalf("ListPosts 应成功: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("期望 2 个帖子，实际=%d", len(result))
	}
	if result[0].ID != second.ID {
		t.Errorf("帖子应按时间倒序，首位应为 Second")
	}
	if result[1].ReplyCount != 2 {
		t.Errorf("期望 First 回复数=2，实际=%d", result[1].ReplyCount)
	}
}

func TestCommunityService_ListPosts_AdminCanBrowse(t *testing.T) {
	svc, _ := setupTestCommunityService()

	result, err := svc.ListPosts(context.Background(), adminPrincipal())
	if err != nil {
		t.Fatalf("管理员浏览帖子列表应成功: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("期望空列表，实际=%d", len(result))
	}
}

// ── GetPost 测试 ──

func TestCommunityService_GetPost_WithOrderedReplies(t *testing.T) {
	svc, m := setupTestCommunityService()
	ctx := context.Background()
	p := seedStudent(m, "Rahim", "rahim@example.com", nil)

	post, _ := svc.CreatePost(ctx, p, &dto.CreatePostRequest{Title: "Thread", Content: "body"})
	_, _ = svc.CreateReply(ctx, p, &dto.CreateReplyRequest{PostID: post.ID, Content: "earliest"})
	_, _ = svc.CreateReply(ctx, p, &dto.CreateReplyRequest{PostID: post.ID, Content: "latest"})

	result, err := svc.GetPost(ctx, p, post.ID)
	if err != nil {
		t.Fatalf("GetPost 应成功: %v", err)
	}
	if len(result.Replies) != 2 {
		t.Fatalf("期望 2 条回复，实际=%d", len(result.Replies))
	}
	// 回复按时间升序
	if result.Replies[0].Content != "earliest" || result.Replies[1].Content != "latest" {
		t.Errorf("回复应按时间升序: %+v", result.Replies)
	}
}

func TestCommunityService_GetPost_NotFound(t *testing.T) {
	svc, m := setupTestCommunityService()
	p := seedStudent(m, "Rahim", "rahim@example.com", nil)

	_, err := svc.GetPost(context.Background(), p, "post-missing")
	if !errors.Is(err, ErrPostNotFound) {
		t.Errorf("期望 ErrPostNotFound，实际: %v", err)
	}
}
