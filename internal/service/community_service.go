package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"eduhub/backend/internal/dto"
	"eduhub/backend/internal/model"
	"eduhub/backend/internal/repository"
)

// ── 社区模块业务错误 ──

var (
	ErrPostNotFound = errors.New("Post not found")
)

// CommunityService 社区业务接口
// 读操作接受任意已认证主体；发帖/回帖要求 STUDENT 主体。
// 帖子与回复一经创建不可修改、不可删除（无任何编辑/删除操作）
type CommunityService interface {
	ListPosts(ctx context.Context, p model.Principal) ([]dto.PostResponse, error)
	GetPost(ctx context.Context, p model.Principal, id string) (*dto.PostDetailResponse, error)
	CreatePost(ctx context.Context, p model.Principal, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	CreateReply(ctx context.Context, p model.Principal, req *dto.CreateReplyRequest) (*dto.ReplyResponse, error)
}

type communityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCommunityService 创建 CommunityService 实例
func NewCommunityService(repo *repository.Repository, logger *zap.Logger) CommunityService {
	return &communityService{repo: repo, logger: logger}
}

// ────────────────────── ListPosts ──────────────────────

func (s *communityService) ListPosts(ctx context.Context, p model.Principal) ([]dto.PostResponse, error) {
	posts, err := s.repo.Post.List(ctx)
	if err != nil {
		s.logger.Error("查询帖子列表失败", zap.Error(err))
		return nil, err
	}

	replyCounts, err := s.repo.Reply.CountByPost(ctx)
	if err != nil {
		s.logger.Error("统计回复数失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		result = append(result, *toPostResponse(&posts[i], replyCounts[posts[i].PostID]))
	}
	return result, nil
}

// ────────────────────── GetPost ──────────────────────

func (s *communityService) GetPost(ctx context.Context, p model.Principal, id string) (*dto.PostDetailResponse, error) {
	post, err := s.repo.Post.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Error("查询帖子失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	replies := make([]dto.ReplyResponse, 0, len(post.Replies))
	for i := range post.Replies {
		replies = append(replies, *toReplyResponse(&post.Replies[i]))
	}

	return &dto.PostDetailResponse{
		ID:        post.PostID,
		Title:     post.Title,
		Content:   post.Content,
		Author:    toAuthorResponse(post.AuthorID, post.Author),
		Replies:   replies,
		CreatedAt: formatTime(post.CreatedAt),
	}, nil
}

// ────────────────────── CreatePost ──────────────────────

func (s *communityService) CreatePost(ctx context.Context, p model.Principal, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	if !p.IsStudent() {
		return nil, ErrUnauthorized
	}

	post := &model.Post{
		AuthorID: p.UserID,
		Title:    strings.TrimSpace(req.Title),
		Content:  strings.TrimSpace(req.Content),
	}

	if err := s.repo.Post.Create(ctx, post); err != nil {
		s.logger.Error("创建帖子失败", zap.Error(err))
		return nil, err
	}

	author, err := s.repo.User.GetByID(ctx, p.UserID)
	if err != nil {
		s.logger.Error("查询作者失败", zap.String("id", p.UserID), zap.Error(err))
		return nil, err
	}

	post.Author = author
	return toPostResponse(post, 0), nil
}

// ────────────────────── CreateReply ──────────────────────

func (s *communityService) CreateReply(ctx context.Context, p model.Principal, req *dto.CreateReplyRequest) (*dto.ReplyResponse, error) {
	if !p.IsStudent() {
		return nil, ErrUnauthorized
	}

	// 先校验帖子存在，外键违规不以 500 漏出
	if _, err := s.repo.Post.GetByID(ctx, req.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Error("查询帖子失败", zap.String("id", req.PostID), zap.Error(err))
		return nil, err
	}

	reply := &model.Reply{
		PostID:   req.PostID,
		AuthorID: p.UserID,
		Content:  strings.TrimSpace(req.Content),
	}

	if err := s.repo.Reply.Create(ctx, reply); err != nil {
		s.logger.Error("创建回复失败", zap.Error(err))
		return nil, err
	}

	author, err := s.repo.User.GetByID(ctx, p.UserID)
	if err != nil {
		s.logger.Error("查询作者失败", zap.String("id", p.UserID), zap.Error(err))
		return nil, err
	}

	reply.Author = author
	return toReplyResponse(reply), nil
}

// ── 内部辅助方法 ──

func toAuthorResponse(authorID string, author *model.User) dto.AuthorResponse {
	resp := dto.AuthorResponse{ID: authorID}
	if author != nil {
		resp.Name = author.Name
	}
	return resp
}

func toPostResponse(post *model.Post, replyCount int64) *dto.PostResponse {
	return &dto.PostResponse{
		ID:         post.PostID,
		Title:      post.Title,
		Content:    post.Content,
		Author:     toAuthorResponse(post.AuthorID, post.Author),
		ReplyCount: replyCount,
		CreatedAt:  formatTime(post.CreatedAt),
	}
}

func toReplyResponse(reply *model.Reply) *dto.ReplyResponse {
	return &dto.ReplyResponse{
		ID:        reply.ReplyID,
		PostID:    reply.PostID,
		Content:   reply.Content,
		Author:    toAuthorResponse(reply.AuthorID, reply.Author),
		CreatedAt: formatTime(reply.CreatedAt),
	}
}
