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
	"eduhub/backend/pkg/sanitize"
)

// ── 课题模块业务错误 ──

var (
	ErrTopicNotFound   = errors.New("Topic not found")
	ErrChapterNotFound = errors.New("Chapter not found")
	ErrContentRequired = errors.New("Content is required")
)

// TopicService 课题业务接口
// 列表/详情供管理端与学生端课程页共用；创建与更新要求 ADMIN 主体
type TopicService interface {
	List(ctx context.Context, p model.Principal) ([]dto.TopicResponse, error)
	Get(ctx context.Context, p model.Principal, id string) (*dto.TopicResponse, error)
	Create(ctx context.Context, p model.Principal, req *dto.TopicRequest) (*dto.TopicResponse, error)
	// Update 整行替换；不支持部分字段更新，四个字段必须全部重新提交
	Update(ctx context.Context, p model.Principal, id string, req *dto.TopicRequest) (*dto.TopicResponse, error)
}

type topicService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTopicService 创建 TopicService 实例
func NewTopicService(repo *repository.Repository, logger *zap.Logger) TopicService {
	return &topicService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *topicService) List(ctx context.Context, p model.Principal) ([]dto.TopicResponse, error) {
	if !p.IsAdmin() {
		return nil, ErrUnauthorized
	}

	topics, err := s.repo.Topic.List(ctx)
	if err != nil {
		s.logger.Error("查询课题列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TopicResponse, 0, len(topics))
	for i := range topics {
		result = append(result, *toTopicResponse(&topics[i]))
	}
	return result, nil
}

// ────────────────────── Get ──────────────────────

func (s *topicService) Get(ctx context.Context, p model.Principal, id string) (*dto.TopicResponse, error) {
	topic, err := s.repo.Topic.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopicNotFound
		}
		s.logger.Error("查询课题失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toTopicResponse(topic), nil
}

// ────────────────────── Create ──────────────────────

func (s *topicService) Create(ctx context.Context, p model.Principal, req *dto.TopicRequest) (*dto.TopicResponse, error) {
	if !p.IsAdmin() {
		return nil, ErrUnauthorized
	}

	content, err := s.cleanContent(req.Content)
	if err != nil {
		return nil, err
	}

	chapter, err := s.repo.Chapter.GetByID(ctx, req.ChapterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChapterNotFound
		}
		s.logger.Error("查询章节失败", zap.String("id", req.ChapterID), zap.Error(err))
		return nil, err
	}

	topic := &model.Topic{
		ChapterID:    chapter.ChapterID,
		Title:        strings.TrimSpace(req.Title),
		Content:      content,
		DisplayOrder: req.Order.Int(),
	}

	if err := s.repo.Topic.Create(ctx, topic); err != nil {
		s.logger.Error("创建课题失败", zap.Error(err))
		return nil, err
	}

	topic.Chapter = chapter
	return toTopicResponse(topic), nil
}

// ────────────────────── Update ──────────────────────

func (s *topicService) Update(ctx context.Context, p model.Principal, id string, req *dto.TopicRequest) (*dto.TopicResponse, error) {
	if !p.IsAdmin() {
		return nil, ErrUnauthorized
	}

	content, err := s.cleanContent(req.Content)
	if err != nil {
		return nil, err
	}

	topic, err := s.repo.Topic.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopicNotFound
		}
		s.logger.Error("查询课题失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	chapter, err := s.repo.Chapter.GetByID(ctx, req.ChapterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChapterNotFound
		}
		s.logger.Error("查询章节失败", zap.String("id", req.ChapterID), zap.Error(err))
		return nil, err
	}

	topic.ChapterID = chapter.ChapterID
	topic.Title = strings.TrimSpace(req.Title)
	topic.Content = content
	topic.DisplayOrder = req.Order.Int()

	if err := s.repo.Topic.Update(ctx, topic); err != nil {
		s.logger.Error("更新课题失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	topic.Chapter = chapter
	return toTopicResponse(topic), nil
}

// ── 内部辅助方法 ──

// cleanContent 富文本正文入库前处理：
// 白名单过滤，过滤后为空白（含纯 script 输入）同样视为空内容
func (s *topicService) cleanContent(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrContentRequired
	}
	cleaned := sanitize.HTML(raw)
	if strings.TrimSpace(cleaned) == "" {
		return "", ErrContentRequired
	}
	return cleaned, nil
}

func toTopicResponse(topic *model.Topic) *dto.TopicResponse {
	resp := &dto.TopicResponse{
		ID:        topic.TopicID,
		ChapterID: topic.ChapterID,
		Title:     topic.Title,
		Content:   topic.Content,
		Order:     topic.DisplayOrder,
		CreatedAt: formatTime(topic.CreatedAt),
		UpdatedAt: formatTime(topic.UpdatedAt),
	}
	if topic.Chapter != nil {
		summary := &dto.ChapterSummary{
			ID:      topic.Chapter.ChapterID,
			Title:   topic.Chapter.Title,
			Order:   topic.Chapter.DisplayOrder,
			ClassID: topic.Chapter.ClassID,
		}
		if topic.Chapter.Class != nil {
			summary.Class = toClassSummary(topic.Chapter.Class)
		}
		resp.Chapter = summary
	}
	return resp
}
