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

// ChapterService 章节业务接口
// 两个操作都要求 ADMIN 主体
type ChapterService interface {
	List(ctx context.Context, p model.Principal) ([]dto.ChapterResponse, error)
	Create(ctx context.Context, p model.Principal, req *dto.CreateChapterRequest) (*dto.ChapterResponse, error)
	// ListByClass 学生课程页：指定班级及其章节（含课题计数），按展示序排列
	ListByClass(ctx context.Context, p model.Principal, classID string) (*dto.StudentClassResponse, error)
}

type chapterService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewChapterService 创建 ChapterService 实例
func NewChapterService(repo *repository.Repository, logger *zap.Logger) ChapterService {
	return &chapterService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

// List 返回全部章节，按（班级课程序，章节展示序）排列，
// 附带课题计数与所属班级摘要
func (s *chapterService) List(ctx context.Context, p model.Principal) ([]dto.ChapterResponse, error) {
	if !p.IsAdmin() {
		return nil, ErrUnauthorized
	}

	chapters, err := s.repo.Chapter.List(ctx)
	if err != nil {
		s.logger.Error("查询章节列表失败", zap.Error(err))
		return nil, err
	}

	topicCounts, err := s.repo.Topic.CountByChapter(ctx)
	if err != nil {
		s.logger.Error("统计课题数失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ChapterResponse, 0, len(chapters))
	for i := range chapters {
		result = append(result, *toChapterResponse(&chapters[i], topicCounts[chapters[i].ChapterID]))
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

// Create 新建章节
// 与早期实现不同，这里先校验父班级存在：外键违规不再以 500 漏出，
// 而是以明确的业务错误返回。展示序号不做唯一/连续校验。
func (s *chapterService) Create(ctx context.Context, p model.Principal, req *dto.CreateChapterRequest) (*dto.ChapterResponse, error) {
	if !p.IsAdmin() {
		return nil, ErrUnauthorized
	}

	class, err := s.repo.Class.GetByID(ctx, req.ClassID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		s.logger.Error("查询班级失败", zap.String("id", req.ClassID), zap.Error(err))
		return nil, err
	}

	chapter := &model.Chapter{
		ClassID:      class.ClassID,
		Title:        strings.TrimSpace(req.Title),
		Description:  normalizeDescription(req.Description),
		DisplayOrder: req.Order.Int(),
	}

	if err := s.repo.Chapter.Create(ctx, chapter); err != nil {
		s.logger.Error("创建章节失败", zap.Error(err))
		return nil, err
	}

	chapter.Class = class
	return toChapterResponse(chapter, 0), nil
}

// ────────────────────── ListByClass ──────────────────────

// ListByClass 学生课程页读取
// 不区分学生是否被分配到该班级：未分配学生同样可浏览任意班级的章节
func (s *chapterService) ListByClass(ctx context.Context, p model.Principal, classID string) (*dto.StudentClassResponse, error) {
	class, err := s.repo.Class.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		s.logger.Error("查询班级失败", zap.String("id", classID), zap.Error(err))
		return nil, err
	}

	chapters, err := s.repo.Chapter.ListByClass(ctx, class.ClassID)
	if err != nil {
		s.logger.Error("查询班级章节失败", zap.String("class_id", classID), zap.Error(err))
		return nil, err
	}

	topicCounts, err := s.repo.Topic.CountByChapter(ctx)
	if err != nil {
		s.logger.Error("统计课题数失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.StudentChapterResponse, 0, len(chapters))
	for i := range chapters {
		ch := &chapters[i]
		items = append(items, dto.StudentChapterResponse{
			ID:          ch.ChapterID,
			Title:       ch.Title,
			Description: ch.Description,
			Order:       ch.DisplayOrder,
			TopicCount:  topicCounts[ch.ChapterID],
		})
	}

	return &dto.StudentClassResponse{
		ID:          class.ClassID,
		Type:        string(class.Type),
		TypeLabel:   class.Type.Label(),
		Name:        class.Name,
		Description: class.Description,
		Chapters:    items,
	}, nil
}

// ── 内部辅助方法 ──

func toChapterResponse(chapter *model.Chapter, topicCount int64) *dto.ChapterResponse {
	resp := &dto.ChapterResponse{
		ID:          chapter.ChapterID,
		ClassID:     chapter.ClassID,
		Title:       chapter.Title,
		Description: chapter.Description,
		Order:       chapter.DisplayOrder,
		TopicCount:  topicCount,
		CreatedAt:   formatTime(chapter.CreatedAt),
		UpdatedAt:   formatTime(chapter.UpdatedAt),
	}
	if chapter.Class != nil {
		resp.Class = toClassSummary(chapter.Class)
	}
	return resp
}

func toClassSummary(class *model.Class) *dto.ClassSummary {
	return &dto.ClassSummary{
		ID:        class.ClassID,
		Type:      string(class.Type),
		TypeLabel: class.Type.Label(),
		Name:      class.Name,
	}
}
