package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"eduhub/backend/internal/dto"
	"eduhub/backend/internal/model"
	"eduhub/backend/internal/repository"
)

// recentPostLimit 学生首页展示的最近帖子条数
const recentPostLimit = 5

// DashboardService 仪表盘业务接口
// 纯聚合读：计数只反映请求时刻的持久化状态，无缓存
type DashboardService interface {
	// AdminOverview 管理端总览，要求 ADMIN 主体
	AdminOverview(ctx context.Context, p model.Principal) (*dto.AdminDashboardResponse, error)
	// StudentHome 学生首页：已分配班级时仅该班级，否则全部班级
	StudentHome(ctx context.Context, p model.Principal) (*dto.StudentDashboardResponse, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

// ────────────────────── AdminOverview ──────────────────────

func (s *dashboardService) AdminOverview(ctx context.Context, p model.Principal) (*dto.AdminDashboardResponse, error) {
	if !p.IsAdmin() {
		return nil, ErrUnauthorized
	}

	classCount, err := s.repo.Class.Count(ctx)
	if err != nil {
		s.logger.Error("统计班级数失败", zap.Error(err))
		return nil, err
	}
	chapterCount, err := s.repo.Chapter.Count(ctx)
	if err != nil {
		s.logger.Error("统计章节数失败", zap.Error(err))
		return nil, err
	}
	topicCount, err := s.repo.Topic.Count(ctx)
	if err != nil {
		s.logger.Error("统计课题数失败", zap.Error(err))
		return nil, err
	}
	studentCount, err := s.repo.User.CountByRole(ctx, model.RoleStudent)
	if err != nil {
		s.logger.Error("统计学生数失败", zap.Error(err))
		return nil, err
	}
	postCount, err := s.repo.Post.Count(ctx)
	if err != nil {
		s.logger.Error("统计帖子数失败", zap.Error(err))
		return nil, err
	}

	classes, err := s.repo.Class.List(ctx)
	if err != nil {
		s.logger.Error("查询班级列表失败", zap.Error(err))
		return nil, err
	}
	present := make(map[model.ClassType]bool, len(classes))
	for i := range classes {
		present[classes[i].Type] = true
	}

	return &dto.AdminDashboardResponse{
		ClassCount:   classCount,
		ChapterCount: chapterCount,
		TopicCount:   topicCount,
		StudentCount: studentCount,
		PostCount:    postCount,
		MissingTypes: missingClassTypes(present),
	}, nil
}

// ────────────────────── StudentHome ──────────────────────

func (s *dashboardService) StudentHome(ctx context.Context, p model.Principal) (*dto.StudentDashboardResponse, error) {
	if !p.IsStudent() {
		return nil, ErrUnauthorized
	}

	var classes []model.Class
	if p.Class != nil {
		class, err := s.repo.Class.GetByTypeWithChapters(ctx, *p.Class)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Error("查询班级失败", zap.String("type", string(*p.Class)), zap.Error(err))
				return nil, err
			}
			// 分配的班级尚未建档：返回空列表而非报错
		} else {
			classes = []model.Class{*class}
		}
	} else {
		all, err := s.repo.Class.ListWithChapters(ctx)
		if err != nil {
			s.logger.Error("查询班级列表失败", zap.Error(err))
			return nil, err
		}
		classes = all
	}

	topicCounts, err := s.repo.Topic.CountByChapter(ctx)
	if err != nil {
		s.logger.Error("统计课题数失败", zap.Error(err))
		return nil, err
	}

	classList := make([]dto.StudentClassResponse, 0, len(classes))
	for i := range classes {
		c := &classes[i]
		chapters := make([]dto.StudentChapterResponse, 0, len(c.Chapters))
		for j := range c.Chapters {
			ch := &c.Chapters[j]
			chapters = append(chapters, dto.StudentChapterResponse{
				ID:          ch.ChapterID,
				Title:       ch.Title,
				Description: ch.Description,
				Order:       ch.DisplayOrder,
				TopicCount:  topicCounts[ch.ChapterID],
			})
		}
		classList = append(classList, dto.StudentClassResponse{
			ID:          c.ClassID,
			Type:        string(c.Type),
			TypeLabel:   c.Type.Label(),
			Name:        c.Name,
			Description: c.Description,
			Chapters:    chapters,
		})
	}

	posts, err := s.repo.Post.ListRecent(ctx, recentPostLimit)
	if err != nil {
		s.logger.Error("查询最近帖子失败", zap.Error(err))
		return nil, err
	}
	replyCounts, err := s.repo.Reply.CountByPost(ctx)
	if err != nil {
		s.logger.Error("统计回复数失败", zap.Error(err))
		return nil, err
	}

	recent := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		recent = append(recent, *toPostResponse(&posts[i], replyCounts[posts[i].PostID]))
	}

	return &dto.StudentDashboardResponse{
		Classes:     classList,
		RecentPosts: recent,
	}, nil
}
