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

// ── 班级模块业务错误 ──

var (
	ErrClassTypeExists = errors.New("Class with this type already exists")
	ErrClassNotFound   = errors.New("Class not found")
)

// ClassService 班级业务接口
// 两个操作都要求 ADMIN 主体
type ClassService interface {
	List(ctx context.Context, p model.Principal) (*dto.ClassListResponse, error)
	Create(ctx context.Context, p model.Principal, req *dto.CreateClassRequest) (*dto.ClassResponse, error)
}

type classService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClassService 创建 ClassService 实例
func NewClassService(repo *repository.Repository, logger *zap.Logger) ClassService {
	return &classService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *classService) List(ctx context.Context, p model.Principal) (*dto.ClassListResponse, error) {
	if !p.IsAdmin() {
		return nil, ErrUnauthorized
	}

	classes, err := s.repo.Class.List(ctx)
	if err != nil {
		s.logger.Error("查询班级列表失败", zap.Error(err))
		return nil, err
	}

	chapterCounts, err := s.repo.Chapter.CountByClass(ctx)
	if err != nil {
		s.logger.Error("统计章节数失败", zap.Error(err))
		return nil, err
	}

	list := make([]dto.ClassResponse, 0, len(classes))
	present := make(map[model.ClassType]bool, len(classes))
	for i := range classes {
		c := &classes[i]
		present[c.Type] = true
		list = append(list, dto.ClassResponse{
			ID:           c.ClassID,
			Type:         string(c.Type),
			TypeLabel:    c.Type.Label(),
			Name:         c.Name,
			Description:  c.Description,
			ChapterCount: chapterCounts[c.ClassID],
			CreatedAt:    formatTime(c.CreatedAt),
			UpdatedAt:    formatTime(c.UpdatedAt),
		})
	}

	return &dto.ClassListResponse{
		List:         list,
		MissingTypes: missingClassTypes(present),
	}, nil
}

// ────────────────────── Create ──────────────────────

func (s *classService) Create(ctx context.Context, p model.Principal, req *dto.CreateClassRequest) (*dto.ClassResponse, error) {
	if !p.IsAdmin() {
		return nil, ErrUnauthorized
	}

	t := model.ClassType(req.Type)
	if !t.Valid() {
		return nil, ErrInvalidClassType
	}

	// 先查重以给出清晰的冲突信息；并发竞争由唯一约束兜底
	if _, err := s.repo.Class.GetByType(ctx, t); err == nil {
		return nil, ErrClassTypeExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询班级失败", zap.String("type", req.Type), zap.Error(err))
		return nil, err
	}

	class := &model.Class{
		Type:        t,
		Name:        strings.TrimSpace(req.Name),
		Description: normalizeDescription(req.Description),
	}

	if err := s.repo.Class.Create(ctx, class); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrClassTypeExists
		}
		s.logger.Error("创建班级失败", zap.String("type", req.Type), zap.Error(err))
		return nil, err
	}

	return &dto.ClassResponse{
		ID:          class.ClassID,
		Type:        string(class.Type),
		TypeLabel:   class.Type.Label(),
		Name:        class.Name,
		Description: class.Description,
		CreatedAt:   formatTime(class.CreatedAt),
		UpdatedAt:   formatTime(class.UpdatedAt),
	}, nil
}

// ── 内部辅助方法 ──

// missingClassTypes 课程级别全集与已建档级别的差集，保持课程顺序
func missingClassTypes(present map[model.ClassType]bool) []dto.ClassTypeOption {
	missing := make([]dto.ClassTypeOption, 0, len(model.AllClassTypes))
	for _, t := range model.AllClassTypes {
		if !present[t] {
			missing = append(missing, dto.ClassTypeOption{
				Value: string(t),
				Label: t.Label(),
			})
		}
	}
	return missing
}

// normalizeDescription 空白描述统一收敛为 NULL，下游不会见到空串
func normalizeDescription(d *string) *string {
	if d == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*d)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
