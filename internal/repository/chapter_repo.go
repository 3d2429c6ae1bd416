package repository

import (
	"context"

	"gorm.io/gorm"

	"eduhub/backend/internal/model"
)

// ChapterRepository 章节数据访问接口
type ChapterRepository interface {
	Create(ctx context.Context, chapter *model.Chapter) error
	GetByID(ctx context.Context, id string) (*model.Chapter, error)
	// List 全量章节列表，按（班级课程序，章节展示序）升序，并预载所属班级
	List(ctx context.Context) ([]model.Chapter, error)
	// ListByClass 指定班级的章节，按展示序升序
	ListByClass(ctx context.Context, classID string) ([]model.Chapter, error)
	// CountByClass 各班级的章节计数
	CountByClass(ctx context.Context) (map[string]int64, error)
	Count(ctx context.Context) (int64, error)
}

// chapterRepo ChapterRepository 的 GORM 实现
type chapterRepo struct {
	db *gorm.DB
}

// NewChapterRepo 创建 ChapterRepository 实例
func NewChapterRepo(db *gorm.DB) ChapterRepository {
	return &chapterRepo{db: db}
}

func (r *chapterRepo) Create(ctx context.Context, chapter *model.Chapter) error {
	return r.db.WithContext(ctx).Create(chapter).Error
}

func (r *chapterRepo) GetByID(ctx context.Context, id string) (*model.Chapter, error) {
	var chapter model.Chapter
	err := r.db.WithContext(ctx).
		Preload("Class").
		Where("chapter_id = ?", id).
		First(&chapter).Error
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (r *chapterRepo) List(ctx context.Context) ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := r.db.WithContext(ctx).
		Joins("JOIN classes ON classes.class_id = chapters.class_id").
		Order("classes.type ASC, chapters.display_order ASC").
		Preload("Class").
		Find(&chapters).Error
	if err != nil {
		return nil, err
	}
	return chapters, nil
}

func (r *chapterRepo) ListByClass(ctx context.Context, classID string) ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := r.db.WithContext(ctx).
		Where("class_id = ?", classID).
		Order("display_order ASC").
		Find(&chapters).Error
	if err != nil {
		return nil, err
	}
	return chapters, nil
}

func (r *chapterRepo) CountByClass(ctx context.Context) (map[string]int64, error) {
	type row struct {
		ClassID string
		N       int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Chapter{}).
		Select("class_id, COUNT(*) AS n").
		Group("class_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.ClassID] = rw.N
	}
	return counts, nil
}

func (r *chapterRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Chapter{}).Count(&n).Error
	return n, err
}
