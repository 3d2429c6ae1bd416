package repository

import (
	"context"

	"gorm.io/gorm"

	"eduhub/backend/internal/model"
)

// TopicRepository 课题数据访问接口
type TopicRepository interface {
	Create(ctx context.Context, topic *model.Topic) error
	// GetByID 单条查询，附带章节与班级上下文
	GetByID(ctx context.Context, id string) (*model.Topic, error)
	Update(ctx context.Context, topic *model.Topic) error
	// List 全量课题列表，按（班级课程序，章节展示序，课题展示序）升序
	List(ctx context.Context) ([]model.Topic, error)
	// CountByChapter 各章节的课题计数
	CountByChapter(ctx context.Context) (map[string]int64, error)
	Count(ctx context.Context) (int64, error)
}

// topicRepo TopicRepository 的 GORM 实现
type topicRepo struct {
	db *gorm.DB
}

// NewTopicRepo 创建 TopicRepository 实例
func NewTopicRepo(db *gorm.DB) TopicRepository {
	return &topicRepo{db: db}
}

func (r *topicRepo) Create(ctx context.Context, topic *model.Topic) error {
	return r.db.WithContext(ctx).Create(topic).Error
}

func (r *topicRepo) GetByID(ctx context.Context, id string) (*model.Topic, error) {
	var topic model.Topic
	err := r.db.WithContext(ctx).
		Preload("Chapter").
		Preload("Chapter.Class").
		Where("topic_id = ?", id).
		First(&topic).Error
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepo) Update(ctx context.Context, topic *model.Topic) error {
	return r.db.WithContext(ctx).Save(topic).Error
}

func (r *topicRepo) List(ctx context.Context) ([]model.Topic, error) {
	var topics []model.Topic
	err := r.db.WithContext(ctx).
		Joins("JOIN chapters ON chapters.chapter_id = topics.chapter_id").
		Joins("JOIN classes ON classes.class_id = chapters.class_id").
		Order("classes.type ASC, chapters.display_order ASC, topics.display_order ASC").
		Preload("Chapter").
		Preload("Chapter.Class").
		Find(&topics).Error
	if err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *topicRepo) CountByChapter(ctx context.Context) (map[string]int64, error) {
	type row struct {
		ChapterID string
		N         int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Topic{}).
		Select("chapter_id, COUNT(*) AS n").
		Group("chapter_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.ChapterID] = rw.N
	}
	return counts, nil
}

func (r *topicRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Topic{}).Count(&n).Error
	return n, err
}
