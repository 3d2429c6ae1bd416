package repository

import (
	"context"

	"gorm.io/gorm"

	"eduhub/backend/internal/model"
)

// ReplyRepository 回复数据访问接口
type ReplyRepository interface {
	Create(ctx context.Context, reply *model.Reply) error
	// CountByPost 各帖子的回复计数
	CountByPost(ctx context.Context) (map[string]int64, error)
}

// replyRepo ReplyRepository 的 GORM 实现
type replyRepo struct {
	db *gorm.DB
}

// NewReplyRepo 创建 ReplyRepository 实例
func NewReplyRepo(db *gorm.DB) ReplyRepository {
	return &replyRepo{db: db}
}

func (r *replyRepo) Create(ctx context.Context, reply *model.Reply) error {
	return r.db.WithContext(ctx).Create(reply).Error
}

func (r *replyRepo) CountByPost(ctx context.Context) (map[string]int64, error) {
	type row struct {
		PostID string
		N      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Reply{}).
		Select("post_id, COUNT(*) AS n").
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.PostID] = rw.N
	}
	return counts, nil
}
