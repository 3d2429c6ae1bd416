package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"eduhub/backend/internal/model"
)

// classTypeOrder 课程级别在枚举中的序号，用于模拟数据库的枚举排序
func classTypeOrder(t model.ClassType) int {
	for i, ct := range model.AllClassTypes {
		if ct == t {
			return i
		}
	}
	return len(model.AllClassTypes)
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	n     int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.UserID == "" {
		m.n++
		user.UserID = fmt.Sprintf("user-%03d", m.n)
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := m.users[user.UserID]; !ok {
		return gorm.ErrRecordNotFound
	}
	user.UpdatedAt = time.Now()
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) CountByRole(_ context.Context, role model.Role) (int64, error) {
	var count int64
	for _, u := range m.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

// ── Mock ClassRepository ──

// mockClassRepo 持有章节 Mock 的引用以模拟 Preload
type mockClassRepo struct {
	classes  map[string]*model.Class
	chapters *mockChapterRepo
	n        int
}

func newMockClassRepo() *mockClassRepo {
	return &mockClassRepo{classes: make(map[string]*model.Class)}
}

func (m *mockClassRepo) Create(_ context.Context, class *model.Class) error {
	for _, c := range m.classes {
		if c.Type == class.Type {
			return gorm.ErrDuplicatedKey
		}
	}
	if class.ClassID == "" {
		m.n++
		class.ClassID = fmt.Sprintf("class-%03d", m.n)
	}
	class.CreatedAt = time.Now()
	class.UpdatedAt = class.CreatedAt
	m.classes[class.ClassID] = class
	return nil
}

func (m *mockClassRepo) GetByID(_ context.Context, id string) (*model.Class, error) {
	if c, ok := m.classes[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassRepo) GetByType(_ context.Context, t model.ClassType) (*model.Class, error) {
	for _, c := range m.classes {
		if c.Type == t {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassRepo) List(_ context.Context) ([]model.Class, error) {
	result := make([]model.Class, 0, len(m.classes))
	for _, c := range m.classes {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool {
		return classTypeOrder(result[i].Type) < classTypeOrder(result[j].Type)
	})
	return result, nil
}

func (m *mockClassRepo) ListWithChapters(ctx context.Context) ([]model.Class, error) {
	result, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range result {
		result[i].Chapters = m.orderedChapters(result[i].ClassID)
	}
	return result, nil
}

func (m *mockClassRepo) GetByTypeWithChapters(ctx context.Context, t model.ClassType) (*model.Class, error) {
	class, err := m.GetByType(ctx, t)
	if err != nil {
		return nil, err
	}
	copied := *class
	copied.Chapters = m.orderedChapters(class.ClassID)
	return &copied, nil
}

func (m *mockClassRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.classes)), nil
}

func (m *mockClassRepo) orderedChapters(classID string) []model.Chapter {
	if m.chapters == nil {
		return nil
	}
	chapters, _ := m.chapters.ListByClass(context.Background(), classID)
	return chapters
}

// ── Mock ChapterRepository ──

// mockChapterRepo 持有班级 Mock 的引用以模拟跨表排序与 Preload
type mockChapterRepo struct {
	chapters map[string]*model.Chapter
	classes  *mockClassRepo
	n        int
}

func newMockChapterRepo() *mockChapterRepo {
	return &mockChapterRepo{chapters: make(map[string]*model.Chapter)}
}

func (m *mockChapterRepo) Create(_ context.Context, chapter *model.Chapter) error {
	if chapter.ChapterID == "" {
		m.n++
		chapter.ChapterID = fmt.Sprintf("chapter-%03d", m.n)
	}
	chapter.CreatedAt = time.Now()
	chapter.UpdatedAt = chapter.CreatedAt
	m.chapters[chapter.ChapterID] = chapter
	return nil
}

func (m *mockChapterRepo) GetByID(_ context.Context, id string) (*model.Chapter, error) {
	ch, ok := m.chapters[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *ch
	if m.classes != nil {
		if c, ok := m.classes.classes[ch.ClassID]; ok {
			copied.Class = c
		}
	}
	return &copied, nil
}

func (m *mockChapterRepo) List(_ context.Context) ([]model.Chapter, error) {
	result := make([]model.Chapter, 0, len(m.chapters))
	for _, ch := range m.chapters {
		copied := *ch
		if m.classes != nil {
			if c, ok := m.classes.classes[ch.ClassID]; ok {
				copied.Class = c
			}
		}
		result = append(result, copied)
	}
	sort.Slice(result, func(i, j int) bool {
		oi, oj := m.classOrder(result[i].ClassID), m.classOrder(result[j].ClassID)
		if oi != oj {
			return oi < oj
		}
		return result[i].DisplayOrder < result[j].DisplayOrder
	})
	return result, nil
}

func (m *mockChapterRepo) ListByClass(_ context.Context, classID string) ([]model.Chapter, error) {
	var result []model.Chapter
	for _, ch := range m.chapters {
		if ch.ClassID == classID {
			result = append(result, *ch)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DisplayOrder < result[j].DisplayOrder
	})
	return result, nil
}

func (m *mockChapterRepo) CountByClass(_ context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, ch := range m.chapters {
		counts[ch.ClassID]++
	}
	return counts, nil
}

func (m *mockChapterRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.chapters)), nil
}

func (m *mockChapterRepo) classOrder(classID string) int {
	if m.classes != nil {
		if c, ok := m.classes.classes[classID]; ok {
			return classTypeOrder(c.Type)
		}
	}
	return len(model.AllClassTypes)
}

// ── Mock TopicRepository ──

type mockTopicRepo struct {
	topics   map[string]*model.Topic
	chapters *mockChapterRepo
	n        int
}

func newMockTopicRepo() *mockTopicRepo {
	return &mockTopicRepo{topics: make(map[string]*model.Topic)}
}

func (m *mockTopicRepo) Create(_ context.Context, topic *model.Topic) error {
	if topic.TopicID == "" {
		m.n++
		topic.TopicID = fmt.Sprintf("topic-%03d", m.n)
	}
	topic.CreatedAt = time.Now()
	topic.UpdatedAt = topic.CreatedAt
	m.topics[topic.TopicID] = topic
	return nil
}

func (m *mockTopicRepo) GetByID(ctx context.Context, id string) (*model.Topic, error) {
	topic, ok := m.topics[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *topic
	if m.chapters != nil {
		if ch, err := m.chapters.GetByID(ctx, topic.ChapterID); err == nil {
			copied.Chapter = ch
		}
	}
	return &copied, nil
}

func (m *mockTopicRepo) Update(_ context.Context, topic *model.Topic) error {
	if _, ok := m.topics[topic.TopicID]; !ok {
		return gorm.ErrRecordNotFound
	}
	topic.UpdatedAt = time.Now()
	stored := *topic
	stored.Chapter = nil
	m.topics[topic.TopicID] = &stored
	return nil
}

func (m *mockTopicRepo) List(ctx context.Context) ([]model.Topic, error) {
	result := make([]model.Topic, 0, len(m.topics))
	for id := range m.topics {
		topic, _ := m.GetByID(ctx, id)
		result = append(result, *topic)
	}
	sort.Slice(result, func(i, j int) bool {
		ci, cj := result[i].Chapter, result[j].Chapter
		if ci != nil && cj != nil {
			oi, oj := m.chapters.classOrder(ci.ClassID), m.chapters.classOrder(cj.ClassID)
			if oi != oj {
				return oi < oj
			}
			if ci.DisplayOrder != cj.DisplayOrder {
				return ci.DisplayOrder < cj.DisplayOrder
			}
		}
		return result[i].DisplayOrder < result[j].DisplayOrder
	})
	return result, nil
}

func (m *mockTopicRepo) CountByChapter(_ context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, topic := range m.topics {
		counts[topic.ChapterID]++
	}
	return counts, nil
}

func (m *mockTopicRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.topics)), nil
}

// ── Mock PostRepository ──

type mockPostRepo struct {
	posts   map[string]*model.Post
	users   *mockUserRepo
	replies *mockReplyRepo
	n       int
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[string]*model.Post)}
}

func (m *mockPostRepo) Create(_ context.Context, post *model.Post) error {
	if post.PostID == "" {
		m.n++
		post.PostID = fmt.Sprintf("post-%03d", m.n)
	}
	// 保证创建顺序可被按时间排序还原
	post.CreatedAt = time.Now().Add(time.Duration(m.n) * time.Millisecond)
	post.UpdatedAt = post.CreatedAt
	m.posts[post.PostID] = post
	return nil
}

func (m *mockPostRepo) GetByID(_ context.Context, id string) (*model.Post, error) {
	post, ok := m.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *post
	m.attachAuthor(&copied)
	if m.replies != nil {
		copied.Replies = m.replies.orderedByPost(id, m.users)
	}
	return &copied, nil
}

func (m *mockPostRepo) List(_ context.Context) ([]model.Post, error) {
	result := make([]model.Post, 0, len(m.posts))
	for _, post := range m.posts {
		copied := *post
		m.attachAuthor(&copied)
		result = append(result, copied)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockPostRepo) ListRecent(ctx context.Context, limit int) ([]model.Post, error) {
	result, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockPostRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.posts)), nil
}

func (m *mockPostRepo) attachAuthor(post *model.Post) {
	if m.users == nil {
		return
	}
	if u, ok := m.users.users[post.AuthorID]; ok {
		post.Author = u
	}
}

// ── Mock ReplyRepository ──

type mockReplyRepo struct {
	replies map[string]*model.Reply
	n       int
}

func newMockReplyRepo() *mockReplyRepo {
	return &mockReplyRepo{replies: make(map[string]*model.Reply)}
}

func (m *mockReplyRepo) Create(_ context.Context, reply *model.Reply) error {
	if reply.ReplyID == "" {
		m.n++
		reply.ReplyID = fmt.Sprintf("reply-%03d", m.n)
	}
	reply.CreatedAt = time.Now().Add(time.Duration(m.n) * time.Millisecond)
	reply.UpdatedAt = reply.CreatedAt
	m.replies[reply.ReplyID] = reply
	return nil
}

func (m *mockReplyRepo) CountByPost(_ context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, r := range m.replies {
		counts[r.PostID]++
	}
	return counts, nil
}

func (m *mockReplyRepo) orderedByPost(postID string, users *mockUserRepo) []model.Reply {
	var result []model.Reply
	for _, r := range m.replies {
		if r.PostID != postID {
			continue
		}
		copied := *r
		if users != nil {
			if u, ok := users.users[r.AuthorID]; ok {
				copied.Author = u
			}
		}
		result = append(result, copied)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}
