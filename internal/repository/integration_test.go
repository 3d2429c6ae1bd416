//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eduhub/backend/internal/model"
	"eduhub/backend/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=eduhub password=eduhub_password dbname=eduhub_test sslmode=disable TimeZone=UTC"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	// AutoMigrate 不会创建 Postgres 枚举类型，先手工补齐
	// 注意 class_type 的声明顺序即课程顺序，ORDER BY type 依赖它
	stmts := []string{
		`DO $$ BEGIN
			CREATE TYPE user_role AS ENUM ('ADMIN', 'STUDENT');
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
		`DO $$ BEGIN
			CREATE TYPE class_type AS ENUM
				('CLASS_5','CLASS_6','CLASS_7','CLASS_8','CLASS_9','CLASS_10','SSC_PREP','GK');
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	}
	for _, stmt := range stmts {
		if err := testDB.Exec(stmt).Error; err != nil {
			fmt.Fprintf(os.Stderr, "准备枚举类型失败: %v\n", err)
			os.Exit(1)
		}
	}

	err = testDB.AutoMigrate(
		&model.User{},
		&model.Class{},
		&model.Chapter{},
		&model.Topic{},
		&model.Post{},
		&model.Reply{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate 失败: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// setupTestData 创建一个班级和章节并返回清理函数
func setupTestData(t *testing.T) (class *model.Class, chapter *model.Chapter, cleanup func()) {
	t.Helper()
	ctx := context.Background()

	// 每个用例独占一个 class_type，避免唯一约束互相干扰
	class = &model.Class{
		Type: pickFreeClassType(t),
		Name: fmt.Sprintf("测试班级-%d", time.Now().UnixNano()),
	}
	if err := testDB.WithContext(ctx).Create(class).Error; err != nil {
		t.Fatalf("创建班级失败: %v", err)
	}

	chapter = &model.Chapter{
		ClassID:      class.ClassID,
		Title:        "测试章节",
		DisplayOrder: 1,
	}
	if err := testDB.WithContext(ctx).Create(chapter).Error; err != nil {
		t.Fatalf("创建章节失败: %v", err)
	}

	cleanup = func() {
		testDB.WithContext(ctx).Where("class_id = ?", class.ClassID).Delete(&model.Chapter{})
		testDB.WithContext(ctx).Where("class_id = ?", class.ClassID).Delete(&model.Class{})
	}
	return class, chapter, cleanup
}

func pickFreeClassType(t *testing.T) model.ClassType {
	t.Helper()
	for _, ct := range model.AllClassTypes {
		var count int64
		testDB.Model(&model.Class{}).Where("type = ?", ct).Count(&count)
		if count == 0 {
			return ct
		}
	}
	t.Fatal("无可用 class_type，测试数据未清理")
	return ""
}

func createTestStudent(t *testing.T) *model.User {
	t.Helper()
	user := &model.User{
		Name:         "测试学生",
		Email:        fmt.Sprintf("student%d@example.com", time.Now().UnixNano()),
		PasswordHash: "$2a$10$placeholder",
		Role:         model.RoleStudent,
	}
	if err := testDB.Create(user).Error; err != nil {
		t.Fatalf("创建学生失败: %v", err)
	}
	return user
}

// ═══════════════════════════════════════════════════════════
// ClassRepository Tests
// ═══════════════════════════════════════════════════════════

func TestClassRepo_DuplicateTypeRejected(t *testing.T) {
	class, _, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewClassRepo(testDB)
	dup := &model.Class{Type: class.Type, Name: "重复级别"}
	err := repo.Create(context.Background(), dup)
	if err == nil {
		testDB.Delete(dup)
		t.Fatal("同一 class_type 第二行应被唯一约束拒绝")
	}
}

func TestClassRepo_ListFollowsCurriculumOrder(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewClassRepo(testDB)

	// CLASS_10 先建档，CLASS_5 后建档：列表仍应 CLASS_5 在前
	c10 := &model.Class{Type: model.ClassType10, Name: "Class Ten"}
	c5 := &model.Class{Type: model.ClassType5, Name: "Class Five"}
	if err := repo.Create(ctx, c10); err != nil {
		t.Fatalf("创建 CLASS_10 失败: %v", err)
	}
	if err := repo.Create(ctx, c5); err != nil {
		t.Fatalf("创建 CLASS_5 失败: %v", err)
	}
	defer func() {
		testDB.Delete(c10)
		testDB.Delete(c5)
	}()

	classes, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}

	pos := map[model.ClassType]int{}
	for i, c := range classes {
		pos[c.Type] = i
	}
	if pos[model.ClassType5] > pos[model.ClassType10] {
		t.Errorf("CLASS_5 应排在 CLASS_10 前（枚举序而非字典序）")
	}
}

// ═══════════════════════════════════════════════════════════
// ChapterRepository Tests
// ═══════════════════════════════════════════════════════════

func TestChapterRepo_ListByClassOrdersByDisplayOrder(t *testing.T) {
	class, first, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	repo := repository.NewChapterRepo(testDB)
	second := &model.Chapter{ClassID: class.ClassID, Title: "插在前面", DisplayOrder: 0}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("创建章节失败: %v", err)
	}

	chapters, err := repo.ListByClass(ctx, class.ClassID)
	if err != nil {
		t.Fatalf("ListByClass 失败: %v", err)
	}
	if len(chapters) != 2 {
		t.Fatalf("期望 2 个章节，实际=%d", len(chapters))
	}
	if chapters[0].ChapterID != second.ChapterID || chapters[1].ChapterID != first.ChapterID {
		t.Errorf("章节应按展示序升序")
	}
}

func TestChapterRepo_CascadeDeleteWithClass(t *testing.T) {
	class, chapter, _ := setupTestData(t)
	ctx := context.Background()

	if err := testDB.WithContext(ctx).Delete(class).Error; err != nil {
		t.Fatalf("删除班级失败: %v", err)
	}

	repo := repository.NewChapterRepo(testDB)
	if _, err := repo.GetByID(ctx, chapter.ChapterID); err != gorm.ErrRecordNotFound {
		t.Errorf("班级删除后其章节应级联消失，实际: %v", err)
	}
}

// ═══════════════════════════════════════════════════════════
// TopicRepository Tests
// ═══════════════════════════════════════════════════════════

func TestTopicRepo_GetByIDPreloadsChapterAndClass(t *testing.T) {
	class, chapter, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	repo := repository.NewTopicRepo(testDB)
	topic := &model.Topic{
		ChapterID:    chapter.ChapterID,
		Title:        "测试课题",
		Content:      "<p>正文</p>",
		DisplayOrder: 1,
	}
	if err := repo.Create(ctx, topic); err != nil {
		t.Fatalf("创建课题失败: %v", err)
	}

	got, err := repo.GetByID(ctx, topic.TopicID)
	if err != nil {
		t.Fatalf("GetByID 失败: %v", err)
	}
	if got.Chapter == nil || got.Chapter.ChapterID != chapter.ChapterID {
		t.Errorf("应预载章节上下文")
	}
	if got.Chapter.Class == nil || got.Chapter.Class.ClassID != class.ClassID {
		t.Errorf("应预载班级上下文")
	}
}

// ═══════════════════════════════════════════════════════════
// Post / Reply Repository Tests
// ═══════════════════════════════════════════════════════════

func TestPostRepo_GetByIDPreloadsRepliesAscending(t *testing.T) {
	ctx := context.Background()
	author := createTestStudent(t)
	defer testDB.Delete(author)

	postRepo := repository.NewPostRepo(testDB)
	replyRepo := repository.NewReplyRepo(testDB)

	post := &model.Post{AuthorID: author.UserID, Title: "线程", Content: "正文"}
	if err := postRepo.Create(ctx, post); err != nil {
		t.Fatalf("创建帖子失败: %v", err)
	}
	defer testDB.Where("post_id = ?", post.PostID).Delete(&model.Reply{})
	defer testDB.Delete(post)

	for _, content := range []string{"第一条", "第二条"} {
		reply := &model.Reply{PostID: post.PostID, AuthorID: author.UserID, Content: content}
		if err := replyRepo.Create(ctx, reply); err != nil {
			t.Fatalf("创建回复失败: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	got, err := postRepo.GetByID(ctx, post.PostID)
	if err != nil {
		t.Fatalf("GetByID 失败: %v", err)
	}
	if got.Author == nil || got.Author.UserID != author.UserID {
		t.Errorf("应预载作者")
	}
	if len(got.Replies) != 2 || got.Replies[0].Content != "第一条" {
		t.Errorf("回复应按时间升序预载: %+v", got.Replies)
	}
	if got.Replies[0].Author == nil {
		t.Errorf("回复应预载其作者")
	}
}

func TestPostRepo_ListRecentLimits(t *testing.T) {
	ctx := context.Background()
	author := createTestStudent(t)
	defer testDB.Delete(author)

	repo := repository.NewPostRepo(testDB)
	var created []*model.Post
	for i := 0; i < 7; i++ {
		post := &model.Post{AuthorID: author.UserID, Title: fmt.Sprintf("帖子 %d", i), Content: "x"}
		if err := repo.Create(ctx, post); err != nil {
			t.Fatalf("创建帖子失败: %v", err)
		}
		created = append(created, post)
		time.Sleep(5 * time.Millisecond)
	}
	defer func() {
		for _, p := range created {
			testDB.Delete(p)
		}
	}()

	recent, err := repo.ListRecent(ctx, 5)
	if err != nil {
		t.Fatalf("ListRecent 失败: %v", err)
	}
	if len(recent) != 5 {
		t.Errorf("期望截断为 5 条，实际=%d", len(recent))
	}
	if len(recent) > 0 && recent[0].PostID != created[len(created)-1].PostID {
		t.Errorf("最新帖子应排在首位")
	}
}
