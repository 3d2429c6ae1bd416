package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"eduhub/backend/internal/model"
	"eduhub/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoClasses = errors.New("No classes to export")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 当前仅实现课程大纲导出为 Excel (.xlsx)
//   - 每个班级一个 Sheet，行为该班级的章节/课题（按展示序）
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
type ExportService interface {
	// ExportCurriculum 导出课程大纲，要求 ADMIN 主体
	ExportCurriculum(ctx context.Context, p model.Principal) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportCurriculum(ctx context.Context, p model.Principal) (*bytes.Buffer, string, error) {
	if !p.IsAdmin() {
		return nil, "", ErrUnauthorized
	}

	classes, err := s.repo.Class.ListWithChapters(ctx)
	if err != nil {
		s.logger.Error("查询班级列表失败", zap.Error(err))
		return nil, "", err
	}
	if len(classes) == 0 {
		return nil, "", ErrExportNoClasses
	}

	topics, err := s.repo.Topic.List(ctx)
	if err != nil {
		s.logger.Error("查询课题列表失败", zap.Error(err))
		return nil, "", err
	}

	// 课题按章节分桶（List 已按展示序排列，分桶后顺序保持）
	topicsByChapter := make(map[string][]model.Topic)
	for _, t := range topics {
		topicsByChapter[t.ChapterID] = append(topicsByChapter[t.ChapterID], t)
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		s.logger.Error("创建表头样式失败", zap.Error(err))
		return nil, "", err
	}

	for i, class := range classes {
		sheet := sheetName(class.Type)
		if i == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				s.logger.Error("创建 Sheet 失败", zap.String("sheet", sheet), zap.Error(err))
				return nil, "", err
			}
		}

		f.SetCellValue(sheet, "A1", "Chapter")
		f.SetCellValue(sheet, "B1", "Topic")
		f.SetCellValue(sheet, "C1", "Order")
		f.SetCellStyle(sheet, "A1", "C1", headerStyle)
		f.SetColWidth(sheet, "A", "B", 40)

		row := 2
		for _, chapter := range class.Chapters {
			chapterTopics := topicsByChapter[chapter.ChapterID]
			if len(chapterTopics) == 0 {
				f.SetCellValue(sheet, fmt.Sprintf("A%d", row), chapter.Title)
				row++
				continue
			}
			for _, topic := range chapterTopics {
				f.SetCellValue(sheet, fmt.Sprintf("A%d", row), chapter.Title)
				f.SetCellValue(sheet, fmt.Sprintf("B%d", row), topic.Title)
				f.SetCellValue(sheet, fmt.Sprintf("C%d", row), topic.DisplayOrder)
				row++
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 文件失败", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("curriculum_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// sheetName Sheet 名使用课程展示名（Excel 限制 31 字符内，当前枚举均满足）
func sheetName(t model.ClassType) string {
	return t.Label()
}
