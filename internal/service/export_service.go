package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/model"
	"github.com/clareleo/Huaixu/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ReportHeaders 成绩报表导出的固定表头
var ReportHeaders = []string{"学号", "姓名", "平时成绩", "期中成绩", "期末成绩", "课堂成绩", "总成绩", "等级", "排名"}

var studentHeaders = []string{"学号", "姓名", "性别", "出生日期", "班级", "入学日期", "联系方式"}

// ExportService 导出业务接口
//
// 导出以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
type ExportService interface {
	// ExportReport 导出成绩报表，文件名为 <课程>_<班级>_<学期>_成绩报表.xlsx
	ExportReport(ctx context.Context, req *dto.ReportRequest) (*bytes.Buffer, string, error)
	// ExportStudents 按筛选条件导出学生名单
	ExportStudents(ctx context.Context, req *dto.StudentListRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	report ReportService
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, report ReportService, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, report: report, logger: logger}
}

func (s *exportService) ExportReport(ctx context.Context, req *dto.ReportRequest) (*bytes.Buffer, string, error) {
	report, err := s.report.Generate(ctx, req)
	if err != nil {
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(report.Rows))
	for _, r := range report.Rows {
		rows = append(rows, []interface{}{
			r.StudentID, r.Name,
			r.Daily, r.Midterm, r.Final, r.Classroom,
			r.Composite, r.Band.Label(), r.Rank,
		})
	}

	buf, err := s.writeSheet("成绩报表", ReportHeaders, rows, []float64{14, 12, 10, 10, 10, 10, 10, 8, 8})
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s_%s_%s_成绩报表.xlsx", report.CourseName, report.ClassName, report.Term)
	s.logger.Info("导出成绩报表", zap.String("filename", filename), zap.Int("rows", len(rows)))
	return buf, filename, nil
}

func (s *exportService) ExportStudents(ctx context.Context, req *dto.StudentListRequest) (*bytes.Buffer, string, error) {
	students, err := s.repo.Student.ListAll(ctx, repository.StudentFilter{
		Keyword: req.Keyword,
		ClassID: req.ClassID,
	})
	if err != nil {
		s.logger.Error("查询学生失败", zap.Error(err))
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(students))
	for _, st := range students {
		className := ""
		if st.Class != nil {
			className = st.Class.ClassName
		}
		rows = append(rows, []interface{}{
			st.StudentID, st.Name, model.GenderLabel(st.Gender),
			st.BirthDate, className, st.AdmissionDate, st.Contact,
		})
	}

	buf, err := s.writeSheet("学生名单", studentHeaders, rows, []float64{14, 12, 6, 12, 16, 12, 16})
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("导出学生名单", zap.Int("rows", len(rows)))
	return buf, "学生名单.xlsx", nil
}

// writeSheet 生成单工作表的 xlsx：首行为加粗表头，数据区带边框
func (s *exportService) writeSheet(sheetName string, headers []string, rows [][]interface{}, widths []float64) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	border := []excelize.Border{
		{Type: "left", Color: "#000000", Style: 1},
		{Type: "top", Color: "#000000", Style: 1},
		{Type: "right", Color: "#000000", Style: 1},
		{Type: "bottom", Color: "#000000", Style: 1},
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	bodyStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})

	for i, w := range widths {
		col := colName(i)
		f.SetColWidth(sheetName, col, col, w)
	}

	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		s.logger.Error("写入表头失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	last := colName(len(headers) - 1)
	f.SetCellStyle(sheetName, "A1", cell(last, 1), headerStyle)

	for i := range rows {
		if err := f.SetSheetRow(sheetName, cell("A", i+2), &rows[i]); err != nil {
			s.logger.Error("写入数据行失败", zap.Int("row", i+2), zap.Error(err))
			return nil, ErrExportGenerateFail
		}
	}
	if len(rows) > 0 {
		f.SetCellStyle(sheetName, "A2", cell(last, len(rows)+1), bodyStyle)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	return buf, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
