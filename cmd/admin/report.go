package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/clareleo/Huaixu/internal/dto"
)

// exportReport 导出成绩报表到 outDir，并在终端输出统计行
func (cli *commandLine) exportReport(courseID, classID uint, term, outDir string) error {
	req := &dto.ReportRequest{CourseID: courseID, ClassID: classID, Term: term}
	if term != "" && !dto.IsTerm(term) {
		return fmt.Errorf("学期格式错误，应为 YYYY-YYYY-N")
	}

	ctx := context.Background()
	report, err := cli.svc.Report.Generate(ctx, req)
	if err != nil {
		return err
	}
	buf, filename, err := cli.svc.Export.ExportReport(ctx, req)
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, filename)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("写入文件失败: %w", err)
	}
	fmt.Fprintf(cli.out, "已导出 %s\n%s\n", path, report.StatsText)
	return nil
}
