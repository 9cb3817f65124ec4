package main

import (
	"context"
	"fmt"
	"os"
)

// importStudents 导入学生；重复学号跳过，已导入的行不回滚
func (cli *commandLine) importStudents(path string, classID uint) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("打开文件失败: %w", err)
	}
	defer f.Close()

	rows, err := cli.svc.Student.ParseImportFile(f)
	if err != nil {
		return err
	}
	var class *uint
	if classID != 0 {
		class = &classID
	}
	result, err := cli.svc.Student.ImportStudents(context.Background(), rows, class)
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "导入完成: 共 %d 行, 成功 %d, 重复 %d, 失败 %d\n",
		result.Total, result.Success, result.Duplicate, result.Failed)
	for _, e := range result.Errors {
		fmt.Fprintf(cli.out, "  第 %d 行: %s\n", e.Row, e.Reason)
	}
	return nil
}
