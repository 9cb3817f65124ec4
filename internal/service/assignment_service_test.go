package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/model"
)

func setupTestAssignmentService(t *testing.T) (AssignmentService, *mockRepos, string) {
	t.Helper()
	repo, mocks := newMockRepos()
	mocks.addClass(1, "计算机1班")
	mocks.addCourse(1, "高等数学")
	mocks.addStudent("2023001", "张三", 1)
	mocks.addStudent("2023002", "李四", 1)
	mocks.addStudent("2023003", "王五", 1)
	mocks.link(1, 1, "2023-2024-1")

	cfg := testConfig()
	cfg.Assignment.RequireExistingDir = true
	return NewAssignmentService(cfg, repo, zap.NewNop()), mocks, t.TempDir()
}

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatalf("写入文件失败: %v", err)
	}
}

func TestAssignmentService_Create(t *testing.T) {
	svc, _, dir := setupTestAssignmentService(t)
	ctx := context.Background()

	folder, err := svc.Create(ctx, &dto.CreateFolderRequest{FolderPath: dir, CourseID: 1, Description: "第一次作业"})
	if err != nil {
		t.Fatalf("期望成功, 实际: %v", err)
	}
	if folder.CourseName != "高等数学" {
		t.Errorf("期望返回课程名, 实际: %+v", folder)
	}

	if _, err := svc.Create(ctx, &dto.CreateFolderRequest{FolderPath: dir + string(filepath.Separator), CourseID: 1}); !errors.Is(err, ErrFolderExists) {
		t.Errorf("期望 ErrFolderExists, 实际: %v", err)
	}

	missing := filepath.Join(dir, "missing")
	if _, err := svc.Create(ctx, &dto.CreateFolderRequest{FolderPath: missing, CourseID: 1}); !errors.Is(err, ErrFolderPathInvalid) {
		t.Errorf("期望 ErrFolderPathInvalid, 实际: %v", err)
	}

	sub := filepath.Join(dir, "hw2")
	_ = os.Mkdir(sub, 0o755)
	if _, err := svc.Create(ctx, &dto.CreateFolderRequest{FolderPath: sub, CourseID: 9}); !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("期望 ErrCourseNotFound, 实际: %v", err)
	}
}

func TestAssignmentService_Detail(t *testing.T) {
	svc, _, dir := setupTestAssignmentService(t)
	ctx := context.Background()
	writeFile(t, dir, "2023001_第一次作业.docx")
	writeFile(t, dir, "说明.txt")

	folder, _ := svc.Create(ctx, &dto.CreateFolderRequest{FolderPath: dir, CourseID: 1})

	detail, err := svc.Detail(ctx, folder.ID)
	if err != nil {
		t.Fatalf("期望成功, 实际: %v", err)
	}
	if !detail.Exists || detail.Total != 3 || detail.Submitted != 1 {
		t.Errorf("期望 3 名学生中 1 人已提交, 实际: %+v", detail)
	}
	first := detail.Students[0]
	if first.Status != model.SubmissionSubmitted || len(first.Files) != 1 {
		t.Errorf("期望按学号匹配到文件, 实际: %+v", first)
	}
	if detail.Students[1].Status != model.SubmissionNotSubmitted {
		t.Errorf("期望无文件学生未提交, 实际: %+v", detail.Students[1])
	}
}

func TestAssignmentService_Scan(t *testing.T) {
	svc, mocks, dir := setupTestAssignmentService(t)
	ctx := context.Background()
	writeFile(t, dir, "2023001_hw.pdf")

	folder, _ := svc.Create(ctx, &dto.CreateFolderRequest{FolderPath: dir, CourseID: 1})

	res, err := svc.Scan(ctx, folder.ID)
	if err != nil {
		t.Fatalf("期望成功, 实际: %v", err)
	}
	if res.Changed || res.NewRecords != 1 {
		t.Errorf("期望首次扫描无变化但补登 1 条, 实际: %+v", res)
	}
	sub := mocks.assignment.subs[subKey(folder.ID, "2023001")]
	if sub == nil || sub.Status != model.SubmissionSubmitted || sub.SubmitTime == nil || sub.FileName != "2023001_hw.pdf" {
		t.Fatalf("期望登记提交记录, 实际: %+v", sub)
	}

	writeFile(t, dir, "2023002_hw.pdf")
	res, err = svc.Scan(ctx, folder.ID)
	if err != nil {
		t.Fatalf("期望成功, 实际: %v", err)
	}
	if !res.Changed || len(res.Added) != 1 || res.Added[0] != "2023002_hw.pdf" || res.NewRecords != 1 {
		t.Errorf("期望检测到新增文件并补登, 实际: %+v", res)
	}

	_ = os.Remove(filepath.Join(dir, "2023001_hw.pdf"))
	res, _ = svc.Scan(ctx, folder.ID)
	if !res.Changed || len(res.Removed) != 1 || res.NewRecords != 0 {
		t.Errorf("期望检测到删除文件, 实际: %+v", res)
	}
	if len(mocks.assignment.subs) != 2 {
		t.Errorf("期望删除文件不影响已有记录, 实际: %d", len(mocks.assignment.subs))
	}
}

func TestAssignmentService_Grade(t *testing.T) {
	svc, mocks, dir := setupTestAssignmentService(t)
	ctx := context.Background()
	writeFile(t, dir, "2023001_hw.pdf")
	folder, _ := svc.Create(ctx, &dto.CreateFolderRequest{FolderPath: dir, CourseID: 1})
	_, _ = svc.Scan(ctx, folder.ID)

	if err := svc.Grade(ctx, folder.ID, &dto.GradeSubmissionRequest{StudentID: "2023001", Score: floatPtr(92), Feedback: "不错"}); err != nil {
		t.Fatalf("期望成功, 实际: %v", err)
	}
	sub := mocks.assignment.subs[subKey(folder.ID, "2023001")]
	if sub.Status != model.SubmissionGraded || sub.Score == nil || *sub.Score != 92 || sub.FileName != "2023001_hw.pdf" {
		t.Errorf("期望更新为已批改, 实际: %+v", sub)
	}

	if err := svc.Grade(ctx, folder.ID, &dto.GradeSubmissionRequest{StudentID: "2023003", Score: floatPtr(60)}); err != nil {
		t.Fatalf("期望成功, 实际: %v", err)
	}
	manual := mocks.assignment.subs[subKey(folder.ID, "2023003")]
	if manual == nil || manual.FileName != manualSubmissionFile || manual.Status != model.SubmissionGraded {
		t.Errorf("期望无提交时手动录入, 实际: %+v", manual)
	}

	if err := svc.Grade(ctx, 99, &dto.GradeSubmissionRequest{StudentID: "2023001", Score: floatPtr(1)}); !errors.Is(err, ErrFolderNotFound) {
		t.Errorf("期望 ErrFolderNotFound, 实际: %v", err)
	}
	if err := svc.Grade(ctx, folder.ID, &dto.GradeSubmissionRequest{StudentID: "nobody", Score: floatPtr(1)}); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("期望 ErrStudentNotFound, 实际: %v", err)
	}
}

func TestAssignmentService_Delete(t *testing.T) {
	svc, mocks, dir := setupTestAssignmentService(t)
	ctx := context.Background()
	writeFile(t, dir, "2023001_hw.pdf")
	folder, _ := svc.Create(ctx, &dto.CreateFolderRequest{FolderPath: dir, CourseID: 1})
	_, _ = svc.Scan(ctx, folder.ID)

	if err := svc.Delete(ctx, folder.ID); err != nil {
		t.Fatalf("期望成功, 实际: %v", err)
	}
	if len(mocks.assignment.subs) != 0 {
		t.Errorf("期望提交记录随文件夹删除")
	}
	if err := svc.Delete(ctx, folder.ID); !errors.Is(err, ErrFolderNotFound) {
		t.Errorf("期望 ErrFolderNotFound, 实际: %v", err)
	}
	list, _ := svc.List(ctx, nil)
	if len(list) != 0 {
		t.Errorf("期望列表为空, 实际: %+v", list)
	}
}
