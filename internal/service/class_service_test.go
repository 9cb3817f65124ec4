package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/clareleo/Huaixu/internal/dto"
)

func setupTestClassService() (ClassService, *mockRepos) {
	repo, mocks := newMockRepos()
	return NewClassService(repo, zap.NewNop()), mocks
}

func TestClassService_CreateAndList(t *testing.T) {
	svc, mocks := setupTestClassService()
	ctx := context.Background()

	b, err := svc.Create(ctx, &dto.ClassRequest{ClassName: "计算机2班", Grade: "2023", Major: "计算机"})
	if err != nil {
		t.Fatalf("期望成功, 实际: %v", err)
	}
	if _, err := svc.Create(ctx, &dto.ClassRequest{ClassName: "计算机1班"}); err != nil {
		t.Fatalf("期望成功, 实际: %v", err)
	}
	mocks.addStudent("2023001", "张三", b.ID)

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("期望成功, 实际: %v", err)
	}
	if len(list) != 2 || list[0].ClassName != "计算机1班" {
		t.Fatalf("期望按班级名排序, 实际: %+v", list)
	}
	if list[1].StudentCount != 1 {
		t.Errorf("期望计算机2班有 1 名学生, 实际: %d", list[1].StudentCount)
	}
}

func TestClassService_Update(t *testing.T) {
	svc, mocks := setupTestClassService()
	mocks.addClass(1, "旧名称")

	resp, err := svc.Update(context.Background(), 1, &dto.ClassRequest{ClassName: "新名称", Major: "软件工程"})
	if err != nil {
		t.Fatalf("期望成功, 实际: %v", err)
	}
	if resp.ClassName != "新名称" || resp.Major != "软件工程" {
		t.Errorf("期望已更新, 实际: %+v", resp)
	}

	if _, err := svc.Update(context.Background(), 9, &dto.ClassRequest{ClassName: "x"}); !errors.Is(err, ErrClassNotFound) {
		t.Errorf("期望 ErrClassNotFound, 实际: %v", err)
	}
}

func TestClassService_Delete_HasStudents(t *testing.T) {
	svc, mocks := setupTestClassService()
	mocks.addClass(1, "计算机1班")
	mocks.addStudent("2023001", "张三", 1)

	err := svc.Delete(context.Background(), 1)
	if !errors.Is(err, ErrClassHasStudents) {
		t.Errorf("期望 ErrClassHasStudents, 实际: %v", err)
	}
	if _, ok := mocks.class.classes[1]; !ok {
		t.Error("期望班级未被删除")
	}
}

func TestClassService_Delete_Success(t *testing.T) {
	svc, mocks := setupTestClassService()
	mocks.addClass(1, "计算机1班")

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("期望成功, 实际: %v", err)
	}
	if err := svc.Delete(context.Background(), 1); !errors.Is(err, ErrClassNotFound) {
		t.Errorf("期望 ErrClassNotFound, 实际: %v", err)
	}
}
