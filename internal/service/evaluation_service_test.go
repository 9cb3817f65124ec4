package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/model"
)

func TestEvaluationService(t *testing.T) {
	repo, mocks := newMockRepos()
	svc := NewEvaluationService(repo, zap.NewNop())
	ctx := context.Background()

	teacher := createTestUser(mocks, "teacher1", "secret12", model.RoleTeacher)
	mocks.addStudent("2023001", "张三", 0)

	created, err := svc.Create(ctx, &dto.CreateEvaluationRequest{
		StudentID: "2023001", EvalType: "期中评语", EvalContent: "学习认真", Score: floatPtr(95),
	}, teacher.UserID)
	if err != nil {
		t.Fatalf("期望成功, 实际: %v", err)
	}
	if created.EvaluatorID == nil || *created.EvaluatorID != teacher.UserID || created.EvaluatorName != "测试用户" {
		t.Errorf("期望评价人为当前用户, 实际: %+v", created)
	}

	list, err := svc.ListByStudent(ctx, "2023001")
	if err != nil || len(list) != 1 {
		t.Fatalf("期望 1 条评价, 实际: %v %+v", err, list)
	}

	if _, err := svc.Create(ctx, &dto.CreateEvaluationRequest{StudentID: "nobody", EvalType: "x"}, teacher.UserID); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("期望 ErrStudentNotFound, 实际: %v", err)
	}
	if _, err := svc.ListByStudent(ctx, "nobody"); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("期望 ErrStudentNotFound, 实际: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("期望成功, 实际: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrEvaluationNotFound) {
		t.Errorf("期望 ErrEvaluationNotFound, 实际: %v", err)
	}
}
