package seed

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/clareleo/Huaixu/config"
	"github.com/clareleo/Huaixu/internal/model"
	"github.com/clareleo/Huaixu/internal/repository"
	"github.com/clareleo/Huaixu/pkg/database"
)

func newTestRepo(t *testing.T) *repository.Repository {
	t.Helper()

	db, err := database.NewDB(&config.DatabaseConfig{
		Path:         ":memory:",
		MaxOpenConns: 1,
		BusyTimeout:  5000,
	}, "error", zap.NewNop())
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取 sql.DB 失败: %v", err)
	}
	if err := database.RunMigrations(sqlDB, zap.NewNop()); err != nil {
		t.Fatalf("执行迁移失败: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	return repository.NewRepository(db)
}

func TestSeedAdmin_CreatesOnce(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	cfg := config.SeedConfig{AdminUsername: "admin", AdminPassword: "admin123"}

	created, err := SeedAdmin(ctx, repo, cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("期望无错误, 实际: %v", err)
	}
	if !created {
		t.Errorf("期望首次创建管理员")
	}

	user, err := repo.User.GetByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("期望能查到管理员, 实际: %v", err)
	}
	if user.Role != model.RoleAdmin {
		t.Errorf("期望角色 admin, 实际: %s", user.Role)
	}
	if user.PasswordHash == "admin123" {
		t.Errorf("期望密码以哈希存储")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("admin123")); err != nil {
		t.Errorf("期望哈希与初始密码匹配, 实际: %v", err)
	}

	created, err = SeedAdmin(ctx, repo, cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("期望重复执行无错误, 实际: %v", err)
	}
	if created {
		t.Errorf("期望已存在时不再创建")
	}
}

func TestSeedAdmin_KeepsExistingPassword(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := SeedAdmin(ctx, repo, config.SeedConfig{AdminUsername: "admin", AdminPassword: "first-pass"}, zap.NewNop()); err != nil {
		t.Fatalf("期望无错误, 实际: %v", err)
	}
	if _, err := SeedAdmin(ctx, repo, config.SeedConfig{AdminUsername: "admin", AdminPassword: "second-pass"}, zap.NewNop()); err != nil {
		t.Fatalf("期望无错误, 实际: %v", err)
	}

	user, _ := repo.User.GetByUsername(ctx, "admin")
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("first-pass")); err != nil {
		t.Errorf("期望保留原密码")
	}
}

func TestSeedAdmin_EmptyConfig(t *testing.T) {
	repo := newTestRepo(t)

	created, err := SeedAdmin(context.Background(), repo, config.SeedConfig{}, zap.NewNop())
	if err != nil || created {
		t.Errorf("期望未配置时跳过, 实际: created=%v err=%v", created, err)
	}
}
