package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clareleo/Huaixu/config"
	"github.com/clareleo/Huaixu/internal/api/handler"
	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/model"
	"github.com/clareleo/Huaixu/internal/repository"
	"github.com/clareleo/Huaixu/internal/seed"
	"github.com/clareleo/Huaixu/internal/service"
	"github.com/clareleo/Huaixu/pkg/database"
	"github.com/clareleo/Huaixu/pkg/jwt"
	"github.com/clareleo/Huaixu/pkg/response"
)

// setupEngine 基于内存 SQLite 搭建完整路由，并写入 admin / teacher1 / student1 三个账号
func setupEngine(t *testing.T) *gin.Engine {
	t.Helper()

	cfg, err := config.Load("", nil)
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	cfg.Database.Path = ":memory:"

	logger := zap.NewNop()
	db, err := database.NewDB(&cfg.Database, "error", logger)
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}
	sqlDB, _ := db.DB()
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		t.Fatalf("执行迁移失败: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	repo := repository.NewRepository(db)
	ctx := context.Background()
	if _, err := seed.SeedAdmin(ctx, repo, cfg.Seed, logger); err != nil {
		t.Fatalf("写入管理员失败: %v", err)
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := service.NewService(cfg, repo, jwtMgr, nil, logger)
	for _, u := range []struct{ name, role string }{{"teacher1", model.RoleTeacher}, {"student1", model.RoleStudent}} {
		if _, err := svc.User.Create(ctx, &dto.CreateUserRequest{Username: u.name, Password: "secret12", Role: u.role}); err != nil {
			t.Fatalf("创建用户失败: %v", err)
		}
	}

	engine, err := Setup(cfg, handler.NewHandler(svc, []byte("body{color:#333}")), jwtMgr, nil, logger)
	if err != nil {
		t.Fatalf("初始化路由失败: %v", err)
	}
	return engine
}

func do(engine *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, response.Response) {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func login(t *testing.T, engine *gin.Engine, username, password string) string {
	t.Helper()
	w, resp := do(engine, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Username: username, Password: password})
	if w.Code != http.StatusOK {
		t.Fatalf("登录 %s 期望 200, 实际: %d %s", username, w.Code, w.Body.String())
	}
	data, _ := resp.Data.(map[string]interface{})
	token, _ := data["access_token"].(string)
	if token == "" {
		t.Fatalf("期望返回 access_token, 实际: %s", w.Body.String())
	}
	return token
}

func TestHealthAndStylesheet(t *testing.T) {
	engine := setupEngine(t)

	w, _ := do(engine, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("期望 200, 实际: %d", w.Code)
	}

	w, _ = do(engine, http.MethodGet, "/assets/styles.css", "", nil)
	if w.Code != http.StatusOK || w.Body.String() != "body{color:#333}" {
		t.Errorf("期望返回样式表, 实际: %d %q", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/css; charset=utf-8" {
		t.Errorf("期望 text/css, 实际: %s", ct)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	engine := setupEngine(t)

	w, resp := do(engine, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Username: "admin", Password: "wrong"})
	if w.Code != http.StatusUnauthorized || resp.Code != 20001 {
		t.Errorf("期望 401/20001, 实际: %d/%d", w.Code, resp.Code)
	}
}

func TestRequiresToken(t *testing.T) {
	engine := setupEngine(t)

	w, _ := do(engine, http.MethodGet, "/api/v1/reports", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望 401, 实际: %d", w.Code)
	}
	w, _ = do(engine, http.MethodGet, "/api/v1/reports", "not-a-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望 401, 实际: %d", w.Code)
	}
}

func TestRoleMatrix(t *testing.T) {
	engine := setupEngine(t)
	admin := login(t, engine, "admin", "admin123")
	teacher := login(t, engine, "teacher1", "secret12")
	student := login(t, engine, "student1", "secret12")

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		body   interface{}
		want   int
	}{
		{"管理员可查看用户", http.MethodGet, "/api/v1/users", admin, nil, http.StatusOK},
		{"教师不可查看用户", http.MethodGet, "/api/v1/users", teacher, nil, http.StatusForbidden},
		{"教师可查看班级", http.MethodGet, "/api/v1/classes", teacher, nil, http.StatusOK},
		{"教师不可新建班级", http.MethodPost, "/api/v1/classes", teacher, dto.ClassRequest{ClassName: "计算机1班"}, http.StatusForbidden},
		{"管理员可新建班级", http.MethodPost, "/api/v1/classes", admin, dto.ClassRequest{ClassName: "计算机1班"}, http.StatusCreated},
		{"学生不可查看学生", http.MethodGet, "/api/v1/students", student, nil, http.StatusForbidden},
		{"教师可查看学生", http.MethodGet, "/api/v1/students", teacher, nil, http.StatusOK},
		{"学生不可查看课程", http.MethodGet, "/api/v1/courses", student, nil, http.StatusForbidden},
		{"学生可访问报表", http.MethodGet, "/api/v1/reports", student, nil, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := do(engine, tc.method, tc.path, tc.token, tc.body)
			if w.Code != tc.want {
				t.Errorf("期望 %d, 实际: %d %s", tc.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestMe_Screens(t *testing.T) {
	engine := setupEngine(t)
	student := login(t, engine, "student1", "secret12")

	w, resp := do(engine, http.MethodGet, "/api/v1/auth/me", student, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200, 实际: %d", w.Code)
	}
	data, _ := resp.Data.(map[string]interface{})
	screens, _ := data["screens"].([]interface{})
	if len(screens) != 1 || screens[0] != "reports" {
		t.Errorf("期望学生只有 reports, 实际: %v", screens)
	}
}

func TestReport_SelectionAndTermValidation(t *testing.T) {
	engine := setupEngine(t)
	teacher := login(t, engine, "teacher1", "secret12")

	_, resp := do(engine, http.MethodGet, "/api/v1/reports?course_id=1", teacher, nil)
	if resp.Code != 50401 || resp.Message != "请选择具体的课程和班级" {
		t.Errorf("期望提示选择课程和班级, 实际: %+v", resp)
	}

	w, resp := do(engine, http.MethodGet, "/api/v1/reports?course_id=1&class_id=1&term=2023-1", teacher, nil)
	if w.Code != http.StatusBadRequest || resp.Code != response.CodeBadRequest {
		t.Errorf("期望学期格式校验失败, 实际: %d/%d", w.Code, resp.Code)
	}
}
