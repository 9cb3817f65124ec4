package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/clareleo/Huaixu/config"
	"github.com/clareleo/Huaixu/internal/api/handler"
	"github.com/clareleo/Huaixu/internal/api/router"
	"github.com/clareleo/Huaixu/internal/repository"
	"github.com/clareleo/Huaixu/internal/seed"
	"github.com/clareleo/Huaixu/internal/service"
	"github.com/clareleo/Huaixu/pkg/database"
	"github.com/clareleo/Huaixu/pkg/jwt"
	applogger "github.com/clareleo/Huaixu/pkg/logger"
	"github.com/clareleo/Huaixu/pkg/redis"
)

func main() {
	// 1. 命令行参数
	flags := pflag.NewFlagSet("huaixu", pflag.ExitOnError)
	configPath := flags.String("config", "", "配置文件路径")
	flags.String("db", "grade_management.db", "SQLite 数据库文件路径")
	flags.String("style", "resources/styles.qss", "样式表文件路径")
	testMode := flags.Bool("test", false, "完成初始化后立即退出（自检）")
	_ = flags.Parse(os.Args[1:])

	// 2. 加载配置
	cfg, err := config.Load(*configPath, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 3. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("db", cfg.Database.Path),
		zap.String("log_level", cfg.Log.Level),
	)

	// 4. 样式表（缺失时仅告警）
	stylesheet := loadStylesheet(cfg.Server.Stylesheet, logger)

	// 5. 连接数据库并迁移
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	// 6. 初始管理员
	repo := repository.NewRepository(db)
	if _, err := seed.SeedAdmin(context.Background(), repo, cfg.Seed, logger); err != nil {
		logger.Fatal("初始化管理员账号失败", zap.Error(err))
	}

	if *testMode {
		logger.Info("初始化自检通过，退出")
		_ = sqlDB.Close()
		return
	}

	// 7. 连接 Redis（可选：连接失败时降级运行）
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis 连接失败，Token 黑名单与限流将不可用", zap.Error(err))
			rdb = nil
		}
	}

	// 8. 依赖注入: Repository → Service → Handler
	jwtMgr := jwt.NewManager(&cfg.Auth)
	var revoker service.TokenRevoker
	if rdb != nil {
		revoker = rdb
	}
	svc := service.NewService(cfg, repo, jwtMgr, revoker, logger)
	h := handler.NewHandler(svc, stylesheet)

	engine, err := router.Setup(cfg, h, jwtMgr, rdb, logger)
	if err != nil {
		logger.Fatal("初始化路由失败", zap.Error(err))
	}

	// 9. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("关闭数据库失败", zap.Error(err))
	}
	if rdb != nil {
		_ = rdb.Close()
	}

	logger.Info("服务器已关闭")
}

// loadStylesheet 读取样式表文件，不存在时返回空内容
func loadStylesheet(path string, logger *zap.Logger) []byte {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("样式表文件不存在", zap.String("path", path))
		} else {
			logger.Warn("读取样式表失败", zap.String("path", path), zap.Error(err))
		}
		return nil
	}
	logger.Info("样式表已加载", zap.String("path", path), zap.Int("bytes", len(data)))
	return data
}
