// Command admin 槐序成绩管理系统的运维命令行工具
//
//	admin [--config path] [--db path] <command> [flags]
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/clareleo/Huaixu/config"
	"github.com/clareleo/Huaixu/internal/repository"
	"github.com/clareleo/Huaixu/internal/service"
	"github.com/clareleo/Huaixu/pkg/database"
	"github.com/clareleo/Huaixu/pkg/jwt"
	applogger "github.com/clareleo/Huaixu/pkg/logger"
)

func main() {
	flags := pflag.NewFlagSet("admin", pflag.ExitOnError)
	flags.SetInterspersed(false)
	configPath := flags.String("config", "", "配置文件路径")
	flags.String("db", "grade_management.db", "SQLite 数据库文件路径")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	// 命令行工具只把警告以上的日志写到标准错误
	cfg.Log.Level = "warn"
	cfg.Log.File = ""
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	defer sqlDB.Close()

	// migrate 子命令自行管理版本，其余命令先确保表结构最新
	if args := flags.Args(); len(args) == 0 || args[0] != "migrate" {
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			logger.Fatal("数据库迁移失败", zap.Error(err))
		}
	}

	repo := repository.NewRepository(db)
	cli := &commandLine{
		cfg:    cfg,
		repo:   repo,
		svc:    service.NewService(cfg, repo, jwt.NewManager(&cfg.Auth), nil, logger),
		sqlDB:  sqlDB,
		logger: logger,
		out:    os.Stdout,
	}

	if err := cli.run(flags.Args()); err != nil {
		if !errors.Is(err, errHelp) {
			fmt.Fprintf(os.Stderr, "\n错误: %s\n", err)
		}
		os.Exit(1)
	}
}
