package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config 应用全局配置结构体
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"db"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Log        LogConfig        `mapstructure:"log"`
	Seed       SeedConfig       `mapstructure:"seed"`
	Report     ReportConfig     `mapstructure:"report"`
	Assignment AssignmentConfig `mapstructure:"assignment"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Port       int        `mapstructure:"port"`
	Stylesheet string     `mapstructure:"stylesheet"` // --style 指定的样式表路径
	MaxBodyMB  int64      `mapstructure:"max_body_mb"`
	CORS       CORSConfig `mapstructure:"cors"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig SQLite 数据库配置
type DatabaseConfig struct {
	Path         string `mapstructure:"path"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	BusyTimeout  int    `mapstructure:"busy_timeout"` // 毫秒
}

// DSN 生成 SQLite 连接字符串
// _foreign_keys 让每条池化连接都启用外键约束
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=%d", c.Path, c.BusyTimeout)
}

// RedisConfig Redis 配置（可选）
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig JWT 认证配置
type AuthConfig struct {
	JWTSecret      string        `mapstructure:"jwt_secret"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"` // 0 表示不过期
	BlacklistTTL   time.Duration `mapstructure:"blacklist_ttl"`    // 不过期 Token 登出后的黑名单保留时长
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"` // 为空时仅输出到标准错误
}

// SeedConfig 初始管理员账号
type SeedConfig struct {
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`
}

// ReportConfig 成绩报表权重与默认学期
type ReportConfig struct {
	DefaultTerm     string  `mapstructure:"default_term"`
	DailyWeight     float64 `mapstructure:"daily_weight"`
	MidtermWeight   float64 `mapstructure:"midterm_weight"`
	FinalWeight     float64 `mapstructure:"final_weight"`
	ClassroomWeight float64 `mapstructure:"classroom_weight"`
}

// AssignmentConfig 作业文件夹配置
type AssignmentConfig struct {
	RequireExistingDir bool `mapstructure:"require_existing_dir"`
}

// Load 从配置文件、环境变量与命令行参数加载配置
// 优先级：命令行参数 > 环境变量 > 配置文件 > 默认值
// flags 可为 nil（admin 工具与测试场景）
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// ── 默认值 ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.stylesheet", "resources/styles.qss")
	v.SetDefault("server.max_body_mb", 10)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("db.path", "grade_management.db")
	v.SetDefault("db.max_open_conns", 1)
	v.SetDefault("db.busy_timeout", 5000)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.jwt_secret", "huaixu-grade-management-secret")
	v.SetDefault("auth.access_token_ttl", "0s")
	v.SetDefault("auth.blacklist_ttl", "720h")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "grade_system.log")

	v.SetDefault("seed.admin_username", "admin")
	v.SetDefault("seed.admin_password", "admin123")

	v.SetDefault("report.default_term", "2023-2024-1")
	v.SetDefault("report.daily_weight", 0.2)
	v.SetDefault("report.midterm_weight", 0.3)
	v.SetDefault("report.final_weight", 0.4)
	v.SetDefault("report.classroom_weight", 0.1)

	v.SetDefault("assignment.require_existing_dir", true)

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("HUAIXU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// ── 命令行参数 ──
	if flags != nil {
		if f := flags.Lookup("db"); f != nil {
			if err := v.BindPFlag("db.path", f); err != nil {
				return nil, fmt.Errorf("绑定命令行参数失败: %w", err)
			}
		}
		if f := flags.Lookup("style"); f != nil {
			if err := v.BindPFlag("server.stylesheet", f); err != nil {
				return nil, fmt.Errorf("绑定命令行参数失败: %w", err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		// 配置文件不存在时仅依赖默认值、环境变量与命令行参数
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验关键配置项
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("配置校验失败: auth.jwt_secret 长度不能少于 16 字符")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("配置校验失败: server.port 必须在 1-65535 之间")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("配置校验失败: db.path 不能为空")
	}
	if c.Auth.AccessTokenTTL < 0 {
		return fmt.Errorf("配置校验失败: auth.access_token_ttl 不能为负数")
	}
	weights := map[string]float64{
		"daily_weight":     c.Report.DailyWeight,
		"midterm_weight":   c.Report.MidtermWeight,
		"final_weight":     c.Report.FinalWeight,
		"classroom_weight": c.Report.ClassroomWeight,
	}
	for name, w := range weights {
		if w < 0 || w > 1 {
			return fmt.Errorf("配置校验失败: report.%s 必须在 0-1 之间，当前为 %.4f", name, w)
		}
	}
	sum := c.Report.DailyWeight + c.Report.MidtermWeight + c.Report.FinalWeight + c.Report.ClassroomWeight
	if math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("配置校验失败: report 权重之和必须为 1，当前为 %.4f", sum)
	}
	return nil
}
