package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/clareleo/Huaixu/config"
	"github.com/clareleo/Huaixu/internal/api/handler"
	"github.com/clareleo/Huaixu/internal/api/middleware"
	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/model"
	"github.com/clareleo/Huaixu/pkg/jwt"
	"github.com/clareleo/Huaixu/pkg/redis"
)

// 导入导出接口限流：每分钟 10 次
const (
	heavyLimit  = 10
	heavyWindow = time.Minute
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 为 nil 时不启用黑名单与限流
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			return nil, fmt.Errorf("注册校验规则失败: %w", err)
		}
	}

	var blacklist middleware.TokenBlacklist
	if rdb != nil {
		blacklist = rdb
	}
	heavy := middleware.RateLimit(rdb, heavyLimit, heavyWindow)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyMB))

	// ── 健康检查与静态资源 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/assets/styles.css", h.Asset.Stylesheet)

	staff := middleware.RoleAuth(model.RoleAdmin, model.RoleTeacher)
	adminOnly := middleware.RoleAuth(model.RoleAdmin)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		v1.POST("/auth/login", h.Auth.Login)

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, blacklist))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// 用户管理（系统设置）
			users := authorized.Group("/users", adminOnly)
			{
				users.GET("", h.User.ListUsers)
				users.POST("", h.User.CreateUser)
				users.DELETE("/:id", h.User.DeleteUser)
				users.PUT("/:id/password", h.User.ResetPassword)
			}

			// 班级
			classes := authorized.Group("/classes", staff)
			{
				classes.GET("", h.Class.ListClasses)
				classes.GET("/:id", h.Class.GetClass)
				classes.POST("", adminOnly, h.Class.CreateClass)
				classes.PUT("/:id", adminOnly, h.Class.UpdateClass)
				classes.DELETE("/:id", adminOnly, h.Class.DeleteClass)
			}

			// 学生
			students := authorized.Group("/students", staff)
			{
				students.GET("", h.Student.ListStudents)
				students.GET("/export", heavy, h.Export.ExportStudents)
				students.POST("/import", heavy, h.Student.ImportStudents)
				students.GET("/:id", h.Student.GetStudent)
				students.GET("/:id/evaluations", h.Evaluation.ListByStudent)
				students.POST("", h.Student.CreateStudent)
				students.PUT("/:id", h.Student.UpdateStudent)
				students.DELETE("/:id", h.Student.DeleteStudent)
			}

			// 课程与授课安排
			courses := authorized.Group("/courses", staff)
			{
				courses.GET("", h.Course.ListCourses)
				courses.GET("/:id", h.Course.GetCourse)
				courses.POST("", adminOnly, h.Course.CreateCourse)
				courses.PUT("/:id", adminOnly, h.Course.UpdateCourse)
				courses.DELETE("/:id", adminOnly, h.Course.DeleteCourse)
			}
			courseClasses := authorized.Group("/course-classes", staff)
			{
				courseClasses.GET("", h.Course.ListCourseClasses)
				courseClasses.POST("", adminOnly, h.Course.CreateCourseClass)
				courseClasses.DELETE("/:id", adminOnly, h.Course.DeleteCourseClass)
			}

			// 成绩
			scores := authorized.Group("/scores", staff)
			{
				scores.GET("/sheet", h.Score.GradeSheet)
				scores.PUT("", h.Score.UpsertScore)
				scores.POST("/batch", h.Score.BatchUpsertScores)
				scores.DELETE("/:id", h.Score.DeleteScore)
			}

			// 课堂活动
			activities := authorized.Group("/activities", staff)
			{
				activities.GET("", h.Classroom.ListActivities)
				activities.GET("/calendar", heavy, h.Classroom.ExportCalendar)
				activities.POST("", h.Classroom.CreateActivity)
				activities.GET("/:id", h.Classroom.GetActivity)
				activities.DELETE("/:id", h.Classroom.DeleteActivity)
				activities.PUT("/:id/scores", h.Classroom.GradeActivity)
			}

			// 作业
			assignments := authorized.Group("/assignments", staff)
			{
				assignments.GET("", h.Assignment.ListFolders)
				assignments.POST("", h.Assignment.CreateFolder)
				assignments.GET("/:id", h.Assignment.GetFolder)
				assignments.DELETE("/:id", h.Assignment.DeleteFolder)
				assignments.POST("/:id/scan", h.Assignment.ScanFolder)
				assignments.PUT("/:id/grade", h.Assignment.GradeSubmission)
			}

			// 学生评价
			evaluations := authorized.Group("/evaluations", staff)
			{
				evaluations.POST("", h.Evaluation.CreateEvaluation)
				evaluations.DELETE("/:id", h.Evaluation.DeleteEvaluation)
			}

			// 成绩报表（所有角色可查看）
			reports := authorized.Group("/reports")
			{
				reports.GET("", h.Report.GetReport)
				reports.GET("/export", heavy, h.Export.ExportReport)
			}
		}
	}

	return r, nil
}
