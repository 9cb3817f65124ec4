package handler

import "github.com/clareleo/Huaixu/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Class      *ClassHandler
	Student    *StudentHandler
	Course     *CourseHandler
	Score      *ScoreHandler
	Classroom  *ClassroomHandler
	Assignment *AssignmentHandler
	Evaluation *EvaluationHandler
	Report     *ReportHandler
	Export     *ExportHandler
	Asset      *AssetHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service, stylesheet []byte) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		User:       NewUserHandler(svc.User),
		Class:      NewClassHandler(svc.Class),
		Student:    NewStudentHandler(svc.Student),
		Course:     NewCourseHandler(svc.Course, svc.CourseClass),
		Score:      NewScoreHandler(svc.Score),
		Classroom:  NewClassroomHandler(svc.Classroom, svc.Calendar),
		Assignment: NewAssignmentHandler(svc.Assignment),
		Evaluation: NewEvaluationHandler(svc.Evaluation),
		Report:     NewReportHandler(svc.Report),
		Export:     NewExportHandler(svc.Export),
		Asset:      NewAssetHandler(stylesheet),
	}
}
