package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/clareleo/Huaixu/config"
	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/model"
	"github.com/clareleo/Huaixu/internal/repository"
	pkgerrors "github.com/clareleo/Huaixu/pkg/errors"
	"github.com/clareleo/Huaixu/pkg/filemonitor"
)

// ── 作业模块业务错误 ──

var (
	ErrFolderNotFound    = errors.New("作业文件夹不存在")
	ErrFolderExists      = errors.New("该作业文件夹已添加")
	ErrFolderPathInvalid = errors.New("作业文件夹路径不存在或不是目录")
)

// manualSubmissionFile 无文件提交时直接录入成绩的占位文件名
const manualSubmissionFile = "手动录入"

// AssignmentService 作业文件夹与提交业务接口
type AssignmentService interface {
	List(ctx context.Context, courseID *uint) ([]dto.FolderResponse, error)
	Create(ctx context.Context, req *dto.CreateFolderRequest) (*dto.FolderResponse, error)
	Delete(ctx context.Context, id uint) error
	Detail(ctx context.Context, id uint) (*dto.FolderDetailResponse, error)
	// Scan 对比上次扫描后的目录变化，并为有文件但无记录的学生补登提交
	Scan(ctx context.Context, id uint) (*dto.ScanResponse, error)
	Grade(ctx context.Context, id uint, req *dto.GradeSubmissionRequest) error
}

type assignmentService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger

	mu       sync.Mutex
	monitors map[uint]*filemonitor.Monitor
}

// NewAssignmentService 创建 AssignmentService 实例
func NewAssignmentService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) AssignmentService {
	return &assignmentService{
		cfg:      cfg,
		repo:     repo,
		logger:   logger,
		monitors: make(map[uint]*filemonitor.Monitor),
	}
}

func (s *assignmentService) List(ctx context.Context, courseID *uint) ([]dto.FolderResponse, error) {
	folders, err := s.repo.Assignment.ListFolders(ctx, courseID)
	if err != nil {
		s.logger.Error("查询作业文件夹失败", zap.Error(err))
		return nil, err
	}
	list := make([]dto.FolderResponse, 0, len(folders))
	for i := range folders {
		list = append(list, toFolderResponse(&folders[i]))
	}
	return list, nil
}

func (s *assignmentService) Create(ctx context.Context, req *dto.CreateFolderRequest) (*dto.FolderResponse, error) {
	path := filepath.Clean(req.FolderPath)
	if s.cfg.Assignment.RequireExistingDir {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			return nil, ErrFolderPathInvalid
		}
	}

	course, err := s.repo.Course.GetByID(ctx, req.CourseID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	folder := &model.AssignmentFolder{
		FolderPath:  path,
		CourseID:    req.CourseID,
		Description: req.Description,
	}
	if err := s.repo.Assignment.CreateFolder(ctx, folder); err != nil {
		if pkgerrors.IsDuplicate(err) {
			return nil, ErrFolderExists
		}
		s.logger.Error("添加作业文件夹失败", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	folder.Course = course

	s.logger.Info("添加作业文件夹", zap.Uint("folder_id", folder.FolderID), zap.String("path", path))
	resp := toFolderResponse(folder)
	return &resp, nil
}

func (s *assignmentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Assignment.DeleteFolder(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrFolderNotFound
		}
		s.logger.Error("删除作业文件夹失败", zap.Uint("folder_id", id), zap.Error(err))
		return err
	}

	s.mu.Lock()
	delete(s.monitors, id)
	s.mu.Unlock()

	s.logger.Info("删除作业文件夹", zap.Uint("folder_id", id))
	return nil
}

func (s *assignmentService) Detail(ctx context.Context, id uint) (*dto.FolderDetailResponse, error) {
	folder, err := s.getFolder(ctx, id)
	if err != nil {
		return nil, err
	}

	mon, err := s.monitorFor(folder)
	if err != nil {
		return nil, err
	}
	files, err := mon.Snapshot()
	if err != nil {
		return nil, err
	}

	students, err := s.folderStudents(ctx, folder)
	if err != nil {
		return nil, err
	}
	subs, err := s.repo.Assignment.ListSubmissions(ctx, id)
	if err != nil {
		return nil, err
	}
	byStudent := make(map[string]model.AssignmentSubmission, len(subs))
	for _, sub := range subs {
		byStudent[sub.StudentID] = sub
	}

	resp := &dto.FolderDetailResponse{
		Folder:   toFolderResponse(folder),
		Exists:   dirExists(folder.FolderPath),
		Students: make([]dto.SubmissionRow, 0, len(students)),
		Total:    len(students),
	}
	for _, st := range students {
		row := dto.SubmissionRow{
			StudentID: st.StudentID,
			Name:      st.Name,
			Files:     filemonitor.MatchStudent(files, st.StudentID),
			Status:    model.SubmissionNotSubmitted,
		}
		if sub, ok := byStudent[st.StudentID]; ok {
			row.Status = sub.Status
			row.Score = sub.Score
			row.Feedback = sub.Feedback
			if sub.SubmitTime != nil {
				row.SubmitTime = formatTime(*sub.SubmitTime)
			}
		} else if len(row.Files) > 0 {
			row.Status = model.SubmissionSubmitted
		}
		if row.Status != model.SubmissionNotSubmitted {
			resp.Submitted++
		}
		resp.Students = append(resp.Students, row)
	}
	return resp, nil
}

func (s *assignmentService) Scan(ctx context.Context, id uint) (*dto.ScanResponse, error) {
	folder, err := s.getFolder(ctx, id)
	if err != nil {
		return nil, err
	}

	mon, err := s.monitorFor(folder)
	if err != nil {
		return nil, err
	}
	added, removed, changed, err := mon.CheckForChanges()
	if err != nil {
		s.logger.Error("扫描作业目录失败", zap.String("path", folder.FolderPath), zap.Error(err))
		return nil, err
	}

	students, err := s.folderStudents(ctx, folder)
	if err != nil {
		return nil, err
	}
	subs, err := s.repo.Assignment.ListSubmissions(ctx, id)
	if err != nil {
		return nil, err
	}
	recorded := make(map[string]struct{}, len(subs))
	for _, sub := range subs {
		recorded[sub.StudentID] = struct{}{}
	}

	resp := &dto.ScanResponse{Changed: changed, Added: added, Removed: removed}
	for _, st := range students {
		if _, ok := recorded[st.StudentID]; ok {
			continue
		}
		files := mon.FilesFor(st.StudentID)
		if len(files) == 0 {
			continue
		}

		sub := &model.AssignmentSubmission{
			StudentID: st.StudentID,
			FolderID:  id,
			FileName:  files[0],
			Status:    model.SubmissionSubmitted,
		}
		if mt, err := mon.ModTime(files[0]); err == nil {
			sub.SubmitTime = &mt
		}
		if err := s.repo.Assignment.CreateSubmission(ctx, sub); err != nil {
			s.logger.Error("登记作业提交失败", zap.String("student_id", st.StudentID), zap.Error(err))
			return nil, err
		}
		resp.NewRecords++
	}

	if changed || resp.NewRecords > 0 {
		s.logger.Info("作业目录有变化",
			zap.Uint("folder_id", id),
			zap.Strings("added", added),
			zap.Strings("removed", removed),
			zap.Int("new_records", resp.NewRecords),
		)
	}
	return resp, nil
}

func (s *assignmentService) Grade(ctx context.Context, id uint, req *dto.GradeSubmissionRequest) error {
	if _, err := s.getFolder(ctx, id); err != nil {
		return err
	}
	exists, err := s.repo.Student.Exists(ctx, req.StudentID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrStudentNotFound
	}

	sub, err := s.repo.Assignment.GetSubmission(ctx, id, req.StudentID)
	switch {
	case err == nil:
		sub.Status = model.SubmissionGraded
		sub.Score = req.Score
		sub.Feedback = req.Feedback
		err = s.repo.Assignment.UpdateSubmission(ctx, sub)
	case isNotFound(err):
		err = s.repo.Assignment.CreateSubmission(ctx, &model.AssignmentSubmission{
			StudentID: req.StudentID,
			FolderID:  id,
			FileName:  manualSubmissionFile,
			Status:    model.SubmissionGraded,
			Score:     req.Score,
			Feedback:  req.Feedback,
		})
	}
	if err != nil {
		s.logger.Error("保存作业成绩失败", zap.Uint("folder_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("批改作业",
		zap.Uint("folder_id", id),
		zap.String("student_id", req.StudentID),
		zap.Float64("score", *req.Score),
	)
	return nil
}

// ── 内部辅助方法 ──

func (s *assignmentService) getFolder(ctx context.Context, id uint) (*model.AssignmentFolder, error) {
	folder, err := s.repo.Assignment.GetFolder(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrFolderNotFound
		}
		return nil, err
	}
	return folder, nil
}

// monitorFor 取出文件夹对应的监视器，首次访问时以当前文件列表为基线创建
func (s *assignmentService) monitorFor(folder *model.AssignmentFolder) (*filemonitor.Monitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if mon, ok := s.monitors[folder.FolderID]; ok && mon.Path() == folder.FolderPath {
		return mon, nil
	}
	mon, err := filemonitor.New(folder.FolderPath)
	if err != nil {
		return nil, err
	}
	s.monitors[folder.FolderID] = mon
	return mon, nil
}

// folderStudents 文件夹所属课程关联的全部班级学生
func (s *assignmentService) folderStudents(ctx context.Context, folder *model.AssignmentFolder) ([]model.Student, error) {
	classIDs, err := s.repo.CourseClass.ClassIDsByCourse(ctx, folder.CourseID, "")
	if err != nil {
		return nil, err
	}
	return s.repo.Student.ListByClasses(ctx, classIDs)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func toFolderResponse(f *model.AssignmentFolder) dto.FolderResponse {
	resp := dto.FolderResponse{
		ID:          f.FolderID,
		FolderPath:  f.FolderPath,
		CourseID:    f.CourseID,
		Description: f.Description,
		CreatedAt:   formatTime(f.CreatedAt),
	}
	if f.Course != nil {
		resp.CourseName = f.Course.CourseName
	}
	return resp
}
