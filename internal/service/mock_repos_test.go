package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/clareleo/Huaixu/internal/model"
	"github.com/clareleo/Huaixu/internal/repository"
	pkgerrors "github.com/clareleo/Huaixu/pkg/errors"
)

// ── 测试辅助：mock 聚合 ──

type mockRepos struct {
	user        *mockUserRepo
	class       *mockClassRepo
	student     *mockStudentRepo
	course      *mockCourseRepo
	courseClass *mockCourseClassRepo
	score       *mockScoreRepo
	classroom   *mockClassroomRepo
	assignment  *mockAssignmentRepo
	evaluation  *mockEvaluationRepo
}

func newMockRepos() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		user:       newMockUserRepo(),
		course:     newMockCourseRepo(),
		score:      newMockScoreRepo(),
		assignment: newMockAssignmentRepo(),
		evaluation: newMockEvaluationRepo(),
	}
	m.class = newMockClassRepo()
	m.student = newMockStudentRepo(m.class)
	m.class.students = m.student
	m.courseClass = newMockCourseClassRepo(m.course, m.class, m.user)
	m.classroom = newMockClassroomRepo(m.course)
	m.assignment.courses = m.course

	repo := &repository.Repository{
		User:        m.user,
		Class:       m.class,
		Student:     m.student,
		Course:      m.course,
		CourseClass: m.courseClass,
		Score:       m.score,
		Classroom:   m.classroom,
		Assignment:  m.assignment,
		Evaluation:  m.evaluation,
	}
	return repo, m
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users     map[uint]*model.User
	nextID    uint
	deleteErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Username == user.Username {
			return pkgerrors.ErrDuplicate
		}
	}
	if user.UserID == 0 {
		user.UserID = m.nextID
	}
	if user.UserID >= m.nextID {
		m.nextID = user.UserID + 1
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	result := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UserID < result[j].UserID })
	return result, nil
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, id uint, hash string) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uint) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.users, id)
	return nil
}

// ── Mock ClassRepository ──

type mockClassRepo struct {
	classes  map[uint]*model.Class
	nextID   uint
	students *mockStudentRepo
}

func newMockClassRepo() *mockClassRepo {
	return &mockClassRepo{classes: make(map[uint]*model.Class), nextID: 1}
}

func (m *mockClassRepo) Create(_ context.Context, class *model.Class) error {
	if class.ClassID == 0 {
		class.ClassID = m.nextID
	}
	if class.ClassID >= m.nextID {
		m.nextID = class.ClassID + 1
	}
	m.classes[class.ClassID] = class
	return nil
}

func (m *mockClassRepo) GetByID(_ context.Context, id uint) (*model.Class, error) {
	if c, ok := m.classes[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassRepo) List(_ context.Context) ([]model.Class, error) {
	result := make([]model.Class, 0, len(m.classes))
	for _, c := range m.classes {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ClassName < result[j].ClassName })
	return result, nil
}

func (m *mockClassRepo) Update(_ context.Context, class *model.Class) error {
	m.classes[class.ClassID] = class
	return nil
}

func (m *mockClassRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.classes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.classes, id)
	return nil
}

func (m *mockClassRepo) CountStudents(_ context.Context, id uint) (int64, error) {
	var n int64
	if m.students == nil {
		return 0, nil
	}
	for _, st := range m.students.students {
		if st.ClassID != nil && *st.ClassID == id {
			n++
		}
	}
	return n, nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students  map[string]*model.Student
	classes   *mockClassRepo
	createErr map[string]error // 指定学号写入时返回的错误
}

func newMockStudentRepo(classes *mockClassRepo) *mockStudentRepo {
	return &mockStudentRepo{
		students:  make(map[string]*model.Student),
		classes:   classes,
		createErr: make(map[string]error),
	}
}

func (m *mockStudentRepo) withClass(st model.Student) model.Student {
	st.Class = nil
	if st.ClassID != nil && m.classes != nil {
		if c, ok := m.classes.classes[*st.ClassID]; ok {
			st.Class = c
		}
	}
	return st
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if err, ok := m.createErr[student.StudentID]; ok {
		return err
	}
	if _, ok := m.students[student.StudentID]; ok {
		return pkgerrors.ErrDuplicate
	}
	cp := *student
	m.students[student.StudentID] = &cp
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	if st, ok := m.students[id]; ok {
		res := m.withClass(*st)
		return &res, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := m.students[id]
	return ok, nil
}

func (m *mockStudentRepo) match(st *model.Student, filter repository.StudentFilter) bool {
	if filter.Keyword != "" && !strings.Contains(st.Name, filter.Keyword) && !strings.Contains(st.StudentID, filter.Keyword) {
		return false
	}
	if filter.ClassID != nil && (st.ClassID == nil || *st.ClassID != *filter.ClassID) {
		return false
	}
	return true
}

func (m *mockStudentRepo) sorted(keep func(*model.Student) bool) []model.Student {
	result := []model.Student{}
	for _, st := range m.students {
		if keep(st) {
			result = append(result, m.withClass(*st))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StudentID < result[j].StudentID })
	return result
}

func (m *mockStudentRepo) List(_ context.Context, filter repository.StudentFilter, offset, limit int) ([]model.Student, int64, error) {
	all := m.sorted(func(st *model.Student) bool { return m.match(st, filter) })
	total := int64(len(all))
	if offset > len(all) {
		return []model.Student{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockStudentRepo) ListAll(_ context.Context, filter repository.StudentFilter) ([]model.Student, error) {
	return m.sorted(func(st *model.Student) bool { return m.match(st, filter) }), nil
}

func (m *mockStudentRepo) ListByClasses(_ context.Context, classIDs []uint) ([]model.Student, error) {
	set := make(map[uint]bool, len(classIDs))
	for _, id := range classIDs {
		set[id] = true
	}
	return m.sorted(func(st *model.Student) bool {
		return st.ClassID != nil && set[*st.ClassID]
	}), nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	cp := *student
	m.students[student.StudentID] = &cp
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.students[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.students, id)
	return nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses   map[uint]*model.Course
	nextID    uint
	deleteErr error
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[uint]*model.Course), nextID: 1}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	if course.CourseID == 0 {
		course.CourseID = m.nextID
	}
	if course.CourseID >= m.nextID {
		m.nextID = course.CourseID + 1
	}
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id uint) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	result := make([]model.Course, 0, len(m.courses))
	for _, c := range m.courses {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CourseID < result[j].CourseID })
	return result, nil
}

func (m *mockCourseRepo) Update(_ context.Context, course *model.Course) error {
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id uint) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.courses[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.courses, id)
	return nil
}

// ── Mock CourseClassRepository ──

type mockCourseClassRepo struct {
	items   map[uint]*model.CourseClass
	nextID  uint
	courses *mockCourseRepo
	classes *mockClassRepo
	users   *mockUserRepo
}

func newMockCourseClassRepo(courses *mockCourseRepo, classes *mockClassRepo, users *mockUserRepo) *mockCourseClassRepo {
	return &mockCourseClassRepo{
		items:   make(map[uint]*model.CourseClass),
		nextID:  1,
		courses: courses,
		classes: classes,
		users:   users,
	}
}

func (m *mockCourseClassRepo) Create(_ context.Context, cc *model.CourseClass) error {
	for _, it := range m.items {
		if it.CourseID == cc.CourseID && it.ClassID == cc.ClassID && it.Term == cc.Term {
			return pkgerrors.ErrDuplicate
		}
	}
	cc.ID = m.nextID
	m.nextID++
	cp := *cc
	m.items[cc.ID] = &cp
	return nil
}

func (m *mockCourseClassRepo) preload(cc model.CourseClass) model.CourseClass {
	cc.Course = m.courses.courses[cc.CourseID]
	cc.Class = m.classes.classes[cc.ClassID]
	if cc.TeacherID != nil {
		cc.Teacher = m.users.users[*cc.TeacherID]
	}
	return cc
}

func (m *mockCourseClassRepo) GetByID(_ context.Context, id uint) (*model.CourseClass, error) {
	if it, ok := m.items[id]; ok {
		res := m.preload(*it)
		return &res, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseClassRepo) List(_ context.Context, filter repository.CourseClassFilter) ([]model.CourseClass, error) {
	result := []model.CourseClass{}
	for _, it := range m.items {
		if filter.CourseID != nil && it.CourseID != *filter.CourseID {
			continue
		}
		if filter.ClassID != nil && it.ClassID != *filter.ClassID {
			continue
		}
		if filter.Term != "" && it.Term != filter.Term {
			continue
		}
		result = append(result, m.preload(*it))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockCourseClassRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockCourseClassRepo) ClassIDsByCourse(_ context.Context, courseID uint, term string) ([]uint, error) {
	seen := make(map[uint]bool)
	ids := []uint{}
	for _, it := range m.items {
		if it.CourseID != courseID || (term != "" && it.Term != term) || seen[it.ClassID] {
			continue
		}
		seen[it.ClassID] = true
		ids = append(ids, it.ClassID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// ── Mock ScoreRepository ──

type mockScoreRepo struct {
	scores    map[string]*model.Score // key: student|course|term|exam_type
	nextID    uint
	upsertErr map[string]error // 指定学号写入时返回的错误
}

func newMockScoreRepo() *mockScoreRepo {
	return &mockScoreRepo{scores: make(map[string]*model.Score), nextID: 1, upsertErr: make(map[string]error)}
}

func scoreKey(s *model.Score) string {
	return fmt.Sprintf("%s|%d|%s|%s", s.StudentID, s.CourseID, s.Term, s.ExamType)
}

func (m *mockScoreRepo) Upsert(_ context.Context, score *model.Score) error {
	if err, ok := m.upsertErr[score.StudentID]; ok {
		return err
	}
	key := scoreKey(score)
	if existing, ok := m.scores[key]; ok {
		existing.Score = score.Score
		score.ScoreID = existing.ScoreID
		return nil
	}
	score.ScoreID = m.nextID
	m.nextID++
	cp := *score
	m.scores[key] = &cp
	return nil
}

func (m *mockScoreRepo) GetByID(_ context.Context, id uint) (*model.Score, error) {
	for _, s := range m.scores {
		if s.ScoreID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScoreRepo) Delete(_ context.Context, id uint) error {
	for key, s := range m.scores {
		if s.ScoreID == id {
			delete(m.scores, key)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockScoreRepo) ListByCourseTerm(_ context.Context, courseID uint, term string, studentIDs []string) ([]model.Score, error) {
	set := make(map[string]bool, len(studentIDs))
	for _, id := range studentIDs {
		set[id] = true
	}
	result := []model.Score{}
	for _, s := range m.scores {
		if s.CourseID == courseID && s.Term == term && set[s.StudentID] {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ScoreID < result[j].ScoreID })
	return result, nil
}

func (m *mockScoreRepo) ListByStudent(_ context.Context, studentID string) ([]model.Score, error) {
	result := []model.Score{}
	for _, s := range m.scores {
		if s.StudentID == studentID {
			result = append(result, *s)
		}
	}
	return result, nil
}

// ── Mock ClassroomRepository ──

type mockClassroomRepo struct {
	activities map[uint]*model.ClassroomActivity
	scores     map[string]*model.ClassroomScore // key: activity|student
	nextID     uint
	courses    *mockCourseRepo
}

func newMockClassroomRepo(courses *mockCourseRepo) *mockClassroomRepo {
	return &mockClassroomRepo{
		activities: make(map[uint]*model.ClassroomActivity),
		scores:     make(map[string]*model.ClassroomScore),
		nextID:     1,
		courses:    courses,
	}
}

func (m *mockClassroomRepo) CreateActivity(_ context.Context, a *model.ClassroomActivity) error {
	a.ActivityID = m.nextID
	m.nextID++
	cp := *a
	cp.Course = nil
	m.activities[a.ActivityID] = &cp
	return nil
}

func (m *mockClassroomRepo) GetActivity(_ context.Context, id uint) (*model.ClassroomActivity, error) {
	if a, ok := m.activities[id]; ok {
		res := *a
		res.Course = m.courses.courses[a.CourseID]
		return &res, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassroomRepo) ListActivities(_ context.Context, filter repository.ActivityFilter) ([]model.ClassroomActivity, error) {
	result := []model.ClassroomActivity{}
	for _, a := range m.activities {
		if filter.CourseID != nil && a.CourseID != *filter.CourseID {
			continue
		}
		if filter.Term != "" && a.Term != filter.Term {
			continue
		}
		res := *a
		res.Course = m.courses.courses[a.CourseID]
		result = append(result, res)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].ActivityDate.Equal(result[j].ActivityDate) {
			return result[i].ActivityDate.After(result[j].ActivityDate)
		}
		return result[i].ActivityID > result[j].ActivityID
	})
	return result, nil
}

func (m *mockClassroomRepo) DeleteActivity(_ context.Context, id uint) error {
	if _, ok := m.activities[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.activities, id)
	for key, s := range m.scores {
		if s.ActivityID == id {
			delete(m.scores, key)
		}
	}
	return nil
}

func (m *mockClassroomRepo) CountActivities(_ context.Context, courseID uint, term string) (int64, error) {
	var n int64
	for _, a := range m.activities {
		if a.CourseID == courseID && a.Term == term {
			n++
		}
	}
	return n, nil
}

func (m *mockClassroomRepo) UpsertScore(_ context.Context, score *model.ClassroomScore) error {
	key := fmt.Sprintf("%d|%s", score.ActivityID, score.StudentID)
	cp := *score
	m.scores[key] = &cp
	return nil
}

func (m *mockClassroomRepo) ListScoresByActivity(_ context.Context, activityID uint) ([]model.ClassroomScore, error) {
	result := []model.ClassroomScore{}
	for _, s := range m.scores {
		if s.ActivityID == activityID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StudentID < result[j].StudentID })
	return result, nil
}

func (m *mockClassroomRepo) ListScoresByCourseTerm(_ context.Context, courseID uint, term string) ([]model.ClassroomScore, error) {
	result := []model.ClassroomScore{}
	for _, s := range m.scores {
		a, ok := m.activities[s.ActivityID]
		if ok && a.CourseID == courseID && a.Term == term {
			result = append(result, *s)
		}
	}
	return result, nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	folders map[uint]*model.AssignmentFolder
	subs    map[string]*model.AssignmentSubmission // key: folder|student
	nextID  uint
	courses *mockCourseRepo
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{
		folders: make(map[uint]*model.AssignmentFolder),
		subs:    make(map[string]*model.AssignmentSubmission),
		nextID:  1,
	}
}

func subKey(folderID uint, studentID string) string {
	return fmt.Sprintf("%d|%s", folderID, studentID)
}

func (m *mockAssignmentRepo) CreateFolder(_ context.Context, f *model.AssignmentFolder) error {
	for _, existing := range m.folders {
		if existing.FolderPath == f.FolderPath {
			return pkgerrors.ErrDuplicate
		}
	}
	f.FolderID = m.nextID
	m.nextID++
	cp := *f
	cp.Course = nil
	m.folders[f.FolderID] = &cp
	return nil
}

func (m *mockAssignmentRepo) GetFolder(_ context.Context, id uint) (*model.AssignmentFolder, error) {
	if f, ok := m.folders[id]; ok {
		res := *f
		if m.courses != nil {
			res.Course = m.courses.courses[f.CourseID]
		}
		return &res, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) ListFolders(_ context.Context, courseID *uint) ([]model.AssignmentFolder, error) {
	result := []model.AssignmentFolder{}
	for _, f := range m.folders {
		if courseID != nil && f.CourseID != *courseID {
			continue
		}
		result = append(result, *f)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].FolderID > result[j].FolderID })
	return result, nil
}

func (m *mockAssignmentRepo) DeleteFolder(_ context.Context, id uint) error {
	if _, ok := m.folders[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.folders, id)
	for key, s := range m.subs {
		if s.FolderID == id {
			delete(m.subs, key)
		}
	}
	return nil
}

func (m *mockAssignmentRepo) ListSubmissions(_ context.Context, folderID uint) ([]model.AssignmentSubmission, error) {
	result := []model.AssignmentSubmission{}
	for _, s := range m.subs {
		if s.FolderID == folderID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StudentID < result[j].StudentID })
	return result, nil
}

func (m *mockAssignmentRepo) GetSubmission(_ context.Context, folderID uint, studentID string) (*model.AssignmentSubmission, error) {
	if s, ok := m.subs[subKey(folderID, studentID)]; ok {
		res := *s
		return &res, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) CreateSubmission(_ context.Context, sub *model.AssignmentSubmission) error {
	key := subKey(sub.FolderID, sub.StudentID)
	if _, ok := m.subs[key]; ok {
		return pkgerrors.ErrDuplicate
	}
	cp := *sub
	m.subs[key] = &cp
	return nil
}

func (m *mockAssignmentRepo) UpdateSubmission(_ context.Context, sub *model.AssignmentSubmission) error {
	cp := *sub
	m.subs[subKey(sub.FolderID, sub.StudentID)] = &cp
	return nil
}

// ── Mock EvaluationRepository ──

type mockEvaluationRepo struct {
	evals  map[uint]*model.Evaluation
	nextID uint
}

func newMockEvaluationRepo() *mockEvaluationRepo {
	return &mockEvaluationRepo{evals: make(map[uint]*model.Evaluation), nextID: 1}
}

func (m *mockEvaluationRepo) Create(_ context.Context, e *model.Evaluation) error {
	e.EvalID = m.nextID
	m.nextID++
	cp := *e
	m.evals[e.EvalID] = &cp
	return nil
}

func (m *mockEvaluationRepo) GetByID(_ context.Context, id uint) (*model.Evaluation, error) {
	if e, ok := m.evals[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEvaluationRepo) ListByStudent(_ context.Context, studentID string) ([]model.Evaluation, error) {
	result := []model.Evaluation{}
	for _, e := range m.evals {
		if e.StudentID == studentID {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EvalID > result[j].EvalID })
	return result, nil
}

func (m *mockEvaluationRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.evals[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.evals, id)
	return nil
}

// ── 测试数据 ──

func uintPtr(v uint) *uint { return &v }

func floatPtr(v float64) *float64 { return &v }

func (m *mockRepos) addClass(id uint, name string) *model.Class {
	c := &model.Class{ClassID: id, ClassName: name}
	_ = m.class.Create(context.Background(), c)
	return c
}

func (m *mockRepos) addCourse(id uint, name string) *model.Course {
	c := &model.Course{CourseID: id, CourseName: name, Credit: 3, CourseType: model.CourseTypeRequired}
	_ = m.course.Create(context.Background(), c)
	return c
}

func (m *mockRepos) addStudent(id, name string, classID uint) {
	st := &model.Student{StudentID: id, Name: name}
	if classID != 0 {
		st.ClassID = uintPtr(classID)
	}
	_ = m.student.Create(context.Background(), st)
}

func (m *mockRepos) link(courseID, classID uint, term string) {
	_ = m.courseClass.Create(context.Background(), &model.CourseClass{CourseID: courseID, ClassID: classID, Term: term})
}
