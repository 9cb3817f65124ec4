package model

// Score 考试成绩，对应 scores
// (student_id, course_id, term, exam_type) 唯一
type Score struct {
	ScoreID   uint    `gorm:"primaryKey;autoIncrement"          json:"score_id"`
	StudentID string  `gorm:"type:varchar(20);not null"         json:"student_id"`
	CourseID  uint    `gorm:"not null"                          json:"course_id"`
	Term      string  `gorm:"type:varchar(20);not null"         json:"term"`
	ExamType  string  `gorm:"type:varchar(20);not null"         json:"exam_type"` // daily | midterm | final | assignment
	Score     float64 `gorm:"type:real;not null"                json:"score"`
	Timestamps
}

// TableName 指定表名
func (Score) TableName() string { return "scores" }
