package model

import "time"

// AssignmentFolder 作业文件夹，对应 assignment_folders
type AssignmentFolder struct {
	FolderID    uint      `gorm:"primaryKey;autoIncrement"       json:"folder_id"`
	FolderPath  string    `gorm:"type:text;uniqueIndex;not null" json:"folder_path"`
	CourseID    uint      `gorm:"not null"                       json:"course_id"`
	Description string    `gorm:"type:text"                      json:"description"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime"        json:"created_at"`

	// 关联
	Course *Course `gorm:"foreignKey:CourseID;references:CourseID" json:"course,omitempty"`
}

// TableName 指定表名
func (AssignmentFolder) TableName() string { return "assignment_folders" }

// AssignmentSubmission 作业提交记录，对应 assignment_submissions
// 每个学生在每个文件夹下至多一条
type AssignmentSubmission struct {
	SubmissionID uint       `gorm:"primaryKey;autoIncrement"  json:"submission_id"`
	StudentID    string     `gorm:"type:varchar(20);not null" json:"student_id"`
	FolderID     uint       `gorm:"not null"                  json:"folder_id"`
	FileName     string     `gorm:"type:text;not null"        json:"file_name"`
	SubmitTime   *time.Time `json:"submit_time,omitempty"`
	Status       string     `gorm:"type:varchar(20);not null" json:"status"` // not_submitted | submitted | graded
	Score        *float64   `gorm:"type:real"                 json:"score,omitempty"`
	Feedback     string     `gorm:"type:text"                 json:"feedback"`
}

// TableName 指定表名
func (AssignmentSubmission) TableName() string { return "assignment_submissions" }
