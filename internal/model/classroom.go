package model

import "time"

// ClassroomActivity 课堂活动，对应 classroom_activities
type ClassroomActivity struct {
	ActivityID   uint      `gorm:"primaryKey;autoIncrement"   json:"activity_id"`
	CourseID     uint      `gorm:"not null"                   json:"course_id"`
	Term         string    `gorm:"type:varchar(20);not null"  json:"term"`
	ActivityDate time.Time `gorm:"type:date;not null"         json:"activity_date"`
	ActivityType string    `gorm:"type:varchar(20);not null"  json:"activity_type"`
	Description  string    `gorm:"type:text"                  json:"description"`
	MaxScore     float64   `gorm:"type:real;not null;default:100" json:"max_score"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime"    json:"created_at"`

	// 关联
	Course *Course `gorm:"foreignKey:CourseID;references:CourseID" json:"course,omitempty"`
}

// TableName 指定表名
func (ClassroomActivity) TableName() string { return "classroom_activities" }

// ClassroomScore 课堂活动得分，对应 classroom_scores
// (activity_id, student_id) 唯一
type ClassroomScore struct {
	ScoreID    uint      `gorm:"primaryKey;autoIncrement"  json:"score_id"`
	ActivityID uint      `gorm:"not null"                  json:"activity_id"`
	StudentID  string    `gorm:"type:varchar(20);not null" json:"student_id"`
	Score      float64   `gorm:"type:real;not null"        json:"score"`
	Comment    string    `gorm:"type:text"                 json:"comment"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime"   json:"created_at"`
}

// TableName 指定表名
func (ClassroomScore) TableName() string { return "classroom_scores" }
