package model

import "time"

// Course 课程，对应 courses
type Course struct {
	CourseID    uint    `gorm:"primaryKey;autoIncrement"   json:"course_id"`
	CourseName  string  `gorm:"type:varchar(100);not null" json:"course_name"`
	Credit      float64 `gorm:"type:real"                  json:"credit"`
	CourseType  string  `gorm:"type:varchar(20)"           json:"course_type"` // required | elective
	Description string  `gorm:"type:text"                  json:"description"`
	Timestamps
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }

// CourseClass 授课安排：某学期某课程在某班级开设，对应 course_class
type CourseClass struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	CourseID  uint      `gorm:"not null"                  json:"course_id"`
	ClassID   uint      `gorm:"not null"                  json:"class_id"`
	TeacherID *uint     `json:"teacher_id"`
	Term      string    `gorm:"type:varchar(20);not null" json:"term"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"   json:"created_at"`

	// 关联
	Course  *Course `gorm:"foreignKey:CourseID;references:CourseID" json:"course,omitempty"`
	Class   *Class  `gorm:"foreignKey:ClassID;references:ClassID"   json:"class,omitempty"`
	Teacher *User   `gorm:"foreignKey:TeacherID;references:UserID"  json:"teacher,omitempty"`
}

// TableName 指定表名
func (CourseClass) TableName() string { return "course_class" }
