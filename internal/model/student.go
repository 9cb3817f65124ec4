package model

// Student 学生，对应 students，学号为主键
type Student struct {
	StudentID     string `gorm:"type:varchar(20);primaryKey" json:"student_id"`
	Name          string `gorm:"type:varchar(50);not null"   json:"name"`
	Gender        string `gorm:"type:varchar(10)"            json:"gender"` // male | female | other，可为空
	BirthDate     string `gorm:"type:text"                   json:"birth_date"`
	ClassID       *uint  `gorm:"index"                       json:"class_id"`
	AdmissionDate string `gorm:"type:text"                   json:"admission_date"`
	Contact       string `gorm:"type:varchar(50)"            json:"contact"`
	Timestamps

	// 关联
	Class *Class `gorm:"foreignKey:ClassID;references:ClassID" json:"class,omitempty"`
}

// TableName 指定表名
func (Student) TableName() string { return "students" }
