package model

// Class 班级，对应 classes
type Class struct {
	ClassID     uint   `gorm:"primaryKey;autoIncrement"  json:"class_id"`
	ClassName   string `gorm:"type:varchar(50);not null" json:"class_name"`
	Grade       string `gorm:"type:varchar(20)"          json:"grade"`
	Major       string `gorm:"type:varchar(50)"          json:"major"`
	Description string `gorm:"type:text"                 json:"description"`
	Timestamps
}

// TableName 指定表名
func (Class) TableName() string { return "classes" }
