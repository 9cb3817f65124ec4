package model

import "time"

// Evaluation 学生评价，对应 evaluations
type Evaluation struct {
	EvalID      uint      `gorm:"primaryKey;autoIncrement"  json:"eval_id"`
	StudentID   string    `gorm:"type:varchar(20);not null" json:"student_id"`
	EvalType    string    `gorm:"type:varchar(20);not null" json:"eval_type"`
	EvalContent string    `gorm:"type:text"                 json:"eval_content"`
	Score       *float64  `gorm:"type:real"                 json:"score,omitempty"`
	EvaluatorID *uint     `json:"evaluator_id,omitempty"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime"   json:"created_at"`

	// 关联
	Evaluator *User `gorm:"foreignKey:EvaluatorID;references:UserID" json:"evaluator,omitempty"`
}

// TableName 指定表名
func (Evaluation) TableName() string { return "evaluations" }
