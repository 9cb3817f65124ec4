package model

// User 系统用户，对应 users
type User struct {
	UserID       uint   `gorm:"primaryKey;autoIncrement"          json:"user_id"`
	Username     string `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null"                          json:"-"`
	Role         string `gorm:"type:varchar(20);not null"         json:"role"` // admin | teacher | student
	RealName     string `gorm:"type:varchar(50)"                  json:"real_name"`
	Email        string `gorm:"type:varchar(100)"                 json:"email"`
	Timestamps
}

// TableName 指定表名
func (User) TableName() string { return "users" }
