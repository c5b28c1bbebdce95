package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	// UserStatusLocked 锁定：不可登录
	UserStatusLocked = "locked"
	// UserStatusActive 正常：可登录
	UserStatusActive = "active"
)

// User 用户模型
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Username  string         `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Password  string         `json:"-" gorm:"size:255;not null"`
	Email     string         `json:"email" gorm:"size:100"`
	IsAdmin   bool           `json:"is_admin" gorm:"default:false;index"`        // 管理员可查看全部用户数据
	Status    string         `json:"status" gorm:"size:20;default:locked;index"` // 用户状态：locked/active
	GoogleSub *string        `json:"google_sub,omitempty" gorm:"size:64;uniqueIndex"` // Google 账号 sub，NULL 表示未绑定
	PhotoURL  string         `json:"photo_url" gorm:"size:255"`                  // 头像地址（Google 登录时带回）
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}
