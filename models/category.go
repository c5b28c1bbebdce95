package models

import (
	"time"

	"gorm.io/gorm"
)

// CustomCategorySortOrder 自定义类别的固定排序值，始终排在默认类别之后
const CustomCategorySortOrder = 999

// Category 消费类别
// 默认类别由系统初始化（sort_order 1..7），自定义类别由用户创建（sort_order 固定为 999）
type Category struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:30;not null;uniqueIndex"` // 名称，1-30字符，区分大小写唯一
	Icon      string         `json:"icon" gorm:"size:20;not null"`             // 图标标识，如 🍔
	Color     string         `json:"color" gorm:"size:20;default:#B19CD9"`     // 颜色代码，如 #FF6B6B
	IsCustom  bool           `json:"is_custom" gorm:"default:false"`           // 是否为用户自定义类别
	SortOrder int            `json:"sort_order" gorm:"default:0;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Category) TableName() string {
	return "categories"
}

// DefaultCategory 默认类别定义
type DefaultCategory struct {
	Name  string
	Icon  string
	Color string
}

// GetDefaultCategories 获取默认消费类别（固定7个，顺序即 sort_order 1..7）
func GetDefaultCategories() []DefaultCategory {
	return []DefaultCategory{
		{"Food", "🍔", "#FF6B6B"},
		{"Transport", "🚗", "#4ECDC4"},
		{"Entertainment", "🎬", "#45B7D1"},
		{"Shopping", "🛍️", "#FFA07A"},
		{"Bills", "📄", "#98D8C8"},
		{"Healthcare", "⚕️", "#F7DC6F"},
		{"Other", "📦", "#B19CD9"},
	}
}
