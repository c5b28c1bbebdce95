package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense 消费记录模型
type Expense struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	UserID      uint           `json:"user_id" gorm:"index;not null"`
	Amount      float64        `json:"amount" gorm:"type:decimal(12,2);not null"`
	CategoryID  uint           `json:"category_id" gorm:"index;not null"` // 引用 categories.id，写入时必须存在
	Description string         `json:"description" gorm:"size:200"`
	ExpenseTime time.Time      `json:"expense_time" gorm:"index;not null"` // 消费发生时间（语义时间，允许未来1天内）
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	User        User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// ExpenseWithCategory 消费记录与类别的联表视图
// 读取时由 category_id 关联得到，不落库；类别已被删除的记录在读取时被静默丢弃
type ExpenseWithCategory struct {
	ID          uint      `json:"id"`
	Amount      float64   `json:"amount"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	ExpenseTime time.Time `json:"expense_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// JoinCategory 将消费记录与类别映射表关联，类别不存在时返回 false
func (e *Expense) JoinCategory(categories map[uint]Category) (ExpenseWithCategory, bool) {
	cat, ok := categories[e.CategoryID]
	if !ok {
		return ExpenseWithCategory{}, false
	}
	return ExpenseWithCategory{
		ID:          e.ID,
		Amount:      e.Amount,
		Category:    cat,
		Description: e.Description,
		ExpenseTime: e.ExpenseTime,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}, true
}
