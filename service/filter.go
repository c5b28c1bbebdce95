package service

import (
	"time"

	"expensetracker/models"
)

// FilterCriteria 消费记录筛选条件，零值表示不做任何过滤
type FilterCriteria struct {
	StartDate   *time.Time
	EndDate     *time.Time
	CategoryIDs []uint
}

// Empty 是否未设置任何条件
func (f FilterCriteria) Empty() bool {
	return f.StartDate == nil && f.EndDate == nil && len(f.CategoryIDs) == 0
}

// Matches 单条记录是否满足全部条件（条件之间为 AND 关系）
func (f FilterCriteria) Matches(e models.Expense) bool {
	if f.StartDate != nil && e.ExpenseTime.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && e.ExpenseTime.After(*f.EndDate) {
		return false
	}
	if len(f.CategoryIDs) > 0 {
		found := false
		for _, id := range f.CategoryIDs {
			if e.CategoryID == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// ApplyFilter 过滤消费记录，保持原有顺序，不修改输入切片
func ApplyFilter(expenses []models.Expense, criteria FilterCriteria) []models.Expense {
	if criteria.Empty() {
		return expenses
	}
	result := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if criteria.Matches(e) {
			result = append(result, e)
		}
	}
	return result
}
