package service

import (
	"gorm.io/gorm"

	"expensetracker/models"
)

// ExpensePage 一页消费记录，携带相邻页的键
type ExpensePage struct {
	Items   []models.ExpenseWithCategory `json:"items"`
	PrevKey *int                         `json:"prevKey"`
	NextKey *int                         `json:"nextKey"`
}

// LoadCategoryMap 加载全部类别，按 ID 索引
func LoadCategoryMap(db *gorm.DB) (map[uint]models.Category, error) {
	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return nil, err
	}
	m := make(map[uint]models.Category, len(categories))
	for _, c := range categories {
		m[c.ID] = c
	}
	return m, nil
}

// LoadExpensePage 按页加载用户的消费记录，按消费时间倒序
//
// pageIndex 从 0 开始，偏移量固定为 pageIndex*pageSize，按原始记录计算。
// 筛选条件在取出本页后逐页应用，不改变分页偏移：命中条件少的页会变短，
// 但各页覆盖的原始区间保持稳定，遍历到底不重不漏。类别已被删除的记录
// 会被静默丢弃。PrevKey 仅在第 0 页为 nil；NextKey 在关联类别后本页为空
// 时为 nil，表示没有下一页。
func LoadExpensePage(db *gorm.DB, userID uint, pageIndex, pageSize int, criteria FilterCriteria) (ExpensePage, error) {
	page := ExpensePage{Items: []models.ExpenseWithCategory{}}
	if pageIndex < 0 {
		pageIndex = 0
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	categories, err := LoadCategoryMap(db)
	if err != nil {
		return page, err
	}

	var expenses []models.Expense
	err = db.Where("user_id = ?", userID).
		Order("expense_time DESC").
		Offset(pageIndex * pageSize).
		Limit(pageSize).
		Find(&expenses).Error
	if err != nil {
		return page, err
	}

	joinedCount := 0
	for _, e := range expenses {
		joined, ok := e.JoinCategory(categories)
		if !ok {
			continue
		}
		joinedCount++
		if !criteria.Matches(e) {
			continue
		}
		page.Items = append(page.Items, joined)
	}

	if pageIndex > 0 {
		prev := pageIndex - 1
		page.PrevKey = &prev
	}
	if joinedCount > 0 {
		next := pageIndex + 1
		page.NextKey = &next
	}
	return page, nil
}

// RefreshKey 计算刷新当前页时应使用的页键
func RefreshKey(page ExpensePage) int {
	if page.PrevKey != nil {
		return *page.PrevKey + 1
	}
	if page.NextKey != nil {
		return *page.NextKey - 1
	}
	return 0
}
