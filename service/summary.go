package service

import (
	"sort"

	"expensetracker/models"
)

// CategorySpending 单个类别的消费汇总
type CategorySpending struct {
	Category   models.Category `json:"category"`
	Amount     float64         `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// SpendingSummary 一段时间内的消费汇总
type SpendingSummary struct {
	TotalAmount       float64            `json:"totalAmount"`
	CategoryBreakdown []CategorySpending `json:"categoryBreakdown"`
	Period            string             `json:"period"`
}

// Summarize 按类别汇总消费记录
//
// 百分比为 (类别金额/总额)*100，不做四舍五入；类别按金额从大到小排序，
// 金额相同的保持首次出现的先后顺序。找不到对应类别的记录与列表读取一致，
// 在关联阶段即被丢弃，既不计入总额也不出现在明细中，保证明细金额之和
// 恒等于总额。
func Summarize(expenses []models.Expense, categories map[uint]models.Category, period string) SpendingSummary {
	summary := SpendingSummary{
		Period:            period,
		CategoryBreakdown: []CategorySpending{},
	}
	if len(expenses) == 0 {
		return summary
	}

	amounts := make(map[uint]float64)
	order := make([]uint, 0)
	for _, e := range expenses {
		if _, ok := categories[e.CategoryID]; !ok {
			continue
		}
		summary.TotalAmount += e.Amount
		if _, ok := amounts[e.CategoryID]; !ok {
			order = append(order, e.CategoryID)
		}
		amounts[e.CategoryID] += e.Amount
	}

	for _, id := range order {
		entry := CategorySpending{Category: categories[id], Amount: amounts[id]}
		if summary.TotalAmount > 0 {
			entry.Percentage = amounts[id] / summary.TotalAmount * 100
		}
		summary.CategoryBreakdown = append(summary.CategoryBreakdown, entry)
	}

	sort.SliceStable(summary.CategoryBreakdown, func(i, j int) bool {
		return summary.CategoryBreakdown[i].Amount > summary.CategoryBreakdown[j].Amount
	})
	return summary
}
