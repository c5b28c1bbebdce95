package service

import (
	"testing"
	"time"

	"expensetracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCategories() map[uint]models.Category {
	return map[uint]models.Category{
		1: {ID: 1, Name: "Food"},
		2: {ID: 2, Name: "Transport"},
		3: {ID: 3, Name: "Entertainment"},
	}
}

func TestSummarize(t *testing.T) {
	expenses := []models.Expense{
		{CategoryID: 1, Amount: 100},
		{CategoryID: 2, Amount: 75},
		{CategoryID: 1, Amount: 50},
		{CategoryID: 3, Amount: 25},
	}

	summary := Summarize(expenses, testCategories(), "Current Month")

	assert.Equal(t, 250.0, summary.TotalAmount)
	assert.Equal(t, "Current Month", summary.Period)
	require.Len(t, summary.CategoryBreakdown, 3)

	// 按金额从大到小
	assert.Equal(t, "Food", summary.CategoryBreakdown[0].Category.Name)
	assert.Equal(t, 150.0, summary.CategoryBreakdown[0].Amount)
	assert.InDelta(t, 60.0, summary.CategoryBreakdown[0].Percentage, 0.0001)

	assert.Equal(t, "Transport", summary.CategoryBreakdown[1].Category.Name)
	assert.InDelta(t, 30.0, summary.CategoryBreakdown[1].Percentage, 0.0001)

	assert.Equal(t, "Entertainment", summary.CategoryBreakdown[2].Category.Name)
	assert.InDelta(t, 10.0, summary.CategoryBreakdown[2].Percentage, 0.0001)

	// 明细金额之和等于总额
	var sum float64
	for _, entry := range summary.CategoryBreakdown {
		sum += entry.Amount
	}
	assert.InDelta(t, summary.TotalAmount, sum, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, testCategories(), "Last Month")
	assert.Equal(t, 0.0, summary.TotalAmount)
	assert.Equal(t, "Last Month", summary.Period)
	assert.NotNil(t, summary.CategoryBreakdown)
	assert.Empty(t, summary.CategoryBreakdown)
}

func TestSummarize_StableTieOrder(t *testing.T) {
	// 金额相同时保持首次出现的先后顺序
	expenses := []models.Expense{
		{CategoryID: 2, Amount: 50},
		{CategoryID: 1, Amount: 50},
		{CategoryID: 3, Amount: 50},
	}

	summary := Summarize(expenses, testCategories(), "Current Year")
	require.Len(t, summary.CategoryBreakdown, 3)
	assert.Equal(t, "Transport", summary.CategoryBreakdown[0].Category.Name)
	assert.Equal(t, "Food", summary.CategoryBreakdown[1].Category.Name)
	assert.Equal(t, "Entertainment", summary.CategoryBreakdown[2].Category.Name)
}

func TestSummarize_UnresolvedCategory(t *testing.T) {
	// 找不到类别的记录整条丢弃，总额与明细均不包含
	expenses := []models.Expense{
		{CategoryID: 1, Amount: 60},
		{CategoryID: 99, Amount: 40},
	}

	summary := Summarize(expenses, testCategories(), "Current Month")
	assert.Equal(t, 60.0, summary.TotalAmount)
	require.Len(t, summary.CategoryBreakdown, 1)
	assert.Equal(t, "Food", summary.CategoryBreakdown[0].Category.Name)
	assert.Equal(t, 60.0, summary.CategoryBreakdown[0].Amount)
	assert.InDelta(t, 100.0, summary.CategoryBreakdown[0].Percentage, 0.0001)

	// 丢弃后明细金额之和仍等于总额
	var sum float64
	for _, entry := range summary.CategoryBreakdown {
		sum += entry.Amount
	}
	assert.InDelta(t, summary.TotalAmount, sum, 1e-9)
}

func TestSummarize_UnroundedPercentage(t *testing.T) {
	// 100/3 的百分比不做四舍五入
	expenses := []models.Expense{
		{CategoryID: 1, Amount: 1},
		{CategoryID: 2, Amount: 1},
		{CategoryID: 3, Amount: 1},
	}

	summary := Summarize(expenses, testCategories(), "Current Month")
	require.Len(t, summary.CategoryBreakdown, 3)
	for _, entry := range summary.CategoryBreakdown {
		assert.InDelta(t, 100.0/3.0, entry.Percentage, 1e-9)
	}

	var totalPct float64
	for _, entry := range summary.CategoryBreakdown {
		totalPct += entry.Percentage
	}
	assert.InDelta(t, 100.0, totalPct, 1e-9)
}

func TestSummarize_WithPeriodLabel(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	start, _ := PeriodLastMonth.DateRange(now)
	expenses := []models.Expense{{CategoryID: 1, Amount: 10, ExpenseTime: start}}

	summary := Summarize(expenses, testCategories(), PeriodLastMonth.DisplayName())
	assert.Equal(t, "Last Month", summary.Period)
}
