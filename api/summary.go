package api

import (
	"fmt"
	"time"

	"expensetracker/database"
	"expensetracker/middleware"
	"expensetracker/models"
	"expensetracker/service"

	"github.com/gin-gonic/gin"
)

// SummaryRequest 消费汇总请求
type SummaryRequest struct {
	Period      string `form:"period" example:"CURRENT_MONTH"`
	StartDate   string `form:"start_date" example:"2024-01-01"`
	EndDate     string `form:"end_date" example:"2024-12-31"`
	CategoryIDs string `form:"category_ids" example:"1,3"`
}

// resolveSummaryRange 解析汇总时间范围：优先使用命名时间段，其次自定义起止日期
func resolveSummaryRange(req SummaryRequest, now time.Time) (start, end time.Time, label string, err error) {
	if req.Period != "" {
		period, perr := service.ParsePeriod(req.Period)
		if perr != nil {
			return start, end, "", perr
		}
		start, end = period.DateRange(now)
		return start, end, period.DisplayName(), nil
	}

	if req.StartDate == "" || req.EndDate == "" {
		return start, end, "", fmt.Errorf("请指定 period 或 start_date/end_date")
	}
	start, err = time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
	if err != nil {
		return start, end, "", fmt.Errorf("start_date格式错误，应为：2024-01-01")
	}
	end, err = time.ParseInLocation("2006-01-02", req.EndDate, time.Local)
	if err != nil {
		return start, end, "", fmt.Errorf("end_date格式错误，应为：2024-12-31")
	}
	if end.Before(start) {
		return start, end, "", fmt.Errorf("end_date不能早于start_date")
	}
	// 包含结束日期当天
	end = end.Add(24*time.Hour - time.Millisecond)
	label = req.StartDate + " ~ " + req.EndDate
	return start, end, label, nil
}

// GetSummary 获取消费汇总
// @Summary 获取消费汇总
// @Description 按类别汇总指定时间段的消费。时间段可用命名周期（CURRENT_MONTH/LAST_MONTH/LAST_3_MONTHS/LAST_6_MONTHS/CURRENT_YEAR/LAST_YEAR）或自定义起止日期指定，可叠加类别筛选。类别明细按金额从大到小排列，percentage 为该类别占总额的百分比。
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Param period query string false "命名时间段" Enums(CURRENT_MONTH,LAST_MONTH,LAST_3_MONTHS,LAST_6_MONTHS,CURRENT_YEAR,LAST_YEAR)
// @Param start_date query string false "开始日期 (2024-01-01)，与 end_date 配对使用"
// @Param end_date query string false "结束日期 (2024-12-31)"
// @Param category_ids query string false "类别ID筛选，逗号分隔"
// @Success 200 {object} Response{data=service.SpendingSummary} "获取成功"
// @Failure 400 {object} Response "参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/expenses/summary [get]
func (h *ExpenseHandler) GetSummary(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req SummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	start, end, label, err := resolveSummaryRange(req, time.Now())
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	criteria := service.FilterCriteria{StartDate: &start, EndDate: &end}
	criteria.CategoryIDs = parseListCriteria(ExpenseListRequest{CategoryIDs: req.CategoryIDs}).CategoryIDs

	var expenses []models.Expense
	query := database.DB.Where("user_id = ?", userID)
	query = query.Where("expense_time >= ? AND expense_time <= ?", start, end)
	if len(criteria.CategoryIDs) > 0 {
		query = query.Where("category_id IN ?", criteria.CategoryIDs)
	}
	if err := query.Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	categories, err := service.LoadCategoryMap(database.DB)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, service.Summarize(expenses, categories, label))
}
