package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"expensetracker/database"
	"expensetracker/middleware"
	"expensetracker/models"
	"expensetracker/service"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler 消费记录处理器
type ExpenseHandler struct{}

// NewExpenseHandler 创建消费记录处理器
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{}
}

// ExpenseRequest 创建/更新消费记录请求
type ExpenseRequest struct {
	Amount      float64 `json:"amount" example:"99.99"`
	CategoryID  uint    `json:"category_id" example:"1"`
	Description string  `json:"description" example:"午餐"`
	ExpenseTime string  `json:"expense_time" example:"2024-01-15 12:30:00"`
}

// ExpenseListRequest 消费记录列表请求
type ExpenseListRequest struct {
	Page        int    `form:"page" example:"0"`
	PageSize    int    `form:"page_size" example:"20"`
	CategoryIDs string `form:"category_ids" example:"1,3"`
	StartDate   string `form:"start_date" example:"2024-01-01"`
	EndDate     string `form:"end_date" example:"2024-12-31"`
}

// ValidationFailed 400 响应，携带按字段组织的校验错误
func ValidationFailed(c *gin.Context, result models.ValidationResult) {
	c.JSON(http.StatusBadRequest, Response{
		Code:    http.StatusBadRequest,
		Message: "参数校验失败",
		Data:    result.Errors,
	})
}

// parseExpenseTime 解析消费时间，允许带或不带时分秒
func parseExpenseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// buildExpense 将请求转换为实体并做完整校验，返回的校验结果覆盖所有字段
func buildExpense(userID uint, req ExpenseRequest) (models.Expense, models.ValidationResult, bool) {
	expenseTime, ok := parseExpenseTime(req.ExpenseTime)
	if !ok {
		return models.Expense{}, models.ValidationResult{}, false
	}
	expense := models.Expense{
		UserID:      userID,
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
		Description: strings.TrimSpace(req.Description),
		ExpenseTime: expenseTime,
	}
	return expense, models.ValidateExpense(&expense, time.Now()), true
}

// categoryExists 类别是否存在于数据库
func categoryExists(id uint) bool {
	var cat models.Category
	return database.DB.First(&cat, id).Error == nil
}

// Create 创建消费记录
// @Summary 创建消费记录
// @Description 创建一条新的消费记录。校验失败时返回按字段组织的错误信息（amount/category/date/description）。
// @Tags 消费记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ExpenseRequest true "消费记录信息"
// @Success 200 {object} Response{data=models.Expense} "创建成功"
// @Failure 400 {object} Response "参数校验失败"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	expense, result, ok := buildExpense(userID, req)
	if !ok {
		BadRequest(c, "时间格式错误，应为: 2006-01-02 15:04:05")
		return
	}
	if !result.Valid() {
		ValidationFailed(c, result)
		return
	}
	if !categoryExists(expense.CategoryID) {
		BadRequest(c, "无效的消费类别")
		return
	}

	if err := database.DB.Create(&expense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建消费记录失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", expense)
}

// parseListCriteria 解析列表筛选参数
func parseListCriteria(req ExpenseListRequest) service.FilterCriteria {
	var criteria service.FilterCriteria
	if req.StartDate != "" {
		if t, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local); err == nil {
			criteria.StartDate = &t
		}
	}
	if req.EndDate != "" {
		if t, err := time.ParseInLocation("2006-01-02", req.EndDate, time.Local); err == nil {
			// 包含结束日期当天
			end := t.Add(24*time.Hour - time.Millisecond)
			criteria.EndDate = &end
		}
	}
	if req.CategoryIDs != "" {
		for _, part := range strings.Split(req.CategoryIDs, ",") {
			part = strings.TrimSpace(part)
			if id, err := strconv.ParseUint(part, 10, 32); err == nil {
				criteria.CategoryIDs = append(criteria.CategoryIDs, uint(id))
			}
		}
	}
	return criteria
}

// List 获取消费记录列表
// @Summary 获取消费记录列表
// @Description 分页获取当前用户的消费记录，按消费时间倒序，每条记录附带完整的类别信息。page 从 0 开始，响应中的 prevKey/nextKey 为相邻页的页码，nil 表示没有对应方向的页。
// @Tags 消费记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码（从0开始）" default(0)
// @Param page_size query int false "每页数量" default(20)
// @Param category_ids query string false "类别ID筛选，逗号分隔（如：1,3）"
// @Param start_date query string false "开始日期 (2024-01-01)"
// @Param end_date query string false "结束日期 (2024-12-31)"
// @Success 200 {object} Response{data=service.ExpensePage} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req ExpenseListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if req.Page < 0 {
		req.Page = 0
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	page, err := service.LoadExpensePage(database.DB, userID, req.Page, req.PageSize, parseListCriteria(req))
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, page)
}

// Get 获取单条消费记录
// @Summary 获取单条消费记录
// @Description 根据ID获取消费记录详情
// @Tags 消费记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "消费记录ID"
// @Success 200 {object} Response{data=models.Expense} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var expense models.Expense
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&expense).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	Success(c, expense)
}

// Update 更新消费记录
// @Summary 更新消费记录
// @Description 整体替换指定的消费记录，校验规则与创建一致
// @Tags 消费记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "消费记录ID"
// @Param request body ExpenseRequest true "消费记录信息"
// @Success 200 {object} Response{data=models.Expense} "更新成功"
// @Failure 400 {object} Response "参数校验失败"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var expense models.Expense
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&expense).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	updated, result, ok := buildExpense(userID, req)
	if !ok {
		BadRequest(c, "时间格式错误，应为: 2006-01-02 15:04:05")
		return
	}
	if !result.Valid() {
		ValidationFailed(c, result)
		return
	}
	if !categoryExists(updated.CategoryID) {
		BadRequest(c, "无效的消费类别")
		return
	}

	updates := map[string]interface{}{
		"amount":       updated.Amount,
		"category_id":  updated.CategoryID,
		"description":  updated.Description,
		"expense_time": updated.ExpenseTime,
	}
	if err := database.DB.Model(&expense).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	// 重新获取更新后的记录
	database.DB.First(&expense, expense.ID)
	SuccessWithMessage(c, "更新成功", expense)
}

// Delete 删除消费记录
// @Summary 删除消费记录
// @Description 删除指定的消费记录
// @Tags 消费记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "消费记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var expense models.Expense
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&expense).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := database.DB.Delete(&expense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
