package api

import (
	"fmt"
	"net/http"
	"time"

	"expensetracker/database"
	"expensetracker/middleware"
	"expensetracker/models"
	"expensetracker/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler 导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// loadExportRecords 查询导出范围内的记录并关联类别，类别已删除的记录被丢弃
func loadExportRecords(userID uint, start, end *time.Time) ([]models.ExpenseWithCategory, error) {
	categories, err := service.LoadCategoryMap(database.DB)
	if err != nil {
		return nil, err
	}

	query := database.DB.Where("user_id = ?", userID)
	if start != nil {
		query = query.Where("expense_time >= ?", *start)
	}
	if end != nil {
		query = query.Where("expense_time <= ?", *end)
	}

	var expenses []models.Expense
	if err := query.Order("expense_time DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}

	records := make([]models.ExpenseWithCategory, 0, len(expenses))
	for _, e := range expenses {
		if joined, ok := e.JoinCategory(categories); ok {
			records = append(records, joined)
		}
	}
	return records, nil
}

// parseExportRange 解析可选的导出时间范围
func parseExportRange(c *gin.Context) (start, end *time.Time, err error) {
	if s := c.Query("start_date"); s != "" {
		t, perr := time.ParseInLocation("2006-01-02", s, time.Local)
		if perr != nil {
			return nil, nil, fmt.Errorf("start_date格式错误，应为: 2006-01-02")
		}
		start = &t
	}
	if s := c.Query("end_date"); s != "" {
		t, perr := time.ParseInLocation("2006-01-02", s, time.Local)
		if perr != nil {
			return nil, nil, fmt.Errorf("end_date格式错误，应为: 2006-01-02")
		}
		t = t.Add(24*time.Hour - time.Millisecond)
		end = &t
	}
	return start, end, nil
}

// ExportCSV 导出消费记录为 CSV
// @Summary 导出消费记录
// @Description 导出当前用户的消费记录为 CSV 文件。不传时间范围则导出全部记录；范围内没有记录时返回 400。
// @Tags 导出
// @Accept json
// @Produce text/csv
// @Security BearerAuth
// @Param start_date query string false "开始日期 (2024-01-01)"
// @Param end_date query string false "结束日期 (2024-12-31)"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "参数错误或没有可导出的记录"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	start, end, err := parseExportRange(c)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	records, err := loadExportRecords(userID, start, end)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}
	if len(records) == 0 {
		BadRequest(c, "没有可导出的消费记录")
		return
	}

	data, err := service.ExportCSV(records)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 CSV 失败"))
		return
	}

	filename := fmt.Sprintf("expenses_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", len(data)))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ExportJSON 导出消费记录为 JSON
// @Summary 导出消费记录为 JSON
// @Description 导出当前用户的消费记录为 JSON 格式，附带条数和总金额
// @Tags 导出
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "开始日期 (2024-01-01)"
// @Param end_date query string false "结束日期 (2024-12-31)"
// @Success 200 {object} Response "导出成功"
// @Failure 400 {object} Response "参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	start, end, err := parseExportRange(c)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	records, err := loadExportRecords(userID, start, end)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	var totalAmount float64
	for _, r := range records {
		totalAmount += r.Amount
	}

	Success(c, gin.H{
		"total_count":  len(records),
		"total_amount": totalAmount,
		"expenses":     records,
	})
}
