package service

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"expensetracker/models"
)

const (
	exportDateLayout     = "2006-01-02"
	exportDateTimeLayout = "2006-01-02 15:04:05"
)

// csvHeader 导出文件的固定表头
var csvHeader = []string{"Date", "Amount", "Category", "Description", "Created", "Updated"}

// ExportCSV 将消费记录导出为 CSV
//
// 金额使用最短精确表示（不补零），日期为 2006-01-02，创建/更新时间为
// 2006-01-02 15:04:05。包含逗号、引号或换行的字段按标准 CSV 规则加引号。
func ExportCSV(records []models.ExpenseWithCategory) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := []string{
			r.ExpenseTime.Format(exportDateLayout),
			strconv.FormatFloat(r.Amount, 'f', -1, 64),
			r.Category.Name,
			r.Description,
			r.CreatedAt.Format(exportDateTimeLayout),
			r.UpdatedAt.Format(exportDateTimeLayout),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
