package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// MaxExpenseAmount 单笔消费金额上限
	MaxExpenseAmount = 999999999.99
	// MaxDescriptionLength 描述最大长度（字符数）
	MaxDescriptionLength = 200
	// FutureDateTolerance 允许的未来时间偏移，吸收时区偏差
	FutureDateTolerance = 24 * time.Hour
)

// ValidationResult 校验结果，Errors 为空表示通过
// 所有规则独立检查，一次性返回全部字段错误，调用方应同时展示
type ValidationResult struct {
	Errors map[string]string `json:"errors"`
}

// Valid 校验是否通过
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// ValidateExpense 校验待写入的消费记录，纯函数，不访问数据库和网络
// category_id 仅检查为正数，是否真实存在由调用方查库确认
func ValidateExpense(e *Expense, now time.Time) ValidationResult {
	errors := make(map[string]string)

	// 金额：有限数值、大于0、不超上限、小数位不超过2位
	switch {
	case math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0):
		errors["amount"] = "金额必须是有效数字"
	case e.Amount <= 0:
		errors["amount"] = "金额必须大于0"
	case e.Amount > MaxExpenseAmount:
		errors["amount"] = "金额超出上限"
	default:
		if frac := fractionDigits(e.Amount); frac > 2 {
			errors["amount"] = "金额最多保留2位小数"
		}
	}

	// 类别：必填
	if e.CategoryID == 0 {
		errors["category"] = "请选择消费类别"
	}

	// 时间：必填，且不能超过当前时间1天以上
	if e.ExpenseTime.IsZero() {
		errors["date"] = "请选择消费时间"
	} else if e.ExpenseTime.After(now.Add(FutureDateTolerance)) {
		errors["date"] = "消费时间不能超过未来1天"
	}

	// 描述：可选，最多200字符
	if n := len([]rune(e.Description)); n > MaxDescriptionLength {
		errors["description"] = "描述最多200个字符"
	}

	return ValidationResult{Errors: errors}
}

// fractionDigits 返回金额十进制表示的小数位数
// 依赖 strconv 的最短表示：JSON 传入 10.555 会还原出 3 位小数
func fractionDigits(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}
