package service

import (
	"fmt"
	"time"
)

// TimePeriod 统计时间段
type TimePeriod string

const (
	PeriodCurrentMonth TimePeriod = "CURRENT_MONTH"
	PeriodLastMonth    TimePeriod = "LAST_MONTH"
	PeriodLast3Months  TimePeriod = "LAST_3_MONTHS"
	PeriodLast6Months  TimePeriod = "LAST_6_MONTHS"
	PeriodCurrentYear  TimePeriod = "CURRENT_YEAR"
	PeriodLastYear     TimePeriod = "LAST_YEAR"
)

// ParsePeriod 解析时间段参数
func ParsePeriod(s string) (TimePeriod, error) {
	switch TimePeriod(s) {
	case PeriodCurrentMonth, PeriodLastMonth, PeriodLast3Months,
		PeriodLast6Months, PeriodCurrentYear, PeriodLastYear:
		return TimePeriod(s), nil
	}
	return "", fmt.Errorf("无效的时间段: %s", s)
}

// DisplayName 时间段展示名称，作为汇总结果的 period 标签
func (p TimePeriod) DisplayName() string {
	switch p {
	case PeriodCurrentMonth:
		return "Current Month"
	case PeriodLastMonth:
		return "Last Month"
	case PeriodLast3Months:
		return "Last 3 Months"
	case PeriodLast6Months:
		return "Last 6 Months"
	case PeriodCurrentYear:
		return "Current Year"
	case PeriodLastYear:
		return "Last Year"
	}
	return string(p)
}

// DateRange 将时间段解析为具体的 [start, end] 时间范围，基于本地日历
//
// 约定（必须保持）：
//   - CURRENT_MONTH / CURRENT_YEAR / LAST_3_MONTHS / LAST_6_MONTHS 为开区间，
//     start 为对应月/年的第一个瞬间，end 为当前时刻（截至现在）
//   - LAST_MONTH / LAST_YEAR 为闭区间，start 为上一周期的第一个瞬间，
//     end 为该周期最后一天的 23:59:59.999（包含最后一毫秒）
func (p TimePeriod) DateRange(now time.Time) (time.Time, time.Time) {
	loc := now.Location()
	year, month, _ := now.Date()

	switch p {
	case PeriodCurrentMonth:
		return time.Date(year, month, 1, 0, 0, 0, 0, loc), now

	case PeriodLastMonth:
		start := time.Date(year, month-1, 1, 0, 0, 0, 0, loc)
		end := time.Date(year, month, 1, 0, 0, 0, 0, loc).Add(-time.Millisecond)
		return start, end

	case PeriodLast3Months:
		return time.Date(year, month-3, 1, 0, 0, 0, 0, loc), now

	case PeriodLast6Months:
		return time.Date(year, month-6, 1, 0, 0, 0, 0, loc), now

	case PeriodCurrentYear:
		return time.Date(year, 1, 1, 0, 0, 0, 0, loc), now

	case PeriodLastYear:
		start := time.Date(year-1, 1, 1, 0, 0, 0, 0, loc)
		end := time.Date(year, 1, 1, 0, 0, 0, 0, loc).Add(-time.Millisecond)
		return start, end
	}

	// 未知时间段按当前月处理
	return time.Date(year, month, 1, 0, 0, 0, 0, loc), now
}
