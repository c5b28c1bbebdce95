package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	for _, s := range []string{"CURRENT_MONTH", "LAST_MONTH", "LAST_3_MONTHS", "LAST_6_MONTHS", "CURRENT_YEAR", "LAST_YEAR"} {
		p, err := ParsePeriod(s)
		require.NoError(t, err)
		assert.Equal(t, TimePeriod(s), p)
	}

	_, err := ParsePeriod("LAST_WEEK")
	assert.Error(t, err)
	_, err = ParsePeriod("current_month")
	assert.Error(t, err)
	_, err = ParsePeriod("")
	assert.Error(t, err)
}

func TestDateRange_CurrentMonth(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)
	start, end := PeriodCurrentMonth.DateRange(now)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, now, end)
}

func TestDateRange_LastMonth(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)
	start, end := PeriodLastMonth.DateRange(now)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), start)
	// 2024年2月最后一天 23:59:59.999（闰年）
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999000000, time.Local), end)
}

func TestDateRange_LastMonth_JanuaryRollover(t *testing.T) {
	// 1月时上个月跨年
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, time.Local)
	start, end := PeriodLastMonth.DateRange(now)
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2023, 12, 31, 23, 59, 59, 999000000, time.Local), end)
}

func TestDateRange_RollingMonths(t *testing.T) {
	now := time.Date(2024, 2, 10, 8, 0, 0, 0, time.Local)

	start3, end3 := PeriodLast3Months.DateRange(now)
	assert.Equal(t, time.Date(2023, 11, 1, 0, 0, 0, 0, time.Local), start3)
	assert.Equal(t, now, end3)

	start6, end6 := PeriodLast6Months.DateRange(now)
	assert.Equal(t, time.Date(2023, 8, 1, 0, 0, 0, 0, time.Local), start6)
	assert.Equal(t, now, end6)
}

func TestDateRange_Years(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)

	start, end := PeriodCurrentYear.DateRange(now)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, now, end)

	lyStart, lyEnd := PeriodLastYear.DateRange(now)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.Local), lyStart)
	assert.Equal(t, time.Date(2023, 12, 31, 23, 59, 59, 999000000, time.Local), lyEnd)
}

func TestDateRange_UnknownFallsBackToCurrentMonth(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)
	start, end := TimePeriod("BOGUS").DateRange(now)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, now, end)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Current Month", PeriodCurrentMonth.DisplayName())
	assert.Equal(t, "Last Month", PeriodLastMonth.DisplayName())
	assert.Equal(t, "Last 3 Months", PeriodLast3Months.DisplayName())
	assert.Equal(t, "Last 6 Months", PeriodLast6Months.DisplayName())
	assert.Equal(t, "Current Year", PeriodCurrentYear.DisplayName())
	assert.Equal(t, "Last Year", PeriodLastYear.DisplayName())
}
