package service

import (
	"testing"
	"time"

	"expensetracker/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func mockCategoryRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "icon", "color", "is_custom", "sort_order", "created_at", "updated_at", "deleted_at"}).
		AddRow(1, "Food", "🍔", "#FF6B6B", false, 1, time.Now(), time.Now(), nil).
		AddRow(2, "Transport", "🚗", "#4ECDC4", false, 2, time.Now(), time.Now(), nil)
}

func mockExpenseRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "amount", "category_id", "description", "expense_time", "created_at", "updated_at", "deleted_at"})
}

func TestLoadExpensePage_FirstPage(t *testing.T) {
	db, mock := newMockGorm(t)

	ts := time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(mockCategoryRows())
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs(1).
		WillReturnRows(mockExpenseRows().
			AddRow(10, 1, 99.99, 1, "午餐", ts, ts, ts, nil).
			AddRow(11, 1, 12, 2, "地铁", ts.Add(-time.Hour), ts, ts, nil))

	page, err := LoadExpensePage(db, 1, 0, 20, FilterCriteria{})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)

	// 记录携带完整类别信息
	assert.Equal(t, "Food", page.Items[0].Category.Name)
	assert.Equal(t, "🚗", page.Items[1].Category.Icon)

	// 第0页没有上一页，有数据时有下一页
	assert.Nil(t, page.PrevKey)
	require.NotNil(t, page.NextKey)
	assert.Equal(t, 1, *page.NextKey)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadExpensePage_MiddlePage(t *testing.T) {
	db, mock := newMockGorm(t)

	ts := time.Now()
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(mockCategoryRows())
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(mockExpenseRows().
			AddRow(30, 1, 5, 1, "", ts, ts, ts, nil))

	page, err := LoadExpensePage(db, 1, 2, 10, FilterCriteria{})
	require.NoError(t, err)

	require.NotNil(t, page.PrevKey)
	assert.Equal(t, 1, *page.PrevKey)
	require.NotNil(t, page.NextKey)
	assert.Equal(t, 3, *page.NextKey)
}

func TestLoadExpensePage_EmptyPage(t *testing.T) {
	db, mock := newMockGorm(t)

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(mockCategoryRows())
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(mockExpenseRows())

	page, err := LoadExpensePage(db, 1, 3, 20, FilterCriteria{})
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	require.NotNil(t, page.PrevKey)
	assert.Equal(t, 2, *page.PrevKey)
	// 本页为空时没有下一页
	assert.Nil(t, page.NextKey)
}

func TestLoadExpensePage_DropsUnresolvedCategory(t *testing.T) {
	db, mock := newMockGorm(t)

	ts := time.Now()
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(mockCategoryRows())
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(mockExpenseRows().
			AddRow(10, 1, 99, 1, "", ts, ts, ts, nil).
			AddRow(11, 1, 50, 77, "类别已删除", ts, ts, ts, nil))

	page, err := LoadExpensePage(db, 1, 0, 20, FilterCriteria{})
	require.NoError(t, err)

	// 类别不存在的记录被静默丢弃
	require.Len(t, page.Items, 1)
	assert.Equal(t, uint(10), page.Items[0].ID)
}

func TestLoadExpensePage_NormalizesParams(t *testing.T) {
	db, mock := newMockGorm(t)

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(mockCategoryRows())
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(mockExpenseRows())

	// 负页码与非法页大小按 0 / 20 处理
	page, err := LoadExpensePage(db, 1, -5, 0, FilterCriteria{})
	require.NoError(t, err)
	assert.Nil(t, page.PrevKey)
	assert.Nil(t, page.NextKey)
}

func TestLoadExpensePage_FilterAppliedPerPage(t *testing.T) {
	db, mock := newMockGorm(t)

	ts := time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(mockCategoryRows())
	// 查询只按用户取原始分页，筛选条件不进 SQL
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs(1).
		WillReturnRows(mockExpenseRows().
			AddRow(10, 1, 99, 1, "", ts, ts, ts, nil).
			AddRow(11, 1, 12, 2, "", ts.Add(-time.Hour), ts, ts, nil))

	page, err := LoadExpensePage(db, 1, 0, 2, FilterCriteria{CategoryIDs: []uint{1}})
	require.NoError(t, err)

	// 条件在取出本页后应用，不命中的记录被过滤，页偏移不受影响
	require.Len(t, page.Items, 1)
	assert.Equal(t, uint(10), page.Items[0].ID)
	require.NotNil(t, page.NextKey)
	assert.Equal(t, 1, *page.NextKey)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadExpensePage_FilteredEmptyPageKeepsNextKey(t *testing.T) {
	db, mock := newMockGorm(t)

	ts := time.Now()
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(mockCategoryRows())
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(mockExpenseRows().
			AddRow(10, 1, 99, 2, "", ts, ts, ts, nil).
			AddRow(11, 1, 12, 2, "", ts, ts, ts, nil))

	// 本页全部被条件过滤，但原始页非空，遍历必须能继续
	page, err := LoadExpensePage(db, 1, 0, 2, FilterCriteria{CategoryIDs: []uint{1}})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	require.NotNil(t, page.NextKey)
	assert.Equal(t, 1, *page.NextKey)
}

func TestLoadExpensePage_TraversalMatchesFullFilter(t *testing.T) {
	db, mock := newMockGorm(t)

	ts := time.Date(2024, 1, 20, 12, 0, 0, 0, time.Local)
	full := []models.Expense{
		{ID: 1, UserID: 1, Amount: 10, CategoryID: 1, ExpenseTime: ts},
		{ID: 2, UserID: 1, Amount: 20, CategoryID: 2, ExpenseTime: ts.Add(-1 * time.Hour)},
		{ID: 3, UserID: 1, Amount: 30, CategoryID: 1, ExpenseTime: ts.Add(-2 * time.Hour)},
		{ID: 4, UserID: 1, Amount: 40, CategoryID: 2, ExpenseTime: ts.Add(-3 * time.Hour)},
		{ID: 5, UserID: 1, Amount: 50, CategoryID: 1, ExpenseTime: ts.Add(-4 * time.Hour)},
	}

	// 每页2条：原始分页切片 [1,2] [3,4] [5]，最后一轮取到空页结束
	pageSize := 2
	for offset := 0; offset < len(full)+pageSize; offset += pageSize {
		rows := mockExpenseRows()
		for i := offset; i < offset+pageSize && i < len(full); i++ {
			e := full[i]
			rows.AddRow(e.ID, e.UserID, e.Amount, e.CategoryID, "", e.ExpenseTime, ts, ts, nil)
		}
		mock.ExpectQuery("SELECT .* FROM `categories`").
			WillReturnRows(mockCategoryRows())
		mock.ExpectQuery("SELECT .* FROM `expenses`").
			WithArgs(1).
			WillReturnRows(rows)
	}

	criteria := FilterCriteria{CategoryIDs: []uint{1}}

	// 从第0页遍历到 NextKey 为空
	var gotIDs []uint
	pageIndex := 0
	for {
		page, err := LoadExpensePage(db, 1, pageIndex, pageSize, criteria)
		require.NoError(t, err)
		for _, item := range page.Items {
			gotIDs = append(gotIDs, item.ID)
		}
		if page.NextKey == nil {
			break
		}
		pageIndex = *page.NextKey
	}

	// 与整表过滤的结果不重不漏
	var wantIDs []uint
	for _, e := range ApplyFilter(full, criteria) {
		wantIDs = append(wantIDs, e.ID)
	}
	assert.Equal(t, wantIDs, gotIDs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshKey(t *testing.T) {
	prev, next := 1, 3

	// 有上一页：prevKey+1
	assert.Equal(t, 2, RefreshKey(ExpensePage{PrevKey: &prev, NextKey: &next}))

	// 仅有下一页：nextKey-1
	assert.Equal(t, 2, RefreshKey(ExpensePage{NextKey: &next}))

	// 均为空：回到第0页
	assert.Equal(t, 0, RefreshKey(ExpensePage{}))
}
