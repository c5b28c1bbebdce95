package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaultCategories(t *testing.T) {
	defaults := GetDefaultCategories()
	require.Len(t, defaults, 7)

	// 顺序固定，对应 sort_order 1..7
	names := make([]string, 0, len(defaults))
	for _, d := range defaults {
		names = append(names, d.Name)
		assert.NotEmpty(t, d.Icon)
		assert.Regexp(t, `^#[0-9A-Fa-f]{6}$`, d.Color)
	}
	assert.Equal(t, []string{"Food", "Transport", "Entertainment", "Shopping", "Bills", "Healthcare", "Other"}, names)

	// 名称唯一
	seen := make(map[string]bool)
	for _, d := range defaults {
		assert.False(t, seen[d.Name], "重复的默认类别: %s", d.Name)
		seen[d.Name] = true
	}
}
