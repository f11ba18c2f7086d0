package service

import (
	"strings"
	"testing"
	"time"

	"autotrac/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeEntriesCSV(t *testing.T) {
	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	now := start.Add(2 * time.Hour)

	entries := []models.TimeEntry{
		{ID: 1, ProjectID: 3, StartTime: start, EndTime: timePtr(start.Add(90 * time.Minute)), Note: "开发"},
		{ID: 2, ProjectID: 3, StartTime: start.Add(time.Hour)}, // 计时中
	}

	data, err := TimeEntriesCSV(entries, now)
	require.NoError(t, err)

	body := strings.TrimPrefix(string(data), "\xEF\xBB\xBF")
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	// 表头 + N 行数据
	require.Len(t, lines, 3)
	assert.Equal(t, "id,project_id,start_time,end_time,note,duration_minutes", lines[0])
	assert.Equal(t, "1,3,2024-01-15T09:00:00Z,2024-01-15T10:30:00Z,开发,90.00", lines[1])
	// 计时中的记录 end_time 为空串，时长按 now 计算
	assert.Equal(t, "2,3,2024-01-15T10:00:00Z,,,60.00", lines[2])
}

func TestIncomesCSV(t *testing.T) {
	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	incomes := []models.IncomeRecord{
		{ID: 1, ProjectID: 3, Date: date, Amount: 1500, Source: "发票 #42"},
		{ID: 2, ProjectID: 3, Date: date.AddDate(0, 0, 10), Amount: 99.9, Note: "尾款"},
	}

	data, err := IncomesCSV(incomes)
	require.NoError(t, err)

	body := strings.TrimPrefix(string(data), "\xEF\xBB\xBF")
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,project_id,date,amount,source,note", lines[0])
	// 金额固定两位小数：1500 -> 1500.00
	assert.Equal(t, "1,3,2024-02-01T00:00:00Z,1500.00,发票 #42,", lines[1])
	assert.Equal(t, "2,3,2024-02-11T00:00:00Z,99.90,,尾款", lines[2])
}

func TestIncomesCSV_Empty(t *testing.T) {
	data, err := IncomesCSV(nil)
	require.NoError(t, err)

	body := strings.TrimPrefix(string(data), "\xEF\xBB\xBF")
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	// 只有表头
	require.Len(t, lines, 1)
}
