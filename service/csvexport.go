package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"autotrac/models"
)

// 时间列使用 RFC3339，与 JSON 响应中的时间格式保持一致

// TimeEntriesCSV 将工时记录序列化为 CSV
// 列顺序固定；计时中的记录 end_time 输出空串，时长按 now 计算
func TimeEntriesCSV(entries []models.TimeEntry, now time.Time) ([]byte, error) {
	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"id", "project_id", "start_time", "end_time", "note", "duration_minutes"}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, entry := range entries {
		endTime := ""
		if entry.EndTime != nil {
			endTime = entry.EndTime.Format(time.RFC3339)
		}
		row := []string{
			fmt.Sprintf("%d", entry.ID),
			fmt.Sprintf("%d", entry.ProjectID),
			entry.StartTime.Format(time.RFC3339),
			endTime,
			entry.Note,
			fmt.Sprintf("%.2f", EntryMinutes(entry, now)),
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// IncomesCSV 将收入记录序列化为 CSV，金额固定两位小数
func IncomesCSV(incomes []models.IncomeRecord) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"id", "project_id", "date", "amount", "source", "note"}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, income := range incomes {
		row := []string{
			fmt.Sprintf("%d", income.ID),
			fmt.Sprintf("%d", income.ProjectID),
			income.Date.Format(time.RFC3339),
			fmt.Sprintf("%.2f", income.Amount),
			income.Source,
			income.Note,
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
