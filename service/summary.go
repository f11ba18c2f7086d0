package service

import (
	"time"

	"autotrac/models"
)

// Summary 项目汇总结果
// EffectiveHourlyRate 在没有任何工时时为 nil，避免除零
type Summary struct {
	TotalMinutes        float64  `json:"total_minutes"`
	TotalIncome         float64  `json:"total_income"`
	EffectiveHourlyRate *float64 `json:"effective_hourly_rate"`
}

// EntryMinutes 计算单条工时记录的分钟数
// 计时中的记录（EndTime 为 nil）按 now 实时计算，随调用时刻增长
func EntryMinutes(entry models.TimeEntry, now time.Time) float64 {
	end := now
	if entry.EndTime != nil {
		end = *entry.EndTime
	}
	return end.Sub(entry.StartTime).Minutes()
}

// Summarize 汇总一组工时记录和收入记录
// 时薪 = 总收入 / 总小时数，总工时为 0 时不计算
func Summarize(entries []models.TimeEntry, incomes []models.IncomeRecord, now time.Time) Summary {
	var s Summary
	for _, entry := range entries {
		s.TotalMinutes += EntryMinutes(entry, now)
	}
	for _, income := range incomes {
		s.TotalIncome += income.Amount
	}
	if s.TotalMinutes > 0 {
		rate := s.TotalIncome / (s.TotalMinutes / 60)
		s.EffectiveHourlyRate = &rate
	}
	return s
}
