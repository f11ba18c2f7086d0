package api

import (
	"time"
)

// parseDateParam 解析日期范围参数，支持 2006-01-02 和 RFC3339 两种格式
// endOfDay 为 true 时把纯日期扩展到当天最后一秒，保证 date_to 当天的记录也被包含
func parseDateParam(s string, endOfDay bool) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		if endOfDay {
			t = t.Add(24*time.Hour - time.Second)
		}
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
