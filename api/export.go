package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"autotrac/database"
	"autotrac/models"
	"autotrac/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler 导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// exportProject 解析项目ID并确认项目存在，失败时已写入响应
func (h *ExportHandler) exportProject(c *gin.Context) (*models.Project, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return nil, false
	}
	var project models.Project
	if err := database.DB.First(&project, uint(id)).Error; err != nil {
		NotFound(c, "项目不存在")
		return nil, false
	}
	return &project, true
}

// rangeQuery 按可选日期范围过滤，column 为各表的日期列
func rangeQuery(c *gin.Context, query *gorm.DB, column string) (*gorm.DB, bool) {
	if s := c.Query("date_from"); s != "" {
		t, err := parseDateParam(s, false)
		if err != nil {
			BadRequest(c, "date_from 格式错误，应为: 2006-01-02")
			return nil, false
		}
		query = query.Where(column+" >= ?", t)
	}
	if s := c.Query("date_to"); s != "" {
		t, err := parseDateParam(s, true)
		if err != nil {
			BadRequest(c, "date_to 格式错误，应为: 2006-01-02")
			return nil, false
		}
		query = query.Where(column+" <= ?", t)
	}
	return query, true
}

// ExportTimeCSV 导出工时记录 CSV
// @Summary 导出工时记录 CSV
// @Description 导出项目的工时记录为 CSV 文件，按开始时间升序。计时中的记录时长按当前时刻计算。
// @Tags 导出
// @Produce text/csv
// @Param id path int true "项目ID"
// @Param date_from query string false "开始日期 (2024-01-01)"
// @Param date_to query string false "结束日期 (2024-12-31)"
// @Success 200 {file} file "CSV 文件"
// @Failure 404 {object} Response "项目不存在"
// @Router /projects/{id}/export/time.csv [get]
func (h *ExportHandler) ExportTimeCSV(c *gin.Context) {
	project, ok := h.exportProject(c)
	if !ok {
		return
	}

	query := database.DB.Where("project_id = ?", project.ID)
	query, ok = rangeQuery(c, query, "start_time")
	if !ok {
		return
	}

	var entries []models.TimeEntry
	if err := query.Order("start_time ASC").Find(&entries).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	data, err := service.TimeEntriesCSV(entries, time.Now())
	if err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("project_%d_time.csv", project.ID)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", len(data)))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ExportIncomesCSV 导出收入记录 CSV
// @Summary 导出收入记录 CSV
// @Description 导出项目的收入记录为 CSV 文件，按日期升序，金额固定两位小数
// @Tags 导出
// @Produce text/csv
// @Param id path int true "项目ID"
// @Param date_from query string false "开始日期 (2024-01-01)"
// @Param date_to query string false "结束日期 (2024-12-31)"
// @Success 200 {file} file "CSV 文件"
// @Failure 404 {object} Response "项目不存在"
// @Router /projects/{id}/export/incomes.csv [get]
func (h *ExportHandler) ExportIncomesCSV(c *gin.Context) {
	project, ok := h.exportProject(c)
	if !ok {
		return
	}

	query := database.DB.Where("project_id = ?", project.ID)
	query, ok = rangeQuery(c, query, "date")
	if !ok {
		return
	}

	var incomes []models.IncomeRecord
	if err := query.Order("date ASC").Find(&incomes).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	data, err := service.IncomesCSV(incomes)
	if err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("project_%d_incomes.csv", project.ID)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", len(data)))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ExportReportExcel 导出项目 Excel 报表
// @Summary 导出项目 Excel 报表
// @Description 导出项目的工时和收入明细为 Excel 文件，含汇总行
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "项目ID"
// @Param date_from query string false "开始日期 (2024-01-01)"
// @Param date_to query string false "结束日期 (2024-12-31)"
// @Success 200 {file} file "Excel 文件"
// @Failure 404 {object} Response "项目不存在"
// @Router /projects/{id}/export/report.xlsx [get]
func (h *ExportHandler) ExportReportExcel(c *gin.Context) {
	project, ok := h.exportProject(c)
	if !ok {
		return
	}

	entryQ := database.DB.Where("project_id = ?", project.ID)
	entryQ, ok = rangeQuery(c, entryQ, "start_time")
	if !ok {
		return
	}
	var entries []models.TimeEntry
	if err := entryQ.Order("start_time ASC").Find(&entries).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询工时记录失败"))
		return
	}

	incomeQ := database.DB.Where("project_id = ?", project.ID)
	incomeQ, ok = rangeQuery(c, incomeQ, "date")
	if !ok {
		return
	}
	var incomes []models.IncomeRecord
	if err := incomeQ.Order("date ASC").Find(&incomes).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询收入记录失败"))
		return
	}

	now := time.Now()
	summary := service.Summarize(entries, incomes, now)

	// 创建 Excel 文件
	f := excelize.NewFile()
	defer f.Close()

	// 表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
	})

	// 工时明细
	timeSheet := "工时记录"
	f.SetSheetName("Sheet1", timeSheet)
	f.SetColWidth(timeSheet, "A", "A", 10)
	f.SetColWidth(timeSheet, "B", "C", 22)
	f.SetColWidth(timeSheet, "D", "D", 30)
	f.SetColWidth(timeSheet, "E", "E", 14)

	timeHeaders := []string{"ID", "开始时间", "结束时间", "备注", "时长(分钟)"}
	for i, header := range timeHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(timeSheet, cell, header)
		f.SetCellStyle(timeSheet, cell, cell, headerStyle)
	}
	for i, entry := range entries {
		row := i + 2
		endTime := "计时中"
		if entry.EndTime != nil {
			endTime = entry.EndTime.Format("2006-01-02 15:04:05")
		}
		f.SetCellValue(timeSheet, fmt.Sprintf("A%d", row), entry.ID)
		f.SetCellValue(timeSheet, fmt.Sprintf("B%d", row), entry.StartTime.Format("2006-01-02 15:04:05"))
		f.SetCellValue(timeSheet, fmt.Sprintf("C%d", row), endTime)
		f.SetCellValue(timeSheet, fmt.Sprintf("D%d", row), entry.Note)
		f.SetCellValue(timeSheet, fmt.Sprintf("E%d", row), fmt.Sprintf("%.2f", service.EntryMinutes(entry, now)))
	}
	timeSummaryRow := len(entries) + 2
	f.SetCellValue(timeSheet, fmt.Sprintf("A%d", timeSummaryRow), "合计")
	f.SetCellValue(timeSheet, fmt.Sprintf("D%d", timeSummaryRow), fmt.Sprintf("共 %d 条记录", len(entries)))
	f.SetCellValue(timeSheet, fmt.Sprintf("E%d", timeSummaryRow), fmt.Sprintf("%.2f", summary.TotalMinutes))
	f.SetCellStyle(timeSheet, fmt.Sprintf("A%d", timeSummaryRow), fmt.Sprintf("E%d", timeSummaryRow), summaryStyle)

	// 收入明细
	incomeSheet := "收入记录"
	f.NewSheet(incomeSheet)
	f.SetColWidth(incomeSheet, "A", "A", 10)
	f.SetColWidth(incomeSheet, "B", "B", 22)
	f.SetColWidth(incomeSheet, "C", "C", 14)
	f.SetColWidth(incomeSheet, "D", "E", 24)

	incomeHeaders := []string{"ID", "日期", "金额", "来源", "备注"}
	for i, header := range incomeHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(incomeSheet, cell, header)
		f.SetCellStyle(incomeSheet, cell, cell, headerStyle)
	}
	for i, income := range incomes {
		row := i + 2
		f.SetCellValue(incomeSheet, fmt.Sprintf("A%d", row), income.ID)
		f.SetCellValue(incomeSheet, fmt.Sprintf("B%d", row), income.Date.Format("2006-01-02"))
		f.SetCellValue(incomeSheet, fmt.Sprintf("C%d", row), income.Amount)
		f.SetCellValue(incomeSheet, fmt.Sprintf("D%d", row), income.Source)
		f.SetCellValue(incomeSheet, fmt.Sprintf("E%d", row), income.Note)
	}
	incomeSummaryRow := len(incomes) + 2
	f.SetCellValue(incomeSheet, fmt.Sprintf("A%d", incomeSummaryRow), "合计")
	f.SetCellValue(incomeSheet, fmt.Sprintf("C%d", incomeSummaryRow), summary.TotalIncome)
	f.SetCellValue(incomeSheet, fmt.Sprintf("D%d", incomeSummaryRow), fmt.Sprintf("共 %d 条记录", len(incomes)))
	f.SetCellStyle(incomeSheet, fmt.Sprintf("A%d", incomeSummaryRow), fmt.Sprintf("E%d", incomeSummaryRow), summaryStyle)

	filename := fmt.Sprintf("project_%d_report.xlsx", project.ID)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
}
