package api

import (
	"strconv"
	"time"

	"autotrac/database"
	"autotrac/models"
	"autotrac/service"

	"github.com/gin-gonic/gin"
)

// ProjectSummaryResponse 项目汇总返回
type ProjectSummaryResponse struct {
	Project models.Project `json:"project"`
	service.Summary
}

// Summary 获取项目汇总
// @Summary 获取项目汇总
// @Description 统计项目在指定日期范围内的总工时（分钟）、总收入和实际时薪。计时中的记录按当前时刻计算时长，总工时为 0 时不返回时薪。
// @Tags 项目
// @Produce json
// @Param id path int true "项目ID"
// @Param date_from query string false "开始日期 (2024-01-01)"
// @Param date_to query string false "结束日期 (2024-12-31)"
// @Success 200 {object} Response{data=ProjectSummaryResponse} "获取成功"
// @Failure 400 {object} Response "参数错误"
// @Failure 404 {object} Response "项目不存在"
// @Router /projects/{id}/summary [get]
func (h *ProjectHandler) Summary(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	var project models.Project
	if err := database.DB.First(&project, uint(id)).Error; err != nil {
		NotFound(c, "项目不存在")
		return
	}

	entryQ := database.DB.Where("project_id = ?", project.ID)
	incomeQ := database.DB.Where("project_id = ?", project.ID)

	if s := c.Query("date_from"); s != "" {
		t, err := parseDateParam(s, false)
		if err != nil {
			BadRequest(c, "date_from 格式错误，应为: 2006-01-02")
			return
		}
		entryQ = entryQ.Where("start_time >= ?", t)
		incomeQ = incomeQ.Where("date >= ?", t)
	}
	if s := c.Query("date_to"); s != "" {
		t, err := parseDateParam(s, true)
		if err != nil {
			BadRequest(c, "date_to 格式错误，应为: 2006-01-02")
			return
		}
		entryQ = entryQ.Where("start_time <= ?", t)
		incomeQ = incomeQ.Where("date <= ?", t)
	}

	var entries []models.TimeEntry
	if err := entryQ.Find(&entries).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询工时记录失败"))
		return
	}
	var incomes []models.IncomeRecord
	if err := incomeQ.Find(&incomes).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询收入记录失败"))
		return
	}

	Success(c, ProjectSummaryResponse{
		Project: project,
		Summary: service.Summarize(entries, incomes, time.Now()),
	})
}
