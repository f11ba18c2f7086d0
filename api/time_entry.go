package api

import (
	"strconv"
	"time"

	"autotrac/database"
	"autotrac/models"

	"github.com/gin-gonic/gin"
)

// TimeEntryHandler 工时记录处理器
type TimeEntryHandler struct{}

func NewTimeEntryHandler() *TimeEntryHandler {
	return &TimeEntryHandler{}
}

type CreateTimeEntryRequest struct {
	ProjectID uint       `json:"project_id" binding:"required" example:"1"`
	StartTime time.Time  `json:"start_time" binding:"required" example:"2024-01-15T09:00:00Z"`
	EndTime   *time.Time `json:"end_time"`
	Note      string     `json:"note" example:"接口联调"`
}

type TimeEntryListRequest struct {
	ProjectID uint   `form:"project_id"`
	DateFrom  string `form:"date_from" example:"2024-01-01"`
	DateTo    string `form:"date_to" example:"2024-12-31"`
}

// Create 创建工时记录
// @Summary 创建工时记录
// @Description 创建一条工时记录。不传 end_time 即为开始计时，之后通过 stop 接口结束。
// @Tags 工时
// @Accept json
// @Produce json
// @Param request body CreateTimeEntryRequest true "工时信息"
// @Success 200 {object} Response{data=models.TimeEntry} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "项目不存在"
// @Router /time-entries/ [post]
func (h *TimeEntryHandler) Create(c *gin.Context) {
	var req CreateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	// 先确认项目存在，不存在时不落库
	var project models.Project
	if err := database.DB.First(&project, req.ProjectID).Error; err != nil {
		NotFound(c, "项目不存在")
		return
	}

	entry := models.TimeEntry{
		ProjectID: req.ProjectID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Note:      req.Note,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建工时记录失败"))
		return
	}
	SuccessWithMessage(c, "创建成功", entry)
}

// List 获取工时记录列表
// @Summary 获取工时记录列表
// @Description 获取工时记录，可按项目和日期范围（含边界）筛选，按开始时间倒序
// @Tags 工时
// @Produce json
// @Param project_id query int false "项目ID筛选"
// @Param date_from query string false "开始日期 (2024-01-01)"
// @Param date_to query string false "结束日期 (2024-12-31)"
// @Success 200 {object} Response{data=[]models.TimeEntry} "获取成功"
// @Failure 400 {object} Response "日期格式错误"
// @Router /time-entries/ [get]
func (h *TimeEntryHandler) List(c *gin.Context) {
	var req TimeEntryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	query := database.DB.Model(&models.TimeEntry{})
	if req.ProjectID > 0 {
		query = query.Where("project_id = ?", req.ProjectID)
	}
	if req.DateFrom != "" {
		t, err := parseDateParam(req.DateFrom, false)
		if err != nil {
			BadRequest(c, "date_from 格式错误，应为: 2006-01-02")
			return
		}
		query = query.Where("start_time >= ?", t)
	}
	if req.DateTo != "" {
		t, err := parseDateParam(req.DateTo, true)
		if err != nil {
			BadRequest(c, "date_to 格式错误，应为: 2006-01-02")
			return
		}
		query = query.Where("start_time <= ?", t)
	}

	var list []models.TimeEntry
	if err := query.Order("start_time DESC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, list)
}

// Stop 结束计时
// @Summary 结束计时
// @Description 把 end_time 置为当前时刻。已结束的记录重复调用不会改变 end_time（幂等）。
// @Tags 工时
// @Produce json
// @Param id path int true "工时记录ID"
// @Success 200 {object} Response{data=models.TimeEntry} "结束成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "工时记录不存在"
// @Router /time-entries/{id}/stop [post]
func (h *TimeEntryHandler) Stop(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	var entry models.TimeEntry
	if err := database.DB.First(&entry, uint(id)).Error; err != nil {
		NotFound(c, "工时记录不存在")
		return
	}

	if entry.Running() {
		now := time.Now()
		if err := database.DB.Model(&entry).Update("end_time", now).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "结束计时失败"))
			return
		}
		entry.EndTime = &now
	}

	SuccessWithMessage(c, "已结束", entry)
}

// Delete 删除工时记录
// @Summary 删除工时记录
// @Description 删除指定的工时记录
// @Tags 工时
// @Produce json
// @Param id path int true "工时记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "工时记录不存在"
// @Router /time-entries/{id}/ [delete]
func (h *TimeEntryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	var entry models.TimeEntry
	if err := database.DB.First(&entry, uint(id)).Error; err != nil {
		NotFound(c, "工时记录不存在")
		return
	}
	if err := database.DB.Delete(&entry).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}
	SuccessWithMessage(c, "删除成功", gin.H{"deleted_time_entry_id": entry.ID})
}
