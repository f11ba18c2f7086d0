package api

import (
	"strconv"
	"time"

	"autotrac/database"
	"autotrac/models"

	"github.com/gin-gonic/gin"
)

// IncomeHandler 收入记录处理器
type IncomeHandler struct{}

func NewIncomeHandler() *IncomeHandler {
	return &IncomeHandler{}
}

type CreateIncomeRequest struct {
	ProjectID uint       `json:"project_id" binding:"required" example:"1"`
	Date      *time.Time `json:"date" example:"2024-02-01T00:00:00Z"`
	Amount    float64    `json:"amount" binding:"required" example:"1500.00"`
	Currency  string     `json:"currency" example:"CNY"`
	Source    string     `json:"source" example:"发票 #42"`
	Note      string     `json:"note"`
}

type IncomeListRequest struct {
	ProjectID uint   `form:"project_id"`
	DateFrom  string `form:"date_from" example:"2024-01-01"`
	DateTo    string `form:"date_to" example:"2024-12-31"`
}

// Create 创建收入记录
// @Summary 创建收入记录
// @Description 创建一条收入记录，不传 date 时默认为当前时刻
// @Tags 收入
// @Accept json
// @Produce json
// @Param request body CreateIncomeRequest true "收入信息"
// @Success 200 {object} Response{data=models.IncomeRecord} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "项目不存在"
// @Router /incomes/ [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	var req CreateIncomeRequest
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

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}
	income := models.IncomeRecord{
		ProjectID: req.ProjectID,
		Date:      date,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Source:    req.Source,
		Note:      req.Note,
	}
	if err := database.DB.Create(&income).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建收入记录失败"))
		return
	}
	SuccessWithMessage(c, "创建成功", income)
}

// List 获取收入记录列表
// @Summary 获取收入记录列表
// @Description 获取收入记录，可按项目和日期范围（含边界）筛选，按日期倒序
// @Tags 收入
// @Produce json
// @Param project_id query int false "项目ID筛选"
// @Param date_from query string false "开始日期 (2024-01-01)"
// @Param date_to query string false "结束日期 (2024-12-31)"
// @Success 200 {object} Response{data=[]models.IncomeRecord} "获取成功"
// @Failure 400 {object} Response "日期格式错误"
// @Router /incomes/ [get]
func (h *IncomeHandler) List(c *gin.Context) {
	var req IncomeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	query := database.DB.Model(&models.IncomeRecord{})
	if req.ProjectID > 0 {
		query = query.Where("project_id = ?", req.ProjectID)
	}
	if req.DateFrom != "" {
		t, err := parseDateParam(req.DateFrom, false)
		if err != nil {
			BadRequest(c, "date_from 格式错误，应为: 2006-01-02")
			return
		}
		query = query.Where("date >= ?", t)
	}
	if req.DateTo != "" {
		t, err := parseDateParam(req.DateTo, true)
		if err != nil {
			BadRequest(c, "date_to 格式错误，应为: 2006-01-02")
			return
		}
		query = query.Where("date <= ?", t)
	}

	var list []models.IncomeRecord
	if err := query.Order("date DESC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, list)
}

// Delete 删除收入记录
// @Summary 删除收入记录
// @Description 删除指定的收入记录
// @Tags 收入
// @Produce json
// @Param id path int true "收入记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "收入记录不存在"
// @Router /incomes/{id}/ [delete]
func (h *IncomeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	var income models.IncomeRecord
	if err := database.DB.First(&income, uint(id)).Error; err != nil {
		NotFound(c, "收入记录不存在")
		return
	}
	if err := database.DB.Delete(&income).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}
	SuccessWithMessage(c, "删除成功", gin.H{"deleted_income_id": income.ID})
}
