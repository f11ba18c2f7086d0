package api

import (
	"strconv"

	"autotrac/database"
	"autotrac/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProjectHandler 项目处理器
type ProjectHandler struct{}

func NewProjectHandler() *ProjectHandler {
	return &ProjectHandler{}
}

type CreateProjectRequest struct {
	Name        string   `json:"name" binding:"required" example:"Acme 官网改版"`
	Description string   `json:"description"`
	Client      string   `json:"client" example:"Acme Inc."`
	Notes       string   `json:"notes"`
	HourlyRate  *float64 `json:"hourly_rate" example:"200.00"`
}

// List 获取项目列表
// @Summary 获取项目列表
// @Description 获取全部项目，按 ID 升序
// @Tags 项目
// @Produce json
// @Success 200 {object} Response{data=[]models.Project} "获取成功"
// @Router /projects/ [get]
func (h *ProjectHandler) List(c *gin.Context) {
	var list []models.Project
	if err := database.DB.Order("id ASC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, list)
}

// Create 创建项目
// @Summary 创建项目
// @Description 创建一个新项目。项目名已存在时直接返回已有项目，不报错也不产生重复记录。
// @Tags 项目
// @Accept json
// @Produce json
// @Param request body CreateProjectRequest true "项目信息"
// @Success 200 {object} Response{data=models.Project} "创建成功或返回已有项目"
// @Failure 400 {object} Response "请求参数错误"
// @Router /projects/ [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	// 同名项目直接返回已有记录
	var existing models.Project
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		SuccessWithMessage(c, "项目已存在", existing)
		return
	}

	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
		Client:      req.Client,
		Notes:       req.Notes,
		HourlyRate:  req.HourlyRate,
	}
	if err := database.DB.Create(&project).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建项目失败"))
		return
	}
	SuccessWithMessage(c, "创建成功", project)
}

// Delete 删除项目
// @Summary 删除项目
// @Description 删除项目并级联删除其下所有工时记录和收入记录
// @Tags 项目
// @Produce json
// @Param id path int true "项目ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "项目不存在"
// @Router /projects/{id}/ [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
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

	// 先删子记录再删项目，保证不留孤儿数据
	// 物理删除而非软删除：项目名有唯一索引，残留行会挡住同名项目重建
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("project_id = ?", project.ID).Delete(&models.TimeEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("project_id = ?", project.ID).Delete(&models.IncomeRecord{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&project).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}
	SuccessWithMessage(c, "删除成功", gin.H{"deleted_project_id": project.ID})
}
