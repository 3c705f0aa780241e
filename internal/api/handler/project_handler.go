package handler

import (
	"github.com/gin-gonic/gin"

	"studio-cms/internal/dto"
	"studio-cms/internal/service"
	pkgErrors "studio-cms/pkg/errors"
	"studio-cms/pkg/responses"
	"studio-cms/pkg/utils"
)

type ProjectHandler struct {
	projectService service.ProjectService
	responder      responses.Responder
}

func NewProjectHandler(projectService service.ProjectService, responder responses.Responder) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		responder:      responder,
	}
}

// List 获取项目列表
// @Summary 获取已发布项目列表（支持分面过滤、搜索、排序、分页）
// @Tags Project
// @Accept json
// @Produce json
// @Param category query string false "分类，all为不过滤"
// @Param sub_category query string false "子分类"
// @Param type query string false "类型"
// @Param style query string false "风格"
// @Param search query string false "关键字搜索"
// @Param year query int false "年份"
// @Param sort query string false "排序：newest/oldest/name"
// @Param page query int false "页码"
// @Param per_page query int false "每页数量，默认12"
// @Success 200 {object} responses.Response{data=responses.PageData}
// @Router /api/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	var query dto.ProjectListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	projects, total, err := h.projectService.List(&query)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.PageSuccess(c, projects, total, query.GetPage(), query.GetPerPage(dto.DefaultProjectPageSize))
}

// GetByID 获取项目详情
// @Summary 获取已发布项目详情
// @Tags Project
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Success 200 {object} responses.Response{data=dto.ProjectResponse}
// @Router /api/projects/{id} [get]
func (h *ProjectHandler) GetByID(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrProjectNotFound)
		return
	}

	project, err := h.projectService.GetByID(param.ID)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, project)
}

// GetBySlug 按slug获取项目详情
// @Summary 按slug获取已发布项目详情
// @Tags Project
// @Accept json
// @Produce json
// @Param slug path string true "项目slug"
// @Success 200 {object} responses.Response{data=dto.ProjectResponse}
// @Router /api/projects/slug/{slug} [get]
func (h *ProjectHandler) GetBySlug(c *gin.Context) {
	var param dto.SlugParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrProjectNotFound)
		return
	}

	project, err := h.projectService.GetBySlug(param.Slug)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, project)
}

// ListSimilar 获取相似项目
// @Summary 获取同分类下的相似项目（不含自身，最多4条）
// @Tags Project
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Success 200 {object} responses.Response{data=[]dto.ProjectResponse}
// @Router /api/projects/{id}/similar [get]
func (h *ProjectHandler) ListSimilar(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrProjectNotFound)
		return
	}

	projects, err := h.projectService.ListSimilar(param.ID)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, projects)
}

// ListFeatured 获取精选项目
// @Summary 获取精选项目列表
// @Tags Project
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.ProjectResponse}
// @Router /api/projects/featured [get]
func (h *ProjectHandler) ListFeatured(c *gin.Context) {
	projects, err := h.projectService.ListFeatured()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, projects)
}

// ListByCategory 按分类获取项目
// @Summary 按分类获取已发布项目列表
// @Tags Project
// @Accept json
// @Produce json
// @Param category path string true "分类：architecture/interior/landscape"
// @Success 200 {object} responses.Response{data=[]dto.ProjectResponse}
// @Router /api/projects/category/{category} [get]
func (h *ProjectHandler) ListByCategory(c *gin.Context) {
	projects, err := h.projectService.ListByCategory(c.Param("category"))
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, projects)
}

// ListCategories 获取项目分类
// @Summary 获取项目分类及各分类下的项目数
// @Tags Project
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.ProjectCategoryResponse}
// @Router /api/projects/categories [get]
func (h *ProjectHandler) ListCategories(c *gin.Context) {
	categories, err := h.projectService.ListCategories()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, categories)
}

// ListYears 获取项目年份列表
// @Summary 获取已发布项目的年份列表（倒序）
// @Tags Project
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]int}
// @Router /api/projects/years [get]
func (h *ProjectHandler) ListYears(c *gin.Context) {
	years, err := h.projectService.ListYears()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, years)
}

// Stats 获取项目统计
// @Summary 获取各分类的项目统计数据
// @Tags Project
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.ProjectStatsResponse}
// @Router /api/projects/stats [get]
func (h *ProjectHandler) Stats(c *gin.Context) {
	stats, err := h.projectService.Stats()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, stats)
}

// AdminList 后台项目列表
// @Summary 后台获取项目列表（含未发布）
// @Tags Admin/Project
// @Accept json
// @Produce json
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Param keyword query string false "关键字搜索"
// @Success 200 {object} responses.Response{data=responses.PageData}
// @Router /api/admin/projects [get]
func (h *ProjectHandler) AdminList(c *gin.Context) {
	var query dto.AdminListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	page := query.GetPage()
	pageSize := query.GetPerPage(dto.DefaultProjectPageSize)
	projects, total, err := h.projectService.AdminList(page, pageSize, query.Keyword)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.PageSuccess(c, projects, total, page, pageSize)
}

// AdminGet 后台项目详情
// @Summary 后台获取项目详情（含未发布）
// @Tags Admin/Project
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Success 200 {object} responses.Response{data=dto.ProjectResponse}
// @Router /api/admin/projects/{id} [get]
func (h *ProjectHandler) AdminGet(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrProjectNotFound)
		return
	}

	project, err := h.projectService.AdminGet(param.ID)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, project)
}

// Create 创建项目
// @Summary 创建项目
// @Tags Admin/Project
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "创建项目请求"
// @Success 201 {object} responses.Response{data=dto.ProjectResponse}
// @Router /api/admin/projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	project, err := h.projectService.Create(&req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Created(c, "Project created successfully", project)
}

// Update 更新项目
// @Summary 更新项目（仅更新提供的字段，slug不可修改）
// @Tags Admin/Project
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Param request body dto.UpdateProjectRequest true "更新项目请求"
// @Success 200 {object} responses.Response{data=dto.ProjectResponse}
// @Router /api/admin/projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrProjectNotFound)
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	project, err := h.projectService.Update(param.ID, &req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Project updated successfully", project)
}

// Delete 删除项目
// @Summary 删除项目（连带清理本地媒体文件）
// @Tags Admin/Project
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Success 200 {object} responses.Response
// @Router /api/admin/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrProjectNotFound)
		return
	}

	if err := h.projectService.Delete(param.ID); err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Project deleted successfully", nil)
}
