package handler

import (
	"github.com/gin-gonic/gin"

	"studio-cms/internal/dto"
	"studio-cms/internal/service"
	pkgErrors "studio-cms/pkg/errors"
	"studio-cms/pkg/responses"
	"studio-cms/pkg/utils"
)

// HomeHandler 首页内容接口（轮播与数字统计）
type HomeHandler struct {
	homeService service.HomeService
	responder   responses.Responder
}

func NewHomeHandler(homeService service.HomeService, responder responses.Responder) *HomeHandler {
	return &HomeHandler{
		homeService: homeService,
		responder:   responder,
	}
}

// ListHeroProjects 获取首页轮播
// @Summary 获取启用的首页轮播列表
// @Tags Home
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.HeroProjectResponse}
// @Router /api/hero-projects [get]
func (h *HomeHandler) ListHeroProjects(c *gin.Context) {
	heroes, err := h.homeService.ListHeroProjects()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, heroes)
}

// GetHeroProject 获取轮播详情
// @Summary 获取启用的首页轮播详情
// @Tags Home
// @Accept json
// @Produce json
// @Param id path int64 true "轮播ID"
// @Success 200 {object} responses.Response{data=dto.HeroProjectResponse}
// @Router /api/hero-projects/{id} [get]
func (h *HomeHandler) GetHeroProject(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrHeroProjectNotFound)
		return
	}

	hero, err := h.homeService.GetHeroProject(param.ID)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, hero)
}

// ListStats 获取数字统计
// @Summary 获取启用的首页数字统计列表
// @Tags Home
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.StatResponse}
// @Router /api/stats [get]
func (h *HomeHandler) ListStats(c *gin.Context) {
	stats, err := h.homeService.ListStats()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, stats)
}

// AdminListHeroProjects 后台轮播列表
// @Summary 后台获取首页轮播列表（含停用）
// @Tags Admin/Home
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.HeroProjectResponse}
// @Router /api/admin/hero-projects [get]
func (h *HomeHandler) AdminListHeroProjects(c *gin.Context) {
	heroes, err := h.homeService.AdminListHeroProjects()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, heroes)
}

// AdminGetHeroProject 后台轮播详情
// @Summary 后台获取首页轮播详情（含停用）
// @Tags Admin/Home
// @Accept json
// @Produce json
// @Param id path int64 true "轮播ID"
// @Success 200 {object} responses.Response{data=dto.HeroProjectResponse}
// @Router /api/admin/hero-projects/{id} [get]
func (h *HomeHandler) AdminGetHeroProject(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrHeroProjectNotFound)
		return
	}

	hero, err := h.homeService.AdminGetHeroProject(param.ID)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, hero)
}

// CreateHeroProject 创建轮播
// @Summary 创建首页轮播
// @Tags Admin/Home
// @Accept json
// @Produce json
// @Param request body dto.CreateHeroProjectRequest true "创建轮播请求"
// @Success 201 {object} responses.Response{data=dto.HeroProjectResponse}
// @Router /api/admin/hero-projects [post]
func (h *HomeHandler) CreateHeroProject(c *gin.Context) {
	var req dto.CreateHeroProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	hero, err := h.homeService.CreateHeroProject(&req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Created(c, "Hero project created successfully", hero)
}

// UpdateHeroProject 更新轮播
// @Summary 更新首页轮播（仅更新提供的字段）
// @Tags Admin/Home
// @Accept json
// @Produce json
// @Param id path int64 true "轮播ID"
// @Param request body dto.UpdateHeroProjectRequest true "更新轮播请求"
// @Success 200 {object} responses.Response{data=dto.HeroProjectResponse}
// @Router /api/admin/hero-projects/{id} [put]
func (h *HomeHandler) UpdateHeroProject(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrHeroProjectNotFound)
		return
	}

	var req dto.UpdateHeroProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	hero, err := h.homeService.UpdateHeroProject(param.ID, &req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Hero project updated successfully", hero)
}

// DeleteHeroProject 删除轮播
// @Summary 删除首页轮播
// @Tags Admin/Home
// @Accept json
// @Produce json
// @Param id path int64 true "轮播ID"
// @Success 200 {object} responses.Response
// @Router /api/admin/hero-projects/{id} [delete]
func (h *HomeHandler) DeleteHeroProject(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrHeroProjectNotFound)
		return
	}

	if err := h.homeService.DeleteHeroProject(param.ID); err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Hero project deleted successfully", nil)
}

// AdminListStats 后台数字统计列表
// @Summary 后台获取数字统计列表（含停用）
// @Tags Admin/Home
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.StatResponse}
// @Router /api/admin/stats [get]
func (h *HomeHandler) AdminListStats(c *gin.Context) {
	stats, err := h.homeService.AdminListStats()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, stats)
}

// AdminGetStat 后台数字统计详情
// @Summary 后台获取数字统计详情（含停用）
// @Tags Admin/Home
// @Accept json
// @Produce json
// @Param id path int64 true "统计项ID"
// @Success 200 {object} responses.Response{data=dto.StatResponse}
// @Router /api/admin/stats/{id} [get]
func (h *HomeHandler) AdminGetStat(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrNotFound)
		return
	}

	stat, err := h.homeService.AdminGetStat(param.ID)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, stat)
}

// CreateStat 创建数字统计
// @Summary 创建首页数字统计
// @Tags Admin/Home
// @Accept json
// @Produce json
// @Param request body dto.CreateStatRequest true "创建数字统计请求"
// @Success 201 {object} responses.Response{data=dto.StatResponse}
// @Router /api/admin/stats [post]
func (h *HomeHandler) CreateStat(c *gin.Context) {
	var req dto.CreateStatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	stat, err := h.homeService.CreateStat(&req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Created(c, "Stat created successfully", stat)
}

// UpdateStat 更新数字统计
// @Summary 更新首页数字统计（仅更新提供的字段）
// @Tags Admin/Home
// @Accept json
// @Produce json
// @Param id path int64 true "统计项ID"
// @Param request body dto.UpdateStatRequest true "更新数字统计请求"
// @Success 200 {object} responses.Response{data=dto.StatResponse}
// @Router /api/admin/stats/{id} [put]
func (h *HomeHandler) UpdateStat(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrNotFound)
		return
	}

	var req dto.UpdateStatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	stat, err := h.homeService.UpdateStat(param.ID, &req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Stat updated successfully", stat)
}

// DeleteStat 删除数字统计
// @Summary 删除首页数字统计
// @Tags Admin/Home
// @Accept json
// @Produce json
// @Param id path int64 true "统计项ID"
// @Success 200 {object} responses.Response
// @Router /api/admin/stats/{id} [delete]
func (h *HomeHandler) DeleteStat(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrNotFound)
		return
	}

	if err := h.homeService.DeleteStat(param.ID); err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Stat deleted successfully", nil)
}
