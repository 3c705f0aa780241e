package handler

import (
	"github.com/gin-gonic/gin"

	"studio-cms/internal/dto"
	"studio-cms/internal/service"
	pkgErrors "studio-cms/pkg/errors"
	"studio-cms/pkg/responses"
	"studio-cms/pkg/utils"
)

type PressHandler struct {
	pressService service.PressService
	responder    responses.Responder
}

func NewPressHandler(pressService service.PressService, responder responses.Responder) *PressHandler {
	return &PressHandler{
		pressService: pressService,
		responder:    responder,
	}
}

// List 获取媒体报道列表
// @Summary 获取启用的媒体报道列表
// @Tags Press
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.PressArticleResponse}
// @Router /api/press [get]
func (h *PressHandler) List(c *gin.Context) {
	articles, err := h.pressService.List()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, articles)
}

// ListFeatured 获取精选媒体报道
// @Summary 获取精选媒体报道列表
// @Tags Press
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.PressArticleResponse}
// @Router /api/press/featured [get]
func (h *PressHandler) ListFeatured(c *gin.Context) {
	articles, err := h.pressService.ListFeatured()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, articles)
}

// GetByID 获取媒体报道详情
// @Summary 获取启用的媒体报道详情
// @Tags Press
// @Accept json
// @Produce json
// @Param id path int64 true "报道ID"
// @Success 200 {object} responses.Response{data=dto.PressArticleResponse}
// @Router /api/press/{id} [get]
func (h *PressHandler) GetByID(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrArticleNotFound)
		return
	}

	article, err := h.pressService.GetByID(param.ID)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, article)
}

// AdminList 后台媒体报道列表
// @Summary 后台获取媒体报道列表（含停用）
// @Tags Admin/Press
// @Accept json
// @Produce json
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Success 200 {object} responses.Response{data=responses.PageData}
// @Router /api/admin/press [get]
func (h *PressHandler) AdminList(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	page := query.GetPage()
	pageSize := query.GetPerPage(dto.DefaultAdminPageSize)
	articles, total, err := h.pressService.AdminList(page, pageSize)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.PageSuccess(c, articles, total, page, pageSize)
}

// AdminGet 后台媒体报道详情
// @Summary 后台获取媒体报道详情（含停用）
// @Tags Admin/Press
// @Accept json
// @Produce json
// @Param id path int64 true "报道ID"
// @Success 200 {object} responses.Response{data=dto.PressArticleResponse}
// @Router /api/admin/press/{id} [get]
func (h *PressHandler) AdminGet(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrArticleNotFound)
		return
	}

	article, err := h.pressService.AdminGet(param.ID)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, article)
}

// Create 创建媒体报道
// @Summary 创建媒体报道
// @Tags Admin/Press
// @Accept json
// @Produce json
// @Param request body dto.CreatePressArticleRequest true "创建媒体报道请求"
// @Success 201 {object} responses.Response{data=dto.PressArticleResponse}
// @Router /api/admin/press [post]
func (h *PressHandler) Create(c *gin.Context) {
	var req dto.CreatePressArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	article, err := h.pressService.Create(&req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Created(c, "Press article created successfully", article)
}

// Update 更新媒体报道
// @Summary 更新媒体报道（仅更新提供的字段）
// @Tags Admin/Press
// @Accept json
// @Produce json
// @Param id path int64 true "报道ID"
// @Param request body dto.UpdatePressArticleRequest true "更新媒体报道请求"
// @Success 200 {object} responses.Response{data=dto.PressArticleResponse}
// @Router /api/admin/press/{id} [put]
func (h *PressHandler) Update(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrArticleNotFound)
		return
	}

	var req dto.UpdatePressArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	article, err := h.pressService.Update(param.ID, &req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Press article updated successfully", article)
}

// Delete 删除媒体报道
// @Summary 删除媒体报道
// @Tags Admin/Press
// @Accept json
// @Produce json
// @Param id path int64 true "报道ID"
// @Success 200 {object} responses.Response
// @Router /api/admin/press/{id} [delete]
func (h *PressHandler) Delete(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrArticleNotFound)
		return
	}

	if err := h.pressService.Delete(param.ID); err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Press article deleted successfully", nil)
}
