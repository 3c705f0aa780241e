package handler

import (
	"github.com/gin-gonic/gin"

	"studio-cms/internal/dto"
	"studio-cms/internal/service"
	pkgErrors "studio-cms/pkg/errors"
	"studio-cms/pkg/responses"
	"studio-cms/pkg/utils"
)

type TestimonialHandler struct {
	testimonialService service.TestimonialService
	responder          responses.Responder
}

func NewTestimonialHandler(testimonialService service.TestimonialService, responder responses.Responder) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialService: testimonialService,
		responder:          responder,
	}
}

// List 获取客户评价列表
// @Summary 获取启用的客户评价列表
// @Tags Testimonial
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.TestimonialResponse}
// @Router /api/testimonials [get]
func (h *TestimonialHandler) List(c *gin.Context) {
	testimonials, err := h.testimonialService.List()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, testimonials)
}

// ListFeatured 获取精选客户评价
// @Summary 获取精选客户评价列表
// @Tags Testimonial
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.TestimonialResponse}
// @Router /api/testimonials/featured [get]
func (h *TestimonialHandler) ListFeatured(c *gin.Context) {
	testimonials, err := h.testimonialService.ListFeatured()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, testimonials)
}

// AdminList 后台客户评价列表
// @Summary 后台获取客户评价列表（含停用）
// @Tags Admin/Testimonial
// @Accept json
// @Produce json
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Success 200 {object} responses.Response{data=responses.PageData}
// @Router /api/admin/testimonials [get]
func (h *TestimonialHandler) AdminList(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	page := query.GetPage()
	pageSize := query.GetPerPage(dto.DefaultAdminPageSize)
	testimonials, total, err := h.testimonialService.AdminList(page, pageSize)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.PageSuccess(c, testimonials, total, page, pageSize)
}

// AdminGet 后台客户评价详情
// @Summary 后台获取客户评价详情（含停用）
// @Tags Admin/Testimonial
// @Accept json
// @Produce json
// @Param id path int64 true "评价ID"
// @Success 200 {object} responses.Response{data=dto.TestimonialResponse}
// @Router /api/admin/testimonials/{id} [get]
func (h *TestimonialHandler) AdminGet(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrNotFound)
		return
	}

	testimonial, err := h.testimonialService.AdminGet(param.ID)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, testimonial)
}

// Create 创建客户评价
// @Summary 创建客户评价
// @Tags Admin/Testimonial
// @Accept json
// @Produce json
// @Param request body dto.CreateTestimonialRequest true "创建客户评价请求"
// @Success 201 {object} responses.Response{data=dto.TestimonialResponse}
// @Router /api/admin/testimonials [post]
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req dto.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	testimonial, err := h.testimonialService.Create(&req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Created(c, "Testimonial created successfully", testimonial)
}

// Update 更新客户评价
// @Summary 更新客户评价（仅更新提供的字段）
// @Tags Admin/Testimonial
// @Accept json
// @Produce json
// @Param id path int64 true "评价ID"
// @Param request body dto.UpdateTestimonialRequest true "更新客户评价请求"
// @Success 200 {object} responses.Response{data=dto.TestimonialResponse}
// @Router /api/admin/testimonials/{id} [put]
func (h *TestimonialHandler) Update(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrNotFound)
		return
	}

	var req dto.UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	testimonial, err := h.testimonialService.Update(param.ID, &req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Testimonial updated successfully", testimonial)
}

// Delete 删除客户评价
// @Summary 删除客户评价
// @Tags Admin/Testimonial
// @Accept json
// @Produce json
// @Param id path int64 true "评价ID"
// @Success 200 {object} responses.Response
// @Router /api/admin/testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrNotFound)
		return
	}

	if err := h.testimonialService.Delete(param.ID); err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Testimonial deleted successfully", nil)
}
