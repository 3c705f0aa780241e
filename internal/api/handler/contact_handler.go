package handler

import (
	"github.com/gin-gonic/gin"

	"studio-cms/internal/dto"
	"studio-cms/internal/service"
	pkgErrors "studio-cms/pkg/errors"
	"studio-cms/pkg/responses"
	"studio-cms/pkg/utils"
)

type ContactHandler struct {
	contactService service.ContactService
	responder      responses.Responder
}

func NewContactHandler(contactService service.ContactService, responder responses.Responder) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		responder:      responder,
	}
}

// Create 提交联系表单
// @Summary 提交联系表单（公开，状态固定为new）
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "联系表单"
// @Success 201 {object} responses.Response{data=dto.ContactEnquiryResponse}
// @Router /api/createcontact [post]
func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	enquiry, err := h.contactService.Create(&req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Created(c, "Thank you for contacting us. We will get back to you soon.", enquiry)
}

// AdminList 后台询盘列表
// @Summary 后台获取询盘列表（支持状态过滤、分页）
// @Tags Admin/Contact
// @Accept json
// @Produce json
// @Param status query string false "状态：new/in_progress/completed/closed，all为不过滤"
// @Param page query int false "页码"
// @Param per_page query int false "每页数量，默认15"
// @Success 200 {object} responses.Response{data=responses.PageData}
// @Router /api/admin/contact [get]
func (h *ContactHandler) AdminList(c *gin.Context) {
	var query dto.ContactListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	enquiries, total, err := h.contactService.AdminList(&query)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.PageSuccess(c, enquiries, total, query.GetPage(), query.GetPerPage(dto.DefaultEnquiryPageSize))
}

// AdminGet 后台询盘详情
// @Summary 后台获取询盘详情
// @Tags Admin/Contact
// @Accept json
// @Produce json
// @Param id path int64 true "询盘ID"
// @Success 200 {object} responses.Response{data=dto.ContactEnquiryResponse}
// @Router /api/admin/contact/{id} [get]
func (h *ContactHandler) AdminGet(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrEnquiryNotFound)
		return
	}

	enquiry, err := h.contactService.AdminGet(param.ID)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, enquiry)
}

// UpdateStatus 更新询盘状态
// @Summary 更新询盘处理状态
// @Tags Admin/Contact
// @Accept json
// @Produce json
// @Param id path int64 true "询盘ID"
// @Param request body dto.UpdateEnquiryStatusRequest true "状态"
// @Success 200 {object} responses.Response{data=dto.ContactEnquiryResponse}
// @Router /api/admin/contact/{id}/status [put]
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrEnquiryNotFound)
		return
	}

	var req dto.UpdateEnquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	enquiry, err := h.contactService.UpdateStatus(param.ID, &req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Enquiry status updated successfully", enquiry)
}

// UpdateNotes 更新询盘备注
// @Summary 更新询盘处理备注
// @Tags Admin/Contact
// @Accept json
// @Produce json
// @Param id path int64 true "询盘ID"
// @Param request body dto.UpdateEnquiryNotesRequest true "备注"
// @Success 200 {object} responses.Response{data=dto.ContactEnquiryResponse}
// @Router /api/admin/contact/{id}/notes [put]
func (h *ContactHandler) UpdateNotes(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrEnquiryNotFound)
		return
	}

	var req dto.UpdateEnquiryNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	enquiry, err := h.contactService.UpdateNotes(param.ID, &req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Enquiry notes updated successfully", enquiry)
}

// Delete 删除询盘
// @Summary 删除询盘
// @Tags Admin/Contact
// @Accept json
// @Produce json
// @Param id path int64 true "询盘ID"
// @Success 200 {object} responses.Response
// @Router /api/admin/contact/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrEnquiryNotFound)
		return
	}

	if err := h.contactService.Delete(param.ID); err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Enquiry deleted successfully", nil)
}
