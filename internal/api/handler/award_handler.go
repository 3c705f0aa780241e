package handler

import (
	"github.com/gin-gonic/gin"

	"studio-cms/internal/dto"
	"studio-cms/internal/service"
	"studio-cms/pkg/responses"
	"studio-cms/pkg/utils"
)

type AwardHandler struct {
	awardService service.AwardService
	responder    responses.Responder
}

func NewAwardHandler(awardService service.AwardService, responder responses.Responder) *AwardHandler {
	return &AwardHandler{
		awardService: awardService,
		responder:    responder,
	}
}

// List 获取获奖列表
// @Summary 获取展平后的获奖记录列表（按年份倒序）
// @Tags Award
// @Accept json
// @Produce json
// @Param year query string false "年份过滤，all为不过滤"
// @Success 200 {object} responses.Response{data=[]dto.AwardResponse}
// @Router /api/awards [get]
func (h *AwardHandler) List(c *gin.Context) {
	var query dto.AwardListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	awards, err := h.awardService.List(&query)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, awards)
}

// ListFeatured 获取精选获奖
// @Summary 获取精选获奖记录列表
// @Tags Award
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.AwardResponse}
// @Router /api/awards/featured [get]
func (h *AwardHandler) ListFeatured(c *gin.Context) {
	awards, err := h.awardService.ListFeatured()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, awards)
}

// ListYears 获取获奖年份列表
// @Summary 获取获奖年份列表（倒序去重）
// @Tags Award
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]int}
// @Router /api/awards/years [get]
func (h *AwardHandler) ListYears(c *gin.Context) {
	years, err := h.awardService.ListYears()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, years)
}

// GetByID 获取获奖详情
// @Summary 按合成id获取获奖记录
// @Tags Award
// @Accept json
// @Produce json
// @Param id path string true "合成id：{项目ID}-{奖项名}"
// @Success 200 {object} responses.Response{data=dto.AwardResponse}
// @Router /api/awards/{id} [get]
func (h *AwardHandler) GetByID(c *gin.Context) {
	award, err := h.awardService.GetByID(c.Param("id"))
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, award)
}
