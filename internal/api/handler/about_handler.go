package handler

import (
	"github.com/gin-gonic/gin"

	"studio-cms/internal/dto"
	"studio-cms/internal/service"
	pkgErrors "studio-cms/pkg/errors"
	"studio-cms/pkg/responses"
	"studio-cms/pkg/utils"
)

// AboutHandler 关于页内容接口（区块、团队、历程、使命）
type AboutHandler struct {
	aboutService service.AboutService
	responder    responses.Responder
}

func NewAboutHandler(aboutService service.AboutService, responder responses.Responder) *AboutHandler {
	return &AboutHandler{
		aboutService: aboutService,
		responder:    responder,
	}
}

// ListSections 获取关于我们区块
// @Summary 获取启用的关于我们区块列表
// @Tags About
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.AboutSectionResponse}
// @Router /api/about-section [get]
func (h *AboutHandler) ListSections(c *gin.Context) {
	sections, err := h.aboutService.ListSections()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, sections)
}

// ListTeamMembers 获取团队成员
// @Summary 获取启用的团队成员列表
// @Tags About
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.TeamMemberResponse}
// @Router /api/about-us/team [get]
func (h *AboutHandler) ListTeamMembers(c *gin.Context) {
	members, err := h.aboutService.ListTeamMembers()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, members)
}

// ListTimelineItems 获取发展历程
// @Summary 获取启用的发展历程列表
// @Tags About
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.TimelineItemResponse}
// @Router /api/about-us/timeline [get]
func (h *AboutHandler) ListTimelineItems(c *gin.Context) {
	items, err := h.aboutService.ListTimelineItems()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, items)
}

// ListMissions 获取使命条目
// @Summary 获取启用的使命条目列表
// @Tags About
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.MissionResponse}
// @Router /api/about-us/missions [get]
func (h *AboutHandler) ListMissions(c *gin.Context) {
	missions, err := h.aboutService.ListMissions()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, missions)
}

// AdminListSections 后台区块列表
// @Summary 后台获取关于我们区块列表（含停用）
// @Tags Admin/About
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.AboutSectionResponse}
// @Router /api/admin/about-sections [get]
func (h *AboutHandler) AdminListSections(c *gin.Context) {
	sections, err := h.aboutService.AdminListSections()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, sections)
}

// AdminGetSection 后台区块详情
// @Summary 后台获取关于我们区块详情（含停用）
// @Tags Admin/About
// @Accept json
// @Produce json
// @Param id path int64 true "区块ID"
// @Success 200 {object} responses.Response{data=dto.AboutSectionResponse}
// @Router /api/admin/about-sections/{id} [get]
func (h *AboutHandler) AdminGetSection(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrNotFound)
		return
	}

	section, err := h.aboutService.AdminGetSection(param.ID)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, section)
}

// CreateSection 创建区块
// @Summary 创建关于我们区块
// @Tags Admin/About
// @Accept json
// @Produce json
// @Param request body dto.CreateAboutSectionRequest true "创建区块请求"
// @Success 201 {object} responses.Response{data=dto.AboutSectionResponse}
// @Router /api/admin/about-sections [post]
func (h *AboutHandler) CreateSection(c *gin.Context) {
	var req dto.CreateAboutSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	section, err := h.aboutService.CreateSection(&req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Created(c, "About section created successfully", section)
}

// UpdateSection 更新区块
// @Summary 更新关于我们区块（仅更新提供的字段）
// @Tags Admin/About
// @Accept json
// @Produce json
// @Param id path int64 true "区块ID"
// @Param request body dto.UpdateAboutSectionRequest true "更新区块请求"
// @Success 200 {object} responses.Response{data=dto.AboutSectionResponse}
// @Router /api/admin/about-sections/{id} [put]
func (h *AboutHandler) UpdateSection(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrNotFound)
		return
	}

	var req dto.UpdateAboutSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	section, err := h.aboutService.UpdateSection(param.ID, &req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "About section updated successfully", section)
}

// DeleteSection 删除区块
// @Summary 删除关于我们区块
// @Tags Admin/About
// @Accept json
// @Produce json
// @Param id path int64 true "区块ID"
// @Success 200 {object} responses.Response
// @Router /api/admin/about-sections/{id} [delete]
func (h *AboutHandler) DeleteSection(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrNotFound)
		return
	}

	if err := h.aboutService.DeleteSection(param.ID); err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "About section deleted successfully", nil)
}

// AdminListTeamMembers 后台团队成员列表
// @Summary 后台获取团队成员列表（含停用）
// @Tags Admin/About
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.TeamMemberResponse}
// @Router /api/admin/team-members [get]
func (h *AboutHandler) AdminListTeamMembers(c *gin.Context) {
	members, err := h.aboutService.AdminListTeamMembers()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, members)
}

// AdminGetTeamMember 后台团队成员详情
// @Summary 后台获取团队成员详情（含停用）
// @Tags Admin/About
// @Accept json
// @Produce json
// @Param id path int64 true "成员ID"
// @Success 200 {object} responses.Response{data=dto.TeamMemberResponse}
// @Router /api/admin/team-members/{id} [get]
func (h *AboutHandler) AdminGetTeamMember(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrNotFound)
		return
	}

	member, err := h.aboutService.AdminGetTeamMember(param.ID)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, member)
}

// CreateTeamMember 创建团队成员
// @Summary 创建团队成员
// @Tags Admin/About
// @Accept json
// @Produce json
// @Param request body dto.CreateTeamMemberRequest true "创建成员请求"
// @Success 201 {object} responses.Response{data=dto.TeamMemberResponse}
// @Router /api/admin/team-members [post]
func (h *AboutHandler) CreateTeamMember(c *gin.Context) {
	var req dto.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	member, err := h.aboutService.CreateTeamMember(&req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Created(c, "Team member created successfully", member)
}

// UpdateTeamMember 更新团队成员
// @Summary 更新团队成员（仅更新提供的字段）
// @Tags Admin/About
// @Accept json
// @Produce json
// @Param id path int64 true "成员ID"
// @Param request body dto.UpdateTeamMemberRequest true "更新成员请求"
// @Success 200 {object} responses.Response{data=dto.TeamMemberResponse}
// @Router /api/admin/team-members/{id} [put]
func (h *AboutHandler) UpdateTeamMember(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrNotFound)
		return
	}

	var req dto.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	member, err := h.aboutService.UpdateTeamMember(param.ID, &req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Team member updated successfully", member)
}

// DeleteTeamMember 删除团队成员
// @Summary 删除团队成员
// @Tags Admin/About
// @Accept json
// @Produce json
// @Param id path int64 true "成员ID"
// @Success 200 {object} responses.Response
// @Router /api/admin/team-members/{id} [delete]
func (h *AboutHandler) DeleteTeamMember(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrNotFound)
		return
	}

	if err := h.aboutService.DeleteTeamMember(param.ID); err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Team member deleted successfully", nil)
}

// AdminListTimelineItems 后台发展历程列表
// @Summary 后台获取发展历程列表（含停用）
// @Tags Admin/About
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.TimelineItemResponse}
// @Router /api/admin/timeline [get]
func (h *AboutHandler) AdminListTimelineItems(c *gin.Context) {
	items, err := h.aboutService.AdminListTimelineItems()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, items)
}

// AdminGetTimelineItem 后台发展历程详情
// @Summary 后台获取发展历程详情（含停用）
// @Tags Admin/About
// @Accept json
// @Produce json
// @Param id path int64 true "节点ID"
// @Success 200 {object} responses.Response{data=dto.TimelineItemResponse}
// @Router /api/admin/timeline/{id} [get]
func (h *AboutHandler) AdminGetTimelineItem(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrNotFound)
		return
	}

	item, err := h.aboutService.AdminGetTimelineItem(param.ID)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, item)
}

// CreateTimelineItem 创建发展历程节点
// @Summary 创建发展历程节点
// @Tags Admin/About
// @Accept json
// @Produce json
// @Param request body dto.CreateTimelineItemRequest true "创建节点请求"
// @Success 201 {object} responses.Response{data=dto.TimelineItemResponse}
// @Router /api/admin/timeline [post]
func (h *AboutHandler) CreateTimelineItem(c *gin.Context) {
	var req dto.CreateTimelineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	item, err := h.aboutService.CreateTimelineItem(&req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Created(c, "Timeline item created successfully", item)
}

// UpdateTimelineItem 更新发展历程节点
// @Summary 更新发展历程节点（仅更新提供的字段）
// @Tags Admin/About
// @Accept json
// @Produce json
// @Param id path int64 true "节点ID"
// @Param request body dto.UpdateTimelineItemRequest true "更新节点请求"
// @Success 200 {object} responses.Response{data=dto.TimelineItemResponse}
// @Router /api/admin/timeline/{id} [put]
func (h *AboutHandler) UpdateTimelineItem(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrNotFound)
		return
	}

	var req dto.UpdateTimelineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	item, err := h.aboutService.UpdateTimelineItem(param.ID, &req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Timeline item updated successfully", item)
}

// DeleteTimelineItem 删除发展历程节点
// @Summary 删除发展历程节点
// @Tags Admin/About
// @Accept json
// @Produce json
// @Param id path int64 true "节点ID"
// @Success 200 {object} responses.Response
// @Router /api/admin/timeline/{id} [delete]
func (h *AboutHandler) DeleteTimelineItem(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrNotFound)
		return
	}

	if err := h.aboutService.DeleteTimelineItem(param.ID); err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Timeline item deleted successfully", nil)
}

// AdminListMissions 后台使命条目列表
// @Summary 后台获取使命条目列表（含停用）
// @Tags Admin/About
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.MissionResponse}
// @Router /api/admin/missions [get]
func (h *AboutHandler) AdminListMissions(c *gin.Context) {
	missions, err := h.aboutService.AdminListMissions()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, missions)
}

// AdminGetMission 后台使命条目详情
// @Summary 后台获取使命条目详情（含停用）
// @Tags Admin/About
// @Accept json
// @Produce json
// @Param id path int64 true "条目ID"
// @Success 200 {object} responses.Response{data=dto.MissionResponse}
// @Router /api/admin/missions/{id} [get]
func (h *AboutHandler) AdminGetMission(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrNotFound)
		return
	}

	mission, err := h.aboutService.AdminGetMission(param.ID)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, mission)
}

// CreateMission 创建使命条目
// @Summary 创建使命条目
// @Tags Admin/About
// @Accept json
// @Produce json
// @Param request body dto.CreateMissionRequest true "创建条目请求"
// @Success 201 {object} responses.Response{data=dto.MissionResponse}
// @Router /api/admin/missions [post]
func (h *AboutHandler) CreateMission(c *gin.Context) {
	var req dto.CreateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	mission, err := h.aboutService.CreateMission(&req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Created(c, "Mission created successfully", mission)
}

// UpdateMission 更新使命条目
// @Summary 更新使命条目（仅更新提供的字段）
// @Tags Admin/About
// @Accept json
// @Produce json
// @Param id path int64 true "条目ID"
// @Param request body dto.UpdateMissionRequest true "更新条目请求"
// @Success 200 {object} responses.Response{data=dto.MissionResponse}
// @Router /api/admin/missions/{id} [put]
func (h *AboutHandler) UpdateMission(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrNotFound)
		return
	}

	var req dto.UpdateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	mission, err := h.aboutService.UpdateMission(param.ID, &req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Mission updated successfully", mission)
}

// DeleteMission 删除使命条目
// @Summary 删除使命条目
// @Tags Admin/About
// @Accept json
// @Produce json
// @Param id path int64 true "条目ID"
// @Success 200 {object} responses.Response
// @Router /api/admin/missions/{id} [delete]
func (h *AboutHandler) DeleteMission(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrNotFound)
		return
	}

	if err := h.aboutService.DeleteMission(param.ID); err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Mission deleted successfully", nil)
}
