package handler

import (
	"github.com/gin-gonic/gin"

	"studio-cms/internal/dto"
	"studio-cms/internal/service"
	pkgErrors "studio-cms/pkg/errors"
	"studio-cms/pkg/responses"
	"studio-cms/pkg/utils"
)

type BlogHandler struct {
	blogService service.BlogService
	responder   responses.Responder
}

func NewBlogHandler(blogService service.BlogService, responder responses.Responder) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
		responder:   responder,
	}
}

// List 获取博客列表
// @Summary 获取已发布博客列表（支持分类过滤、搜索、分页）
// @Tags Blog
// @Accept json
// @Produce json
// @Param category query string false "分类，all为不过滤"
// @Param search query string false "关键字搜索"
// @Param page query int false "页码"
// @Param per_page query int false "每页数量，默认6"
// @Success 200 {object} responses.Response{data=responses.PageData}
// @Router /api/blogs [get]
func (h *BlogHandler) List(c *gin.Context) {
	var query dto.BlogListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	blogs, total, err := h.blogService.List(&query)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.PageSuccess(c, blogs, total, query.GetPage(), query.GetPerPage(dto.DefaultBlogPageSize))
}

// GetBySlug 获取博客详情
// @Summary 按slug获取已发布博客详情（浏览数+1）
// @Tags Blog
// @Accept json
// @Produce json
// @Param slug path string true "博客slug"
// @Success 200 {object} responses.Response{data=dto.BlogResponse}
// @Router /api/blogs/{slug} [get]
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	var param dto.SlugParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrBlogNotFound)
		return
	}

	blog, err := h.blogService.GetBySlug(param.Slug)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, blog)
}

// ListRecent 获取相关博客
// @Summary 获取指定博客之外的近期博客（最多3条）
// @Tags Blog
// @Accept json
// @Produce json
// @Param slug path string true "博客slug"
// @Success 200 {object} responses.Response{data=[]dto.BlogResponse}
// @Router /api/blogs/{slug}/recent [get]
func (h *BlogHandler) ListRecent(c *gin.Context) {
	var param dto.SlugParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrBlogNotFound)
		return
	}

	blogs, err := h.blogService.ListRecent(param.Slug)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, blogs)
}

// ListCategories 获取博客分类
// @Summary 获取已发布博客的分类列表
// @Tags Blog
// @Accept json
// @Produce json
// @Success 200 {object} responses.Response{data=[]string}
// @Router /api/blogs/categories [get]
func (h *BlogHandler) ListCategories(c *gin.Context) {
	categories, err := h.blogService.ListCategories()
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, categories)
}

// AdminList 后台博客列表
// @Summary 后台获取博客列表（含未发布）
// @Tags Admin/Blog
// @Accept json
// @Produce json
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Param keyword query string false "关键字搜索"
// @Success 200 {object} responses.Response{data=responses.PageData}
// @Router /api/admin/blogs [get]
func (h *BlogHandler) AdminList(c *gin.Context) {
	var query dto.AdminListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	page := query.GetPage()
	pageSize := query.GetPerPage(dto.DefaultAdminPageSize)
	blogs, total, err := h.blogService.AdminList(page, pageSize, query.Keyword)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.PageSuccess(c, blogs, total, page, pageSize)
}

// AdminGet 后台博客详情
// @Summary 后台获取博客详情（含未发布）
// @Tags Admin/Blog
// @Accept json
// @Produce json
// @Param id path int64 true "博客ID"
// @Success 200 {object} responses.Response{data=dto.BlogResponse}
// @Router /api/admin/blogs/{id} [get]
func (h *BlogHandler) AdminGet(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrBlogNotFound)
		return
	}

	blog, err := h.blogService.AdminGet(param.ID)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Success(c, blog)
}

// Create 创建博客
// @Summary 创建博客
// @Tags Admin/Blog
// @Accept json
// @Produce json
// @Param request body dto.CreateBlogRequest true "创建博客请求"
// @Success 201 {object} responses.Response{data=dto.BlogResponse}
// @Router /api/admin/blogs [post]
func (h *BlogHandler) Create(c *gin.Context) {
	var req dto.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	blog, err := h.blogService.Create(&req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.Created(c, "Blog post created successfully", blog)
}

// Update 更新博客
// @Summary 更新博客（仅更新提供的字段，slug不可修改）
// @Tags Admin/Blog
// @Accept json
// @Produce json
// @Param id path int64 true "博客ID"
// @Param request body dto.UpdateBlogRequest true "更新博客请求"
// @Success 200 {object} responses.Response{data=dto.BlogResponse}
// @Router /api/admin/blogs/{id} [put]
func (h *BlogHandler) Update(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrBlogNotFound)
		return
	}

	var req dto.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, utils.ValidationErrorMap(err))
		return
	}

	blog, err := h.blogService.Update(param.ID, &req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Blog post updated successfully", blog)
}

// Delete 删除博客
// @Summary 删除博客
// @Tags Admin/Blog
// @Accept json
// @Produce json
// @Param id path int64 true "博客ID"
// @Success 200 {object} responses.Response
// @Router /api/admin/blogs/{id} [delete]
func (h *BlogHandler) Delete(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		h.responder.Error(c, pkgErrors.ErrBlogNotFound)
		return
	}

	if err := h.blogService.Delete(param.ID); err != nil {
		h.responder.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Blog post deleted successfully", nil)
}
