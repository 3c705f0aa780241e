package service

import (
	"go.uber.org/zap"

	"studio-cms/internal/dto"
	"studio-cms/internal/model"
	"studio-cms/internal/pkg/logger"
	"studio-cms/internal/repository"
	"studio-cms/pkg/utils"
)

// 相关博客返回条数
const recentBlogLimit = 3

type BlogService interface {
	List(query *dto.BlogListQuery) ([]*dto.BlogResponse, int64, error)
	GetBySlug(slug string) (*dto.BlogResponse, error)
	ListRecent(slug string) ([]*dto.BlogResponse, error)
	ListCategories() ([]string, error)

	AdminList(page, pageSize int, keyword string) ([]*dto.BlogResponse, int64, error)
	AdminGet(id int64) (*dto.BlogResponse, error)
	Create(req *dto.CreateBlogRequest) (*dto.BlogResponse, error)
	Update(id int64, req *dto.UpdateBlogRequest) (*dto.BlogResponse, error)
	Delete(id int64) error
}

type blogService struct {
	repo      repository.BlogRepository
	baseURL   string
	mediaRoot string
}

func NewBlogService(repo repository.BlogRepository, baseURL, mediaRoot string) BlogService {
	return &blogService{
		repo:      repo,
		baseURL:   baseURL,
		mediaRoot: mediaRoot,
	}
}

// List 列表响应不含正文
func (s *blogService) List(query *dto.BlogListQuery) ([]*dto.BlogResponse, int64, error) {
	blogs, total, err := s.repo.List(query)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]*dto.BlogResponse, len(blogs))
	for i, b := range blogs {
		responses[i] = s.toResponse(b, false)
	}
	return responses, total, nil
}

// GetBySlug 公开详情，读取同时递增浏览数
func (s *blogService) GetBySlug(slug string) (*dto.BlogResponse, error) {
	blog, err := s.repo.FindPublishedBySlug(slug)
	if err != nil {
		return nil, err
	}
	// 浏览数是尽力而为的副作用，失败只记日志不影响详情返回
	if err := s.repo.IncrementViews(blog.ID); err != nil {
		logger.Warn("递增博客浏览数失败", zap.String("slug", blog.Slug), zap.Error(err))
	} else {
		blog.Views++
	}
	return s.toResponse(blog, true), nil
}

func (s *blogService) ListRecent(slug string) ([]*dto.BlogResponse, error) {
	blog, err := s.repo.FindPublishedBySlug(slug)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.ListRecent(blog.ID, recentBlogLimit)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.BlogResponse, len(recent))
	for i, b := range recent {
		responses[i] = s.toResponse(b, false)
	}
	return responses, nil
}

func (s *blogService) ListCategories() ([]string, error) {
	return s.repo.DistinctCategories()
}

func (s *blogService) AdminList(page, pageSize int, keyword string) ([]*dto.BlogResponse, int64, error) {
	blogs, total, err := s.repo.AdminList(page, pageSize, keyword)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]*dto.BlogResponse, len(blogs))
	for i, b := range blogs {
		responses[i] = s.toResponse(b, false)
	}
	return responses, total, nil
}

func (s *blogService) AdminGet(id int64) (*dto.BlogResponse, error) {
	blog, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(blog, true), nil
}

func (s *blogService) Create(req *dto.CreateBlogRequest) (*dto.BlogResponse, error) {
	blog := &model.Blog{
		Slug:        req.Slug,
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Category:    req.Category,
		Author:      req.Author,
		Image:       req.Image,
		Tags:        req.Tags,
		IsPublished: req.IsPublished,
		PublishedAt: parseDate(req.PublishedAt),
		SortOrder:   req.SortOrder,
	}

	if err := s.repo.Create(blog); err != nil {
		return nil, err
	}
	return s.toResponse(blog, true), nil
}

// Update 局部更新；slug作为对外稳定标识不可修改
func (s *blogService) Update(id int64, req *dto.UpdateBlogRequest) (*dto.BlogResponse, error) {
	blog, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Excerpt != nil {
		blog.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.Category != nil {
		blog.Category = *req.Category
	}
	if req.Author != nil {
		blog.Author = *req.Author
	}
	if req.Image != nil {
		blog.Image = *req.Image
	}
	if req.Tags != nil {
		blog.Tags = *req.Tags
	}
	if req.IsPublished != nil {
		blog.IsPublished = *req.IsPublished
	}
	if req.PublishedAt != nil {
		blog.PublishedAt = parseDate(*req.PublishedAt)
	}
	if req.SortOrder != nil {
		blog.SortOrder = *req.SortOrder
	}

	if err := s.repo.Update(blog); err != nil {
		return nil, err
	}
	return s.toResponse(blog, true), nil
}

func (s *blogService) Delete(id int64) error {
	blog, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	removeMediaFiles(s.mediaRoot, []string{blog.Image})
	return s.repo.Delete(blog.ID)
}

func (s *blogService) toResponse(b *model.Blog, withContent bool) *dto.BlogResponse {
	resp := &dto.BlogResponse{
		ID:          b.ID,
		Slug:        b.Slug,
		Title:       b.Title,
		Excerpt:     b.Excerpt,
		Category:    b.Category,
		Author:      b.Author,
		Image:       utils.AssetURL(s.baseURL, b.Image),
		Tags:        b.Tags,
		Views:       b.Views,
		IsPublished: b.IsPublished,
		PublishedAt: formatTimePtr(b.PublishedAt),
		SortOrder:   b.SortOrder,
		CreatedAt:   formatTime(b.CreatedAt),
	}
	if withContent {
		resp.Content = b.Content
	}
	if b.PublishedAt != nil {
		resp.FormattedDate = utils.FormatMonthYear(*b.PublishedAt)
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	return resp
}
