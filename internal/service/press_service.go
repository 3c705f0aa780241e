package service

import (
	"time"

	"studio-cms/internal/dto"
	"studio-cms/internal/model"
	"studio-cms/internal/repository"
	"studio-cms/pkg/utils"
)

type PressService interface {
	List() ([]*dto.PressArticleResponse, error)
	ListFeatured() ([]*dto.PressArticleResponse, error)
	GetByID(id int64) (*dto.PressArticleResponse, error)

	AdminList(page, pageSize int) ([]*dto.PressArticleResponse, int64, error)
	AdminGet(id int64) (*dto.PressArticleResponse, error)
	Create(req *dto.CreatePressArticleRequest) (*dto.PressArticleResponse, error)
	Update(id int64, req *dto.UpdatePressArticleRequest) (*dto.PressArticleResponse, error)
	Delete(id int64) error
}

type pressService struct {
	repo      repository.PressRepository
	baseURL   string
	mediaRoot string
}

func NewPressService(repo repository.PressRepository, baseURL, mediaRoot string) PressService {
	return &pressService{
		repo:      repo,
		baseURL:   baseURL,
		mediaRoot: mediaRoot,
	}
}

func (s *pressService) List() ([]*dto.PressArticleResponse, error) {
	articles, err := s.repo.ListActive()
	if err != nil {
		return nil, err
	}
	return s.toResponses(articles), nil
}

func (s *pressService) ListFeatured() ([]*dto.PressArticleResponse, error) {
	articles, err := s.repo.ListFeatured()
	if err != nil {
		return nil, err
	}
	return s.toResponses(articles), nil
}

func (s *pressService) GetByID(id int64) (*dto.PressArticleResponse, error) {
	article, err := s.repo.FindActiveByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(article), nil
}

func (s *pressService) AdminList(page, pageSize int) ([]*dto.PressArticleResponse, int64, error) {
	articles, total, err := s.repo.AdminList(page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return s.toResponses(articles), total, nil
}

func (s *pressService) AdminGet(id int64) (*dto.PressArticleResponse, error) {
	article, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(article), nil
}

func (s *pressService) Create(req *dto.CreatePressArticleRequest) (*dto.PressArticleResponse, error) {
	article := &model.PressArticle{
		Title:              req.Title,
		Publication:        req.Publication,
		Author:             req.Author,
		PublishedDate:      parseDate(req.PublishedDate),
		Excerpt:            req.Excerpt,
		Content:            req.Content,
		URL:                req.URL,
		Image:              req.Image,
		Category:           req.Category,
		PublicationDetails: req.PublicationDetails,
		KeyQuotes:          req.KeyQuotes,
		Featured:           req.Featured,
	}
	article.IsActive = req.IsActive
	article.SortOrder = req.SortOrder

	if err := s.repo.Create(article); err != nil {
		return nil, err
	}
	return s.toResponse(article), nil
}

func (s *pressService) Update(id int64, req *dto.UpdatePressArticleRequest) (*dto.PressArticleResponse, error) {
	article, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Publication != nil {
		article.Publication = *req.Publication
	}
	if req.Author != nil {
		article.Author = *req.Author
	}
	if req.PublishedDate != nil {
		article.PublishedDate = parseDate(*req.PublishedDate)
	}
	if req.Excerpt != nil {
		article.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.URL != nil {
		article.URL = *req.URL
	}
	if req.Image != nil {
		article.Image = *req.Image
	}
	if req.Category != nil {
		article.Category = *req.Category
	}
	if req.PublicationDetails != nil {
		article.PublicationDetails = *req.PublicationDetails
	}
	if req.KeyQuotes != nil {
		article.KeyQuotes = *req.KeyQuotes
	}
	if req.Featured != nil {
		article.Featured = *req.Featured
	}
	if req.IsActive != nil {
		article.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		article.SortOrder = *req.SortOrder
	}

	if err := s.repo.Update(article); err != nil {
		return nil, err
	}
	return s.toResponse(article), nil
}

func (s *pressService) Delete(id int64) error {
	article, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	removeMediaFiles(s.mediaRoot, []string{article.Image})
	return s.repo.Delete(article.ID)
}

func (s *pressService) toResponse(a *model.PressArticle) *dto.PressArticleResponse {
	resp := &dto.PressArticleResponse{
		ID:                 a.ID,
		Title:              a.Title,
		Publication:        a.Publication,
		Author:             a.Author,
		Excerpt:            a.Excerpt,
		Content:            a.Content,
		URL:                a.URL,
		Image:              utils.AssetURL(s.baseURL, a.Image),
		Category:           a.Category,
		PublicationDetails: a.PublicationDetails,
		KeyQuotes:          a.KeyQuotes,
		Featured:           a.Featured,
		IsActive:           a.IsActive,
		SortOrder:          a.SortOrder,
		CreatedAt:          formatTime(a.CreatedAt),
	}
	if a.PublishedDate != nil {
		resp.PublishedDate = a.PublishedDate.Format("2006-01-02")
		resp.FormattedDate = utils.FormatMonthYear(*a.PublishedDate)
	}
	if resp.PublicationDetails == nil {
		resp.PublicationDetails = map[string]string{}
	}
	if resp.KeyQuotes == nil {
		resp.KeyQuotes = []string{}
	}
	return resp
}

func (s *pressService) toResponses(articles []*model.PressArticle) []*dto.PressArticleResponse {
	responses := make([]*dto.PressArticleResponse, len(articles))
	for i, a := range articles {
		responses[i] = s.toResponse(a)
	}
	return responses
}

// parseDate 解析"2006-01-02"格式日期，空串或非法值返回nil
// 入参已经过binding的datetime校验，这里只兜底
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}
