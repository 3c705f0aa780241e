package service

import (
	"strings"

	"studio-cms/internal/dto"
	"studio-cms/internal/model"
	"studio-cms/internal/repository"
	pkgErrors "studio-cms/pkg/errors"
	"studio-cms/pkg/utils"
)

// 相似项目返回条数
const similarProjectLimit = 4

// 各分类的从业年限与客户满意度为固定的业务数值，非数据派生
var categoryYearsExperience = map[string]int{
	model.CategoryArchitecture: 15,
	model.CategoryInterior:     12,
	model.CategoryLandscape:    10,
}

const clientSatisfaction = "100%"

type ProjectService interface {
	List(query *dto.ProjectListQuery) ([]*dto.ProjectResponse, int64, error)
	GetByID(id int64) (*dto.ProjectResponse, error)
	GetBySlug(slug string) (*dto.ProjectResponse, error)
	ListSimilar(id int64) ([]*dto.ProjectResponse, error)
	ListFeatured() ([]*dto.ProjectResponse, error)
	ListByCategory(category string) ([]*dto.ProjectResponse, error)
	ListCategories() ([]*dto.ProjectCategoryResponse, error)
	ListYears() ([]int, error)
	Stats() ([]*dto.ProjectStatsResponse, error)

	AdminList(page, pageSize int, keyword string) ([]*dto.ProjectResponse, int64, error)
	AdminGet(id int64) (*dto.ProjectResponse, error)
	Create(req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	Update(id int64, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(id int64) error
}

type projectService struct {
	repo      repository.ProjectRepository
	baseURL   string
	mediaRoot string
}

func NewProjectService(repo repository.ProjectRepository, baseURL, mediaRoot string) ProjectService {
	return &projectService{
		repo:      repo,
		baseURL:   baseURL,
		mediaRoot: mediaRoot,
	}
}

func (s *projectService) List(query *dto.ProjectListQuery) ([]*dto.ProjectResponse, int64, error) {
	projects, total, err := s.repo.List(query)
	if err != nil {
		return nil, 0, err
	}
	return s.toResponses(projects), total, nil
}

func (s *projectService) GetByID(id int64) (*dto.ProjectResponse, error) {
	project, err := s.repo.FindPublishedByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(project), nil
}

func (s *projectService) GetBySlug(slug string) (*dto.ProjectResponse, error) {
	project, err := s.repo.FindPublishedBySlug(slug)
	if err != nil {
		return nil, err
	}
	return s.toResponse(project), nil
}

func (s *projectService) ListSimilar(id int64) ([]*dto.ProjectResponse, error) {
	project, err := s.repo.FindPublishedByID(id)
	if err != nil {
		return nil, err
	}
	similar, err := s.repo.ListSimilar(project.ID, project.Category, similarProjectLimit)
	if err != nil {
		return nil, err
	}
	return s.toResponses(similar), nil
}

func (s *projectService) ListFeatured() ([]*dto.ProjectResponse, error) {
	projects, err := s.repo.ListFeatured()
	if err != nil {
		return nil, err
	}
	return s.toResponses(projects), nil
}

func (s *projectService) ListByCategory(category string) ([]*dto.ProjectResponse, error) {
	if !model.IsValidCategory(category) {
		return nil, pkgErrors.ErrInvalidCategory
	}
	projects, err := s.repo.ListPublishedByCategory(category)
	if err != nil {
		return nil, err
	}
	return s.toResponses(projects), nil
}

func (s *projectService) ListCategories() ([]*dto.ProjectCategoryResponse, error) {
	categories := make([]*dto.ProjectCategoryResponse, 0, len(model.Categories))
	for _, category := range model.Categories {
		count, err := s.repo.CountPublished(category)
		if err != nil {
			return nil, err
		}
		categories = append(categories, &dto.ProjectCategoryResponse{
			Value: category,
			Label: categoryLabel(category),
			Count: count,
		})
	}
	return categories, nil
}

func (s *projectService) ListYears() ([]int, error) {
	return s.repo.DistinctYears()
}

func (s *projectService) Stats() ([]*dto.ProjectStatsResponse, error) {
	stats := make([]*dto.ProjectStatsResponse, 0, len(model.Categories))
	for _, category := range model.Categories {
		total, err := s.repo.CountPublished(category)
		if err != nil {
			return nil, err
		}
		featured, err := s.repo.CountFeatured(category)
		if err != nil {
			return nil, err
		}
		projects, err := s.repo.ListPublishedByCategory(category)
		if err != nil {
			return nil, err
		}
		var awarded int64
		for _, p := range projects {
			if len(p.Awards) > 0 {
				awarded++
			}
		}
		stats = append(stats, &dto.ProjectStatsResponse{
			Category:           category,
			TotalProjects:      total,
			FeaturedProjects:   featured,
			AwardWinning:       awarded,
			YearsExperience:    categoryYearsExperience[category],
			ClientSatisfaction: clientSatisfaction,
		})
	}
	return stats, nil
}

func (s *projectService) AdminList(page, pageSize int, keyword string) ([]*dto.ProjectResponse, int64, error) {
	projects, total, err := s.repo.AdminList(page, pageSize, keyword)
	if err != nil {
		return nil, 0, err
	}
	return s.toResponses(projects), total, nil
}

func (s *projectService) AdminGet(id int64) (*dto.ProjectResponse, error) {
	project, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(project), nil
}

func (s *projectService) Create(req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	existing, _ := s.repo.FindBySlug(req.Slug)
	if existing != nil {
		return nil, pkgErrors.NewValidation("Validation failed",
			map[string]string{"slug": "The slug has already been taken"})
	}

	project := &model.Project{
		Slug:             req.Slug,
		Name:             req.Name,
		Category:         req.Category,
		SubCategory:      req.SubCategory,
		Type:             req.Type,
		Style:            req.Style,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		FullDescription:  req.FullDescription,
		Concept:          req.Concept,
		DesignPhilosophy: req.DesignPhilosophy,
		Location:         req.Location,
		Year:             req.Year,
		Area:             req.Area,
		Budget:           req.Budget,
		Duration:         req.Duration,
		CoverImage:       req.CoverImage,
		Images:           req.Images,
		AdditionalImages: req.AdditionalImages,
		Awards:           req.Awards,
		Details:          req.Details,
		Highlights:       req.Highlights,
		Tags:             req.Tags,
		Team:             req.Team,
		IsFeatured:       req.IsFeatured,
		IsPublished:      req.IsPublished,
		OrderColumn:      req.OrderColumn,
	}

	if err := s.repo.Create(project); err != nil {
		return nil, err
	}
	return s.toResponse(project), nil
}

// Update 局部更新；slug作为对外稳定标识不可修改
func (s *projectService) Update(id int64, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Category != nil {
		project.Category = *req.Category
	}
	if req.SubCategory != nil {
		project.SubCategory = *req.SubCategory
	}
	if req.Type != nil {
		project.Type = *req.Type
	}
	if req.Style != nil {
		project.Style = *req.Style
	}
	if req.ShortDescription != nil {
		project.ShortDescription = *req.ShortDescription
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.FullDescription != nil {
		project.FullDescription = *req.FullDescription
	}
	if req.Concept != nil {
		project.Concept = *req.Concept
	}
	if req.DesignPhilosophy != nil {
		project.DesignPhilosophy = *req.DesignPhilosophy
	}
	if req.Location != nil {
		project.Location = *req.Location
	}
	if req.Year != nil {
		project.Year = *req.Year
	}
	if req.Area != nil {
		project.Area = *req.Area
	}
	if req.Budget != nil {
		project.Budget = *req.Budget
	}
	if req.Duration != nil {
		project.Duration = *req.Duration
	}
	if req.CoverImage != nil {
		project.CoverImage = *req.CoverImage
	}
	if req.Images != nil {
		project.Images = *req.Images
	}
	if req.AdditionalImages != nil {
		project.AdditionalImages = *req.AdditionalImages
	}
	if req.Awards != nil {
		project.Awards = *req.Awards
	}
	if req.Details != nil {
		project.Details = req.Details
	}
	if req.Highlights != nil {
		project.Highlights = *req.Highlights
	}
	if req.Tags != nil {
		project.Tags = *req.Tags
	}
	if req.Team != nil {
		project.Team = *req.Team
	}
	if req.IsFeatured != nil {
		project.IsFeatured = *req.IsFeatured
	}
	if req.IsPublished != nil {
		project.IsPublished = *req.IsPublished
	}
	if req.OrderColumn != nil {
		project.OrderColumn = *req.OrderColumn
	}

	if err := s.repo.Update(project); err != nil {
		return nil, err
	}
	return s.toResponse(project), nil
}

func (s *projectService) Delete(id int64) error {
	project, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	removeMediaFiles(s.mediaRoot, project.MediaPaths())
	return s.repo.Delete(project.ID)
}

func (s *projectService) toResponse(p *model.Project) *dto.ProjectResponse {
	resp := &dto.ProjectResponse{
		ID:               p.ID,
		Slug:             p.Slug,
		Name:             p.Name,
		Category:         p.Category,
		SubCategory:      p.SubCategory,
		Type:             p.Type,
		Style:            p.Style,
		ShortDescription: p.ShortDescription,
		Description:      p.Description,
		FullDescription:  p.FullDescription,
		Concept:          p.Concept,
		DesignPhilosophy: p.DesignPhilosophy,
		Location:         p.Location,
		Year:             p.Year,
		Area:             p.Area,
		Budget:           p.Budget,
		Duration:         p.Duration,
		CoverImage:       utils.AssetURL(s.baseURL, p.CoverImage),
		Images:           utils.AssetURLs(s.baseURL, p.Images),
		AdditionalImages: utils.AssetURLs(s.baseURL, p.AdditionalImages),
		Awards:           p.Awards,
		Details:          p.Details,
		Highlights:       p.Highlights,
		Tags:             p.Tags,
		ProjectTeam:      p.Team,
		IsFeatured:       p.IsFeatured,
		IsPublished:      p.IsPublished,
		OrderColumn:      p.OrderColumn,
		CreatedAt:        formatTime(p.CreatedAt),
		UpdatedAt:        formatTime(p.UpdatedAt),
	}
	// JSON类字段保证序列化为空集合而非null
	if resp.Awards == nil {
		resp.Awards = []model.AwardEntry{}
	}
	if resp.Highlights == nil {
		resp.Highlights = map[string]string{}
	}
	if resp.Tags == nil {
		resp.Tags = map[string]string{}
	}
	if resp.ProjectTeam == nil {
		resp.ProjectTeam = map[string]string{}
	}
	if len(resp.Details) == 0 {
		resp.Details = []byte("{}")
	}
	return resp
}

func (s *projectService) toResponses(projects []*model.Project) []*dto.ProjectResponse {
	responses := make([]*dto.ProjectResponse, len(projects))
	for i, p := range projects {
		responses[i] = s.toResponse(p)
	}
	return responses
}

// categoryLabel 分类的展示名（首字母大写）
func categoryLabel(category string) string {
	if category == "" {
		return ""
	}
	return strings.ToUpper(category[:1]) + category[1:]
}
