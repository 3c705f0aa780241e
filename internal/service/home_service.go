package service

import (
	"studio-cms/internal/dto"
	"studio-cms/internal/model"
	"studio-cms/internal/repository"
	"studio-cms/pkg/utils"
)

// HomeService 首页内容（轮播与数字统计）
type HomeService interface {
	ListHeroProjects() ([]*dto.HeroProjectResponse, error)
	GetHeroProject(id int64) (*dto.HeroProjectResponse, error)
	ListStats() ([]*dto.StatResponse, error)

	AdminListHeroProjects() ([]*dto.HeroProjectResponse, error)
	AdminGetHeroProject(id int64) (*dto.HeroProjectResponse, error)
	CreateHeroProject(req *dto.CreateHeroProjectRequest) (*dto.HeroProjectResponse, error)
	UpdateHeroProject(id int64, req *dto.UpdateHeroProjectRequest) (*dto.HeroProjectResponse, error)
	DeleteHeroProject(id int64) error

	AdminListStats() ([]*dto.StatResponse, error)
	AdminGetStat(id int64) (*dto.StatResponse, error)
	CreateStat(req *dto.CreateStatRequest) (*dto.StatResponse, error)
	UpdateStat(id int64, req *dto.UpdateStatRequest) (*dto.StatResponse, error)
	DeleteStat(id int64) error
}

type homeService struct {
	heroRepo  repository.HeroProjectRepository
	statRepo  repository.StatRepository
	baseURL   string
	mediaRoot string
}

func NewHomeService(heroRepo repository.HeroProjectRepository, statRepo repository.StatRepository, baseURL, mediaRoot string) HomeService {
	return &homeService{
		heroRepo:  heroRepo,
		statRepo:  statRepo,
		baseURL:   baseURL,
		mediaRoot: mediaRoot,
	}
}

func (s *homeService) ListHeroProjects() ([]*dto.HeroProjectResponse, error) {
	heroes, err := s.heroRepo.ListActive()
	if err != nil {
		return nil, err
	}
	return s.toHeroResponses(heroes), nil
}

func (s *homeService) GetHeroProject(id int64) (*dto.HeroProjectResponse, error) {
	hero, err := s.heroRepo.FindActiveByID(id)
	if err != nil {
		return nil, err
	}
	return s.toHeroResponse(hero), nil
}

func (s *homeService) ListStats() ([]*dto.StatResponse, error) {
	stats, err := s.statRepo.ListActive()
	if err != nil {
		return nil, err
	}
	return s.toStatResponses(stats), nil
}

func (s *homeService) AdminListHeroProjects() ([]*dto.HeroProjectResponse, error) {
	heroes, err := s.heroRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return s.toHeroResponses(heroes), nil
}

func (s *homeService) AdminGetHeroProject(id int64) (*dto.HeroProjectResponse, error) {
	hero, err := s.heroRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.toHeroResponse(hero), nil
}

func (s *homeService) CreateHeroProject(req *dto.CreateHeroProjectRequest) (*dto.HeroProjectResponse, error) {
	hero := &model.HeroProject{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Image:       req.Image,
		LinkURL:     req.LinkURL,
	}
	hero.IsActive = req.IsActive
	hero.SortOrder = req.SortOrder

	if err := s.heroRepo.Create(hero); err != nil {
		return nil, err
	}
	return s.toHeroResponse(hero), nil
}

func (s *homeService) UpdateHeroProject(id int64, req *dto.UpdateHeroProjectRequest) (*dto.HeroProjectResponse, error) {
	hero, err := s.heroRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		hero.Title = *req.Title
	}
	if req.Subtitle != nil {
		hero.Subtitle = *req.Subtitle
	}
	if req.Description != nil {
		hero.Description = *req.Description
	}
	if req.Image != nil {
		hero.Image = *req.Image
	}
	if req.LinkURL != nil {
		hero.LinkURL = *req.LinkURL
	}
	if req.IsActive != nil {
		hero.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		hero.SortOrder = *req.SortOrder
	}

	if err := s.heroRepo.Update(hero); err != nil {
		return nil, err
	}
	return s.toHeroResponse(hero), nil
}

func (s *homeService) DeleteHeroProject(id int64) error {
	hero, err := s.heroRepo.FindByID(id)
	if err != nil {
		return err
	}
	removeMediaFiles(s.mediaRoot, []string{hero.Image})
	return s.heroRepo.Delete(hero.ID)
}

func (s *homeService) AdminListStats() ([]*dto.StatResponse, error) {
	stats, err := s.statRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return s.toStatResponses(stats), nil
}

func (s *homeService) AdminGetStat(id int64) (*dto.StatResponse, error) {
	stat, err := s.statRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.toStatResponse(stat), nil
}

func (s *homeService) CreateStat(req *dto.CreateStatRequest) (*dto.StatResponse, error) {
	stat := &model.Stat{
		Label:  req.Label,
		Number: req.Number,
		Suffix: req.Suffix,
		Icon:   req.Icon,
	}
	stat.IsActive = req.IsActive
	stat.SortOrder = req.SortOrder

	if err := s.statRepo.Create(stat); err != nil {
		return nil, err
	}
	return s.toStatResponse(stat), nil
}

func (s *homeService) UpdateStat(id int64, req *dto.UpdateStatRequest) (*dto.StatResponse, error) {
	stat, err := s.statRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Label != nil {
		stat.Label = *req.Label
	}
	if req.Number != nil {
		stat.Number = *req.Number
	}
	if req.Suffix != nil {
		stat.Suffix = *req.Suffix
	}
	if req.Icon != nil {
		stat.Icon = *req.Icon
	}
	if req.IsActive != nil {
		stat.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		stat.SortOrder = *req.SortOrder
	}

	if err := s.statRepo.Update(stat); err != nil {
		return nil, err
	}
	return s.toStatResponse(stat), nil
}

func (s *homeService) DeleteStat(id int64) error {
	if _, err := s.statRepo.FindByID(id); err != nil {
		return err
	}
	return s.statRepo.Delete(id)
}

func (s *homeService) toHeroResponse(h *model.HeroProject) *dto.HeroProjectResponse {
	return &dto.HeroProjectResponse{
		ID:          h.ID,
		Title:       h.Title,
		Subtitle:    h.Subtitle,
		Description: h.Description,
		Image:       utils.AssetURL(s.baseURL, h.Image),
		LinkURL:     h.LinkURL,
		IsActive:    h.IsActive,
		SortOrder:   h.SortOrder,
	}
}

func (s *homeService) toHeroResponses(heroes []*model.HeroProject) []*dto.HeroProjectResponse {
	responses := make([]*dto.HeroProjectResponse, len(heroes))
	for i, h := range heroes {
		responses[i] = s.toHeroResponse(h)
	}
	return responses
}

func (s *homeService) toStatResponse(st *model.Stat) *dto.StatResponse {
	return &dto.StatResponse{
		ID:              st.ID,
		Label:           st.Label,
		Number:          st.Number,
		Suffix:          st.Suffix,
		FormattedNumber: st.Number + st.Suffix,
		Icon:            st.Icon,
		IsActive:        st.IsActive,
		SortOrder:       st.SortOrder,
	}
}

func (s *homeService) toStatResponses(stats []*model.Stat) []*dto.StatResponse {
	responses := make([]*dto.StatResponse, len(stats))
	for i, st := range stats {
		responses[i] = s.toStatResponse(st)
	}
	return responses
}
