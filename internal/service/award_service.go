package service

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/samber/lo"

	"studio-cms/internal/dto"
	"studio-cms/internal/model"
	"studio-cms/internal/repository"
	pkgErrors "studio-cms/pkg/errors"
)

// AwardService 获奖记录聚合
// 获奖记录内嵌在项目中，对外展平为独立资源，合成id为"{项目ID}-{奖项名}"
type AwardService interface {
	List(query *dto.AwardListQuery) ([]*dto.AwardResponse, error)
	ListFeatured() ([]*dto.AwardResponse, error)
	ListYears() ([]int, error)
	GetByID(id string) (*dto.AwardResponse, error)
}

type awardService struct {
	projectRepo repository.ProjectRepository
}

func NewAwardService(projectRepo repository.ProjectRepository) AwardService {
	return &awardService{projectRepo: projectRepo}
}

func (s *awardService) List(query *dto.AwardListQuery) ([]*dto.AwardResponse, error) {
	awards, err := s.flatten()
	if err != nil {
		return nil, err
	}
	if query != nil && query.Year != "" && query.Year != "all" {
		year, err := strconv.Atoi(query.Year)
		if err != nil {
			return nil, pkgErrors.ErrBadRequest
		}
		awards = lo.Filter(awards, func(a *dto.AwardResponse, _ int) bool {
			return a.Year == year
		})
	}
	return awards, nil
}

func (s *awardService) ListFeatured() ([]*dto.AwardResponse, error) {
	awards, err := s.flatten()
	if err != nil {
		return nil, err
	}
	return lo.Filter(awards, func(a *dto.AwardResponse, _ int) bool {
		return a.Featured
	}), nil
}

func (s *awardService) ListYears() ([]int, error) {
	awards, err := s.flatten()
	if err != nil {
		return nil, err
	}
	years := lo.Uniq(lo.Map(awards, func(a *dto.AwardResponse, _ int) int {
		return a.Year
	}))
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

func (s *awardService) GetByID(id string) (*dto.AwardResponse, error) {
	awards, err := s.flatten()
	if err != nil {
		return nil, err
	}
	award, ok := lo.Find(awards, func(a *dto.AwardResponse) bool {
		return a.ID == id
	})
	if !ok {
		return nil, pkgErrors.ErrAwardNotFound
	}
	return award, nil
}

// flatten 遍历已发布项目，把内嵌的获奖列表展平并按年份倒序排列
func (s *awardService) flatten() ([]*dto.AwardResponse, error) {
	projects, err := s.projectRepo.ListPublished()
	if err != nil {
		return nil, err
	}

	awards := lo.FlatMap(projects, func(p *model.Project, _ int) []*dto.AwardResponse {
		return lo.Map(p.Awards, func(entry model.AwardEntry, _ int) *dto.AwardResponse {
			return &dto.AwardResponse{
				ID:              fmt.Sprintf("%d-%s", p.ID, entry.Name),
				Name:            entry.Name,
				Organization:    entry.Organization,
				Year:            entry.Year,
				Description:     entry.Description,
				Featured:        entry.Featured,
				ProjectID:       p.ID,
				ProjectName:     p.Name,
				ProjectSlug:     p.Slug,
				ProjectCategory: p.Category,
			}
		})
	})

	sort.SliceStable(awards, func(i, j int) bool {
		return awards[i].Year > awards[j].Year
	})
	return awards, nil
}
