package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-cms/internal/dto"
	"studio-cms/internal/model"
	"studio-cms/internal/repository"
	pkgErrors "studio-cms/pkg/errors"
)

// fakeProjectRepo 仅覆盖ListPublished，其余方法走nil接口（测试中不会调用）
type fakeProjectRepo struct {
	repository.ProjectRepository
	projects []*model.Project
	err      error
}

func (f *fakeProjectRepo) ListPublished() ([]*model.Project, error) {
	return f.projects, f.err
}

func awardFixture() []*model.Project {
	return []*model.Project{
		{
			BaseModel: model.BaseModel{ID: 1},
			Name:      "Harbor Pavilion",
			Slug:      "harbor-pavilion",
			Category:  model.CategoryArchitecture,
			Awards: model.AwardList{
				{Name: "Gold Medal", Organization: "AIA", Year: 2022, Featured: true},
				{Name: "Honor Award", Organization: "RIBA", Year: 2024},
			},
		},
		{
			BaseModel: model.BaseModel{ID: 2},
			Name:      "Loft Nine",
			Slug:      "loft-nine",
			Category:  model.CategoryInterior,
			Awards: model.AwardList{
				{Name: "Best Interior", Organization: "IDA", Year: 2023, Featured: true},
			},
		},
		{
			BaseModel: model.BaseModel{ID: 3},
			Name:      "No Awards Yet",
			Slug:      "no-awards-yet",
			Category:  model.CategoryLandscape,
		},
	}
}

func TestAwardServiceList(t *testing.T) {
	svc := NewAwardService(&fakeProjectRepo{projects: awardFixture()})

	awards, err := svc.List(&dto.AwardListQuery{})
	require.NoError(t, err)
	require.Len(t, awards, 3)

	// 年份倒序
	assert.Equal(t, 2024, awards[0].Year)
	assert.Equal(t, 2023, awards[1].Year)
	assert.Equal(t, 2022, awards[2].Year)

	// 合成id与来源项目信息
	assert.Equal(t, "1-Honor Award", awards[0].ID)
	assert.Equal(t, "harbor-pavilion", awards[0].ProjectSlug)
	assert.Equal(t, "2-Best Interior", awards[1].ID)
	assert.Equal(t, model.CategoryInterior, awards[1].ProjectCategory)
}

func TestAwardServiceListYearFilter(t *testing.T) {
	svc := NewAwardService(&fakeProjectRepo{projects: awardFixture()})

	tests := []struct {
		name string
		year string
		want int
	}{
		{"指定年份", "2022", 1},
		{"all不过滤", "all", 3},
		{"空不过滤", "", 3},
		{"无记录年份", "2010", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			awards, err := svc.List(&dto.AwardListQuery{Year: tt.year})
			require.NoError(t, err)
			assert.Len(t, awards, tt.want)
		})
	}
}

func TestAwardServiceListBadYear(t *testing.T) {
	svc := NewAwardService(&fakeProjectRepo{projects: awardFixture()})

	_, err := svc.List(&dto.AwardListQuery{Year: "not-a-year"})
	assert.ErrorIs(t, err, pkgErrors.ErrBadRequest)
}

func TestAwardServiceListFeatured(t *testing.T) {
	svc := NewAwardService(&fakeProjectRepo{projects: awardFixture()})

	awards, err := svc.ListFeatured()
	require.NoError(t, err)
	require.Len(t, awards, 2)
	for _, a := range awards {
		assert.True(t, a.Featured)
	}
}

func TestAwardServiceListYears(t *testing.T) {
	svc := NewAwardService(&fakeProjectRepo{projects: awardFixture()})

	years, err := svc.ListYears()
	require.NoError(t, err)
	assert.Equal(t, []int{2024, 2023, 2022}, years)
}

func TestAwardServiceGetByID(t *testing.T) {
	svc := NewAwardService(&fakeProjectRepo{projects: awardFixture()})

	award, err := svc.GetByID("2-Best Interior")
	require.NoError(t, err)
	assert.Equal(t, "Best Interior", award.Name)
	assert.Equal(t, int64(2), award.ProjectID)

	_, err = svc.GetByID("9-Missing")
	assert.ErrorIs(t, err, pkgErrors.ErrAwardNotFound)
}

func TestAwardServiceRepoError(t *testing.T) {
	svc := NewAwardService(&fakeProjectRepo{err: assert.AnError})

	_, err := svc.List(nil)
	assert.Error(t, err)
}
