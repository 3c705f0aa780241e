package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-cms/internal/model"
	"studio-cms/internal/repository"
	pkgErrors "studio-cms/pkg/errors"
)

type stubProjectRepo struct {
	repository.ProjectRepository
	byCategory map[string][]*model.Project
	published  map[string]int64
	featured   map[string]int64
	project    *model.Project
}

func (s *stubProjectRepo) FindPublishedByID(id int64) (*model.Project, error) {
	if s.project == nil || s.project.ID != id {
		return nil, pkgErrors.ErrProjectNotFound
	}
	return s.project, nil
}

func (s *stubProjectRepo) ListPublishedByCategory(category string) ([]*model.Project, error) {
	return s.byCategory[category], nil
}

func (s *stubProjectRepo) CountPublished(category string) (int64, error) {
	return s.published[category], nil
}

func (s *stubProjectRepo) CountFeatured(category string) (int64, error) {
	return s.featured[category], nil
}

func TestProjectServiceStats(t *testing.T) {
	repo := &stubProjectRepo{
		published: map[string]int64{model.CategoryArchitecture: 8, model.CategoryInterior: 5, model.CategoryLandscape: 2},
		featured:  map[string]int64{model.CategoryArchitecture: 3},
		byCategory: map[string][]*model.Project{
			model.CategoryArchitecture: {
				{Awards: model.AwardList{{Name: "Gold Medal", Year: 2022}}},
				{},
				{Awards: model.AwardList{{Name: "Honor Award", Year: 2023}}},
			},
		},
	}
	svc := NewProjectService(repo, "", "")

	stats, err := svc.Stats()
	require.NoError(t, err)
	require.Len(t, stats, 3)

	arch := stats[0]
	assert.Equal(t, model.CategoryArchitecture, arch.Category)
	assert.EqualValues(t, 8, arch.TotalProjects)
	assert.EqualValues(t, 3, arch.FeaturedProjects)
	assert.EqualValues(t, 2, arch.AwardWinning)
	assert.Equal(t, 15, arch.YearsExperience)
	assert.Equal(t, "100%", arch.ClientSatisfaction)

	assert.Equal(t, 12, stats[1].YearsExperience)
	assert.Equal(t, 10, stats[2].YearsExperience)
}

func TestProjectServiceListCategories(t *testing.T) {
	repo := &stubProjectRepo{
		published: map[string]int64{model.CategoryArchitecture: 8, model.CategoryInterior: 5},
	}
	svc := NewProjectService(repo, "", "")

	categories, err := svc.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 3)

	assert.Equal(t, "architecture", categories[0].Value)
	assert.Equal(t, "Architecture", categories[0].Label)
	assert.EqualValues(t, 8, categories[0].Count)
	assert.EqualValues(t, 0, categories[2].Count)
}

func TestProjectServiceListByCategoryInvalid(t *testing.T) {
	svc := NewProjectService(&stubProjectRepo{}, "", "")

	_, err := svc.ListByCategory("aerospace")
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidCategory)
}

func TestProjectServiceSerialization(t *testing.T) {
	repo := &stubProjectRepo{
		project: &model.Project{
			BaseModel:  model.BaseModel{ID: 7},
			Slug:       "harbor-pavilion",
			Name:       "Harbor Pavilion",
			Category:   model.CategoryArchitecture,
			CoverImage: "projects/cover.jpg",
			Images:     model.StringList{"projects/a.jpg", "https://cdn.example.com/b.jpg"},
		},
	}
	svc := NewProjectService(repo, "http://localhost:8080/storage", "")

	resp, err := svc.GetByID(7)
	require.NoError(t, err)

	// 相对路径拼上资源前缀，绝对URL原样保留
	assert.Equal(t, "http://localhost:8080/storage/projects/cover.jpg", resp.CoverImage)
	require.Len(t, resp.Images, 2)
	assert.Equal(t, "http://localhost:8080/storage/projects/a.jpg", resp.Images[0])
	assert.Equal(t, "https://cdn.example.com/b.jpg", resp.Images[1])

	// JSON类字段序列化为空集合而非null
	assert.NotNil(t, resp.Awards)
	assert.Empty(t, resp.Awards)
	assert.NotNil(t, resp.Highlights)
	assert.NotNil(t, resp.Tags)
	assert.NotNil(t, resp.ProjectTeam)
	assert.JSONEq(t, "{}", string(resp.Details))
}

func TestProjectServiceGetByIDNotFound(t *testing.T) {
	svc := NewProjectService(&stubProjectRepo{}, "", "")

	_, err := svc.GetByID(404)
	assert.ErrorIs(t, err, pkgErrors.ErrProjectNotFound)
}
