package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-cms/internal/model"
	"studio-cms/internal/repository"
	pkgErrors "studio-cms/pkg/errors"
)

type stubBlogRepo struct {
	repository.BlogRepository
	blog       *model.Blog
	recent     []*model.Blog
	viewsErr   error
	viewsCalls []int64
}

func (s *stubBlogRepo) FindPublishedBySlug(slug string) (*model.Blog, error) {
	if s.blog == nil || s.blog.Slug != slug {
		return nil, pkgErrors.ErrBlogNotFound
	}
	return s.blog, nil
}

func (s *stubBlogRepo) ListRecent(excludeID int64, limit int) ([]*model.Blog, error) {
	return s.recent, nil
}

func (s *stubBlogRepo) IncrementViews(id int64) error {
	s.viewsCalls = append(s.viewsCalls, id)
	return s.viewsErr
}

func TestBlogServiceGetBySlug(t *testing.T) {
	published := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)
	repo := &stubBlogRepo{
		blog: &model.Blog{
			BaseModel:   model.BaseModel{ID: 9},
			Slug:        "designing-with-light",
			Title:       "Designing with Light",
			Content:     "Full body",
			Views:       41,
			PublishedAt: &published,
		},
	}
	svc := NewBlogService(repo, "", "")

	resp, err := svc.GetBySlug("designing-with-light")
	require.NoError(t, err)

	// 详情带正文，浏览数递增后返回
	assert.Equal(t, "Full body", resp.Content)
	assert.EqualValues(t, 42, resp.Views)
	assert.Equal(t, []int64{9}, repo.viewsCalls)
	assert.Equal(t, "March 2024", resp.FormattedDate)
	assert.NotNil(t, resp.Tags)
}

func TestBlogServiceGetBySlugViewsFailure(t *testing.T) {
	repo := &stubBlogRepo{
		blog: &model.Blog{
			BaseModel: model.BaseModel{ID: 9},
			Slug:      "designing-with-light",
			Views:     41,
		},
		viewsErr: assert.AnError,
	}
	svc := NewBlogService(repo, "", "")

	// 计数失败不影响详情返回，展示的浏览数保持原值
	resp, err := svc.GetBySlug("designing-with-light")
	require.NoError(t, err)
	assert.EqualValues(t, 41, resp.Views)
	assert.Equal(t, []int64{9}, repo.viewsCalls)
}

func TestBlogServiceGetBySlugNotFound(t *testing.T) {
	svc := NewBlogService(&stubBlogRepo{}, "", "")

	_, err := svc.GetBySlug("missing")
	assert.ErrorIs(t, err, pkgErrors.ErrBlogNotFound)
}

func TestBlogServiceListRecentOmitsContent(t *testing.T) {
	repo := &stubBlogRepo{
		blog: &model.Blog{BaseModel: model.BaseModel{ID: 9}, Slug: "designing-with-light"},
		recent: []*model.Blog{
			{BaseModel: model.BaseModel{ID: 10}, Slug: "material-studies", Content: "Full body"},
		},
	}
	svc := NewBlogService(repo, "", "")

	recent, err := svc.ListRecent("designing-with-light")
	require.NoError(t, err)
	require.Len(t, recent, 1)

	// 列表不带正文
	assert.Empty(t, recent[0].Content)
	assert.Equal(t, "material-studies", recent[0].Slug)
}
