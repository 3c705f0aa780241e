package repository

import (
	"gorm.io/gorm"

	"studio-cms/internal/dto"
	"studio-cms/internal/model"
	pkgErrors "studio-cms/pkg/errors"
)

type BlogRepository interface {
	Create(blog *model.Blog) error
	FindByID(id int64) (*model.Blog, error)
	FindPublishedBySlug(slug string) (*model.Blog, error)
	List(query *dto.BlogListQuery) ([]*model.Blog, int64, error)
	AdminList(page, pageSize int, keyword string) ([]*model.Blog, int64, error)
	ListRecent(excludeID int64, limit int) ([]*model.Blog, error)
	DistinctCategories() ([]string, error)
	IncrementViews(id int64) error
	Update(blog *model.Blog) error
	Delete(id int64) error
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(blog *model.Blog) error {
	if err := r.db.Create(blog).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to create blog post", err)
	}
	return nil
}

func (r *blogRepository) FindByID(id int64) (*model.Blog, error) {
	var blog model.Blog
	err := r.db.First(&blog, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrBlogNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query blog post", err)
	}
	return &blog, nil
}

func (r *blogRepository) FindPublishedBySlug(slug string) (*model.Blog, error) {
	var blog model.Blog
	err := r.db.Where("slug = ? AND is_published = ?", slug, true).First(&blog).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrBlogNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query blog post", err)
	}
	return &blog, nil
}

// List 公开博客列表（发布门槛+分类过滤+搜索，发布时间倒序）
func (r *blogRepository) List(query *dto.BlogListQuery) ([]*model.Blog, int64, error) {
	var blogs []*model.Blog
	var total int64

	q := r.db.Model(&model.Blog{}).Where("is_published = ?", true)

	if f := normalizeFacet(query.Category); f != "" {
		q = q.Where("category = ?", f)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		q = q.Where("title LIKE ? OR excerpt LIKE ?", pattern, pattern)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to count blog posts", err)
	}

	pageSize := query.GetPerPage(dto.DefaultBlogPageSize)
	offset := (query.GetPage() - 1) * pageSize
	err := q.Order("published_at DESC").Order("created_at DESC").
		Offset(offset).Limit(pageSize).Find(&blogs).Error
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query blog posts", err)
	}

	return blogs, total, nil
}

// AdminList 后台博客列表（含未发布）
func (r *blogRepository) AdminList(page, pageSize int, keyword string) ([]*model.Blog, int64, error) {
	var blogs []*model.Blog
	var total int64

	q := r.db.Model(&model.Blog{})
	if keyword != "" {
		pattern := "%" + keyword + "%"
		q = q.Where("title LIKE ? OR excerpt LIKE ?", pattern, pattern)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to count blog posts", err)
	}

	offset := (page - 1) * pageSize
	err := q.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&blogs).Error
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query blog posts", err)
	}

	return blogs, total, nil
}

// ListRecent 最近发布的其他文章（排除指定文章）
func (r *blogRepository) ListRecent(excludeID int64, limit int) ([]*model.Blog, error) {
	var blogs []*model.Blog
	err := r.db.Where("is_published = ? AND id != ?", true, excludeID).
		Order("published_at DESC").Order("created_at DESC").
		Limit(limit).Find(&blogs).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query recent blog posts", err)
	}
	return blogs, nil
}

// DistinctCategories 已发布文章的分类列表（去重）
func (r *blogRepository) DistinctCategories() ([]string, error) {
	var categories []string
	err := r.db.Model(&model.Blog{}).
		Where("is_published = ? AND category != ''", true).
		Distinct("category").Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query blog categories", err)
	}
	return categories, nil
}

// IncrementViews 浏览计数+1（详情接口的副作用，数据库内原子自增）
func (r *blogRepository) IncrementViews(id int64) error {
	err := r.db.Model(&model.Blog{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to increment blog views", err)
	}
	return nil
}

func (r *blogRepository) Update(blog *model.Blog) error {
	if err := r.db.Save(blog).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to update blog post", err)
	}
	return nil
}

func (r *blogRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.Blog{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to delete blog post", err)
	}
	return nil
}
