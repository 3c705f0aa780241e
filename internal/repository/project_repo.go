package repository

import (
	"gorm.io/gorm"

	"studio-cms/internal/dto"
	"studio-cms/internal/model"
	pkgErrors "studio-cms/pkg/errors"
)

type ProjectRepository interface {
	Create(project *model.Project) error
	FindByID(id int64) (*model.Project, error)
	FindBySlug(slug string) (*model.Project, error)
	FindPublishedByID(id int64) (*model.Project, error)
	FindPublishedBySlug(slug string) (*model.Project, error)
	List(query *dto.ProjectListQuery) ([]*model.Project, int64, error)
	AdminList(page, pageSize int, keyword string) ([]*model.Project, int64, error)
	ListFeatured() ([]*model.Project, error)
	ListPublished() ([]*model.Project, error)
	ListPublishedByCategory(category string) ([]*model.Project, error)
	ListSimilar(id int64, category string, limit int) ([]*model.Project, error)
	DistinctYears() ([]int, error)
	CountPublished(category string) (int64, error)
	CountFeatured(category string) (int64, error)
	Update(project *model.Project) error
	Delete(id int64) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *model.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to create project", err)
	}
	return nil
}

func (r *projectRepository) FindByID(id int64) (*model.Project, error) {
	var project model.Project
	err := r.db.First(&project, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrProjectNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query project", err)
	}
	return &project, nil
}

func (r *projectRepository) FindBySlug(slug string) (*model.Project, error) {
	var project model.Project
	err := r.db.Where("slug = ?", slug).First(&project).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrProjectNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query project", err)
	}
	return &project, nil
}

// FindPublishedByID 查询已发布项目
// 未发布的行对公开接口视同不存在
func (r *projectRepository) FindPublishedByID(id int64) (*model.Project, error) {
	var project model.Project
	err := r.db.Where("is_published = ?", true).First(&project, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrProjectNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query project", err)
	}
	return &project, nil
}

func (r *projectRepository) FindPublishedBySlug(slug string) (*model.Project, error) {
	var project model.Project
	err := r.db.Where("slug = ? AND is_published = ?", slug, true).First(&project).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrProjectNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query project", err)
	}
	return &project, nil
}

// List 公开项目列表
// 先套发布门槛，再叠加facet过滤，最后排序分页；总数用真实Count计算
func (r *projectRepository) List(query *dto.ProjectListQuery) ([]*model.Project, int64, error) {
	var projects []*model.Project
	var total int64

	q := r.db.Model(&model.Project{}).Where("is_published = ?", true)
	q = applyProjectFacets(q, query)
	q = applyProjectSort(q, query.Sort)

	// 统计总数
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to count projects", err)
	}

	// 分页查询
	pageSize := query.GetPerPage(dto.DefaultProjectPageSize)
	offset := (query.GetPage() - 1) * pageSize
	if err := q.Offset(offset).Limit(pageSize).Find(&projects).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query projects", err)
	}

	return projects, total, nil
}

// applyProjectFacets 叠加facet过滤条件
// 值为空或"all"的facet不参与过滤
func applyProjectFacets(q *gorm.DB, query *dto.ProjectListQuery) *gorm.DB {
	if f := normalizeFacet(query.Category); f != "" {
		q = q.Where("category = ?", f)
	}
	if f := normalizeFacet(query.SubCategory); f != "" {
		q = q.Where("sub_category = ?", f)
	}
	if f := normalizeFacet(query.Type); f != "" {
		q = q.Where("type = ?", f)
	}
	if f := normalizeFacet(query.Style); f != "" {
		q = q.Where("style = ?", f)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		q = q.Where("name LIKE ? OR short_description LIKE ? OR description LIKE ?",
			pattern, pattern, pattern)
	}
	if query.Year > 0 {
		q = q.Where("year = ?", query.Year)
	}
	return q
}

// applyProjectSort 叠加排序
func applyProjectSort(q *gorm.DB, sort string) *gorm.DB {
	switch sort {
	case dto.SortNewest:
		return q.Order("year DESC").Order("created_at DESC")
	case dto.SortOldest:
		return q.Order("year ASC").Order("created_at ASC")
	case dto.SortName:
		return q.Order("name ASC")
	default:
		return q.Order("order_column ASC").Order("created_at DESC")
	}
}

// normalizeFacet 规范化facet取值，"all"等价于不过滤
func normalizeFacet(value string) string {
	if value == "all" {
		return ""
	}
	return value
}

// AdminList 后台项目列表（含未发布）
func (r *projectRepository) AdminList(page, pageSize int, keyword string) ([]*model.Project, int64, error) {
	var projects []*model.Project
	var total int64

	q := r.db.Model(&model.Project{})

	// 关键字搜索
	if keyword != "" {
		q = q.Where("name LIKE ? OR description LIKE ?",
			"%"+keyword+"%", "%"+keyword+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to count projects", err)
	}

	offset := (page - 1) * pageSize
	err := q.Order("order_column ASC").Order("created_at DESC").
		Offset(offset).Limit(pageSize).Find(&projects).Error
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query projects", err)
	}

	return projects, total, nil
}

// ListFeatured 精选项目（不分页，结果集有界）
func (r *projectRepository) ListFeatured() ([]*model.Project, error) {
	var projects []*model.Project
	err := r.db.Where("is_published = ? AND is_featured = ?", true, true).
		Order("order_column ASC").Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query featured projects", err)
	}
	return projects, nil
}

func (r *projectRepository) ListPublished() ([]*model.Project, error) {
	var projects []*model.Project
	err := r.db.Where("is_published = ?", true).
		Order("order_column ASC").Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query projects", err)
	}
	return projects, nil
}

func (r *projectRepository) ListPublishedByCategory(category string) ([]*model.Project, error) {
	var projects []*model.Project
	err := r.db.Where("is_published = ? AND category = ?", true, category).
		Order("order_column ASC").Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query projects", err)
	}
	return projects, nil
}

// ListSimilar 同分类的其他已发布项目（排除自身）
func (r *projectRepository) ListSimilar(id int64, category string, limit int) ([]*model.Project, error) {
	var projects []*model.Project
	err := r.db.Where("is_published = ? AND category = ? AND id != ?", true, category, id).
		Order("order_column ASC").Order("created_at DESC").
		Limit(limit).Find(&projects).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query similar projects", err)
	}
	return projects, nil
}

// DistinctYears 已发布项目的年份列表（降序去重）
func (r *projectRepository) DistinctYears() ([]int, error) {
	var years []int
	err := r.db.Model(&model.Project{}).
		Where("is_published = ? AND year > 0", true).
		Distinct("year").Order("year DESC").
		Pluck("year", &years).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query project years", err)
	}
	return years, nil
}

func (r *projectRepository) CountPublished(category string) (int64, error) {
	var count int64
	q := r.db.Model(&model.Project{}).Where("is_published = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to count projects", err)
	}
	return count, nil
}

func (r *projectRepository) CountFeatured(category string) (int64, error) {
	var count int64
	q := r.db.Model(&model.Project{}).Where("is_published = ? AND is_featured = ?", true, true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to count featured projects", err)
	}
	return count, nil
}

func (r *projectRepository) Update(project *model.Project) error {
	if err := r.db.Save(project).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to update project", err)
	}
	return nil
}

func (r *projectRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.Project{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to delete project", err)
	}
	return nil
}
