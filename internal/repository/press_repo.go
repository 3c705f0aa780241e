package repository

import (
	"gorm.io/gorm"

	"studio-cms/internal/model"
	pkgErrors "studio-cms/pkg/errors"
)

type PressRepository interface {
	Create(article *model.PressArticle) error
	FindByID(id int64) (*model.PressArticle, error)
	FindActiveByID(id int64) (*model.PressArticle, error)
	ListActive() ([]*model.PressArticle, error)
	ListFeatured() ([]*model.PressArticle, error)
	AdminList(page, pageSize int) ([]*model.PressArticle, int64, error)
	Update(article *model.PressArticle) error
	Delete(id int64) error
}

type pressRepository struct {
	db *gorm.DB
}

func NewPressRepository(db *gorm.DB) PressRepository {
	return &pressRepository{db: db}
}

func (r *pressRepository) Create(article *model.PressArticle) error {
	if err := r.db.Create(article).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to create press article", err)
	}
	return nil
}

func (r *pressRepository) FindByID(id int64) (*model.PressArticle, error) {
	var article model.PressArticle
	err := r.db.First(&article, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrArticleNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query press article", err)
	}
	return &article, nil
}

func (r *pressRepository) FindActiveByID(id int64) (*model.PressArticle, error) {
	var article model.PressArticle
	err := r.db.Where("is_active = ?", true).First(&article, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrArticleNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query press article", err)
	}
	return &article, nil
}

func (r *pressRepository) ListActive() ([]*model.PressArticle, error) {
	var articles []*model.PressArticle
	err := r.db.Where("is_active = ?", true).
		Order("sort_order ASC").Order("created_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query press articles", err)
	}
	return articles, nil
}

func (r *pressRepository) ListFeatured() ([]*model.PressArticle, error) {
	var articles []*model.PressArticle
	err := r.db.Where("is_active = ? AND featured = ?", true, true).
		Order("sort_order ASC").Order("created_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query featured press articles", err)
	}
	return articles, nil
}

// AdminList 后台媒体报道列表（含停用）
func (r *pressRepository) AdminList(page, pageSize int) ([]*model.PressArticle, int64, error) {
	var articles []*model.PressArticle
	var total int64

	q := r.db.Model(&model.PressArticle{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to count press articles", err)
	}

	offset := (page - 1) * pageSize
	err := q.Order("sort_order ASC").Order("created_at DESC").
		Offset(offset).Limit(pageSize).Find(&articles).Error
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query press articles", err)
	}

	return articles, total, nil
}

func (r *pressRepository) Update(article *model.PressArticle) error {
	if err := r.db.Save(article).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to update press article", err)
	}
	return nil
}

func (r *pressRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.PressArticle{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to delete press article", err)
	}
	return nil
}
