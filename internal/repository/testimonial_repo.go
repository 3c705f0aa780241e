package repository

import (
	"gorm.io/gorm"

	"studio-cms/internal/model"
	pkgErrors "studio-cms/pkg/errors"
)

type TestimonialRepository interface {
	Create(testimonial *model.Testimonial) error
	FindByID(id int64) (*model.Testimonial, error)
	ListActive() ([]*model.Testimonial, error)
	ListFeatured() ([]*model.Testimonial, error)
	AdminList(page, pageSize int) ([]*model.Testimonial, int64, error)
	Update(testimonial *model.Testimonial) error
	Delete(id int64) error
}

type testimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) Create(testimonial *model.Testimonial) error {
	if err := r.db.Create(testimonial).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to create testimonial", err)
	}
	return nil
}

func (r *testimonialRepository) FindByID(id int64) (*model.Testimonial, error) {
	var testimonial model.Testimonial
	err := r.db.First(&testimonial, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query testimonial", err)
	}
	return &testimonial, nil
}

func (r *testimonialRepository) ListActive() ([]*model.Testimonial, error) {
	var testimonials []*model.Testimonial
	err := r.db.Where("is_active = ?", true).
		Order("sort_order ASC").Order("created_at DESC").
		Find(&testimonials).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query testimonials", err)
	}
	return testimonials, nil
}

func (r *testimonialRepository) ListFeatured() ([]*model.Testimonial, error) {
	var testimonials []*model.Testimonial
	err := r.db.Where("is_active = ? AND featured = ?", true, true).
		Order("sort_order ASC").Order("created_at DESC").
		Find(&testimonials).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query featured testimonials", err)
	}
	return testimonials, nil
}

// AdminList 后台评价列表（含停用）
func (r *testimonialRepository) AdminList(page, pageSize int) ([]*model.Testimonial, int64, error) {
	var testimonials []*model.Testimonial
	var total int64

	q := r.db.Model(&model.Testimonial{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to count testimonials", err)
	}

	offset := (page - 1) * pageSize
	err := q.Order("sort_order ASC").Order("created_at DESC").
		Offset(offset).Limit(pageSize).Find(&testimonials).Error
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query testimonials", err)
	}

	return testimonials, total, nil
}

func (r *testimonialRepository) Update(testimonial *model.Testimonial) error {
	if err := r.db.Save(testimonial).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to update testimonial", err)
	}
	return nil
}

func (r *testimonialRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.Testimonial{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to delete testimonial", err)
	}
	return nil
}
