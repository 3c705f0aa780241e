package repository

import (
	"gorm.io/gorm"

	"studio-cms/internal/model"
	pkgErrors "studio-cms/pkg/errors"
)

type ContactRepository interface {
	Create(enquiry *model.ContactEnquiry) error
	FindByID(id int64) (*model.ContactEnquiry, error)
	// List 按状态筛选并分页，按创建时间倒序
	List(status string, offset, limit int) ([]*model.ContactEnquiry, int64, error)
	Update(enquiry *model.ContactEnquiry) error
	Delete(id int64) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(enquiry *model.ContactEnquiry) error {
	if err := r.db.Create(enquiry).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to create contact enquiry", err)
	}
	return nil
}

func (r *contactRepository) FindByID(id int64) (*model.ContactEnquiry, error) {
	var enquiry model.ContactEnquiry
	err := r.db.First(&enquiry, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrEnquiryNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query contact enquiry", err)
	}
	return &enquiry, nil
}

func (r *contactRepository) List(status string, offset, limit int) ([]*model.ContactEnquiry, int64, error) {
	query := r.db.Model(&model.ContactEnquiry{})
	if status = normalizeFacet(status); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to count contact enquiries", err)
	}

	var enquiries []*model.ContactEnquiry
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&enquiries).Error
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query contact enquiries", err)
	}
	return enquiries, total, nil
}

func (r *contactRepository) Update(enquiry *model.ContactEnquiry) error {
	if err := r.db.Save(enquiry).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to update contact enquiry", err)
	}
	return nil
}

func (r *contactRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.ContactEnquiry{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to delete contact enquiry", err)
	}
	return nil
}
