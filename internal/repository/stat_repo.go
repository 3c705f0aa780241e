package repository

import (
	"gorm.io/gorm"

	"studio-cms/internal/model"
	pkgErrors "studio-cms/pkg/errors"
)

type StatRepository interface {
	Create(stat *model.Stat) error
	FindByID(id int64) (*model.Stat, error)
	ListActive() ([]*model.Stat, error)
	ListAll() ([]*model.Stat, error)
	Update(stat *model.Stat) error
	Delete(id int64) error
}

type statRepository struct {
	db *gorm.DB
}

func NewStatRepository(db *gorm.DB) StatRepository {
	return &statRepository{db: db}
}

func (r *statRepository) Create(stat *model.Stat) error {
	if err := r.db.Create(stat).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to create stat", err)
	}
	return nil
}

func (r *statRepository) FindByID(id int64) (*model.Stat, error) {
	var stat model.Stat
	err := r.db.First(&stat, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query stat", err)
	}
	return &stat, nil
}

func (r *statRepository) ListActive() ([]*model.Stat, error) {
	var stats []*model.Stat
	err := r.db.Where("is_active = ?", true).
		Order("sort_order ASC").Order("created_at DESC").
		Find(&stats).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query stats", err)
	}
	return stats, nil
}

func (r *statRepository) ListAll() ([]*model.Stat, error) {
	var stats []*model.Stat
	err := r.db.Order("sort_order ASC").Order("created_at DESC").Find(&stats).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query stats", err)
	}
	return stats, nil
}

func (r *statRepository) Update(stat *model.Stat) error {
	if err := r.db.Save(stat).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to update stat", err)
	}
	return nil
}

func (r *statRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.Stat{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to delete stat", err)
	}
	return nil
}
