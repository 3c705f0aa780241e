package repository

import (
	"gorm.io/gorm"

	"studio-cms/internal/model"
	pkgErrors "studio-cms/pkg/errors"
)

type HeroProjectRepository interface {
	Create(hero *model.HeroProject) error
	FindByID(id int64) (*model.HeroProject, error)
	FindActiveByID(id int64) (*model.HeroProject, error)
	ListActive() ([]*model.HeroProject, error)
	ListAll() ([]*model.HeroProject, error)
	Update(hero *model.HeroProject) error
	Delete(id int64) error
}

type heroProjectRepository struct {
	db *gorm.DB
}

func NewHeroProjectRepository(db *gorm.DB) HeroProjectRepository {
	return &heroProjectRepository{db: db}
}

func (r *heroProjectRepository) Create(hero *model.HeroProject) error {
	if err := r.db.Create(hero).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to create hero project", err)
	}
	return nil
}

func (r *heroProjectRepository) FindByID(id int64) (*model.HeroProject, error) {
	var hero model.HeroProject
	err := r.db.First(&hero, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrHeroProjectNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query hero project", err)
	}
	return &hero, nil
}

func (r *heroProjectRepository) FindActiveByID(id int64) (*model.HeroProject, error) {
	var hero model.HeroProject
	err := r.db.Where("is_active = ?", true).First(&hero, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrHeroProjectNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query hero project", err)
	}
	return &hero, nil
}

func (r *heroProjectRepository) ListActive() ([]*model.HeroProject, error) {
	var heroes []*model.HeroProject
	err := r.db.Where("is_active = ?", true).
		Order("sort_order ASC").Order("created_at DESC").
		Find(&heroes).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query hero projects", err)
	}
	return heroes, nil
}

func (r *heroProjectRepository) ListAll() ([]*model.HeroProject, error) {
	var heroes []*model.HeroProject
	err := r.db.Order("sort_order ASC").Order("created_at DESC").Find(&heroes).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query hero projects", err)
	}
	return heroes, nil
}

func (r *heroProjectRepository) Update(hero *model.HeroProject) error {
	if err := r.db.Save(hero).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to update hero project", err)
	}
	return nil
}

func (r *heroProjectRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.HeroProject{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to delete hero project", err)
	}
	return nil
}
