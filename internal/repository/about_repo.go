package repository

import (
	"gorm.io/gorm"

	"studio-cms/internal/model"
	pkgErrors "studio-cms/pkg/errors"
)

// AboutRepository 关于页内容数据访问（栏目、团队、时间线、使命）
type AboutRepository interface {
	ListActiveSections() ([]*model.AboutSection, error)
	ListAllSections() ([]*model.AboutSection, error)
	FindSectionByID(id int64) (*model.AboutSection, error)
	CreateSection(section *model.AboutSection) error
	UpdateSection(section *model.AboutSection) error
	DeleteSection(id int64) error

	ListActiveTeamMembers() ([]*model.TeamMember, error)
	ListAllTeamMembers() ([]*model.TeamMember, error)
	FindTeamMemberByID(id int64) (*model.TeamMember, error)
	CreateTeamMember(member *model.TeamMember) error
	UpdateTeamMember(member *model.TeamMember) error
	DeleteTeamMember(id int64) error

	ListActiveTimelineItems() ([]*model.TimelineItem, error)
	ListAllTimelineItems() ([]*model.TimelineItem, error)
	FindTimelineItemByID(id int64) (*model.TimelineItem, error)
	CreateTimelineItem(item *model.TimelineItem) error
	UpdateTimelineItem(item *model.TimelineItem) error
	DeleteTimelineItem(id int64) error

	ListActiveMissions() ([]*model.Mission, error)
	ListAllMissions() ([]*model.Mission, error)
	FindMissionByID(id int64) (*model.Mission, error)
	CreateMission(mission *model.Mission) error
	UpdateMission(mission *model.Mission) error
	DeleteMission(id int64) error
}

type aboutRepository struct {
	db *gorm.DB
}

func NewAboutRepository(db *gorm.DB) AboutRepository {
	return &aboutRepository{db: db}
}

// listSorted 按排序字段查询，activeOnly 时仅返回启用记录
func listSorted[T any](db *gorm.DB, activeOnly bool) ([]*T, error) {
	var records []*T
	query := db.Order("sort_order ASC").Order("created_at DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query records", err)
	}
	return records, nil
}

func findByID[T any](db *gorm.DB, id int64) (*T, error) {
	var record T
	err := db.First(&record, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to query record", err)
	}
	return &record, nil
}

func (r *aboutRepository) ListActiveSections() ([]*model.AboutSection, error) {
	return listSorted[model.AboutSection](r.db, true)
}

func (r *aboutRepository) ListAllSections() ([]*model.AboutSection, error) {
	return listSorted[model.AboutSection](r.db, false)
}

func (r *aboutRepository) FindSectionByID(id int64) (*model.AboutSection, error) {
	return findByID[model.AboutSection](r.db, id)
}

func (r *aboutRepository) CreateSection(section *model.AboutSection) error {
	if err := r.db.Create(section).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to create about section", err)
	}
	return nil
}

func (r *aboutRepository) UpdateSection(section *model.AboutSection) error {
	if err := r.db.Save(section).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to update about section", err)
	}
	return nil
}

func (r *aboutRepository) DeleteSection(id int64) error {
	if err := r.db.Delete(&model.AboutSection{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to delete about section", err)
	}
	return nil
}

func (r *aboutRepository) ListActiveTeamMembers() ([]*model.TeamMember, error) {
	return listSorted[model.TeamMember](r.db, true)
}

func (r *aboutRepository) ListAllTeamMembers() ([]*model.TeamMember, error) {
	return listSorted[model.TeamMember](r.db, false)
}

func (r *aboutRepository) FindTeamMemberByID(id int64) (*model.TeamMember, error) {
	return findByID[model.TeamMember](r.db, id)
}

func (r *aboutRepository) CreateTeamMember(member *model.TeamMember) error {
	if err := r.db.Create(member).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to create team member", err)
	}
	return nil
}

func (r *aboutRepository) UpdateTeamMember(member *model.TeamMember) error {
	if err := r.db.Save(member).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to update team member", err)
	}
	return nil
}

func (r *aboutRepository) DeleteTeamMember(id int64) error {
	if err := r.db.Delete(&model.TeamMember{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to delete team member", err)
	}
	return nil
}

func (r *aboutRepository) ListActiveTimelineItems() ([]*model.TimelineItem, error) {
	return listSorted[model.TimelineItem](r.db, true)
}

func (r *aboutRepository) ListAllTimelineItems() ([]*model.TimelineItem, error) {
	return listSorted[model.TimelineItem](r.db, false)
}

func (r *aboutRepository) FindTimelineItemByID(id int64) (*model.TimelineItem, error) {
	return findByID[model.TimelineItem](r.db, id)
}

func (r *aboutRepository) CreateTimelineItem(item *model.TimelineItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to create timeline item", err)
	}
	return nil
}

func (r *aboutRepository) UpdateTimelineItem(item *model.TimelineItem) error {
	if err := r.db.Save(item).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to update timeline item", err)
	}
	return nil
}

func (r *aboutRepository) DeleteTimelineItem(id int64) error {
	if err := r.db.Delete(&model.TimelineItem{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to delete timeline item", err)
	}
	return nil
}

func (r *aboutRepository) ListActiveMissions() ([]*model.Mission, error) {
	return listSorted[model.Mission](r.db, true)
}

func (r *aboutRepository) ListAllMissions() ([]*model.Mission, error) {
	return listSorted[model.Mission](r.db, false)
}

func (r *aboutRepository) FindMissionByID(id int64) (*model.Mission, error) {
	return findByID[model.Mission](r.db, id)
}

func (r *aboutRepository) CreateMission(mission *model.Mission) error {
	if err := r.db.Create(mission).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to create mission", err)
	}
	return nil
}

func (r *aboutRepository) UpdateMission(mission *model.Mission) error {
	if err := r.db.Save(mission).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to update mission", err)
	}
	return nil
}

func (r *aboutRepository) DeleteMission(id int64) error {
	if err := r.db.Delete(&model.Mission{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "Failed to delete mission", err)
	}
	return nil
}
