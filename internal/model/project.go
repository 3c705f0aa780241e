package model

import "gorm.io/datatypes"

const ProjectTableName = "projects"

// 项目分类（封闭枚举）
const (
	CategoryArchitecture = "architecture"
	CategoryInterior     = "interior"
	CategoryLandscape    = "landscape"
)

// 项目子分类（封闭枚举）
const (
	SubCategoryResidential = "residential"
	SubCategoryCommercial  = "commercial"
	SubCategoryPublic      = "public"
)

// Categories 全部项目分类
var Categories = []string{CategoryArchitecture, CategoryInterior, CategoryLandscape}

// IsValidCategory 校验项目分类
func IsValidCategory(category string) bool {
	switch category {
	case CategoryArchitecture, CategoryInterior, CategoryLandscape:
		return true
	}
	return false
}

// Project 项目模型
// slug发布后作为对外的稳定标识，不再变更
type Project struct {
	BaseModel
	Slug             string         `gorm:"size:150;not null;uniqueIndex" json:"slug"`
	Name             string         `gorm:"size:200;not null" json:"name"`
	Category         string         `gorm:"size:50;not null;index" json:"category"`
	SubCategory      string         `gorm:"size:50;not null;index" json:"sub_category"`
	Type             string         `gorm:"size:100" json:"type"`
	Style            string         `gorm:"size:100" json:"style"`
	ShortDescription string         `gorm:"size:500" json:"short_description"`
	Description      string         `gorm:"type:text" json:"description"`
	FullDescription  string         `gorm:"type:text" json:"full_description"`
	Concept          string         `gorm:"type:text" json:"concept"`
	DesignPhilosophy string         `gorm:"type:text" json:"design_philosophy"`
	Location         string         `gorm:"size:200" json:"location"`
	Year             int            `gorm:"index" json:"year"`
	Area             string         `gorm:"size:100" json:"area"`
	Budget           string         `gorm:"size:100" json:"budget"`
	Duration         string         `gorm:"size:100" json:"duration"`
	CoverImage       string         `gorm:"size:500" json:"cover_image"`
	Images           StringList     `gorm:"type:json" json:"images"`
	AdditionalImages StringList     `gorm:"type:json" json:"additional_images"`
	Awards           AwardList      `gorm:"type:json" json:"awards"`
	Details          datatypes.JSON `gorm:"type:json" json:"details"` // 自由结构的补充信息，原样透传
	Highlights       StringMap      `gorm:"type:json" json:"highlights"`
	Tags             StringMap      `gorm:"type:json" json:"tags"`
	Team             StringMap      `gorm:"type:json" json:"team"` // 姓名→职责
	IsFeatured       bool           `gorm:"not null;default:0;index" json:"is_featured"`
	IsPublished      bool           `gorm:"not null;default:0;index" json:"is_published"`
	OrderColumn      int            `gorm:"not null;default:0;index" json:"order_column"`
}

func (Project) TableName() string {
	return ProjectTableName
}

// MediaPaths 返回项目关联的全部媒体相对路径（删除时清理用）
func (p *Project) MediaPaths() []string {
	paths := make([]string, 0, 1+len(p.Images)+len(p.AdditionalImages))
	if p.CoverImage != "" {
		paths = append(paths, p.CoverImage)
	}
	paths = append(paths, p.Images...)
	paths = append(paths, p.AdditionalImages...)
	return paths
}
