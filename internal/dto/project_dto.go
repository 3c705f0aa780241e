package dto

import (
	"gorm.io/datatypes"

	"studio-cms/internal/model"
)

// 列表排序方式
const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortName   = "name"
)

// 项目列表默认页大小
const DefaultProjectPageSize = 12

// ProjectListQuery 项目列表查询参数
// 各facet取值为"all"或空时不参与过滤
type ProjectListQuery struct {
	PageQuery
	Category    string `form:"category"`
	SubCategory string `form:"sub_category"`
	Type        string `form:"type"`
	Style       string `form:"style"`
	Search      string `form:"search"`
	Year        int    `form:"year"`
	Sort        string `form:"sort"` // newest/oldest/name，其余值按默认排序处理
}

// ProjectResponse 项目响应
type ProjectResponse struct {
	ID               int64              `json:"id"`
	Slug             string             `json:"slug"`
	Name             string             `json:"name"`
	Category         string             `json:"category"`
	SubCategory      string             `json:"sub_category"`
	Type             string             `json:"type"`
	Style            string             `json:"style"`
	ShortDescription string             `json:"short_description"`
	Description      string             `json:"description"`
	FullDescription  string             `json:"full_description"`
	Concept          string             `json:"concept"`
	DesignPhilosophy string             `json:"design_philosophy"`
	Location         string             `json:"location"`
	Year             int                `json:"year"`
	Area             string             `json:"area"`
	Budget           string             `json:"budget"`
	Duration         string             `json:"duration"`
	CoverImage       string             `json:"cover_image"`
	Images           []string           `json:"images"`
	AdditionalImages []string           `json:"additional_images"`
	Awards           []model.AwardEntry `json:"awards"`
	Details          datatypes.JSON     `json:"details"`
	Highlights       map[string]string  `json:"highlights"`
	Tags             map[string]string  `json:"tags"`
	ProjectTeam      map[string]string  `json:"project_team"`
	IsFeatured       bool               `json:"is_featured"`
	IsPublished      bool               `json:"is_published"`
	OrderColumn      int                `json:"order_column"`
	CreatedAt        string             `json:"created_at"`
	UpdatedAt        string             `json:"updated_at"`
}

// ProjectCategoryResponse 项目分类条目
type ProjectCategoryResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// ProjectStatsResponse 单个分类的统计数据
type ProjectStatsResponse struct {
	Category           string `json:"category"`
	TotalProjects      int64  `json:"total_projects"`
	FeaturedProjects   int64  `json:"featured_projects"`
	AwardWinning       int64  `json:"award_winning"`
	YearsExperience    int    `json:"years_experience"`
	ClientSatisfaction string `json:"client_satisfaction"`
}

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	Slug             string             `json:"slug" binding:"required,max=150"`
	Name             string             `json:"name" binding:"required,max=200"`
	Category         string             `json:"category" binding:"required,oneof=architecture interior landscape"`
	SubCategory      string             `json:"sub_category" binding:"required,oneof=residential commercial public"`
	Type             string             `json:"type" binding:"omitempty,max=100"`
	Style            string             `json:"style" binding:"omitempty,max=100"`
	ShortDescription string             `json:"short_description" binding:"omitempty,max=500"`
	Description      string             `json:"description"`
	FullDescription  string             `json:"full_description"`
	Concept          string             `json:"concept"`
	DesignPhilosophy string             `json:"design_philosophy"`
	Location         string             `json:"location" binding:"omitempty,max=200"`
	Year             int                `json:"year" binding:"omitempty,gte=1900,lte=2100"`
	Area             string             `json:"area" binding:"omitempty,max=100"`
	Budget           string             `json:"budget" binding:"omitempty,max=100"`
	Duration         string             `json:"duration" binding:"omitempty,max=100"`
	CoverImage       string             `json:"cover_image" binding:"omitempty,max=500"`
	Images           []string           `json:"images"`
	AdditionalImages []string           `json:"additional_images"`
	Awards           []model.AwardEntry `json:"awards"`
	Details          datatypes.JSON     `json:"details"`
	Highlights       map[string]string  `json:"highlights"`
	Tags             map[string]string  `json:"tags"`
	Team             map[string]string  `json:"team"`
	IsFeatured       bool               `json:"is_featured"`
	IsPublished      bool               `json:"is_published"`
	OrderColumn      int                `json:"order_column"`
}

// UpdateProjectRequest 更新项目请求（仅更新提供的字段）
type UpdateProjectRequest struct {
	Name             *string             `json:"name" binding:"omitempty,max=200"`
	Category         *string             `json:"category" binding:"omitempty,oneof=architecture interior landscape"`
	SubCategory      *string             `json:"sub_category" binding:"omitempty,oneof=residential commercial public"`
	Type             *string             `json:"type" binding:"omitempty,max=100"`
	Style            *string             `json:"style" binding:"omitempty,max=100"`
	ShortDescription *string             `json:"short_description" binding:"omitempty,max=500"`
	Description      *string             `json:"description"`
	FullDescription  *string             `json:"full_description"`
	Concept          *string             `json:"concept"`
	DesignPhilosophy *string             `json:"design_philosophy"`
	Location         *string             `json:"location" binding:"omitempty,max=200"`
	Year             *int                `json:"year" binding:"omitempty,gte=1900,lte=2100"`
	Area             *string             `json:"area" binding:"omitempty,max=100"`
	Budget           *string             `json:"budget" binding:"omitempty,max=100"`
	Duration         *string             `json:"duration" binding:"omitempty,max=100"`
	CoverImage       *string             `json:"cover_image" binding:"omitempty,max=500"`
	Images           *[]string           `json:"images"`
	AdditionalImages *[]string           `json:"additional_images"`
	Awards           *[]model.AwardEntry `json:"awards"`
	Details          datatypes.JSON      `json:"details"`
	Highlights       *map[string]string  `json:"highlights"`
	Tags             *map[string]string  `json:"tags"`
	Team             *map[string]string  `json:"team"`
	IsFeatured       *bool               `json:"is_featured"`
	IsPublished      *bool               `json:"is_published"`
	OrderColumn      *int                `json:"order_column"`
}
