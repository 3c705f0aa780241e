package model

import "time"

const BlogTableName = "blogs"

// Blog 博客文章模型
// Views由公开详情接口递增，是唯一在读路径上写库的字段
type Blog struct {
	BaseModel
	Slug        string     `gorm:"size:150;not null;uniqueIndex" json:"slug"`
	Title       string     `gorm:"size:300;not null" json:"title"`
	Excerpt     string     `gorm:"size:1000" json:"excerpt"`
	Content     string     `gorm:"type:text" json:"content"`
	Category    string     `gorm:"size:100;index" json:"category"`
	Author      string     `gorm:"size:100" json:"author"`
	Image       string     `gorm:"size:500" json:"image"`
	Tags        StringList `gorm:"type:json" json:"tags"`
	Views       int64      `gorm:"not null;default:0" json:"views"`
	IsPublished bool       `gorm:"not null;default:0;index" json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`
	SortOrder   int        `gorm:"not null;default:0;index" json:"sort_order"`
}

func (Blog) TableName() string {
	return BlogTableName
}
