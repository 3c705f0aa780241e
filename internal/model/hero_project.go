package model

const HeroProjectTableName = "hero_projects"

// HeroProject 首页大图轮播项
type HeroProject struct {
	SortableModel
	Title       string `gorm:"size:200;not null" json:"title"`
	Subtitle    string `gorm:"size:300" json:"subtitle"`
	Description string `gorm:"size:1000" json:"description"`
	Image       string `gorm:"size:500;not null" json:"image"`
	LinkURL     string `gorm:"size:500" json:"link_url"`
}

func (HeroProject) TableName() string {
	return HeroProjectTableName
}
