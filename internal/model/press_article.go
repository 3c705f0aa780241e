package model

import "time"

const PressArticleTableName = "press_articles"

// PressArticle 媒体报道模型
type PressArticle struct {
	SortableModel
	Title              string     `gorm:"size:300;not null" json:"title"`
	Publication        string     `gorm:"size:200" json:"publication"`
	Author             string     `gorm:"size:100" json:"author"`
	PublishedDate      *time.Time `json:"published_date"`
	Excerpt            string     `gorm:"size:1000" json:"excerpt"`
	Content            string     `gorm:"type:text" json:"content"`
	URL                string     `gorm:"size:500" json:"url"`
	Image              string     `gorm:"size:500" json:"image"`
	Category           string     `gorm:"size:100;index" json:"category"`
	PublicationDetails StringMap  `gorm:"type:json" json:"publication_details"`
	KeyQuotes          StringList `gorm:"type:json" json:"key_quotes"`
	Featured           bool       `gorm:"not null;default:0;index" json:"featured"`
}

func (PressArticle) TableName() string {
	return PressArticleTableName
}
