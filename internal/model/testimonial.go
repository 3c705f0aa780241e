package model

const TestimonialTableName = "testimonials"

// Testimonial 客户评价模型
type Testimonial struct {
	SortableModel
	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientTitle string `gorm:"size:100" json:"client_title"`
	Company     string `gorm:"size:200" json:"company"`
	Quote       string `gorm:"type:text;not null" json:"quote"`
	Photo       string `gorm:"size:500" json:"photo"`
	Rating      int    `gorm:"not null;default:5" json:"rating"`
	ProjectName string `gorm:"size:200" json:"project_name"`
	Featured    bool   `gorm:"not null;default:0;index" json:"featured"`
}

func (Testimonial) TableName() string {
	return TestimonialTableName
}
