package model

const StatTableName = "stats"

// Stat 首页数字统计项
// 展示用的formatted_number在序列化时由Number+Suffix派生，不落库
type Stat struct {
	SortableModel
	Label  string `gorm:"size:100;not null" json:"label"`
	Number string `gorm:"size:50;not null" json:"number"`
	Suffix string `gorm:"size:20" json:"suffix"`
	Icon   string `gorm:"size:100" json:"icon"`
}

func (Stat) TableName() string {
	return StatTableName
}
