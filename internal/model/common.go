package model

import (
	"time"
)

// BaseModel 基础模型
type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// SortableModel 带展示排序和启用开关的基础模型
// 公开接口只返回IsActive为true的行，按SortOrder升序排列
type SortableModel struct {
	BaseModel
	IsActive  bool `gorm:"not null;default:1;index" json:"is_active"`
	SortOrder int  `gorm:"not null;default:0;index" json:"sort_order"`
}
