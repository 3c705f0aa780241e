package dto

// TestimonialResponse 客户评价响应
type TestimonialResponse struct {
	ID          int64  `json:"id"`
	ClientName  string `json:"client_name"`
	ClientTitle string `json:"client_title"`
	Company     string `json:"company"`
	Quote       string `json:"quote"`
	Photo       string `json:"photo"`
	Rating      int    `json:"rating"`
	ProjectName string `json:"project_name"`
	Featured    bool   `json:"featured"`
	IsActive    bool   `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
	CreatedAt   string `json:"created_at"`
}

// CreateTestimonialRequest 创建客户评价请求
type CreateTestimonialRequest struct {
	ClientName  string `json:"client_name" binding:"required,max=100"`
	ClientTitle string `json:"client_title" binding:"omitempty,max=100"`
	Company     string `json:"company" binding:"omitempty,max=200"`
	Quote       string `json:"quote" binding:"required"`
	Photo       string `json:"photo" binding:"omitempty,max=500"`
	Rating      int    `json:"rating" binding:"omitempty,gte=1,lte=5"`
	ProjectName string `json:"project_name" binding:"omitempty,max=200"`
	Featured    bool   `json:"featured"`
	IsActive    bool   `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

// UpdateTestimonialRequest 更新客户评价请求（仅更新提供的字段）
type UpdateTestimonialRequest struct {
	ClientName  *string `json:"client_name" binding:"omitempty,max=100"`
	ClientTitle *string `json:"client_title" binding:"omitempty,max=100"`
	Company     *string `json:"company" binding:"omitempty,max=200"`
	Quote       *string `json:"quote"`
	Photo       *string `json:"photo" binding:"omitempty,max=500"`
	Rating      *int    `json:"rating" binding:"omitempty,gte=1,lte=5"`
	ProjectName *string `json:"project_name" binding:"omitempty,max=200"`
	Featured    *bool   `json:"featured"`
	IsActive    *bool   `json:"is_active"`
	SortOrder   *int    `json:"sort_order"`
}
