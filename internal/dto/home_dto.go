package dto

// HeroProjectResponse 首页轮播项响应
type HeroProjectResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Image       string `json:"image"`
	LinkURL     string `json:"link_url"`
	IsActive    bool   `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

// CreateHeroProjectRequest 创建首页轮播项请求
type CreateHeroProjectRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Subtitle    string `json:"subtitle" binding:"omitempty,max=300"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Image       string `json:"image" binding:"required,max=500"`
	LinkURL     string `json:"link_url" binding:"omitempty,max=500"`
	IsActive    bool   `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

// UpdateHeroProjectRequest 更新首页轮播项请求（仅更新提供的字段）
type UpdateHeroProjectRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Subtitle    *string `json:"subtitle" binding:"omitempty,max=300"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Image       *string `json:"image" binding:"omitempty,max=500"`
	LinkURL     *string `json:"link_url" binding:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
	SortOrder   *int    `json:"sort_order"`
}

// StatResponse 数字统计响应
// formatted_number由number+suffix派生
type StatResponse struct {
	ID              int64  `json:"id"`
	Label           string `json:"label"`
	Number          string `json:"number"`
	Suffix          string `json:"suffix"`
	FormattedNumber string `json:"formatted_number"`
	Icon            string `json:"icon"`
	IsActive        bool   `json:"is_active"`
	SortOrder       int    `json:"sort_order"`
}

// CreateStatRequest 创建数字统计请求
type CreateStatRequest struct {
	Label     string `json:"label" binding:"required,max=100"`
	Number    string `json:"number" binding:"required,max=50"`
	Suffix    string `json:"suffix" binding:"omitempty,max=20"`
	Icon      string `json:"icon" binding:"omitempty,max=100"`
	IsActive  bool   `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

// UpdateStatRequest 更新数字统计请求（仅更新提供的字段）
type UpdateStatRequest struct {
	Label     *string `json:"label" binding:"omitempty,max=100"`
	Number    *string `json:"number" binding:"omitempty,max=50"`
	Suffix    *string `json:"suffix" binding:"omitempty,max=20"`
	Icon      *string `json:"icon" binding:"omitempty,max=100"`
	IsActive  *bool   `json:"is_active"`
	SortOrder *int    `json:"sort_order"`
}

// AboutSectionResponse 关于我们区块响应
type AboutSectionResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Content   string `json:"content"`
	Image     string `json:"image"`
	IsActive  bool   `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

// CreateAboutSectionRequest 创建关于我们区块请求
type CreateAboutSectionRequest struct {
	Title     string `json:"title" binding:"required,max=200"`
	Subtitle  string `json:"subtitle" binding:"omitempty,max=300"`
	Content   string `json:"content"`
	Image     string `json:"image" binding:"omitempty,max=500"`
	IsActive  bool   `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

// UpdateAboutSectionRequest 更新关于我们区块请求（仅更新提供的字段）
type UpdateAboutSectionRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=200"`
	Subtitle  *string `json:"subtitle" binding:"omitempty,max=300"`
	Content   *string `json:"content"`
	Image     *string `json:"image" binding:"omitempty,max=500"`
	IsActive  *bool   `json:"is_active"`
	SortOrder *int    `json:"sort_order"`
}

// TeamMemberResponse 团队成员响应
type TeamMemberResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Bio         string `json:"bio"`
	Photo       string `json:"photo"`
	Email       string `json:"email"`
	LinkedinURL string `json:"linkedin_url"`
	IsActive    bool   `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

// CreateTeamMemberRequest 创建团队成员请求
type CreateTeamMemberRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Role        string `json:"role" binding:"omitempty,max=100"`
	Bio         string `json:"bio"`
	Photo       string `json:"photo" binding:"omitempty,max=500"`
	Email       string `json:"email" binding:"omitempty,email,max=200"`
	LinkedinURL string `json:"linkedin_url" binding:"omitempty,url,max=500"`
	IsActive    bool   `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

// UpdateTeamMemberRequest 更新团队成员请求（仅更新提供的字段）
type UpdateTeamMemberRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Role        *string `json:"role" binding:"omitempty,max=100"`
	Bio         *string `json:"bio"`
	Photo       *string `json:"photo" binding:"omitempty,max=500"`
	Email       *string `json:"email" binding:"omitempty,email,max=200"`
	LinkedinURL *string `json:"linkedin_url" binding:"omitempty,url,max=500"`
	IsActive    *bool   `json:"is_active"`
	SortOrder   *int    `json:"sort_order"`
}

// TimelineItemResponse 发展历程节点响应
type TimelineItemResponse struct {
	ID          int64  `json:"id"`
	Year        int    `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

// CreateTimelineItemRequest 创建发展历程节点请求
type CreateTimelineItemRequest struct {
	Year        int    `json:"year" binding:"required,gte=1900,lte=2100"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	IsActive    bool   `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

// UpdateTimelineItemRequest 更新发展历程节点请求（仅更新提供的字段）
type UpdateTimelineItemRequest struct {
	Year        *int    `json:"year" binding:"omitempty,gte=1900,lte=2100"`
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	IsActive    *bool   `json:"is_active"`
	SortOrder   *int    `json:"sort_order"`
}

// MissionResponse 使命条目响应
type MissionResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Icon      string `json:"icon"`
	IsActive  bool   `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

// CreateMissionRequest 创建使命条目请求
type CreateMissionRequest struct {
	Title     string `json:"title" binding:"required,max=200"`
	Content   string `json:"content"`
	Icon      string `json:"icon" binding:"omitempty,max=100"`
	IsActive  bool   `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

// UpdateMissionRequest 更新使命条目请求（仅更新提供的字段）
type UpdateMissionRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=200"`
	Content   *string `json:"content"`
	Icon      *string `json:"icon" binding:"omitempty,max=100"`
	IsActive  *bool   `json:"is_active"`
	SortOrder *int    `json:"sort_order"`
}
