package dto

// 博客列表默认页大小
const DefaultBlogPageSize = 6

// BlogListQuery 博客列表查询参数
type BlogListQuery struct {
	PageQuery
	Category string `form:"category"` // "all"或空为不过滤
	Search   string `form:"search"`
}

// BlogResponse 博客文章响应
type BlogResponse struct {
	ID            int64    `json:"id"`
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content,omitempty"`
	Category      string   `json:"category"`
	Author        string   `json:"author"`
	Image         string   `json:"image"`
	Tags          []string `json:"tags"`
	Views         int64    `json:"views"`
	IsPublished   bool     `json:"is_published"`
	PublishedAt   string   `json:"published_at"`
	FormattedDate string   `json:"formatted_date"`
	SortOrder     int      `json:"sort_order"`
	CreatedAt     string   `json:"created_at"`
}

// CreateBlogRequest 创建博客请求
type CreateBlogRequest struct {
	Slug        string   `json:"slug" binding:"required,max=150"`
	Title       string   `json:"title" binding:"required,max=300"`
	Excerpt     string   `json:"excerpt" binding:"omitempty,max=1000"`
	Content     string   `json:"content"`
	Category    string   `json:"category" binding:"omitempty,max=100"`
	Author      string   `json:"author" binding:"omitempty,max=100"`
	Image       string   `json:"image" binding:"omitempty,max=500"`
	Tags        []string `json:"tags"`
	IsPublished bool     `json:"is_published"`
	PublishedAt string   `json:"published_at" binding:"omitempty,datetime=2006-01-02"`
	SortOrder   int      `json:"sort_order"`
}

// UpdateBlogRequest 更新博客请求（仅更新提供的字段）
type UpdateBlogRequest struct {
	Title       *string   `json:"title" binding:"omitempty,max=300"`
	Excerpt     *string   `json:"excerpt" binding:"omitempty,max=1000"`
	Content     *string   `json:"content"`
	Category    *string   `json:"category" binding:"omitempty,max=100"`
	Author      *string   `json:"author" binding:"omitempty,max=100"`
	Image       *string   `json:"image" binding:"omitempty,max=500"`
	Tags        *[]string `json:"tags"`
	IsPublished *bool     `json:"is_published"`
	PublishedAt *string   `json:"published_at" binding:"omitempty,datetime=2006-01-02"`
	SortOrder   *int      `json:"sort_order"`
}
