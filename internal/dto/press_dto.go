package dto

// PressArticleResponse 媒体报道响应
type PressArticleResponse struct {
	ID                 int64             `json:"id"`
	Title              string            `json:"title"`
	Publication        string            `json:"publication"`
	Author             string            `json:"author"`
	PublishedDate      string            `json:"published_date"`           // 存储的ISO日期
	FormattedDate      string            `json:"formatted_date"`           // 展示用"月 年"形式
	Excerpt            string            `json:"excerpt"`
	Content            string            `json:"content"`
	URL                string            `json:"url"`
	Image              string            `json:"image"`
	Category           string            `json:"category"`
	PublicationDetails map[string]string `json:"publication_details"`
	KeyQuotes          []string          `json:"key_quotes"`
	Featured           bool              `json:"featured"`
	IsActive           bool              `json:"is_active"`
	SortOrder          int               `json:"sort_order"`
	CreatedAt          string            `json:"created_at"`
}

// CreatePressArticleRequest 创建媒体报道请求
type CreatePressArticleRequest struct {
	Title              string            `json:"title" binding:"required,max=300"`
	Publication        string            `json:"publication" binding:"omitempty,max=200"`
	Author             string            `json:"author" binding:"omitempty,max=100"`
	PublishedDate      string            `json:"published_date" binding:"omitempty,datetime=2006-01-02"`
	Excerpt            string            `json:"excerpt" binding:"omitempty,max=1000"`
	Content            string            `json:"content"`
	URL                string            `json:"url" binding:"omitempty,url,max=500"`
	Image              string            `json:"image" binding:"omitempty,max=500"`
	Category           string            `json:"category" binding:"omitempty,max=100"`
	PublicationDetails map[string]string `json:"publication_details"`
	KeyQuotes          []string          `json:"key_quotes"`
	Featured           bool              `json:"featured"`
	IsActive           bool              `json:"is_active"`
	SortOrder          int               `json:"sort_order"`
}

// UpdatePressArticleRequest 更新媒体报道请求（仅更新提供的字段）
type UpdatePressArticleRequest struct {
	Title              *string            `json:"title" binding:"omitempty,max=300"`
	Publication        *string            `json:"publication" binding:"omitempty,max=200"`
	Author             *string            `json:"author" binding:"omitempty,max=100"`
	PublishedDate      *string            `json:"published_date" binding:"omitempty,datetime=2006-01-02"`
	Excerpt            *string            `json:"excerpt" binding:"omitempty,max=1000"`
	Content            *string            `json:"content"`
	URL                *string            `json:"url" binding:"omitempty,url,max=500"`
	Image              *string            `json:"image" binding:"omitempty,max=500"`
	Category           *string            `json:"category" binding:"omitempty,max=100"`
	PublicationDetails *map[string]string `json:"publication_details"`
	KeyQuotes          *[]string          `json:"key_quotes"`
	Featured           *bool              `json:"featured"`
	IsActive           *bool              `json:"is_active"`
	SortOrder          *int               `json:"sort_order"`
}
