package dto

// 后台列表默认页大小
const DefaultAdminPageSize = 15

// PageQuery 分页查询参数
type PageQuery struct {
	Page    int `form:"page"`     // 可选：页码，不传默认为1
	PerPage int `form:"per_page"` // 可选：每页数量，不传使用各列表的默认值
}

// GetPage 获取页码
func (p *PageQuery) GetPage() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}

// GetPerPage 获取每页数量（defaultSize为该列表的默认页大小）
func (p *PageQuery) GetPerPage(defaultSize int) int {
	if p.PerPage < 1 {
		return defaultSize
	}
	if p.PerPage > 100 {
		return 100
	}
	return p.PerPage
}

// GetOffset 获取偏移量
func (p *PageQuery) GetOffset(defaultSize int) int {
	return (p.GetPage() - 1) * p.GetPerPage(defaultSize)
}

// AdminListQuery 后台列表查询参数
type AdminListQuery struct {
	PageQuery
	Keyword string `form:"keyword"`
}

// IDParam ID路径参数
type IDParam struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// SlugParam slug路径参数
type SlugParam struct {
	Slug string `uri:"slug" binding:"required,max=150"`
}
