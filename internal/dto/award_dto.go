package dto

// AwardListQuery 获奖列表查询参数
type AwardListQuery struct {
	Year string `form:"year"` // 年份过滤，"all"或空为不过滤
}

// AwardResponse 展平后的获奖记录
// 由项目内嵌的awards列表展平而来，id为"{项目ID}-{奖项名}"的合成标识
type AwardResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Organization    string `json:"organization"`
	Year            int    `json:"year"`
	Description     string `json:"description"`
	Featured        bool   `json:"featured"`
	ProjectID       int64  `json:"project_id"`
	ProjectName     string `json:"project_name"`
	ProjectSlug     string `json:"project_slug"`
	ProjectCategory string `json:"project_category"`
}
