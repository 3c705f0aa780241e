package dto

// 询盘后台列表默认页大小
const DefaultEnquiryPageSize = 15

// CreateContactRequest 联系表单提交请求
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email,max=200"`
	Phone   string `json:"phone" binding:"omitempty,max=50"`
	Subject string `json:"subject" binding:"omitempty,max=300"`
	Message string `json:"message" binding:"required,max=2000"`
}

// ContactListQuery 询盘后台列表查询参数
type ContactListQuery struct {
	PageQuery
	Status string `form:"status"` // "all"或空为不过滤
}

// UpdateEnquiryStatusRequest 更新询盘状态请求
type UpdateEnquiryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new in_progress completed closed"`
}

// UpdateEnquiryNotesRequest 更新询盘备注请求
type UpdateEnquiryNotesRequest struct {
	AdminNotes string `json:"admin_notes" binding:"max=5000"`
}

// ContactEnquiryResponse 询盘响应（仅后台使用）
type ContactEnquiryResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	Status     string `json:"status"`
	AdminNotes string `json:"admin_notes"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
