package model

const ContactEnquiryTableName = "contact_enquiries"

// 询盘处理状态
const (
	EnquiryStatusNew        = "new"
	EnquiryStatusInProgress = "in_progress"
	EnquiryStatusCompleted  = "completed"
	EnquiryStatusClosed     = "closed"
)

// IsValidEnquiryStatus 校验询盘状态
func IsValidEnquiryStatus(status string) bool {
	switch status {
	case EnquiryStatusNew, EnquiryStatusInProgress, EnquiryStatusCompleted, EnquiryStatusClosed:
		return true
	}
	return false
}

// ContactEnquiry 联系表单询盘
// 公开接口只负责创建（状态固定为new）；状态和备注只通过后台接口修改
type ContactEnquiry struct {
	BaseModel
	Name       string `gorm:"size:100;not null" json:"name"`
	Email      string `gorm:"size:200;not null" json:"email"`
	Phone      string `gorm:"size:50" json:"phone"`
	Subject    string `gorm:"size:300" json:"subject"`
	Message    string `gorm:"type:text;not null" json:"message"`
	Status     string `gorm:"size:20;not null;default:'new';index" json:"status"`
	AdminNotes string `gorm:"type:text" json:"admin_notes"`
}

func (ContactEnquiry) TableName() string {
	return ContactEnquiryTableName
}
