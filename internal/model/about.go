package model

const (
	AboutSectionTableName = "about_sections"
	TeamMemberTableName   = "team_members"
	TimelineItemTableName = "timeline_items"
	MissionTableName      = "missions"
)

// AboutSection 关于我们的内容区块
type AboutSection struct {
	SortableModel
	Title    string `gorm:"size:200;not null" json:"title"`
	Subtitle string `gorm:"size:300" json:"subtitle"`
	Content  string `gorm:"type:text" json:"content"`
	Image    string `gorm:"size:500" json:"image"`
}

func (AboutSection) TableName() string {
	return AboutSectionTableName
}

// TeamMember 团队成员
type TeamMember struct {
	SortableModel
	Name        string `gorm:"size:100;not null" json:"name"`
	Role        string `gorm:"size:100" json:"role"`
	Bio         string `gorm:"type:text" json:"bio"`
	Photo       string `gorm:"size:500" json:"photo"`
	Email       string `gorm:"size:200" json:"email"`
	LinkedinURL string `gorm:"size:500" json:"linkedin_url"`
}

func (TeamMember) TableName() string {
	return TeamMemberTableName
}

// TimelineItem 发展历程节点
type TimelineItem struct {
	SortableModel
	Year        int    `gorm:"not null" json:"year"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"size:1000" json:"description"`
}

func (TimelineItem) TableName() string {
	return TimelineItemTableName
}

// Mission 使命/价值观条目
type Mission struct {
	SortableModel
	Title   string `gorm:"size:200;not null" json:"title"`
	Content string `gorm:"type:text" json:"content"`
	Icon    string `gorm:"size:100" json:"icon"`
}

func (Mission) TableName() string {
	return MissionTableName
}
