package model

type FeedbackStatus string

const (
	FeedbackNew     FeedbackStatus = "new"
	FeedbackHandled FeedbackStatus = "handled"
)

// Feedback 用户反馈
type Feedback struct {
	BaseModel
	UserID  uint           `gorm:"index;not null" json:"userId"`
	User    User           `gorm:"foreignKey:UserID" json:"user"`
	Subject string         `gorm:"size:255;not null" json:"subject"`
	Content string         `gorm:"type:text;not null" json:"content"`
	Rating  int            `gorm:"default:0" json:"rating"`
	Status  FeedbackStatus `gorm:"type:varchar(20);default:'new'" json:"status"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
