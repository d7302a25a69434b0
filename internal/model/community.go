package model

import "time"

type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending"
	ModerationApproved ModerationStatus = "approved"
	ModerationRejected ModerationStatus = "rejected"
)

// Post 社区帖子，可选关联课程；审核通过的课程关联帖参与结课判定
type Post struct {
	UUIDBase
	Title      string           `gorm:"size:255;not null" json:"title"`
	Content    string           `gorm:"type:text;not null" json:"content"`
	AuthorID   uint             `gorm:"index;type:bigint unsigned" json:"authorId"`
	Author     User             `gorm:"foreignKey:AuthorID" json:"author"`
	CourseID   *uint            `gorm:"index" json:"courseId"`
	Status     ModerationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	ReviewerID *uint            `gorm:"index" json:"reviewerId"`
	ReviewedAt *time.Time       `json:"reviewedAt"`
	Upvotes    int              `gorm:"default:0" json:"likes"`
	Views      int              `gorm:"default:0" json:"views"`
}

func (Post) TableName() string {
	return "posts"
}
