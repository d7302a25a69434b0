package model

import "time"

// Badge 勋章定义，CourseID 非空时为该课程的结课勋章
type Badge struct {
	BaseModel
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"size:255" json:"icon"`
	CourseID    *uint  `gorm:"index" json:"courseId"`
}

func (Badge) TableName() string {
	return "badges"
}

// UserBadge 用户获得的勋章，(user_id, badge_id) 唯一保证重复授予幂等
type UserBadge struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_badge;not null" json:"userId"`
	BadgeID   uint      `gorm:"uniqueIndex:idx_user_badge;not null" json:"badgeId"`
	Badge     Badge     `gorm:"foreignKey:BadgeID" json:"badge"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
