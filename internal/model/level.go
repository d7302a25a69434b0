package model

// Level 课程难度分级（如入门/进阶/高级）
type Level struct {
	BaseModel
	Name        string `gorm:"size:100;unique;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	SortOrder   int    `gorm:"default:0" json:"sortOrder"`
}

func (Level) TableName() string {
	return "levels"
}
