package model

import "time"

// Course 课程主体，分类/难度/封面/介绍视频 + 章节与小贴士
// swagger:model Course
type Course struct {
	BaseModel
	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	CategoryID   uint       `gorm:"index" json:"categoryId"`
	Category     Category   `gorm:"foreignKey:CategoryID" json:"category"`
	LevelID      uint       `gorm:"index" json:"levelId"`
	Level        Level      `gorm:"foreignKey:LevelID" json:"level"`
	CoverURL     string     `gorm:"size:255" json:"coverUrl"`
	VideoURL     string     `gorm:"size:255" json:"videoUrl"`
	ThumbnailURL string     `gorm:"size:255" json:"thumbnailUrl"`
	IsPublished  bool       `gorm:"default:false" json:"isPublished"`
	PublishedAt  *time.Time `json:"publishedAt"`

	Steps     []CourseStep     `gorm:"foreignKey:CourseID" json:"steps,omitempty"`
	Tips      []CourseTip      `gorm:"foreignKey:CourseID" json:"tips,omitempty"`
	Questions []CourseQuestion `gorm:"foreignKey:CourseID" json:"questions,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// CourseStep 课程内容分步页，按 sort_order 排序展示
type CourseStep struct {
	BaseModel
	CourseID  uint   `gorm:"index;not null" json:"courseId"`
	Title     string `gorm:"size:255;not null" json:"title"`
	Content   string `gorm:"type:text" json:"content"`
	ImageURL  string `gorm:"size:255" json:"imageUrl"`
	SortOrder int    `gorm:"default:0" json:"sortOrder"`
}

func (CourseStep) TableName() string {
	return "course_steps"
}

// CourseTip 课程学习小贴士
type CourseTip struct {
	BaseModel
	CourseID  uint   `gorm:"index;not null" json:"courseId"`
	Content   string `gorm:"type:text;not null" json:"content"`
	SortOrder int    `gorm:"default:0" json:"sortOrder"`
}

func (CourseTip) TableName() string {
	return "course_tips"
}
