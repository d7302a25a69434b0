package model

type QuestionKind string

const (
	QuestionMCQ      QuestionKind = "mcq"
	QuestionDragDrop QuestionKind = "dragdrop"
)

// CourseQuestion 课程测验题目，Options/Answer 以 JSON 字符串存储
// swagger:model CourseQuestion
type CourseQuestion struct {
	BaseModel
	CourseID    uint         `gorm:"index;not null" json:"courseId"`
	Kind        QuestionKind `gorm:"type:varchar(20);not null;default:'mcq'" json:"kind"`
	Prompt      string       `gorm:"type:text;not null" json:"prompt"`
	Options     string       `gorm:"type:text" json:"options"`
	Answer      string       `gorm:"type:text" json:"-"`
	Explanation string       `gorm:"type:text" json:"explanation"`
	SortOrder   int          `gorm:"default:0" json:"sortOrder"`
}

func (CourseQuestion) TableName() string {
	return "course_questions"
}
