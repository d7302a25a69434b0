package database

import (
	"course_hub_backend/internal/config"
	"course_hub_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Level{},
		&model.Course{},
		&model.CourseStep{},
		&model.CourseTip{},
		&model.CourseQuestion{},
		&model.UserCourseActivity{},
		&model.Post{},
		&model.Announcement{},
		&model.Badge{},
		&model.UserBadge{},
		&model.Feedback{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认的课程分类
	var catCount int64
	db.Model(&model.Category{}).Count(&catCount)
	if catCount == 0 {
		defaultCategories := []model.Category{
			{Name: "编程基础", Description: "语法与入门课程"},
			{Name: "数据结构与算法", Description: "常见数据结构及算法课程"},
			{Name: "Web开发", Description: "前后端开发课程"},
			{Name: "数据库", Description: "关系型数据库与SQL课程"},
		}
		for _, c := range defaultCategories {
			db.Create(&c)
		}
	}

	// 默认的难度分级
	var lvlCount int64
	db.Model(&model.Level{}).Count(&lvlCount)
	if lvlCount == 0 {
		defaultLevels := []model.Level{
			{Name: "入门", Description: "零基础可学", SortOrder: 1},
			{Name: "进阶", Description: "需要一定基础", SortOrder: 2},
			{Name: "高级", Description: "面向有经验的学习者", SortOrder: 3},
		}
		for _, l := range defaultLevels {
			db.Create(&l)
		}
	}

	return db, nil
}
