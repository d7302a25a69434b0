// 手动触发演示数据导入脚本
//
// 在空库上创建一个管理员账号和一门带步骤、提示、题目的演示课程，
// 方便本地联调前端时不用手动录入数据。重复执行会跳过已存在的数据。
//
// 用法: go run scripts/seed_demo.go

package main

import (
	"log"
	"os"

	"course_hub_backend/internal/config"
	"course_hub_backend/internal/model"
	"course_hub_backend/pkg/database"
	"course_hub_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	// 管理员账号
	var adminCount int64
	db.Model(&model.User{}).Where("role = ?", model.Admin).Count(&adminCount)
	if adminCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123456"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("生成密码失败: %v", err)
		}
		admin := model.User{
			Name:     "管理员",
			Email:    "admin@example.com",
			Password: string(hashed),
			Role:     model.Admin,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("创建管理员失败: %v", err)
		}
		log.Println("已创建管理员 admin@example.com / admin123456")
	}

	// 演示课程
	var courseCount int64
	db.Model(&model.Course{}).Where("title = ?", "Go 语言入门").Count(&courseCount)
	if courseCount > 0 {
		log.Println("演示课程已存在，跳过")
		return
	}

	var category model.Category
	db.First(&category)
	var level model.Level
	db.Order("sort_order ASC").First(&level)

	course := model.Course{
		Title:       "Go 语言入门",
		Description: "从零开始学习 Go：变量、流程控制与函数。",
		CategoryID:  category.ID,
		LevelID:     level.ID,
		IsPublished: true,
	}
	if err := db.Create(&course).Error; err != nil {
		log.Fatalf("创建课程失败: %v", err)
	}

	steps := []model.CourseStep{
		{CourseID: course.ID, Title: "环境准备", Content: "安装 Go 工具链并配置 GOPATH。", SortOrder: 1},
		{CourseID: course.ID, Title: "第一个程序", Content: "编写并运行 hello world。", SortOrder: 2},
		{CourseID: course.ID, Title: "变量与类型", Content: "了解基础类型、零值和类型推导。", SortOrder: 3},
	}
	tips := []model.CourseTip{
		{CourseID: course.ID, Content: "gofmt 会统一代码格式，提交前记得运行。", SortOrder: 1},
		{CourseID: course.ID, Content: "遇到不认识的标准库函数，先看 go doc。", SortOrder: 2},
	}
	questions := []model.CourseQuestion{
		{CourseID: course.ID, Kind: model.QuestionMCQ, Prompt: "Go 程序的入口函数是？", Options: `["main","init","start","run"]`, Answer: "main", SortOrder: 1},
		{CourseID: course.ID, Kind: model.QuestionMCQ, Prompt: "声明变量的关键字是？", Options: `["var","let","dim","def"]`, Answer: "var", SortOrder: 2},
		{CourseID: course.ID, Kind: model.QuestionDragDrop, Prompt: "把下列语句排成完整的 main 函数", Options: `["package main","func main() {","fmt.Println(\"hi\")","}"]`, Answer: `[0,1,2,3]`, SortOrder: 3},
	}

	for i := range steps {
		if err := db.Create(&steps[i]).Error; err != nil {
			log.Fatalf("创建步骤失败: %v", err)
		}
	}
	for i := range tips {
		if err := db.Create(&tips[i]).Error; err != nil {
			log.Fatalf("创建提示失败: %v", err)
		}
	}
	for i := range questions {
		if err := db.Create(&questions[i]).Error; err != nil {
			log.Fatalf("创建题目失败: %v", err)
		}
	}

	log.Printf("演示课程创建完成 (courseId=%d, %d 道题)", course.ID, len(questions))
}
