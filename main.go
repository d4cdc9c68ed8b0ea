package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// 全链路冒烟测试：数据库连得上、上游 POS API 打得通就算环境就绪
// 正式服务入口在 cmd/main.go
func main() {
	fmt.Println(">>> 开始执行全链路测试...")

	_ = godotenv.Load()

	// ------------------------------------------------
	// 1. 连接数据库
	// ------------------------------------------------
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "host=localhost user=pos_admin password=1234 dbname=pos_admin port=5432 sslmode=disable"
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ 数据库连接失败: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil || sqlDB.Ping() != nil {
		log.Fatalf("❌ 数据库 Ping 失败: %v", err)
	}
	fmt.Println("✅ 数据库连接成功！")

	// ------------------------------------------------
	// 2. 探测上游 POS API
	// ------------------------------------------------
	baseURL := os.Getenv("UPSTREAM_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	client := resty.New()
	client.SetTimeout(10 * time.Second)
	client.SetRetryCount(3)

	fmt.Printf(">>> 正在探测上游 %s ...\n", baseURL)

	resp, err := client.R().Get(baseURL + "/api/products?page=1&pageSize=1")
	if err != nil {
		log.Fatalf("❌ 请求失败 (上游不可达): %v", err)
	}

	if resp.StatusCode() == 200 {
		fmt.Println("🎉🎉🎉 测试成功！全链路已打通！")
		fmt.Printf("上游响应: %s\n", resp.String())
	} else {
		fmt.Printf("⚠️ 连接通了，但上游拒绝了请求 (状态码 %d)\n", resp.StatusCode())
		fmt.Printf("错误信息: %s\n", resp.String())
		fmt.Println("提示: 如果是 401，检查上游是否要求鉴权；如果是 404，检查 UPSTREAM_API_URL 路径。")
	}
}
