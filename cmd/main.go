package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"pos_admin_v1/internal/controller"
	"pos_admin_v1/internal/model"
	"pos_admin_v1/internal/repository"
	"pos_admin_v1/internal/router"
	"pos_admin_v1/internal/service"
	"pos_admin_v1/internal/task"
	"pos_admin_v1/pkg/database"
	"pos_admin_v1/pkg/pos"
)

// @title POS 管理后台网关
// @version 1.0
// @description 管理后台统一入口：鉴权换会话，业务请求代理到上游 POS 平台并补齐展示字段
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 0. 加载 .env (不存在不报错，生产环境直接用系统环境变量)
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}

	// 1. 初始化数据库
	db := initDatabase()

	// 2. 初始化依赖
	deps := initDependencies(db)

	// 3. 启动定时任务
	initTasks(deps)

	// 4. 初始化路由
	r := gin.Default()
	router.InitRoutes(r,
		deps.Services.Auth,
		deps.Controllers.Auth,
		deps.Controllers.Order,
		deps.Controllers.Shop,
		deps.Controllers.User,
		deps.Controllers.Product,
		deps.Controllers.Promotion,
		deps.Controllers.Report,
	)

	// 5. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Client      *pos.Client
	Repos       *Repositories
	Services    *Services
	Controllers *Controllers
}

// Repositories 仓库集合
type Repositories struct {
	Session repository.SessionRepository
}

// Services 服务集合
type Services struct {
	Auth      *service.AuthService
	Order     *service.OrderService
	Shop      *service.ShopService
	User      *service.UserService
	Product   *service.ProductService
	Promotion *service.PromotionService
	Report    *service.ReportService
	Storage   *service.StorageService
}

// Controllers 控制器集合
type Controllers struct {
	Auth      *controller.AuthController
	Order     *controller.OrderController
	Shop      *controller.ShopController
	User      *controller.UserController
	Product   *controller.ProductController
	Promotion *controller.PromotionController
	Report    *controller.ReportController
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库，只存本地会话
func initDatabase() *gorm.DB {
	dsn := getEnv("DB_DSN", "host=localhost user=pos_admin password=1234 dbname=pos_admin port=5432 sslmode=disable")
	verbose := getEnv("DB_VERBOSE", "") == "1"
	return database.InitDB(dsn, verbose, &model.Session{})
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- 上游客户端 --------
	client := pos.NewClient(&pos.Config{
		BaseURL: getEnv("UPSTREAM_API_URL", "http://localhost:5000"),
		Timeout: getEnvDuration("UPSTREAM_TIMEOUT", 20*time.Second),
		Debug:   getEnv("UPSTREAM_DEBUG", "") == "1",
	})

	// -------- Repo 层 --------
	repos := &Repositories{
		Session: repository.NewSessionRepository(db),
	}

	// -------- 存储服务 --------
	storageSvc := initStorageService()

	// -------- 业务服务 --------
	services := &Services{
		Auth: service.NewAuthService(client, repos.Session,
			getEnvDuration("SESSION_TTL", service.DefaultSessionTTL),
			initBootstrapAdmin()),
		Order:     service.NewOrderService(client),
		Shop:      service.NewShopService(client),
		User:      service.NewUserService(client, storageSvc),
		Product:   service.NewProductService(client),
		Promotion: service.NewPromotionService(client),
		Report:    service.NewReportService(client),
		Storage:   storageSvc,
	}

	// -------- Controller 层 --------
	controllers := &Controllers{
		Auth:      controller.NewAuthController(services.Auth),
		Order:     controller.NewOrderController(services.Order),
		Shop:      controller.NewShopController(services.Shop),
		User:      controller.NewUserController(services.User),
		Product:   controller.NewProductController(services.Product),
		Promotion: controller.NewPromotionController(services.Promotion),
		Report:    controller.NewReportController(services.Report),
	}

	return &Dependencies{
		DB:          db,
		Client:      client,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// initStorageService 初始化存储服务
func initStorageService() *service.StorageService {
	storageSvc, err := service.NewStorageService(&service.StorageConfig{
		Provider:  getEnv("STORAGE_PROVIDER", "local"),
		Bucket:    getEnv("AWS_BUCKET", ""),
		Region:    getEnv("AWS_REGION", ""),
		AccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		Endpoint:  getEnv("STORAGE_ENDPOINT", ""),
		CDNDomain: getEnv("AWS_CDN_DOMAIN", ""),
		BasePath:  getEnv("STORAGE_BASE_PATH", "pos-admin"),
	})
	if err != nil {
		log.Fatalf("存储服务初始化失败: %v", err)
	}
	return storageSvc
}

// initBootstrapAdmin 本地兜底管理员，未配置则禁用
func initBootstrapAdmin() *service.BootstrapAdmin {
	username := getEnv("BOOTSTRAP_ADMIN_USER", "")
	hash := getEnv("BOOTSTRAP_ADMIN_HASH", "")
	if username == "" || hash == "" {
		return nil
	}
	return &service.BootstrapAdmin{
		Username:     username,
		PasswordHash: hash,
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	// 过期会话清理
	sessionTask := task.NewSessionTask(deps.Services.Auth)
	sessionTask.Start()

	// 报表缓存预热
	reportTask := task.NewReportTask(deps.Services.Report)
	reportTask.Start()

	log.Println("定时任务已启动")
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine) {
	port := getEnv("SERVER_PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}
	log.Println("服务已退出")
}

// ==================== 环境变量 ====================

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	log.Printf("环境变量 %s 格式无效: %s，使用默认值", key, value)
	return fallback
}
