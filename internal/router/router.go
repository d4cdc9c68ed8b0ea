package router

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pos_admin_v1/internal/controller"
	"pos_admin_v1/internal/middleware"
	"pos_admin_v1/internal/service"
)

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine,
	authSvc *service.AuthService,
	authCtl *controller.AuthController,
	orderCtl *controller.OrderController,
	shopCtl *controller.ShopController,
	userCtl *controller.UserController,
	productCtl *controller.ProductController,
	promotionCtl *controller.PromotionController,
	reportCtl *controller.ReportController) {
	// 1. Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 2. API 路由组
	api := r.Group("/api")

	// 公开路由：登录带 IP 冷却防爆破
	auth := api.Group("/authentication")
	{
		auth.POST("/login", middleware.Cooldown("login", time.Second), authCtl.Login)
	}

	// 受保护路由：一律过会话校验
	protected := api.Group("")
	protected.Use(middleware.SessionAuth(authSvc))
	{
		protected.POST("/authentication/logout", authCtl.Logout)
		protected.GET("/authentication/me", authCtl.Me)

		// 订单
		orders := protected.Group("/orders")
		{
			orders.GET("", orderCtl.List)
			orders.POST("", orderCtl.Create)
		}
		protected.GET("/sepay/vietqr", orderCtl.VietQR)

		// 门店
		shops := protected.Group("/shops")
		{
			shops.GET("", shopCtl.List)
			shops.POST("", shopCtl.Create)
			shops.GET("/expiring", shopCtl.Expiring)
			shops.PUT("/:id", shopCtl.Update)
		}

		// 员工
		users := protected.Group("/users")
		{
			users.GET("", userCtl.List)
			users.POST("", userCtl.Create)
			users.PUT("/:id", userCtl.Update)
		}

		// 套餐
		products := protected.Group("/products")
		{
			products.GET("", productCtl.List)
			products.POST("", productCtl.Create)
			products.PUT("/:id", productCtl.Update)
		}
		protected.GET("/features", productCtl.Features)

		// 促销
		promotions := protected.Group("/promotions")
		{
			promotions.GET("", promotionCtl.List)
			promotions.POST("", promotionCtl.Create)
			promotions.PUT("/:id", promotionCtl.Update)
		}

		// 报表
		reports := protected.Group("/reports")
		{
			reports.GET("/get-report-data", reportCtl.Overview)
			reports.GET("/monthly-order-summary", orderCtl.MonthlySummary)
			reports.GET("/monthly-revenue", reportCtl.MonthlyRevenue)
			reports.GET("/shop-by-package", reportCtl.ShopByPackage)
			reports.GET("/shop-new-vs-renewal", reportCtl.NewVsRenewal)
			reports.GET("/shop-by-province", reportCtl.ShopByProvince)
			reports.POST("/refresh", reportCtl.Refresh)
		}
	}
}
