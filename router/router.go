package router

import (
	"net/http"
	"time"

	"expensetracker/api"
	"expensetracker/config"
	_ "expensetracker/docs"
	"expensetracker/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// 后台管理 API
	adminHandler := api.NewAdminHandler()
	passwordResetHandler := api.NewPasswordResetHandler(cfg)
	admin := r.Group("/admin")
	{
		admin.POST("/login", middleware.LoginRateLimit(10, time.Minute), adminHandler.AdminLogin)
		admin.POST("/logout", adminHandler.AdminLogout)

		// 密码重置（无需登录）
		admin.POST("/password/request-reset", middleware.LoginRateLimit(5, time.Minute), passwordResetHandler.RequestPasswordReset)
		admin.GET("/password/verify-token", passwordResetHandler.VerifyResetToken)
		admin.POST("/password/reset", passwordResetHandler.ResetPassword)

		// 需要 Cookie 认证的后台接口
		adminAuth := admin.Group("")
		adminAuth.Use(AdminAuthMiddleware())
		{
			adminAuth.GET("/current-user", adminHandler.GetCurrentUserInfo)
			adminAuth.GET("/expenses", adminHandler.GetAllExpenses)
			adminAuth.GET("/users", adminHandler.GetAllUsers)
			adminAuth.PUT("/users/:id/password", adminHandler.UpdateUserPassword)
			adminAuth.PUT("/users/:id/admin", adminHandler.SetAdmin)
			adminAuth.PUT("/users/:id/status", adminHandler.UpdateUserStatus)
			adminAuth.DELETE("/users/:id", adminHandler.DeleteUser)
			adminAuth.GET("/statistics", adminHandler.GetStatistics)
			adminAuth.GET("/export/excel", adminHandler.ExportExcel)

			// 管理员密码重置功能
			adminAuth.POST("/password/admin-reset", passwordResetHandler.AdminResetPassword)
			adminAuth.POST("/password/send-reset-email", passwordResetHandler.SendPasswordResetEmail)
			adminAuth.GET("/email-config", passwordResetHandler.GetEmailConfig)
		}
	}

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 路由组（供安卓 App 使用）
	v1 := r.Group("/api/v1")
	{
		// 认证相关路由（无需登录）
		authHandler := api.NewAuthHandler(cfg)
		googleAuthHandler := api.NewGoogleAuthHandler(cfg)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", middleware.LoginRateLimit(10, time.Minute), authHandler.Login)
			auth.POST("/google", googleAuthHandler.Login)

			// App 端密码重置
			auth.POST("/password/request-reset", middleware.LoginRateLimit(5, time.Minute), authHandler.AppRequestPasswordReset)
			auth.POST("/password/verify-code", authHandler.AppVerifyResetCode)
			auth.POST("/password/reset", authHandler.AppResetPassword)
		}

		// 消费类别（读取无需登录）
		categoryHandler := api.NewCategoryHandler()
		v1.GET("/categories", categoryHandler.List)

		// 需要 JWT 认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			// 用户相关
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.PUT("/auth/password", authHandler.ChangePassword)

			// 消费类别管理
			categories := authorized.Group("/categories")
			{
				categories.POST("", categoryHandler.Create)
				categories.PUT("/:id", categoryHandler.Update)
				categories.DELETE("/:id", categoryHandler.Delete)
			}

			// 消费记录相关
			expenseHandler := api.NewExpenseHandler()
			expenses := authorized.Group("/expenses")
			{
				expenses.POST("", expenseHandler.Create)
				expenses.GET("", expenseHandler.List)
				expenses.GET("/summary", expenseHandler.GetSummary)
				expenses.GET("/:id", expenseHandler.Get)
				expenses.PUT("/:id", expenseHandler.Update)
				expenses.DELETE("/:id", expenseHandler.Delete)
			}

			// 导出相关
			exportHandler := api.NewExportHandler()
			export := authorized.Group("/export")
			{
				export.GET("/csv", exportHandler.ExportCSV)
				export.GET("/json", exportHandler.ExportJSON)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// AdminAuthMiddleware 后台管理 Cookie 认证中间件
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := c.Cookie("admin_user_id")
		if err != nil || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "请先登录",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
