package router

import (
	"time"

	"autotrac/api"
	"autotrac/config"
	_ "autotrac/docs"

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
	r.Use(CORSMiddleware(cfg.CORS.AllowedOrigins))

	// 服务信息
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "AutoTrac backend",
			"status":  "ok",
			"docs":    "/swagger/index.html",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 项目
	projectHandler := api.NewProjectHandler()
	r.GET("/projects/", projectHandler.List)
	r.POST("/projects/", projectHandler.Create)
	r.DELETE("/projects/:id/", projectHandler.Delete)
	r.GET("/projects/:id/summary", projectHandler.Summary)

	// 工时记录
	timeEntryHandler := api.NewTimeEntryHandler()
	r.GET("/time-entries/", timeEntryHandler.List)
	r.POST("/time-entries/", timeEntryHandler.Create)
	r.POST("/time-entries/:id/stop", timeEntryHandler.Stop)
	r.DELETE("/time-entries/:id/", timeEntryHandler.Delete)

	// 收入记录
	incomeHandler := api.NewIncomeHandler()
	r.GET("/incomes/", incomeHandler.List)
	r.POST("/incomes/", incomeHandler.Create)
	r.DELETE("/incomes/:id/", incomeHandler.Delete)

	// 导出
	exportHandler := api.NewExportHandler()
	r.GET("/projects/:id/export/time.csv", exportHandler.ExportTimeCSV)
	r.GET("/projects/:id/export/incomes.csv", exportHandler.ExportIncomesCSV)
	r.GET("/projects/:id/export/report.xlsx", exportHandler.ExportReportExcel)

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件，只放行配置中的来源
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	allowAll := false
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && (allowAll || allowed[origin]) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
