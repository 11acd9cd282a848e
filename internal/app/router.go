package app

import (
	"lingua_tutor_backend/docs"
	"lingua_tutor_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 辅导对话
		api.POST("/chat", c.chat.Chat)
		api.GET("/history/:userId", c.chat.GetHistory)
		api.POST("/history/:userId/clear", c.chat.ClearHistory)

		// 练习调度
		api.POST("/practice/next", c.practice.Next)
		api.POST("/skills/observations", c.skill.RecordObservations)
		api.GET("/skills/:userId", c.skill.ListSkills)

		// 进度与档案
		api.GET("/progress/:userId", c.progress.GetProgress)
		api.POST("/activity/log", c.progress.LogActivity)
		api.GET("/profile/:userId", c.profile.GetProfile)
		api.PUT("/profile/:userId", c.profile.UpdateProfile)
	}
}
