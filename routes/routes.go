package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/eduplay-backend/controllers"
	"github.com/vnkhanh/eduplay-backend/middleware"
	"github.com/vnkhanh/eduplay-backend/ws"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	api.Use(middleware.DBMiddleware(db))

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Catalog đọc công khai: học sinh duyệt không cần đăng nhập
	{
		api.GET("/grades", controllers.GetGrades)
		api.GET("/subjects", controllers.GetSubjects)
		api.GET("/contents", controllers.GetContents)
		api.GET("/contents/:id", controllers.GetContentDetail)
		api.GET("/contents/:id/siblings", controllers.GetContentSiblings)
		api.GET("/contents/:id/pages/:index", controllers.GetContentPage)
	}

	admin := api.Group("/admin")
	{
		admin.Use(middleware.AuthMiddleware(db), middleware.RequireRoles("admin", "teacher"))

		// Quản lý khối lớp / môn học
		admin.POST("/grades", controllers.CreateGrade)
		admin.POST("/subjects", controllers.CreateSubject)

		// Quản lý nội dung
		admin.POST("/contents", controllers.CreateContent)
		admin.DELETE("/contents/:id", controllers.DeleteContent)
	}

	r.GET("/ws/scope", ws.HandleScopeWebSocket)
	r.GET("/ws/status", ws.HandleGlobalWebSocket)

	return r
}
