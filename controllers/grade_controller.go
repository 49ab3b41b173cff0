package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/eduplay-backend/services"
)

type CreateGradeInput struct {
	Name string `json:"name" binding:"required"`
}

// GET /api/grades
// Danh sách khối lớp tăng dần theo id (cho dropdown Classes)
func GetGrades(c *gin.Context) {
	svc := services.NewCatalogService(dbFromContext(c))

	grades, err := svc.ListGrades(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": grades})
}

// POST /api/admin/grades
func CreateGrade(c *gin.Context) {
	var input CreateGradeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tên khối lớp bắt buộc"})
		return
	}

	svc := services.NewCatalogService(dbFromContext(c))
	grade, err := svc.CreateGrade(c.Request.Context(), input.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tạo khối lớp thành công",
		"grade":   grade,
	})
}
