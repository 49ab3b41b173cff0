package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/eduplay-backend/services"
)

type CreateSubjectInput struct {
	Name    string `json:"name" binding:"required"`
	GradeID uint   `json:"grade_id" binding:"required"`
}

// GET /api/subjects?grade_id=...
// Không truyền grade_id thì trả toàn bộ môn học
func GetSubjects(c *gin.Context) {
	var gradeID *uint
	if raw := c.Query("grade_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "grade_id không hợp lệ"})
			return
		}
		id := uint(parsed)
		gradeID = &id
	}

	svc := services.NewCatalogService(dbFromContext(c))
	subjects, err := svc.ListSubjects(c.Request.Context(), gradeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": subjects})
}

// POST /api/admin/subjects
func CreateSubject(c *gin.Context) {
	var input CreateSubjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tên môn học và khối lớp bắt buộc"})
		return
	}

	svc := services.NewCatalogService(dbFromContext(c))
	subject, err := svc.CreateSubject(c.Request.Context(), input.Name, input.GradeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tạo môn học thành công",
		"subject": subject,
	})
}
