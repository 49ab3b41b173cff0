package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/eduplay-backend/services"
)

func dbFromContext(c *gin.Context) *gorm.DB {
	return c.MustGet("db").(*gorm.DB)
}

// respondServiceError dịch error kind của catalog core sang HTTP status:
// ValidationError -> 400 kèm lỗi theo field, NotFoundError -> 404,
// còn lại (transport) -> 500 với thông báo chung
func respondServiceError(c *gin.Context, err error) {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Dữ liệu không hợp lệ",
			"fields": ve.Fields,
		})
		return
	}

	var nf *services.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể kết nối máy chủ dữ liệu"})
}
