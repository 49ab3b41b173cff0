package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vnkhanh/eduplay-backend/models"
	"github.com/vnkhanh/eduplay-backend/services"
	"github.com/vnkhanh/eduplay-backend/utils"
	"github.com/vnkhanh/eduplay-backend/ws"
)

// GET /api/contents?class=...&subject=...
// Trả danh sách mới nhất trước; không filter thì trả toàn bộ
func GetContents(c *gin.Context) {
	db := dbFromContext(c)
	svc := services.NewContentService(db, services.NewCatalogService(db))

	filter := services.ContentFilter{
		Class:   c.Query("class"),
		Subject: c.Query("subject"),
	}

	contents, err := svc.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": contents})
}

// GET /api/contents/:id
func GetContentDetail(c *gin.Context) {
	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	db := dbFromContext(c)
	svc := services.NewContentService(db, services.NewCatalogService(db))

	content, err := svc.Get(c.Request.Context(), contentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": content})
}

// POST /api/admin/contents (multipart)
// Form: grade_id, subject_id, title, description, content_type,
// youtube_link (loại youtube) hoặc file đính kèm (loại image/video).
// Chạy qua Composer: chọn khối lớp -> chọn môn -> submit.
func CreateContent(c *gin.Context) {
	db := dbFromContext(c)
	catalog := services.NewCatalogService(db)
	contents := services.NewContentService(db, catalog)

	var form struct {
		GradeID     uint   `form:"grade_id" binding:"required"`
		SubjectID   uint   `form:"subject_id" binding:"required"`
		Title       string `form:"title" binding:"required"`
		Description string `form:"description" binding:"required"`
		ContentType string `form:"content_type" binding:"required"`
		YouTubeLink string `form:"youtube_link"`
	}
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu trường bắt buộc", "details": err.Error()})
		return
	}

	contentType := models.ContentType(form.ContentType)

	// media dạng file thì upload lên Supabase Storage trước
	fileURL := ""
	if contentType == models.ContentTypeImage || contentType == models.ContentTypeVideo {
		fileHeader, err := c.FormFile("file")
		if err == nil {
			fileID := uuid.New().String()
			if contentType == models.ContentTypeImage {
				fileURL, err = utils.UploadImageToSupabase(fileHeader, fileID)
			} else {
				fileURL, err = utils.UploadVideoToSupabase(fileHeader, fileID)
			}
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể upload file", "details": err.Error()})
				return
			}
		} else {
			// chấp nhận file_url có sẵn (media đã upload từ trước)
			fileURL = c.PostForm("file_url")
		}
	}

	composer := services.NewComposer(catalog, contents)
	gradeID := form.GradeID
	if err := composer.SelectGrade(c.Request.Context(), &gradeID); err != nil {
		respondServiceError(c, err)
		return
	}
	if err := composer.SelectSubject(form.SubjectID); err != nil {
		respondServiceError(c, err)
		return
	}

	composer.Title = form.Title
	composer.Description = form.Description
	composer.ContentType = contentType
	composer.YouTubeLink = form.YouTubeLink
	composer.FileURL = fileURL

	content, err := composer.Submit(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// báo các client đang xem danh sách để refetch
	ws.BroadcastCatalogChanged(content.Class, content.Subject)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tạo nội dung thành công",
		"content": content,
	})
}

// DELETE /api/admin/contents/:id
// Xóa ngay, không soft-delete; xóa id không tồn tại trả 404
func DeleteContent(c *gin.Context) {
	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	db := dbFromContext(c)
	svc := services.NewContentService(db, services.NewCatalogService(db))

	content, err := svc.Get(c.Request.Context(), contentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := svc.Delete(c.Request.Context(), contentID); err != nil {
		respondServiceError(c, err)
		return
	}

	// dọn file media trên Supabase, lỗi chỉ log chứ không chặn response
	for _, page := range content.Pages {
		if page.FileURL != "" {
			if err := utils.DeleteFileFromSupabase(page.FileURL); err != nil {
				log.Printf("Không xóa được file %s: %v", page.FileURL, err)
			}
		}
	}

	ws.BroadcastCatalogChanged(content.Class, content.Subject)

	c.JSON(http.StatusOK, gin.H{"message": "Xóa nội dung thành công"})
}
