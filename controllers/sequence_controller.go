package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vnkhanh/eduplay-backend/models"
	"github.com/vnkhanh/eduplay-backend/services"
)

// GET /api/contents/:id/siblings?class=...&subject=...
// prev_id là bản ghi mới hơn, next_id là bản ghi cũ hơn (danh sách mới-nhất-trước)
func GetContentSiblings(c *gin.Context) {
	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	class := c.Query("class")
	subject := c.Query("subject")
	if class == "" || subject == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "class và subject bắt buộc"})
		return
	}

	db := dbFromContext(c)
	seq := services.NewSequenceService(
		services.NewContentService(db, services.NewCatalogService(db)),
	)

	nav, err := seq.Siblings(c.Request.Context(), contentID, class, subject)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": nav})
}

// GET /api/contents/:id/pages/:index
// Một trang của nội dung + điều hướng prev/next + phần trăm tiến độ
func GetContentPage(c *gin.Context) {
	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	pageIndex, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Chỉ số trang không hợp lệ"})
		return
	}

	db := dbFromContext(c)
	contents := services.NewContentService(db, services.NewCatalogService(db))
	seq := services.NewSequenceService(contents)

	content, err := contents.Get(c.Request.Context(), contentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	nav, err := seq.PageNavigate(content.Pages, pageIndex)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response := gin.H{
		"content_id": content.ID,
		"title":      content.Title,
		"nav":        nav,
	}

	// link YouTube sai dạng không phải lỗi: video_id rỗng nghĩa là không có media
	if nav.Page.ContentType == models.ContentTypeYouTube {
		videoID := services.ExtractVideoID(nav.Page.YouTubeLink)
		response["video_id"] = videoID
		if videoID != "" {
			response["embed_url"] = "https://www.youtube.com/embed/" + videoID
		}
	}

	c.JSON(http.StatusOK, response)
}
