package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ContentType string

const (
	ContentTypeYouTube ContentType = "youtube"
	ContentTypeImage   ContentType = "image"
	ContentTypeVideo   ContentType = "video"
)

// IsValid kiểm tra giá trị wire hợp lệ: "youtube" | "image" | "video"
func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeYouTube, ContentTypeImage, ContentTypeVideo:
		return true
	}
	return false
}

// Page là một đơn vị bài học trong Content: tiêu đề + mô tả + một media nhúng
type Page struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	ContentType ContentType `json:"content_type"`
	YouTubeLink string      `json:"youtube_link,omitempty"`
	FileURL     string      `json:"file_url,omitempty"`
}

// PageList lưu dưới dạng JSONB, decode có kiểm tra schema chặt chẽ:
// bản ghi không đúng shape sẽ bị từ chối thay vì trả dữ liệu thiếu trường
type PageList []Page

func (p PageList) Value() (driver.Value, error) {
	if p == nil {
		p = PageList{}
	}
	return json.Marshal(p)
}

func (p *PageList) Scan(value interface{}) error {
	if value == nil {
		*p = PageList{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("không scan được pages từ kiểu %T", value)
	}

	if len(raw) == 0 {
		*p = PageList{}
		return nil
	}

	var pages []Page
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&pages); err != nil {
		return fmt.Errorf("pages không đúng schema: %w", err)
	}
	for i, pg := range pages {
		if pg.Title == "" {
			return fmt.Errorf("pages[%d] thiếu title", i)
		}
		if pg.Description == "" {
			return fmt.Errorf("pages[%d] thiếu description", i)
		}
		if !pg.ContentType.IsValid() {
			return fmt.Errorf("pages[%d] có content_type không hợp lệ: %q", i, pg.ContentType)
		}
	}

	*p = pages
	return nil
}

// Content là một mục trong catalog. class/subject là nhãn denormalize,
// chốt tại thời điểm tạo; đổi tên Grade/Subject về sau không lan sang đây.
// Các trường media ở cấp trên mirror page đầu tiên (tương thích dữ liệu cũ).
type Content struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Class       string      `gorm:"size:50;not null;index" json:"class"`
	Subject     string      `gorm:"size:255;not null;index" json:"subject"`
	Title       string      `gorm:"size:255;not null" json:"title"`
	Description string      `gorm:"type:text;not null" json:"description"`
	ContentType ContentType `gorm:"type:varchar(20);not null" json:"content_type"`
	YouTubeLink string      `gorm:"type:text" json:"youtube_link,omitempty"`
	FileURL     string      `gorm:"type:text" json:"file_url,omitempty"`
	Pages       PageList    `gorm:"type:jsonb" json:"pages"`
	CreatedAt   time.Time   `gorm:"autoCreateTime;index" json:"created_at"`
}
