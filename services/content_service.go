package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/eduplay-backend/models"
)

// Bảng dịch cố định tên Grade -> class code, chỉ áp dụng lúc tạo Content.
// Tên không có trong bảng đi qua nguyên dạng (lower-case).
var classCodeMap = map[string]string{
	"Nursery": "nursery",
	"Grade 1": "1st",
	"Grade 2": "2nd",
	"Grade 3": "3rd",
	"Grade 4": "4th",
	"Grade 5": "5th",
}

// ClassCodeForGrade dịch tên khối lớp sang class code denormalize
func ClassCodeForGrade(gradeName string) string {
	if code, ok := classCodeMap[gradeName]; ok {
		return code
	}
	return strings.ToLower(gradeName)
}

type CreateContentInput struct {
	GradeID     uint
	SubjectID   uint
	Title       string
	Description string
	ContentType models.ContentType
	YouTubeLink string
	FileURL     string
}

type ContentFilter struct {
	Class   string
	Subject string
}

// ContentService sở hữu bảng contents và chuỗi Page trong từng bản ghi
type ContentService struct {
	DB      *gorm.DB
	Catalog *CatalogService
}

func NewContentService(db *gorm.DB, catalog *CatalogService) *ContentService {
	return &ContentService{DB: db, Catalog: catalog}
}

// Create resolve nhãn class/subject từ hierarchy rồi chốt vào bản ghi.
// Cả trường pages mới lẫn các trường media cũ ở cấp trên đều được ghi giống nhau.
func (s *ContentService) Create(ctx context.Context, input CreateContentInput) (*models.Content, error) {
	if err := validateContentInput(&input); err != nil {
		return nil, err
	}

	grade, err := s.Catalog.GetGrade(ctx, input.GradeID)
	if err != nil {
		if IsNotFound(err) {
			return nil, newValidationError("grade_id", "Khối lớp không tồn tại")
		}
		return nil, err
	}

	subject, err := s.Catalog.GetSubject(ctx, input.SubjectID)
	if err != nil {
		if IsNotFound(err) {
			return nil, newValidationError("subject_id", "Môn học không tồn tại")
		}
		return nil, err
	}
	// môn học phải thuộc đúng khối lớp đã chọn
	if subject.GradeID != grade.ID {
		return nil, newValidationError("subject_id", "Môn học không thuộc khối lớp đã chọn")
	}

	page := models.Page{
		Title:       input.Title,
		Description: input.Description,
		ContentType: input.ContentType,
		YouTubeLink: input.YouTubeLink,
		FileURL:     input.FileURL,
	}

	content := models.Content{
		ID:          uuid.New(),
		Class:       ClassCodeForGrade(grade.Name),
		Subject:     strings.ToLower(subject.Name),
		Title:       input.Title,
		Description: input.Description,
		ContentType: input.ContentType,
		YouTubeLink: input.YouTubeLink,
		FileURL:     input.FileURL,
		Pages:       models.PageList{page},
		CreatedAt:   time.Now(),
	}

	if err := s.DB.WithContext(ctx).Create(&content).Error; err != nil {
		return nil, &TransportError{Err: err}
	}
	return &content, nil
}

// List trả các bản ghi mới nhất trước; filter rỗng trả toàn bộ.
// id làm khóa phụ để thứ tự ổn định khi created_at trùng nhau.
func (s *ContentService) List(ctx context.Context, filter ContentFilter) ([]models.Content, error) {
	var contents []models.Content
	query := s.DB.WithContext(ctx).Model(&models.Content{})
	if filter.Class != "" {
		query = query.Where("class = ?", filter.Class)
	}
	if filter.Subject != "" {
		query = query.Where("subject = ?", filter.Subject)
	}
	if err := query.Order("created_at DESC, id").Find(&contents).Error; err != nil {
		return []models.Content{}, &TransportError{Err: err}
	}
	for i := range contents {
		normalizeLegacyContent(&contents[i])
	}
	return contents, nil
}

func (s *ContentService) Get(ctx context.Context, id uuid.UUID) (*models.Content, error) {
	var content models.Content
	if err := s.DB.WithContext(ctx).First(&content, "id = ?", id).Error; err != nil {
		return nil, wrapDBError(err, "nội dung", id.String())
	}
	normalizeLegacyContent(&content)
	return &content, nil
}

// Delete xóa ngay và không khôi phục được; xóa lần hai cùng id trả NotFoundError,
// caller phải tự bỏ id khỏi danh sách đang giữ sau khi thành công
func (s *ContentService) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.DB.WithContext(ctx).Delete(&models.Content{}, "id = ?", id)
	if result.Error != nil {
		return &TransportError{Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "nội dung", Key: id.String()}
	}
	return nil
}

func validateContentInput(input *CreateContentInput) error {
	fields := map[string]string{}
	if strings.TrimSpace(input.Title) == "" {
		fields["title"] = "Tiêu đề không được trống"
	}
	if strings.TrimSpace(input.Description) == "" {
		fields["description"] = "Mô tả không được trống"
	}
	if !input.ContentType.IsValid() {
		fields["content_type"] = "Loại nội dung không hợp lệ"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// normalizeLegacyContent đưa ba shape dữ liệu cũ về một model thống nhất:
// bản ghi phẳng một media (pages rỗng) trở thành trường hợp pages một phần tử
func normalizeLegacyContent(c *models.Content) {
	if len(c.Pages) > 0 {
		return
	}
	c.Pages = models.PageList{{
		Title:       c.Title,
		Description: c.Description,
		ContentType: c.ContentType,
		YouTubeLink: c.YouTubeLink,
		FileURL:     c.FileURL,
	}}
}
